package dto

import "github.com/cemdis/cemdis-api/internal/domain/rbac"

// RoleConfigResponse respuesta de GET /api/rbac/me: rol del solicitante con su
// matriz de permisos y módulos visibles del sidebar.
type RoleConfigResponse struct {
	Role   string `json:"role"`
	Config struct {
		Permissions rbac.Matrix `json:"permissions"`
		Sidebar     []string    `json:"sidebar"`
	} `json:"config"`
}

// UpdateRoleConfigRequest cuerpo de PUT /api/admin/rbac/{role}.
type UpdateRoleConfigRequest struct {
	Permissions rbac.Matrix `json:"permissions" validate:"required"`
	Sidebar     []string    `json:"sidebar"`
}

// RBACMatrixResponse respuesta de GET /api/admin/rbac: configuración de todos los roles.
type RBACMatrixResponse struct {
	Roles []rbac.RoleConfig `json:"roles"`
}
