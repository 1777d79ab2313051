package usecase

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/rbac"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// RBACAdminUseCase lectura/escritura de la matriz de permisos desde el panel
// de super administración. La matriz de super_admin no se administra: ese rol
// pasa siempre por el gate sin consultarla.
type RBACAdminUseCase struct {
	rbacRepo repository.RBACRepository
}

// NewRBACAdminUseCase construye el caso de uso.
func NewRBACAdminUseCase(rbacRepo repository.RBACRepository) *RBACAdminUseCase {
	return &RBACAdminUseCase{rbacRepo: rbacRepo}
}

// ListRoleConfigs configuración de todos los roles (GET /api/admin/rbac).
func (uc *RBACAdminUseCase) ListRoleConfigs(ctx context.Context) (*dto.RBACMatrixResponse, error) {
	roles, err := uc.rbacRepo.ListRoleConfigs(ctx)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []rbac.RoleConfig{}
	}
	return &dto.RBACMatrixResponse{Roles: roles}, nil
}

// SaveRoleConfig reemplaza la matriz de un rol (PUT /api/admin/rbac/{role}).
// Valida rol y recursos conocidos; la configuración aplica en la siguiente
// navegación (el gate relee el store por petición).
func (uc *RBACAdminUseCase) SaveRoleConfig(ctx context.Context, role string, in dto.UpdateRoleConfigRequest) (*rbac.RoleConfig, error) {
	if !entity.ValidRole(role) || role == entity.RoleSuperAdmin {
		return nil, domain.ErrInvalidInput
	}
	known := map[string]bool{}
	for _, r := range rbac.Resources() {
		known[r] = true
	}
	for resource := range in.Permissions {
		if !known[resource] {
			return nil, domain.ErrInvalidInput
		}
	}
	for _, module := range in.Sidebar {
		if !known[module] {
			return nil, domain.ErrInvalidInput
		}
	}
	cfg := &rbac.RoleConfig{
		Role:        role,
		Permissions: in.Permissions,
		Sidebar:     in.Sidebar,
	}
	if err := uc.rbacRepo.SaveRoleConfig(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
