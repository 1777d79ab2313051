package usecase

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/rbac"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// AccessGate decide si un rol puede ejecutar una acción sobre un recurso.
//
// Reglas:
//   - super_admin siempre pasa, sin consultar la matriz.
//   - Para el resto, la matriz del rol se lee del store en cada petición
//     (sin caché: la configuración del panel admin aplica en la siguiente
//     navegación).
//   - Cualquier fallo al leer el store se traduce en denegación, nunca en
//     permiso (fail-closed).
type AccessGate struct {
	rbacRepo repository.RBACRepository
}

// NewAccessGate construye el gate con el store de permisos.
func NewAccessGate(rbacRepo repository.RBACRepository) *AccessGate {
	return &AccessGate{rbacRepo: rbacRepo}
}

// Authorize evalúa recurso + acción para el rol dado.
// Devuelve una única decisión tipada; no tiene efectos secundarios.
func (g *AccessGate) Authorize(ctx context.Context, role string, resource string, action rbac.Action) rbac.Decision {
	if role == "" {
		return rbac.Deny(rbac.ReasonUnauthenticated)
	}
	if role == entity.RoleSuperAdmin {
		return rbac.Allow()
	}
	cfg, err := g.rbacRepo.GetRoleConfig(ctx, role)
	if err != nil || cfg == nil {
		// Store caído o rol sin configuración: denegar siempre
		return rbac.Deny(rbac.ReasonPermissionDenied)
	}
	if !cfg.Permissions.Allows(resource, action) {
		return rbac.Deny(rbac.ReasonPermissionDenied)
	}
	return rbac.Allow()
}

// AuthorizeRoles evalúa una allowlist estática de roles.
// Lista vacía permite a cualquier identidad autenticada.
func (g *AccessGate) AuthorizeRoles(role string, allowed []string) rbac.Decision {
	if role == "" {
		return rbac.Deny(rbac.ReasonUnauthenticated)
	}
	if !rbac.RoleAllowed(role, allowed) {
		return rbac.Deny(rbac.ReasonRoleMismatch)
	}
	return rbac.Allow()
}

// GetRoleConfig devuelve la configuración del propio rol (GET /api/rbac/me).
// super_admin recibe una matriz con todo habilitado aunque no esté persistida.
func (g *AccessGate) GetRoleConfig(ctx context.Context, role string) (*rbac.RoleConfig, error) {
	if role == entity.RoleSuperAdmin {
		return superAdminConfig(), nil
	}
	cfg, err := g.rbacRepo.GetRoleConfig(ctx, role)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, domain.ErrNotFound
	}
	return cfg, nil
}

func superAdminConfig() *rbac.RoleConfig {
	all := rbac.Permission{View: true, Create: true, Edit: true, Delete: true}
	m := rbac.Matrix{}
	for _, res := range rbac.Resources() {
		m[res] = all
	}
	return &rbac.RoleConfig{
		Role:        entity.RoleSuperAdmin,
		Permissions: m,
		Sidebar:     rbac.Resources(),
	}
}
