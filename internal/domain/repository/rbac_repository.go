package repository

import (
	"context"

	"github.com/cemdis/cemdis-api/internal/domain/rbac"
)

// RBACRepository puerto de lectura/escritura de la matriz de permisos por rol.
// La lectura es read-through: el caso de uso AccessGate consulta por petición y
// cualquier fallo aquí se traduce en denegación (fail-closed).
type RBACRepository interface {
	GetRoleConfig(ctx context.Context, role string) (*rbac.RoleConfig, error)
	ListRoleConfigs(ctx context.Context) ([]rbac.RoleConfig, error)
	SaveRoleConfig(ctx context.Context, cfg *rbac.RoleConfig) error
}
