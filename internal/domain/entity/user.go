package entity

import "time"

// Roles válidos para User.
const (
	RoleSuperAdmin  = "super_admin"
	RoleManagement  = "management"
	RoleOperator    = "operator"
	RoleDistributor = "distributor"
)

// ValidRole informa si el string corresponde a un rol conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleManagement, RoleOperator, RoleDistributor:
		return true
	}
	return false
}

// User representa un usuario de la plataforma.
// DistributorID solo aplica para usuarios con rol distributor (autoservicio).
type User struct {
	ID            string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Name          string
	Role          string // super_admin, management, operator, distributor
	DistributorID string // vacío salvo rol distributor
	Status        string // active, inactive, suspended
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
