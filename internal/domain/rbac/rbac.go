// Package rbac modela la matriz de permisos por rol y la decisión de
// autorización. Es lógica pura: la carga de la matriz vive en el repositorio y
// la decisión por petición en el caso de uso AccessGate.
package rbac

// Action operaciones autorizables sobre un recurso.
type Action string

const (
	ActionView   Action = "view"
	ActionCreate Action = "create"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// ValidAction informa si el string corresponde a una acción conocida.
func ValidAction(a string) bool {
	switch Action(a) {
	case ActionView, ActionCreate, ActionEdit, ActionDelete:
		return true
	}
	return false
}

// Recursos de la plataforma: las claves de la matriz de permisos.
const (
	ResourcePlanning       = "planning"
	ResourceOperations     = "operations"
	ResourceExecutive      = "executive"
	ResourceDistribution   = "distribution"
	ResourceAdministration = "administration"
)

// Resources lista los recursos conocidos (para validación en el panel admin).
func Resources() []string {
	return []string{
		ResourcePlanning,
		ResourceOperations,
		ResourceExecutive,
		ResourceDistribution,
		ResourceAdministration,
	}
}

// Permission acciones permitidas sobre un recurso.
type Permission struct {
	View   bool `json:"view"`
	Create bool `json:"create"`
	Edit   bool `json:"edit"`
	Delete bool `json:"delete"`
}

// Allows informa si la acción está habilitada. Acción desconocida => false.
func (p Permission) Allows(a Action) bool {
	switch a {
	case ActionView:
		return p.View
	case ActionCreate:
		return p.Create
	case ActionEdit:
		return p.Edit
	case ActionDelete:
		return p.Delete
	}
	return false
}

// Matrix permisos por recurso para un rol.
type Matrix map[string]Permission

// Allows decide si el recurso/acción está permitido.
// Recurso ausente en la matriz => denegado (fail-closed).
func (m Matrix) Allows(resource string, a Action) bool {
	p, ok := m[resource]
	if !ok {
		return false
	}
	return p.Allows(a)
}

// RoleConfig configuración completa de un rol: matriz de permisos y módulos
// visibles en el sidebar del dashboard.
type RoleConfig struct {
	Role        string   `json:"role"`
	Permissions Matrix   `json:"permissions"`
	Sidebar     []string `json:"sidebar"`
}

// Razones de denegación que el llamador traduce a redirect/respuesta HTTP.
const (
	ReasonUnauthenticated  = "unauthenticated"
	ReasonRoleMismatch     = "role_mismatch"
	ReasonPermissionDenied = "permission_denied"
)

// Decision resultado de una autorización. Una sola decisión por petición.
type Decision struct {
	Allowed bool
	Reason  string // vacío cuando Allowed
}

// Allow decisión positiva.
func Allow() Decision { return Decision{Allowed: true} }

// Deny decisión negativa con su razón.
func Deny(reason string) Decision { return Decision{Allowed: false, Reason: reason} }

// RoleAllowed semántica de allowlist estática: lista vacía permite a cualquier
// identidad autenticada; si no, el rol debe estar en la lista.
func RoleAllowed(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}
