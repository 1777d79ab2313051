package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixAllows_FailClosed(t *testing.T) {
	m := Matrix{
		ResourcePlanning: {View: true, Create: false},
	}

	assert.True(t, m.Allows(ResourcePlanning, ActionView))
	assert.False(t, m.Allows(ResourcePlanning, ActionCreate), "acción no habilitada => denegado")
	assert.False(t, m.Allows(ResourceOperations, ActionView), "recurso ausente en la matriz => denegado")
	assert.False(t, Matrix(nil).Allows(ResourcePlanning, ActionView), "matriz nil => denegado")
	assert.False(t, m.Allows(ResourcePlanning, Action("approve")), "acción desconocida => denegado")
}

func TestPermissionAllows(t *testing.T) {
	p := Permission{View: true, Create: true, Edit: false, Delete: false}
	assert.True(t, p.Allows(ActionView))
	assert.True(t, p.Allows(ActionCreate))
	assert.False(t, p.Allows(ActionEdit))
	assert.False(t, p.Allows(ActionDelete))
}

func TestRoleAllowed_ListaVaciaPermiteACualquierAutenticado(t *testing.T) {
	assert.True(t, RoleAllowed("distributor", nil))
	assert.True(t, RoleAllowed("operator", []string{}))
}

func TestRoleAllowed_RolFueraDeLaLista(t *testing.T) {
	allowed := []string{"operator"}
	assert.True(t, RoleAllowed("operator", allowed))
	assert.False(t, RoleAllowed("distributor", allowed))
	assert.False(t, RoleAllowed("", allowed))
}

func TestDecision(t *testing.T) {
	assert.True(t, Allow().Allowed)
	assert.Empty(t, Allow().Reason)

	d := Deny(ReasonPermissionDenied)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonPermissionDenied, d.Reason)
}

func TestValidAction(t *testing.T) {
	assert.True(t, ValidAction("view"))
	assert.True(t, ValidAction("delete"))
	assert.False(t, ValidAction("approve"))
	assert.False(t, ValidAction(""))
}
