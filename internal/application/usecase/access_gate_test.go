package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cemdis/cemdis-api/internal/domain/rbac"
)

// fakeRBACRepo store de permisos en memoria, con fallo simulable.
type fakeRBACRepo struct {
	configs map[string]*rbac.RoleConfig
	err     error
}

func (f *fakeRBACRepo) GetRoleConfig(_ context.Context, role string) (*rbac.RoleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.configs[role], nil
}

func (f *fakeRBACRepo) ListRoleConfigs(context.Context) ([]rbac.RoleConfig, error) {
	return nil, f.err
}

func (f *fakeRBACRepo) SaveRoleConfig(context.Context, *rbac.RoleConfig) error {
	return f.err
}

func operatorConfig() *rbac.RoleConfig {
	return &rbac.RoleConfig{
		Role: "operator",
		Permissions: rbac.Matrix{
			rbac.ResourceOperations: {View: true, Create: true, Edit: true},
			rbac.ResourcePlanning:   {View: true},
		},
		Sidebar: []string{rbac.ResourceOperations, rbac.ResourcePlanning},
	}
}

func TestAuthorize_PermisoHabilitado(t *testing.T) {
	gate := NewAccessGate(&fakeRBACRepo{configs: map[string]*rbac.RoleConfig{"operator": operatorConfig()}})

	d := gate.Authorize(context.Background(), "operator", rbac.ResourceOperations, rbac.ActionEdit)
	assert.True(t, d.Allowed)

	d = gate.Authorize(context.Background(), "operator", rbac.ResourcePlanning, rbac.ActionView)
	assert.True(t, d.Allowed)
}

func TestAuthorize_PermisoAusente_Deniega(t *testing.T) {
	gate := NewAccessGate(&fakeRBACRepo{configs: map[string]*rbac.RoleConfig{"operator": operatorConfig()}})

	// Acción no habilitada en el recurso
	d := gate.Authorize(context.Background(), "operator", rbac.ResourcePlanning, rbac.ActionCreate)
	assert.False(t, d.Allowed)
	assert.Equal(t, rbac.ReasonPermissionDenied, d.Reason)

	// Recurso ausente en la matriz
	d = gate.Authorize(context.Background(), "operator", rbac.ResourceAdministration, rbac.ActionView)
	assert.False(t, d.Allowed)
}

// El fallo del store de permisos nunca puede traducirse en permiso:
// toda caída de infraestructura deniega para cualquier rol no super_admin.
func TestAuthorize_StoreCaido_DeniegaSiempre(t *testing.T) {
	gate := NewAccessGate(&fakeRBACRepo{err: errors.New("db timeout")})

	for _, role := range []string{"management", "operator", "distributor"} {
		d := gate.Authorize(context.Background(), role, rbac.ResourcePlanning, rbac.ActionView)
		assert.False(t, d.Allowed, "rol %s debe ser denegado con el store caído", role)
		assert.Equal(t, rbac.ReasonPermissionDenied, d.Reason)
	}
}

func TestAuthorize_SuperAdminNoConsultaElStore(t *testing.T) {
	// Incluso con el store caído, super_admin pasa (no depende de la matriz).
	gate := NewAccessGate(&fakeRBACRepo{err: errors.New("db down")})

	d := gate.Authorize(context.Background(), "super_admin", rbac.ResourceAdministration, rbac.ActionDelete)
	assert.True(t, d.Allowed)
}

func TestAuthorize_RolSinConfiguracion_Deniega(t *testing.T) {
	gate := NewAccessGate(&fakeRBACRepo{configs: map[string]*rbac.RoleConfig{}})

	d := gate.Authorize(context.Background(), "management", rbac.ResourceExecutive, rbac.ActionView)
	assert.False(t, d.Allowed)
}

func TestAuthorize_SinRol_Unauthenticated(t *testing.T) {
	gate := NewAccessGate(&fakeRBACRepo{})

	d := gate.Authorize(context.Background(), "", rbac.ResourcePlanning, rbac.ActionView)
	assert.False(t, d.Allowed)
	assert.Equal(t, rbac.ReasonUnauthenticated, d.Reason)
}

func TestAuthorizeRoles_Allowlist(t *testing.T) {
	gate := NewAccessGate(&fakeRBACRepo{})

	// Lista vacía: cualquier identidad autenticada pasa
	assert.True(t, gate.AuthorizeRoles("distributor", nil).Allowed)

	// Rol fuera de la lista
	d := gate.AuthorizeRoles("distributor", []string{"operator"})
	assert.False(t, d.Allowed)
	assert.Equal(t, rbac.ReasonRoleMismatch, d.Reason)

	// Sin identidad
	d = gate.AuthorizeRoles("", nil)
	assert.False(t, d.Allowed)
	assert.Equal(t, rbac.ReasonUnauthenticated, d.Reason)
}

func TestGetRoleConfig_SuperAdminTodoHabilitado(t *testing.T) {
	gate := NewAccessGate(&fakeRBACRepo{})

	cfg, err := gate.GetRoleConfig(context.Background(), "super_admin")
	assert.NoError(t, err)
	for _, res := range rbac.Resources() {
		assert.True(t, cfg.Permissions.Allows(res, rbac.ActionDelete), "super_admin debe poder todo en %s", res)
	}
}
