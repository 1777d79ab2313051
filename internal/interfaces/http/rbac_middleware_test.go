package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemdis/cemdis-api/internal/domain/rbac"
	apphttp "github.com/cemdis/cemdis-api/internal/interfaces/http"
)

// fakeGate devuelve decisiones precalculadas por rol; simula el AccessGate sin DB.
type fakeGate struct {
	decisions map[string]rbac.Decision
}

func (f *fakeGate) Authorize(_ context.Context, role, _ string, _ rbac.Action) rbac.Decision {
	if d, ok := f.decisions[role]; ok {
		return d
	}
	return rbac.Deny(rbac.ReasonPermissionDenied)
}

func buildPermissionApp(gate *fakeGate) *fiber.App {
	app := fiber.New()
	app.Get("/ops",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(rbac.ResourceOperations, rbac.ActionView, gate),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true})
		},
	)
	return app
}

func doPermissionRequest(t *testing.T, app *fiber.App, role string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/ops", nil)
	req.Header.Set("Authorization", tokenForRole(t, role))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRequirePermission_PermisoHabilitado(t *testing.T) {
	gate := &fakeGate{decisions: map[string]rbac.Decision{
		"operator": rbac.Allow(),
	}}
	resp := doPermissionRequest(t, buildPermissionApp(gate), "operator")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequirePermission_PermisoDeshabilitado_Retorna403(t *testing.T) {
	gate := &fakeGate{decisions: map[string]rbac.Decision{
		"distributor": rbac.Deny(rbac.ReasonPermissionDenied),
	}}
	resp := doPermissionRequest(t, buildPermissionApp(gate), "distributor")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"permiso denegado debe responder 403")
}

// Rol sin entrada en el fake: el default es denegar (fail-closed).
func TestRequirePermission_RolDesconocido_Retorna403(t *testing.T) {
	gate := &fakeGate{decisions: map[string]rbac.Decision{}}
	resp := doPermissionRequest(t, buildPermissionApp(gate), "management")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequirePermission_SinIdentidad_Retorna401(t *testing.T) {
	gate := &fakeGate{decisions: map[string]rbac.Decision{
		"": rbac.Deny(rbac.ReasonUnauthenticated),
	}}
	// Token con rol vacío: el AuthMiddleware lo acepta pero el gate deniega
	// con unauthenticated.
	resp := doPermissionRequest(t, buildPermissionApp(gate), "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
