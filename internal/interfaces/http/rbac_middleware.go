package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain/rbac"
)

// permissionChecker es el contrato mínimo que necesita el middleware para
// autorizar recurso/acción. Lo implementa *usecase.AccessGate; el uso de
// interfaz evita el import circular.
type permissionChecker interface {
	Authorize(ctx context.Context, role, resource string, action rbac.Action) rbac.Decision
}

// RequirePermission devuelve un middleware Fiber que consulta la matriz de
// permisos del rol para el recurso/acción. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalRole).
//
// Comportamiento:
//   - 401 Unauthorized → sin rol en el token.
//   - 403 Forbidden    → permiso deshabilitado, rol sin configuración o fallo
//     al consultar el store (fail-closed: ante la duda, denegar).
func RequirePermission(resource string, action rbac.Action, gate permissionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := gate.Authorize(c.Context(), GetRole(c), resource, action)
		if decision.Allowed {
			return c.Next()
		}
		if decision.Reason == rbac.ReasonUnauthenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "identidad no autenticada",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "PERMISSION_DENIED",
			Message: "el rol no tiene habilitado " + string(action) + " sobre " + resource,
		})
	}
}
