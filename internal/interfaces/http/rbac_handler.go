package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/application/usecase"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/rbac"
)

// RBACHandler expone la matriz de permisos: la del solicitante (para que el
// frontend arme el sidebar) y el panel de administración de roles.
type RBACHandler struct {
	gate    *usecase.AccessGate
	adminUC *usecase.RBACAdminUseCase
}

// NewRBACHandler construye el handler.
func NewRBACHandler(gate *usecase.AccessGate, adminUC *usecase.RBACAdminUseCase) *RBACHandler {
	return &RBACHandler{gate: gate, adminUC: adminUC}
}

// Me godoc
// @Summary      Permisos del rol del solicitante
// @Tags         rbac
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RoleConfigResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/rbac/me [get]
func (h *RBACHandler) Me(c *fiber.Ctx) error {
	role := GetRole(c)
	if role == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
	}
	var out dto.RoleConfigResponse
	out.Role = role
	cfg, err := h.gate.GetRoleConfig(c.Context(), role)
	if err != nil && err != domain.ErrNotFound {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if cfg != nil {
		out.Config.Permissions = cfg.Permissions
		out.Config.Sidebar = cfg.Sidebar
	}
	// Rol sin configuración: matriz vacía (el gate denegará todo igualmente)
	if out.Config.Permissions == nil {
		out.Config.Permissions = rbac.Matrix{}
	}
	if out.Config.Sidebar == nil {
		out.Config.Sidebar = []string{}
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Configuración de todos los roles
// @Tags         rbac
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RBACMatrixResponse
// @Router       /api/admin/rbac [get]
func (h *RBACHandler) List(c *fiber.Ctx) error {
	out, err := h.adminUC.ListRoleConfigs(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Reemplazar la matriz de un rol
// @Description  La configuración aplica en la siguiente petición: el gate relee el store cada vez.
// @Tags         rbac
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        role  path  string                       true  "rol a configurar"
// @Param        body  body  dto.UpdateRoleConfigRequest  true  "permisos y sidebar"
// @Success      200   {object}  rbac.RoleConfig
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/rbac/{role} [put]
func (h *RBACHandler) Save(c *fiber.Ctx) error {
	role := c.Params("role")
	var in dto.UpdateRoleConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.adminUC.SaveRoleConfig(c.Context(), role, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "rol, recurso o módulo desconocido (super_admin no se administra)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
