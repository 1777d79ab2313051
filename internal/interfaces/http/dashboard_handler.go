package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cemdis/cemdis-api/internal/application/analytics"
	"github.com/cemdis/cemdis-api/internal/application/dto"
)

// DashboardHandler resumen ejecutivo de despachos del mes.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen ejecutivo del mes en curso
// @Description  Toneladas despachadas, ingresos, backlog de pedidos y top distribuidores.
// @Tags         executive
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ExecutiveSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/executive/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
