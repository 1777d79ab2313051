package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/application/usecase"
	"github.com/cemdis/cemdis-api/internal/domain"
)

// SiteHandler evaluación de sitios candidatos (módulo de planeación).
type SiteHandler struct {
	uc *usecase.SiteEvaluationUseCase
}

// NewSiteHandler construye el handler.
func NewSiteHandler(uc *usecase.SiteEvaluationUseCase) *SiteHandler {
	return &SiteHandler{uc: uc}
}

// Evaluate godoc
// @Summary      Evaluar ubicación candidata
// @Description  Calcula el puntaje determinista del sitio contra demanda, proyectos, vías, red de distribución y bodegas.
// @Tags         planning
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EvaluateSiteRequest  true  "lat, lng y período opcional de demanda"
// @Success      200   {object}  dto.SiteScoreResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/planning/sites/evaluate [post]
func (h *SiteHandler) Evaluate(c *fiber.Ctx) error {
	var in dto.EvaluateSiteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Evaluate(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lat debe estar en [-90,90] y lng en [-180,180]"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
