package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/application/usecase"
	"github.com/cemdis/cemdis-api/internal/domain"
)

// DistributorHandler CRUD de la red de distribución (protegido).
type DistributorHandler struct {
	uc *usecase.DistributorUseCase
}

// NewDistributorHandler construye el handler.
func NewDistributorHandler(uc *usecase.DistributorUseCase) *DistributorHandler {
	return &DistributorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear distribuidor
// @Tags         distributors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDistributorRequest  true  "Datos del distribuidor"
// @Success      201   {object}  dto.DistributorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/distributors [post]
func (h *DistributorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	if in.Lat < -90 || in.Lat > 90 || in.Lng < -180 || in.Lng > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "coordenadas fuera de rango"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el distribuidor ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener distribuidor por ID
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del distribuidor"
// @Success      200  {object}  dto.DistributorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [get]
func (h *DistributorHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distribuidor no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar distribuidor
// @Tags         distributors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del distribuidor"
// @Param        body  body  dto.UpdateDistributorRequest  true  "Cambios parciales"
// @Success      200   {object}  dto.DistributorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/distributors/{id} [put]
func (h *DistributorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateDistributorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "distribuidor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar distribuidores
// @Tags         distributors
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.DistributorListResponse
// @Router       /api/distributors [get]
func (h *DistributorHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar distribuidor
// @Tags         distributors
// @Security     Bearer
// @Param        id  path  string  true  "ID del distribuidor"
// @Success      204
// @Router       /api/distributors/{id} [delete]
func (h *DistributorHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
