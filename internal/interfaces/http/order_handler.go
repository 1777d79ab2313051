package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/application/operations"
	"github.com/cemdis/cemdis-api/internal/application/usecase"
	"github.com/cemdis/cemdis-api/internal/domain"
)

// OrderHandler pedidos de distribuidor: autoservicio (crear/consultar los
// propios) y cola de aprobación de operaciones.
type OrderHandler struct {
	uc       *usecase.OrderUseCase
	decideUC *operations.DecideOrderUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *usecase.OrderUseCase, decideUC *operations.DecideOrderUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, decideUC: decideUC}
}

// Create godoc
// @Summary      Levantar pedido
// @Description  El pedido queda en pending a nombre del distribuidor del token.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "product_id, warehouse_id, tons"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	distributorID := GetDistributorID(c)
	if distributorID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el token no está asociado a un distribuidor"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), distributorID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, warehouse_id y tons > 0 son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "referencia de producto inexistente o inactiva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Description  Un distribuidor solo puede consultar sus propios pedidos.
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id, GetDistributorID(c))
	if err != nil {
		if err == domain.ErrForbidden {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el pedido pertenece a otro distribuidor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Pedidos del distribuidor del token
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/orders [get]
func (h *OrderHandler) ListMine(c *fiber.Ctx) error {
	distributorID := GetDistributorID(c)
	if distributorID == "" {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el token no está asociado a un distribuidor"})
	}
	limit, offset := pageParams(c)
	out, err := h.uc.ListByDistributor(c.Context(), distributorID, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListPending godoc
// @Summary      Cola de pedidos por estado (operaciones)
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Estado"  default(pending)
// @Param        limit   query  int     false  "Límite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.OrderListResponse
// @Router       /api/operations/orders [get]
func (h *OrderHandler) ListPending(c *fiber.Ctx) error {
	status := c.Query("status", "pending")
	limit, offset := pageParams(c)
	out, err := h.uc.ListByStatus(c.Context(), status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Approve godoc
// @Summary      Aprobar pedido
// @Description  Descuenta el tonelaje de la bodega asignada en la misma transacción.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true   "ID del pedido"
// @Param        body  body  dto.DecideOrderRequest  false  "Notas opcionales"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operations/orders/{id}/approve [post]
func (h *OrderHandler) Approve(c *fiber.Ctx) error {
	return h.decide(c, h.decideUC.Approve)
}

// Reject godoc
// @Summary      Rechazar pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true   "ID del pedido"
// @Param        body  body  dto.DecideOrderRequest  false  "Notas opcionales"
// @Success      200   {object}  dto.OrderResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/operations/orders/{id}/reject [post]
func (h *OrderHandler) Reject(c *fiber.Ctx) error {
	return h.decide(c, h.decideUC.Reject)
}

func (h *OrderHandler) decide(c *fiber.Ctx, fn func(ctx context.Context, orderID, operatorID string, in dto.DecideOrderRequest) (*dto.OrderResponse, error)) error {
	id := c.Params("id")
	var in dto.DecideOrderRequest
	// El cuerpo es opcional; ignorar errores de parseo con body vacío.
	_ = c.BodyParser(&in)
	out, err := fn(c.Context(), id, GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
		case domain.ErrOrderNotPending:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_PENDING", Message: "el pedido ya fue decidido"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "la bodega no cubre el tonelaje del pedido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

func pageParams(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", 20)
	offset = c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
