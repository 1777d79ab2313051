package operations

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cemdis/cemdis-api/internal/application/dto"
	"github.com/cemdis/cemdis-api/internal/domain"
	"github.com/cemdis/cemdis-api/internal/domain/entity"
	"github.com/cemdis/cemdis-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (el TxRunner de prueba no abre transacción real)
// ──────────────────────────────────────────────────────────────────────────────

type memOrderRepo struct {
	orders map[string]*entity.Order
}

func (m *memOrderRepo) Create(_ context.Context, o *entity.Order) error {
	m.orders[o.ID] = o
	return nil
}
func (m *memOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	return m.orders[id], nil
}
func (m *memOrderRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Order, error) {
	return m.GetByID(ctx, id)
}
func (m *memOrderRepo) Update(_ context.Context, o *entity.Order) error {
	m.orders[o.ID] = o
	return nil
}
func (m *memOrderRepo) ListByDistributor(context.Context, string, int, int) ([]*entity.Order, error) {
	return nil, nil
}
func (m *memOrderRepo) ListByStatus(context.Context, string, int, int) ([]*entity.Order, error) {
	return nil, nil
}

type memWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (m *memWarehouseRepo) Create(_ context.Context, w *entity.Warehouse) error {
	m.warehouses[w.ID] = w
	return nil
}
func (m *memWarehouseRepo) GetByID(_ context.Context, id string) (*entity.Warehouse, error) {
	return m.warehouses[id], nil
}
func (m *memWarehouseRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Warehouse, error) {
	return m.GetByID(ctx, id)
}
func (m *memWarehouseRepo) Update(_ context.Context, w *entity.Warehouse) error {
	m.warehouses[w.ID] = w
	return nil
}
func (m *memWarehouseRepo) AdjustStock(_ context.Context, id string, delta decimal.Decimal) error {
	w := m.warehouses[id]
	w.StockTons = w.StockTons.Add(delta)
	return nil
}
func (m *memWarehouseRepo) List(context.Context, int, int) ([]*entity.Warehouse, error) {
	return nil, nil
}
func (m *memWarehouseRepo) ListAll(context.Context) ([]entity.Warehouse, error) { return nil, nil }
func (m *memWarehouseRepo) Delete(context.Context, string) error                { return nil }

type fakeTxRunner struct {
	orders     *memOrderRepo
	warehouses *memWarehouseRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.OrderRepository, repository.WarehouseRepository) error) error {
	return fn(f.orders, f.warehouses)
}

func newFixture(stock, orderTons string) (*fakeTxRunner, *entity.Order) {
	order := &entity.Order{
		ID:            "o1",
		DistributorID: "d1",
		ProductID:     "p1",
		WarehouseID:   "w1",
		Tons:          decimal.RequireFromString(orderTons),
		Status:        entity.OrderPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	tx := &fakeTxRunner{
		orders: &memOrderRepo{orders: map[string]*entity.Order{"o1": order}},
		warehouses: &memWarehouseRepo{warehouses: map[string]*entity.Warehouse{
			"w1": {ID: "w1", Name: "CD Norte", StockTons: decimal.RequireFromString(stock)},
		}},
	}
	return tx, order
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestApprove_DescuentaInventario(t *testing.T) {
	tx, _ := newFixture("100", "30")
	uc := NewDecideOrderUseCase(tx)

	out, err := uc.Approve(context.Background(), "o1", "op-7", dto.DecideOrderRequest{})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderApproved, out.Status)
	assert.Equal(t, "op-7", out.DecidedBy)
	require.NotNil(t, out.DecidedAt)

	stock := tx.warehouses.warehouses["w1"].StockTons
	assert.True(t, stock.Equal(decimal.RequireFromString("70")),
		"el inventario debe quedar en 70, quedó en %s", stock)
}

func TestApprove_InventarioInsuficiente(t *testing.T) {
	tx, order := newFixture("20", "30")
	uc := NewDecideOrderUseCase(tx)

	_, err := uc.Approve(context.Background(), "o1", "op-7", dto.DecideOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, entity.OrderPending, order.Status, "el pedido no debe cambiar de estado")
}

func TestApprove_PedidoYaDecidido(t *testing.T) {
	tx, order := newFixture("100", "30")
	order.Status = entity.OrderApproved
	uc := NewDecideOrderUseCase(tx)

	_, err := uc.Approve(context.Background(), "o1", "op-7", dto.DecideOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestApprove_PedidoInexistente(t *testing.T) {
	tx, _ := newFixture("100", "30")
	uc := NewDecideOrderUseCase(tx)

	_, err := uc.Approve(context.Background(), "no-existe", "op-7", dto.DecideOrderRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReject_NoTocaInventario(t *testing.T) {
	tx, _ := newFixture("100", "30")
	uc := NewDecideOrderUseCase(tx)

	out, err := uc.Reject(context.Background(), "o1", "op-7", dto.DecideOrderRequest{Notes: "sin cupo de transporte"})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderRejected, out.Status)
	assert.Equal(t, "sin cupo de transporte", out.Notes)
	stock := tx.warehouses.warehouses["w1"].StockTons
	assert.True(t, stock.Equal(decimal.RequireFromString("100")))
}

func TestStockMovement_EntradaYSalida(t *testing.T) {
	tx, _ := newFixture("50", "10")
	tx.warehouses.warehouses["w1"].CapacityTons = decimal.RequireFromString("120")
	uc := NewStockMovementUseCase(tx)

	out, err := uc.Register(context.Background(), "w1", dto.RegisterStockMovementRequest{Type: MovementIn, Tons: decimal.RequireFromString("40")})
	require.NoError(t, err)
	assert.True(t, out.StockTons.Equal(decimal.RequireFromString("90")))

	out, err = uc.Register(context.Background(), "w1", dto.RegisterStockMovementRequest{Type: MovementOut, Tons: decimal.RequireFromString("90")})
	require.NoError(t, err)
	assert.True(t, out.StockTons.IsZero())
}

func TestStockMovement_SalidaMayorAlInventario(t *testing.T) {
	tx, _ := newFixture("50", "10")
	uc := NewStockMovementUseCase(tx)

	_, err := uc.Register(context.Background(), "w1", dto.RegisterStockMovementRequest{Type: MovementOut, Tons: decimal.RequireFromString("60")})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestStockMovement_EntradaSuperaCapacidad(t *testing.T) {
	tx, _ := newFixture("100", "10")
	tx.warehouses.warehouses["w1"].CapacityTons = decimal.RequireFromString("120")
	uc := NewStockMovementUseCase(tx)

	_, err := uc.Register(context.Background(), "w1", dto.RegisterStockMovementRequest{Type: MovementIn, Tons: decimal.RequireFromString("50")})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestStockMovement_TipoInvalido(t *testing.T) {
	tx, _ := newFixture("50", "10")
	uc := NewStockMovementUseCase(tx)

	_, err := uc.Register(context.Background(), "w1", dto.RegisterStockMovementRequest{Type: "transfer", Tons: decimal.RequireFromString("5")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
