package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cemdis/cemdis-api/internal/application/analytics"
	"github.com/cemdis/cemdis-api/internal/application/auth"
	"github.com/cemdis/cemdis-api/internal/application/operations"
	"github.com/cemdis/cemdis-api/internal/application/usecase"
	"github.com/cemdis/cemdis-api/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AccessGate    *usecase.AccessGate
	RBACAdminUC   *usecase.RBACAdminUseCase
	SiteUC        *usecase.SiteEvaluationUseCase
	DistributorUC *usecase.DistributorUseCase
	WarehouseUC   *usecase.WarehouseUseCase
	ProductUC     *usecase.ProductUseCase
	OrderUC       *usecase.OrderUseCase
	DecideOrder   *operations.DecideOrderUseCase
	StockMovement *operations.StockMovementUseCase
	UserUC        *usecase.UserUseCase
	DashboardUC   *analytics.DashboardUseCase
	JWTSecret     string
}

// Router registra las rutas de la API. Cada grupo protegido pasa por
// AuthMiddleware (identidad) y RequirePermission (matriz recurso/acción).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	gate := deps.AccessGate

	// Auth: login público; register e identidad requieren token.
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register",
		AuthMiddleware(deps.JWTSecret),
		RequirePermission(rbac.ResourceAdministration, rbac.ActionCreate, gate),
		authHandler.Register)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Permisos del propio rol (cualquier identidad autenticada)
	rbacHandler := NewRBACHandler(gate, deps.RBACAdminUC)
	protected.Get("/rbac/me", rbacHandler.Me)

	// Planeación: evaluación de sitios candidatos
	planning := protected.Group("/planning",
		RequirePermission(rbac.ResourcePlanning, rbac.ActionView, gate))
	siteHandler := NewSiteHandler(deps.SiteUC)
	planning.Post("/sites/evaluate", siteHandler.Evaluate)

	// Red de distribución (capa del mapa + CRUD)
	distributors := protected.Group("/distributors")
	distributorHandler := NewDistributorHandler(deps.DistributorUC)
	distributors.Get("/", RequirePermission(rbac.ResourceDistribution, rbac.ActionView, gate), distributorHandler.List)
	distributors.Get("/:id", RequirePermission(rbac.ResourceDistribution, rbac.ActionView, gate), distributorHandler.GetByID)
	distributors.Post("/", RequirePermission(rbac.ResourceDistribution, rbac.ActionCreate, gate), distributorHandler.Create)
	distributors.Put("/:id", RequirePermission(rbac.ResourceDistribution, rbac.ActionEdit, gate), distributorHandler.Update)
	distributors.Delete("/:id", RequirePermission(rbac.ResourceDistribution, rbac.ActionDelete, gate), distributorHandler.Delete)

	// Bodegas e inventario (operaciones)
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC, deps.StockMovement)
	warehouses.Get("/", RequirePermission(rbac.ResourceOperations, rbac.ActionView, gate), warehouseHandler.List)
	warehouses.Get("/:id", RequirePermission(rbac.ResourceOperations, rbac.ActionView, gate), warehouseHandler.GetByID)
	warehouses.Post("/", RequirePermission(rbac.ResourceOperations, rbac.ActionCreate, gate), warehouseHandler.Create)
	warehouses.Put("/:id", RequirePermission(rbac.ResourceOperations, rbac.ActionEdit, gate), warehouseHandler.Update)
	warehouses.Delete("/:id", RequirePermission(rbac.ResourceOperations, rbac.ActionDelete, gate), warehouseHandler.Delete)
	warehouses.Post("/:id/movements", RequirePermission(rbac.ResourceOperations, rbac.ActionEdit, gate), warehouseHandler.RegisterMovement)

	// Referencias de cemento (catálogo operativo)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", RequirePermission(rbac.ResourceOperations, rbac.ActionView, gate), productHandler.List)
	products.Get("/:id", RequirePermission(rbac.ResourceOperations, rbac.ActionView, gate), productHandler.GetByID)
	products.Post("/", RequirePermission(rbac.ResourceOperations, rbac.ActionCreate, gate), productHandler.Create)
	products.Put("/:id", RequirePermission(rbac.ResourceOperations, rbac.ActionEdit, gate), productHandler.Update)

	// Pedidos: autoservicio del distribuidor
	orderHandler := NewOrderHandler(deps.OrderUC, deps.DecideOrder)
	orders := protected.Group("/orders")
	orders.Post("/", RequirePermission(rbac.ResourceDistribution, rbac.ActionCreate, gate), orderHandler.Create)
	orders.Get("/", RequirePermission(rbac.ResourceDistribution, rbac.ActionView, gate), orderHandler.ListMine)
	orders.Get("/:id", RequirePermission(rbac.ResourceDistribution, rbac.ActionView, gate), orderHandler.GetByID)

	// Pedidos: cola de aprobación de operaciones
	opsOrders := protected.Group("/operations/orders")
	opsOrders.Get("/", RequirePermission(rbac.ResourceOperations, rbac.ActionView, gate), orderHandler.ListPending)
	opsOrders.Post("/:id/approve", RequirePermission(rbac.ResourceOperations, rbac.ActionEdit, gate), orderHandler.Approve)
	opsOrders.Post("/:id/reject", RequirePermission(rbac.ResourceOperations, rbac.ActionEdit, gate), orderHandler.Reject)

	// Vista ejecutiva
	executive := protected.Group("/executive",
		RequirePermission(rbac.ResourceExecutive, rbac.ActionView, gate))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	executive.Get("/summary", dashboardHandler.Summary)

	// Panel de super administración: usuarios y matriz de roles
	admin := protected.Group("/admin")
	userHandler := NewUserHandler(deps.UserUC)
	admin.Get("/users", RequirePermission(rbac.ResourceAdministration, rbac.ActionView, gate), userHandler.List)
	admin.Put("/users/:id", RequirePermission(rbac.ResourceAdministration, rbac.ActionEdit, gate), userHandler.Update)
	admin.Delete("/users/:id", RequirePermission(rbac.ResourceAdministration, rbac.ActionDelete, gate), userHandler.Delete)
	admin.Get("/rbac", RequirePermission(rbac.ResourceAdministration, rbac.ActionView, gate), rbacHandler.List)
	admin.Put("/rbac/:role", RequirePermission(rbac.ResourceAdministration, rbac.ActionEdit, gate), rbacHandler.Save)
}
