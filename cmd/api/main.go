package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/cemdis/cemdis-api/internal/application/analytics"
	"github.com/cemdis/cemdis-api/internal/application/auth"
	"github.com/cemdis/cemdis-api/internal/application/operations"
	"github.com/cemdis/cemdis-api/internal/application/usecase"
	"github.com/cemdis/cemdis-api/internal/infrastructure/postgres"
	httpRouter "github.com/cemdis/cemdis-api/internal/interfaces/http"
	"github.com/cemdis/cemdis-api/pkg/config"
	"github.com/cemdis/cemdis-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	distributorRepo := postgres.NewDistributorRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	rbacRepo := postgres.NewRBACRepository(pool)
	geodataRepo := postgres.NewGeodataRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	accessGate := usecase.NewAccessGate(rbacRepo)
	rbacAdminUC := usecase.NewRBACAdminUseCase(rbacRepo)
	siteUC := usecase.NewSiteEvaluationUseCase(geodataRepo, distributorRepo, warehouseRepo)
	distributorUC := usecase.NewDistributorUseCase(distributorRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo)
	decideOrderUC := operations.NewDecideOrderUseCase(txRunner)
	stockMovementUC := operations.NewStockMovementUseCase(txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "CemDis API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AccessGate:    accessGate,
		RBACAdminUC:   rbacAdminUC,
		SiteUC:        siteUC,
		DistributorUC: distributorUC,
		WarehouseUC:   warehouseUC,
		ProductUC:     productUC,
		OrderUC:       orderUC,
		DecideOrder:   decideOrderUC,
		StockMovement: stockMovementUC,
		UserUC:        userUC,
		DashboardUC:   dashboardUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
