// Package api boots the storefront HTTP process: configuration, observability,
// storage, the three bounded contexts, and the gin router.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	catalogmemory "github.com/retaildesk/storefront-api/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/retaildesk/storefront-api/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/retaildesk/storefront-api/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/retaildesk/storefront-api/internal/domains/catalog/application"
	catalogports "github.com/retaildesk/storefront-api/internal/domains/catalog/ports"
	employeesmemory "github.com/retaildesk/storefront-api/internal/domains/employees/adapters/memory"
	employeespostgres "github.com/retaildesk/storefront-api/internal/domains/employees/adapters/persistence/postgres"
	employeesapp "github.com/retaildesk/storefront-api/internal/domains/employees/application"
	employeesports "github.com/retaildesk/storefront-api/internal/domains/employees/ports"
	"github.com/retaildesk/storefront-api/internal/domains/orders/adapters/catalogbridge"
	ordersmemory "github.com/retaildesk/storefront-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/retaildesk/storefront-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/retaildesk/storefront-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/retaildesk/storefront-api/internal/domains/orders/application"
	ordersports "github.com/retaildesk/storefront-api/internal/domains/orders/ports"
	"github.com/retaildesk/storefront-api/internal/platform/migrations"
	platformobservability "github.com/retaildesk/storefront-api/internal/platform/observability"
	platformpostgres "github.com/retaildesk/storefront-api/internal/platform/postgres"
	httpapi "github.com/retaildesk/storefront-api/internal/transport/http"
)

// Run boots the storefront HTTP API and blocks until the server exits.
func Run(ctx context.Context) error {
	const serviceName = "storefront-api"

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanup := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	defer cleanup()

	stores, err := buildStores(ctx, db, cfg, logger)
	if err != nil {
		return err
	}

	catalogService := catalogobs.New(
		catalogapp.NewService(stores.catalog, stores.settings),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	ordersService := ordersobs.New(
		ordersapp.NewService(stores.orders, catalogbridge.New(stores.catalog)),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	employeesService := employeesapp.NewService(stores.employees, stores.sessions, cfg.SessionTTL)

	router := httpapi.NewRouter(httpapi.NewHandlers(catalogService, ordersService, employeesService))
	router.Use(otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("storefront API listening",
		slog.String("addr", addr),
		slog.String("environment", cfg.Environment),
	)
	if err := router.Run(addr); err != nil {
		logger.Error("storefront API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

type stores struct {
	catalog   catalogports.Repository
	settings  catalogports.SettingsStore
	orders    ordersports.Repository
	employees employeesports.Repository
	sessions  employeesports.SessionStore
}

// buildStores wires all repositories against postgres when a connection is
// available and falls back to seeded in-memory stores otherwise.
func buildStores(ctx context.Context, db *gorm.DB, cfg Config, logger *slog.Logger) (*stores, error) {
	if db == nil {
		return buildMemoryStores(ctx, cfg, logger)
	}
	if err := migrations.Run(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := migrations.Seed(db, cfg.SeedDemoData); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}
	logger.Info("repositories configured with postgres", slog.Bool("demoData", cfg.SeedDemoData))
	return &stores{
		catalog:   catalogpostgres.NewRepository(db),
		settings:  catalogpostgres.NewSettingsStore(db),
		orders:    orderspostgres.NewRepository(db),
		employees: employeespostgres.NewRepository(db),
		sessions:  employeespostgres.NewSessionStore(db),
	}, nil
}

func buildMemoryStores(ctx context.Context, cfg Config, logger *slog.Logger) (*stores, error) {
	catalogRepo := catalogmemory.NewRepository()
	settings := catalogmemory.NewSettingsStore()
	employeeRepo := employeesmemory.NewRepository()
	if cfg.SeedDemoData {
		if err := seedMemory(ctx, catalogRepo, settings, employeeRepo); err != nil {
			return nil, fmt.Errorf("failed to seed in-memory stores: %w", err)
		}
		logger.Info("in-memory stores seeded with demo data")
	}
	return &stores{
		catalog:   catalogRepo,
		settings:  settings,
		orders:    ordersmemory.NewRepository(catalogRepo),
		employees: employeeRepo,
		sessions:  employeesmemory.NewSessionStore(),
	}, nil
}
