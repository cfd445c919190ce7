package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	caseserver "github.com/medsupply/inventory-case-api/server"

	openaiclient "github.com/medsupply/inventory-case-api/internal/clients/http/openai"
	"github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/dataset"
	openaiadapter "github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/external/openai"
	ordersobs "github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/medsupply/inventory-case-api/internal/domains/orders/application"
	ordersports "github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
	"github.com/medsupply/inventory-case-api/internal/platform/migrations"
	platformobservability "github.com/medsupply/inventory-case-api/internal/platform/observability"
	platformpostgres "github.com/medsupply/inventory-case-api/internal/platform/postgres"
)

// Run boots the inventory case HTTP API with observability, the order
// dataset, and the adjudication client wired.
func Run(ctx context.Context) error {
	const serviceName = "inventory-case-api"
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

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	repo, cleanupRepo, err := buildOrderRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanupRepo()

	client, err := openaiclient.NewClient(cfg.OpenAIAPIKey, openaiclient.WithBaseURL(cfg.OpenAIBaseURL))
	if err != nil {
		return fmt.Errorf("failed to build adjudication client: %w", err)
	}
	adjudicator := openaiadapter.NewAdjudicator(client, cfg.OpenAIModel)

	coreService := ordersapp.NewService(repo, adjudicator)
	caseService := ordersobs.New(
		coreService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)

	handlers := caseserver.ApiHandleFunctions{
		CaseAPI: caseserver.NewCaseAPI(caseService),
	}
	router := caseserver.NewRouter(handlers)
	router.Use(otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("inventory case API listening",
		slog.String("addr", addr),
		slog.String("model", cfg.OpenAIModel),
	)
	if err := router.Run(addr); err != nil {
		logger.Error("inventory case API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// buildOrderRepository prefers Postgres when a DSN is configured and falls
// back to the dataset file. A missing or unparseable dataset file is fatal:
// the process cannot serve without it.
func buildOrderRepository(ctx context.Context, cfg Config, logger *slog.Logger) (ordersports.Repository, func(), error) {
	if cfg.PostgresDSN != "" {
		db, cleanup := platformpostgres.ConnectWithCleanup(ctx, cfg.PostgresDSN, logger)
		if db != nil {
			if err := migrations.Run(db); err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("failed to migrate orders schema: %w", err)
			}
			logger.Info("order repository configured with postgres")
			return orderspostgres.NewRepository(db), cleanup, nil
		}
		logger.Warn("postgres unavailable, falling back to dataset file")
	}
	repo, err := dataset.Load(cfg.DatasetPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load order dataset: %w", err)
	}
	logger.Info("order dataset loaded",
		slog.String("path", cfg.DatasetPath),
		slog.Int("records", repo.Len()),
	)
	return repo, func() {}, nil
}
