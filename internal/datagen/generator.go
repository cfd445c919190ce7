package datagen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/schollz/progressbar/v3"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/dataset"
	orderspostgres "github.com/medsupply/inventory-case-api/internal/domains/orders/adapters/persistence/postgres"
	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
	"github.com/medsupply/inventory-case-api/internal/platform/migrations"
	platformpostgres "github.com/medsupply/inventory-case-api/internal/platform/postgres"
)

// Generator produces a synthetic order dataset and writes it out.
type Generator struct {
	cfg    *Config
	logger *slog.Logger
}

// NewGenerator wires a generator for the given run configuration.
func NewGenerator(cfg *Config, logger *slog.Logger) *Generator {
	return &Generator{cfg: cfg, logger: logger}
}

// Generate builds the configured number of records.
func (g *Generator) Generate() []*domain.Order {
	factory := NewOrderFactory(g.cfg.Seed, g.cfg.StartDate, g.cfg.WindowDays)
	bar := progressbar.Default(int64(g.cfg.Count), "generating orders")
	orders := make([]*domain.Order, 0, g.cfg.Count)
	for i := 0; i < g.cfg.Count; i++ {
		orders = append(orders, factory.CreateOrder())
		_ = bar.Add(1)
	}
	return orders
}

// Run generates the dataset, writes the JSON file, and optionally imports the
// records into Postgres.
func (g *Generator) Run(ctx context.Context) error {
	orders := g.Generate()

	if err := dataset.WriteFile(g.cfg.OutputFile, orders); err != nil {
		return err
	}
	g.logger.Info("dataset written",
		slog.String("path", g.cfg.OutputFile),
		slog.Int("records", len(orders)),
	)

	if g.cfg.PostgresDSN == "" {
		return nil
	}
	return g.importPostgres(ctx, orders)
}

func (g *Generator) importPostgres(ctx context.Context, orders []*domain.Order) error {
	db, err := platformpostgres.Connect(ctx, g.cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("migrate orders schema: %w", err)
	}
	repo := orderspostgres.NewRepository(db)
	for _, order := range orders {
		if err := repo.Save(ctx, order); err != nil {
			return fmt.Errorf("import order %s: %w", order.ItemID, err)
		}
	}
	g.logger.Info("dataset imported into postgres", slog.Int("records", len(orders)))
	return nil
}
