//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
	"github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
	"github.com/medsupply/inventory-case-api/internal/platform/migrations"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("inventory_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func sampleOrder(itemID string) *domain.Order {
	quantity := 120
	stock := 500
	inventory := 40
	priority := domain.PriorityYes
	factors := "Rainy weather, Heavy traffic"
	distance := 50.0
	return &domain.Order{
		ItemID:                itemID,
		ItemName:              "Paracetamol",
		Vendor:                domain.Vendor{Name: "PharmaCorp", Details: "4 star"},
		Quantity:              &quantity,
		UnitPrice:             2.5,
		TotalPrice:            300,
		HospitalDepartment:    "Emergency",
		StockBeforeOrder:      &stock,
		CurrentInventory:      &inventory,
		Priority:              &priority,
		ExternalFactors:       &factors,
		OrderDate:             "2024-11-05",
		EstimatedDaysPromised: 10,
		BufferDaysGiven:       3,
		DistanceKm:            &distance,
	}
}

func TestRepository_SaveAndGetByItemID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := sampleOrder("a1")
	require.NoError(t, repo.Save(ctx, order))

	fetched, err := repo.GetByItemID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, order.ItemName, fetched.ItemName)
	assert.Equal(t, order.Vendor, fetched.Vendor)
	require.NotNil(t, fetched.Quantity)
	assert.Equal(t, 120, *fetched.Quantity)
	require.NotNil(t, fetched.Priority)
	assert.Equal(t, domain.PriorityYes, *fetched.Priority)
	assert.Equal(t, "2024-11-05", fetched.OrderDate)
	assert.Equal(t, 10, fetched.EstimatedDaysPromised)
	assert.Equal(t, 3, fetched.BufferDaysGiven)
}

func TestRepository_OptionalColumnsStayNull(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := &domain.Order{
		ItemID:    "sparse",
		ItemName:  "Ibuprofen",
		Vendor:    domain.Vendor{Name: "MediSupply", Details: "3 star"},
		OrderDate: "2024-11-10",
	}
	require.NoError(t, repo.Save(ctx, order))

	fetched, err := repo.GetByItemID(ctx, "sparse")
	require.NoError(t, err)
	assert.Nil(t, fetched.Quantity)
	assert.Nil(t, fetched.StockBeforeOrder)
	assert.Nil(t, fetched.CurrentInventory)
	assert.Nil(t, fetched.Priority)
	assert.Nil(t, fetched.ExternalFactors)
	assert.Nil(t, fetched.DistanceKm)
}

func TestRepository_SaveUpserts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	order := sampleOrder("a1")
	require.NoError(t, repo.Save(ctx, order))

	order.ItemName = "Paracetamol 500mg"
	require.NoError(t, repo.Save(ctx, order))

	fetched, err := repo.GetByItemID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol 500mg", fetched.ItemName)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	for _, id := range []string{"a1", "a2", "a3"} {
		require.NoError(t, repo.Save(ctx, sampleOrder(id)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestRepository_GetByItemID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)

	_, err := repo.GetByItemID(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
