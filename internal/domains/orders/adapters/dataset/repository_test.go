package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
	"github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
)

const sampleDataset = `[
  {
    "item_id": "a1",
    "item_name": "Paracetamol",
    "vendor": {"name": "PharmaCorp", "details": "4 star"},
    "quantity": 120,
    "unit_price": 2.5,
    "total_price": 300.0,
    "hospital_department": "Emergency",
    "stock_before_order": 500,
    "current_inventory": 40,
    "priority": "Yes",
    "external_factor_encitation": "Rainy weather, Heavy traffic",
    "order_date": "2024-11-05",
    "estimated_days_promised": 10,
    "buffer_days_given": 3,
    "distance": 50
  },
  {
    "item_id": "a2",
    "item_name": "Ibuprofen",
    "vendor": {"name": "MediSupply", "details": "3 star"},
    "order_date": "2024-11-10"
  },
  {
    "item_id": "a1",
    "item_name": "Duplicate entry",
    "vendor": {"name": "MediSupply", "details": "3 star"},
    "order_date": "2024-12-01"
  }
]`

func writeTempDataset(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory_data.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ReadsRecords(t *testing.T) {
	repo, err := Load(writeTempDataset(t, sampleDataset))
	require.NoError(t, err)
	require.Equal(t, 3, repo.Len())

	order, err := repo.GetByItemID(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, "Paracetamol", order.ItemName)
	require.Equal(t, "PharmaCorp", order.Vendor.Name)
	require.NotNil(t, order.Quantity)
	require.Equal(t, 120, *order.Quantity)
	require.NotNil(t, order.Priority)
	require.Equal(t, domain.PriorityYes, *order.Priority)
	require.Equal(t, "2024-11-05", order.OrderDate)
	require.Equal(t, 10, order.EstimatedDaysPromised)
}

func TestLoad_OptionalFieldsStayAbsent(t *testing.T) {
	repo, err := Load(writeTempDataset(t, sampleDataset))
	require.NoError(t, err)

	order, err := repo.GetByItemID(context.Background(), "a2")
	require.NoError(t, err)
	require.Nil(t, order.Quantity)
	require.Nil(t, order.Priority)
	require.Nil(t, order.ExternalFactors)
	require.Nil(t, order.DistanceKm)
	require.Zero(t, order.EstimatedDaysPromised)
	require.Zero(t, order.BufferDaysGiven)
}

func TestGetByItemID_FirstMatchWinsOnDuplicates(t *testing.T) {
	repo, err := Load(writeTempDataset(t, sampleDataset))
	require.NoError(t, err)

	order, err := repo.GetByItemID(context.Background(), "a1")
	require.NoError(t, err)
	require.Equal(t, "Paracetamol", order.ItemName)
}

func TestGetByItemID_Unknown(t *testing.T) {
	repo, err := Load(writeTempDataset(t, sampleDataset))
	require.NoError(t, err)

	_, err = repo.GetByItemID(context.Background(), "nope")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	_, err := Load(writeTempDataset(t, "{not json"))
	require.Error(t, err)
}

func TestWriteFile_RoundTripsThroughLoad(t *testing.T) {
	repo, err := Load(writeTempDataset(t, sampleDataset))
	require.NoError(t, err)
	orders, err := repo.List(context.Background())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, WriteFile(out, orders))

	reloaded, err := Load(out)
	require.NoError(t, err)
	require.Equal(t, repo.Len(), reloaded.Len())

	order, err := reloaded.GetByItemID(context.Background(), "a2")
	require.NoError(t, err)
	require.Nil(t, order.Quantity)
	require.Equal(t, "2024-11-10", order.OrderDate)
}
