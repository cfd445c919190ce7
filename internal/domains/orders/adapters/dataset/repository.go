package dataset

import (
	"context"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
	"github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository serves order lookups from an in-memory snapshot of the dataset
// file. The snapshot is loaded once and never mutated, so it is shared across
// requests without locking.
type Repository struct {
	orders []*domain.Order
}

// Load reads the dataset file and builds the repository. A missing or
// unparseable file is a startup failure, not a per-request error.
func Load(path string) (*Repository, error) {
	orders, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewRepository(orders), nil
}

// NewRepository wraps an already-loaded order sequence.
func NewRepository(orders []*domain.Order) *Repository {
	return &Repository{orders: orders}
}

// GetByItemID scans for the first record with a matching identifier. The
// dataset declares IDs unique; duplicates resolve to the first match.
func (r *Repository) GetByItemID(_ context.Context, itemID string) (*domain.Order, error) {
	for _, order := range r.orders {
		if order.ItemID == itemID {
			clone := *order
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

// List returns the full snapshot in file order.
func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		clone := *order
		list = append(list, &clone)
	}
	return list, nil
}

// Len reports the snapshot size, used at startup for logging.
func (r *Repository) Len() int {
	return len(r.orders)
}
