package ports

import (
	"context"
	"errors"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository is the read side of the order dataset. Implementations hold an
// immutable snapshot loaded before serving starts, so lookups are safe to
// share across requests without locking.
type Repository interface {
	GetByItemID(ctx context.Context, itemID string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
