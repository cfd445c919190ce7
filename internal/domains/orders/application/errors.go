package application

import (
	"errors"
	"fmt"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
)

// ErrMalformedRecord signals a stored record whose date fields cannot be
// processed. It is a data defect, not a caller mistake.
var ErrMalformedRecord = errors.New("malformed order record")

// ErrAdjudication signals any failure obtaining a verdict from the external
// adjudication service.
var ErrAdjudication = errors.New("adjudication service failure")

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrMissingOrderDate) ||
		errors.Is(err, domain.ErrBadOrderDate) {
		return fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return err
}
