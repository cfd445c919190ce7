package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
)

// Service orchestrates the delay-determination and fault-adjudication use case.
type Service struct {
	repo        ports.Repository
	adjudicator ports.Adjudicator
	now         func() time.Time
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithClock overrides the wall clock, pinning date arithmetic in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService wires the resolver with its dataset and adjudication dependencies.
func NewService(repo ports.Repository, adjudicator ports.Adjudicator, opts ...Option) *Service {
	s := &Service{repo: repo, adjudicator: adjudicator, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// ResolveCase looks up the order, decides lateness against the promised date
// plus buffer, and for late orders delegates the fault verdict to the
// adjudication service. The raw timestamp is compared, not a midnight
// normalization; the clock is injectable so callers can pin it.
func (s *Service) ResolveCase(ctx context.Context, itemID string) (*ports.Resolution, error) {
	order, err := s.repo.GetByItemID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	late, err := order.Late(now)
	if err != nil {
		return nil, mapError(err)
	}
	if !late {
		return &ports.Resolution{
			ItemID:  itemID,
			Outcome: ports.OutcomeOnTime,
			Message: fmt.Sprintf("The order with ID %s should be delivered soon.", itemID),
		}, nil
	}

	delayDays, err := order.DelayDays(now)
	if err != nil {
		return nil, mapError(err)
	}
	prompt := buildAdjudicationPrompt(order, delayDays)
	verdict, err := s.adjudicator.Adjudicate(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAdjudication, err)
	}
	return &ports.Resolution{
		ItemID:    itemID,
		Outcome:   ports.OutcomeAdjudicated,
		DelayDays: delayDays,
		Message:   fmt.Sprintf("Decision on the order with ID %s: %s", itemID, strings.TrimSpace(verdict)),
	}, nil
}

var _ ports.Service = (*Service)(nil)
