package ports

import "context"

// Outcome tags how a case was resolved.
type Outcome string

const (
	// OutcomeOnTime means the order was still within its promised window.
	OutcomeOnTime Outcome = "on_time"
	// OutcomeAdjudicated means the order was late and a fault verdict was
	// obtained from the adjudication service.
	OutcomeAdjudicated Outcome = "adjudicated"
)

// Resolution is the answer to a solve-case request.
type Resolution struct {
	ItemID    string
	Outcome   Outcome
	DelayDays int
	Message   string
}

// Service defines the orders use cases exposed to adapters (inbound port).
type Service interface {
	ResolveCase(ctx context.Context, itemID string) (*Resolution, error)
}
