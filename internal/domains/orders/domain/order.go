package domain

import (
	"errors"
	"strings"
	"time"
)

// OrderDateLayout is the strict wire format for order dates.
const OrderDateLayout = "2006-01-02"

// Priority flags hospital-critical medicine orders.
type Priority string

const (
	PriorityYes Priority = "Yes"
	PriorityNo  Priority = "No"
)

// Vendor identifies the supplier responsible for fulfilling an order.
type Vendor struct {
	Name    string
	Details string
}

// Order represents one inventory/delivery entry keyed by item identifier.
// Optional context fields are pointers so absence survives into the
// adjudication fallbacks instead of collapsing to zero values.
type Order struct {
	ItemID                string
	ItemName              string
	Vendor                Vendor
	Quantity              *int
	UnitPrice             float64
	TotalPrice            float64
	HospitalDepartment    string
	StockBeforeOrder      *int
	CurrentInventory      *int
	Priority              *Priority
	ExternalFactors       *string
	OrderDate             string
	EstimatedDaysPromised int
	BufferDaysGiven       int
	DistanceKm            *float64
}

var (
	ErrMissingOrderDate = errors.New("order date is missing")
	ErrBadOrderDate     = errors.New("order date is not a valid YYYY-MM-DD value")
)

// ExpectedDelivery computes the promised delivery date: order date plus the
// estimated days plus the buffer days. Absent day counts count as zero.
func (o *Order) ExpectedDelivery() (time.Time, error) {
	raw := strings.TrimSpace(o.OrderDate)
	if raw == "" {
		return time.Time{}, ErrMissingOrderDate
	}
	orderDate, err := time.Parse(OrderDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrBadOrderDate
	}
	return orderDate.AddDate(0, 0, o.EstimatedDaysPromised+o.BufferDaysGiven), nil
}

// DelayDays returns the whole-day delay of the order at the given instant,
// truncated toward zero. Negative durations truncate to zero or below and
// only matter to callers who already know the order is late.
func (o *Order) DelayDays(now time.Time) (int, error) {
	expected, err := o.ExpectedDelivery()
	if err != nil {
		return 0, err
	}
	return int(now.Sub(expected).Hours() / 24), nil
}

// Late reports whether the instant is at or past the expected delivery date.
func (o *Order) Late(now time.Time) (bool, error) {
	expected, err := o.ExpectedDelivery()
	if err != nil {
		return false, err
	}
	return !now.Before(expected), nil
}
