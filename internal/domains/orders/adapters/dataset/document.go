package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
)

// Document is the JSON wire shape of one order record. The generator writes
// it and the loader reads it, so the schema lives in one place.
type Document struct {
	ItemID                string         `json:"item_id"`
	ItemName              string         `json:"item_name"`
	Vendor                VendorDocument `json:"vendor"`
	Quantity              *int           `json:"quantity,omitempty"`
	UnitPrice             float64        `json:"unit_price"`
	TotalPrice            float64        `json:"total_price"`
	HospitalDepartment    string         `json:"hospital_department"`
	StockBeforeOrder      *int           `json:"stock_before_order,omitempty"`
	CurrentInventory      *int           `json:"current_inventory,omitempty"`
	Priority              *string        `json:"priority,omitempty"`
	ExternalFactors       *string        `json:"external_factor_encitation,omitempty"`
	OrderDate             string         `json:"order_date"`
	EstimatedDaysPromised int            `json:"estimated_days_promised"`
	BufferDaysGiven       int            `json:"buffer_days_given"`
	DistanceKm            *float64       `json:"distance,omitempty"`
}

// VendorDocument is the nested vendor object.
type VendorDocument struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// ToDomain maps the wire document onto the order aggregate.
func (d Document) ToDomain() *domain.Order {
	order := &domain.Order{
		ItemID:                d.ItemID,
		ItemName:              d.ItemName,
		Vendor:                domain.Vendor{Name: d.Vendor.Name, Details: d.Vendor.Details},
		Quantity:              d.Quantity,
		UnitPrice:             d.UnitPrice,
		TotalPrice:            d.TotalPrice,
		HospitalDepartment:    d.HospitalDepartment,
		StockBeforeOrder:      d.StockBeforeOrder,
		CurrentInventory:      d.CurrentInventory,
		ExternalFactors:       d.ExternalFactors,
		OrderDate:             d.OrderDate,
		EstimatedDaysPromised: d.EstimatedDaysPromised,
		BufferDaysGiven:       d.BufferDaysGiven,
		DistanceKm:            d.DistanceKm,
	}
	if d.Priority != nil {
		priority := domain.Priority(*d.Priority)
		order.Priority = &priority
	}
	return order
}

// FromDomain maps an order aggregate back to the wire document.
func FromDomain(order *domain.Order) Document {
	doc := Document{
		ItemID:                order.ItemID,
		ItemName:              order.ItemName,
		Vendor:                VendorDocument{Name: order.Vendor.Name, Details: order.Vendor.Details},
		Quantity:              order.Quantity,
		UnitPrice:             order.UnitPrice,
		TotalPrice:            order.TotalPrice,
		HospitalDepartment:    order.HospitalDepartment,
		StockBeforeOrder:      order.StockBeforeOrder,
		CurrentInventory:      order.CurrentInventory,
		ExternalFactors:       order.ExternalFactors,
		OrderDate:             order.OrderDate,
		EstimatedDaysPromised: order.EstimatedDaysPromised,
		BufferDaysGiven:       order.BufferDaysGiven,
		DistanceKm:            order.DistanceKm,
	}
	if order.Priority != nil {
		priority := string(*order.Priority)
		doc.Priority = &priority
	}
	return doc
}

// ReadFile parses a dataset file into order aggregates.
func ReadFile(path string) ([]*domain.Order, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var docs []Document
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	orders := make([]*domain.Order, 0, len(docs))
	for _, doc := range docs {
		orders = append(orders, doc.ToDomain())
	}
	return orders, nil
}

// WriteFile emits the orders as an indented JSON array.
func WriteFile(path string, orders []*domain.Order) error {
	docs := make([]Document, 0, len(orders))
	for _, order := range orders {
		docs = append(docs, FromDomain(order))
	}
	raw, err := json.MarshalIndent(docs, "", "    ")
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	return nil
}
