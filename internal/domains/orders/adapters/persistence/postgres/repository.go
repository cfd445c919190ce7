package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
	"github.com/medsupply/inventory-case-api/internal/domains/orders/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository serves order lookups from PostgreSQL using GORM. The serving
// path only reads; Save exists for the datagen import.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed repository. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&orderRecord{})
	}
	return repo
}

// orderRecord maps the order aggregate to a relational table.
type orderRecord struct {
	ItemID                string   `gorm:"primaryKey;column:item_id;size:64"`
	ItemName              string   `gorm:"column:item_name"`
	VendorName            string   `gorm:"column:vendor_name;index"`
	VendorDetails         string   `gorm:"column:vendor_details"`
	Quantity              *int     `gorm:"column:quantity"`
	UnitPrice             float64  `gorm:"column:unit_price"`
	TotalPrice            float64  `gorm:"column:total_price"`
	HospitalDepartment    string   `gorm:"column:hospital_department"`
	StockBeforeOrder      *int     `gorm:"column:stock_before_order"`
	CurrentInventory      *int     `gorm:"column:current_inventory"`
	Priority              *string  `gorm:"column:priority;type:varchar(8)"`
	ExternalFactors       *string  `gorm:"column:external_factor_encitation"`
	OrderDate             string   `gorm:"column:order_date;type:varchar(10)"`
	EstimatedDaysPromised int      `gorm:"column:estimated_days_promised"`
	BufferDaysGiven       int      `gorm:"column:buffer_days_given"`
	DistanceKm            *float64 `gorm:"column:distance_km"`
}

func (orderRecord) TableName() string { return "inventory_orders" }

// GetByItemID fetches an order by identifier.
func (r *Repository) GetByItemID(ctx context.Context, itemID string) (*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record orderRecord
	if err := r.db.WithContext(ctx).First(&record, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// List returns all orders.
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []orderRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, 0, len(records))
	for i := range records {
		orders = append(orders, records[i].toDomain())
	}
	return orders, nil
}

// Save inserts or updates an order. Used by the datagen import only.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	if order == nil {
		return errors.New("order is nil")
	}
	record := toRecord(order)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			UpdateAll: true,
		}).Create(&record).Error
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres order repository not configured")
	}
	return nil
}

func toRecord(order *domain.Order) orderRecord {
	rec := orderRecord{
		ItemID:                order.ItemID,
		ItemName:              order.ItemName,
		VendorName:            order.Vendor.Name,
		VendorDetails:         order.Vendor.Details,
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
		rec.Priority = &priority
	}
	return rec
}

func (r orderRecord) toDomain() *domain.Order {
	order := &domain.Order{
		ItemID:                r.ItemID,
		ItemName:              r.ItemName,
		Vendor:                domain.Vendor{Name: r.VendorName, Details: r.VendorDetails},
		Quantity:              r.Quantity,
		UnitPrice:             r.UnitPrice,
		TotalPrice:            r.TotalPrice,
		HospitalDepartment:    r.HospitalDepartment,
		StockBeforeOrder:      r.StockBeforeOrder,
		CurrentInventory:      r.CurrentInventory,
		ExternalFactors:       r.ExternalFactors,
		OrderDate:             r.OrderDate,
		EstimatedDaysPromised: r.EstimatedDaysPromised,
		BufferDaysGiven:       r.BufferDaysGiven,
		DistanceKm:            r.DistanceKm,
	}
	if r.Priority != nil {
		priority := domain.Priority(*r.Priority)
		order.Priority = &priority
	}
	return order
}
