package migrations

import (
	"gorm.io/gorm"
)

// Run applies the orders schema. Intended to replace adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(&orderRecord{})
}

// Order schema mirrors the orders Postgres adapter.
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
