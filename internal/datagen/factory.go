package datagen

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"

	"github.com/medsupply/inventory-case-api/internal/domains/orders/domain"
)

// OrderFactory produces randomized order records from the fixed catalogs.
type OrderFactory struct {
	fake       faker.Faker
	startDate  time.Time
	windowDays int
}

// NewOrderFactory seeds the factory. The same seed reproduces the same run,
// item identifiers excepted.
func NewOrderFactory(seed int64, startDate time.Time, windowDays int) *OrderFactory {
	return &OrderFactory{
		fake:       faker.NewWithSeed(rand.NewSource(seed)),
		startDate:  startDate,
		windowDays: windowDays,
	}
}

// CreateOrder builds one record: a random item from a random vendor, with
// quantities, stock levels, priority, an external-factor string, and an order
// date inside the configured window.
func (of *OrderFactory) CreateOrder() *domain.Order {
	item := itemNames[of.fake.IntBetween(0, len(itemNames)-1)]
	vendor := vendors[of.fake.IntBetween(0, len(vendors)-1)]

	quantity := of.fake.IntBetween(20, 150)
	unitPrice := vendor.UnitPrices[item]
	stockBeforeOrder := of.fake.IntBetween(200, 1000)
	currentInventory := of.fake.IntBetween(10, 80)
	priority := domain.PriorityNo
	if of.fake.Bool() {
		priority = domain.PriorityYes
	}
	factor := externalFactors[of.fake.IntBetween(0, len(externalFactors)-1)]
	distance := vendor.DistanceKm

	orderDate := of.startDate.AddDate(0, 0, of.fake.IntBetween(1, of.windowDays))

	return &domain.Order{
		ItemID:                uuid.NewString(),
		ItemName:              item,
		Vendor:                domain.Vendor{Name: vendor.Name, Details: vendor.Details},
		Quantity:              &quantity,
		UnitPrice:             unitPrice,
		TotalPrice:            float64(quantity) * unitPrice,
		HospitalDepartment:    departments[of.fake.IntBetween(0, len(departments)-1)],
		StockBeforeOrder:      &stockBeforeOrder,
		CurrentInventory:      &currentInventory,
		Priority:              &priority,
		ExternalFactors:       &factor,
		OrderDate:             orderDate.Format(domain.OrderDateLayout),
		EstimatedDaysPromised: of.fake.IntBetween(7, 15),
		BufferDaysGiven:       of.fake.IntBetween(2, 5),
		DistanceKm:            &distance,
	}
}
