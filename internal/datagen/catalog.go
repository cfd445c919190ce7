package datagen

// Fixed catalogs the generator draws from. Unit prices are per item per
// vendor; distances are fixed per vendor in kilometers.

type catalogVendor struct {
	Name       string
	Details    string
	UnitPrices map[string]float64
	DistanceKm float64
}

var itemNames = []string{"Paracetamol", "Ibuprofen", "Amoxicillin"}

var vendors = []catalogVendor{
	{
		Name:    "PharmaCorp",
		Details: "4 star",
		UnitPrices: map[string]float64{
			"Paracetamol": 2.5,
			"Ibuprofen":   3.0,
			"Amoxicillin": 5.0,
		},
		DistanceKm: 50,
	},
	{
		Name:    "MediSupply",
		Details: "3 star",
		UnitPrices: map[string]float64{
			"Paracetamol": 2.0,
			"Ibuprofen":   2.8,
			"Amoxicillin": 4.8,
		},
		DistanceKm: 75,
	},
}

var departments = []string{"Emergency", "Pediatrics", "Surgery"}

var externalFactors = []string{
	"Clear weather, Moderate traffic",
	"Rainy weather, Heavy traffic",
	"Sunny weather, Light traffic",
	"Foggy weather, Delayed traffic",
}
