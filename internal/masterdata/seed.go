package masterdata

import "github.com/shopspring/decimal"

// SeedProducts returns the demo catalogue.
func SeedProducts() []Product {
	return []Product{
		{ID: "prod1", SKU: "SKU-001", Name: "Industrial Sensor XL-5", Category: "Electronics", Price: decimal.RequireFromString("499.99"), Cost: decimal.NewFromInt(350)},
		{ID: "prod2", SKU: "SKU-002", Name: "Circuit Board A200", Category: "Electronics", Price: decimal.NewFromInt(345), Cost: decimal.NewFromInt(250)},
		{ID: "prod3", SKU: "SKU-003", Name: "Steel Connector S-100", Category: "Hardware", Price: decimal.RequireFromString("25.51"), Cost: decimal.NewFromInt(15)},
		{ID: "prod4", SKU: "SKU-004", Name: "Temperature Controller", Category: "Electronics", Price: decimal.RequireFromString("129.50"), Cost: decimal.NewFromInt(90)},
		{ID: "prod5", SKU: "SKU-005", Name: "Power Unit P-500", Category: "Electronics", Price: decimal.RequireFromString("799.99"), Cost: decimal.NewFromInt(600)},
	}
}

// SeedWarehouses returns the demo warehouses.
func SeedWarehouses() []Warehouse {
	return []Warehouse{
		{ID: "wh1", Name: "Main Warehouse", City: "New York", State: "NY"},
		{ID: "wh2", Name: "West Coast Hub", City: "Los Angeles", State: "CA"},
	}
}
