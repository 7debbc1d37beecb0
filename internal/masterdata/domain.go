// Package masterdata serves the read-only reference records (products and
// warehouses) that inventory items and orders point at.
package masterdata

import (
	"github.com/shopspring/decimal"
)

// Product is a catalogue entry. Products are never edited here.
type Product struct {
	ID       string          `json:"id"`
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Cost     decimal.Decimal `json:"cost"`
}

// Warehouse is a stocking location.
type Warehouse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}
