// Package inventory holds stock records per product and warehouse.
package inventory

import (
	"time"

	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Module is the cache and routing name of the inventory collection.
const Module = "inventory"

// Status enumerates stock states.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusReserved  Status = "RESERVED"
	StatusDamaged   Status = "DAMAGED"
	StatusExpired   Status = "EXPIRED"
	StatusInTransit Status = "IN_TRANSIT"
)

// Statuses lists every status in display order.
var Statuses = []Status{StatusAvailable, StatusReserved, StatusDamaged, StatusExpired, StatusInTransit}

// StatusBadges maps each status to its badge.
var StatusBadges = map[Status]shared.Badge{
	StatusAvailable: {Variant: shared.BadgeSuccess, Label: "Available"},
	StatusReserved:  {Variant: shared.BadgeWarning, Label: "Reserved"},
	StatusDamaged:   {Variant: shared.BadgeDestructive, Label: "Damaged"},
	StatusExpired:   {Variant: shared.BadgeDestructive, Label: "Expired"},
	StatusInTransit: {Variant: shared.BadgeSecondary, Label: "In Transit"},
}

// LowStockThreshold is the quantity under which an item raises an alert.
const LowStockThreshold = 100

// ExpiryWindow is how far ahead an expiry date raises an alert.
const ExpiryWindow = 30 * 24 * time.Hour

// Item is a stock record with its product and warehouse resolved.
type Item struct {
	ID          string               `json:"id"`
	Quantity    int                  `json:"quantity"`
	Location    string               `json:"location"`
	Status      Status               `json:"status"`
	ExpiryDate  *string              `json:"expiryDate,omitempty"`
	LotNumber   *string              `json:"lotNumber,omitempty"`
	Product     masterdata.Product   `json:"product"`
	Warehouse   masterdata.Warehouse `json:"warehouse"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// Input is the editable shape of an item. References are ids.
type Input struct {
	ProductID   string  `json:"productId" validate:"required"`
	WarehouseID string  `json:"warehouseId" validate:"required"`
	Quantity    int     `json:"quantity" validate:"min=0"`
	Location    string  `json:"location" validate:"required"`
	Status      Status  `json:"status" validate:"required,oneof=AVAILABLE RESERVED DAMAGED EXPIRED IN_TRANSIT"`
	ExpiryDate  *string `json:"expiryDate,omitempty"`
	LotNumber   *string `json:"lotNumber,omitempty"`
}

// Input returns the editable fields of the item.
func (i Item) Input() Input {
	return Input{
		ProductID:   i.Product.ID,
		WarehouseID: i.Warehouse.ID,
		Quantity:    i.Quantity,
		Location:    i.Location,
		Status:      i.Status,
		ExpiryDate:  i.ExpiryDate,
		LotNumber:   i.LotNumber,
	}
}

// NewInput returns the defaults of the create form.
func NewInput() Input {
	return Input{Status: StatusAvailable}
}

// Alerts groups items that need attention.
type Alerts struct {
	LowStock []Item `json:"lowStock"`
	Expiring []Item `json:"expiring"`
}

// ExpiresBefore reports whether the item has an expiry date earlier than t.
// Unparseable dates never match.
func (i Item) ExpiresBefore(t time.Time) bool {
	if i.ExpiryDate == nil {
		return false
	}
	expiry, err := time.Parse(time.DateOnly, *i.ExpiryDate)
	if err != nil {
		return false
	}
	return expiry.Before(t)
}
