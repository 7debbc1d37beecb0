// Package orders manages purchase orders placed with suppliers.
package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Module is the cache and routing name of the order collection.
const Module = "orders"

// Status enumerates the order lifecycle.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

// Statuses lists every status in lifecycle order.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusInTransit, StatusDelivered, StatusCancelled}

// StatusBadges maps each status to its badge.
var StatusBadges = map[Status]shared.Badge{
	StatusPending:   {Variant: shared.BadgeWarning, Label: "Pending"},
	StatusConfirmed: {Variant: shared.BadgeSecondary, Label: "Confirmed"},
	StatusInTransit: {Variant: shared.BadgeDefault, Label: "In Transit"},
	StatusDelivered: {Variant: shared.BadgeSuccess, Label: "Delivered"},
	StatusCancelled: {Variant: shared.BadgeDestructive, Label: "Cancelled"},
}

// DeliveryLeadTime is the default gap between order date and expected delivery.
const DeliveryLeadTime = 14 * 24 * time.Hour

// SupplierRef is the supplier summary embedded in an order.
type SupplierRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LineItem is one ordered product.
type LineItem struct {
	Product   masterdata.Product `json:"product"`
	Quantity  int                `json:"quantity"`
	UnitPrice decimal.Decimal    `json:"unitPrice"`
}

// Total returns quantity × unit price.
func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is a purchase order. TotalAmount always equals the sum of line totals.
type Order struct {
	ID                   string          `json:"id"`
	OrderNumber          string          `json:"orderNumber"`
	Supplier             SupplierRef     `json:"supplier"`
	Items                []LineItem      `json:"items"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	Status               Status          `json:"status"`
	OrderDate            string          `json:"orderDate"`
	ExpectedDeliveryDate string          `json:"expectedDeliveryDate"`
	Notes                *string         `json:"notes,omitempty"`
}

// Recalculate recomputes TotalAmount from the lines.
func (o *Order) Recalculate() {
	total := decimal.Zero
	for _, line := range o.Items {
		total = total.Add(line.Total())
	}
	o.TotalAmount = total
}

// DeliveryOverdue reports whether an in-transit order should have arrived
// before now.
func (o Order) DeliveryOverdue(now time.Time) bool {
	if o.Status != StatusInTransit {
		return false
	}
	expected, err := time.Parse(time.DateOnly, o.ExpectedDeliveryDate)
	if err != nil {
		return false
	}
	return expected.Before(now)
}

// LineInput is the editable shape of a line.
type LineInput struct {
	ProductID string          `json:"productId" validate:"required"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"min=0"`
}

// Input is the editable shape of an order. There is no total field.
type Input struct {
	OrderNumber          string      `json:"orderNumber" validate:"required"`
	SupplierID           string      `json:"supplierId" validate:"required"`
	Items                []LineInput `json:"items" validate:"min=1,dive"`
	Status               Status      `json:"status" validate:"required,oneof=PENDING CONFIRMED IN_TRANSIT DELIVERED CANCELLED"`
	OrderDate            string      `json:"orderDate" validate:"required"`
	ExpectedDeliveryDate string      `json:"expectedDeliveryDate" validate:"required"`
	Notes                *string     `json:"notes,omitempty"`
}

// Input returns the editable fields of the order.
func (o Order) Input() Input {
	lines := make([]LineInput, 0, len(o.Items))
	for _, line := range o.Items {
		lines = append(lines, LineInput{ProductID: line.Product.ID, Quantity: line.Quantity, UnitPrice: line.UnitPrice})
	}
	return Input{
		OrderNumber:          o.OrderNumber,
		SupplierID:           o.Supplier.ID,
		Items:                lines,
		Status:               o.Status,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		Notes:                o.Notes,
	}
}

// NewInput returns the defaults of the create form: pending, dated today,
// due in two weeks, with one empty line.
func NewInput(orderNumber string, today time.Time) Input {
	return Input{
		OrderNumber:          orderNumber,
		Status:               StatusPending,
		OrderDate:            today.Format(time.DateOnly),
		ExpectedDeliveryDate: today.Add(DeliveryLeadTime).Format(time.DateOnly),
		Items:                []LineInput{{Quantity: 1, UnitPrice: decimal.Zero}},
	}
}

// Alerts groups orders that need attention.
type Alerts struct {
	Pending []Order `json:"pending"`
	Delayed []Order `json:"delayed"`
}

// BuildAlerts lists pending orders and overdue in-transit orders.
func BuildAlerts(all []Order, now time.Time) Alerts {
	alerts := Alerts{Pending: []Order{}, Delayed: []Order{}}
	for _, o := range all {
		if o.Status == StatusPending {
			alerts.Pending = append(alerts.Pending, o)
		}
		if o.DeliveryOverdue(now) {
			alerts.Delayed = append(alerts.Delayed, o)
		}
	}
	return alerts
}
