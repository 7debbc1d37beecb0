package orders

import "github.com/odyssey-erp/supplyhub/internal/shared"

var schema = shared.NewSchema(map[string]string{
	"supplierId.required":           "Supplier is required",
	"status.oneof":                  "Invalid status",
	"items.min":                     "At least one item is required",
	"items.productId.required":      "Product is required",
	"items.quantity.min":            "Quantity must be at least 1",
	"items.unitPrice.min":           "Unit price must be positive",
	"orderDate.required":            "Order date is required",
	"expectedDeliveryDate.required": "Expected delivery date is required",
})

// Validate checks an order candidate. It returns nil when valid.
func Validate(in Input) shared.FieldErrors {
	return schema.Validate(in)
}
