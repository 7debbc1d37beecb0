package inventory

import "github.com/odyssey-erp/supplyhub/internal/shared"

var schema = shared.NewSchema(map[string]string{
	"productId.required":   "Product is required",
	"warehouseId.required": "Warehouse is required",
	"quantity.min":         "Quantity must be positive",
	"location.required":    "Location is required",
	"status.oneof":         "Invalid status",
})

// Validate checks an inventory candidate. It returns nil when valid.
func Validate(in Input) shared.FieldErrors {
	return schema.Validate(in)
}
