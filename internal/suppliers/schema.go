package suppliers

import "github.com/odyssey-erp/supplyhub/internal/shared"

var schema = shared.NewSchema(map[string]string{
	"leadTime.min":          "Lead time must be positive",
	"performanceRating.min": "Performance rating must be between 0 and 5",
	"performanceRating.max": "Performance rating must be between 0 and 5",
})

// Validate checks a supplier candidate. It returns nil when valid.
func Validate(in Input) shared.FieldErrors {
	return schema.Validate(in)
}
