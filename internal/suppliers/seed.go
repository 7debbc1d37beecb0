package suppliers

import (
	"time"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// SeedSuppliers returns the demo vendors.
func SeedSuppliers() []Supplier {
	updated := time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)
	return []Supplier{
		{
			ID: "sup1", CompanyName: "Tech Components Inc.", ContactName: "John Smith",
			Email: "john.smith@techcomponents.com", Phone: "+1 (555) 123-4567",
			Address: "123 Tech Street", City: "San Francisco", State: "CA", Country: "USA", PostalCode: "94105",
			TaxID: shared.StringPtr("12-3456789"), PaymentTerms: shared.StringPtr("Net 30"),
			LeadTime: 5, PerformanceRating: 4.8, IsActive: true, LastUpdated: updated,
		},
		{
			ID: "sup2", CompanyName: "Global Electronics Ltd.", ContactName: "Sarah Johnson",
			Email: "sarah.j@globalelectronics.com", Phone: "+1 (555) 987-6543",
			Address: "456 Global Ave", City: "New York", State: "NY", Country: "USA", PostalCode: "10001",
			TaxID: shared.StringPtr("98-7654321"), PaymentTerms: shared.StringPtr("Net 45"),
			LeadTime: 7, PerformanceRating: 4.2, IsActive: true, LastUpdated: updated,
		},
		{
			ID: "sup3", CompanyName: "Quality Parts Co.", ContactName: "Michael Brown",
			Email: "michael.b@qualityparts.com", Phone: "+1 (555) 456-7890",
			Address: "789 Quality Blvd", City: "Chicago", State: "IL", Country: "USA", PostalCode: "60601",
			TaxID: shared.StringPtr("45-6789012"), PaymentTerms: shared.StringPtr("Net 60"),
			LeadTime: 10, PerformanceRating: 3.5, IsActive: false, LastUpdated: updated,
		},
	}
}
