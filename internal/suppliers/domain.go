// Package suppliers manages vendor records and their performance grading.
package suppliers

import (
	"fmt"
	"time"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Module is the cache and routing name of the supplier collection.
const Module = "suppliers"

// Activity filter values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Performance buckets.
const (
	PerformanceHigh   = "high"
	PerformanceMedium = "medium"
	PerformanceLow    = "low"
)

// Bucket boundaries on the 0-5 rating scale.
const (
	HighRating   = 4.5
	MediumRating = 3.5
)

// StatusBadges maps the activity status to its badge.
var StatusBadges = map[string]shared.Badge{
	StatusActive:   {Variant: shared.BadgeSuccess, Label: "Active"},
	StatusInactive: {Variant: shared.BadgeDestructive, Label: "Inactive"},
}

// PerformanceBadges maps each bucket to its badge variant.
var PerformanceBadges = map[string]shared.BadgeVariant{
	PerformanceHigh:   shared.BadgeSuccess,
	PerformanceMedium: shared.BadgeWarning,
	PerformanceLow:    shared.BadgeDestructive,
}

// Supplier is a vendor record.
type Supplier struct {
	ID                string    `json:"id"`
	CompanyName       string    `json:"companyName"`
	ContactName       string    `json:"contactName"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Address           string    `json:"address"`
	City              string    `json:"city"`
	State             string    `json:"state"`
	Country           string    `json:"country"`
	PostalCode        string    `json:"postalCode"`
	TaxID             *string   `json:"taxId,omitempty"`
	PaymentTerms      *string   `json:"paymentTerms,omitempty"`
	LeadTime          int       `json:"leadTime"`
	PerformanceRating float64   `json:"performanceRating"`
	IsActive          bool      `json:"isActive"`
	Notes             *string   `json:"notes,omitempty"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

// Input is the editable shape of a supplier.
type Input struct {
	CompanyName       string  `json:"companyName" validate:"required"`
	ContactName       string  `json:"contactName" validate:"required"`
	Email             string  `json:"email" validate:"email"`
	Phone             string  `json:"phone" validate:"required"`
	Address           string  `json:"address" validate:"required"`
	City              string  `json:"city" validate:"required"`
	State             string  `json:"state" validate:"required"`
	Country           string  `json:"country" validate:"required"`
	PostalCode        string  `json:"postalCode" validate:"required"`
	TaxID             *string `json:"taxId,omitempty"`
	PaymentTerms      *string `json:"paymentTerms,omitempty"`
	LeadTime          int     `json:"leadTime" validate:"min=0"`
	PerformanceRating float64 `json:"performanceRating" validate:"min=0,max=5"`
	IsActive          bool    `json:"isActive"`
	Notes             *string `json:"notes,omitempty"`
}

// Input returns the editable fields of the supplier.
func (s Supplier) Input() Input {
	return Input{
		CompanyName:       s.CompanyName,
		ContactName:       s.ContactName,
		Email:             s.Email,
		Phone:             s.Phone,
		Address:           s.Address,
		City:              s.City,
		State:             s.State,
		Country:           s.Country,
		PostalCode:        s.PostalCode,
		TaxID:             s.TaxID,
		PaymentTerms:      s.PaymentTerms,
		LeadTime:          s.LeadTime,
		PerformanceRating: s.PerformanceRating,
		IsActive:          s.IsActive,
		Notes:             s.Notes,
	}
}

// NewInput returns the defaults of the create form: a new vendor starts
// active with a 4.5 rating.
func NewInput() Input {
	return Input{Country: "USA", PerformanceRating: HighRating, IsActive: true}
}

// Status returns StatusActive or StatusInactive.
func (s Supplier) Status() string {
	if s.IsActive {
		return StatusActive
	}
	return StatusInactive
}

// PerformanceBucket grades a rating: high ≥ 4.5, medium in [3.5, 4.5),
// low below 3.5.
func PerformanceBucket(rating float64) string {
	switch {
	case rating >= HighRating:
		return PerformanceHigh
	case rating >= MediumRating:
		return PerformanceMedium
	default:
		return PerformanceLow
	}
}

// PerformanceBadge renders a rating as a badge labelled with one decimal.
func PerformanceBadge(rating float64) shared.Badge {
	return shared.Badge{
		Variant: PerformanceBadges[PerformanceBucket(rating)],
		Label:   fmt.Sprintf("%.1f", rating),
	}
}

// Alerts groups suppliers that need attention.
type Alerts struct {
	LowPerformance []Supplier `json:"lowPerformance"`
	Inactive       []Supplier `json:"inactive"`
}

// BuildAlerts lists low-rated and inactive suppliers.
func BuildAlerts(all []Supplier) Alerts {
	alerts := Alerts{LowPerformance: []Supplier{}, Inactive: []Supplier{}}
	for _, s := range all {
		if s.PerformanceRating < MediumRating {
			alerts.LowPerformance = append(alerts.LowPerformance, s)
		}
		if !s.IsActive {
			alerts.Inactive = append(alerts.Inactive, s)
		}
	}
	return alerts
}
