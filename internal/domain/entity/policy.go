// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy represents a one-year insurance contract identified by its unique
// business reference. It owns its policyholders, the insured property and the
// payment taken at sale time.
type Policy struct {
	ID            uint            `json:"-"`              // Surrogate key assigned by the store.
	Reference     string          `json:"reference"`      // Globally unique business reference, max 50 chars.
	StartDate     time.Time       `json:"start_date"`     // First day of cover.
	EndDate       time.Time       `json:"end_date"`       // Always start date + 1 year at creation.
	Amount        decimal.Decimal `json:"amount"`         // Total premium for the term.
	HasOpenClaim  bool            `json:"has_open_claim"` // An active claim blocks cancellation.
	AutoRenew     bool            `json:"auto_renew"`     // Whether payment should be collected on renewal.
	Policyholders []Policyholder  `json:"policyholders"`  // Between 1 and 3 holders.
	Property      *Property       `json:"property,omitempty"`
	Payment       *Payment        `json:"payment,omitempty"`
}

// Policyholder is a named person covered by a policy. Holders must already be
// over 16 on the policy start date; this is enforced at sale time only.
type Policyholder struct {
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// Property is the insured address attached to a policy.
type Property struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	Postcode     string `json:"postcode"`
}
