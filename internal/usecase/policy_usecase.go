// Package usecase defines the application's use case interfaces and their
// request/response payloads.
package usecase

import (
	"context"
	"time"

	"coverd/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SellPolicyInput carries the data needed to sell a new policy.
type SellPolicyInput struct {
	Reference     string
	StartDate     time.Time
	EndDate       time.Time
	Amount        decimal.Decimal
	AutoRenew     bool
	PaymentType   entity.PaymentType
	Policyholders []PolicyholderInput
	Property      *PropertyInput
}

// PolicyholderInput is one holder on a sale request.
type PolicyholderInput struct {
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// PropertyInput is the insured property on a sale request.
type PropertyInput struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	Postcode     string
}

// RenewalEligibility is the outcome of a renewal eligibility check. Reason is
// set only when CanRenew is false.
type RenewalEligibility struct {
	CanRenew bool   `json:"can_renew"`
	Reason   string `json:"reason,omitempty"`
}

// PolicyUsecase defines the interface for the policy lifecycle use cases.
// Business rule violations and not-found conditions come back as domain
// errors; anything else is an unexpected fault.
type PolicyUsecase interface {
	// Sell validates and persists a new policy with a freshly generated
	// payment reference.
	Sell(ctx context.Context, input *SellPolicyInput) (*entity.Policy, error)

	// Get retrieves a policy with its holders, property and payment.
	Get(ctx context.Context, reference string) (*entity.Policy, error)

	// Cancel computes the refund due for cancelling on the given date. No
	// cancelled state is persisted; only the refund figure is returned.
	Cancel(ctx context.Context, reference string, cancellationDate time.Time) (decimal.Decimal, error)

	// Renew advances the policy term by one year and persists the new dates.
	Renew(ctx context.Context, reference string) (*entity.Policy, error)

	// QuoteCancellationRefund computes the prorated refund for a hypothetical
	// cancellation without changing anything.
	QuoteCancellationRefund(ctx context.Context, reference string, cancellationDate time.Time) (decimal.Decimal, error)

	// CheckRenewable reports whether the policy could be renewed right now,
	// with the blocking reason when it cannot.
	CheckRenewable(ctx context.Context, reference string) (*RenewalEligibility, error)
}
