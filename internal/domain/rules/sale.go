package rules

import (
	"time"

	"coverd/internal/domain/entity"
	domainerrors "coverd/internal/domain/errors"
)

const (
	// SaleWindowDays is how far ahead a policy may start, inclusive.
	SaleWindowDays = 60

	// MinPolicyholders and MaxPolicyholders bound the holder list.
	MinPolicyholders = 1
	MaxPolicyholders = 3

	// MinHolderAgeYears is the minimum age of every holder on the start date.
	// The boundary is exclusive: turning 16 on the start date is not enough.
	MinHolderAgeYears = 16
)

// ValidateSale applies the sale-time business rules to a policy built from an
// incoming sale request, failing fast on the first violation. Reference
// uniqueness is checked by the caller against the store before this runs.
func ValidateSale(policy *entity.Policy, now time.Time) error {
	today := DateOnly(now)
	start := DateOnly(policy.StartDate)

	if start.Before(today) || start.After(today.AddDate(0, 0, SaleWindowDays)) {
		return domainerrors.NewBusinessRuleViolation("The policy start date must be within the next 60 days")
	}

	if !DateOnly(policy.EndDate).Equal(start.AddDate(1, 0, 0)) {
		return domainerrors.NewBusinessRuleViolation("The policy must last exactly one year")
	}

	if len(policy.Policyholders) < MinPolicyholders || len(policy.Policyholders) > MaxPolicyholders {
		return domainerrors.NewBusinessRuleViolation("The policy must have between 1 and 3 policyholders")
	}

	cutoff := start.AddDate(-MinHolderAgeYears, 0, 0)
	for _, holder := range policy.Policyholders {
		// Born on the cutoff date means the holder turns 16 on the start
		// date, which is rejected.
		if !DateOnly(holder.DateOfBirth).Before(cutoff) {
			return domainerrors.NewBusinessRuleViolation("All policyholders must be over the age of 16 on the policy start date")
		}
	}

	if policy.Property == nil || !IsValidUKPostcode(policy.Property.Postcode) {
		return domainerrors.NewBusinessRuleViolation("The provided property postcode is not a valid UK postcode")
	}

	return nil
}
