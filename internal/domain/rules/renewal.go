package rules

import (
	"time"

	"coverd/internal/domain/entity"
	domainerrors "coverd/internal/domain/errors"
)

// RenewalWindowDays is how far before the end date a renewal may be taken.
const RenewalWindowDays = 30

// ValidateRenewal applies the renewal eligibility checks in order: the policy
// must not have ended, the renewal must fall within the 30-day window before
// the end date, and cheque-paid policies cannot renew through this path.
func ValidateRenewal(policy *entity.Policy, now time.Time) error {
	today := DateOnly(now)
	end := DateOnly(policy.EndDate)

	if !end.After(today) {
		return domainerrors.NewBusinessRuleViolation("Cannot renew a policy after its end date")
	}

	if end.AddDate(0, 0, -RenewalWindowDays).After(today) {
		return domainerrors.NewBusinessRuleViolation("A policy can only be renewed within 30 days of its end date")
	}

	if policy.Payment == nil || policy.Payment.Type == entity.PaymentTypeCheque {
		return domainerrors.NewBusinessRuleViolation("Only direct debit and card payment policies can be renewed using this method")
	}

	return nil
}

// Renew advances the policy term by one year: the old end date becomes the
// new start date. The one-year span is preserved by construction.
func Renew(policy *entity.Policy) {
	policy.StartDate = policy.EndDate
	policy.EndDate = policy.EndDate.AddDate(1, 0, 0)
}
