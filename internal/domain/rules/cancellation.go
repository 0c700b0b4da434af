package rules

import (
	"time"

	"coverd/internal/domain/entity"
	domainerrors "coverd/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// CoolOffDays is the length of the cool-off period after the start date.
// Cancelling on any day up to and including day 14 yields a full refund.
const CoolOffDays = 14

// ValidateCancellationDate rejects cancellation dates in the past. This runs
// before the policy is even fetched.
func ValidateCancellationDate(cancellationDate, now time.Time) error {
	if DateOnly(cancellationDate).Before(DateOnly(now)) {
		return domainerrors.NewBusinessRuleViolation("The cancellation date is in the past")
	}

	return nil
}

// ValidateCancellable rejects cancellation of a policy with an active claim.
func ValidateCancellable(policy *entity.Policy) error {
	if policy.HasOpenClaim {
		return domainerrors.NewBusinessRuleViolation("A policy with an active claim cannot be cancelled")
	}

	return nil
}

// ValidateRefundable rejects a refund quote for a policy with an active claim.
func ValidateRefundable(policy *entity.Policy) error {
	if policy.HasOpenClaim {
		return domainerrors.NewBusinessRuleViolation("A policy with an active claim cannot be cancelled so no refund is available")
	}

	return nil
}

// CancellationRefund computes the refund due when a policy is cancelled on
// cancellationDate. Before the start date or within the cool-off period the
// full premium is returned; afterwards the refund is prorated over the unused
// days of the term.
func CancellationRefund(policy *entity.Policy, cancellationDate time.Time) decimal.Decimal {
	cancel := DateOnly(cancellationDate)
	start := DateOnly(policy.StartDate)

	if cancel.Before(start) || !cancel.After(start.AddDate(0, 0, CoolOffDays)) {
		return policy.Amount
	}

	return ProratedRefund(policy, cancellationDate)
}

// ProratedRefund scales the premium by the fraction of unused coverage days:
//
//	refund = amount × (totalDays − usedDays) / totalDays
//
// where the cancellation day itself counts as used. The result is rounded to
// two decimal places, ties away from zero.
func ProratedRefund(policy *entity.Policy, cancellationDate time.Time) decimal.Decimal {
	totalDays := daysBetween(policy.StartDate, policy.EndDate)
	usedDays := daysBetween(policy.StartDate, cancellationDate) + 1
	unusedDays := totalDays - usedDays

	refund := policy.Amount.
		Mul(decimal.NewFromInt(int64(unusedDays))).
		Div(decimal.NewFromInt(int64(totalDays)))

	return refund.Round(2)
}
