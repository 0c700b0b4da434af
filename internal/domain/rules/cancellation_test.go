package rules

import (
	"testing"
	"time"

	"coverd/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func yearPolicy(start time.Time, amount int64) *entity.Policy {
	return &entity.Policy{
		Reference: "POL-001",
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
		Amount:    decimal.NewFromInt(amount),
	}
}

func TestValidateCancellationDate(t *testing.T) {
	now := date(2026, time.March, 10)

	assert.NoError(t, ValidateCancellationDate(now, now))
	assert.NoError(t, ValidateCancellationDate(now.AddDate(0, 0, 30), now))

	requireViolation(t, ValidateCancellationDate(now.AddDate(0, 0, -1), now),
		"The cancellation date is in the past")
}

func TestValidateCancellable(t *testing.T) {
	policy := yearPolicy(date(2026, time.January, 1), 365)
	assert.NoError(t, ValidateCancellable(policy))

	policy.HasOpenClaim = true
	requireViolation(t, ValidateCancellable(policy),
		"A policy with an active claim cannot be cancelled")
}

func TestValidateRefundable(t *testing.T) {
	policy := yearPolicy(date(2026, time.January, 1), 365)
	assert.NoError(t, ValidateRefundable(policy))

	policy.HasOpenClaim = true
	requireViolation(t, ValidateRefundable(policy),
		"A policy with an active claim cannot be cancelled so no refund is available")
}

func TestCancellationRefund_FullBeforeStart(t *testing.T) {
	policy := yearPolicy(date(2026, time.January, 1), 365)

	refund := CancellationRefund(policy, date(2025, time.December, 20))
	assert.True(t, refund.Equal(decimal.NewFromInt(365)), "got %s", refund)
}

func TestCancellationRefund_FullDuringCoolOff(t *testing.T) {
	start := date(2026, time.January, 1)
	policy := yearPolicy(start, 365)

	for days := 0; days <= CoolOffDays; days++ {
		refund := CancellationRefund(policy, start.AddDate(0, 0, days))
		assert.True(t, refund.Equal(decimal.NewFromInt(365)), "day %d: got %s", days, refund)
	}
}

func TestCancellationRefund_ProratedAfterCoolOff(t *testing.T) {
	start := date(2026, time.January, 1)
	policy := yearPolicy(start, 365)

	// Day 15 is the first prorated day: 16 days used out of 365.
	refund := CancellationRefund(policy, start.AddDate(0, 0, 15))
	assert.True(t, refund.Equal(decimal.NewFromInt(349)), "got %s", refund)
}

func TestProratedRefund_CancellationDayCountsAsUsed(t *testing.T) {
	start := date(2026, time.January, 1)
	policy := yearPolicy(start, 365)

	// 150 days in: 151 used, 214 unused, premium of 365 over a 365-day term.
	refund := ProratedRefund(policy, start.AddDate(0, 0, 150))
	assert.True(t, refund.Equal(decimal.NewFromInt(214)), "got %s", refund)
}

func TestProratedRefund_RoundsToTwoDecimals(t *testing.T) {
	start := date(2026, time.January, 1)
	policy := yearPolicy(start, 100)

	// 181 days in: 183 unused days, 100 × 183/365 = 50.1369... → 50.14.
	refund := ProratedRefund(policy, start.AddDate(0, 0, 181))
	assert.Equal(t, "50.14", refund.StringFixed(2))
}

func TestProratedRefund_LastDayOfTerm(t *testing.T) {
	start := date(2026, time.January, 1)
	policy := yearPolicy(start, 365)

	refund := ProratedRefund(policy, start.AddDate(0, 0, 364))
	assert.True(t, refund.IsZero(), "got %s", refund)
}
