package rules

import (
	"testing"
	"time"

	"coverd/internal/domain/entity"
	domainerrors "coverd/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func validSalePolicy(start time.Time) *entity.Policy {
	return &entity.Policy{
		Reference: "POL-001",
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
		Amount:    decimal.NewFromInt(365),
		Policyholders: []entity.Policyholder{
			{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: date(1990, time.June, 15)},
		},
		Property: &entity.Property{
			AddressLine1: "10 Downing Street",
			Postcode:     "SW1A 2AA",
		},
	}
}

func requireViolation(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, domainerrors.IsBusinessViolation(err))
	assert.Equal(t, reason, err.Error())
}

func TestValidateSale_Valid(t *testing.T) {
	now := date(2026, time.March, 10)

	assert.NoError(t, ValidateSale(validSalePolicy(now.AddDate(0, 0, 10)), now))
}

func TestValidateSale_StartDateWindow(t *testing.T) {
	now := date(2026, time.March, 10)

	// Today and the final day of the window are both acceptable.
	assert.NoError(t, ValidateSale(validSalePolicy(now), now))
	assert.NoError(t, ValidateSale(validSalePolicy(now.AddDate(0, 0, 60)), now))

	requireViolation(t, ValidateSale(validSalePolicy(now.AddDate(0, 0, 61)), now),
		"The policy start date must be within the next 60 days")
	requireViolation(t, ValidateSale(validSalePolicy(now.AddDate(0, 0, -1)), now),
		"The policy start date must be within the next 60 days")
}

func TestValidateSale_TermMustBeOneYear(t *testing.T) {
	now := date(2026, time.March, 10)

	policy := validSalePolicy(now.AddDate(0, 0, 10))
	policy.EndDate = policy.StartDate.AddDate(1, 0, 1)
	requireViolation(t, ValidateSale(policy, now), "The policy must last exactly one year")

	policy = validSalePolicy(now.AddDate(0, 0, 10))
	policy.EndDate = policy.StartDate.AddDate(0, 11, 30)
	requireViolation(t, ValidateSale(policy, now), "The policy must last exactly one year")
}

func TestValidateSale_PolicyholderCount(t *testing.T) {
	now := date(2026, time.March, 10)

	policy := validSalePolicy(now)
	policy.Policyholders = nil
	requireViolation(t, ValidateSale(policy, now), "The policy must have between 1 and 3 policyholders")

	policy = validSalePolicy(now)
	holder := policy.Policyholders[0]
	policy.Policyholders = []entity.Policyholder{holder, holder, holder, holder}
	requireViolation(t, ValidateSale(policy, now), "The policy must have between 1 and 3 policyholders")

	policy = validSalePolicy(now)
	policy.Policyholders = []entity.Policyholder{holder, holder, holder}
	assert.NoError(t, ValidateSale(policy, now))
}

func TestValidateSale_PolicyholderAge(t *testing.T) {
	now := date(2026, time.March, 10)
	start := now.AddDate(0, 0, 10)

	// Turning 16 on the start date is not enough.
	policy := validSalePolicy(start)
	policy.Policyholders[0].DateOfBirth = start.AddDate(-16, 0, 0)
	requireViolation(t, ValidateSale(policy, now),
		"All policyholders must be over the age of 16 on the policy start date")

	// Born a day earlier is already over 16 on the start date.
	policy = validSalePolicy(start)
	policy.Policyholders[0].DateOfBirth = start.AddDate(-16, 0, -1)
	assert.NoError(t, ValidateSale(policy, now))
}

func TestValidateSale_Postcode(t *testing.T) {
	now := date(2026, time.March, 10)

	policy := validSalePolicy(now)
	policy.Property = nil
	requireViolation(t, ValidateSale(policy, now),
		"The provided property postcode is not a valid UK postcode")

	policy = validSalePolicy(now)
	policy.Property.Postcode = "12345"
	requireViolation(t, ValidateSale(policy, now),
		"The provided property postcode is not a valid UK postcode")
}
