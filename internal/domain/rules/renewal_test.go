package rules

import (
	"testing"
	"time"

	"coverd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func renewablePolicy(end time.Time, paymentType entity.PaymentType) *entity.Policy {
	return &entity.Policy{
		Reference: "POL-001",
		StartDate: end.AddDate(-1, 0, 0),
		EndDate:   end,
		Payment: &entity.Payment{
			Reference: "a2f1c9d0",
			Type:      paymentType,
		},
	}
}

func TestValidateRenewal_WithinWindow(t *testing.T) {
	now := date(2026, time.March, 10)

	// The window opens exactly 30 days before the end date.
	assert.NoError(t, ValidateRenewal(renewablePolicy(now.AddDate(0, 0, 30), entity.PaymentTypeCard), now))
	assert.NoError(t, ValidateRenewal(renewablePolicy(now.AddDate(0, 0, 1), entity.PaymentTypeDirectDebit), now))
}

func TestValidateRenewal_AfterEndDate(t *testing.T) {
	now := date(2026, time.March, 10)

	requireViolation(t, ValidateRenewal(renewablePolicy(now, entity.PaymentTypeCard), now),
		"Cannot renew a policy after its end date")
	requireViolation(t, ValidateRenewal(renewablePolicy(now.AddDate(0, 0, -10), entity.PaymentTypeCard), now),
		"Cannot renew a policy after its end date")
}

func TestValidateRenewal_TooEarly(t *testing.T) {
	now := date(2026, time.March, 10)

	requireViolation(t, ValidateRenewal(renewablePolicy(now.AddDate(0, 0, 31), entity.PaymentTypeCard), now),
		"A policy can only be renewed within 30 days of its end date")
}

func TestValidateRenewal_ChequeNotRenewable(t *testing.T) {
	now := date(2026, time.March, 10)

	requireViolation(t, ValidateRenewal(renewablePolicy(now.AddDate(0, 0, 10), entity.PaymentTypeCheque), now),
		"Only direct debit and card payment policies can be renewed using this method")

	missingPayment := renewablePolicy(now.AddDate(0, 0, 10), entity.PaymentTypeCard)
	missingPayment.Payment = nil
	requireViolation(t, ValidateRenewal(missingPayment, now),
		"Only direct debit and card payment policies can be renewed using this method")
}

func TestRenew_AdvancesTermByOneYear(t *testing.T) {
	end := date(2026, time.April, 1)
	policy := renewablePolicy(end, entity.PaymentTypeCard)

	Renew(policy)

	assert.Equal(t, end, policy.StartDate)
	assert.Equal(t, end.AddDate(1, 0, 0), policy.EndDate)
}
