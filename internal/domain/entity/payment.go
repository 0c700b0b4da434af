package entity

import (
	"strings"

	"coverd/internal/errors"

	"github.com/shopspring/decimal"
)

// PaymentType is the closed set of payment methods a policy can be sold with.
type PaymentType string

const (
	PaymentTypeCard        PaymentType = "card"
	PaymentTypeDirectDebit PaymentType = "direct_debit"
	PaymentTypeCheque      PaymentType = "cheque"
)

// ErrUnknownPaymentType is returned when a payment type string cannot be parsed.
var ErrUnknownPaymentType = errors.New("unknown payment type")

// ParsePaymentType converts a wire-level string into a PaymentType.
func ParsePaymentType(s string) (PaymentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "card":
		return PaymentTypeCard, nil
	case "direct_debit", "directdebit":
		return PaymentTypeDirectDebit, nil
	case "cheque":
		return PaymentTypeCheque, nil
	default:
		return "", errors.Wrapf(ErrUnknownPaymentType, "%q", s)
	}
}

// Payment records how a policy was paid for. The reference is generated fresh
// at sale time and never reused; the amount mirrors the policy premium.
type Payment struct {
	Reference string          `json:"reference"`
	Type      PaymentType     `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
}
