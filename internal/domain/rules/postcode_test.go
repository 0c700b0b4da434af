package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidUKPostcode(t *testing.T) {
	tests := []struct {
		name     string
		postcode string
		want     bool
	}{
		{name: "standard", postcode: "SW1A 2AA", want: true},
		{name: "no space", postcode: "SW1A2AA", want: true},
		{name: "lowercase", postcode: "ec1a 1bb", want: true},
		{name: "short outward", postcode: "M1 1AE", want: true},
		{name: "double digit district", postcode: "CR2 6XH", want: true},
		{name: "surrounding whitespace", postcode: "  DN55 1PT  ", want: true},
		{name: "empty", postcode: "", want: false},
		{name: "whitespace only", postcode: "   ", want: false},
		{name: "digits only", postcode: "12345", want: false},
		{name: "missing inward", postcode: "SW1A", want: false},
		{name: "invalid inward letter", postcode: "SW1A 2AC", want: false},
		{name: "too many outward letters", postcode: "ABC1 2AA", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidUKPostcode(tt.postcode))
		})
	}
}
