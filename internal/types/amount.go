package types

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// maxDigits bounds both the integer and the fractional digits of an amount.
// Values outside of it are read as zero so that sums stay finite.
const maxDigits = 30

// Amount is the monetary value of a single item.
//
// Clients send amounts as JSON numbers, numeric strings or empty strings.
// Everything that is not a number is read as zero, an empty string or null
// leaves the amount unset.
type Amount struct {
	value decimal.Decimal
	set   bool
}

// NewAmount returns a set Amount with the value d.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d, set: true}
}

// AmountFromFloat returns a set Amount for f. NaN, infinities and values
// out of range are zero.
func AmountFromFloat(f float64) Amount {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NewAmount(decimal.Zero)
	}
	return NewAmount(bounded(decimal.NewFromFloat(f)))
}

// ParseAmount reads an amount from its string representation.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return NewAmount(decimal.Zero)
	}

	return NewAmount(bounded(d))
}

// bounded returns zero for values with more than maxDigits integer or
// fractional digits. The check only looks at the exponent and the length
// of the coefficient, so it never expands huge exponents.
func bounded(d decimal.Decimal) decimal.Decimal {
	exp := int64(d.Exponent())
	if exp < -maxDigits || exp+int64(d.NumDigits()) > maxDigits {
		return decimal.Zero
	}
	return d
}

// Decimal returns the value of the amount, zero if it is unset.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// IsSet reports if the client sent a value for the amount.
func (a Amount) IsSet() bool {
	return a.set
}

// String returns the amount as a decimal string, or an empty string if unset.
func (a Amount) String() string {
	if !a.set {
		return ""
	}
	return a.value.String()
}

// MarshalJSON implements the json.Marshaler interface.
// Set amounts are written as numbers, unset ones as empty string.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.set {
		return []byte(`""`), nil
	}
	return []byte(a.value.String()), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// It never fails, values that cannot be read as a number are zero.
func (a *Amount) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))

	if raw == "null" {
		*a = Amount{}
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = NewAmount(decimal.Zero)
			return nil
		}

		*a = ParseAmount(s)
		return nil
	}

	*a = ParseAmount(raw)
	return nil
}
