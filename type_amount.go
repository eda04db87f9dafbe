package fund

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount represents a quantity of capital as an integer count of the
// smallest currency unit (cents, wei, ...). All pool arithmetic is integer:
// there is no fractional unit anywhere in the ledger.
type Amount struct {
	value int64
	cur   string
}

// A creates an Amount of 'value' smallest currency units.
func A(value int64, currency string) Amount {
	return Amount{value: value, cur: currency}
}

// Units returns the raw number of smallest currency units.
func (a Amount) Units() int64 { return a.value }

// Currency returns the amount's currency code.
func (a Amount) Currency() string { return a.cur }

// currency returns the full currency metadata, never nil.
func (a Amount) currency() money.Currency {
	// the money.Money constructor is the only way to get a non-nil currency.
	return *money.New(0, a.cur).Currency()
}

// String formats the amount in its currency's usual display form.
func (a Amount) String() string {
	c := a.currency()
	return c.Formatter().Format(a.value)
}

func (a Amount) Equal(b Amount) bool            { return a.value == b.value && a.cur == b.cur }
func (a Amount) IsZero() bool                   { return a.value == 0 }
func (a Amount) IsPositive() bool               { return a.value > 0 }
func (a Amount) IsNegative() bool               { return a.value < 0 }
func (a Amount) LessThan(b Amount) bool         { return a.value < b.value }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value >= b.value }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value + b.value, cur: cur(a, b)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value - b.value, cur: cur(a, b)} }

// Decimal returns the amount as an exact decimal, still in smallest units.
func (a Amount) Decimal() decimal.Decimal { return decimal.NewFromInt(a.value) }

// cur merges the currencies of two operands, the "" currency is totally weak.
func cur(a, b Amount) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// SignedString returns the amount with an explicit sign, zero as "-".
func (a Amount) SignedString() string {
	if a.value == 0 {
		return "-"
	}
	if a.value > 0 {
		return "+" + a.String()
	}
	return a.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("currency", a.cur)
	w.Append("amount", a.value)
	return w.MarshalJSON()
}

// ParseAmount parses a decimal string like "10.50" into an Amount of the
// given currency, honoring the currency's number of fraction digits.
func ParseAmount(s, currency string) (Amount, error) {
	if currency == "" {
		return Amount{}, fmt.Errorf("missing currency")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	c := *money.New(0, currency).Currency()
	units := d.Shift(int32(c.Fraction))
	if !units.IsInteger() {
		return Amount{}, fmt.Errorf("amount %q has more decimals than %s allows (%d)", s, currency, c.Fraction)
	}
	return A(units.IntPart(), currency), nil
}
