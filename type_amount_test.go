package fund

import (
	"encoding/json"
	"testing"
)

func TestAmount_Arithmetic(t *testing.T) {
	a := EUR(30)
	b := EUR(12)
	if got := a.Add(b); !got.Equal(EUR(42)) {
		t.Errorf("30+12 = %s", got)
	}
	if got := a.Sub(b); !got.Equal(EUR(18)) {
		t.Errorf("30-12 = %s", got)
	}
	if !EUR(0).IsZero() || EUR(1).IsZero() {
		t.Error("IsZero")
	}
	if !EUR(1).IsPositive() || EUR(0).IsPositive() || EUR(-1).IsPositive() {
		t.Error("IsPositive")
	}
	if !EUR(12).LessThan(EUR(30)) || EUR(30).LessThan(EUR(30)) {
		t.Error("LessThan")
	}
	if !EUR(30).GreaterThanOrEqual(EUR(30)) || EUR(29).GreaterThanOrEqual(EUR(30)) {
		t.Error("GreaterThanOrEqual")
	}
}

func TestAmount_WeakCurrency(t *testing.T) {
	// the "" currency is totally weak, it takes the other operand's.
	got := A(5, "").Add(EUR(5))
	if got.Currency() != "EUR" {
		t.Errorf("weak currency add = %q, want EUR", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("mismatched currencies did not panic")
		}
	}()
	EUR(1).Add(A(1, "USD"))
}

func TestAmount_String(t *testing.T) {
	// amounts are smallest units: 1234 cents.
	if got := EUR(1234).String(); got != "€12.34" {
		t.Errorf("String = %q, want %q", got, "€12.34")
	}
	if got := EUR(1234).SignedString(); got != "+€12.34" {
		t.Errorf("SignedString = %q", got)
	}
	if got := EUR(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
}

func TestRate_ApplyFloor(t *testing.T) {
	testCases := []struct {
		rate Rate
		in   int64
		want int64
	}{
		{20, 50, 10},
		{20, 97, 19},  // 19.4 floors
		{95, 1, 0},    // 0.95 floors
		{110, 10, 11}, // the owner rate exceeds 100 by design
		{0, 50, 0},
	}
	for _, tc := range testCases {
		if got := tc.rate.ApplyFloor(EUR(tc.in)); !got.Equal(EUR(tc.want)) {
			t.Errorf("%s of %d = %s, want %d", tc.rate, tc.in, got, tc.want)
		}
	}
}

func TestAmount_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(EUR(1234))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"currency":"EUR","amount":1234}` {
		t.Errorf("MarshalJSON = %s", b)
	}
	// the weak currency is omitted.
	b, err = json.Marshal(A(5, ""))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"amount":5}` {
		t.Errorf("MarshalJSON = %s", b)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		cur     string
		want    int64
		wantErr bool
	}{
		{in: "10.50", cur: "EUR", want: 1050},
		{in: "10", cur: "EUR", want: 1000},
		{in: "0.01", cur: "EUR", want: 1},
		{in: "-3.25", cur: "EUR", want: -325},
		{in: "100", cur: "JPY", want: 100},
		{in: "10.555", cur: "EUR", wantErr: true},
		{in: "ten", cur: "EUR", wantErr: true},
		{in: "10", cur: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseAmount(tc.in, tc.cur)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseAmount(%q, %q) error = nil, want error", tc.in, tc.cur)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q, %q) error = %v", tc.in, tc.cur, err)
			continue
		}
		if got.Units() != tc.want {
			t.Errorf("ParseAmount(%q, %q) = %d units, want %d", tc.in, tc.cur, got.Units(), tc.want)
		}
	}
}
