package fund

import (
	"errors"
	"slices"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "valid", cfg: Config{Owner: ali, OwnerNickname: "Ali", ApproveShareThreshold: 60}},
		{name: "threshold at zero", cfg: Config{Owner: ali, ApproveShareThreshold: 0}},
		{name: "threshold at hundred", cfg: Config{Owner: ali, ApproveShareThreshold: 100}},
		{name: "threshold above hundred", cfg: Config{Owner: ali, ApproveShareThreshold: 101}, wantErr: true},
		{name: "negative threshold", cfg: Config{Owner: ali, ApproveShareThreshold: -1}, wantErr: true},
		{name: "missing owner", cfg: Config{ApproveShareThreshold: 60}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Errorf("New(%+v) error = %v, wantErr %v", tc.cfg, err, tc.wantErr)
			}
		})
	}
}

func TestNew_OwnerImplicitInvestor(t *testing.T) {
	l, err := New(Config{Owner: ali, OwnerNickname: "Ali", ApproveShareThreshold: 60, Currency: "EUR"})
	if err != nil {
		t.Fatal(err)
	}
	inv := l.Investor(ali)
	if inv == nil {
		t.Fatal("owner has no implicit investor record")
	}
	if inv.Nickname != "Ali" {
		t.Errorf("owner nickname = %q, want %q", inv.Nickname, "Ali")
	}
	if inv.ProfitRate != OwnerProfitRate {
		t.Errorf("owner profit rate = %s, want %s", inv.ProfitRate, OwnerProfitRate)
	}
	if !inv.FundsInvested.IsZero() {
		t.Errorf("owner starts with %s invested, want zero", inv.FundsInvested)
	}
	checkPool(t, l, 0, 0)
}

func TestAddInvestor(t *testing.T) {
	l := newTestLedger(t)

	// only the owner can register.
	if err := l.AddInvestor(bob, "0xDAD", "Dave", 80); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("AddInvestor by non-owner error = %v, want ErrUnauthorized", err)
	}
	// re-registration is never allowed, rates are immutable.
	if err := l.AddInvestor(ali, bob, "Bob again", 50); !errors.Is(err, ErrDuplicateIdentity) {
		t.Errorf("duplicate AddInvestor error = %v, want ErrDuplicateIdentity", err)
	}
	if got := l.Investor(bob).ProfitRate; got != 95 {
		t.Errorf("Bob's rate changed to %s after failed re-registration", got)
	}
	// a negative rate is rejected.
	if err := l.AddInvestor(ali, "0xDAD", "Dave", -5); err == nil {
		t.Error("negative rate accepted")
	}
}

func TestAddManager(t *testing.T) {
	l := newTestLedger(t)

	if err := l.AddManager(bob, "0xDAD", "Dave", 10); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("AddManager by non-owner error = %v, want ErrUnauthorized", err)
	}
	if err := l.AddManager(ali, charlie, "Charlie again", 30); !errors.Is(err, ErrDuplicateIdentity) {
		t.Errorf("duplicate AddManager error = %v, want ErrDuplicateIdentity", err)
	}
	// the same identity may hold both roles: roles are capabilities, not
	// classes.
	if err := l.AddManager(ali, bob, "Bob manages too", 15); err != nil {
		t.Errorf("investor cannot also be manager: %v", err)
	}
}

func TestLedger_Queries(t *testing.T) {
	l := newTestLedger(t)
	fundTestLedger(t, l)

	if l.Investor("0xNOBODY") != nil {
		t.Error("unknown identity resolved to an investor")
	}
	if l.Manager(bob) != nil {
		t.Error("investor identity resolved to a manager")
	}
	if _, err := l.Proposal(0); !errors.Is(err, ErrNotFound) {
		t.Errorf("Proposal(0) on empty pool error = %v, want ErrNotFound", err)
	}
	if _, err := l.Proposal(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Proposal(-1) error = %v, want ErrNotFound", err)
	}

	// queries return copies, not live records.
	inv := l.Investor(bob)
	inv.FundsInvested = EUR(9999)
	if got := l.Investor(bob).FundsInvested; !got.Equal(EUR(20)) {
		t.Errorf("mutating a query result leaked into the ledger: %s", got)
	}
}

func TestLedger_IterationOrder(t *testing.T) {
	l := newTestLedger(t)
	if err := l.AddInvestor(ali, "0xDAD", "Dave", 80); err != nil {
		t.Fatal(err)
	}

	var ids []Identity
	for id := range l.Investors() {
		ids = append(ids, id)
	}
	// registration order, the owner's implicit record first.
	want := []Identity{ali, bob, "0xDAD"}
	if !slices.Equal(ids, want) {
		t.Errorf("investor order = %v, want %v", ids, want)
	}
}
