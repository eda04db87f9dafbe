package fund

import (
	"errors"
	"testing"
)

func TestReceiveRevenue(t *testing.T) {
	l := newTestLedger(t)
	fundTestLedger(t, l)

	// an unsecured proposal accepts no revenue.
	unsecured, err := l.SubmitProposal(charlie, "pending", EUR(5))
	if err != nil {
		t.Fatal(err)
	}
	if err := l.ReceiveRevenue(charlie, unsecured, EUR(1)); !errors.Is(err, ErrNotSecured) {
		t.Errorf("revenue on unsecured proposal error = %v, want ErrNotSecured", err)
	}

	index := securedTestProposal(t, l)

	if err := l.ReceiveRevenue(ali, index, EUR(50)); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("revenue by non-manager error = %v, want ErrUnauthorized", err)
	}
	if err := l.ReceiveRevenue(charlie, 42, EUR(50)); !errors.Is(err, ErrNotFound) {
		t.Errorf("revenue on unknown index error = %v, want ErrNotFound", err)
	}
	if err := l.ReceiveRevenue(charlie, index, EUR(0)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero revenue error = %v, want ErrInvalidAmount", err)
	}

	// scenario C: Charlie returns 50.
	if err := l.ReceiveRevenue(charlie, index, EUR(50)); err != nil {
		t.Fatal(err)
	}
	p, err := l.Proposal(index)
	if err != nil {
		t.Fatal(err)
	}
	if !p.RevenueReceived.Equal(EUR(50)) {
		t.Errorf("revenueReceived = %s, want %s", p.RevenueReceived, EUR(50))
	}
	if !p.RevenuePayed.IsZero() {
		t.Errorf("revenuePayed = %s, want zero", p.RevenuePayed)
	}
	// revenue never touches the pool principal.
	checkPool(t, l, 30, 20)
}

func TestDistributeRevenue(t *testing.T) {
	l := newTestLedger(t)
	fundTestLedger(t, l)
	index := securedTestProposal(t, l)
	if err := l.ReceiveRevenue(charlie, index, EUR(50)); err != nil {
		t.Fatal(err)
	}

	if _, err := l.DistributeRevenue(bob, index); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("distribution by non-owner error = %v, want ErrUnauthorized", err)
	}
	if _, err := l.DistributeRevenue(ali, 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("distribution on unknown index error = %v, want ErrNotFound", err)
	}

	// scenario D: managerCut = 50×20/100 = 10, remaining = 40,
	// weights Ali 10×110=1100, Bob 20×95=1900, total 3000,
	// Ali share = 40×1100/3000 = 14 (floor), Bob = 40×1900/3000 = 25,
	// dust = 40−14−25 = 1.
	dist, err := l.DistributeRevenue(ali, index)
	if err != nil {
		t.Fatal(err)
	}
	if !dist.ManagerCut.Equal(EUR(10)) {
		t.Errorf("manager cut = %s, want %s", dist.ManagerCut, EUR(10))
	}
	if !dist.Dust.Equal(EUR(1)) {
		t.Errorf("dust = %s, want %s", dist.Dust, EUR(1))
	}
	wantShares := map[Identity]int64{ali: 14, bob: 25}
	for _, s := range dist.Shares {
		if !s.Share.Equal(EUR(wantShares[s.Investor])) {
			t.Errorf("share[%s] = %s, want %s", s.Investor, s.Share, EUR(wantShares[s.Investor]))
		}
	}
	if len(dist.Shares) != 2 {
		t.Errorf("shares count = %d, want 2", len(dist.Shares))
	}

	if got := l.Investor(ali).Profit; !got.Equal(EUR(14)) {
		t.Errorf("Ali profit = %s, want %s", got, EUR(14))
	}
	if got := l.Investor(bob).Profit; !got.Equal(EUR(25)) {
		t.Errorf("Bob profit = %s, want %s", got, EUR(25))
	}
	if got := l.Manager(charlie).Profit; !got.Equal(EUR(10)) {
		t.Errorf("Charlie profit = %s, want %s", got, EUR(10))
	}

	p, err := l.Proposal(index)
	if err != nil {
		t.Fatal(err)
	}
	if !p.RevenuePayed.Equal(p.RevenueReceived) {
		t.Errorf("revenuePayed %s did not catch up to revenueReceived %s", p.RevenuePayed, p.RevenueReceived)
	}

	// distributing again with no fresh revenue is rejected and changes
	// nothing.
	if _, err := l.DistributeRevenue(ali, index); !errors.Is(err, ErrNothingToDistribute) {
		t.Errorf("second distribution error = %v, want ErrNothingToDistribute", err)
	}
	if got := l.Investor(ali).Profit; !got.Equal(EUR(14)) {
		t.Errorf("Ali profit moved to %s on failed distribution", got)
	}

	// fresh revenue creates a fresh undistributed delta.
	if err := l.ReceiveRevenue(charlie, index, EUR(100)); err != nil {
		t.Fatal(err)
	}
	dist, err = l.DistributeRevenue(ali, index)
	if err != nil {
		t.Fatal(err)
	}
	if !dist.Settled.Equal(EUR(100)) {
		t.Errorf("second settlement = %s, want %s", dist.Settled, EUR(100))
	}
}

// the distribution conserves value: Σ investor shares + manager cut ≤
// undistributed, gap bounded by the count of weighted investors.
func TestDistributeRevenue_ConservationAndDustBound(t *testing.T) {
	testCases := []struct {
		name    string
		revenue int64
	}{
		{"even split", 300},
		{"prime revenue", 97},
		{"one unit", 1},
		{"large", 1_000_000_007},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := newTestLedger(t)
			fundTestLedger(t, l)
			index := securedTestProposal(t, l)
			if err := l.ReceiveRevenue(charlie, index, EUR(tc.revenue)); err != nil {
				t.Fatal(err)
			}
			dist, err := l.DistributeRevenue(ali, index)
			if err != nil {
				t.Fatal(err)
			}

			payed := dist.ManagerCut
			for _, s := range dist.Shares {
				payed = payed.Add(s.Share)
			}
			if payed.Add(dist.Dust).Units() != tc.revenue {
				t.Errorf("cut+shares+dust = %s, want %d", payed.Add(dist.Dust), tc.revenue)
			}
			if dist.Dust.IsNegative() {
				t.Errorf("negative dust %s", dist.Dust)
			}
			// each floored division loses less than one unit: the manager
			// cut plus one per weighted investor.
			if dist.Dust.Units() > int64(len(dist.Shares)) {
				t.Errorf("dust %s exceeds weighted investor count %d", dist.Dust, len(dist.Shares))
			}
		})
	}
}

// an investor with zero funds in has zero weight and receives nothing.
func TestDistributeRevenue_ZeroWeightInvestor(t *testing.T) {
	l := newTestLedger(t)
	if err := l.AddInvestor(ali, "0xDAD", "Dave", 80); err != nil {
		t.Fatal(err)
	}
	fundTestLedger(t, l)
	index := securedTestProposal(t, l)
	if err := l.ReceiveRevenue(charlie, index, EUR(50)); err != nil {
		t.Fatal(err)
	}
	dist, err := l.DistributeRevenue(ali, index)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range dist.Shares {
		if s.Investor == "0xDAD" {
			t.Errorf("zero-funds investor got a share of %s", s.Share)
		}
	}
	if got := l.Investor("0xDAD").Profit; !got.IsZero() {
		t.Errorf("zero-funds investor profit = %s, want zero", got)
	}
}
