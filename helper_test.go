package fund

import "testing"

// the canonical pool of the original deployment: Ali owns, Bob invests at
// 95%, Charlie manages at a 20% fee, approval threshold 60%.
const (
	ali     = Identity("0xA11")
	bob     = Identity("0xB0B")
	charlie = Identity("0xC4A")
)

// EUR is a helper for tests to create amounts in EUR smallest units.
func EUR(v int64) Amount { return A(v, "EUR") }

// newTestLedger creates the canonical Ali/Bob/Charlie pool.
func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := New(Config{
		Owner:                 ali,
		OwnerNickname:         "Ali",
		ApproveShareThreshold: 60,
		Currency:              "EUR",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.AddInvestor(ali, bob, "Bob", 95); err != nil {
		t.Fatalf("AddInvestor: %v", err)
	}
	if err := l.AddManager(ali, charlie, "Charlie", 20); err != nil {
		t.Fatalf("AddManager: %v", err)
	}
	return l
}

// fundTestLedger deposits the canonical 10/20 split into the pool.
func fundTestLedger(t *testing.T, l *Ledger) {
	t.Helper()
	if err := l.Deposit(ali, EUR(10)); err != nil {
		t.Fatalf("Deposit(ali): %v", err)
	}
	if err := l.Deposit(bob, EUR(20)); err != nil {
		t.Fatalf("Deposit(bob): %v", err)
	}
}

// securedTestProposal submits a proposal requiring 10 and has Bob secure it.
func securedTestProposal(t *testing.T, l *Ledger) int {
	t.Helper()
	index, err := l.SubmitProposal(charlie, "Invest in project", EUR(10))
	if err != nil {
		t.Fatalf("SubmitProposal: %v", err)
	}
	secured, err := l.ApproveProposal(bob, index)
	if err != nil {
		t.Fatalf("ApproveProposal: %v", err)
	}
	if !secured {
		t.Fatalf("proposal %d did not secure on Bob's vote", index)
	}
	return index
}

// checkPool asserts the committed pool totals.
func checkPool(t *testing.T, l *Ledger, total, free int64) {
	t.Helper()
	if got := l.TotalFunds(); !got.Equal(EUR(total)) {
		t.Errorf("TotalFunds = %s, want %s", got, EUR(total))
	}
	if got := l.FreeFunds(); !got.Equal(EUR(free)) {
		t.Errorf("FreeFunds = %s, want %s", got, EUR(free))
	}
}
