package fund

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AddInvestor registers a new investor with zero balances. Owner-only. The
// rate is fixed forever: any change requires a new identity.
func (l *Ledger) AddInvestor(caller, id Identity, nickname string, rate Rate) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.addInvestor(caller, id, nickname, rate); err != nil {
		return err
	}
	l.entries = append(l.entries, NewAddInvestor(Today(), caller, id, nickname, rate))
	return nil
}

func (l *Ledger) addInvestor(caller, id Identity, nickname string, rate Rate) error {
	if !l.isOwner(caller) {
		return fmt.Errorf("adding an investor requires the owner: %w", ErrUnauthorized)
	}
	if rate < 0 {
		return fmt.Errorf("negative profit rate %s", rate)
	}
	if _, exists := l.investors[id]; exists {
		return fmt.Errorf("investor %s: %w", id, ErrDuplicateIdentity)
	}
	l.createInvestor(id, nickname, rate)
	return nil
}

// AddManager registers a new manager with zero balances. Owner-only.
func (l *Ledger) AddManager(caller, id Identity, nickname string, rate Rate) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.addManager(caller, id, nickname, rate); err != nil {
		return err
	}
	l.entries = append(l.entries, NewAddManager(Today(), caller, id, nickname, rate))
	return nil
}

func (l *Ledger) addManager(caller, id Identity, nickname string, rate Rate) error {
	if !l.isOwner(caller) {
		return fmt.Errorf("adding a manager requires the owner: %w", ErrUnauthorized)
	}
	if rate < 0 {
		return fmt.Errorf("negative profit rate %s", rate)
	}
	if _, exists := l.managers[id]; exists {
		return fmt.Errorf("manager %s: %w", id, ErrDuplicateIdentity)
	}
	l.createManager(id, nickname, rate)
	return nil
}

// Deposit adds capital to the pool from a registered investor (the Owner
// included). There is no upper bound.
func (l *Ledger) Deposit(caller Identity, amount Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.deposit(caller, amount); err != nil {
		return err
	}
	l.entries = append(l.entries, NewDeposit(Today(), caller, amount))
	return nil
}

func (l *Ledger) deposit(caller Identity, amount Amount) error {
	inv, ok := l.investors[caller]
	if !ok {
		return fmt.Errorf("deposit requires an investor: %w", ErrUnauthorized)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("deposit of %s: %w", amount, ErrInvalidAmount)
	}
	inv.FundsInvested = inv.FundsInvested.Add(amount)
	l.totalFunds = l.totalFunds.Add(amount)
	l.freeFunds = l.freeFunds.Add(amount)
	return nil
}

// SubmitProposal appends a funding request at the next index. Manager-only.
// Availability against free funds is checked at securing time, not here.
func (l *Ledger) SubmitProposal(caller Identity, description string, required Amount) (index int, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	index, err = l.submitProposal(caller, description, required)
	if err != nil {
		return 0, err
	}
	l.entries = append(l.entries, NewSubmit(Today(), caller, description, required))
	return index, nil
}

func (l *Ledger) submitProposal(caller Identity, description string, required Amount) (int, error) {
	if _, ok := l.managers[caller]; !ok {
		return 0, fmt.Errorf("submitting a proposal requires a manager: %w", ErrUnauthorized)
	}
	if !required.IsPositive() {
		return 0, fmt.Errorf("required funds of %s: %w", required, ErrInvalidAmount)
	}
	p := &Proposal{
		Manager:         caller,
		Description:     description,
		RequiredFunds:   required,
		RevenueReceived: A(0, l.config.Currency),
		RevenuePayed:    A(0, l.config.Currency),
	}
	l.proposals = append(l.proposals, p)
	return len(l.proposals) - 1, nil
}

// ApproveProposal records a yes vote from an investor and re-evaluates the
// securing gate. A repeated vote from the same investor fails with
// ErrAlreadyVoted: a silent no-op would hide resubmission bugs from the
// presentation layer.
//
// The proposal secures atomically with the qualifying vote when the
// weighted approve share reaches the threshold and enough free capital
// exists. When the threshold is crossed but capital is short, the vote is
// still recorded and a later vote re-evaluates the gate; deposits alone
// never trigger securing.
func (l *Ledger) ApproveProposal(caller Identity, index int) (secured bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	secured, err = l.approveProposal(caller, index)
	if err != nil {
		return false, err
	}
	l.entries = append(l.entries, NewApprove(Today(), caller, index))
	return secured, nil
}

func (l *Ledger) approveProposal(caller Identity, index int) (bool, error) {
	if _, ok := l.investors[caller]; !ok {
		return false, fmt.Errorf("voting requires an investor: %w", ErrUnauthorized)
	}
	p, err := l.proposal(index)
	if err != nil {
		return false, err
	}
	if p.Secured {
		return false, fmt.Errorf("proposal %d: %w", index, ErrAlreadySecured)
	}
	if p.HasApproved(caller) {
		return false, fmt.Errorf("proposal %d: %w", index, ErrAlreadyVoted)
	}
	p.approvers = append(p.approvers, caller)

	if l.approveShare(p) < l.config.ApproveShareThreshold {
		return false, nil
	}
	if l.freeFunds.LessThan(p.RequiredFunds) {
		// threshold crossed but the pool cannot cover it yet: the vote
		// stays recorded, securing waits for a later qualifying vote.
		return false, nil
	}

	p.Secured = true
	m := l.managers[p.Manager]
	m.FundsSecured = m.FundsSecured.Add(p.RequiredFunds)
	l.freeFunds = l.freeFunds.Sub(p.RequiredFunds)
	return true, nil
}

// approveShare computes the approvers' weighted share of the pool as an
// integer percentage, floored. With no funds in the pool the share is
// treated as 0%: securing cannot occur.
func (l *Ledger) approveShare(p *Proposal) Rate {
	if l.totalFunds.IsZero() {
		return 0
	}
	approved := decimal.Zero
	for _, id := range p.approvers {
		approved = approved.Add(l.investors[id].FundsInvested.Decimal())
	}
	q, _ := approved.Mul(decimal.NewFromInt(100)).QuoRem(l.totalFunds.Decimal(), 0)
	return Rate(q.IntPart())
}
