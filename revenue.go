package fund

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Distribution reports how one distribution settled an undistributed
// revenue delta. Shares are listed in investor registration order and only
// for investors with a positive weight.
type Distribution struct {
	Proposal   int
	Manager    Identity
	Settled    Amount // the undistributed delta this distribution caught up
	ManagerCut Amount
	Shares     []InvestorShare
	Dust       Amount // floor-division remainder, deliberately unclaimed
}

// InvestorShare is one investor's floored proportional share.
type InvestorShare struct {
	Investor Identity
	Share    Amount
}

// ReceiveRevenue records revenue paid in by the proposal's own manager.
// Revenue is tracked apart from principal: it never returns to the pool's
// free funds.
func (l *Ledger) ReceiveRevenue(caller Identity, index int, amount Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.receiveRevenue(caller, index, amount); err != nil {
		return err
	}
	l.entries = append(l.entries, NewReceive(Today(), caller, index, amount))
	return nil
}

func (l *Ledger) receiveRevenue(caller Identity, index int, amount Amount) error {
	p, err := l.proposal(index)
	if err != nil {
		return err
	}
	if p.Manager != caller {
		return fmt.Errorf("revenue on proposal %d requires its manager: %w", index, ErrUnauthorized)
	}
	if !p.Secured {
		return fmt.Errorf("proposal %d: %w", index, ErrNotSecured)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("revenue of %s: %w", amount, ErrInvalidAmount)
	}
	p.RevenueReceived = p.RevenueReceived.Add(amount)
	return nil
}

// DistributeRevenue settles the undistributed revenue of a proposal.
// Owner-only. The manager's fee is floored off the top, the remainder is
// split across investors proportionally to fundsInvested × profitRate with
// every division floored; the residual dust is left unclaimed and reported.
// After a distribution revenuePayed has caught up fully, so distributing
// again without fresh revenue fails with ErrNothingToDistribute.
func (l *Ledger) DistributeRevenue(caller Identity, index int) (*Distribution, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	dist, err := l.distributeRevenue(caller, index)
	if err != nil {
		return nil, err
	}
	l.entries = append(l.entries, NewDistribute(Today(), caller, index))
	return dist, nil
}

func (l *Ledger) distributeRevenue(caller Identity, index int) (*Distribution, error) {
	if !l.isOwner(caller) {
		return nil, fmt.Errorf("distributing revenue requires the owner: %w", ErrUnauthorized)
	}
	p, err := l.proposal(index)
	if err != nil {
		return nil, err
	}
	undistributed := p.Undistributed()
	if !undistributed.IsPositive() {
		return nil, fmt.Errorf("proposal %d: %w", index, ErrNothingToDistribute)
	}

	m := l.managers[p.Manager]
	managerCut := m.ProfitRate.ApplyFloor(undistributed)
	remaining := undistributed.Sub(managerCut)

	totalWeight := decimal.Zero
	for _, id := range l.investorOrder {
		totalWeight = totalWeight.Add(l.investors[id].Weight())
	}

	dist := &Distribution{
		Proposal:   index,
		Manager:    p.Manager,
		Settled:    undistributed,
		ManagerCut: managerCut,
	}

	payed := managerCut
	if totalWeight.IsPositive() {
		remainingDec := remaining.Decimal()
		for _, id := range l.investorOrder {
			inv := l.investors[id]
			w := inv.Weight()
			if !w.IsPositive() {
				// zero fundsInvested contributes zero weight and
				// receives nothing.
				continue
			}
			q, _ := remainingDec.Mul(w).QuoRem(totalWeight, 0)
			share := A(q.IntPart(), l.config.Currency)
			inv.Profit = inv.Profit.Add(share)
			payed = payed.Add(share)
			dist.Shares = append(dist.Shares, InvestorShare{Investor: id, Share: share})
		}
	}
	m.Profit = m.Profit.Add(managerCut)

	// full catch-up: the dust stays in revenuePayed so it is never
	// distributed twice.
	p.RevenuePayed = p.RevenueReceived
	dist.Dust = undistributed.Sub(payed)
	return dist, nil
}
