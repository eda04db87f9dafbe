package fund

import (
	"fmt"
	"iter"
	"sync"
)

// Config holds the pool constants fixed at construction.
type Config struct {
	Owner                 Identity
	OwnerNickname         string
	ApproveShareThreshold Rate
	Currency              string
}

// Ledger is the single aggregate holding all accounts, proposals and pool
// totals. Every mutating operation takes exclusive access for its whole
// duration and is all-or-nothing: it validates first and mutates after the
// last possible failure point. Read-only queries share a read lock and
// observe only committed states.
type Ledger struct {
	mu sync.RWMutex

	config Config

	investors     map[Identity]*Investor
	investorOrder []Identity // registration order, owner first
	managers      map[Identity]*Manager
	managerOrder  []Identity

	proposals []*Proposal

	totalFunds Amount
	freeFunds  Amount

	// the journal: every applied command in order, init first.
	entries []Transaction
}

// New creates a ledger with its Owner's implicit investor record. The
// owner's profit rate is the OwnerProfitRate constant, not a registration
// parameter. No funds exist yet.
func New(cfg Config) (*Ledger, error) {
	l, err := build(cfg)
	if err != nil {
		return nil, err
	}
	l.entries = append(l.entries, NewInit(Today(), l.config))
	return l, nil
}

// build validates the configuration and constructs the aggregate without
// recording the construction entry; DecodeLedger records the decoded one.
func build(cfg Config) (*Ledger, error) {
	if cfg.Owner == "" {
		return nil, fmt.Errorf("missing owner identity")
	}
	if !cfg.ApproveShareThreshold.IsValidShare() {
		return nil, fmt.Errorf("approve share threshold %s is not a valid share (0-100)", cfg.ApproveShareThreshold)
	}
	if cfg.Currency == "" {
		cfg.Currency = "EUR"
	}
	l := &Ledger{
		config:    cfg,
		investors: make(map[Identity]*Investor),
		managers:  make(map[Identity]*Manager),
	}
	l.createInvestor(cfg.Owner, cfg.OwnerNickname, OwnerProfitRate)
	l.totalFunds = A(0, cfg.Currency)
	l.freeFunds = A(0, cfg.Currency)
	return l, nil
}

// createInvestor installs a fresh investor record with zero balances.
func (l *Ledger) createInvestor(id Identity, nickname string, rate Rate) {
	l.investors[id] = &Investor{
		Nickname:      nickname,
		FundsInvested: A(0, l.config.Currency),
		Profit:        A(0, l.config.Currency),
		ProfitRate:    rate,
	}
	l.investorOrder = append(l.investorOrder, id)
}

// createManager installs a fresh manager record with zero balances.
func (l *Ledger) createManager(id Identity, nickname string, rate Rate) {
	l.managers[id] = &Manager{
		Nickname:     nickname,
		FundsSecured: A(0, l.config.Currency),
		Profit:       A(0, l.config.Currency),
		ProfitRate:   rate,
	}
	l.managerOrder = append(l.managerOrder, id)
}

// isOwner reports whether id holds the Owner capability.
func (l *Ledger) isOwner(id Identity) bool { return id == l.config.Owner }

// --- read-only queries ---

// Config returns the pool constants.
func (l *Ledger) Config() Config {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.config
}

// Investor returns a copy of the investor record for id, or nil if the
// identity holds no Investor role.
func (l *Ledger) Investor(id Identity) *Investor {
	l.mu.RLock()
	defer l.mu.RUnlock()
	inv, ok := l.investors[id]
	if !ok {
		return nil
	}
	c := *inv
	return &c
}

// Manager returns a copy of the manager record for id, or nil if the
// identity holds no Manager role.
func (l *Ledger) Manager(id Identity) *Manager {
	l.mu.RLock()
	defer l.mu.RUnlock()
	m, ok := l.managers[id]
	if !ok {
		return nil
	}
	c := *m
	return &c
}

// Proposal returns a copy of the proposal at index, or an ErrNotFound
// wrapped error if the index does not exist.
func (l *Ledger) Proposal(index int) (*Proposal, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, err := l.proposal(index)
	if err != nil {
		return nil, err
	}
	c := *p
	c.approvers = p.Approvers()
	return &c, nil
}

// proposal resolves an index under an already-held lock.
func (l *Ledger) proposal(index int) (*Proposal, error) {
	if index < 0 || index >= len(l.proposals) {
		return nil, fmt.Errorf("proposal %d: %w", index, ErrNotFound)
	}
	return l.proposals[index], nil
}

// ProposalCount returns the number of proposals ever submitted.
func (l *Ledger) ProposalCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.proposals)
}

// TotalFunds returns the sum of all investors' invested funds.
func (l *Ledger) TotalFunds() Amount {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.totalFunds
}

// FreeFunds returns the pool capital not committed to a secured proposal.
func (l *Ledger) FreeFunds() Amount {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.freeFunds
}

// Investors iterates over investor identities and record copies in
// registration order, the Owner's implicit record first.
func (l *Ledger) Investors() iter.Seq2[Identity, Investor] {
	return func(yield func(Identity, Investor) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		for _, id := range l.investorOrder {
			if !yield(id, *l.investors[id]) {
				return
			}
		}
	}
}

// Managers iterates over manager identities and record copies in
// registration order.
func (l *Ledger) Managers() iter.Seq2[Identity, Manager] {
	return func(yield func(Identity, Manager) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		for _, id := range l.managerOrder {
			if !yield(id, *l.managers[id]) {
				return
			}
		}
	}
}

// Proposals iterates over proposal copies in submission order, the index
// is the proposal's identifier.
func (l *Ledger) Proposals() iter.Seq2[int, Proposal] {
	return func(yield func(int, Proposal) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		for i, p := range l.proposals {
			c := *p
			c.approvers = p.Approvers()
			if !yield(i, c) {
				return
			}
		}
	}
}

// Journal iterates over the applied commands in journal order.
func (l *Ledger) Journal() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		l.mu.RLock()
		defer l.mu.RUnlock()
		for i, tx := range l.entries {
			if !yield(i, tx) {
				return
			}
		}
	}
}
