package fund

// Snapshot is an immutable copy of the whole ledger state taken under one
// read lock, so renderers and exports see a single committed state, never
// a state mid-mutation.
type Snapshot struct {
	Config     Config
	TotalFunds Amount
	FreeFunds  Amount
	Investors  []InvestorView // registration order, owner first
	Managers   []ManagerView
	Proposals  []ProposalView
}

// InvestorView pairs an investor record with its identity.
type InvestorView struct {
	ID Identity
	Investor
}

// ManagerView pairs a manager record with its identity.
type ManagerView struct {
	ID Identity
	Manager
}

// ProposalView pairs a proposal with its index and a copied approver list.
type ProposalView struct {
	Index int
	Proposal
}

// Snapshot copies the current committed state.
func (l *Ledger) Snapshot() *Snapshot {
	l.mu.RLock()
	defer l.mu.RUnlock()

	s := &Snapshot{
		Config:     l.config,
		TotalFunds: l.totalFunds,
		FreeFunds:  l.freeFunds,
	}
	for _, id := range l.investorOrder {
		s.Investors = append(s.Investors, InvestorView{ID: id, Investor: *l.investors[id]})
	}
	for _, id := range l.managerOrder {
		s.Managers = append(s.Managers, ManagerView{ID: id, Manager: *l.managers[id]})
	}
	for i, p := range l.proposals {
		c := *p
		c.approvers = p.Approvers()
		s.Proposals = append(s.Proposals, ProposalView{Index: i, Proposal: c})
	}
	return s
}

// MarshalJSON exports the snapshot with amounts as raw smallest-unit
// integers, the shape served to `sfi query`.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("owner", s.Config.Owner)
	w.Append("ownerNickname", s.Config.OwnerNickname)
	w.Append("approveShareThreshold", s.Config.ApproveShareThreshold)
	w.Append("currency", s.Config.Currency)
	w.Append("totalFunds", s.TotalFunds.Units())
	w.Append("freeFunds", s.FreeFunds.Units())

	investors := make([]any, 0, len(s.Investors))
	for _, v := range s.Investors {
		var iw jsonObjectWriter
		iw.Append("id", v.ID)
		iw.Append("nickname", v.Nickname)
		iw.Append("fundsInvested", v.FundsInvested.Units())
		iw.Append("profit", v.Profit.Units())
		iw.Append("profitRate", v.ProfitRate)
		investors = append(investors, &iw)
	}
	w.Append("investors", investors)

	managers := make([]any, 0, len(s.Managers))
	for _, v := range s.Managers {
		var mw jsonObjectWriter
		mw.Append("id", v.ID)
		mw.Append("nickname", v.Nickname)
		mw.Append("fundsSecured", v.FundsSecured.Units())
		mw.Append("profit", v.Profit.Units())
		mw.Append("profitRate", v.ProfitRate)
		managers = append(managers, &mw)
	}
	w.Append("managers", managers)

	proposals := make([]any, 0, len(s.Proposals))
	for _, v := range s.Proposals {
		var pw jsonObjectWriter
		pw.Append("index", v.Index)
		pw.Append("manager", v.Manager)
		pw.Append("description", v.Description)
		pw.Append("requiredFunds", v.RequiredFunds.Units())
		pw.Append("secured", v.Secured)
		pw.Append("revenueReceived", v.RevenueReceived.Units())
		pw.Append("revenuePayed", v.RevenuePayed.Units())
		approvers := v.Approvers()
		if approvers == nil {
			approvers = []Identity{}
		}
		pw.Append("approvers", approvers)
		proposals = append(proposals, &pw)
	}
	w.Append("proposals", proposals)

	return w.MarshalJSON()
}
