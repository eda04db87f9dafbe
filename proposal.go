package fund

import "slices"

// Proposal is a funding request submitted by a manager. Proposals are
// identified by their 0-based index in submission order; indices are never
// reused and proposals are never deleted.
type Proposal struct {
	Manager         Identity
	Description     string
	RequiredFunds   Amount // fixed at submission
	Secured         bool   // one-way false→true
	RevenueReceived Amount // cumulative revenue ever paid in by the manager
	RevenuePayed    Amount // cumulative revenue ever distributed out

	// approvers in voting order; membership unique, order preserved for
	// display.
	approvers []Identity
}

// Approvers returns the investors that voted yes, in voting order.
func (p *Proposal) Approvers() []Identity {
	return slices.Clone(p.approvers)
}

// HasApproved reports whether id already voted on this proposal.
func (p *Proposal) HasApproved(id Identity) bool {
	return slices.Contains(p.approvers, id)
}

// Undistributed returns the revenue received but not yet distributed.
func (p *Proposal) Undistributed() Amount {
	return p.RevenueReceived.Sub(p.RevenuePayed)
}
