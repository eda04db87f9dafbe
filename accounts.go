package fund

import "github.com/shopspring/decimal"

// Identity is the opaque unique identifier (an address) that keys every
// role in the pool. It is never reused or mutated; the execution
// environment authenticates it, the ledger only checks role membership.
type Identity string

// Investor is the record of one capital contributor. An identity may hold
// the Investor role and the Owner capability at the same time: the Owner's
// implicit record is created at construction with OwnerProfitRate.
type Investor struct {
	Nickname      string
	FundsInvested Amount // total capital deposited, only increases
	Profit        Amount // accumulated distributed revenue, only increases
	ProfitRate    Rate   // fixed at registration, immutable
}

// Weight is the basis for proportional revenue splitting among investors:
// fundsInvested × profitRate. Zero for investors with no funds in. The
// product is kept exact as a decimal, smallest-unit amounts can be large
// enough to overflow an int64 product.
func (inv *Investor) Weight() decimal.Decimal {
	return inv.FundsInvested.Decimal().Mul(inv.ProfitRate.Decimal())
}

// Manager is the record of one fund manager drawing capital against
// approved proposals.
type Manager struct {
	Nickname     string
	FundsSecured Amount // cumulative capital granted across secured proposals
	Profit       Amount // accumulated management fees, only increases
	ProfitRate   Rate   // management fee taken off the top of returned revenue
}
