// Package fund implements a pooled-capital investment ledger.
//
// Investors deposit capital into one shared pool; managers draw funds
// against investor-approved proposals; returned revenue is split between
// the proposal's manager and all contributing investors according to
// profit-sharing weights. The Ledger is the single aggregate: fund
// accounting (deposits, capital reservation), weighted-approval proposal
// gating, and proportional revenue distribution, all in fixed-point
// integer arithmetic on the smallest currency unit.
//
// Every mutating operation is one atomic unit of work over the whole
// aggregate; read-only queries observe only committed states. Operations
// are recorded in an append-only JSONL journal that can be replayed to
// rebuild — and re-validate — the full state.
package fund
