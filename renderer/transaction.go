package renderer

import (
	"fmt"

	"github.com/sheikhfi/fund"
)

// Transaction renders a journal entry to a one-line string. Journal amounts
// are stored in smallest currency units, so the pool currency is needed to
// format them.
func Transaction(tx fund.Transaction, currency string) string {
	switch v := tx.(type) {
	case fund.Init:
		cfg := v.Config()
		return fmt.Sprintf("Pool opened by %s (%s), threshold %s", cfg.OwnerNickname, cfg.Owner, cfg.ApproveShareThreshold)
	case fund.AddInvestor:
		return fmt.Sprintf("Registered investor %s (%s) at rate %s", v.Nickname, v.ID, v.Rate)
	case fund.AddManager:
		return fmt.Sprintf("Registered manager %s (%s) at rate %s", v.Nickname, v.ID, v.Rate)
	case fund.Deposit:
		return fmt.Sprintf("Deposited %s", fund.A(v.Amount, currency))
	case fund.Submit:
		return fmt.Sprintf("Submitted proposal %q for %s", v.Description, fund.A(v.RequiredFunds, currency))
	case fund.Approve:
		return fmt.Sprintf("Approved proposal %d", v.Proposal)
	case fund.Receive:
		return fmt.Sprintf("Received %s revenue on proposal %d", fund.A(v.Amount, currency), v.Proposal)
	case fund.Distribute:
		return fmt.Sprintf("Distributed revenue of proposal %d", v.Proposal)
	default:
		return string(tx.What())
	}
}

// Log renders journal entries as a markdown table, oldest first.
func Log(entries []fund.Transaction, currency string) string {
	r := newReportRenderer()
	r.Printf("## Journal\n\n")
	if len(entries) == 0 {
		r.Printf("No entries.\n\n")
		return r.String()
	}
	r.Printf("| Date | Command | By | Detail |\n")
	r.Printf("|:---|:---|:---|:---|\n")
	for _, tx := range entries {
		r.Printf("| %s | %s | %s | %s |\n", tx.When(), tx.What(), tx.By(), Transaction(tx, currency))
	}
	r.Printf("\n")
	return r.String()
}
