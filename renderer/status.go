package renderer

import (
	"github.com/sheikhfi/fund"
)

// Status renders the full state of the fund as a markdown report.
func Status(s *fund.Snapshot) string {
	r := newReportRenderer()
	r.renderPool(s)
	r.renderInvestors(s)
	r.renderManagers(s)
	r.renderProposals(s)
	return r.String()
}

func (r *reportRenderer) renderPool(s *fund.Snapshot) {
	r.Printf("# Fund Status\n\n")
	r.Printf("- Owner: **%s** (%s)\n", s.Config.OwnerNickname, s.Config.Owner)
	r.Printf("- Approval threshold: %s\n", s.Config.ApproveShareThreshold)
	r.Printf("- Total funds: **%s**\n", s.TotalFunds)
	r.Printf("- Free funds: **%s**\n", s.FreeFunds)
	r.Printf("\n")
}

func (r *reportRenderer) renderInvestors(s *fund.Snapshot) {
	r.Printf("## Investors\n\n")
	if len(s.Investors) == 0 {
		r.Printf("No investors.\n\n")
		return
	}
	r.Printf("| Nickname | Identity | Invested | Profit | Rate |\n")
	r.Printf("|:---|:---|---:|---:|---:|\n")
	for _, v := range s.Investors {
		r.Printf("| %s | %s | %s | %s | %s |\n", v.Nickname, v.ID, v.FundsInvested, v.Profit, v.ProfitRate)
	}
	r.Printf("\n")
}

func (r *reportRenderer) renderManagers(s *fund.Snapshot) {
	r.Printf("## Managers\n\n")
	if len(s.Managers) == 0 {
		r.Printf("No managers.\n\n")
		return
	}
	r.Printf("| Nickname | Identity | Secured | Profit | Rate |\n")
	r.Printf("|:---|:---|---:|---:|---:|\n")
	for _, v := range s.Managers {
		r.Printf("| %s | %s | %s | %s | %s |\n", v.Nickname, v.ID, v.FundsSecured, v.Profit, v.ProfitRate)
	}
	r.Printf("\n")
}

func (r *reportRenderer) renderProposals(s *fund.Snapshot) {
	r.Printf("## Proposals\n\n")
	if len(s.Proposals) == 0 {
		r.Printf("No proposals.\n\n")
		return
	}
	r.Printf("| # | Manager | Description | Required | Status | Received | Distributed |\n")
	r.Printf("|---:|:---|:---|---:|:---|---:|---:|\n")
	for _, p := range s.Proposals {
		status := "pending"
		if p.Secured {
			status = "secured"
		}
		r.Printf("| %d | %s | %s | %s | %s | %s | %s |\n",
			p.Index, p.Manager, p.Description, p.RequiredFunds, status, p.RevenueReceived, p.RevenuePayed)
	}
	r.Printf("\n")
}
