package renderer

import (
	"github.com/sheikhfi/fund"
)

// DistributionReport renders the outcome of one revenue distribution.
func DistributionReport(d *fund.Distribution) string {
	r := newReportRenderer()
	r.Printf("# Distribution of proposal %d\n\n", d.Proposal)
	r.Printf("- Settled: **%s**\n", d.Settled)
	r.Printf("- Manager %s cut: %s\n", d.Manager, d.ManagerCut)
	r.Printf("- Dust: %s\n", d.Dust)
	r.Printf("\n")

	if len(d.Shares) == 0 {
		r.Printf("No investor shares.\n")
		return r.String()
	}
	r.Printf("| Investor | Share |\n")
	r.Printf("|:---|---:|\n")
	for _, s := range d.Shares {
		r.Printf("| %s | %s |\n", s.Investor, s.Share)
	}
	r.Printf("\n")
	return r.String()
}
