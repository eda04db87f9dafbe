package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sheikhfi/fund"
	"github.com/sheikhfi/fund/renderer"
)

type receiveCmd struct {
	from     string
	proposal int
	amount   string
}

func (*receiveCmd) Name() string     { return "receive" }
func (*receiveCmd) Synopsis() string { return "record revenue paid in on a proposal" }
func (*receiveCmd) Usage() string {
	return `sfi receive -from <manager> -p <index> -amount <value>

  Records revenue paid in by the manager of a secured proposal. Revenue is
  tracked apart from principal and waits for a distribution.
`
}

func (p *receiveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Identity of the proposal's manager.")
	f.IntVar(&p.proposal, "p", 0, "Index of the proposal.")
	f.StringVar(&p.amount, "amount", "", "Revenue amount, in the pool currency.")
}

func (p *receiveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	amount, err := fund.ParseAmount(p.amount, l.Config().Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if err := l.ReceiveRevenue(fund.Identity(p.from), p.proposal, amount); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Received %s revenue on proposal %d\n", amount, p.proposal)
	return AppendLastEntry(l)
}

type distributeCmd struct {
	from     string
	proposal int
}

func (*distributeCmd) Name() string     { return "distribute" }
func (*distributeCmd) Synopsis() string { return "distribute the undistributed revenue of a proposal" }
func (*distributeCmd) Usage() string {
	return `sfi distribute -from <owner> -p <index>

  Settles the undistributed revenue of a proposal: the manager's fee is taken
  off the top and the remainder is split across investors proportionally to
  their stake and profit rate. Prints the distribution report.
`
}

func (p *distributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Identity performing the operation (must be the owner).")
	f.IntVar(&p.proposal, "p", 0, "Index of the proposal.")
}

func (p *distributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	dist, err := l.DistributeRevenue(fund.Identity(p.from), p.proposal)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.DistributionReport(dist))
	return AppendLastEntry(l)
}
