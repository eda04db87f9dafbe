package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sheikhfi/fund"
)

type submitCmd struct {
	from     string
	desc     string
	required string
}

func (*submitCmd) Name() string     { return "submit" }
func (*submitCmd) Synopsis() string { return "submit a funding proposal" }
func (*submitCmd) Usage() string {
	return `sfi submit -from <manager> -desc <text> -required <value>

  Submits a funding proposal from a registered manager. The proposal stays
  pending until investors holding enough of the pool approve it.
`
}

func (p *submitCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Identity of the submitting manager.")
	f.StringVar(&p.desc, "desc", "", "Description of the proposal.")
	f.StringVar(&p.required, "required", "", "Capital required, in the pool currency.")
}

func (p *submitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	required, err := fund.ParseAmount(p.required, l.Config().Currency)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	index, err := l.SubmitProposal(fund.Identity(p.from), p.desc, required)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Submitted proposal %d requiring %s\n", index, required)
	return AppendLastEntry(l)
}

type approveCmd struct {
	from     string
	proposal int
}

func (*approveCmd) Name() string     { return "approve" }
func (*approveCmd) Synopsis() string { return "vote to approve a proposal" }
func (*approveCmd) Usage() string {
	return `sfi approve -from <investor> -p <index>

  Records an investor's yes vote on a proposal. When the approving investors
  hold enough of the pool and free funds cover the requirement, the proposal
  is secured and its capital reserved.
`
}

func (p *approveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Identity of the voting investor.")
	f.IntVar(&p.proposal, "p", 0, "Index of the proposal to approve.")
}

func (p *approveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	secured, err := l.ApproveProposal(fund.Identity(p.from), p.proposal)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if secured {
		fmt.Printf("Proposal %d is now secured, free funds down to %s\n", p.proposal, l.FreeFunds())
	} else {
		fmt.Printf("Vote recorded, proposal %d still pending\n", p.proposal)
	}
	return AppendLastEntry(l)
}
