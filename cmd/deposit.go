package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sheikhfi/fund"
)

type depositCmd struct {
	from   string
	amount string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit capital into the pool" }
func (*depositCmd) Usage() string {
	return `sfi deposit -from <investor> -amount <value>

  Deposits capital from a registered investor into the pool. The amount is
  expressed in the pool currency, e.g. "10.50".
`
}

func (p *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Identity of the depositing investor.")
	f.StringVar(&p.amount, "amount", "", "Amount to deposit, in the pool currency.")
}

func (p *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := l.Deposit(fund.Identity(p.from), amount); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deposited %s, pool now holds %s\n", amount, l.TotalFunds())
	return AppendLastEntry(l)
}
