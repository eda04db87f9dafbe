package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sheikhfi/fund"
)

// registerFlags is the common flag set of add-investor and add-manager.
type registerFlags struct {
	from     string
	id       string
	nickname string
	rate     int
}

func (p *registerFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Identity performing the operation (must be the owner).")
	f.StringVar(&p.id, "id", "", "Identity being registered.")
	f.StringVar(&p.nickname, "nickname", "", "Display name of the registered identity.")
	f.IntVar(&p.rate, "rate", 100, "Profit rate in percent.")
}

type addInvestorCmd struct{ registerFlags }

func (*addInvestorCmd) Name() string     { return "add-investor" }
func (*addInvestorCmd) Synopsis() string { return "register an investor in the pool" }
func (*addInvestorCmd) Usage() string {
	return `sfi add-investor -from <owner> -id <identity> -nickname <name> [-rate <percent>]

  Registers an investor identity. Only the owner can register identities, and
  the profit rate is fixed at registration.
`
}

func (p *addInvestorCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := l.AddInvestor(fund.Identity(p.from), fund.Identity(p.id), p.nickname, fund.Rate(p.rate)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return AppendLastEntry(l)
}

type addManagerCmd struct{ registerFlags }

func (*addManagerCmd) Name() string     { return "add-manager" }
func (*addManagerCmd) Synopsis() string { return "register a manager in the pool" }
func (*addManagerCmd) Usage() string {
	return `sfi add-manager -from <owner> -id <identity> -nickname <name> [-rate <percent>]

  Registers a manager identity. The manager's rate is the fee taken off the
  top of every revenue distribution of its proposals.
`
}

func (p *addManagerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := l.AddManager(fund.Identity(p.from), fund.Identity(p.id), p.nickname, fund.Rate(p.rate)); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return AppendLastEntry(l)
}
