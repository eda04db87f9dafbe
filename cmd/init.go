package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sheikhfi/fund"
)

type initCmd struct {
	owner     string
	nickname  string
	threshold int
	currency  string
}

func (*initCmd) Name() string     { return "init" }
func (*initCmd) Synopsis() string { return "create a new fund journal" }
func (*initCmd) Usage() string {
	return `sfi init -owner <identity> -nickname <name> [-threshold <percent>] [-currency <code>]

  Creates the fund journal with its construction entry. The owner becomes the
  first investor of the pool. Fails if the journal file already exists.

Usage Examples:
$ sfi init -owner 0xA11 -nickname Ali -threshold 60 -currency EUR
`
}

func (p *initCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.owner, "owner", "", "Identity of the pool owner.")
	f.StringVar(&p.nickname, "nickname", "", "Display name of the owner.")
	f.IntVar(&p.threshold, "threshold", 60, "Approve share threshold in percent.")
	f.StringVar(&p.currency, "currency", "EUR", "Currency code of the pool.")
}

func (p *initCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := os.Stat(*journalFile); err == nil {
		fmt.Fprintf(os.Stderr, "Error: journal %q already exists\n", *journalFile)
		return subcommands.ExitFailure
	}

	l, err := fund.New(fund.Config{
		Owner:                 fund.Identity(p.owner),
		OwnerNickname:         p.nickname,
		ApproveShareThreshold: fund.Rate(p.threshold),
		Currency:              p.currency,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if err := SaveLedger(l); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Created fund journal %s\n", *journalFile)
	return subcommands.ExitSuccess
}
