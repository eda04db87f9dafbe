package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/sheikhfi/fund/renderer"
)

type statusCmd struct{}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "show the current state of the pool" }
func (*statusCmd) Usage() string {
	return `sfi status

  Shows the pool totals, investors, managers and proposals.
`
}

func (*statusCmd) SetFlags(f *flag.FlagSet) {}

func (p *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Status(l.Snapshot()))
	return subcommands.ExitSuccess
}
