package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	first bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the pool state with a jsonpath expression" }
func (*queryCmd) Usage() string {
	return `sfi query [-first] <jsonpath>

  Evaluates a jsonpath expression against the pool state and prints the
  result as JSON. Amounts are raw smallest-currency-unit integers.

Usage Examples:
$ sfi query '$.totalFunds'
$ sfi query '$.investors[?(@.nickname=="Bob")].fundsInvested'
$ sfi query '$.proposals[0].approvers'
`
}

func (p *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.first, "first", false, "Unwrap a single-element result list to its element.")
}

func (p *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query expects exactly one jsonpath expression.")
		return subcommands.ExitUsageError
	}
	path := f.Arg(0)

	l, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// round-trip through encoding/json to get the generic shape jsonpath
	// operates on.
	b, err := json.Marshal(l.Snapshot())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding pool state:", err)
		return subcommands.ExitFailure
	}
	var jobj any
	if err := json.Unmarshal(b, &jobj); err != nil {
		fmt.Fprintln(os.Stderr, "Error decoding pool state:", err)
		return subcommands.ExitFailure
	}

	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", path, err)
		return subcommands.ExitUsageError
	}
	// jsonpath is never clear about whether it returns a list of 1 answer,
	// or a single answer: with -first keep the first one if any.
	if jlist, ok := jval.([]any); ok && p.first && len(jlist) > 0 {
		jval = jlist[0]
	}

	out, err := json.MarshalIndent(jval, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding result:", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}
