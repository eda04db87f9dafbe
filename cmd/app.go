// Package cmd implements the CLI application to manage a pooled investment
// fund.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sheikhfi/fund"
)

// Commands lists the subcommands of the application.
// A main package registers them all and Execute() the user-selected one.
var Commands = []subcommands.Command{
	&initCmd{},
	&addInvestorCmd{},
	&addManagerCmd{},
	&depositCmd{},
	&submitCmd{},
	&approveCmd{},
	&receiveCmd{},
	&distributeCmd{},
	&statusCmd{},
	&txCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var journalFile = flag.String("journal-file", defaultJournalFile(), "Path to the fund journal file (JSONL format)")

func defaultJournalFile() string {
	if p := os.Getenv("SFI_JOURNAL"); p != "" {
		return p
	}
	return "fund.jsonl"
}

// DecodeLedger loads and replays the app journal file.
func DecodeLedger() (*fund.Ledger, error) {
	f, err := os.Open(*journalFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open journal %q: %w", *journalFile, err)
	}
	defer f.Close()
	l, err := fund.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("invalid journal %q: %w", *journalFile, err)
	}
	return l, nil
}

// SaveLedger rewrites the app journal file in canonical form.
func SaveLedger(l *fund.Ledger) error {
	tmp := *journalFile + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("cannot create journal %q: %w", tmp, err)
	}
	if err := fund.EncodeLedger(f, l); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot write journal %q: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, *journalFile)
}

// AppendLastEntry appends the most recent journal entry of the ledger to the
// app journal file. Mutating commands call it after a successful operation.
func AppendLastEntry(l *fund.Ledger) subcommands.ExitStatus {
	var last fund.Transaction
	for _, tx := range l.Journal() {
		last = tx
	}
	if last == nil {
		fmt.Fprintln(os.Stderr, "Error: empty journal, nothing to append")
		return subcommands.ExitFailure
	}

	f, err := os.OpenFile(*journalFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := fund.EncodeTransaction(f, last); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing to journal file %q: %v\n", *journalFile, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully appended %s entry to %s\n", last.What(), *journalFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
