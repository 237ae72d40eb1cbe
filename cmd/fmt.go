package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finstat/finstat"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "rewrite the accounts file in canonical form" }
func (*fmtCmd) Usage() string {
	return `fmt

Rewrite the accounts file: sections in a fixed order, dates and periods
chronological, line items in taxonomy order, derived and immaterial values
dropped.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := finstat.ReadAccountsFile(*accountsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	a.RemoveCalcClean()
	if status := EncodeAccounts(a); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Rewrote %s\n", *accountsFile)
	return subcommands.ExitSuccess
}
