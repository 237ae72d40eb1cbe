package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "verify the consistency of the accounts" }
func (*checkCmd) Usage() string {
	return `check

Verify that every balance sheet balances and that every cash flow statement
reconciles to the cash movement over its period.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := a.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Accounts are inconsistent:\n%v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Accounts are consistent.")
	return subcommands.ExitSuccess
}
