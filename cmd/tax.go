package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finstat/finstat/renderer"
)

type taxCmd struct {
	renderFlags
	rateFlags
	write bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "estimate the current tax charge per period" }
func (*taxCmd) Usage() string {
	return `tax -corporate-tax 0.25 [-revenue-tax 0.01] [-w]

Estimate the current tax charge of every period as the greater of the
regular tax and the revenue-based minimum, show the resulting profit & loss,
and with -w write it back to the accounts file.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	c.renderFlags.SetFlags(f)
	c.rateFlags.SetFlags(f)
	f.BoolVar(&c.write, "w", false, "Write the estimated tax back to the accounts file")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	a.CalcTax(c.rates())

	annual, quarters := a.SplitPeriods()
	periods := annual
	if c.quarterly {
		periods = quarters
	}
	printMarkdown(renderer.ProfitLossTable(a, periods, c.options()))

	if c.write {
		return EncodeAccounts(a)
	}
	return subcommands.ExitSuccess
}
