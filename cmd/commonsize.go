package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finstat/finstat"
)

type commonsizeCmd struct {
	renderFlags
}

func (*commonsizeCmd) Name() string { return "commonsize" }
func (*commonsizeCmd) Synopsis() string {
	return "show the statements as fractions of their anchor line"
}
func (*commonsizeCmd) Usage() string {
	return `commonsize [-quarterly]

Derive all statements and show every line as a fraction of the statement
anchor: Assets, Revenue or NetCashFlow.
`
}

func (c *commonsizeCmd) SetFlags(f *flag.FlagSet) { c.renderFlags.SetFlags(f) }

func (c *commonsizeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	a.CalcElements()

	// Rebuild the book with every statement in common-size form; the
	// renderer then shows each line as a percentage.
	cs := finstat.NewAccounts(a.Company)
	for on, bs := range a.BalanceSheet {
		cs.BalanceSheet[on] = bs.CommonSize()
	}
	for period, pl := range a.ProfitLoss {
		cs.ProfitLoss[period] = pl.CommonSize()
	}
	for period, cf := range a.CashFlow {
		cs.CashFlow[period] = cf.CommonSize()
	}
	cs.SetDatesFromProfitLoss()

	printMarkdown(report(cs, c.options(), c.quarterly))
	return subcommands.ExitSuccess
}
