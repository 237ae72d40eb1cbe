package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/finstat/finstat"
	"github.com/finstat/finstat/renderer"
)

// rateFlags hold the tax regime shared by the derivation commands.
type rateFlags struct {
	corporate   float64
	grossProfit float64
	revenue     float64
}

func (r *rateFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&r.corporate, "corporate-tax", 0, "Corporate tax rate on pre-tax profit (fraction)")
	f.Float64Var(&r.grossProfit, "gross-profit-tax", 0, "Tax rate on gross profit (fraction)")
	f.Float64Var(&r.revenue, "revenue-tax", 0, "Minimum tax rate on revenue (fraction)")
}

func (r *rateFlags) rates() finstat.TaxRates {
	return finstat.TaxRates{Corporate: r.corporate, GrossProfit: r.grossProfit, Revenue: r.revenue}
}

type cashflowCmd struct {
	renderFlags
	rateFlags
	write bool
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "derive the cash flow statements" }
func (*cashflowCmd) Usage() string {
	return `cashflow [-corporate-tax 0.25] [-w]

Derive the cash flow statement of every period framed by two balance sheets,
show it, and with -w write it back to the accounts file.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	c.renderFlags.SetFlags(f)
	c.rateFlags.SetFlags(f)
	f.BoolVar(&c.write, "w", false, "Write the derived cash flow back to the accounts file")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	a.CalcElements()
	a.CalcCashFlow(c.rates())

	annual, quarters := a.SplitPeriods()
	periods := annual
	if c.quarterly {
		periods = quarters
	}
	printMarkdown(renderer.CashFlowTable(a, periods, c.options()))

	if c.write {
		return EncodeAccounts(a)
	}
	return subcommands.ExitSuccess
}
