package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/finstat/finstat"
	"github.com/finstat/finstat/renderer"
)

// renderFlags are the display options shared by the report commands.
type renderFlags struct {
	currency  string
	scale     int
	quarterly bool
}

func (r *renderFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.currency, "currency", "USD", "Display currency (ISO code)")
	f.IntVar(&r.scale, "scale", 0, "Shift amounts down by this power of ten (3 for thousands)")
	f.BoolVar(&r.quarterly, "quarterly", false, "Report on quarterly periods instead of annual ones")
}

func (r *renderFlags) options() renderer.Options {
	return renderer.Options{Currency: r.currency, Scale: r.scale}
}

// report renders the statement tables of the book as one markdown document.
func report(a *finstat.Accounts, opts renderer.Options, quarterly bool) string {
	annual, quarters := a.SplitPeriods()
	periods := annual
	if quarterly {
		periods = quarters
	}

	var b strings.Builder
	if a.Company != "" {
		fmt.Fprintf(&b, "# %s\n\n", a.Company)
	}
	b.WriteString(renderer.BalanceSheetTable(a, a.Dates, opts))
	b.WriteString("\n")
	b.WriteString(renderer.ProfitLossTable(a, periods, opts))
	b.WriteString("\n")
	b.WriteString(renderer.CashFlowTable(a, periods, opts))
	b.WriteString("\n")
	b.WriteString(renderer.OthersTable(a, periods, opts))
	return b.String()
}

type tableCmd struct {
	renderFlags
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "show the derived financial statements" }
func (*tableCmd) Usage() string {
	return `table [-currency USD] [-scale 0] [-quarterly]

Derive all statements and show them as tables.
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) { c.renderFlags.SetFlags(f) }

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := DecodeAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	a.CalcElements()
	a.CalcRatios()
	printMarkdown(report(a, c.options(), c.quarterly))
	return subcommands.ExitSuccess
}
