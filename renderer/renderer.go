// Package renderer formats financial statements as markdown tables: one row
// per line item in taxonomy order, one column per date or period.
package renderer

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/finstat/finstat"
	"github.com/finstat/finstat/date"
)

// Options controls cell formatting.
//
// Currency names the display currency (ISO code, default USD). Scale shifts
// amounts down by powers of ten before formatting, so Scale 6 renders
// millions.
type Options struct {
	Currency string
	Scale    int
}

func (o Options) currency() *money.Currency {
	if cur := money.GetCurrency(o.Currency); cur != nil {
		return cur
	}
	return money.GetCurrency(money.USD)
}

// Cell formats one value. A value strictly inside (-1, 1) reads as a ratio
// and renders as a percentage, which covers common-size statements and the
// metrics map; anything else renders as a scaled currency amount. The ratio
// interval is wider than the positive unit interval on purpose: zero and
// negative ratios (a contra line in a common-size statement) keep the
// percentage form and their sign.
func (o Options) Cell(v float64) string {
	if math.Abs(v) < 1 {
		return fmt.Sprintf("%.2f%%", v*100)
	}
	cur := o.currency()
	amount := decimal.NewFromFloat(v).Shift(int32(-o.Scale))
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(amount.Mul(factor).IntPart(), cur.Code).Display()
}

// table writes a markdown table: a first column of row labels, then one
// value column per heading. Rows with no value at all are skipped.
func table(b *strings.Builder, first string, headings []string, rows func(yield func(label string, values []string))) {
	fmt.Fprintf(b, "| %s |", first)
	for _, h := range headings {
		fmt.Fprintf(b, " %s |", h)
	}
	b.WriteString("\n|---|")
	for range headings {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	rows(func(label string, values []string) {
		empty := true
		for _, v := range values {
			if v != "" {
				empty = false
				break
			}
		}
		if empty {
			return
		}
		fmt.Fprintf(b, "| %s |", label)
		for _, v := range values {
			fmt.Fprintf(b, " %s |", v)
		}
		b.WriteString("\n")
	})
}

// BalanceSheetTable renders the Balance Sheet snapshots at the given dates.
func BalanceSheetTable(a *finstat.Accounts, dates []date.Date, opts Options) string {
	headings := make([]string, len(dates))
	for i, on := range dates {
		headings[i] = on.String()
	}
	var b strings.Builder
	table(&b, "Balance Sheet", headings, func(yield func(string, []string)) {
		for _, item := range finstat.BsItems() {
			values := make([]string, len(dates))
			for i, on := range dates {
				if v, ok := a.BalanceSheet[on][item]; ok {
					values[i] = opts.Cell(v)
				}
			}
			yield(item.String(), values)
		}
	})
	return b.String()
}

// ProfitLossTable renders the Profit & Loss statements over the given
// periods.
func ProfitLossTable(a *finstat.Accounts, periods []date.Range, opts Options) string {
	var b strings.Builder
	table(&b, "Profit & Loss", periodHeadings(periods), func(yield func(string, []string)) {
		for _, item := range finstat.PlItems() {
			values := make([]string, len(periods))
			for i, period := range periods {
				if v, ok := a.ProfitLoss[period][item]; ok {
					values[i] = opts.Cell(v)
				}
			}
			yield(item.String(), values)
		}
	})
	return b.String()
}

// CashFlowTable renders the Cash Flow statements over the given periods.
func CashFlowTable(a *finstat.Accounts, periods []date.Range, opts Options) string {
	var b strings.Builder
	table(&b, "Cash Flow", periodHeadings(periods), func(yield func(string, []string)) {
		for _, item := range finstat.CfItems() {
			values := make([]string, len(periods))
			for i, period := range periods {
				if v, ok := a.CashFlow[period][item]; ok {
					values[i] = opts.Cell(v)
				}
			}
			yield(item.String(), values)
		}
	})
	return b.String()
}

// OthersTable renders the auxiliary metrics over the given periods, rows
// sorted by metric name.
func OthersTable(a *finstat.Accounts, periods []date.Range, opts Options) string {
	names := make(map[string]bool)
	for _, period := range periods {
		for name := range a.Others[period] {
			names[name] = true
		}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	return othersTable(a, periods, sorted, opts)
}

func othersTable(a *finstat.Accounts, periods []date.Range, names []string, opts Options) string {
	var b strings.Builder
	table(&b, "Metrics", periodHeadings(periods), func(yield func(string, []string)) {
		for _, name := range names {
			values := make([]string, len(periods))
			for i, period := range periods {
				if v, ok := a.Others[period][name]; ok {
					values[i] = opts.Cell(v)
				}
			}
			yield(name, values)
		}
	})
	return b.String()
}

func periodHeadings(periods []date.Range) []string {
	headings := make([]string, len(periods))
	for i, period := range periods {
		headings[i] = period.String()
	}
	return headings
}
