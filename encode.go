package finstat

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"slices"
	"sort"
	"strconv"

	"github.com/hjson/hjson-go/v4"

	"github.com/finstat/finstat/date"
)

// accountsFile is the on-disk shape of an accounts book. The file is hjson,
// so it tolerates comments, unquoted keys and trailing commas; snapshot keys
// are dates and period keys are "from..to" ranges.
type accountsFile struct {
	Company      string                        `json:"company"`
	BalanceSheet map[string]map[string]float64 `json:"balance_sheet"`
	ProfitLoss   map[string]map[string]float64 `json:"profit_loss"`
	CashFlow     map[string]map[string]float64 `json:"cash_flow"`
	Others       map[string]map[string]float64 `json:"others"`
}

// DecodeAccounts parses an hjson accounts book. Every line item must be an
// entered item of its taxonomy: calculated items are derived on demand and
// their presence in a file is an error, not data.
func DecodeAccounts(data []byte) (*Accounts, error) {
	var file accountsFile
	if err := hjson.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding accounts: %w", err)
	}

	a := NewAccounts(file.Company)
	for key, items := range file.BalanceSheet {
		on, err := date.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("balance sheet snapshot %q: %w", key, err)
		}
		m := make(BsMap, len(items))
		for name, v := range items {
			item, err := ParseBsItem(name)
			if err != nil {
				return nil, fmt.Errorf("balance sheet on %s: %w", on, err)
			}
			if item.IsCalculated() {
				return nil, fmt.Errorf("balance sheet on %s: %s is calculated and may not appear in a file", on, item)
			}
			m[item] = v
		}
		a.BalanceSheet[on] = m
	}
	for key, items := range file.ProfitLoss {
		period, err := decodePeriod(key)
		if err != nil {
			return nil, fmt.Errorf("profit & loss period %q: %w", key, err)
		}
		m := make(PlMap, len(items))
		for name, v := range items {
			item, err := ParsePlItem(name)
			if err != nil {
				return nil, fmt.Errorf("profit & loss over %s: %w", period, err)
			}
			if item.IsCalculated() {
				return nil, fmt.Errorf("profit & loss over %s: %s is calculated and may not appear in a file", period, item)
			}
			m[item] = v
		}
		a.ProfitLoss[period] = m
	}
	for key, items := range file.CashFlow {
		period, err := decodePeriod(key)
		if err != nil {
			return nil, fmt.Errorf("cash flow period %q: %w", key, err)
		}
		m := make(CfMap, len(items))
		for name, v := range items {
			item, err := ParseCfItem(name)
			if err != nil {
				return nil, fmt.Errorf("cash flow over %s: %w", period, err)
			}
			if item.IsCalculated() {
				return nil, fmt.Errorf("cash flow over %s: %s is calculated and may not appear in a file", period, item)
			}
			m[item] = v
		}
		a.CashFlow[period] = m
	}
	for key, items := range file.Others {
		period, err := decodePeriod(key)
		if err != nil {
			return nil, fmt.Errorf("metrics period %q: %w", key, err)
		}
		m := make(OthersMap, len(items))
		for name, v := range items {
			m[name] = v
		}
		a.Others[period] = m
	}
	a.SetDatesFromProfitLoss()
	return a, nil
}

func decodePeriod(key string) (date.Range, error) {
	period, err := date.ParseRange(key)
	if err != nil {
		return date.Range{}, err
	}
	if !period.Valid() {
		return date.Range{}, fmt.Errorf("period %s ends before it starts", period)
	}
	return period, nil
}

// ReadAccountsFile loads an accounts book from disk.
func ReadAccountsFile(path string) (*Accounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := DecodeAccounts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// EncodeAccounts renders the book in canonical form: sections in a fixed
// order, snapshots and periods chronological, line items in taxonomy order,
// entered material values only. Decoding the result yields the same book, so
// encode-after-decode normalizes a hand-edited file.
func EncodeAccounts(a *Accounts) []byte {
	var b bytes.Buffer
	b.WriteString("{\n")
	fmt.Fprintf(&b, "  company: %s\n", strconv.Quote(a.Company))

	dates := make([]date.Date, 0, len(a.BalanceSheet))
	for on := range a.BalanceSheet {
		dates = append(dates, on)
	}
	slices.SortFunc(dates, date.Date.Compare)
	if len(dates) > 0 {
		b.WriteString("  balance_sheet: {\n")
		for _, on := range dates {
			fmt.Fprintf(&b, "    %s: {\n", on)
			m := a.BalanceSheet[on]
			for _, item := range BsItems() {
				writeItem(&b, item, m[item], item.IsCalculated())
			}
			b.WriteString("    }\n")
		}
		b.WriteString("  }\n")
	}

	writePeriodSection(&b, "profit_loss", sortedPeriods(a.ProfitLoss), func(period date.Range) {
		m := a.ProfitLoss[period]
		for _, item := range PlItems() {
			writeItem(&b, item, m[item], item.IsCalculated())
		}
	})
	writePeriodSection(&b, "cash_flow", sortedPeriods(a.CashFlow), func(period date.Range) {
		m := a.CashFlow[period]
		for _, item := range CfItems() {
			writeItem(&b, item, m[item], item.IsCalculated())
		}
	})
	writePeriodSection(&b, "others", sortedPeriods(a.Others), func(period date.Range) {
		m := a.Others[period]
		names := make([]string, 0, len(m))
		for name := range m {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "      %s: %s\n", name, strconv.FormatFloat(m[name], 'g', -1, 64))
		}
	})

	b.WriteString("}\n")
	return b.Bytes()
}

func sortedPeriods[V any](m map[date.Range]V) []date.Range {
	periods := make([]date.Range, 0, len(m))
	for r := range m {
		periods = append(periods, r)
	}
	slices.SortFunc(periods, date.Range.Compare)
	return periods
}

func writeItem[K Item](b *bytes.Buffer, item K, v float64, calculated bool) {
	if calculated || math.Abs(v) < Materiality {
		return
	}
	fmt.Fprintf(b, "      %s: %s\n", item, strconv.FormatFloat(v, 'g', -1, 64))
}

func writePeriodSection(b *bytes.Buffer, name string, periods []date.Range, body func(date.Range)) {
	if len(periods) == 0 {
		return
	}
	fmt.Fprintf(b, "  %s: {\n", name)
	for _, period := range periods {
		fmt.Fprintf(b, "    %s: {\n", period)
		body(period)
		b.WriteString("    }\n")
	}
	b.WriteString("  }\n")
}

// WriteAccountsFile writes the canonical encoding of the book to disk.
func WriteAccountsFile(path string, a *Accounts) error {
	return os.WriteFile(path, EncodeAccounts(a), 0o644)
}
