package finstat

import (
	"fmt"
	"slices"

	"github.com/finstat/finstat/date"
)

// Accounts is the multi-period book of one entity: Balance Sheet snapshots
// keyed by date, and Profit & Loss, Cash Flow and auxiliary metric statements
// keyed by the period they span.
//
// Mutators write entered items only and never recompute derived values: after
// a batch of edits, run CalcElements (and CalcCashFlow if the flows should
// follow) to bring the aggregates back in line.
type Accounts struct {
	Company      string
	Dates        []date.Date
	BalanceSheet map[date.Date]BsMap
	ProfitLoss   map[date.Range]PlMap
	CashFlow     map[date.Range]CfMap
	Others       map[date.Range]OthersMap
}

// NewAccounts returns an empty book for the named company.
func NewAccounts(company string) *Accounts {
	return &Accounts{
		Company:      company,
		BalanceSheet: make(map[date.Date]BsMap),
		ProfitLoss:   make(map[date.Range]PlMap),
		CashFlow:     make(map[date.Range]CfMap),
		Others:       make(map[date.Range]OthersMap),
	}
}

// Periods returns the Profit & Loss periods in chronological order.
func (a *Accounts) Periods() []date.Range {
	return sortedPeriods(a.ProfitLoss)
}

// SetDatesFromProfitLoss rebuilds the Dates slice from the boundaries of the
// Profit & Loss periods, sorted and deduplicated. Panics on a reversed
// period: those never survive decoding, so one here is a programming error.
func (a *Accounts) SetDatesFromProfitLoss() {
	dates := make([]date.Date, 0, 2*len(a.ProfitLoss))
	for r := range a.ProfitLoss {
		if !r.Valid() {
			panic(fmt.Sprintf("finstat: reversed period %s in accounts for %q", r, a.Company))
		}
		dates = append(dates, r.From, r.To)
	}
	slices.SortFunc(dates, date.Date.Compare)
	a.Dates = slices.Compact(dates)
}

// SplitPeriods partitions the Profit & Loss periods into annual and quarterly
// reporting horizons, both in chronological order.
func (a *Accounts) SplitPeriods() (annual, quarterly []date.Range) {
	for _, r := range a.Periods() {
		if r.Annual() {
			annual = append(annual, r)
		} else {
			quarterly = append(quarterly, r)
		}
	}
	return annual, quarterly
}

// PutBalanceSheet records one entered Balance Sheet value at the given date,
// creating the snapshot if needed. Panics if the item is calculated.
func (a *Accounts) PutBalanceSheet(on date.Date, item BsItem, value float64) {
	if a.BalanceSheet == nil {
		a.BalanceSheet = make(map[date.Date]BsMap)
	}
	m, ok := a.BalanceSheet[on]
	if !ok {
		m = make(BsMap)
		a.BalanceSheet[on] = m
	}
	m.Upsert(item, value)
}

// PutProfitLoss records one entered Profit & Loss value for the given period.
// Panics if the item is calculated.
func (a *Accounts) PutProfitLoss(period date.Range, item PlItem, value float64) {
	if a.ProfitLoss == nil {
		a.ProfitLoss = make(map[date.Range]PlMap)
	}
	m, ok := a.ProfitLoss[period]
	if !ok {
		m = make(PlMap)
		a.ProfitLoss[period] = m
	}
	m.Upsert(item, value)
}

// PutCashFlow records one entered Cash Flow value for the given period.
// Panics if the item is calculated.
func (a *Accounts) PutCashFlow(period date.Range, item CfItem, value float64) {
	if a.CashFlow == nil {
		a.CashFlow = make(map[date.Range]CfMap)
	}
	m, ok := a.CashFlow[period]
	if !ok {
		m = make(CfMap)
		a.CashFlow[period] = m
	}
	m.Upsert(item, value)
}

// PutOther records one auxiliary metric for the given period.
func (a *Accounts) PutOther(period date.Range, name string, value float64) {
	if a.Others == nil {
		a.Others = make(map[date.Range]OthersMap)
	}
	m, ok := a.Others[period]
	if !ok {
		m = make(OthersMap)
		a.Others[period] = m
	}
	m[name] = value
}

// CalcElements rolls up every statement in the book.
func (a *Accounts) CalcElements() {
	for _, m := range a.BalanceSheet {
		m.CalcElements()
	}
	for _, m := range a.ProfitLoss {
		m.CalcElements()
	}
	for _, m := range a.CashFlow {
		m.CalcElements()
	}
}

// RemoveCalcClean strips every statement in the book back to its entered,
// material values.
func (a *Accounts) RemoveCalcClean() {
	for _, m := range a.BalanceSheet {
		m.RemoveCalcClean()
	}
	for _, m := range a.ProfitLoss {
		m.RemoveCalcClean()
	}
	for _, m := range a.CashFlow {
		m.RemoveCalcClean()
	}
}

// CalcCashFlow derives the Cash Flow statement of every period whose Profit &
// Loss and boundary Balance Sheets are all present, replacing any statement
// previously stored for that period. Periods with a missing snapshot are
// skipped.
func (a *Accounts) CalcCashFlow(rates TaxRates) {
	if a.CashFlow == nil {
		a.CashFlow = make(map[date.Range]CfMap)
	}
	for r, pl := range a.ProfitLoss {
		begin, okb := a.BalanceSheet[r.From]
		end, oke := a.BalanceSheet[r.To]
		if !okb || !oke {
			continue
		}
		derived := pl.Clone().CalcElements()
		a.CashFlow[r] = CalcCashFlow(begin, end, derived, rates).CalcElements()
	}
}

// CalcTax estimates and records the current tax charge of every Profit &
// Loss period under the given regime, then re-derives the statement so the
// after-tax aggregates reflect the charge. The estimate is computed on the
// pre-existing entered values: a previously recorded TaxesCurrent is
// replaced, not compounded.
func (a *Accounts) CalcTax(rates TaxRates) {
	for _, pl := range a.ProfitLoss {
		base := pl.Clone().RemoveCalcClean()
		delete(base, TaxesCurrent)
		base.CalcElements()
		pl.Upsert(TaxesCurrent, rates.Tax(base))
		pl.CalcElements()
	}
}
