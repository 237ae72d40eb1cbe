package finstat

import (
	"errors"
	"fmt"
	"math"

	"github.com/finstat/finstat/date"
)

// FinancialReport is the complete view of one reporting period: the Balance
// Sheets at both boundary dates, the Profit & Loss and Cash Flow spanning the
// period, and the auxiliary metrics.
type FinancialReport struct {
	Company           string
	Period            date.Range
	BalanceSheetBegin BsMap
	BalanceSheetEnd   BsMap
	ProfitLoss        PlMap
	CashFlow          CfMap
	Others            OthersMap
}

// GetAccount assembles the report for one period. It returns false when the
// period has no Profit & Loss statement or either boundary Balance Sheet is
// missing.
func (a *Accounts) GetAccount(period date.Range) (*FinancialReport, bool) {
	pl, ok := a.ProfitLoss[period]
	if !ok {
		return nil, false
	}
	begin, okb := a.BalanceSheet[period.From]
	end, oke := a.BalanceSheet[period.To]
	if !okb || !oke {
		return nil, false
	}
	return &FinancialReport{
		Company:           a.Company,
		Period:            period,
		BalanceSheetBegin: begin,
		BalanceSheetEnd:   end,
		ProfitLoss:        pl,
		CashFlow:          a.CashFlow[period],
		Others:            a.Others[period],
	}, true
}

// Reports returns one report per Profit & Loss period, in chronological
// order. Unlike GetAccount it does not insist on complete boundary data:
// missing statements come back nil, so the result always round-trips through
// FromReports without loss.
func (a *Accounts) Reports() []FinancialReport {
	periods := a.Periods()
	reports := make([]FinancialReport, 0, len(periods))
	for _, r := range periods {
		reports = append(reports, FinancialReport{
			Company:           a.Company,
			Period:            r,
			BalanceSheetBegin: a.BalanceSheet[r.From],
			BalanceSheetEnd:   a.BalanceSheet[r.To],
			ProfitLoss:        a.ProfitLoss[r],
			CashFlow:          a.CashFlow[r],
			Others:            a.Others[r],
		})
	}
	return reports
}

// FromReports rebuilds an Accounts book from per-period reports. All reports
// must belong to the same company. Statements are cloned, so mutating the
// book leaves the reports untouched. When two reports carry a Balance Sheet
// for the same date, the later report wins.
func FromReports(reports []FinancialReport) (*Accounts, error) {
	if len(reports) == 0 {
		return nil, errors.New("no reports to assemble")
	}
	a := NewAccounts(reports[0].Company)
	for _, r := range reports {
		if r.Company != a.Company {
			return nil, fmt.Errorf("report for %q mixed into accounts for %q", r.Company, a.Company)
		}
		if r.BalanceSheetBegin != nil {
			a.BalanceSheet[r.Period.From] = r.BalanceSheetBegin.Clone()
		}
		if r.BalanceSheetEnd != nil {
			a.BalanceSheet[r.Period.To] = r.BalanceSheetEnd.Clone()
		}
		if r.ProfitLoss != nil {
			a.ProfitLoss[r.Period] = r.ProfitLoss.Clone()
		}
		if r.CashFlow != nil {
			a.CashFlow[r.Period] = r.CashFlow.Clone()
		}
		if r.Others != nil {
			a.Others[r.Period] = r.Others.Clone()
		}
	}
	a.SetDatesFromProfitLoss()
	return a, nil
}

// checkBalanceSheet verifies the accounting equation on one snapshot.
func checkBalanceSheet(on date.Date, bs BsMap) error {
	d := bs.Clone().CalcElements()
	if gap := d[BalanceSheetCheck]; math.Abs(gap) > Materiality {
		return fmt.Errorf("balance sheet on %s off by %g: assets %g, liabilities %g, equity %g",
			on, gap, d[Assets], d[Liabilities], d[Equity])
	}
	return nil
}

// Check verifies the internal consistency of the report: the accounting
// equation on both boundary Balance Sheets, and the Cash Flow reconciling to
// the cash movement over the period. All failures are reported, joined.
func (r *FinancialReport) Check() error {
	var errs []error
	if !r.Period.Valid() {
		errs = append(errs, fmt.Errorf("reversed period %s", r.Period))
	}
	if r.BalanceSheetBegin != nil {
		if err := checkBalanceSheet(r.Period.From, r.BalanceSheetBegin); err != nil {
			errs = append(errs, err)
		}
	}
	if r.BalanceSheetEnd != nil {
		if err := checkBalanceSheet(r.Period.To, r.BalanceSheetEnd); err != nil {
			errs = append(errs, err)
		}
	}
	if r.CashFlow != nil && r.BalanceSheetBegin != nil && r.BalanceSheetEnd != nil {
		net := r.CashFlow.Clone().CalcElements()[NetCashFlow]
		delta := r.BalanceSheetEnd[Cash] - r.BalanceSheetBegin[Cash]
		if math.Abs(net-delta) > Materiality {
			errs = append(errs, fmt.Errorf("net cash flow %g over %s does not match cash movement %g",
				net, r.Period, delta))
		}
	}
	return errors.Join(errs...)
}

// Check verifies the whole book: every Balance Sheet satisfies the
// accounting equation, every Cash Flow and auxiliary period has a matching
// Profit & Loss period, and wherever a period is fully covered the Cash Flow
// reconciles to the cash movement.
func (a *Accounts) Check() error {
	var errs []error
	for on, bs := range a.BalanceSheet {
		if err := checkBalanceSheet(on, bs); err != nil {
			errs = append(errs, err)
		}
	}
	for r := range a.CashFlow {
		if _, ok := a.ProfitLoss[r]; !ok {
			errs = append(errs, fmt.Errorf("cash flow period %s has no profit & loss statement", r))
		}
	}
	for r := range a.Others {
		if _, ok := a.ProfitLoss[r]; !ok {
			errs = append(errs, fmt.Errorf("metrics period %s has no profit & loss statement", r))
		}
	}
	for _, period := range a.Periods() {
		cf := a.CashFlow[period]
		begin, okb := a.BalanceSheet[period.From]
		end, oke := a.BalanceSheet[period.To]
		if cf == nil || !okb || !oke {
			continue
		}
		net := cf.Clone().CalcElements()[NetCashFlow]
		delta := end[Cash] - begin[Cash]
		if math.Abs(net-delta) > Materiality {
			errs = append(errs, fmt.Errorf("net cash flow %g over %s does not match cash movement %g",
				net, period, delta))
		}
	}
	return errors.Join(errs...)
}
