package finstat

import (
	"testing"

	"github.com/finstat/finstat/date"
)

// demoAccounts builds a small consistent two-date book: a company funded
// with 1000 of stock that earns 200 over the year, all in cash.
func demoAccounts() *Accounts {
	a := NewAccounts("Demo Corp")
	d0, d1 := date.New(2023, 12, 31), date.New(2024, 12, 31)
	period := date.NewRange(d0, d1)

	a.PutBalanceSheet(d0, Cash, 1000)
	a.PutBalanceSheet(d0, CommonStock, 1000)
	a.PutBalanceSheet(d1, Cash, 1200)
	a.PutBalanceSheet(d1, CommonStock, 1000)
	a.PutBalanceSheet(d1, RetainedEarnings, 200)
	a.PutProfitLoss(period, OperatingRevenue, 500)
	a.PutProfitLoss(period, CostMaterial, 300)
	a.SetDatesFromProfitLoss()
	return a
}

func TestAccountsEndToEnd(t *testing.T) {
	a := demoAccounts()
	a.CalcElements()
	a.CalcCashFlow(TaxRates{})

	period := a.Periods()[0]
	pl := a.ProfitLoss[period]
	if got := pl.Value(GrossProfit); !approx(got, 200) {
		t.Errorf("GrossProfit = %v want 200", got)
	}

	cf := a.CashFlow[period]
	net := cf.Value(CashFlowOperations) + cf.Value(CashFlowInvestments) + cf.Value(CashFlowFinancing)
	if got := cf.Value(NetCashFlow); !approx(got, net) {
		t.Errorf("NetCashFlow = %v want the sum of its categories %v", got, net)
	}
	if got := cf.Value(NetCashFlow); !approx(got, 200) {
		t.Errorf("NetCashFlow = %v want the cash movement 200", got)
	}

	if err := a.Check(); err != nil {
		t.Errorf("Check on a consistent book: %v", err)
	}
}

func TestCheckReportsImbalance(t *testing.T) {
	a := demoAccounts()
	a.PutBalanceSheet(date.New(2024, 12, 31), RetainedEarnings, 999)
	if err := a.Check(); err == nil {
		t.Error("Check should report an unbalanced sheet")
	}
}

func TestSetDatesFromProfitLoss(t *testing.T) {
	a := NewAccounts("x")
	a.PutProfitLoss(date.MustParseRange("2024-01-01..2024-12-31"), OperatingRevenue, 1)
	a.PutProfitLoss(date.MustParseRange("2023-01-01..2024-01-01"), OperatingRevenue, 1)
	a.SetDatesFromProfitLoss()
	want := []date.Date{date.New(2023, 1, 1), date.New(2024, 1, 1), date.New(2024, 12, 31)}
	if len(a.Dates) != len(want) {
		t.Fatalf("Dates = %v want %v", a.Dates, want)
	}
	for i, d := range want {
		if a.Dates[i] != d {
			t.Errorf("Dates[%d] = %s want %s", i, a.Dates[i], d)
		}
	}
}

func TestSplitPeriods(t *testing.T) {
	a := NewAccounts("x")
	year := date.MustParseRange("2024-01-01..2024-12-31")
	quarter := date.MustParseRange("2024-01-01..2024-03-31")
	a.PutProfitLoss(year, OperatingRevenue, 1)
	a.PutProfitLoss(quarter, OperatingRevenue, 1)

	annual, quarterly := a.SplitPeriods()
	if len(annual) != 1 || annual[0] != year {
		t.Errorf("annual = %v", annual)
	}
	if len(quarterly) != 1 || quarterly[0] != quarter {
		t.Errorf("quarterly = %v", quarterly)
	}
}

func TestCalcTax(t *testing.T) {
	a := demoAccounts()
	a.CalcTax(TaxRates{Corporate: 0.25})
	pl := a.ProfitLoss[a.Periods()[0]]
	if got := pl.Value(TaxesCurrent); !approx(got, 50) {
		t.Errorf("TaxesCurrent = %v want 50", got)
	}
	if got := pl.Value(NetIncome); !approx(got, 150) {
		t.Errorf("NetIncome = %v want 150 after tax", got)
	}

	// a second run replaces the estimate instead of compounding it
	a.CalcTax(TaxRates{Corporate: 0.25})
	if got := pl.Value(TaxesCurrent); !approx(got, 50) {
		t.Errorf("TaxesCurrent = %v after re-run, want 50", got)
	}
}

func TestGetAccount(t *testing.T) {
	a := demoAccounts()
	period := a.Periods()[0]
	report, ok := a.GetAccount(period)
	if !ok {
		t.Fatal("GetAccount on a complete period")
	}
	if report.Company != "Demo Corp" || report.Period != period {
		t.Errorf("report header = %q %s", report.Company, report.Period)
	}
	if _, ok := a.GetAccount(date.MustParseRange("2020-01-01..2020-12-31")); ok {
		t.Error("GetAccount on an unknown period should report false")
	}

	delete(a.BalanceSheet, period.From)
	if _, ok := a.GetAccount(period); ok {
		t.Error("GetAccount without a boundary balance sheet should report false")
	}
}

func TestReportsRoundTrip(t *testing.T) {
	a := demoAccounts()
	a.CalcRatios()
	reports := a.Reports()
	if len(reports) != 1 {
		t.Fatalf("Reports = %d want 1", len(reports))
	}
	b, err := FromReports(reports)
	if err != nil {
		t.Fatalf("FromReports: %v", err)
	}
	if b.Company != a.Company {
		t.Errorf("company = %q", b.Company)
	}
	if len(b.BalanceSheet) != 2 || len(b.ProfitLoss) != 1 || len(b.Others) != 1 {
		t.Errorf("round trip lost statements: %d %d %d",
			len(b.BalanceSheet), len(b.ProfitLoss), len(b.Others))
	}
	period := a.Periods()[0]
	if got := b.ProfitLoss[period].Value(OperatingRevenue); !approx(got, 500) {
		t.Errorf("OperatingRevenue = %v after round trip", got)
	}

	// the rebuilt book is a copy
	b.ProfitLoss[period].Upsert(OperatingRevenue, 1)
	if got := a.ProfitLoss[period].Value(OperatingRevenue); !approx(got, 500) {
		t.Errorf("mutating the copy leaked into the source: %v", got)
	}

	reports[0].Company = "Other Corp"
	if _, err := FromReports(reports); err == nil {
		t.Error("FromReports should reject mixed companies")
	}
	if _, err := FromReports(nil); err == nil {
		t.Error("FromReports should reject an empty slice")
	}
}

func TestCalcRatios(t *testing.T) {
	a := demoAccounts()
	a.CalcRatios()
	m := a.Others[a.Periods()[0]]
	if got := m.Value(GrossMargin); !approx(got, 0.4) {
		t.Errorf("GrossMargin = %v want 0.4", got)
	}
	if got := m.Value(NetMargin); !approx(got, 0.4) {
		t.Errorf("NetMargin = %v want 0.4", got)
	}
	if got := m.Value(ReturnOnEquity); !approx(got, 200.0/1200.0) {
		t.Errorf("ReturnOnEquity = %v", got)
	}
	if _, ok := m[CurrentRatio]; ok {
		t.Error("CurrentRatio should be left out without current liabilities")
	}
}
