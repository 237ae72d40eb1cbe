package renderer

import (
	"strings"
	"testing"

	"github.com/finstat/finstat"
	"github.com/finstat/finstat/date"
)

func TestCell(t *testing.T) {
	opts := Options{Currency: "USD"}
	tests := []struct {
		v    float64
		want string
	}{
		{0.25, "25.00%"},
		{-0.031, "-3.10%"},
		{0, "0.00%"},
		{1500, "$1,500.00"},
		{-42, "-$42.00"},
	}
	for _, tc := range tests {
		if got := opts.Cell(tc.v); got != tc.want {
			t.Errorf("Cell(%v) = %q want %q", tc.v, got, tc.want)
		}
	}
	if got := (Options{Currency: "USD", Scale: 3}).Cell(1_500_000); got != "$1,500.00" {
		t.Errorf("scaled Cell = %q", got)
	}
	if got := (Options{Currency: "EUR"}).Cell(1500); !strings.Contains(got, "1,500.00") {
		t.Errorf("EUR Cell = %q", got)
	}
}

func testAccounts() *finstat.Accounts {
	a := finstat.NewAccounts("demo")
	d0, d1 := date.New(2023, 12, 31), date.New(2024, 12, 31)
	period := date.NewRange(d0, d1)
	a.PutBalanceSheet(d0, finstat.Cash, 1000)
	a.PutBalanceSheet(d1, finstat.Cash, 1200)
	a.PutProfitLoss(period, finstat.OperatingRevenue, 500)
	a.PutProfitLoss(period, finstat.CostMaterial, 300)
	a.PutOther(period, "GrossMargin", 0.4)
	a.CalcElements()
	a.SetDatesFromProfitLoss()
	return a
}

func TestBalanceSheetTable(t *testing.T) {
	a := testAccounts()
	got := BalanceSheetTable(a, a.Dates, Options{Currency: "USD"})
	if !strings.Contains(got, "| 2023-12-31 | 2024-12-31 |") {
		t.Errorf("missing date columns:\n%s", got)
	}
	if !strings.Contains(got, "| Cash | $1,000.00 | $1,200.00 |") {
		t.Errorf("missing Cash row:\n%s", got)
	}
	if strings.Contains(got, "Goodwill") {
		t.Errorf("all-absent row rendered:\n%s", got)
	}
}

func TestProfitLossTable(t *testing.T) {
	a := testAccounts()
	got := ProfitLossTable(a, a.Periods(), Options{Currency: "USD"})
	if !strings.Contains(got, "2023-12-31..2024-12-31") {
		t.Errorf("missing period column:\n%s", got)
	}
	if !strings.Contains(got, "| GrossProfit | $200.00 |") {
		t.Errorf("missing derived GrossProfit row:\n%s", got)
	}
	if strings.Contains(got, "Salaries") {
		t.Errorf("all-absent row rendered:\n%s", got)
	}
}

func TestOthersTable(t *testing.T) {
	a := testAccounts()
	got := OthersTable(a, a.Periods(), Options{Currency: "USD"})
	if !strings.Contains(got, "| GrossMargin | 40.00% |") {
		t.Errorf("missing ratio row:\n%s", got)
	}
}
