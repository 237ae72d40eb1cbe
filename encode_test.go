package finstat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/finstat/finstat/date"
)

const sampleAccounts = `{
  // hand-written, with comments and unquoted keys
  company: "Demo Corp"
  balance_sheet: {
    2023-12-31: {
      Cash: 1000
      CommonStock: 1000
    }
    2024-12-31: {
      Cash: 1200
      CommonStock: 1000
      RetainedEarnings: 200
    }
  }
  profit_loss: {
    2023-12-31..2024-12-31: {
      OperatingRevenue: 500
      CostMaterial: 300
    }
  }
  others: {
    2023-12-31..2024-12-31: {
      Employees: 12
    }
  }
}
`

func TestDecodeAccounts(t *testing.T) {
	a, err := DecodeAccounts([]byte(sampleAccounts))
	if err != nil {
		t.Fatalf("DecodeAccounts: %v", err)
	}
	if a.Company != "Demo Corp" {
		t.Errorf("company = %q", a.Company)
	}
	if got := a.BalanceSheet[date.New(2023, 12, 31)].Value(Cash); !approx(got, 1000) {
		t.Errorf("Cash = %v", got)
	}
	period := date.MustParseRange("2023-12-31..2024-12-31")
	if got := a.ProfitLoss[period].Value(OperatingRevenue); !approx(got, 500) {
		t.Errorf("OperatingRevenue = %v", got)
	}
	if got := a.Others[period].Value("Employees"); !approx(got, 12) {
		t.Errorf("Employees = %v", got)
	}
	if len(a.Dates) != 2 {
		t.Errorf("Dates = %v", a.Dates)
	}
}

func TestDecodeRejectsCalculatedItems(t *testing.T) {
	_, err := DecodeAccounts([]byte(`{
  company: "x"
  balance_sheet: { 2024-12-31: { Assets: 100 } }
}`))
	if err == nil || !strings.Contains(err.Error(), "Assets") {
		t.Errorf("want calculated-item error, got %v", err)
	}

	_, err = DecodeAccounts([]byte(`{
  company: "x"
  profit_loss: { 2024-01-01..2024-12-31: { GrossProfit: 100 } }
}`))
	if err == nil || !strings.Contains(err.Error(), "GrossProfit") {
		t.Errorf("want calculated-item error, got %v", err)
	}
}

func TestDecodeRejectsBadKeys(t *testing.T) {
	_, err := DecodeAccounts([]byte(`{
  company: "x"
  balance_sheet: { 2024-12-31: { NotAnItem: 1 } }
}`))
	if err == nil {
		t.Error("want unknown-item error")
	}

	_, err = DecodeAccounts([]byte(`{
  company: "x"
  profit_loss: { 2024-12-31..2024-01-01: { OperatingRevenue: 1 } }
}`))
	if err == nil || !strings.Contains(err.Error(), "ends before it starts") {
		t.Errorf("want reversed-period error, got %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	a, err := DecodeAccounts([]byte(sampleAccounts))
	if err != nil {
		t.Fatal(err)
	}
	// derived items must not leak into the file
	a.CalcElements()

	out := EncodeAccounts(a)
	if bytes.Contains(out, []byte("Assets")) {
		t.Errorf("encoded file contains a calculated item:\n%s", out)
	}

	b, err := DecodeAccounts(out)
	if err != nil {
		t.Fatalf("decoding the canonical form: %v", err)
	}
	if b.Company != a.Company {
		t.Errorf("company = %q", b.Company)
	}
	for on, bs := range a.BalanceSheet {
		for _, item := range BsItems() {
			if item.IsCalculated() {
				continue
			}
			if got := b.BalanceSheet[on].Value(item); !approx(got, bs.Value(item)) {
				t.Errorf("%s on %s = %v want %v", item, on, got, bs.Value(item))
			}
		}
	}
}

func TestEncodeIsCanonical(t *testing.T) {
	a, err := DecodeAccounts([]byte(sampleAccounts))
	if err != nil {
		t.Fatal(err)
	}
	out := string(EncodeAccounts(a))

	// dates chronological, items in taxonomy order
	if strings.Index(out, "2023-12-31") > strings.Index(out, "2024-12-31") {
		t.Errorf("dates out of order:\n%s", out)
	}
	if strings.Index(out, "Cash") > strings.Index(out, "CommonStock") {
		t.Errorf("items out of taxonomy order:\n%s", out)
	}

	// encoding the decoded canonical form is stable
	b, err := DecodeAccounts([]byte(out))
	if err != nil {
		t.Fatal(err)
	}
	if again := string(EncodeAccounts(b)); again != out {
		t.Errorf("canonical form is not stable:\n%s\nvs\n%s", out, again)
	}
}
