package finstat

import "fmt"

// CfItem identifies one line item of a Cash Flow statement, grouped in the
// three classic flow categories: operations, investments and financing.
type CfItem int

const (
	DeferredIncomeTaxes CfItem = iota
	ChangeInventories
	ChangeReceivables
	ChangePayables
	ChangeLiabilities
	ChangeProvisions
	OtherCfOperations
	StockCompensationExpense
	StockCompensationTaxBenefit
	AccretionDebtDiscount
	CashFlowOperations
	InvestmentsPpe
	InvestmentsCapDevp
	InvestmentsLoans
	AcqEquityAssets
	DisEquityAssets
	DisPpe
	ChangeInvestments
	CfInvestmentInterest
	CfInvestmentDividends
	OtherCfInvestments
	CashFlowInvestments
	StockSales
	StockRepurchase
	DebtIssue
	DebtRepay
	InterestFin
	Dividends
	DonorContribution
	OtherCfFinancing
	CashFlowFinancing
	NetCashFlow

	numCfItems int = iota
)

var cfItemNames = [...]string{
	DeferredIncomeTaxes:         "DeferredIncomeTaxes",
	ChangeInventories:           "ChangeInventories",
	ChangeReceivables:           "ChangeReceivables",
	ChangePayables:              "ChangePayables",
	ChangeLiabilities:           "ChangeLiabilities",
	ChangeProvisions:            "ChangeProvisions",
	OtherCfOperations:           "OtherCfOperations",
	StockCompensationExpense:    "StockCompensationExpense",
	StockCompensationTaxBenefit: "StockCompensationTaxBenefit",
	AccretionDebtDiscount:       "AccretionDebtDiscount",
	CashFlowOperations:          "CashFlowOperations",
	InvestmentsPpe:              "InvestmentsPpe",
	InvestmentsCapDevp:          "InvestmentsCapDevp",
	InvestmentsLoans:            "InvestmentsLoans",
	AcqEquityAssets:             "AcqEquityAssets",
	DisEquityAssets:             "DisEquityAssets",
	DisPpe:                      "DisPpe",
	ChangeInvestments:           "ChangeInvestments",
	CfInvestmentInterest:        "CfInvestmentInterest",
	CfInvestmentDividends:       "CfInvestmentDividends",
	OtherCfInvestments:          "OtherCfInvestments",
	CashFlowInvestments:         "CashFlowInvestments",
	StockSales:                  "StockSales",
	StockRepurchase:             "StockRepurchase",
	DebtIssue:                   "DebtIssue",
	DebtRepay:                   "DebtRepay",
	InterestFin:                 "InterestFin",
	Dividends:                   "Dividends",
	DonorContribution:           "DonorContribution",
	OtherCfFinancing:            "OtherCfFinancing",
	CashFlowFinancing:           "CashFlowFinancing",
	NetCashFlow:                 "NetCashFlow",
}

func (i CfItem) String() string {
	if i < 0 || int(i) >= numCfItems {
		return fmt.Sprintf("CfItem(%d)", int(i))
	}
	return cfItemNames[i]
}

// IsCalculated reports whether the item is the target of a roll-up rule.
func (i CfItem) IsCalculated() bool { return cashFlow().calc[i] }

// CfItems returns all Cash Flow items in declaration order.
func CfItems() []CfItem {
	items := make([]CfItem, numCfItems)
	for i := range items {
		items[i] = CfItem(i)
	}
	return items
}

var cfItemIndex = indexNames[CfItem](cfItemNames[:])

// ParseCfItem returns the Cash Flow item with the given name.
func ParseCfItem(name string) (CfItem, error) {
	i, ok := cfItemIndex()[name]
	if !ok {
		return 0, fmt.Errorf("unknown cash flow item %q", name)
	}
	return i, nil
}
