package finstat

import "fmt"

// PlItem identifies one line item of a Profit & Loss statement, from revenue
// down to total comprehensive income.
type PlItem int

const (
	OperatingRevenue PlItem = iota
	NonOperatingRevenue
	ExciseStaxLevy
	OtherIncome
	Revenue
	CostMaterial
	DirectExpenses
	COGS
	Salaries
	AdministrativeExpenses
	ResearchNDevelopment
	OtherOverheads
	OtherOperativeExpenses
	OtherExpenses
	ExceptionalItems
	GrossProfit
	Pbitda
	Depreciation
	AssetImpairment
	LossDivestitures
	Amortization
	Pbitx
	InterestRevenue
	InterestExpense
	CostDebt
	OtherFinancialRevenue
	Pbtx
	ExtraordinaryItems
	PriorYears
	Pbt
	TaxesCurrent
	TaxesDeferred
	Pat
	NetIncomeDiscontinuedOps
	NetIncome
	GainsLossesForex
	GainsLossesActurial
	GainsLossesSales
	FvChangeAvlSale
	OtherDeferredTaxes
	OtherComprehensiveIncome
	TotalComprehensiveIncome

	numPlItems int = iota
)

var plItemNames = [...]string{
	OperatingRevenue:         "OperatingRevenue",
	NonOperatingRevenue:      "NonOperatingRevenue",
	ExciseStaxLevy:           "ExciseStaxLevy",
	OtherIncome:              "OtherIncome",
	Revenue:                  "Revenue",
	CostMaterial:             "CostMaterial",
	DirectExpenses:           "DirectExpenses",
	COGS:                     "COGS",
	Salaries:                 "Salaries",
	AdministrativeExpenses:   "AdministrativeExpenses",
	ResearchNDevelopment:     "ResearchNDevelopment",
	OtherOverheads:           "OtherOverheads",
	OtherOperativeExpenses:   "OtherOperativeExpenses",
	OtherExpenses:            "OtherExpenses",
	ExceptionalItems:         "ExceptionalItems",
	GrossProfit:              "GrossProfit",
	Pbitda:                   "Pbitda",
	Depreciation:             "Depreciation",
	AssetImpairment:          "AssetImpairment",
	LossDivestitures:         "LossDivestitures",
	Amortization:             "Amortization",
	Pbitx:                    "Pbitx",
	InterestRevenue:          "InterestRevenue",
	InterestExpense:          "InterestExpense",
	CostDebt:                 "CostDebt",
	OtherFinancialRevenue:    "OtherFinancialRevenue",
	Pbtx:                     "Pbtx",
	ExtraordinaryItems:       "ExtraordinaryItems",
	PriorYears:               "PriorYears",
	Pbt:                      "Pbt",
	TaxesCurrent:             "TaxesCurrent",
	TaxesDeferred:            "TaxesDeferred",
	Pat:                      "Pat",
	NetIncomeDiscontinuedOps: "NetIncomeDiscontinuedOps",
	NetIncome:                "NetIncome",
	GainsLossesForex:         "GainsLossesForex",
	GainsLossesActurial:      "GainsLossesActurial",
	GainsLossesSales:         "GainsLossesSales",
	FvChangeAvlSale:          "FvChangeAvlSale",
	OtherDeferredTaxes:       "OtherDeferredTaxes",
	OtherComprehensiveIncome: "OtherComprehensiveIncome",
	TotalComprehensiveIncome: "TotalComprehensiveIncome",
}

func (i PlItem) String() string {
	if i < 0 || int(i) >= numPlItems {
		return fmt.Sprintf("PlItem(%d)", int(i))
	}
	return plItemNames[i]
}

// IsCalculated reports whether the item is the target of a roll-up rule.
func (i PlItem) IsCalculated() bool { return profitLoss().calc[i] }

// PlItems returns all Profit & Loss items in declaration order.
func PlItems() []PlItem {
	items := make([]PlItem, numPlItems)
	for i := range items {
		items[i] = PlItem(i)
	}
	return items
}

var plItemIndex = indexNames[PlItem](plItemNames[:])

// ParsePlItem returns the Profit & Loss item with the given name.
func ParsePlItem(name string) (PlItem, error) {
	i, ok := plItemIndex()[name]
	if !ok {
		return 0, fmt.Errorf("unknown profit & loss item %q", name)
	}
	return i, nil
}
