package finstat

import "fmt"

// BsItem identifies one line item of a Balance Sheet. Items are totally
// ordered by their declaration order, which follows the statement layout:
// current assets, long term assets, liabilities, then equity.
type BsItem int

const (
	Cash BsItem = iota
	CurrentReceivables
	CurrentLoans
	CurrentAdvances
	OtherCurrentAssets
	CurrentInvestments
	Inventories
	RawMaterials
	WorkInProgress
	FinishedGoods
	CurrentAssets
	AccountReceivables
	LongTermLoanAssets
	LongTermAdvances
	LongTermInvestments
	OtherLongTermAssets
	PlantPropertyEquipment
	AccumulatedDepreciation
	NetPlantPropertyEquipment
	LeasingRentalAssets
	AccumulatedAmortizationLeaseRental
	NetLeaseRentalAssets
	Goodwill
	CapitalWip
	OtherTangibleAssets
	IntangibleAssets
	IntangibleAssetsDevelopment
	AccumulatedAmortization
	NetIntangibleAssets
	LongTermAssets
	Assets
	CurrentPayables
	CurrentBorrowings
	CurrentNotesPayable
	OtherCurrentLiabilities
	InterestPayable
	CurrentProvisions
	CurrentTaxPayables
	LiabilitiesSaleAssets
	CurrentLeasesLiability
	CurrentLiabilities
	AccountPayables
	LongTermBorrowings
	BondsPayable
	DeferredTaxLiabilities
	LongTermLeasesLiability
	DeferredCompensation
	DeferredRevenues
	CustomerDeposits
	OtherLongTermLiabilities
	PensionProvision
	TaxProvision
	LongTermProvision
	LongTermLiabilities
	Liabilities
	CommonStock
	PreferredStock
	PdInCapAbovePar
	PdInCapTreasuryStock
	RevaluationReserves
	Reserves
	RetainedEarnings
	AccumulatedOci
	MinorityInterests
	Equity
	BalanceSheetCheck

	numBsItems int = iota
)

var bsItemNames = [...]string{
	Cash:                               "Cash",
	CurrentReceivables:                 "CurrentReceivables",
	CurrentLoans:                       "CurrentLoans",
	CurrentAdvances:                    "CurrentAdvances",
	OtherCurrentAssets:                 "OtherCurrentAssets",
	CurrentInvestments:                 "CurrentInvestments",
	Inventories:                        "Inventories",
	RawMaterials:                       "RawMaterials",
	WorkInProgress:                     "WorkInProgress",
	FinishedGoods:                      "FinishedGoods",
	CurrentAssets:                      "CurrentAssets",
	AccountReceivables:                 "AccountReceivables",
	LongTermLoanAssets:                 "LongTermLoanAssets",
	LongTermAdvances:                   "LongTermAdvances",
	LongTermInvestments:                "LongTermInvestments",
	OtherLongTermAssets:                "OtherLongTermAssets",
	PlantPropertyEquipment:             "PlantPropertyEquipment",
	AccumulatedDepreciation:            "AccumulatedDepreciation",
	NetPlantPropertyEquipment:          "NetPlantPropertyEquipment",
	LeasingRentalAssets:                "LeasingRentalAssets",
	AccumulatedAmortizationLeaseRental: "AccumulatedAmortizationLeaseRental",
	NetLeaseRentalAssets:               "NetLeaseRentalAssets",
	Goodwill:                           "Goodwill",
	CapitalWip:                         "CapitalWip",
	OtherTangibleAssets:                "OtherTangibleAssets",
	IntangibleAssets:                   "IntangibleAssets",
	IntangibleAssetsDevelopment:        "IntangibleAssetsDevelopment",
	AccumulatedAmortization:            "AccumulatedAmortization",
	NetIntangibleAssets:                "NetIntangibleAssets",
	LongTermAssets:                     "LongTermAssets",
	Assets:                             "Assets",
	CurrentPayables:                    "CurrentPayables",
	CurrentBorrowings:                  "CurrentBorrowings",
	CurrentNotesPayable:                "CurrentNotesPayable",
	OtherCurrentLiabilities:            "OtherCurrentLiabilities",
	InterestPayable:                    "InterestPayable",
	CurrentProvisions:                  "CurrentProvisions",
	CurrentTaxPayables:                 "CurrentTaxPayables",
	LiabilitiesSaleAssets:              "LiabilitiesSaleAssets",
	CurrentLeasesLiability:             "CurrentLeasesLiability",
	CurrentLiabilities:                 "CurrentLiabilities",
	AccountPayables:                    "AccountPayables",
	LongTermBorrowings:                 "LongTermBorrowings",
	BondsPayable:                       "BondsPayable",
	DeferredTaxLiabilities:             "DeferredTaxLiabilities",
	LongTermLeasesLiability:            "LongTermLeasesLiability",
	DeferredCompensation:               "DeferredCompensation",
	DeferredRevenues:                   "DeferredRevenues",
	CustomerDeposits:                   "CustomerDeposits",
	OtherLongTermLiabilities:           "OtherLongTermLiabilities",
	PensionProvision:                   "PensionProvision",
	TaxProvision:                       "TaxProvision",
	LongTermProvision:                  "LongTermProvision",
	LongTermLiabilities:                "LongTermLiabilities",
	Liabilities:                        "Liabilities",
	CommonStock:                        "CommonStock",
	PreferredStock:                     "PreferredStock",
	PdInCapAbovePar:                    "PdInCapAbovePar",
	PdInCapTreasuryStock:               "PdInCapTreasuryStock",
	RevaluationReserves:                "RevaluationReserves",
	Reserves:                           "Reserves",
	RetainedEarnings:                   "RetainedEarnings",
	AccumulatedOci:                     "AccumulatedOci",
	MinorityInterests:                  "MinorityInterests",
	Equity:                             "Equity",
	BalanceSheetCheck:                  "BalanceSheetCheck",
}

func (i BsItem) String() string {
	if i < 0 || int(i) >= numBsItems {
		return fmt.Sprintf("BsItem(%d)", int(i))
	}
	return bsItemNames[i]
}

// IsCalculated reports whether the item is the target of a roll-up rule.
// Calculated items are derived by CalcElements and can never be written directly.
func (i BsItem) IsCalculated() bool { return balanceSheet().calc[i] }

// BsItems returns all Balance Sheet items in declaration order.
func BsItems() []BsItem {
	items := make([]BsItem, numBsItems)
	for i := range items {
		items[i] = BsItem(i)
	}
	return items
}

var bsItemIndex = indexNames[BsItem](bsItemNames[:])

// ParseBsItem returns the Balance Sheet item with the given name.
func ParseBsItem(name string) (BsItem, error) {
	i, ok := bsItemIndex()[name]
	if !ok {
		return 0, fmt.Errorf("unknown balance sheet item %q", name)
	}
	return i, nil
}
