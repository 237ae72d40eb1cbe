package finstat

import (
	"fmt"
	"sync"
)

// Item is the constraint shared by the three line item enumerations.
type Item interface {
	~int
	fmt.Stringer
}

// Rule defines one calculated line item as the signed sum of its
// contributors: sum(positive) - sum(negative). Contributors may themselves be
// calculated, in which case they are rolled up first.
type Rule[K Item] struct {
	Target   K
	Positive []K
	Negative []K
}

// crossRule derives a cash flow item from the line items of another
// statement: from a single Profit & Loss map, or from the delta of two
// Balance Sheet snapshots.
type crossRule[K Item] struct {
	Target   CfItem
	Positive []K
	Negative []K
}

// family bundles the static, read-only configuration of one statement
// domain: its roll-up rules in evaluation order, the set of calculated items,
// and the common-size anchor. Families are built once and shared.
type family[K Item] struct {
	name   string
	rules  []Rule[K]
	calc   map[K]bool
	anchor K
}

func newFamily[K Item](name string, anchor K, rules []Rule[K]) *family[K] {
	calc := make(map[K]bool, len(rules))
	for _, r := range rules {
		if calc[r.Target] {
			panic(fmt.Sprintf("finstat: duplicate %s roll-up rule for %s", name, r.Target))
		}
		calc[r.Target] = true
	}
	return &family[K]{name: name, rules: sortRules(name, rules), calc: calc, anchor: anchor}
}

// sortRules orders rules topologically so that every calculated contributor
// is rolled up before its dependents. The declared order is preserved where
// the dependency graph allows it. A cycle is a configuration error.
func sortRules[K Item](name string, rules []Rule[K]) []Rule[K] {
	index := make(map[K]int, len(rules))
	for i, r := range rules {
		index[r.Target] = i
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(rules))
	sorted := make([]Rule[K], 0, len(rules))

	var visit func(i int)
	visit = func(i int) {
		switch state[i] {
		case visiting:
			panic(fmt.Sprintf("finstat: cycle in %s roll-up rules at %s", name, rules[i].Target))
		case done:
			return
		}
		state[i] = visiting
		for _, k := range rules[i].Positive {
			if j, ok := index[k]; ok {
				visit(j)
			}
		}
		for _, k := range rules[i].Negative {
			if j, ok := index[k]; ok {
				visit(j)
			}
		}
		state[i] = done
		sorted = append(sorted, rules[i])
	}
	for i := range rules {
		visit(i)
	}
	return sorted
}

// indexNames builds, lazily and once, the reverse lookup from an item name to
// its value.
func indexNames[K ~int](names []string) func() map[string]K {
	return sync.OnceValue(func() map[string]K {
		m := make(map[string]K, len(names))
		for i, n := range names {
			m[n] = K(i)
		}
		return m
	})
}

// BalanceSheetRules returns the Balance Sheet roll-up rules in evaluation order.
func BalanceSheetRules() []Rule[BsItem] { return balanceSheet().rules }

// ProfitLossRules returns the Profit & Loss roll-up rules in evaluation order.
func ProfitLossRules() []Rule[PlItem] { return profitLoss().rules }

// CashFlowRules returns the Cash Flow roll-up rules in evaluation order.
func CashFlowRules() []Rule[CfItem] { return cashFlow().rules }

var balanceSheet = sync.OnceValue(func() *family[BsItem] {
	return newFamily("balance sheet", Assets, []Rule[BsItem]{
		{Inventories,
			[]BsItem{RawMaterials, WorkInProgress, FinishedGoods},
			nil},
		{CurrentAssets,
			[]BsItem{Cash, CurrentReceivables, CurrentLoans, CurrentAdvances,
				OtherCurrentAssets, CurrentInvestments, Inventories},
			nil},
		{NetPlantPropertyEquipment,
			[]BsItem{PlantPropertyEquipment},
			[]BsItem{AccumulatedDepreciation}},
		{NetLeaseRentalAssets,
			[]BsItem{LeasingRentalAssets},
			[]BsItem{AccumulatedAmortizationLeaseRental}},
		{NetIntangibleAssets,
			[]BsItem{IntangibleAssets, IntangibleAssetsDevelopment},
			[]BsItem{AccumulatedAmortization}},
		{LongTermAssets,
			[]BsItem{AccountReceivables, LongTermLoanAssets, LongTermAdvances,
				LongTermInvestments, OtherLongTermAssets, NetPlantPropertyEquipment,
				NetLeaseRentalAssets, Goodwill, CapitalWip, OtherTangibleAssets,
				NetIntangibleAssets},
			nil},
		{Assets, []BsItem{CurrentAssets, LongTermAssets}, nil},
		{CurrentLiabilities,
			[]BsItem{CurrentPayables, CurrentBorrowings, CurrentNotesPayable,
				OtherCurrentLiabilities, InterestPayable, CurrentProvisions,
				CurrentTaxPayables, LiabilitiesSaleAssets, CurrentLeasesLiability},
			nil},
		{LongTermLiabilities,
			[]BsItem{AccountPayables, LongTermBorrowings, BondsPayable,
				DeferredTaxLiabilities, LongTermLeasesLiability, DeferredCompensation,
				DeferredRevenues, CustomerDeposits, OtherLongTermLiabilities,
				PensionProvision, TaxProvision, LongTermProvision},
			nil},
		{Liabilities, []BsItem{CurrentLiabilities, LongTermLiabilities}, nil},
		{Equity,
			[]BsItem{CommonStock, PreferredStock, PdInCapAbovePar,
				PdInCapTreasuryStock, RevaluationReserves, Reserves, RetainedEarnings,
				AccumulatedOci, MinorityInterests},
			nil},
		// The accounting equation witness: zero (and therefore absent after
		// roll-up) on a consistent balance sheet.
		{BalanceSheetCheck, []BsItem{Assets}, []BsItem{Liabilities, Equity}},
	})
})

var profitLoss = sync.OnceValue(func() *family[PlItem] {
	return newFamily("profit & loss", Revenue, []Rule[PlItem]{
		{Revenue,
			[]PlItem{OperatingRevenue, NonOperatingRevenue},
			[]PlItem{ExciseStaxLevy}},
		{COGS, []PlItem{CostMaterial, DirectExpenses}, nil},
		{GrossProfit, []PlItem{Revenue}, []PlItem{COGS}},
		{Pbitda,
			[]PlItem{GrossProfit, OtherIncome},
			[]PlItem{Salaries, AdministrativeExpenses, ResearchNDevelopment,
				OtherOverheads, OtherOperativeExpenses, OtherExpenses,
				ExceptionalItems}},
		{Pbitx,
			[]PlItem{Pbitda},
			[]PlItem{Depreciation, AssetImpairment, LossDivestitures, Amortization}},
		{Pbtx,
			[]PlItem{Pbitx, InterestRevenue, OtherFinancialRevenue},
			[]PlItem{InterestExpense, CostDebt}},
		{Pbt, []PlItem{Pbtx}, []PlItem{ExtraordinaryItems, PriorYears}},
		{Pat, []PlItem{Pbt}, []PlItem{TaxesCurrent, TaxesDeferred}},
		{NetIncome, []PlItem{Pat, NetIncomeDiscontinuedOps}, nil},
		{OtherComprehensiveIncome,
			[]PlItem{GainsLossesForex, GainsLossesActurial, GainsLossesSales,
				FvChangeAvlSale},
			[]PlItem{OtherDeferredTaxes}},
		{TotalComprehensiveIncome,
			[]PlItem{NetIncome, OtherComprehensiveIncome},
			nil},
	})
})

var cashFlow = sync.OnceValue(func() *family[CfItem] {
	return newFamily("cash flow", NetCashFlow, []Rule[CfItem]{
		{CashFlowOperations,
			[]CfItem{OtherCfOperations, DeferredIncomeTaxes, ChangeInventories,
				ChangeReceivables, ChangePayables, ChangeLiabilities,
				ChangeProvisions, StockCompensationExpense,
				StockCompensationTaxBenefit, AccretionDebtDiscount},
			nil},
		{CashFlowInvestments,
			[]CfItem{InvestmentsPpe, InvestmentsCapDevp, InvestmentsLoans,
				ChangeInvestments, DisEquityAssets, DisPpe, CfInvestmentInterest,
				CfInvestmentDividends, OtherCfInvestments},
			[]CfItem{AcqEquityAssets}},
		{CashFlowFinancing,
			[]CfItem{StockSales, DebtIssue, InterestFin, DonorContribution,
				OtherCfFinancing},
			[]CfItem{StockRepurchase, DebtRepay, Dividends}},
		{NetCashFlow,
			[]CfItem{CashFlowOperations, CashFlowInvestments, CashFlowFinancing},
			nil},
	})
})

// cashFlowFromPl lists the cash flow items computed directly from one
// Profit & Loss map. OtherCfOperations carries the indirect-method operating
// base: net income plus non-cash charges plus the interest reclassified to
// financing.
var cashFlowFromPl = sync.OnceValue(func() []crossRule[PlItem] {
	return []crossRule[PlItem]{
		{OtherCfOperations,
			[]PlItem{NetIncome, Depreciation, Amortization, AssetImpairment,
				LossDivestitures, InterestExpense, CostDebt},
			nil},
		{DeferredIncomeTaxes, []PlItem{TaxesDeferred, OtherDeferredTaxes}, nil},
		{CfInvestmentInterest, []PlItem{InterestRevenue}, nil},
		{CfInvestmentDividends, []PlItem{OtherFinancialRevenue}, nil},
		{InterestFin, nil, []PlItem{InterestExpense, CostDebt}},
	}
})

// cashFlowFromBs lists the cash flow items computed as balance sheet
// movements: flow = ending balance - beginning balance, signed by the
// positive/negative contributor split. A growing asset consumes cash, a
// growing liability or equity item releases it.
var cashFlowFromBs = sync.OnceValue(func() []crossRule[BsItem] {
	return []crossRule[BsItem]{
		{ChangeInventories, nil, []BsItem{Inventories}},
		{ChangeReceivables, nil, []BsItem{CurrentReceivables, AccountReceivables}},
		{ChangePayables, []BsItem{CurrentPayables, AccountPayables}, nil},
		{ChangeLiabilities,
			[]BsItem{OtherCurrentLiabilities, InterestPayable, CurrentTaxPayables,
				LiabilitiesSaleAssets, DeferredRevenues, CustomerDeposits,
				OtherLongTermLiabilities},
			nil},
		{ChangeProvisions,
			[]BsItem{CurrentProvisions, PensionProvision, TaxProvision,
				LongTermProvision},
			nil},
		{InvestmentsPpe, nil, []BsItem{PlantPropertyEquipment, CapitalWip}},
		{InvestmentsCapDevp, nil, []BsItem{IntangibleAssetsDevelopment}},
		{InvestmentsLoans, nil, []BsItem{LongTermLoanAssets, LongTermAdvances}},
		{ChangeInvestments, nil, []BsItem{CurrentInvestments, LongTermInvestments}},
		{StockSales, []BsItem{CommonStock, PreferredStock, PdInCapAbovePar}, nil},
		{DebtIssue,
			[]BsItem{CurrentBorrowings, CurrentNotesPayable, LongTermBorrowings,
				BondsPayable},
			nil},
		{OtherCfFinancing,
			[]BsItem{CurrentLeasesLiability, LongTermLeasesLiability,
				DeferredCompensation},
			nil},
	}
})
