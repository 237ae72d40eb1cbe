package finstat

import "testing"

func TestRuleTablesShape(t *testing.T) {
	if got := BalanceSheetRules()[0].Target; got != Inventories {
		t.Errorf("first balance sheet rule targets %s, want Inventories", got)
	}
	if !NetPlantPropertyEquipment.IsCalculated() {
		t.Error("NetPlantPropertyEquipment should be calculated")
	}
	if RawMaterials.IsCalculated() {
		t.Error("RawMaterials should be entered")
	}
	if !Pbitda.IsCalculated() {
		t.Error("Pbitda should be calculated")
	}
	if Salaries.IsCalculated() {
		t.Error("Salaries should be entered")
	}
	if !NetCashFlow.IsCalculated() {
		t.Error("NetCashFlow should be calculated")
	}
	if Dividends.IsCalculated() {
		t.Error("Dividends should be entered")
	}
	if !BalanceSheetCheck.IsCalculated() {
		t.Error("BalanceSheetCheck should be calculated")
	}
}

// contributorsBefore verifies the evaluation order: every calculated
// contributor of a rule is the target of an earlier rule.
func contributorsBefore[K Item](t *testing.T, rules []Rule[K]) {
	t.Helper()
	seen := make(map[K]bool, len(rules))
	calc := make(map[K]bool, len(rules))
	for _, r := range rules {
		calc[r.Target] = true
	}
	for _, r := range rules {
		for _, k := range append(append([]K{}, r.Positive...), r.Negative...) {
			if calc[k] && !seen[k] {
				t.Errorf("rule for %s uses %s before it is rolled up", r.Target, k)
			}
		}
		if seen[r.Target] {
			t.Errorf("duplicate rule for %s", r.Target)
		}
		seen[r.Target] = true
	}
}

func TestTopologicalOrder(t *testing.T) {
	contributorsBefore(t, BalanceSheetRules())
	contributorsBefore(t, ProfitLossRules())
	contributorsBefore(t, CashFlowRules())
}

func TestParseItems(t *testing.T) {
	for _, item := range BsItems() {
		got, err := ParseBsItem(item.String())
		if err != nil || got != item {
			t.Errorf("ParseBsItem(%q) = %v, %v", item, got, err)
		}
	}
	for _, item := range PlItems() {
		got, err := ParsePlItem(item.String())
		if err != nil || got != item {
			t.Errorf("ParsePlItem(%q) = %v, %v", item, got, err)
		}
	}
	for _, item := range CfItems() {
		got, err := ParseCfItem(item.String())
		if err != nil || got != item {
			t.Errorf("ParseCfItem(%q) = %v, %v", item, got, err)
		}
	}
	if _, err := ParseBsItem("NotAnItem"); err == nil {
		t.Error("ParseBsItem should reject an unknown name")
	}
	if _, err := ParsePlItem("Cash"); err == nil {
		t.Error("ParsePlItem should reject a balance sheet name")
	}
}
