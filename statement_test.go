package finstat

import (
	"math"
	"testing"
)

func approx(x, y float64) bool {
	mx := math.Max(math.Abs(x), math.Abs(y))
	return mx < 1e-8 || math.Abs(x-y)/mx < 1e-6
}

func sampleBalanceSheet() BsMap {
	return BsMap{}.
		Upsert(Cash, 800).
		Upsert(CurrentReceivables, 200).
		Upsert(RawMaterials, 100).
		Upsert(PlantPropertyEquipment, 500).
		Upsert(AccumulatedDepreciation, 100).
		Upsert(CurrentPayables, 300).
		Upsert(LongTermBorrowings, 200).
		Upsert(CommonStock, 800).
		Upsert(RetainedEarnings, 200)
}

func TestBalanceSheetRollUp(t *testing.T) {
	bs := sampleBalanceSheet().CalcElements()
	want := map[BsItem]float64{
		Inventories:               100,
		CurrentAssets:             1100,
		NetPlantPropertyEquipment: 400,
		LongTermAssets:            400,
		Assets:                    1500,
		CurrentLiabilities:        300,
		LongTermLiabilities:       200,
		Liabilities:               500,
		Equity:                    1000,
	}
	for item, v := range want {
		if got := bs.Value(item); !approx(got, v) {
			t.Errorf("%s = %v want %v", item, got, v)
		}
	}
	// the accounting equation holds, so its witness is absent
	if _, ok := bs[BalanceSheetCheck]; ok {
		t.Errorf("BalanceSheetCheck = %v on a balanced sheet", bs[BalanceSheetCheck])
	}
}

func TestProfitLossRollUp(t *testing.T) {
	pl := PlMap{}.
		Upsert(OperatingRevenue, 500).
		Upsert(CostMaterial, 300).
		CalcElements()
	want := map[PlItem]float64{
		Revenue:                  500,
		COGS:                     300,
		GrossProfit:              200,
		Pbitda:                   200,
		Pbitx:                    200,
		Pbtx:                     200,
		Pbt:                      200,
		Pat:                      200,
		NetIncome:                200,
		TotalComprehensiveIncome: 200,
	}
	for item, v := range want {
		if got := pl.Value(item); !approx(got, v) {
			t.Errorf("%s = %v want %v", item, got, v)
		}
	}
	if _, ok := pl[OtherComprehensiveIncome]; ok {
		t.Error("OtherComprehensiveIncome should be absent when its contributors are")
	}
}

func TestWriteCalculatedPanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	for _, item := range BsItems() {
		if !item.IsCalculated() {
			continue
		}
		mustPanic("BsMap.Add "+item.String(), func() { BsMap{}.Add(item, 1) })
		mustPanic("BsMap.Upsert "+item.String(), func() { BsMap{}.Upsert(item, 1) })
	}
	for _, item := range PlItems() {
		if !item.IsCalculated() {
			continue
		}
		mustPanic("PlMap.Add "+item.String(), func() { PlMap{}.Add(item, 1) })
		mustPanic("PlMap.Upsert "+item.String(), func() { PlMap{}.Upsert(item, 1) })
	}
	for _, item := range CfItems() {
		if !item.IsCalculated() {
			continue
		}
		mustPanic("CfMap.Add "+item.String(), func() { CfMap{}.Add(item, 1) })
		mustPanic("CfMap.Upsert "+item.String(), func() { CfMap{}.Upsert(item, 1) })
	}
}

func TestCalcElementsIdempotent(t *testing.T) {
	once := sampleBalanceSheet().CalcElements()
	twice := sampleBalanceSheet().CalcElements().CalcElements()
	if len(once) != len(twice) {
		t.Fatalf("idempotence broken: %d items vs %d", len(once), len(twice))
	}
	for item, v := range once {
		if got := twice[item]; !approx(got, v) {
			t.Errorf("%s = %v after second derivation, want %v", item, got, v)
		}
	}
}

func TestImmaterialAggregateRemoved(t *testing.T) {
	bs := BsMap{}.Upsert(RawMaterials, 100).CalcElements()
	if _, ok := bs[Inventories]; !ok {
		t.Fatal("Inventories should be derived")
	}
	bs.Upsert(RawMaterials, 0).CalcElements()
	if _, ok := bs[Inventories]; ok {
		t.Error("a zero aggregate should be removed, not stored")
	}
}

func TestRemoveCalcClean(t *testing.T) {
	bs := sampleBalanceSheet().CalcElements()
	bs.Upsert(Goodwill, 1e-9)
	bs.RemoveCalcClean()
	for item := range bs {
		if item.IsCalculated() {
			t.Errorf("calculated item %s survived RemoveCalcClean", item)
		}
	}
	if _, ok := bs[Goodwill]; ok {
		t.Error("immaterial entry survived RemoveCalcClean")
	}
	if got := bs.Value(Cash); !approx(got, 800) {
		t.Errorf("Cash = %v after RemoveCalcClean", got)
	}
}

func TestCommonSize(t *testing.T) {
	cs := sampleBalanceSheet().CalcElements().CommonSize()
	if got := cs.Value(Assets); !approx(got, 1) {
		t.Errorf("Assets common-size = %v want 1", got)
	}
	if got := cs.Value(Cash); !approx(got, 800.0/1500.0) {
		t.Errorf("Cash common-size = %v", got)
	}

	pl := PlMap{}.Upsert(OperatingRevenue, 500).Upsert(CostMaterial, 300).CalcElements()
	if got := pl.CommonSize().Value(GrossProfit); !approx(got, 0.4) {
		t.Errorf("GrossProfit common-size = %v want 0.4", got)
	}
}

func TestVecOrdering(t *testing.T) {
	m := PlMap{}.AddVec([]Entry[PlItem]{
		{OperatingRevenue, 100},
		{OperatingRevenue, 50},
	})
	if got := m.Value(OperatingRevenue); !approx(got, 150) {
		t.Errorf("AddVec accumulated %v want 150", got)
	}
	m.UpsertVec([]Entry[PlItem]{
		{OperatingRevenue, 10},
		{OperatingRevenue, 20},
	})
	if got := m.Value(OperatingRevenue); !approx(got, 20) {
		t.Errorf("UpsertVec kept %v, later entries should win", got)
	}
}

func TestAbsentIsZero(t *testing.T) {
	if got := (BsMap{}).Value(Cash); got != 0 {
		t.Errorf("absent Cash = %v want 0", got)
	}
}
