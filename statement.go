package finstat

import (
	"fmt"
	"maps"
	"math"
)

// Materiality is the smallest absolute value a statement map stores. Derived
// values below it are treated as absent, and Clean strips entered values
// below it. Absence means "not material for this entity", never "unknown".
const Materiality = 1e-5

// Entry pairs a line item with an amount, for ordered batch application.
type Entry[K Item] struct {
	Item  K
	Value float64
}

// BsMap holds one Balance Sheet snapshot: signed amounts keyed by line item.
type BsMap map[BsItem]float64

// PlMap holds one Profit & Loss statement spanning a period.
type PlMap map[PlItem]float64

// CfMap holds one Cash Flow statement spanning a period.
type CfMap map[CfItem]float64

// OthersMap holds free-form auxiliary metrics (ratios, share counts, ...).
type OthersMap map[string]float64

// mustEntered panics when a caller attempts to write a calculated item.
// Calculated items are only ever produced by CalcElements; writing one is a
// misuse of the API, not a recoverable data condition.
func mustEntered[K Item](f *family[K], k K) {
	if f.calc[k] {
		panic(fmt.Sprintf("finstat: %s is a calculated %s item and cannot be written directly", k, f.name))
	}
}

func addItem[K Item](f *family[K], m map[K]float64, k K, v float64) {
	mustEntered(f, k)
	m[k] += v
}

func upsertItem[K Item](f *family[K], m map[K]float64, k K, v float64) {
	mustEntered(f, k)
	m[k] = v
}

// calcElements rolls up every calculated item, in topological rule order.
// Material results are stored, immaterial ones are removed so a re-run on an
// already-derived map is idempotent.
func calcElements[K Item](f *family[K], m map[K]float64) {
	for _, r := range f.rules {
		v := 0.0
		for _, p := range r.Positive {
			v += m[p]
		}
		for _, n := range r.Negative {
			v -= m[n]
		}
		if math.Abs(v) > Materiality {
			m[r.Target] = v
		} else {
			delete(m, r.Target)
		}
	}
}

// removeCalcClean strips all calculated items and all immaterial entries,
// resetting the map to its raw entered form.
func removeCalcClean[K Item](f *family[K], m map[K]float64) {
	for k, v := range m {
		if f.calc[k] || math.Abs(v) < Materiality {
			delete(m, k)
		}
	}
}

// clean removes immaterial entries only.
func clean[K Item](m map[K]float64) {
	for k, v := range m {
		if math.Abs(v) < Materiality {
			delete(m, k)
		}
	}
}

// commonSize returns a new map with every value divided by the family anchor
// (Assets, Revenue or NetCashFlow). By convention the anchor is present and
// nonzero on any derived statement; there is no guard against a zero anchor.
func commonSize[K Item](f *family[K], m map[K]float64) map[K]float64 {
	anchor := m[f.anchor]
	out := make(map[K]float64, len(m))
	for k, v := range m {
		out[k] = v / anchor
	}
	return out
}

// Value returns the amount recorded for the item, or 0 if absent.
func (m BsMap) Value(k BsItem) float64 { return m[k] }

// Add accumulates v onto the item. Panics if the item is calculated.
func (m BsMap) Add(k BsItem, v float64) BsMap { addItem(balanceSheet(), m, k, v); return m }

// Upsert replaces the item's value with v. Panics if the item is calculated.
func (m BsMap) Upsert(k BsItem, v float64) BsMap { upsertItem(balanceSheet(), m, k, v); return m }

// AddVec applies Add for each entry in list order.
func (m BsMap) AddVec(entries []Entry[BsItem]) BsMap {
	for _, e := range entries {
		m.Add(e.Item, e.Value)
	}
	return m
}

// UpsertVec applies Upsert for each entry in list order; later entries win.
func (m BsMap) UpsertVec(entries []Entry[BsItem]) BsMap {
	for _, e := range entries {
		m.Upsert(e.Item, e.Value)
	}
	return m
}

// CalcElements derives all calculated items in place and returns the map.
func (m BsMap) CalcElements() BsMap { calcElements(balanceSheet(), m); return m }

// RemoveCalcClean strips calculated items and immaterial entries in place.
func (m BsMap) RemoveCalcClean() BsMap { removeCalcClean(balanceSheet(), m); return m }

// Clean removes immaterial entries in place.
func (m BsMap) Clean() BsMap { clean(m); return m }

// CommonSize returns a new map with every value expressed as a fraction of Assets.
func (m BsMap) CommonSize() BsMap { return commonSize(balanceSheet(), m) }

// Clone returns a shallow copy of the map.
func (m BsMap) Clone() BsMap { return maps.Clone(m) }

// Value returns the amount recorded for the item, or 0 if absent.
func (m PlMap) Value(k PlItem) float64 { return m[k] }

// Add accumulates v onto the item. Panics if the item is calculated.
func (m PlMap) Add(k PlItem, v float64) PlMap { addItem(profitLoss(), m, k, v); return m }

// Upsert replaces the item's value with v. Panics if the item is calculated.
func (m PlMap) Upsert(k PlItem, v float64) PlMap { upsertItem(profitLoss(), m, k, v); return m }

// AddVec applies Add for each entry in list order.
func (m PlMap) AddVec(entries []Entry[PlItem]) PlMap {
	for _, e := range entries {
		m.Add(e.Item, e.Value)
	}
	return m
}

// UpsertVec applies Upsert for each entry in list order; later entries win.
func (m PlMap) UpsertVec(entries []Entry[PlItem]) PlMap {
	for _, e := range entries {
		m.Upsert(e.Item, e.Value)
	}
	return m
}

// CalcElements derives all calculated items in place and returns the map.
func (m PlMap) CalcElements() PlMap { calcElements(profitLoss(), m); return m }

// RemoveCalcClean strips calculated items and immaterial entries in place.
func (m PlMap) RemoveCalcClean() PlMap { removeCalcClean(profitLoss(), m); return m }

// Clean removes immaterial entries in place.
func (m PlMap) Clean() PlMap { clean(m); return m }

// CommonSize returns a new map with every value expressed as a fraction of Revenue.
func (m PlMap) CommonSize() PlMap { return commonSize(profitLoss(), m) }

// Clone returns a shallow copy of the map.
func (m PlMap) Clone() PlMap { return maps.Clone(m) }

// Value returns the amount recorded for the item, or 0 if absent.
func (m CfMap) Value(k CfItem) float64 { return m[k] }

// Add accumulates v onto the item. Panics if the item is calculated.
func (m CfMap) Add(k CfItem, v float64) CfMap { addItem(cashFlow(), m, k, v); return m }

// Upsert replaces the item's value with v. Panics if the item is calculated.
func (m CfMap) Upsert(k CfItem, v float64) CfMap { upsertItem(cashFlow(), m, k, v); return m }

// AddVec applies Add for each entry in list order.
func (m CfMap) AddVec(entries []Entry[CfItem]) CfMap {
	for _, e := range entries {
		m.Add(e.Item, e.Value)
	}
	return m
}

// UpsertVec applies Upsert for each entry in list order; later entries win.
func (m CfMap) UpsertVec(entries []Entry[CfItem]) CfMap {
	for _, e := range entries {
		m.Upsert(e.Item, e.Value)
	}
	return m
}

// CalcElements derives all calculated items in place and returns the map.
func (m CfMap) CalcElements() CfMap { calcElements(cashFlow(), m); return m }

// RemoveCalcClean strips calculated items and immaterial entries in place.
func (m CfMap) RemoveCalcClean() CfMap { removeCalcClean(cashFlow(), m); return m }

// Clean removes immaterial entries in place.
func (m CfMap) Clean() CfMap { clean(m); return m }

// CommonSize returns a new map with every value expressed as a fraction of NetCashFlow.
func (m CfMap) CommonSize() CfMap { return commonSize(cashFlow(), m) }

// Clone returns a shallow copy of the map.
func (m CfMap) Clone() CfMap { return maps.Clone(m) }

// Value returns the metric recorded under the name, or 0 if absent.
func (m OthersMap) Value(name string) float64 { return m[name] }

// Clone returns a shallow copy of the map.
func (m OthersMap) Clone() OthersMap { return maps.Clone(m) }
