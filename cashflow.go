package finstat

import "math"

// TaxRates holds the tax regime used for cash flow derivation and tax
// estimation. Corporate applies to pre-tax profit; GrossProfit is levied on
// operating earnings (Pbitda) in the tax estimate, and on gross profit in the
// interest-shield cap; Revenue carries the turnover-based minimum. Rates are
// fractions, not percentages.
type TaxRates struct {
	Corporate   float64
	GrossProfit float64
	Revenue     float64
}

// regular returns the regular-regime tax on a derived Profit & Loss map.
func (r TaxRates) regular(pl PlMap) float64 {
	return r.Corporate*pl[Pbt] + r.GrossProfit*pl[Pbitda]
}

// minimum returns the alternative-minimum tax floor.
func (r TaxRates) minimum(pl PlMap) float64 {
	return r.Revenue * pl[Revenue]
}

// Tax returns the estimated current tax charge for one period: the greater of
// the regular tax and the revenue-based minimum, never negative.
func (r TaxRates) Tax(pl PlMap) float64 {
	return math.Max(0, math.Max(r.regular(pl), r.minimum(pl)))
}

// shield returns the part of the interest charge recovered through taxes.
// The recovery is capped by the tax actually payable: a loss-making entity
// on the minimum regime gets no relief from deducting interest. The tax base
// is restated before interest and before the deferred portion already
// recognised in the Profit & Loss.
func (r TaxRates) shield(pl PlMap) float64 {
	interest := pl[InterestExpense] + pl[CostDebt]
	if r.Corporate <= 0 || interest <= 0 {
		return 0
	}
	base := pl[Pbt] + interest - pl[TaxesDeferred]/r.Corporate
	payable := r.Corporate*base + r.GrossProfit*pl[GrossProfit] - r.Revenue*pl[Revenue]
	return math.Min(r.Corporate*interest, math.Max(0, payable))
}

func setMaterial(cf CfMap, k CfItem, v float64) {
	if math.Abs(v) > Materiality {
		cf[k] = v
	} else {
		delete(cf, k)
	}
}

// CalcCashFlow derives an indirect-method Cash Flow statement for the period
// between two Balance Sheet snapshots. Profit & Loss items map directly;
// Balance Sheet items map as their movement over the period, signed so that a
// growing asset consumes cash and a growing liability releases it. The tax
// shield on interest reclassifies the recovered part of the interest charge
// from financing back to operations, leaving NetCashFlow unchanged.
//
// The Profit & Loss map must already be derived (CalcElements). Only material
// values are inserted, and the Cash Flow aggregates are not rolled up: run
// CalcElements on the result.
func CalcCashFlow(begin, end BsMap, pl PlMap, rates TaxRates) CfMap {
	cf := make(CfMap)
	for _, r := range cashFlowFromPl() {
		v := 0.0
		for _, p := range r.Positive {
			v += pl[p]
		}
		for _, n := range r.Negative {
			v -= pl[n]
		}
		setMaterial(cf, r.Target, v)
	}
	for _, r := range cashFlowFromBs() {
		v := 0.0
		for _, p := range r.Positive {
			v += end[p] - begin[p]
		}
		for _, n := range r.Negative {
			v -= end[n] - begin[n]
		}
		setMaterial(cf, r.Target, v)
	}
	if s := rates.shield(pl); s > Materiality {
		setMaterial(cf, InterestFin, cf[InterestFin]+s)
		setMaterial(cf, OtherCfOperations, cf[OtherCfOperations]-s)
	}
	return cf
}
