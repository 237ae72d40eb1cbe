package finstat

import "math"

// Metric names produced by CalcRatios.
const (
	CurrentRatio   = "CurrentRatio"
	GrossMargin    = "GrossMargin"
	NetMargin      = "NetMargin"
	ReturnOnAssets = "ReturnOnAssets"
	ReturnOnEquity = "ReturnOnEquity"
)

func ratio(num, den float64) (float64, bool) {
	if math.Abs(den) < Materiality {
		return 0, false
	}
	return num / den, true
}

// CalcRatios computes the standard per-period metrics into the Others map:
// margins from the Profit & Loss, liquidity and returns from the closing
// Balance Sheet. A ratio with an immaterial denominator is left out rather
// than recorded as zero or infinity.
func (a *Accounts) CalcRatios() {
	for period, pl := range a.ProfitLoss {
		p := pl.Clone().CalcElements()
		put := func(name string, num, den float64) {
			if v, ok := ratio(num, den); ok {
				a.PutOther(period, name, v)
			}
		}
		put(GrossMargin, p[GrossProfit], p[Revenue])
		put(NetMargin, p[NetIncome], p[Revenue])
		if end, ok := a.BalanceSheet[period.To]; ok {
			b := end.Clone().CalcElements()
			put(CurrentRatio, b[CurrentAssets], b[CurrentLiabilities])
			put(ReturnOnAssets, p[NetIncome], b[Assets])
			put(ReturnOnEquity, p[NetIncome], b[Equity])
		}
	}
}
