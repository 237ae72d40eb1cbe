package fixedincome

import "math"

// TBillR returns the discount rate of a T-bill bought at p0 with face value
// f and t days to maturity, on the 360-day convention.
func TBillR(t, p0, f float64) float64 {
	return (1 - p0/f) * 360 / t
}

// TBillD returns the dollar discount of a T-bill at discount rate r with
// face value f and t days to maturity.
func TBillD(r, t, f float64) float64 {
	return r * t * f / 360
}

// HoldingPeriodYield returns the total return of buying at p0 and receiving
// p1 plus the distribution d1.
func HoldingPeriodYield(p0, p1, d1 float64) float64 {
	return (p1+d1)/p0 - 1
}

// EffAnnualYield annualizes the holding period yield over t days on a
// 365-day year, with compounding.
func EffAnnualYield(t, p0, p1, d1 float64) float64 {
	return math.Pow((p1+d1)/p0, 365/t) - 1
}

// MoneyMktYield annualizes the holding period yield over t days on a 360-day
// year, without compounding.
func MoneyMktYield(t, p0, p1, d1 float64) float64 {
	return ((p1+d1)/p0 - 1) * 360 / t
}

// TWRRN returns the time-weighted rate of return over n periods, given the
// portfolio values bv at each observation and the inflow binf just after
// each observation.
func TWRRN(n float64, bv, binf []float64) float64 {
	r := 1.0
	for i := 0; i < len(bv)-1; i++ {
		r *= bv[i+1] / (bv[i] + binf[i])
	}
	return math.Pow(r, 1/n) - 1
}

// TWRR returns the time-weighted rate of return with one period per
// observation interval.
func TWRR(bv, binf []float64) float64 {
	return TWRRN(float64(len(bv)-1), bv, binf)
}
