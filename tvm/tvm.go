package tvm

import (
	"errors"
	"math"

	"github.com/finstat/finstat/date"
)

// DiscountFactorAnnual returns the one-period discount factor 1/(1+r).
func DiscountFactorAnnual(r float64) float64 { return 1 / (1 + r) }

// DiscountFactor returns the n-period discount factor 1/(1+r)^n.
func DiscountFactor(r, n float64) float64 { return 1 / math.Pow(1+r, n) }

// XDiscountFactor returns the discount factor over a calendar period at an
// annual rate r.
func XDiscountFactor(r float64, period date.Range) float64 {
	return 1 / math.Pow(1+r, Frac(period))
}

// ForwardDiscountFactor returns the discount factor between t0 and t1 implied
// by the spot rates r0 to t0 and r1 to t1.
func ForwardDiscountFactor(r0, t0, r1, t1 float64) float64 {
	return DiscountFactor(r1, t1) / DiscountFactor(r0, t0)
}

// PV returns the present value of a future cash flow fv after n periods at
// effective rate r.
func PV(r, n, fv float64) float64 { return fv / math.Pow(1+r, n) }

// XPV returns the present value of fv received at the end of a calendar
// period, at annual effective rate r.
func XPV(r float64, period date.Range, fv float64) float64 {
	return fv / math.Pow(1+r, Frac(period))
}

// PVM returns the present value at nominal rate r compounded m times per
// period.
func PVM(r, n, m, fv float64) float64 { return PV(r/m, n*m, fv) }

// PVC returns the present value under continuous compounding.
func PVC(r, n, fv float64) float64 { return fv / math.Exp(r*n) }

// FV returns the future value of pv after n periods at effective rate r.
func FV(r, n, pv float64) float64 { return pv * math.Pow(1+r, n) }

// XFV returns the future value of pv at the end of a calendar period, at
// annual effective rate r.
func XFV(r float64, period date.Range, pv float64) float64 {
	return pv * math.Pow(1+r, Frac(period))
}

// FVM returns the future value at nominal rate r compounded m times per
// period.
func FVM(r, n, m, pv float64) float64 { return FV(r/m, n*m, pv) }

// FVC returns the future value under continuous compounding.
func FVC(r, n, pv float64) float64 { return pv * math.Exp(r*n) }

// PVAnnuity returns the present value of an annuity paying pmt m times per
// period for n periods at rate r, plus a final value fv. Signs follow the
// cash flow convention: a positive payment stream prices to a negative
// present value.
func PVAnnuity(r, n, m, pmt, fv float64) float64 {
	rn := math.Pow(1+r/m, n*m)
	return -pmt/(r/m)*(1-1/rn) - fv/rn
}

// Pmt returns the periodic payment that amortizes pv to fv over n periods
// with m payments per period at rate r.
func Pmt(r, n, m, pv, fv float64) float64 {
	rn := math.Pow(1+r/m, n*m)
	return -(pv + fv/rn) * (r / m) / (1 - 1/rn)
}

// NomToEff converts a nominal rate compounded m times per period to the
// effective rate.
func NomToEff(r, m float64) float64 { return math.Pow(1+r/m, m) - 1 }

// EffToNom converts an effective rate to the nominal rate compounded m times
// per period.
func EffToNom(r, m float64) float64 { return (math.Pow(1+r, 1/m) - 1) * m }

// ExpToEff converts a continuously compounded rate to the effective rate.
func ExpToEff(r float64) float64 { return math.Exp(r) - 1 }

// EffToExp converts an effective rate to the continuously compounded rate.
func EffToExp(r float64) float64 { return math.Log(1 + r) }

// NomToExp converts a nominal rate compounded m times per period to the
// continuously compounded rate.
func NomToExp(r, m float64) float64 { return EffToExp(NomToEff(r, m)) }

// ExpToNom converts a continuously compounded rate to the nominal rate
// compounded m times per period.
func ExpToNom(r, m float64) float64 { return EffToNom(ExpToEff(r), m) }

func isZero(x float64) bool { return math.Abs(x) < 1e-8 }

// npvAtZero discounts the flows to time zero. times and flows run in
// parallel and must have the same length.
func npvAtZero(r float64, times, flows []float64) float64 {
	v := 0.0
	for i, t := range times {
		v += flows[i] / math.Pow(1+r, t)
	}
	return v
}

// NPV returns the net present value of the flows at time t0, each flow
// occurring at its time given in periods.
func NPV(r float64, times []float64, t0 float64, flows []float64) float64 {
	return npvAtZero(r, times, flows) * math.Pow(1+r, t0)
}

// XNPV returns the net present value at date at of flows occurring on the
// given dates, at annual rate r.
func XNPV(r float64, dates []date.Date, at date.Date, flows []float64) float64 {
	times := make([]float64, len(dates))
	for i, d := range dates {
		times[i] = YearFrac(at, d, US30360)
	}
	return npvAtZero(r, times, flows)
}

// ErrNoConvergence is returned when the root finder exhausts its iterations
// or lands on a flat slope.
var ErrNoConvergence = errors.New("no convergence")

// NewtRaph finds a root of f by the Newton-Raphson method with a numerical
// derivative, starting from x. It gives up after 100 iterations or on a zero
// derivative.
func NewtRaph(f func(float64) float64, x, xtol float64) (float64, error) {
	dx := xtol / 10
	for i := 0; i < 100; i++ {
		fx := f(x)
		df := (f(x+dx) - fx) / dx
		if isZero(df) {
			return 0, ErrNoConvergence
		}
		delta := fx / df
		x -= delta
		if isZero(delta) {
			return x, nil
		}
	}
	return 0, ErrNoConvergence
}

// IRR returns the rate at which the flows, at their times given in periods,
// discount to zero.
func IRR(times, flows []float64) (float64, error) {
	return NewtRaph(func(r float64) float64 { return npvAtZero(r, times, flows) }, 0.1, 1e-6)
}

// XIRR returns the annual rate at which dated flows discount to zero, times
// measured from the first date.
func XIRR(dates []date.Date, flows []float64) (float64, error) {
	times := make([]float64, len(dates))
	for i, d := range dates {
		times[i] = YearFrac(dates[0], d, US30360)
	}
	return IRR(times, flows)
}
