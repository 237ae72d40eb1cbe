package fixedincome

import (
	"fmt"
	"math"

	"github.com/finstat/finstat/tvm"
)

// Compounding selects how the rates of a curve are quoted.
type Compounding int

const (
	Nominal Compounding = iota
	Effective
	Exponential
)

// RateCurve is a term structure given as rates at regular intervals: Rates[i]
// applies at time (i+1)/Freq periods.
type RateCurve struct {
	Compounding Compounding
	Rates       []float64
	Freq        float64
}

// NominalCurve returns a curve of nominal rates compounded Freq times per
// period.
func NominalCurve(rates []float64, freq float64) RateCurve {
	return RateCurve{Compounding: Nominal, Rates: rates, Freq: freq}
}

// RateEstim estimates the rate at time y by linear interpolation between the
// curve points.
func (rc RateCurve) RateEstim(y float64) float64 {
	pt := y * rc.Freq
	fl := math.Floor(pt)
	i := int(fl) - 1
	pf := pt - fl
	if pf < 1e-9 {
		return rc.Rates[i]
	}
	return rc.Rates[i]*(1-pf) + rc.Rates[i+1]*pf
}

// PV discounts the cash flow c occurring at time tim on the curve.
func (rc RateCurve) PV(c, tim float64) float64 {
	rate := rc.RateEstim(tim)
	switch rc.Compounding {
	case Effective:
		return tvm.PV(rate, tim, c)
	case Exponential:
		return tvm.PVC(rate, tim, c)
	default:
		return tvm.PVM(rate, tim, rc.Freq, c)
	}
}

func (rc RateCurve) convert(to Compounding, f func(float64) float64) RateCurve {
	rates := make([]float64, len(rc.Rates))
	for i, r := range rc.Rates {
		rates[i] = f(r)
	}
	return RateCurve{Compounding: to, Rates: rates, Freq: rc.Freq}
}

// ToNominal re-quotes the curve in nominal rates.
func (rc RateCurve) ToNominal() RateCurve {
	switch rc.Compounding {
	case Effective:
		return rc.convert(Nominal, func(r float64) float64 { return tvm.EffToNom(r, rc.Freq) })
	case Exponential:
		return rc.convert(Nominal, func(r float64) float64 { return tvm.ExpToNom(r, rc.Freq) })
	default:
		return rc
	}
}

// ToEffective re-quotes the curve in effective rates.
func (rc RateCurve) ToEffective() RateCurve {
	switch rc.Compounding {
	case Nominal:
		return rc.convert(Effective, func(r float64) float64 { return tvm.NomToEff(r, rc.Freq) })
	case Exponential:
		return rc.convert(Effective, tvm.ExpToEff)
	default:
		return rc
	}
}

// ToExponential re-quotes the curve in continuously compounded rates.
func (rc RateCurve) ToExponential() RateCurve {
	switch rc.Compounding {
	case Nominal:
		return rc.convert(Exponential, func(r float64) float64 { return tvm.NomToExp(r, rc.Freq) })
	case Effective:
		return rc.convert(Exponential, tvm.EffToExp)
	default:
		return rc
	}
}

// mustNominal guards the bootstrapping operations, which are defined on
// nominal curves only.
func mustNominal(rc RateCurve, op string) {
	if rc.Compounding != Nominal {
		panic(fmt.Sprintf("fixedincome: %s requires a nominal rate curve", op))
	}
}

// SpotRates is a curve of zero-coupon rates.
type SpotRates struct{ Curve RateCurve }

// ParRates is a curve of par bond yields.
type ParRates struct{ Curve RateCurve }

// RateEstim estimates the spot rate at time y.
func (s SpotRates) RateEstim(y float64) float64 { return s.Curve.RateEstim(y) }

// RateEstim estimates the par rate at time y.
func (p ParRates) RateEstim(y float64) float64 { return p.Curve.RateEstim(y) }

// ToSpot bootstraps the zero-coupon curve off the par curve.
func (p ParRates) ToSpot() SpotRates {
	mustNominal(p.Curve, "ToSpot")
	rt, fq := p.Curve.Rates, p.Curve.Freq
	y := make([]float64, len(rt))
	y[0] = rt[0]
	for i := 1; i < len(rt); i++ {
		xm := rt[i] / fq
		sm := 0.0
		for k := 0; k < i; k++ {
			sm += xm / math.Pow(1+y[k]/fq, float64(k+1))
		}
		y[i] = (math.Pow((1+xm)/(1-sm), 1/float64(i+1)) - 1) * fq
	}
	return SpotRates{Curve: NominalCurve(y, fq)}
}

// ToPar recovers the par yield curve from the spot curve.
func (s SpotRates) ToPar() ParRates {
	mustNominal(s.Curve, "ToPar")
	rt, fq := s.Curve.Rates, s.Curve.Freq
	rates := make([]float64, len(rt))
	for i := range rt {
		sm := 0.0
		for k := 0; k <= i; k++ {
			sm += 1 / math.Pow(1+rt[k]/fq, float64(k+1))
		}
		rates[i] = fq * (1 - 1/math.Pow(1+rt[i]/fq, float64(i+1))) / sm
	}
	return ParRates{Curve: NominalCurve(rates, fq)}
}

// ForwardRate estimates the growth factor over a forward period of the given
// tenor implied by the spot curve.
func (s SpotRates) ForwardRate(forwardPeriod, tenor float64) float64 {
	mustNominal(s.Curve, "ForwardRate")
	f := s.Curve.Freq
	return math.Pow(1+s.Curve.RateEstim(forwardPeriod+tenor)/f, tenor*f) /
		math.Pow(1+s.Curve.RateEstim(forwardPeriod)/f, forwardPeriod*f)
}
