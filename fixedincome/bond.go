// Package fixedincome prices plain fixed income instruments: coupon bonds,
// floating rate notes, rate curves and the short-term money market yields.
package fixedincome

import (
	"github.com/finstat/finstat/tvm"
)

// CouponBond is a bullet bond paying a fixed coupon.
//
// Par is the face value, Coupon the coupon rate per period, Freq the number
// of coupon payments per period and Life the life of the bond in periods.
type CouponBond struct {
	Par    float64
	Coupon float64
	Freq   float64
	Life   float64
}

// Price returns the bond price at a nominal discount rate.
func (b CouponBond) Price(rate float64) float64 {
	return tvm.PVAnnuity(rate, b.Life, b.Freq, -b.Coupon/b.Freq*b.Par, 0) +
		tvm.PVM(rate, b.Life, b.Freq, b.Par)
}

// YTM returns the yield to maturity implied by a price.
func (b CouponBond) YTM(price float64) (float64, error) {
	return tvm.NewtRaph(func(r float64) float64 { return b.Price(r) - price }, 0.05, 1e-6)
}

// Cashflow returns the bond's payment schedule, one amount per coupon date,
// the par value folded into the last payment.
func (b CouponBond) Cashflow() []float64 {
	c := b.Par * b.Coupon / b.Freq
	flows := make([]float64, int(b.Freq*b.Life))
	for i := range flows {
		flows[i] = c
	}
	flows[len(flows)-1] += b.Par
	return flows
}

// PriceRateCurve prices the bond by discounting each payment on the curve.
func (b CouponBond) PriceRateCurve(rc RateCurve) float64 {
	v := 0.0
	for i, c := range b.Cashflow() {
		v += rc.PV(c, float64(i+1)/b.Freq)
	}
	return v
}

// AccruedInterest returns the interest accrued t periods into the coupon
// cycle. For 26 days of a full-year period, t = 26/360.
func (b CouponBond) AccruedInterest(t float64) float64 {
	return t * b.Coupon * b.Par
}

// PVFull returns the dirty price when the purchase is t periods into the
// next coupon cycle.
func (b CouponBond) PVFull(rate, t float64) float64 {
	return b.Price(rate) * tvm.FV(rate/b.Freq, t*b.Freq, 1)
}

// PVFlat returns the clean price, the dirty price less accrued interest.
func (b CouponBond) PVFlat(rate, t float64) float64 {
	return b.PVFull(rate, t) - b.AccruedInterest(t)
}

// FloatingRateNote is a note paying a quoted margin over an index rate.
type FloatingRateNote struct {
	Par          float64
	QuotedMargin float64
	Freq         float64
	Life         float64
}

// Price returns the note price for an index rate and a discount margin.
func (n FloatingRateNote) Price(indexRate, discountMargin float64) float64 {
	r := indexRate + discountMargin
	return tvm.PVAnnuity(r, n.Life, n.Freq, -(n.QuotedMargin+indexRate)*n.Par/n.Freq, 0) +
		tvm.PVM(r, n.Life, n.Freq, n.Par)
}

// DiscountMargin returns the margin over the index rate implied by a price.
func (n FloatingRateNote) DiscountMargin(price, indexRate float64) (float64, error) {
	return tvm.NewtRaph(func(x float64) float64 { return n.Price(indexRate, x) - price }, 0.005, 1e-6)
}
