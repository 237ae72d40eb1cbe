package fixedincome

import (
	"math"
	"testing"
)

func approx(x, y float64) bool {
	mx := math.Max(math.Abs(x), math.Abs(y))
	return mx < 1e-8 || math.Abs(x-y)/mx < 1e-6
}

func TestCouponBond(t *testing.T) {
	cb := CouponBond{Par: 100, Coupon: 0.05, Freq: 2, Life: 3}
	if got := cb.Price(0.03); !approx(got, 105.6971871654752) {
		t.Errorf("Price(0.03) = %v", got)
	}
	rc := NominalCurve([]float64{0.0016, 0.0021, 0.0027, 0.0033, 0.0037, 0.0041}, 2)
	if got := cb.PriceRateCurve(rc); !approx(got, 113.69147941993403) {
		t.Errorf("PriceRateCurve = %v", got)
	}
	ytm, err := cb.YTM(113.69147941993403)
	if err != nil || !approx(ytm, 0.004038639185261329) {
		t.Errorf("YTM = %v, %v", ytm, err)
	}
	ytm, err = cb.YTM(105.6971871654752)
	if err != nil || !approx(ytm, 0.03) {
		t.Errorf("YTM = %v, %v", ytm, err)
	}

	flows := cb.Cashflow()
	if len(flows) != 6 || flows[0] != 2.5 || flows[5] != 102.5 {
		t.Errorf("Cashflow = %v", flows)
	}

	cb = CouponBond{Par: 100, Coupon: 0.05, Freq: 2, Life: 9}
	if got := cb.AccruedInterest(88.0 / 362.0); !approx(got, 1.2154696132596685) {
		t.Errorf("AccruedInterest = %v", got)
	}
	if got := cb.PVFull(0.048, 88.0/362.0); !approx(got, 102.62432259347733) {
		t.Errorf("PVFull = %v", got)
	}
	if got := cb.PVFlat(0.048, 88.0/362.0); !approx(got, 101.40885298021766) {
		t.Errorf("PVFlat = %v", got)
	}
}

func TestFloatingRateNote(t *testing.T) {
	n := FloatingRateNote{Par: 100, QuotedMargin: 0.005, Freq: 2, Life: 2}
	if got := n.Price(0.0125, 0.004); !approx(got, 100.19594209266003) {
		t.Errorf("Price = %v", got)
	}
	n = FloatingRateNote{Par: 100, QuotedMargin: 0.0075, Freq: 4, Life: 5}
	dm, err := n.DiscountMargin(95.50, 0.011)
	if err != nil || !approx(dm, 0.01718056179887085) {
		t.Errorf("DiscountMargin = %v, %v", dm, err)
	}
}

func TestRateCurves(t *testing.T) {
	rc := NominalCurve([]float64{0.05, 0.06, 0.07, 0.08}, 2)
	if got := rc.RateEstim(1.5); !approx(got, 0.07) {
		t.Errorf("RateEstim(1.5) = %v", got)
	}
	if got := rc.RateEstim(1.2); !approx(got, 0.064) {
		t.Errorf("RateEstim(1.2) = %v", got)
	}

	et := NominalCurve([]float64{0.0016, 0.0021, 0.0027, 0.0033, 0.0037, 0.0041}, 2)
	er := et.ToEffective()
	for i, want := range []float64{0.00160064, 0.0021011025, 0.0027018225, 0.0033027225, 0.0037034225, 0.0041042025} {
		if !approx(er.Rates[i], want) {
			t.Errorf("ToEffective rate[%d] = %v want %v", i, er.Rates[i], want)
		}
	}
	en := er.ToNominal()
	for i, want := range et.Rates {
		if !approx(en.Rates[i], want) {
			t.Errorf("round trip rate[%d] = %v want %v", i, en.Rates[i], want)
		}
	}

	// all conversion paths to nominal agree
	rz := et.ToExponential().ToEffective().ToNominal()
	ry := et.ToEffective().ToExponential().ToNominal()
	rw := et.ToExponential().ToNominal()
	for i := range et.Rates {
		if !approx(rz.Rates[i], rw.Rates[i]) || !approx(ry.Rates[i], rw.Rates[i]) {
			t.Errorf("conversion paths disagree at %d: %v %v %v", i, rz.Rates[i], ry.Rates[i], rw.Rates[i])
		}
	}
}

func TestParSpotRates(t *testing.T) {
	par := ParRates{Curve: NominalCurve([]float64{0.02, 0.024, 0.0276, 0.03084, 0.033756, 0.03638}, 2)}
	spot := par.ToSpot()
	if !approx(spot.Curve.Rates[0], 0.02) {
		t.Errorf("spot[0] = %v", spot.Curve.Rates[0])
	}
	if got := spot.Curve.Rates[3]; !approx(got, 0.030973763781325214) {
		t.Errorf("spot[3] = %v", got)
	}
	if got := spot.Curve.Rates[4]; !approx(got, 0.03397441792873934) {
		t.Errorf("spot[4] = %v", got)
	}
	if got := spot.Curve.Rates[5]; !approx(got, 0.036700426487687565) {
		t.Errorf("spot[5] = %v", got)
	}

	back := spot.ToPar()
	for i, want := range par.Curve.Rates {
		if !approx(back.Curve.Rates[i], want) {
			t.Errorf("par round trip [%d] = %v want %v", i, back.Curve.Rates[i], want)
		}
	}
}

func TestMoneyMarket(t *testing.T) {
	if got := TBillR(150, 98_000, 100_000); !approx(got, 0.048) {
		t.Errorf("TBillR = %v", got)
	}
	if got := TBillD(0.048, 150, 100_000); !approx(got, 2_000) {
		t.Errorf("TBillD = %v", got)
	}
	if got := HoldingPeriodYield(98, 95, 5); !approx(got, 0.020408163265306145) {
		t.Errorf("HoldingPeriodYield = %v", got)
	}
	if got := EffAnnualYield(150, 98, 95, 5); !approx(got, 0.05038831660532006) {
		t.Errorf("EffAnnualYield = %v", got)
	}
	if got := MoneyMktYield(150, 98, 95, 5); !approx(got, 0.04897959183673475) {
		t.Errorf("MoneyMktYield = %v", got)
	}
	if got := TWRR([]float64{4, 6, 5.775, 6.72, 5.508}, []float64{1, -0.5, 0.225, -0.6}); !approx(got, 0.06159232319186159) {
		t.Errorf("TWRR = %v", got)
	}
	if got := TWRRN(1, []float64{100, 112, 142.64}, []float64{0, 20}); !approx(got, 0.21027878787878795) {
		t.Errorf("TWRRN = %v", got)
	}
}
