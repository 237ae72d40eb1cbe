// Package tvm implements time value of money: discount factors, present and
// future values, annuities, rate conversions, NPV and IRR, together with the
// day count conventions that turn calendar dates into year fractions.
package tvm

import "github.com/finstat/finstat/date"

// DayCount selects a day count convention for year fractions.
type DayCount int

const (
	// US30360 is the US (NASD) 30/360 convention, the default here.
	US30360 DayCount = iota
	// EU30360 is the European 30/360 convention.
	EU30360
	// ActAct is Actual/Actual per the ISDA rule: actual days over the
	// actual length of each year crossed. This differs from the Excel
	// ACT/ACT basis.
	ActAct
	// Act360 is actual days over 360.
	Act360
	// Act365 is actual days over 365.
	Act365
)

// dateToFloat positions a date within its year, one year counting as 1.0.
func dateToFloat(d date.Date) float64 {
	return float64(d.Year()) + float64(d.YearDay())/float64(date.DaysInYear(d.Year()))
}

func dayCountFactor(y0 int, m0 int, d0 int, y1 int, m1 int, d1 int) float64 {
	return float64((y1-y0)*360+(m1-m0)*30+(d1-d0)) / 360.0
}

// YearFrac returns the signed fraction of a year from d0 to d1 under the
// given convention, negative when d0 is after d1. Excel's YEARFRAC returns
// the absolute difference instead.
func YearFrac(d0, d1 date.Date, basis DayCount) float64 {
	switch basis {
	case Act360:
		return float64(d1.Sub(d0)) / 360.0
	case Act365:
		return float64(d1.Sub(d0)) / 365.0
	case ActAct:
		return dateToFloat(d1) - dateToFloat(d0)
	case EU30360:
		lastday := func(d int) int {
			if d == 31 {
				return 30
			}
			return d
		}
		return dayCountFactor(d0.Year(), int(d0.Month()), lastday(d0.Day()),
			d1.Year(), int(d1.Month()), lastday(d1.Day()))
	default: // US30360
		y0, m0, dd0 := d0.Year(), int(d0.Month()), d0.Day()
		y1, m1, dd1 := d1.Year(), int(d1.Month()), d1.Day()
		lastFeb := func(d, m, y int) bool {
			if m != 2 {
				return false
			}
			if date.IsLeapYear(y) {
				return d == 29
			}
			return d == 28
		}
		if lastFeb(dd0, m0, y0) {
			if lastFeb(dd1, m1, y1) {
				dd1 = 30
			}
			dd0 = 30
		}
		if dd1 == 31 && dd0 >= 30 {
			dd1 = 30
		}
		if dd0 == 31 {
			dd0 = 30
		}
		return dayCountFactor(y0, m0, dd0, y1, m1, dd1)
	}
}

// Frac returns the year fraction spanned by a period under the default
// US 30/360 convention.
func Frac(period date.Range) float64 {
	return YearFrac(period.From, period.To, US30360)
}
