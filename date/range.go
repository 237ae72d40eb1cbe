package date

import (
	"fmt"
	"strings"
)

// rangeSeparator splits the two dates in the textual form of a Range.
const rangeSeparator = ".."

// quarterlyMaxDays is the longest span still classified as a quarterly
// period. Anything longer is annual. This is a heuristic on the span length,
// not a calendar-aware fiscal-year computation.
const quarterlyMaxDays = 120

// Range represents a reporting period as a pair of dates, boundaries included.
// A Range is comparable and can be used as a map key.
type Range struct{ From, To Date }

// NewRange creates a new range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Valid reports whether the range is chronologically ordered (From <= To).
func (r Range) Valid() bool { return !r.From.After(r.To) }

// Days returns the number of days spanned by the range.
func (r Range) Days() int { return r.To.Sub(r.From) }

// Annual reports whether the range spans more than a quarter.
func (r Range) Annual() bool { return r.Days() > quarterlyMaxDays }

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// String formats the range as "from..to".
func (r Range) String() string { return r.From.String() + rangeSeparator + r.To.String() }

// ParseRange parses a Range from its "from..to" textual form.
// The result is returned as parsed: a reversed pair is not swapped, so that
// callers can reject it as malformed input.
func ParseRange(str string) (Range, error) {
	from, to, ok := strings.Cut(str, rangeSeparator)
	if !ok {
		return Range{}, fmt.Errorf("invalid period %q: want %q separated dates", str, rangeSeparator)
	}
	f, err := Parse(strings.TrimSpace(from))
	if err != nil {
		return Range{}, fmt.Errorf("invalid period %q: %w", str, err)
	}
	t, err := Parse(strings.TrimSpace(to))
	if err != nil {
		return Range{}, fmt.Errorf("invalid period %q: %w", str, err)
	}
	return Range{From: f, To: t}, nil
}

// MustParseRange is like ParseRange but panics on error.
func MustParseRange(str string) Range {
	r, err := ParseRange(str)
	if err != nil {
		panic(err.Error())
	}
	return r
}

// Compare orders ranges chronologically by From, then by To.
func (r Range) Compare(x Range) int {
	if c := r.From.Compare(x.From); c != 0 {
		return c
	}
	return r.To.Compare(x.To)
}
