package finstat

import (
	"fmt"
	"sync"
)

// Polarity captures the debit/credit behaviour of an entered Balance Sheet
// item: whether a debit increases it (asset-like) or decreases it
// (liability- and equity-like), and whether it is a normal entry or a contra
// entry netting against its parent aggregate.
type Polarity int

const (
	AssetEntry Polarity = iota
	AssetContra
	LiabilityEntry
	LiabilityContra
	EquityEntry
	EquityContra
)

var polarityNames = [...]string{
	AssetEntry:      "AssetEntry",
	AssetContra:     "AssetContra",
	LiabilityEntry:  "LiabilityEntry",
	LiabilityContra: "LiabilityContra",
	EquityEntry:     "EquityEntry",
	EquityContra:    "EquityContra",
}

func (p Polarity) String() string {
	if p < 0 || int(p) >= len(polarityNames) {
		return fmt.Sprintf("Polarity(%d)", int(p))
	}
	return polarityNames[p]
}

// debitSign returns the sign a debit posting applies to an item of this
// polarity. A debit increases assets and contra liability/equity items, and
// decreases everything else.
func (p Polarity) debitSign() float64 {
	switch p {
	case AssetEntry, LiabilityContra, EquityContra:
		return 1
	default:
		return -1
	}
}

// debitCredit classifies every entered Balance Sheet item, once, by walking
// the roll-up rules down from the three statement roots. Positive
// contributors inherit the parent polarity pair; negative contributors get
// the pair swapped, so a contra asset such as AccumulatedDepreciation ends up
// with the credit-increase behaviour of a liability. An item reachable
// through both an entry and a contra path keeps the last assignment; the
// walk order is deterministic, so that outcome is stable.
var debitCredit = sync.OnceValue(func() map[BsItem]Polarity {
	rules := make(map[BsItem]Rule[BsItem])
	for _, r := range balanceSheet().rules {
		rules[r.Target] = r
	}

	out := make(map[BsItem]Polarity)
	var assign func(r Rule[BsItem], entry, contra Polarity)
	assign = func(r Rule[BsItem], entry, contra Polarity) {
		for _, p := range r.Positive {
			if rr, ok := rules[p]; ok {
				assign(rr, entry, contra)
			} else {
				out[p] = entry
			}
		}
		for _, n := range r.Negative {
			if rr, ok := rules[n]; ok {
				assign(rr, contra, entry)
			} else {
				out[n] = contra
			}
		}
	}
	assign(rules[Assets], AssetEntry, AssetContra)
	assign(rules[Liabilities], LiabilityEntry, LiabilityContra)
	assign(rules[Equity], EquityEntry, EquityContra)
	return out
})

// ItemPolarity returns the polarity of an entered Balance Sheet item.
// Calculated items have no polarity.
func ItemPolarity(item BsItem) (Polarity, bool) {
	p, ok := debitCredit()[item]
	return p, ok
}

// Debit posts a debit of the given amount to an entered item, applying the
// item's sign convention. Panics when item is calculated: aggregates are
// never posted to.
func (m BsMap) Debit(item BsItem, amount float64) BsMap {
	p, ok := ItemPolarity(item)
	if !ok {
		panic(fmt.Sprintf("finstat: cannot post to %s: no debit/credit polarity", item))
	}
	return m.Add(item, p.debitSign()*amount)
}

// Credit posts a credit of the given amount to an entered item.
func (m BsMap) Credit(item BsItem, amount float64) BsMap {
	return m.Debit(item, -amount)
}

// Transact applies one balanced double-entry posting: a debit on debitItem
// and a credit of the same amount on creditItem.
func (m BsMap) Transact(debitItem, creditItem BsItem, amount float64) BsMap {
	m.Debit(debitItem, amount)
	m.Credit(creditItem, amount)
	return m
}
