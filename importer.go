package finstat

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// extract evaluates one JSONPath expression over a decoded JSON document and
// coerces the result to a float. jsonpath sometimes wraps a single answer in
// a list; the first element is kept in that case. Provider APIs occasionally
// ship numbers as strings, so those are parsed too.
func extract(doc any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return 0, fmt.Errorf("evaluating %q: empty result", path)
		}
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		s := strings.ReplaceAll(strings.ReplaceAll(v, ",", "."), " ", "")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("evaluating %q: not a number %q: %w", path, v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("evaluating %q: not a number: %v", path, jval)
	}
}

// ExtractBalanceSheet pulls entered Balance Sheet values out of a decoded
// JSON document (an API response, a parsed filing) using one JSONPath
// expression per line item. Items are processed in taxonomy order, so errors
// are deterministic. Mapping a calculated item panics, as any direct write
// would.
func ExtractBalanceSheet(doc any, paths map[BsItem]string) (BsMap, error) {
	m := make(BsMap, len(paths))
	for _, item := range sortedKeys(paths) {
		v, err := extract(doc, paths[item])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", item, err)
		}
		m.Upsert(item, v)
	}
	return m, nil
}

// ExtractProfitLoss pulls entered Profit & Loss values out of a decoded JSON
// document, one JSONPath expression per line item.
func ExtractProfitLoss(doc any, paths map[PlItem]string) (PlMap, error) {
	m := make(PlMap, len(paths))
	for _, item := range sortedKeys(paths) {
		v, err := extract(doc, paths[item])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", item, err)
		}
		m.Upsert(item, v)
	}
	return m, nil
}

func sortedKeys[K Item](m map[K]string) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
