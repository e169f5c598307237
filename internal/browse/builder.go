package browse

import (
	"math"
	"strconv"
	"strings"
)

// BuildFilterString renders f as a search index filter expression, e.g.
// `class:"Sneakers" AND (gender:"men" OR gender:"women") AND is_instant_available=1`.
// Empty values contribute nothing.
func BuildFilterString(f FilterState) string {
	tokens := make([]string, 0, len(f.keys))
	for _, key := range f.keys {
		v := f.values[key]
		if v.IsEmpty() {
			continue
		}
		switch v.kind {
		case KindList:
			if len(v.list) == 1 {
				tokens = append(tokens, keyValueToken(key, v.list[0]))
				continue
			}
			parts := make([]string, len(v.list))
			for i, item := range v.list {
				parts[i] = keyValueToken(key, item)
			}
			tokens = append(tokens, "("+strings.Join(parts, " OR ")+")")
		case KindBool:
			tokens = append(tokens, key+"=1")
		default:
			tokens = append(tokens, keyValueToken(key, v.str))
		}
	}
	return strings.Join(tokens, " AND ")
}

// keyValueToken renders one equality. The price key already carries its own range syntax.
func keyValueToken(key, value string) string {
	if key == KeyLowestListingPrice {
		return key + value
	}
	return key + `:"` + value + `"`
}

// BuildRangeFilterString renders a numeric range suffix for the price key: " > 100",
// " < 500" or ":100 TO 500". Zero, NaN and infinite bounds count as absent; when
// both are absent the result is empty.
func BuildRangeFilterString(from, to float64) string {
	lower, hasLower := bound(math.Floor(from))
	upper, hasUpper := bound(math.Ceil(to))

	switch {
	case hasLower && hasUpper:
		return ":" + lower + " TO " + upper
	case hasLower:
		return " > " + lower
	case hasUpper:
		return " < " + upper
	}
	return ""
}

func bound(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == 0 {
		return "", false
	}
	return strconv.FormatFloat(v, 'f', -1, 64), true
}
