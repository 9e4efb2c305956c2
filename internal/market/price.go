package market

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var priceRun = regexp.MustCompile(`[0-9,]+(\.[0-9]+)?`)

// ExtractPrice coerces a heterogeneous provider price to a numeric value.
// Numbers pass through unchanged; anything else is stringified and the first
// digit run (thousands separators allowed) is parsed. Returns 0 when no
// price can be extracted.
func ExtractPrice(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	match := priceRun.FindString(fmt.Sprintf("%v", v))
	if match == "" {
		return 0
	}
	price, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0
	}
	return price
}
