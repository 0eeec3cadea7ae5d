package pricing

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"pricelens/internal/crawler"
	"pricelens/internal/model"
)

// Combine merges every sample into one sorted price list. Which marketplace a
// price came from is not kept.
func Combine(samples []crawler.Sample) []float64 {
	var combined []float64
	for _, s := range samples {
		for _, p := range s.Prices {
			if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
				continue
			}
			combined = append(combined, p)
		}
	}
	sort.Float64s(combined)
	return combined
}

// SplitBands cuts a sorted sample at len/2. The lower half is treated as used
// and the upper half as new. With a single price the used band is empty.
func SplitBands(sorted []float64) (used, fresh []float64) {
	mid := len(sorted) / 2
	return sorted[:mid], sorted[mid:]
}

// FormatRange renders a band as "$X.XX" when it has one distinct value and as
// "$min - $max" otherwise. An empty band is model.Unavailable.
func FormatRange(prices []float64) string {
	if len(prices) == 0 {
		return model.Unavailable
	}

	lo, hi := prices[0], prices[0]
	for _, p := range prices[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}

	// compare in cents so values that print the same collapse to one price
	loCents, hiCents := toCents(lo), toCents(hi)
	if loCents.Equal(hiCents) {
		return formatPrice(loCents)
	}
	return formatPrice(loCents) + " - " + formatPrice(hiCents)
}

func toCents(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

func formatPrice(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
