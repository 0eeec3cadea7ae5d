package crawler

import (
	"regexp"
	"strconv"
	"strings"
)

var priceRegexp = regexp.MustCompile(`\d+(?:\.\d+)?`)

// ExtractPrice pulls the first number out of a price fragment such as
// "$1,234.56" or "US $12.00 to $15.00". The second return value is false when
// the fragment holds no digits; that is an expected outcome, not an error.
func ExtractPrice(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	match := priceRegexp.FindString(cleaned)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
