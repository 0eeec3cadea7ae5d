package crawler

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// ParsePrices reads an HTML search-results page and returns at most limit
// prices found under selector, in document order. Fragments without a number
// are skipped.
func ParsePrices(r io.Reader, selector string, limit int) (PriceList, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	prices := PriceList{}
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.TrimSpace(s.Text())
		v, ok := ExtractPrice(text)
		if !ok {
			log.Debug().Str("fragment", text).Msg("skipping price fragment without a value")
			return true
		}
		prices = append(prices, v)
		return len(prices) < limit
	})

	return prices, nil
}
