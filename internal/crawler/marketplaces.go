package crawler

import "time"

const (
	// DefaultTimeout bounds a single search-page request.
	DefaultTimeout = 10 * time.Second
	// MaxPricesPerMarketplace caps how many prices are kept from one page.
	MaxPricesPerMarketplace = 5
)

// Marketplace describes where and how to scrape one marketplace's search
// results. Update these values when a site changes its markup.
type Marketplace struct {
	Name       string
	BaseURL    string
	QueryParam string
	Headers    map[string]string
	// Selector matches the elements holding a listing's price text.
	Selector string
}

// SearchURL substitutes an already URL-safe query into the search endpoint.
func (m Marketplace) SearchURL(query string) string {
	return m.BaseURL + "?" + m.QueryParam + "=" + query
}

var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}

var (
	Amazon = Marketplace{
		Name:       "amazon",
		BaseURL:    "https://www.amazon.com/s",
		QueryParam: "k",
		Headers:    browserHeaders,
		Selector:   ".a-price .a-offscreen",
	}

	EBay = Marketplace{
		Name:       "ebay",
		BaseURL:    "https://www.ebay.com/sch/i.html",
		QueryParam: "_nkw",
		Headers:    browserHeaders,
		Selector:   ".s-item__price",
	}
)

// Marketplaces lists every marketplace the service knows how to scrape.
func Marketplaces() []Marketplace {
	return []Marketplace{Amazon, EBay}
}
