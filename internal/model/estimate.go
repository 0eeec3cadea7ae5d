package model

// Unavailable is returned in place of a price range when a band has no data.
const Unavailable = "unavailable"

// Source describes where a marketplace's contribution to an estimate came from.
type Source string

const (
	SourceScraped     Source = "scraped"
	SourcePlaceholder Source = "placeholder"
	SourceEmpty       Source = "empty"
)

// PriceEstimate is the result handed back for a single item.
//
// NewPriceRange and UsedPriceRange come from splitting one combined, sorted
// price sample in half: the upper half is reported as "new" and the lower half
// as "used". Listing condition is never read from the marketplace pages, so
// this is a heuristic and not a classification.
type PriceEstimate struct {
	NewPriceRange    string            `json:"new_price"`
	UsedPriceRange   string            `json:"used_price"`
	SearchQuery      string            `json:"search_query"`
	MarketplaceLinks map[string]string `json:"marketplace_links"`
	Sources          map[string]Source `json:"sources"`
	// Placeholder is set when any synthetic, non-authoritative prices
	// contributed to the ranges.
	Placeholder bool `json:"placeholder"`
}

// ItemEstimate pairs a detected item with its price estimate.
type ItemEstimate struct {
	Item     ItemRow       `json:"item"`
	Estimate PriceEstimate `json:"estimate"`
}
