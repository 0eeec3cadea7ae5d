package pricing

import (
	"net/url"
	"strings"

	"pricelens/internal/model"
)

// BuildQuery turns an item into a marketplace search string: brand, name and
// type in that order, empty fields skipped, every whitespace run collapsed
// into a single "+". Each word is query-escaped so the result can be dropped
// straight into a URL.
func BuildQuery(item model.Item) string {
	var words []string
	for _, field := range []string{item.Brand, item.Name, item.Type} {
		for _, w := range strings.Fields(field) {
			words = append(words, url.QueryEscape(w))
		}
	}
	return strings.Join(words, "+")
}
