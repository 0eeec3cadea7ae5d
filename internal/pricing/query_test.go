package pricing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pricelens/internal/model"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name string
		item model.Item
		want string
	}{
		{"all fields", model.Item{Name: "Air Max 90", Type: "sneakers", Brand: "Nike"}, "Nike+Air+Max+90+sneakers"},
		{"no brand", model.Item{Name: "desk lamp", Type: "lighting"}, "desk+lamp+lighting"},
		{"padding and runs", model.Item{Name: "  coffee \t mug ", Type: "\nkitchen  ", Brand: " "}, "coffee+mug+kitchen"},
		{"reserved characters", model.Item{Name: "Levi's 501 & co", Brand: "C++"}, "C%2B%2B+Levi%27s+501+%26+co"},
		{"empty", model.Item{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildQuery(tt.item))
		})
	}
}

func TestBuildQueryIsStable(t *testing.T) {
	item := model.Item{Name: " Galaxy   S21 ", Type: "phone", Brand: "Samsung"}
	first := BuildQuery(item)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BuildQuery(item))
	}
	assert.NotContains(t, first, "++")
	assert.False(t, strings.HasPrefix(first, "+") || strings.HasSuffix(first, "+"))
}
