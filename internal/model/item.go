package model

import "strings"

// Item is what the price engine needs to know about a recognised object.
type Item struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Brand string `json:"brand"`
}

// ItemDetails holds the attributes the vision model reports for an item.
type ItemDetails struct {
	Type                string   `json:"type"`
	Brand               string   `json:"brand"`
	Color               string   `json:"color"`
	Condition           string   `json:"condition"`
	DistinctiveFeatures []string `json:"distinctive_features"`
	IsMainFocus         bool     `json:"is_main_focus"`
}

// DetectedItem is one entry of the JSON array returned by the vision model.
type DetectedItem struct {
	ItemName string      `json:"item_name"`
	Details  ItemDetails `json:"details"`
}

// Item reduces a detection to the descriptor used for price lookups.
func (d DetectedItem) Item() Item {
	return Item{
		Name:  d.ItemName,
		Type:  d.Details.Type,
		Brand: d.Details.Brand,
	}
}

// ItemRow is the flattened table row shown for a detected item.
type ItemRow struct {
	MainFocus string `json:"main_focus"`
	ItemName  string `json:"item_name"`
	Type      string `json:"type"`
	Brand     string `json:"brand"`
	Color     string `json:"color"`
	Condition string `json:"condition"`
	Features  string `json:"distinctive_features"`
}

func (d DetectedItem) Row() ItemRow {
	focus := ""
	if d.Details.IsMainFocus {
		focus = "✓"
	}
	return ItemRow{
		MainFocus: focus,
		ItemName:  d.ItemName,
		Type:      d.Details.Type,
		Brand:     d.Details.Brand,
		Color:     d.Details.Color,
		Condition: d.Details.Condition,
		Features:  strings.Join(d.Details.DistinctiveFeatures, ", "),
	}
}
