package vision

func ItemsPrompt() string {
	return `
Analyze this image and return a JSON array of the items/objects in the picture.
Use this structure for each item:
{
    "item_name": "name of the item",
    "details": {
        "type": "type/category of the item",
        "brand": "brand name if visible/identifiable, otherwise empty string",
        "color": "color(s) of the item",
        "condition": "condition or state of the item",
        "distinctive_features": ["notable features or characteristics"],
        "is_main_focus": true if this item is the main focus of the image
    }
}

Return ONLY the JSON array, no additional text.
List the main focus item first, followed by the other visible items.
Be precise and detailed about each item.
If brands are visible, include them accurately.
`
}
