package vision

const identifyPrompt = `Analyze this photo and identify the product for resale on a marketplace.

Respond in JSON format with these fields:
- name: the full product name including brand (e.g. "Nike Air Max 90")
- brand: the brand name if identifiable (empty string if unknown)
- category: the broad product category (e.g. "Sneakers", "Electronics", "Outerwear")
- subcategory: a narrower category if clear (empty string otherwise)
- model: the model name or number if identifiable (empty string if unknown)
- style_code: the manufacturer style/SKU code if visible on tags or box (empty string otherwise)
- size: the size exactly as printed on the tag (empty string if not visible)
- colorway: the official or descriptive color name (empty string if unclear)
- release_year: the release year as a number if known, 0 otherwise
- condition: a short free-text condition assessment (e.g. "new with tags", "like new", "good, light wear on soles")
- confidence: how certain you are of the identification, 0.0 to 1.0

Example response:
{"name": "Nike Air Max 90", "brand": "Nike", "category": "Sneakers", "subcategory": "Lifestyle Shoes", "model": "Air Max 90", "style_code": "DD1391-100", "size": "10", "colorway": "Infrared", "release_year": 2020, "condition": "very good, light creasing", "confidence": 0.9}

Respond ONLY with the JSON object, no markdown or other text.`

const identifyMultiPrompt = `Analyze these photos showing the same item from different angles and identify the product for resale on a marketplace.

The photos show the same item. Use all of them together to read tags, style codes and condition details.

Respond in JSON format with these fields:
- name: the full product name including brand (e.g. "Nike Air Max 90")
- brand: the brand name if identifiable (empty string if unknown)
- category: the broad product category (e.g. "Sneakers", "Electronics", "Outerwear")
- subcategory: a narrower category if clear (empty string otherwise)
- model: the model name or number if identifiable (empty string if unknown)
- style_code: the manufacturer style/SKU code if visible on tags or box (empty string otherwise)
- size: the size exactly as printed on the tag (empty string if not visible)
- colorway: the official or descriptive color name (empty string if unclear)
- release_year: the release year as a number if known, 0 otherwise
- condition: a short free-text condition assessment mentioning wear visible across the photos
- confidence: how certain you are of the identification, 0.0 to 1.0

Respond ONLY with the JSON object, no markdown or other text.`

func promptFor(imageCount int) string {
	if imageCount > 1 {
		return identifyMultiPrompt
	}
	return identifyPrompt
}
