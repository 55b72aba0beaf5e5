package marketplace

// Wire types for the eBay Marketplace Insights item_sales search. Only the
// fields the converter reads are declared.

// ItemSale is one completed-sale record from the marketplace API.
type ItemSale struct {
	ItemID            string           `json:"itemId"`
	Title             string           `json:"title"`
	Condition         string           `json:"condition"`
	ItemWebURL        string           `json:"itemWebUrl"`
	Image             *ImageRef        `json:"image,omitempty"`
	LastSoldDate      string           `json:"lastSoldDate,omitempty"`
	LastSoldPrice     *Money           `json:"lastSoldPrice,omitempty"`
	TotalSoldQuantity int              `json:"totalSoldQuantity,omitempty"`
	BuyingOptions     []string         `json:"buyingOptions,omitempty"`
	ShippingOptions   []ShippingOption `json:"shippingOptions,omitempty"`
}

// Money is an amount/currency pair; eBay serializes amounts as strings.
type Money struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

// ImageRef points at the primary listing image.
type ImageRef struct {
	ImageURL string `json:"imageUrl"`
}

// ShippingOption describes one shipping choice on a listing.
type ShippingOption struct {
	ShippingCostType string `json:"shippingCostType,omitempty"`
	ShippingCost     *Money `json:"shippingCost,omitempty"`
}
