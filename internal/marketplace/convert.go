package marketplace

import (
	"slices"
	"strconv"
	"time"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// ToSoldListings converts marketplace sale records into domain observations.
func ToSoldListings(items []ItemSale) []domain.SoldListing {
	listings := make([]domain.SoldListing, 0, len(items))
	for i := range items {
		listings = append(listings, toSoldListing(&items[i]))
	}
	return listings
}

func toSoldListing(item *ItemSale) domain.SoldListing {
	l := domain.SoldListing{
		Title:             item.Title,
		ConditionRaw:      item.Condition,
		ItemURL:           item.ItemWebURL,
		BestOfferAccepted: slices.Contains(item.BuyingOptions, "BEST_OFFER"),
	}

	if item.LastSoldPrice != nil {
		l.Currency = item.LastSoldPrice.Currency
		if p, err := strconv.ParseFloat(item.LastSoldPrice.Value, 64); err == nil {
			l.Price = p
		}
	}

	if item.LastSoldDate != "" {
		if at, err := time.Parse(time.RFC3339, item.LastSoldDate); err == nil {
			l.SoldAt = &at
		}
	}

	if item.Image != nil {
		l.ImageURL = item.Image.ImageURL
	}

	if len(item.ShippingOptions) > 0 {
		if sc := item.ShippingOptions[0].ShippingCost; sc != nil {
			if cost, err := strconv.ParseFloat(sc.Value, 64); err == nil {
				l.ShippingCost = &cost
			}
		}
	}

	return l
}
