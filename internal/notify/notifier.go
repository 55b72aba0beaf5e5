// Package notify defines the notification interface and implementations
// for price-move alert delivery.
package notify

import (
	"context"
)

// PriceAlert contains the data needed to send a price-move notification
// after a market refresh.
type PriceAlert struct {
	AnalysisID string
	ItemName   string
	Brand      string
	OldPrice   float64
	NewPrice   float64
	ChangePct  float64
	Demand     string
	Trend      string
	ImageURL   string
}

// Notifier defines the interface for sending price-move notifications.
type Notifier interface {
	SendPriceAlert(ctx context.Context, alert *PriceAlert) error
	SendBatchAlert(ctx context.Context, alerts []PriceAlert) error
}
