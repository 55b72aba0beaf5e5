package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when Discord (or another notification backend) is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// SendPriceAlert logs and discards a single alert.
func (n *NoOpNotifier) SendPriceAlert(_ context.Context, alert *PriceAlert) error {
	n.log.Debug("notification discarded (no backend configured)",
		"analysis_id", alert.AnalysisID,
		"item", alert.ItemName,
		"change_pct", alert.ChangePct,
	)
	return nil
}

// SendBatchAlert logs and discards a batch of alerts.
func (n *NoOpNotifier) SendBatchAlert(_ context.Context, alerts []PriceAlert) error {
	n.log.Debug("batch notification discarded (no backend configured)",
		"count", len(alerts),
	)
	return nil
}
