package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmorrow/flip-analyzer/pkg/logger"
)

func TestNoOpNotifier(t *testing.T) {
	t.Parallel()

	n := NewNoOpNotifier(logger.Quiet())

	require.NoError(t, n.SendPriceAlert(context.Background(), testAlert()))
	require.NoError(t, n.SendBatchAlert(context.Background(), []PriceAlert{*testAlert()}))
}
