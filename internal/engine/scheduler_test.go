package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmorrow/flip-analyzer/internal/engine/mocks"
	notifyMocks "github.com/jmorrow/flip-analyzer/internal/notify/mocks"
	storeMocks "github.com/jmorrow/flip-analyzer/internal/store/mocks"
	"github.com/jmorrow/flip-analyzer/pkg/logger"
)

func newSchedulerTestRefresher(t *testing.T) *Refresher {
	t.Helper()
	searcher := mocks.NewMockCompSearcher(t)
	st := storeMocks.NewMockStore(t)
	n := notifyMocks.NewMockNotifier(t)
	return newTestRefresher(t, searcher, st, n)
}

func TestNewSchedulerRegistersCronEntry(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestRefresher(t), 6*time.Hour, logger.Quiet())
	require.NoError(t, err)

	assert.Len(t, sched.Entries(), 1)
}

func TestSchedulerStartStop(t *testing.T) {
	t.Parallel()

	sched, err := NewScheduler(newSchedulerTestRefresher(t), time.Hour, logger.Quiet())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}
