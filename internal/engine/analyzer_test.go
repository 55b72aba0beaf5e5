package engine_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmorrow/flip-analyzer/internal/engine"
	"github.com/jmorrow/flip-analyzer/internal/engine/mocks"
	"github.com/jmorrow/flip-analyzer/pkg/logger"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func testIdentification() *domain.Identification {
	return &domain.Identification{
		Name:         "Nike Air Max 90",
		Brand:        "Nike",
		Category:     "Sneakers",
		Model:        "Air Max 90",
		Size:         "10",
		Colorway:     "Infrared",
		ConditionRaw: "like new",
		Confidence:   0.9,
	}
}

func testComps(n int, price float64) []domain.SoldListing {
	out := make([]domain.SoldListing, n)
	for i := range out {
		at := testNow.AddDate(0, 0, -(i + 1))
		out[i] = domain.SoldListing{Title: "comp", Price: price, SoldAt: &at}
	}
	return out
}

func newTestEngine(t *testing.T, identifier *mocks.MockIdentifier, searcher *mocks.MockCompSearcher, opts ...engine.Option) *engine.Engine {
	t.Helper()
	base := []engine.Option{
		engine.WithLogger(logger.Quiet()),
		engine.WithNowFunc(func() time.Time { return testNow }),
	}
	return engine.New(identifier, searcher, append(base, opts...)...)
}

func TestAnalyzeHappyPath(t *testing.T) {
	t.Parallel()

	identifier := mocks.NewMockIdentifier(t)
	searcher := mocks.NewMockCompSearcher(t)

	identifier.EXPECT().Identify(mock.Anything, mock.Anything).
		Return(testIdentification(), nil).Once()
	searcher.EXPECT().SearchSold(mock.Anything, "Nike Air Max 90 Infrared size 10").
		Return(testComps(12, 80), nil).Once()

	var stages []engine.Stage
	eng := newTestEngine(t, identifier, searcher,
		engine.WithProgress(func(s engine.Stage, index, total int) {
			stages = append(stages, s)
			assert.Equal(t, int(s), index)
			assert.Equal(t, engine.StageCount, total)
		}),
	)

	analysis, err := eng.Analyze(context.Background(), []domain.Image{{Data: []byte{1}, MIMEType: "image/jpeg"}})
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.NotEmpty(t, analysis.ID)
	assert.Equal(t, testNow, analysis.CreatedAt)
	assert.Equal(t, "Nike Air Max 90", analysis.Identification.Name)

	assert.Equal(t, domain.DemandMedium, analysis.Market.Demand)
	assert.Equal(t, 12, analysis.Market.TotalSales)

	assert.Equal(t, 12, analysis.RawLadder.SampleSize)
	assert.InDelta(t, analysis.RawLadder.Market*0.90, analysis.Ladder.Market, 1e-9, "like-new impact applied")

	assert.Equal(t, domain.ConditionLikeNew, analysis.Condition.Grade)
	assert.NotEmpty(t, analysis.Content.Title)
	assert.NotEmpty(t, analysis.Strategy.Pricing)
	assert.Len(t, analysis.Samples, 10, "samples capped")

	require.Len(t, stages, engine.StageCount)
	assert.Equal(t, engine.StageIdentify, stages[0])
	assert.Equal(t, engine.StageAssemble, stages[len(stages)-1])
}

func TestAnalyzeIdentificationFailureIsTerminal(t *testing.T) {
	t.Parallel()

	identifier := mocks.NewMockIdentifier(t)
	searcher := mocks.NewMockCompSearcher(t)

	identifier.EXPECT().Identify(mock.Anything, mock.Anything).
		Return(nil, errors.New("model timeout")).Once()

	eng := newTestEngine(t, identifier, searcher)

	analysis, err := eng.Analyze(context.Background(), nil)
	require.ErrorIs(t, err, engine.ErrNoIdentification)
	assert.Nil(t, analysis)
	searcher.AssertNotCalled(t, "SearchSold", mock.Anything, mock.Anything)
}

func TestAnalyzeEmptyIdentityIsTerminal(t *testing.T) {
	t.Parallel()

	identifier := mocks.NewMockIdentifier(t)
	searcher := mocks.NewMockCompSearcher(t)

	identifier.EXPECT().Identify(mock.Anything, mock.Anything).
		Return(&domain.Identification{Confidence: 0.1}, nil).Once()

	eng := newTestEngine(t, identifier, searcher)

	_, err := eng.Analyze(context.Background(), nil)
	require.ErrorIs(t, err, engine.ErrNoIdentification)
	searcher.AssertNotCalled(t, "SearchSold", mock.Anything, mock.Anything)
}

func TestAnalyzeCascadeStopsAtFirstHit(t *testing.T) {
	t.Parallel()

	identifier := mocks.NewMockIdentifier(t)
	searcher := mocks.NewMockCompSearcher(t)

	identifier.EXPECT().Identify(mock.Anything, mock.Anything).
		Return(testIdentification(), nil).Once()
	searcher.EXPECT().SearchSold(mock.Anything, "Nike Air Max 90 Infrared size 10").
		Return(nil, nil).Once()
	searcher.EXPECT().SearchSold(mock.Anything, "Nike Air Max 90 Infrared").
		Return(testComps(5, 60), nil).Once()

	eng := newTestEngine(t, identifier, searcher)

	analysis, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 5, analysis.Market.TotalSales)
	searcher.AssertNumberOfCalls(t, "SearchSold", 2)
}

func TestAnalyzeCascadeTreatsErrorAsEmpty(t *testing.T) {
	t.Parallel()

	identifier := mocks.NewMockIdentifier(t)
	searcher := mocks.NewMockCompSearcher(t)

	identifier.EXPECT().Identify(mock.Anything, mock.Anything).
		Return(testIdentification(), nil).Once()
	searcher.EXPECT().SearchSold(mock.Anything, "Nike Air Max 90 Infrared size 10").
		Return(nil, errors.New("api unavailable")).Once()
	searcher.EXPECT().SearchSold(mock.Anything, "Nike Air Max 90 Infrared").
		Return(testComps(4, 55), nil).Once()

	eng := newTestEngine(t, identifier, searcher)

	analysis, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err, "search failure is never terminal")
	assert.Equal(t, 4, analysis.Market.TotalSales)
}

func TestAnalyzeAllQueriesEmptyFallsBackToHeuristics(t *testing.T) {
	t.Parallel()

	identifier := mocks.NewMockIdentifier(t)
	searcher := mocks.NewMockCompSearcher(t)

	identifier.EXPECT().Identify(mock.Anything, mock.Anything).
		Return(testIdentification(), nil).Once()
	searcher.EXPECT().SearchSold(mock.Anything, mock.Anything).
		Return(nil, nil).Times(3)

	eng := newTestEngine(t, identifier, searcher)

	analysis, err := eng.Analyze(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.DemandNoData, analysis.Market.Demand)
	assert.Zero(t, analysis.Ladder.SampleSize)
	// premium sneaker brand at footwear multiplier
	assert.InDelta(t, 140*1.2*0.90, analysis.Ladder.Market, 1e-9)
	assert.Empty(t, analysis.Samples)
	searcher.AssertNumberOfCalls(t, "SearchSold", 3)
}

func TestAnalyzeCancelledContext(t *testing.T) {
	t.Parallel()

	identifier := mocks.NewMockIdentifier(t)
	searcher := mocks.NewMockCompSearcher(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := newTestEngine(t, identifier, searcher)

	_, err := eng.Analyze(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	identifier.AssertNotCalled(t, "Identify", mock.Anything, mock.Anything)
}

func TestStageStrings(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, engine.StageCount)
	for s := engine.StageIdentify; s <= engine.StageAssemble; s++ {
		label := s.String()
		assert.NotEqual(t, "unknown", label)
		_, dup := seen[label]
		assert.False(t, dup, "duplicate stage label %q", label)
		seen[label] = struct{}{}
	}
	assert.Equal(t, "unknown", engine.Stage(99).String())
}
