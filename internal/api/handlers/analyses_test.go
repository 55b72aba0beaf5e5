package handlers_test

import (
	"encoding/base64"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jmorrow/flip-analyzer/internal/api/handlers"
	"github.com/jmorrow/flip-analyzer/internal/engine"
	engineMocks "github.com/jmorrow/flip-analyzer/internal/engine/mocks"
	"github.com/jmorrow/flip-analyzer/internal/store"
	storeMocks "github.com/jmorrow/flip-analyzer/internal/store/mocks"
	"github.com/jmorrow/flip-analyzer/pkg/logger"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

func imageBody() map[string]any {
	return map[string]any{
		"images": []map[string]any{
			{
				"data":      base64.StdEncoding.EncodeToString([]byte{0xFF, 0xD8, 0x01}),
				"mime_type": "image/jpeg",
			},
		},
	}
}

func soldComps(n int) []domain.SoldListing {
	soldAt := time.Now().AddDate(0, 0, -3)
	comps := make([]domain.SoldListing, n)
	for i := range comps {
		comps[i] = domain.SoldListing{Title: "Nike Air Max 90", Price: 50, SoldAt: &soldAt}
	}
	return comps
}

func newAnalysesAPI(
	t *testing.T,
	identifier *engineMocks.MockIdentifier,
	searcher *engineMocks.MockCompSearcher,
	st *storeMocks.MockStore,
) humatest.TestAPI {
	t.Helper()

	eng := engine.New(identifier, searcher, engine.WithLogger(logger.Quiet()))
	h := handlers.NewAnalysesHandler(eng, st)

	_, api := humatest.New(t)
	handlers.RegisterAnalysisRoutes(api, h)
	return api
}

func TestAnalysesHandler_Create(t *testing.T) {
	t.Parallel()

	t.Run("happy path persists and returns analysis", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		identifier.EXPECT().
			Identify(mock.Anything, mock.Anything).
			Return(&domain.Identification{
				Name:       "Nike Air Max 90",
				Brand:      "Nike",
				Category:   "Sneakers",
				Confidence: 0.9,
			}, nil).Once()
		searcher.EXPECT().
			SearchSold(mock.Anything, mock.Anything).
			Return(soldComps(6), nil).Once()
		st.EXPECT().
			SaveAnalysis(mock.Anything, mock.Anything).
			Return(nil).Once()

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Post("/api/v1/analyses", imageBody())
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"Nike Air Max 90"`)
		assert.Contains(t, resp.Body.String(), `"ladder"`)
		assert.Contains(t, resp.Body.String(), `"strategy"`)
	})

	t.Run("unidentifiable item returns 422", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		identifier.EXPECT().
			Identify(mock.Anything, mock.Anything).
			Return(nil, errors.New("image too dark")).Once()

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Post("/api/v1/analyses", imageBody())
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "could not be identified")
		st.AssertNotCalled(t, "SaveAnalysis", mock.Anything, mock.Anything)
	})

	t.Run("missing images returns 422", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Post("/api/v1/analyses", map[string]any{"images": []any{}})
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		identifier.EXPECT().
			Identify(mock.Anything, mock.Anything).
			Return(&domain.Identification{Name: "Widget", Confidence: 0.5}, nil).Once()
		searcher.EXPECT().
			SearchSold(mock.Anything, mock.Anything).
			Return(soldComps(6), nil).Once()
		st.EXPECT().
			SaveAnalysis(mock.Anything, mock.Anything).
			Return(errors.New("connection refused")).Once()

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Post("/api/v1/analyses", imageBody())
		require.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, resp.Body.String(), "saving analysis failed")
	})
}

func TestAnalysesHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		query      string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:  "no filters returns analyses",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnalyses(mock.Anything, mock.Anything).
					Return([]domain.Analysis{
						{ID: "a1", Identification: domain.Identification{Name: "Nike Air Max 90"}},
					}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name:  "omitted limit echoes the applied default",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnalyses(mock.Anything, mock.MatchedBy(func(q *store.AnalysisQuery) bool {
						return q.Limit == 0
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":50`,
		},
		{
			name:  "brand filter",
			query: "?brand=Nike",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnalyses(mock.Anything, mock.MatchedBy(func(q *store.AnalysisQuery) bool {
						return q.Brand != nil && *q.Brand == "Nike"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":0`,
		},
		{
			name:  "price range and pagination",
			query: "?min_price=20&max_price=100&limit=10&offset=20",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnalyses(mock.Anything, mock.MatchedBy(func(q *store.AnalysisQuery) bool {
						return q.MinPrice != nil && *q.MinPrice == 20 &&
							q.MaxPrice != nil && *q.MaxPrice == 100 &&
							q.Limit == 10 && q.Offset == 20
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"limit":10`,
		},
		{
			name:       "invalid demand returns 422",
			query:      "?demand=extreme",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:  "store error returns 500",
			query: "",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListAnalyses(mock.Anything, mock.Anything).
					Return(nil, 0, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `analysis query failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			identifier := engineMocks.NewMockIdentifier(t)
			searcher := engineMocks.NewMockCompSearcher(t)
			st := storeMocks.NewMockStore(t)
			tt.setupMock(st)

			api := newAnalysesAPI(t, identifier, searcher, st)

			resp := api.Get("/api/v1/analyses" + tt.query)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAnalysesHandler_Get(t *testing.T) {
	t.Parallel()

	t.Run("found returns 200", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		st.EXPECT().
			GetAnalysis(mock.Anything, "abc-123").
			Return(&domain.Analysis{
				ID:             "abc-123",
				Identification: domain.Identification{Name: "Nike Air Max 90"},
			}, nil).Once()

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Get("/api/v1/analyses/abc-123")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `"Nike Air Max 90"`)
	})

	t.Run("not found returns 404", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		st.EXPECT().
			GetAnalysis(mock.Anything, "nonexistent").
			Return(nil, store.ErrNotFound).Once()

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Get("/api/v1/analyses/nonexistent")
		require.Equal(t, http.StatusNotFound, resp.Code)
		assert.Contains(t, resp.Body.String(), "analysis not found")
	})
}

func TestAnalysesHandler_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deleted returns 204", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		st.EXPECT().
			DeleteAnalysis(mock.Anything, "abc-123").
			Return(nil).Once()

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Delete("/api/v1/analyses/abc-123")
		require.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("not found returns 404", func(t *testing.T) {
		t.Parallel()

		identifier := engineMocks.NewMockIdentifier(t)
		searcher := engineMocks.NewMockCompSearcher(t)
		st := storeMocks.NewMockStore(t)

		st.EXPECT().
			DeleteAnalysis(mock.Anything, "nonexistent").
			Return(store.ErrNotFound).Once()

		api := newAnalysesAPI(t, identifier, searcher, st)

		resp := api.Delete("/api/v1/analyses/nonexistent")
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}
