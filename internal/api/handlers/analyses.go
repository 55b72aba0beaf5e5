package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/jmorrow/flip-analyzer/internal/engine"
	"github.com/jmorrow/flip-analyzer/internal/store"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// AnalysesHandler handles analysis creation and query endpoints.
type AnalysesHandler struct {
	engine *engine.Engine
	store  store.Store
}

// NewAnalysesHandler creates a new AnalysesHandler.
func NewAnalysesHandler(eng *engine.Engine, s store.Store) *AnalysesHandler {
	return &AnalysesHandler{engine: eng, store: s}
}

// --- Input/Output types ---

// ImageInput is one base64-encoded item photo.
type ImageInput struct {
	Data     []byte `json:"data" minLength:"1" doc:"Base64-encoded image bytes"`
	MIMEType string `json:"mime_type,omitempty" doc:"Image MIME type (default image/jpeg)" example:"image/jpeg"`
}

// CreateAnalysisInput is the request body for creating an analysis.
type CreateAnalysisInput struct {
	Body struct {
		Images []ImageInput `json:"images" minItems:"1" maxItems:"10" doc:"Item photos, best side first"`
	}
}

// CreateAnalysisOutput is the response for creating an analysis.
type CreateAnalysisOutput struct {
	Body domain.Analysis
}

// ListAnalysesInput is the input for listing analyses with optional filters.
type ListAnalysesInput struct {
	Brand    string  `query:"brand"     doc:"Filter by brand (case insensitive)"`
	Category string  `query:"category"  doc:"Filter by category (case insensitive)"`
	Demand   string  `query:"demand"    doc:"Filter by demand level"                  enum:"no_market_data,very_low,low,medium,high,very_high,"`
	MinPrice float64 `query:"min_price" doc:"Minimum market price"                    minimum:"0"`
	MaxPrice float64 `query:"max_price" doc:"Maximum market price"                    minimum:"0"`
	Limit    int     `query:"limit"     doc:"Number of results (default 50)"          minimum:"1" maximum:"500"`
	Offset   int     `query:"offset"    doc:"Pagination offset"                       minimum:"0"`
	OrderBy  string  `query:"order_by"  doc:"Sort field"                              enum:"created_at,market_price,demand,"`
}

// ListAnalysesOutput is the response for listing analyses.
type ListAnalysesOutput struct {
	Body struct {
		Analyses []domain.Analysis `json:"analyses"`
		Total    int               `json:"total"`
		Limit    int               `json:"limit"`
		Offset   int               `json:"offset"`
	}
}

// GetAnalysisInput is the input for getting a single analysis.
type GetAnalysisInput struct {
	ID string `path:"id" doc:"Analysis UUID"`
}

// GetAnalysisOutput is the response for getting a single analysis.
type GetAnalysisOutput struct {
	Body domain.Analysis
}

// DeleteAnalysisInput is the input for deleting an analysis.
type DeleteAnalysisInput struct {
	ID string `path:"id" doc:"Analysis UUID"`
}

// --- Handlers ---

// CreateAnalysis runs the full pipeline on the uploaded photos and persists
// the result.
func (h *AnalysesHandler) CreateAnalysis(
	ctx context.Context,
	input *CreateAnalysisInput,
) (*CreateAnalysisOutput, error) {
	images := make([]domain.Image, len(input.Body.Images))
	for i, img := range input.Body.Images {
		images[i] = domain.Image{Data: img.Data, MIMEType: img.MIMEType}
	}

	analysis, err := h.engine.Analyze(ctx, images)
	if err != nil {
		if errors.Is(err, engine.ErrNoIdentification) {
			return nil, huma.Error422UnprocessableEntity("item could not be identified: " + err.Error())
		}
		return nil, huma.Error500InternalServerError("analysis failed: " + err.Error())
	}

	if err := h.store.SaveAnalysis(ctx, analysis); err != nil {
		return nil, huma.Error500InternalServerError("saving analysis failed: " + err.Error())
	}

	return &CreateAnalysisOutput{Body: *analysis}, nil
}

// ListAnalyses returns stored analyses with optional filters.
func (h *AnalysesHandler) ListAnalyses(
	ctx context.Context,
	input *ListAnalysesInput,
) (*ListAnalysesOutput, error) {
	q := &store.AnalysisQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Brand != "" {
		q.Brand = &input.Brand
	}
	if input.Category != "" {
		q.Category = &input.Category
	}
	if input.Demand != "" {
		q.Demand = &input.Demand
	}
	if input.MinPrice != 0 {
		q.MinPrice = &input.MinPrice
	}
	if input.MaxPrice != 0 {
		q.MaxPrice = &input.MaxPrice
	}
	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	analyses, total, err := h.store.ListAnalyses(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("analysis query failed: " + err.Error())
	}

	resp := &ListAnalysesOutput{}
	resp.Body.Analyses = analyses
	resp.Body.Total = total
	resp.Body.Limit = q.EffectiveLimit()
	resp.Body.Offset = q.EffectiveOffset()

	return resp, nil
}

// GetAnalysis returns a single analysis by ID.
func (h *AnalysesHandler) GetAnalysis(
	ctx context.Context,
	input *GetAnalysisInput,
) (*GetAnalysisOutput, error) {
	analysis, err := h.store.GetAnalysis(ctx, input.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("analysis not found")
		}
		return nil, huma.Error500InternalServerError("fetching analysis failed: " + err.Error())
	}

	return &GetAnalysisOutput{Body: *analysis}, nil
}

// DeleteAnalysis removes an analysis by ID.
func (h *AnalysesHandler) DeleteAnalysis(
	ctx context.Context,
	input *DeleteAnalysisInput,
) (*struct{}, error) {
	if err := h.store.DeleteAnalysis(ctx, input.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, huma.Error404NotFound("analysis not found")
		}
		return nil, huma.Error500InternalServerError("deleting analysis failed: " + err.Error())
	}
	return nil, nil
}

// RegisterAnalysisRoutes registers analysis endpoints with the Huma API.
func RegisterAnalysisRoutes(api huma.API, h *AnalysesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "create-analysis",
		Method:      http.MethodPost,
		Path:        "/api/v1/analyses",
		Summary:     "Analyze an item",
		Description: "Identifies the item from photos, researches sold comparables and returns the full pricing analysis.",
		Tags:        []string{"analyses"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.CreateAnalysis)

	huma.Register(api, huma.Operation{
		OperationID: "list-analyses",
		Method:      http.MethodGet,
		Path:        "/api/v1/analyses",
		Summary:     "List analyses",
		Description: "Returns stored analyses with optional filters for brand, category, demand and price range.",
		Tags:        []string{"analyses"},
	}, h.ListAnalyses)

	huma.Register(api, huma.Operation{
		OperationID: "get-analysis",
		Method:      http.MethodGet,
		Path:        "/api/v1/analyses/{id}",
		Summary:     "Get an analysis by ID",
		Description: "Returns a single analysis by its UUID.",
		Tags:        []string{"analyses"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetAnalysis)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-analysis",
		Method:        http.MethodDelete,
		Path:          "/api/v1/analyses/{id}",
		Summary:       "Delete an analysis",
		Description:   "Removes a stored analysis by its UUID.",
		Tags:          []string{"analyses"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteAnalysis)
}
