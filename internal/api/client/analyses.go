package client

import (
	"context"
	"fmt"
	"strconv"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// analysisImage is one photo in a create-analysis request.
type analysisImage struct {
	Data     []byte `json:"data"`
	MIMEType string `json:"mime_type,omitempty"`
}

// AnalysesResponse is the response from listing analyses.
type AnalysesResponse struct {
	Analyses []domain.Analysis `json:"analyses"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

// ListAnalysesParams are optional filters for listing analyses.
type ListAnalysesParams struct {
	Brand    string
	Category string
	Demand   string
	MinPrice float64
	MaxPrice float64
	Limit    int
	Offset   int
	OrderBy  string
}

func (p *ListAnalysesParams) queryParams() map[string]string {
	q := map[string]string{}
	if p == nil {
		return q
	}
	if p.Brand != "" {
		q["brand"] = p.Brand
	}
	if p.Category != "" {
		q["category"] = p.Category
	}
	if p.Demand != "" {
		q["demand"] = p.Demand
	}
	if p.MinPrice > 0 {
		q["min_price"] = strconv.FormatFloat(p.MinPrice, 'f', -1, 64)
	}
	if p.MaxPrice > 0 {
		q["max_price"] = strconv.FormatFloat(p.MaxPrice, 'f', -1, 64)
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	if p.Offset > 0 {
		q["offset"] = strconv.Itoa(p.Offset)
	}
	if p.OrderBy != "" {
		q["order_by"] = p.OrderBy
	}
	return q
}

// CreateAnalysis uploads item photos and runs the full analysis pipeline.
func (c *Client) CreateAnalysis(ctx context.Context, images []domain.Image) (*domain.Analysis, error) {
	body := struct {
		Images []analysisImage `json:"images"`
	}{Images: make([]analysisImage, len(images))}
	for i, img := range images {
		body.Images[i] = analysisImage{Data: img.Data, MIMEType: img.MIMEType}
	}

	var analysis domain.Analysis
	resp, err := c.rc.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&analysis).
		SetError(&apiError{}).
		Post("/api/v1/analyses")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// ListAnalyses returns stored analyses matching the given filters.
func (c *Client) ListAnalyses(ctx context.Context, params *ListAnalysesParams) (*AnalysesResponse, error) {
	var out AnalysesResponse
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(params.queryParams()).
		SetResult(&out).
		SetError(&apiError{}).
		Get("/api/v1/analyses")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAnalysis returns a single analysis by ID.
func (c *Client) GetAnalysis(ctx context.Context, id string) (*domain.Analysis, error) {
	var analysis domain.Analysis
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&analysis).
		SetError(&apiError{}).
		Get("/api/v1/analyses/{id}")
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// DeleteAnalysis removes a stored analysis by ID.
func (c *Client) DeleteAnalysis(ctx context.Context, id string) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetError(&apiError{}).
		Delete("/api/v1/analyses/{id}")
	return checkResponse(resp, err)
}

// Healthz checks whether the API server is reachable and ready.
func (c *Client) Healthz(ctx context.Context) error {
	resp, err := c.rc.R().
		SetContext(ctx).
		Get("/healthz")
	if err := checkResponse(resp, err); err != nil {
		return err
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("unexpected health status %d", resp.StatusCode())
	}
	return nil
}
