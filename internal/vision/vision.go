// Package vision provides LLM-based product identification from item photos,
// abstracted behind interfaces for testability.
package vision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

// ErrNoImages is returned when an identification call receives no photos.
var ErrNoImages = errors.New("no images provided")

// maxImages caps how many photos are sent per identification call.
const maxImages = 10

// Identifier produces a structured product identity from item photos.
type Identifier interface {
	Identify(ctx context.Context, images []domain.Image) (*domain.Identification, error)
	Name() string
}

// identificationPayload is the JSON shape the model is asked to emit.
type identificationPayload struct {
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Model       string  `json:"model"`
	StyleCode   string  `json:"style_code"`
	Size        string  `json:"size"`
	Colorway    string  `json:"colorway"`
	ReleaseYear int     `json:"release_year"`
	Condition   string  `json:"condition"`
	Confidence  float64 `json:"confidence"`
}

// extractJSONObject extracts a JSON object from text that may contain
// markdown code blocks or other formatting.
func extractJSONObject(text string) (string, error) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response: %s", text)
	}
	return text[start : end+1], nil
}

// parseIdentification parses and validates a model response into a domain
// identification.
func parseIdentification(text string) (*domain.Identification, error) {
	jsonStr, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var payload identificationPayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, fmt.Errorf("parsing identification JSON: %w (response: %s)", err, jsonStr)
	}

	id := domain.Identification{
		Name:         strings.TrimSpace(payload.Name),
		Brand:        strings.TrimSpace(payload.Brand),
		Category:     strings.TrimSpace(payload.Category),
		Subcategory:  strings.TrimSpace(payload.Subcategory),
		Model:        strings.TrimSpace(payload.Model),
		StyleCode:    strings.TrimSpace(payload.StyleCode),
		Size:         strings.TrimSpace(payload.Size),
		Colorway:     strings.TrimSpace(payload.Colorway),
		ReleaseYear:  payload.ReleaseYear,
		ConditionRaw: strings.TrimSpace(payload.Condition),
		Confidence:   clamp01(payload.Confidence),
	}

	if id.Name == "" && id.Brand == "" {
		return nil, fmt.Errorf("identification has neither name nor brand (response: %s)", jsonStr)
	}
	return &id, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func capImages(images []domain.Image) []domain.Image {
	if len(images) > maxImages {
		return images[:maxImages]
	}
	return images
}
