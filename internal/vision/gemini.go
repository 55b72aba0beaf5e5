package vision

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/jmorrow/flip-analyzer/internal/metrics"
	domain "github.com/jmorrow/flip-analyzer/pkg/types"
)

const defaultGeminiModel = "gemini-3-flash-preview"

// Gemini pricing (per million tokens)
const (
	geminiInputPricePerMillion  = 0.50
	geminiOutputPricePerMillion = 3.00
)

// GeminiBackend implements Identifier using Google's Gemini API.
type GeminiBackend struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// GeminiOption configures the GeminiBackend.
type GeminiOption func(*GeminiBackend)

// WithGeminiModel overrides the default model.
func WithGeminiModel(model string) GeminiOption {
	return func(b *GeminiBackend) {
		b.model = model
	}
}

// WithGeminiLogger sets the backend logger.
func WithGeminiLogger(l *slog.Logger) GeminiOption {
	return func(b *GeminiBackend) {
		b.logger = l
	}
}

// NewGeminiBackend creates a Gemini vision backend. An empty apiKey falls
// back to the GEMINI_API_KEY environment variable inside the client.
func NewGeminiBackend(ctx context.Context, apiKey string, opts ...GeminiOption) (*GeminiBackend, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	b := &GeminiBackend{
		client: client,
		model:  defaultGeminiModel,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Name returns the backend name.
func (*GeminiBackend) Name() string {
	return "gemini"
}

// Identify sends the photos with the identification prompt as inline parts
// and parses the structured response.
func (b *GeminiBackend) Identify(ctx context.Context, images []domain.Image) (*domain.Identification, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}
	images = capImages(images)

	parts := []*genai.Part{
		genai.NewPartFromText(promptFor(len(images))),
	}
	for _, img := range images {
		mime := img.MIMEType
		if mime == "" {
			mime = "image/jpeg"
		}
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{Data: img.Data, MIMEType: mime},
		})
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := b.client.Models.GenerateContent(ctx, b.model, contents, nil)
	if err != nil {
		metrics.VisionCallsTotal.WithLabelValues(b.Name(), "error").Inc()
		return nil, fmt.Errorf("generating content: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		metrics.VisionCallsTotal.WithLabelValues(b.Name(), "empty").Inc()
		return nil, fmt.Errorf("empty response from gemini")
	}

	ident, err := parseIdentification(result.Text())
	if err != nil {
		metrics.VisionCallsTotal.WithLabelValues(b.Name(), "parse_error").Inc()
		return nil, err
	}
	metrics.VisionCallsTotal.WithLabelValues(b.Name(), "ok").Inc()

	var inputTokens, outputTokens int64
	var costUSD float64
	if result.UsageMetadata != nil {
		inputTokens = int64(result.UsageMetadata.PromptTokenCount)
		outputTokens = int64(result.UsageMetadata.CandidatesTokenCount)
		costUSD = float64(inputTokens)/1_000_000*geminiInputPricePerMillion +
			float64(outputTokens)/1_000_000*geminiOutputPricePerMillion
		metrics.VisionTokensTotal.WithLabelValues(b.Name(), "input").Add(float64(inputTokens))
		metrics.VisionTokensTotal.WithLabelValues(b.Name(), "output").Add(float64(outputTokens))
	}

	b.logger.Info("vision identification call",
		"backend", b.Name(),
		"model", b.model,
		"image_count", len(images),
		"input_tokens", inputTokens,
		"output_tokens", outputTokens,
		"cost_usd", costUSD,
		"confidence", ident.Confidence,
	)

	return ident, nil
}
