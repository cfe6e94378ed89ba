package gen

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// AnthropicModels lists available Anthropic models for enrichment.
var AnthropicModels = []string{
	"claude-3-haiku-20240307",    // Fast and cheap, good for bulk enrichment
	"claude-3-5-haiku-20241022",  // Newer haiku version
	"claude-3-5-sonnet-20241022", // Better quality, more expensive
}

// DefaultAnthropicModel is the default enrichment model.
const DefaultAnthropicModel = "claude-3-5-haiku-20241022"

// AnthropicClientInterface defines the interface for the Anthropic API
// client. This allows for mocking in tests.
type AnthropicClientInterface interface {
	CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// anthropicClientWrapper wraps the real Anthropic client.
type anthropicClientWrapper struct {
	client anthropic.Client
}

func (w *anthropicClientWrapper) CreateMessage(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return w.client.Messages.New(ctx, params)
}

// AnthropicGenerator produces structured linguistic data via the
// Anthropic API. It is text-only: image and audio requests return
// ErrUnsupportedCapability.
type AnthropicGenerator struct {
	client AnthropicClientInterface
	model  string
}

// NewAnthropicGenerator creates an Anthropic-backed generator.
func NewAnthropicGenerator(apiKey, model string) (*AnthropicGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultAnthropicModel
	}
	if !isValidAnthropicModel(model) {
		return nil, fmt.Errorf("invalid Anthropic model: %s", model)
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	return &AnthropicGenerator{
		client: &anthropicClientWrapper{client: client},
		model:  model,
	}, nil
}

// NewAnthropicGeneratorWithClient creates a generator with a custom
// client. This is useful for testing.
func NewAnthropicGeneratorWithClient(client AnthropicClientInterface, model string) *AnthropicGenerator {
	if model == "" {
		model = DefaultAnthropicModel
	}
	return &AnthropicGenerator{client: client, model: model}
}

func isValidAnthropicModel(model string) bool {
	for _, m := range AnthropicModels {
		if m == model {
			return true
		}
	}
	return false
}

// Generate returns structured linguistic data for a term.
func (g *AnthropicGenerator) Generate(ctx context.Context, term, languageName string) (*models.GenerationResult, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: 4096,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(term, languageName))),
		},
	}

	msg, err := g.client.CreateMessage(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic generate: %w", err)
	}

	// Check the Type field directly to support both real API responses
	// and mock responses in tests.
	var content string
	for _, block := range msg.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return parseResult(content)
}

// GenerateImage is not supported by the Anthropic provider.
func (g *AnthropicGenerator) GenerateImage(ctx context.Context, term string) (string, error) {
	return "", fmt.Errorf("%w: anthropic has no image generation", ErrUnsupportedCapability)
}

// GenerateAudio is not supported by the Anthropic provider.
func (g *AnthropicGenerator) GenerateAudio(ctx context.Context, text, voice, style string) (string, error) {
	return "", fmt.Errorf("%w: anthropic has no speech synthesis", ErrUnsupportedCapability)
}

// Name returns the provider name.
func (g *AnthropicGenerator) Name() string {
	return string(ProviderAnthropic)
}
