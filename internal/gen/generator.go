// Package gen provides the generation capability: structured linguistic
// data, images, and audio for vocabulary terms, via an HTTP gateway or
// direct LLM providers.
package gen

import (
	"context"
	"errors"
	"fmt"

	"github.com/vocab-forge/vocabforge/internal/config"
	"github.com/vocab-forge/vocabforge/internal/models"
)

// ErrUnsupportedCapability is returned when a provider cannot serve a
// media type (e.g. text-only providers asked for images or audio).
var ErrUnsupportedCapability = errors.New("capability not supported by provider")

// Generator is the opaque generation capability. Every call is
// all-or-nothing: on error no partial fields are returned.
type Generator interface {
	// Generate returns structured linguistic data for a term in the
	// given language (display name, e.g. "Spanish").
	Generate(ctx context.Context, term, languageName string) (*models.GenerationResult, error)

	// GenerateImage returns an illustrative image for the term as a
	// data URI blob reference.
	GenerateImage(ctx context.Context, term string) (string, error)

	// GenerateAudio returns synthesized speech for the text as a data
	// URI blob reference.
	GenerateAudio(ctx context.Context, text, voice, style string) (string, error)

	// Name returns the provider name (e.g. "gateway", "openai").
	Name() string
}

// ProviderType represents supported generation providers.
type ProviderType string

const (
	ProviderGateway   ProviderType = "gateway"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
)

// NewGenerator creates a generator based on configuration,
// auto-detecting the provider if not explicitly set.
func NewGenerator(cfg config.GenConfig) (Generator, error) {
	providerName := cfg.DefaultProvider
	if providerName == "" {
		providerName = detectProvider(cfg)
	}
	if providerName == "" {
		return nil, fmt.Errorf("no generation provider configured: set VOCABFORGE_AI_URL, ANTHROPIC_API_KEY, or OPENAI_API_KEY")
	}

	switch ProviderType(providerName) {
	case ProviderGateway:
		if cfg.GatewayURL == "" {
			return nil, fmt.Errorf("VOCABFORGE_AI_URL not set")
		}
		return NewGatewayGenerator(cfg.GatewayURL), nil

	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
		return NewAnthropicGenerator(cfg.AnthropicAPIKey, cfg.DefaultModel)

	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY not set")
		}
		return NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.DefaultModel)

	default:
		return nil, fmt.Errorf("unknown generation provider: %s", providerName)
	}
}

// detectProvider picks a provider from what is configured, preferring
// the gateway since it serves all three capabilities.
func detectProvider(cfg config.GenConfig) string {
	switch {
	case cfg.GatewayURL != "":
		return string(ProviderGateway)
	case cfg.AnthropicAPIKey != "":
		return string(ProviderAnthropic)
	case cfg.OpenAIAPIKey != "":
		return string(ProviderOpenAI)
	}
	return ""
}
