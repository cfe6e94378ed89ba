package gen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// GatewayGenerator calls an AI gateway exposing the generation
// endpoints over JSON/HTTP. It is the only provider that serves all
// three capabilities.
type GatewayGenerator struct {
	baseURL    string
	httpClient *http.Client
}

// NewGatewayGenerator creates a gateway-backed generator.
func NewGatewayGenerator(baseURL string) *GatewayGenerator {
	return &GatewayGenerator{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			// Generation calls are slow; persistence timeouts don't apply here.
			Timeout: 120 * time.Second,
		},
	}
}

// post performs one JSON round trip against a generation endpoint.
func (g *GatewayGenerator) post(ctx context.Context, path string, in, out interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("generation gateway: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			return fmt.Errorf("generation gateway: %s (status %d)", envelope.Error, resp.StatusCode)
		}
		return fmt.Errorf("generation gateway: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return fmt.Errorf("generation gateway: empty response")
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Generate returns structured linguistic data for a term.
func (g *GatewayGenerator) Generate(ctx context.Context, term, languageName string) (*models.GenerationResult, error) {
	payload := map[string]string{"term": term, "lang": languageName}
	var result models.GenerationResult
	if err := g.post(ctx, "/ai/generate/vocab", payload, &result); err != nil {
		return nil, err
	}
	if result.Translations == nil {
		result.Translations = models.TranslationMap{}
	}
	if result.ExampleTranslations == nil {
		result.ExampleTranslations = models.TranslationMap{}
	}
	return &result, nil
}

// GenerateImage returns an image data URI for the term.
func (g *GatewayGenerator) GenerateImage(ctx context.Context, term string) (string, error) {
	payload := map[string]string{"term": term}
	var result struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := g.post(ctx, "/ai/generate/image", payload, &result); err != nil {
		return "", err
	}
	if result.ImageURL == "" {
		return "", fmt.Errorf("generation gateway: no image returned")
	}
	return result.ImageURL, nil
}

// GenerateAudio returns synthesized speech as a data URI.
func (g *GatewayGenerator) GenerateAudio(ctx context.Context, text, voice, style string) (string, error) {
	payload := map[string]string{"text": text, "voice": voice, "style": style}
	var result struct {
		AudioURL string `json:"audioUrl"`
	}
	if err := g.post(ctx, "/ai/generate/audio", payload, &result); err != nil {
		return "", err
	}
	if result.AudioURL == "" {
		return "", fmt.Errorf("generation gateway: no audio returned")
	}
	return result.AudioURL, nil
}

// Name returns the provider name.
func (g *GatewayGenerator) Name() string {
	return string(ProviderGateway)
}
