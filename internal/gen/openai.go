package gen

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vocab-forge/vocabforge/internal/models"
)

// OpenAIModels lists available OpenAI chat models for enrichment.
var OpenAIModels = []string{
	openai.GPT4oMini,
	openai.GPT4o,
	openai.GPT4Turbo,
}

// DefaultOpenAIModel is the default enrichment model.
const DefaultOpenAIModel = openai.GPT4oMini

// OpenAIClientInterface defines the subset of the OpenAI client the
// generator needs. This allows for mocking in tests.
type OpenAIClientInterface interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
	CreateSpeech(ctx context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error)
}

// OpenAIGenerator serves all three capabilities through the OpenAI API:
// chat for linguistic data, DALL-E for images, TTS for audio.
type OpenAIGenerator struct {
	client OpenAIClientInterface
	model  string
}

// NewOpenAIGenerator creates an OpenAI-backed generator.
func NewOpenAIGenerator(apiKey, model string) (*OpenAIGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}

	config := openai.DefaultConfig(apiKey)
	client := openai.NewClientWithConfig(config)

	return &OpenAIGenerator{client: client, model: model}, nil
}

// NewOpenAIGeneratorWithClient creates a generator with a custom
// client. This is useful for testing.
func NewOpenAIGeneratorWithClient(client OpenAIClientInterface, model string) *OpenAIGenerator {
	if model == "" {
		model = DefaultOpenAIModel
	}
	return &OpenAIGenerator{client: client, model: model}
}

// Generate returns structured linguistic data for a term.
func (g *OpenAIGenerator) Generate(ctx context.Context, term, languageName string) (*models.GenerationResult, error) {
	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(term, languageName)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai generate: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai generate: no choices returned")
	}

	return parseResult(resp.Choices[0].Message.Content)
}

// GenerateImage returns a DALL-E image for the term as a PNG data URI.
func (g *OpenAIGenerator) GenerateImage(ctx context.Context, term string) (string, error) {
	req := openai.ImageRequest{
		Prompt:         fmt.Sprintf("A clear, friendly illustration of %q for a vocabulary flashcard. Simple background, no text.", term),
		Model:          openai.CreateImageModelDallE3,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	}

	resp, err := g.client.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", fmt.Errorf("openai image: no image returned")
	}

	return "data:image/png;base64," + resp.Data[0].B64JSON, nil
}

// GenerateAudio returns synthesized speech as an MP3 data URI. The
// style hint is not supported by the TTS endpoint and is ignored.
func (g *OpenAIGenerator) GenerateAudio(ctx context.Context, text, voice, style string) (string, error) {
	req := openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: mapVoice(voice),
	}

	resp, err := g.client.CreateSpeech(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai speech: %w", err)
	}
	defer func() { _ = resp.Close() }()

	data, err := io.ReadAll(resp)
	if err != nil {
		return "", fmt.Errorf("openai speech: read audio: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("openai speech: no audio returned")
	}

	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(data), nil
}

// mapVoice maps a requested voice name onto an available TTS voice,
// defaulting to alloy for unknown names.
func mapVoice(voice string) openai.SpeechVoice {
	switch strings.ToLower(voice) {
	case "alloy":
		return openai.VoiceAlloy
	case "echo":
		return openai.VoiceEcho
	case "fable":
		return openai.VoiceFable
	case "onyx":
		return openai.VoiceOnyx
	case "nova":
		return openai.VoiceNova
	case "shimmer":
		return openai.VoiceShimmer
	default:
		return openai.VoiceAlloy
	}
}

// Name returns the provider name.
func (g *OpenAIGenerator) Name() string {
	return string(ProviderOpenAI)
}
