package gen

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOpenAIClient implements OpenAIClientInterface for testing.
type mockOpenAIClient struct {
	chatResponse  openai.ChatCompletionResponse
	chatError     error
	imageResponse openai.ImageResponse
	imageError    error
	speechData    []byte
	speechError   error

	lastChatRequest openai.ChatCompletionRequest
}

func (m *mockOpenAIClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	m.lastChatRequest = req
	return m.chatResponse, m.chatError
}

func (m *mockOpenAIClient) CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error) {
	return m.imageResponse, m.imageError
}

func (m *mockOpenAIClient) CreateSpeech(ctx context.Context, req openai.CreateSpeechRequest) (openai.RawResponse, error) {
	if m.speechError != nil {
		return openai.RawResponse{}, m.speechError
	}
	return openai.RawResponse{ReadCloser: io.NopCloser(bytes.NewReader(m.speechData))}, nil
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	mockClient := &mockOpenAIClient{
		chatResponse: openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Content: sampleResponse}},
			},
		},
	}

	g := NewOpenAIGeneratorWithClient(mockClient, "")
	result, err := g.Generate(context.Background(), "犬", "Japanese")
	require.NoError(t, err)

	assert.Equal(t, "dog", result.Translations["en"])
	assert.Equal(t, DefaultOpenAIModel, mockClient.lastChatRequest.Model)
	require.NotNil(t, mockClient.lastChatRequest.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject,
		mockClient.lastChatRequest.ResponseFormat.Type)
}

func TestOpenAIGenerator_NoChoices(t *testing.T) {
	g := NewOpenAIGeneratorWithClient(&mockOpenAIClient{}, "")

	_, err := g.Generate(context.Background(), "犬", "Japanese")
	assert.Error(t, err)
}

func TestOpenAIGenerator_GenerateImage(t *testing.T) {
	mockClient := &mockOpenAIClient{
		imageResponse: openai.ImageResponse{
			Data: []openai.ImageResponseDataInner{{B64JSON: "QUFBQQ=="}},
		},
	}

	g := NewOpenAIGeneratorWithClient(mockClient, "")
	url, err := g.GenerateImage(context.Background(), "犬")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,QUFBQQ==", url)
}

func TestOpenAIGenerator_GenerateAudio(t *testing.T) {
	audio := []byte("fake-mp3-bytes")
	g := NewOpenAIGeneratorWithClient(&mockOpenAIClient{speechData: audio}, "")

	url, err := g.GenerateAudio(context.Background(), "犬が走る。", "nova", "Natural")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(url, "data:audio/mpeg;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:audio/mpeg;base64,"))
	require.NoError(t, err)
	assert.Equal(t, audio, decoded)
}

func TestMapVoice(t *testing.T) {
	assert.Equal(t, openai.VoiceNova, mapVoice("Nova"))
	assert.Equal(t, openai.VoiceShimmer, mapVoice("shimmer"))
	// Unknown voices fall back instead of failing the synthesis call.
	assert.Equal(t, openai.VoiceAlloy, mapVoice("Kore"))
	assert.Equal(t, openai.VoiceAlloy, mapVoice(""))
}
