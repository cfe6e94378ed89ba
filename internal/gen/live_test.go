package gen

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocab-forge/vocabforge/internal/testutil"
)

// Live provider tests hit real paid APIs; gated behind RUN_AI_TESTS.

func TestAnthropicGenerator_Live(t *testing.T) {
	testutil.SkipAITests(t)

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		t.Skip("ANTHROPIC_API_KEY not set - skipping live test")
	}

	g, err := NewAnthropicGenerator(apiKey, "")
	require.NoError(t, err)

	result, err := g.Generate(context.Background(), "perro", "Spanish")
	require.NoError(t, err)

	assert.NotEmpty(t, result.PartOfSpeech)
	assert.NotEmpty(t, result.Translations["en"])
	assert.NotEmpty(t, result.ExampleSentence)
}

func TestOpenAIGenerator_Live(t *testing.T) {
	testutil.SkipAITests(t)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY not set - skipping live test")
	}

	g, err := NewOpenAIGenerator(apiKey, "")
	require.NoError(t, err)

	result, err := g.Generate(context.Background(), "perro", "Spanish")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Translations["en"])
	assert.NotEmpty(t, result.ExampleSentence)
}
