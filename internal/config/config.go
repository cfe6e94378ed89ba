// Package config handles application configuration management.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all VocabForge data
	BaseDir string

	// Remote persistence API settings
	Remote RemoteConfig

	// Generation capability settings
	Gen GenConfig
}

// RemoteConfig holds settings for the remote persistence API.
type RemoteConfig struct {
	// BaseURL of the persistence server (empty = offline-only mode
	// against the local cache).
	BaseURL string
	// RateLimit in requests per minute.
	RateLimit int
	// TimeoutSeconds for a single request.
	TimeoutSeconds int
}

// GenConfig holds generation capability configuration.
type GenConfig struct {
	// GatewayURL points at an AI gateway exposing the generation
	// endpoints. When set it takes precedence over direct providers.
	GatewayURL string

	// API keys for direct LLM providers
	AnthropicAPIKey string
	OpenAIAPIKey    string

	// Default provider: "gateway", "anthropic", "openai" (auto-detected if empty)
	DefaultProvider string
	// Default model (provider-specific, uses sensible default if empty)
	DefaultModel string

	// Audio generation defaults
	Voice string
	Style string
}

// DefaultGenConfig returns sensible defaults for generation configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		DefaultProvider: "", // Auto-detect: gateway > anthropic > openai
		DefaultModel:    "",
		Voice:           "Kore",
		Style:           "Natural",
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("VOCABFORGE_HOME"); dir != "" {
		cfg.BaseDir = dir
	}

	if url := os.Getenv("VOCABFORGE_REMOTE_URL"); url != "" {
		cfg.Remote.BaseURL = url
	}
	if limit := os.Getenv("VOCABFORGE_REMOTE_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil && n > 0 {
			cfg.Remote.RateLimit = n
		}
	}

	if url := os.Getenv("VOCABFORGE_AI_URL"); url != "" {
		cfg.Gen.GatewayURL = url
	}
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.Gen.AnthropicAPIKey = apiKey
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.Gen.OpenAIAPIKey = apiKey
	}
	if provider := os.Getenv("VOCABFORGE_AI_PROVIDER"); provider != "" {
		cfg.Gen.DefaultProvider = provider
	}
	if model := os.Getenv("VOCABFORGE_AI_MODEL"); model != "" {
		cfg.Gen.DefaultModel = model
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	dirs := []string{
		cfg.BaseDir,
		GetPaths(cfg).Logs,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}
