package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),

		Remote: RemoteConfig{
			RateLimit:      60,
			TimeoutSeconds: 30,
		},

		Gen: DefaultGenConfig(),
	}
}
