package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// BaseURL is the server root, e.g. "http://localhost:8080".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`
	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// Token is a bearer token reused between CLI invocations.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the configuration of the command-line client.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig loads the client configuration from a local .env file and
// the environment, then applies defaults. Command-line arguments belong to
// the client itself and are not parsed here.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withDotEnv()
	if b.err != nil {
		return nil, b.err
	}

	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 10 * time.Second
	}

	return cfg, cfg.validate()
}
