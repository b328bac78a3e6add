package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultEndpoint         = "https://www.googleapis.com/customsearch/v1"
	DefaultTimeout          = 15 * time.Second
	DefaultPollInterval     = 50 * time.Millisecond
	DefaultSeparatorRows    = 1
	DefaultLogLevel         = "info"
	DefaultUpdateRepository = "nyekis/termsearch"
)

var (
	// ErrMissingAPIKey is returned by Validate when no API key was configured.
	ErrMissingAPIKey = errors.New("missing Google API key: pass --api-key or set GOOGLE_API_KEY")
	// ErrMissingCX is returned by Validate when no search engine ID was configured.
	ErrMissingCX = errors.New("missing Google search engine ID: pass --cx or set GOOGLE_CX")
)

// GetDefaultConfig returns the built-in configuration layer.
// Credentials are deliberately empty; they must come from a file, the
// environment or flags.
func GetDefaultConfig() TermsearchConfig {
	separators := DefaultSeparatorRows
	return TermsearchConfig{
		Search: SearchConfig{
			Endpoint: DefaultEndpoint,
			Timeout:  DefaultTimeout,
		},
		UI: UIConfig{
			PollInterval:  DefaultPollInterval,
			SeparatorRows: &separators,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Update: UpdateConfig{
			Repository: DefaultUpdateRepository,
		},
	}
}

// Validate checks that the configuration can drive a search.
func (c TermsearchConfig) Validate() error {
	if c.Search.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.Search.CX == "" {
		return ErrMissingCX
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("search timeout must be >= 0 (got %s)", c.Search.Timeout)
	}
	if c.UI.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be > 0 (got %s)", c.UI.PollInterval)
	}
	if c.UI.Separators() < 0 {
		return fmt.Errorf("separator rows must be >= 0 (got %d)", c.UI.Separators())
	}
	return nil
}
