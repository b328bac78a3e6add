package config

import (
	"time"
)

// TermsearchConfig is the top-level configuration structure for termsearch.
type TermsearchConfig struct {
	Search  SearchConfig  `yaml:"search"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
	Update  UpdateConfig  `yaml:"update"`
}

// SearchConfig holds everything the search client and executor need.
type SearchConfig struct {
	APIKey   string        `yaml:"apiKey,omitempty"`   // Google Custom Search JSON API key
	CX       string        `yaml:"cx,omitempty"`       // Programmable Search Engine ID
	Safe     bool          `yaml:"safe,omitempty"`     // safe=active when true
	Endpoint string        `yaml:"endpoint,omitempty"` // Custom Search endpoint, overridable for testing
	Timeout  time.Duration `yaml:"timeout,omitempty"`  // whole-request timeout, the only bound on a hung request
}

// UIConfig tunes the render/input loop.
type UIConfig struct {
	// PollInterval bounds how long the loop waits for input before it
	// re-reads the search outcome.
	PollInterval time.Duration `yaml:"pollInterval,omitempty"`
	// SeparatorRows is the number of blank rows drawn between two results.
	SeparatorRows *int `yaml:"separatorRows,omitempty"`
}

// LoggingConfig controls where diagnostics go while the TUI owns the terminal.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
	File  string `yaml:"file,omitempty"`
}

// UpdateConfig configures the self-update command.
type UpdateConfig struct {
	Repository string `yaml:"repository,omitempty"` // GitHub owner/name slug
}

// Separators returns the configured separator row count.
func (u UIConfig) Separators() int {
	if u.SeparatorRows == nil {
		return DefaultSeparatorRows
	}
	return *u.SeparatorRows
}
