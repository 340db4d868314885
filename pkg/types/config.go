// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// AnalyzerConfig holds settings for the analysis boundary.
type AnalyzerConfig struct {
	// MaxInputChars caps the analyzed text length. Longer input is
	// truncated before the engine runs (default 1000).
	MaxInputChars int `json:"max_input_chars" yaml:"max_input_chars"`

	// SourceSeed seeds the synthetic source generator. Zero means seed
	// from the current time; any other value makes source output
	// reproducible.
	SourceSeed int64 `json:"source_seed,omitempty" yaml:"source_seed,omitempty"`

	// DisableSources turns off synthetic source generation entirely.
	DisableSources bool `json:"disable_sources" yaml:"disable_sources"`
}

// MaxChars returns the configured input cap, or the 1000-character default.
func (c AnalyzerConfig) MaxChars() int {
	if c.MaxInputChars <= 0 {
		return 1000
	}
	return c.MaxInputChars
}

// HistoryConfig holds settings for the history store.
type HistoryConfig struct {
	// Dir is the directory holding the history database.
	Dir string `json:"dir" yaml:"dir"`

	// MaxRecords is the per-user retention cap (default 50).
	MaxRecords int `json:"max_records" yaml:"max_records"`
}

// IdentityConfig holds settings for the session loader.
type IdentityConfig struct {
	// SessionDir is the directory of plain-text session files (default
	// ~/.config/originality/session).
	SessionDir string `json:"session_dir" yaml:"session_dir"`
}

// ServerConfig holds settings for the HTTP surface.
type ServerConfig struct {
	// Port is the listen port (default 8080).
	Port int `json:"port" yaml:"port"`

	// ReadTimeout is the HTTP read timeout (default 30s).
	ReadTimeout time.Duration `json:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the HTTP write timeout (default 30s).
	WriteTimeout time.Duration `json:"write_timeout" yaml:"write_timeout"`

	// MaxRequestBody caps the request body size in bytes (default 1MB).
	MaxRequestBody int `json:"max_request_body" yaml:"max_request_body"`
}

// AppConfig groups all component configurations.
type AppConfig struct {
	Analyzer AnalyzerConfig `json:"analyzer" yaml:"analyzer"`
	History  HistoryConfig  `json:"history" yaml:"history"`
	Identity IdentityConfig `json:"identity" yaml:"identity"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}
