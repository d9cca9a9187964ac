package m3u8

import (
	"gopkg.in/yaml.v3"
)

// ParserConfig holds configuration for M3U8 parsing
type ParserConfig struct {
	// StrictMode rejects input that lacks the #EXTM3U header. The
	// default is tolerant: real-world manifests are dirty and the
	// parser is best-effort.
	StrictMode bool `json:"strict_mode" yaml:"strict_mode"`

	// CaptureUnknownTags retains bodies of unrecognized #EXT-X-* tags
	// in Playlist.Custom instead of dropping them.
	CaptureUnknownTags bool `json:"capture_unknown_tags" yaml:"capture_unknown_tags"`

	// CustomTagHandlers maps tag names (e.g. "#EXT-X-COM-EXAMPLE") to a
	// description; each named tag is captured into Playlist.Custom.
	// Programmatic handlers go through RegisterTagHandler instead.
	CustomTagHandlers map[string]string `json:"custom_tag_handlers" yaml:"custom_tag_handlers"`
}

// DefaultConfig returns the default parser configuration
func DefaultConfig() *ParserConfig {
	return &ParserConfig{
		StrictMode:         false,
		CaptureUnknownTags: false,
		CustomTagHandlers:  make(map[string]string),
	}
}

// ConfigFromMap creates a parser config from a generic map, applying
// overrides on top of the defaults. Useful when embedding the parser in
// an application with its own configuration layer.
func ConfigFromMap(configMap map[string]any) *ParserConfig {
	config := DefaultConfig()

	if configMap == nil {
		return config
	}

	if strictMode, ok := configMap["strict_mode"].(bool); ok {
		config.StrictMode = strictMode
	}
	if capture, ok := configMap["capture_unknown_tags"].(bool); ok {
		config.CaptureUnknownTags = capture
	}
	if handlers, ok := configMap["custom_tag_handlers"].(map[string]string); ok {
		config.CustomTagHandlers = handlers
	}

	return config
}

// ConfigFromYAML creates a parser config from YAML content, applying
// overrides on top of the defaults.
func ConfigFromYAML(data []byte) (*ParserConfig, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, NewParseError(ErrCodeInvalidFormat, "invalid parser config", err)
	}
	if config.CustomTagHandlers == nil {
		config.CustomTagHandlers = make(map[string]string)
	}
	return config, nil
}
