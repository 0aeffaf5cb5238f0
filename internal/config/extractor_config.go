package config

// ExtractorConfig defines configuration for path extraction
type ExtractorConfig struct {
	// CustomRegexes add extra patterns next to the quoted-literal scan.
	// The first capture group is used when present.
	CustomRegexes []string `json:"custom_regexes,omitempty" yaml:"custom_regexes,omitempty"`
	// Denylist drops any candidate path matching one of these patterns.
	Denylist []string `json:"denylist,omitempty" yaml:"denylist,omitempty"`
	// EnableJSluice runs the jsluice syntax-tree pass on JavaScript resources.
	EnableJSluice bool `json:"enable_jsluice" yaml:"enable_jsluice"`
	// MaxContentSize truncates bodies before scanning, 0 for no limit.
	MaxContentSize int `json:"max_content_size,omitempty" yaml:"max_content_size,omitempty" validate:"omitempty,min=0"`
}

// NewDefaultExtractorConfig creates default extractor configuration
func NewDefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		CustomRegexes:  []string{},
		Denylist:       []string{},
		EnableJSluice:  DefaultExtractorEnableJSluice,
		MaxContentSize: DefaultExtractorMaxContentSize,
	}
}
