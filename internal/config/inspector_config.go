package config

// InspectorConfig controls how seeds and page URLs are harvested from a live page.
type InspectorConfig struct {
	RequestTimeoutSecs int                   `json:"request_timeout_secs,omitempty" yaml:"request_timeout_secs,omitempty" validate:"omitempty,min=1"`
	UserAgent          string                `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	Headless           HeadlessBrowserConfig `json:"headless,omitempty" yaml:"headless,omitempty"`
}

// HeadlessBrowserConfig configures the Chrome instance used by the headless inspector.
type HeadlessBrowserConfig struct {
	Enabled             bool     `json:"enabled" yaml:"enabled"`
	ChromePath          string   `json:"chrome_path,omitempty" yaml:"chrome_path,omitempty"`
	WindowWidth         int      `json:"window_width,omitempty" yaml:"window_width,omitempty" validate:"omitempty,min=100"`
	WindowHeight        int      `json:"window_height,omitempty" yaml:"window_height,omitempty" validate:"omitempty,min=100"`
	PageLoadTimeoutSecs int      `json:"page_load_timeout_secs,omitempty" yaml:"page_load_timeout_secs,omitempty" validate:"omitempty,min=1"`
	WaitAfterLoadMs     int      `json:"wait_after_load_ms,omitempty" yaml:"wait_after_load_ms,omitempty" validate:"omitempty,min=0"`
	IgnoreHTTPSErrors   bool     `json:"ignore_https_errors" yaml:"ignore_https_errors"`
	BrowserArgs         []string `json:"browser_args,omitempty" yaml:"browser_args,omitempty"`
}

// NewDefaultInspectorConfig creates default inspector configuration
func NewDefaultInspectorConfig() InspectorConfig {
	return InspectorConfig{
		RequestTimeoutSecs: DefaultInspectorRequestTimeoutSecs,
		UserAgent:          DefaultHTTPUserAgent,
		Headless:           NewDefaultHeadlessBrowserConfig(),
	}
}

// NewDefaultHeadlessBrowserConfig creates default headless browser configuration
func NewDefaultHeadlessBrowserConfig() HeadlessBrowserConfig {
	return HeadlessBrowserConfig{
		Enabled:             false,
		WindowWidth:         1920,
		WindowHeight:        1080,
		PageLoadTimeoutSecs: DefaultHeadlessPageLoadTimeoutSecs,
		WaitAfterLoadMs:     DefaultHeadlessWaitAfterLoadMs,
		IgnoreHTTPSErrors:   true,
		BrowserArgs:         []string{"no-sandbox", "disable-dev-shm-usage", "disable-gpu"},
	}
}
