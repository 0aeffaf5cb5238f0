package config

import "time"

// ScannerConfig controls the fetch pass over seed resources.
type ScannerConfig struct {
	// Concurrency is the number of seeds fetched at once. 1 fetches sequentially.
	Concurrency int `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"omitempty,min=1,max=256"`
	// FetchTimeoutSecs bounds each individual fetch.
	FetchTimeoutSecs int `json:"fetch_timeout_secs,omitempty" yaml:"fetch_timeout_secs,omitempty" validate:"omitempty,min=1,max=600"`
	// BaseURL is used to resolve root-relative seeds into fetchable URLs.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" validate:"omitempty,absurl"`
}

// NewDefaultScannerConfig creates default scanner configuration
func NewDefaultScannerConfig() ScannerConfig {
	return ScannerConfig{
		Concurrency:      DefaultScannerConcurrency,
		FetchTimeoutSecs: DefaultScannerFetchTimeoutSecs,
	}
}

// GetFetchTimeout returns the per-fetch timeout as time.Duration
func (sc ScannerConfig) GetFetchTimeout() time.Duration {
	if sc.FetchTimeoutSecs <= 0 {
		return DefaultScannerFetchTimeoutSecs * time.Second
	}
	return time.Duration(sc.FetchTimeoutSecs) * time.Second
}

// GetConcurrency returns the worker count, never less than 1.
func (sc ScannerConfig) GetConcurrency() int {
	if sc.Concurrency < 1 {
		return 1
	}
	return sc.Concurrency
}
