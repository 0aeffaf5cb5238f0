package config

import "time"

// ProgressConfig contains configuration for progress display
type ProgressConfig struct {
	// DisplayInterval is how often to redraw the progress line (in seconds)
	DisplayInterval int `json:"display_interval,omitempty" yaml:"display_interval,omitempty" validate:"omitempty,min=1,max=60"`

	// EnableProgress enables or disables progress display
	EnableProgress bool `json:"enable_progress" yaml:"enable_progress"`

	// ShowETAEstimation enables or disables ETA calculation and display
	ShowETAEstimation bool `json:"show_eta_estimation" yaml:"show_eta_estimation"`
}

// NewDefaultProgressConfig creates a new ProgressConfig with default values
func NewDefaultProgressConfig() ProgressConfig {
	return ProgressConfig{
		DisplayInterval:   DefaultProgressDisplayInterval,
		EnableProgress:    true,
		ShowETAEstimation: true,
	}
}

// GetDisplayIntervalDuration returns the display interval as time.Duration
func (pc ProgressConfig) GetDisplayIntervalDuration() time.Duration {
	if pc.DisplayInterval <= 0 {
		return DefaultProgressDisplayInterval * time.Second
	}
	return time.Duration(pc.DisplayInterval) * time.Second
}
