package config

// ReporterConfig defines configuration for generating reports
type ReporterConfig struct {
	OutputDir   string   `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	ReportTitle string   `json:"report_title,omitempty" yaml:"report_title,omitempty"`
	Formats     []string `json:"formats,omitempty" yaml:"formats,omitempty" validate:"omitempty,dive,reportformat"`
	// PrintSummary writes the summary table to stdout after a scan.
	PrintSummary bool `json:"print_summary" yaml:"print_summary"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:    DefaultReporterOutputDir,
		ReportTitle:  DefaultReporterReportTitle,
		Formats:      []string{ReportFormatText, ReportFormatJSON, ReportFormatHTML},
		PrintSummary: true,
	}
}

// HasFormat reports whether format is enabled.
func (rc ReporterConfig) HasFormat(format string) bool {
	for _, f := range rc.Formats {
		if f == format {
			return true
		}
	}
	return false
}
