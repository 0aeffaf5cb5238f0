package config

const (
	// Scanner Defaults
	DefaultScannerConcurrency      = 1
	DefaultScannerFetchTimeoutSecs = 5

	// Extractor Defaults
	DefaultExtractorMaxContentSize = 10 * 1024 * 1024
	DefaultExtractorEnableJSluice  = false

	// HTTP Client Defaults
	DefaultHTTPUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultHTTPTimeoutSecs     = 30
	DefaultHTTPMaxRedirects    = 10
	DefaultHTTPMaxContentSize  = 20 * 1024 * 1024
	DefaultHTTPRetryBaseMillis = 500
	DefaultHTTPRetryMaxMillis  = 5000

	// Inspector Defaults
	DefaultInspectorRequestTimeoutSecs = 20
	DefaultHeadlessPageLoadTimeoutSecs = 30
	DefaultHeadlessWaitAfterLoadMs     = 1000

	// Reporter Defaults
	DefaultReporterOutputDir   = "reports"
	DefaultReporterReportTitle = "pathscan report"

	// Progress Defaults
	DefaultProgressDisplayInterval = 1

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv overrides the config file location.
	ConfigPathEnv = "PATHSCAN_CONFIG_PATH"
)

// Report formats accepted by reporter_config.formats.
const (
	ReportFormatText = "text"
	ReportFormatJSON = "json"
	ReportFormatHTML = "html"
)
