package reporter

const (
	// File naming
	JSONReportFileName = "report.json"
	HTMLReportFileName = "report.html"
	TextFilePrefix     = "paths_"
	// exportTimestampLayout is ISO-8601 UTC with ':' already replaced; see ExportTimestamp.
	exportTimestampLayout = "2006-01-02T15-04-05.000Z"

	DefaultReportTitle = "pathscan report"

	// File permissions
	DirPermissions  = 0o755
	FilePermissions = 0o644
)
