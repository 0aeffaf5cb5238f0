package models

// ScanStatus is the lifecycle state of a scan. There is no failed state:
// per-resource failures are recorded and the scan still completes.
type ScanStatus string

const (
	ScanStatusIdle      ScanStatus = "IDLE"
	ScanStatusRunning   ScanStatus = "RUNNING"
	ScanStatusCompleted ScanStatus = "COMPLETED"
)

// ReportCounts holds the summary numbers shown alongside a report.
type ReportCounts struct {
	TotalPaths       int `json:"total_paths"`
	StaticPaths      int `json:"static_paths"`
	APIPaths         int `json:"api_paths"`
	OtherPaths       int `json:"other_paths"`
	URLPaths         int `json:"url_paths"`
	URLParams        int `json:"url_params"`
	URLDomains       int `json:"url_domains"`
	Resources        int `json:"resources"`
	PageURLs         int `json:"page_urls"`
	FetchedResources int `json:"fetched_resources"`
	FailedResources  int `json:"failed_resources"`
	SkippedResources int `json:"skipped_resources"`
}

// ScanReport is the immutable result of one scan.
type ScanReport struct {
	ScanID      string           `json:"scan_id"`
	GeneratedAt string           `json:"generated_at"`
	Paths       []string         `json:"paths"`
	StaticPaths []string         `json:"static_paths"`
	APIPaths    []string         `json:"api_paths"`
	OtherPaths  []string         `json:"other_paths"`
	URLPaths    []string         `json:"url_paths"`
	URLParams   []string         `json:"url_params"`
	URLDomains  []string         `json:"url_domains"`
	PageURLs    []string         `json:"page_urls"`
	Resources   []ResourceStatus `json:"resources"`
	Counts      ReportCounts     `json:"counts"`
}

// ListByName returns the report list exported under the given name.
func (r *ScanReport) ListByName(name string) ([]string, bool) {
	switch name {
	case "all":
		return r.Paths, true
	case "static":
		return r.StaticPaths, true
	case "api":
		return r.APIPaths, true
	case "other":
		return r.OtherPaths, true
	case "urls":
		return r.PageURLs, true
	case "url_paths":
		return r.URLPaths, true
	case "url_params":
		return r.URLParams, true
	case "domains":
		return r.URLDomains, true
	}
	return nil, false
}

// ReportListNames lists the exportable report lists in tab order.
var ReportListNames = []string{"all", "static", "api", "other", "urls", "url_paths", "url_params", "domains"}

// ProgressEvent is emitted after each resource finishes.
type ProgressEvent struct {
	Completed int         `json:"completed"`
	Total     int         `json:"total"`
	Current   ResourceRef `json:"current"`
	Failed    bool        `json:"failed"`
}
