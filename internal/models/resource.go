package models

import "time"

// ResourceRef identifies a fetchable resource, either an absolute URL or a
// root-relative path. Two refs are the same resource only when the strings are equal.
type ResourceRef string

func (r ResourceRef) String() string {
	return string(r)
}

// FetchResult holds the outcome of retrieving one resource.
// HasBody distinguishes an empty 2xx body from a failed fetch.
type FetchResult struct {
	Source      ResourceRef   `json:"source"`
	Body        string        `json:"-"`
	HasBody     bool          `json:"has_body"`
	ContentType string        `json:"content_type,omitempty"`
	StatusCode  int           `json:"status_code,omitempty"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration"`
}

// Succeeded reports whether the fetch produced a body to scan.
func (r FetchResult) Succeeded() bool {
	return r.HasBody && r.Error == ""
}

// ResourceState is the per-resource outcome recorded in a report.
type ResourceState string

const (
	ResourceFetched ResourceState = "fetched"
	ResourceFailed  ResourceState = "failed"
	ResourceSkipped ResourceState = "skipped"
)

// ResourceStatus summarizes one seed resource in the final report.
type ResourceStatus struct {
	Source     ResourceRef   `json:"source"`
	State      ResourceState `json:"state"`
	StatusCode int           `json:"status_code,omitempty"`
	PathsFound int           `json:"paths_found"`
	Error      string        `json:"error,omitempty"`
	DurationMs int64         `json:"duration_ms"`
}

// ResourceStatusFromResult converts a fetch result into its report form.
func ResourceStatusFromResult(result FetchResult, pathsFound int) ResourceStatus {
	state := ResourceFetched
	if !result.Succeeded() {
		state = ResourceFailed
	}
	return ResourceStatus{
		Source:     result.Source,
		State:      state,
		StatusCode: result.StatusCode,
		PathsFound: pathsFound,
		Error:      result.Error,
		DurationMs: result.Duration.Milliseconds(),
	}
}
