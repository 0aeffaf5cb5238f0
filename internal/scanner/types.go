package scanner

import (
	"github.com/aleister1102/pathscan/internal/httpclient"
	"github.com/aleister1102/pathscan/internal/models"
)

// Fetcher retrieves the body of a single resource.
// *httpclient.HTTPClient satisfies it.
type Fetcher interface {
	FetchContent(input httpclient.FetchContentInput) (*httpclient.FetchContentResult, error)
}

// ProgressFunc receives one event per finished resource. Calls are serialized.
type ProgressFunc func(models.ProgressEvent)

// AggregateInput carries everything the aggregator needs to build a report.
type AggregateInput struct {
	ScanID      string
	GeneratedAt string
	Candidates  []string
	Classified  models.CategorizedPaths
	URLs        models.ParsedURLSet
	PageURLs    []string
	Resources   []models.ResourceStatus
	SeedCount   int
}
