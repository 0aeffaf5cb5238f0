package scanner

import "github.com/aleister1102/pathscan/internal/models"

// Aggregate combines the extraction and URL analysis streams into a report.
// It has no side effects; the same input always yields the same report.
func Aggregate(input AggregateInput) *models.ScanReport {
	report := &models.ScanReport{
		ScanID:      input.ScanID,
		GeneratedAt: input.GeneratedAt,
		Paths:       nonNil(input.Candidates),
		StaticPaths: nonNil(input.Classified.Static),
		APIPaths:    nonNil(input.Classified.API),
		OtherPaths:  nonNil(input.Classified.Other),
		URLPaths:    nonNil(input.URLs.Paths),
		URLParams:   nonNil(input.URLs.Params),
		URLDomains:  nonNil(input.URLs.Domains),
		PageURLs:    nonNil(input.PageURLs),
		Resources:   input.Resources,
	}
	if report.Resources == nil {
		report.Resources = []models.ResourceStatus{}
	}

	report.Counts = models.ReportCounts{
		TotalPaths:  len(report.Paths),
		StaticPaths: len(report.StaticPaths),
		APIPaths:    len(report.APIPaths),
		OtherPaths:  len(report.OtherPaths),
		URLPaths:    len(report.URLPaths),
		URLParams:   len(report.URLParams),
		URLDomains:  len(report.URLDomains),
		Resources:   input.SeedCount,
		PageURLs:    len(report.PageURLs),
	}
	for _, r := range report.Resources {
		switch r.State {
		case models.ResourceFetched:
			report.Counts.FetchedResources++
		case models.ResourceFailed:
			report.Counts.FailedResources++
		case models.ResourceSkipped:
			report.Counts.SkippedResources++
		}
	}
	return report
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	out := make([]string, len(items))
	copy(out, items)
	return out
}
