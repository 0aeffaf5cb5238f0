package scanner

import (
	"testing"

	"github.com/aleister1102/pathscan/internal/classifier"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregate_Counts(t *testing.T) {
	candidates := []string{"/a.js", "/api/users", "/x"}
	input := AggregateInput{
		ScanID:      "20260101-000000",
		GeneratedAt: "2026-01-01T00:00:00Z",
		Candidates:  candidates,
		Classified:  classifier.Categorize(candidates),
		URLs:        models.ParsedURLSet{Paths: []string{"/p"}, Params: []string{"a=1", "b="}, Domains: []string{"example.com"}},
		PageURLs:    []string{"https://example.com/p?a=1&b"},
		Resources: []models.ResourceStatus{
			{Source: "a", State: models.ResourceFetched},
			{Source: "b", State: models.ResourceFailed},
			{Source: "c", State: models.ResourceSkipped},
		},
		SeedCount: 3,
	}

	report := Aggregate(input)

	assert.Equal(t, models.ReportCounts{
		TotalPaths:       3,
		StaticPaths:      1,
		APIPaths:         1,
		OtherPaths:       1,
		URLPaths:         1,
		URLParams:        2,
		URLDomains:       1,
		Resources:        3,
		PageURLs:         1,
		FetchedResources: 1,
		FailedResources:  1,
		SkippedResources: 1,
	}, report.Counts)
	assert.Equal(t, "20260101-000000", report.ScanID)
	assert.Equal(t, report, Aggregate(input))
}

func TestAggregate_EmptyInputHasNonNilLists(t *testing.T) {
	report := Aggregate(AggregateInput{})
	assert.NotNil(t, report.Paths)
	assert.NotNil(t, report.StaticPaths)
	assert.NotNil(t, report.URLDomains)
	assert.NotNil(t, report.Resources)
	assert.Zero(t, report.Counts.TotalPaths)
}

func TestAggregate_DoesNotAliasInput(t *testing.T) {
	candidates := []string{"/a"}
	report := Aggregate(AggregateInput{Candidates: candidates})
	candidates[0] = "/changed"
	assert.Equal(t, []string{"/a"}, report.Paths)
}
