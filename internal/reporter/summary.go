package reporter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aleister1102/pathscan/internal/models"
)

// PrintSummary writes the report counts as an aligned table.
func PrintSummary(w io.Writer, report *models.ScanReport) error {
	c := report.Counts
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := []struct {
		label string
		value int
	}{
		{"Unique paths", c.TotalPaths},
		{"  static", c.StaticPaths},
		{"  api", c.APIPaths},
		{"  other", c.OtherPaths},
		{"Page URLs", c.PageURLs},
		{"URL paths", c.URLPaths},
		{"URL params", c.URLParams},
		{"Domains", c.URLDomains},
		{"Resources", c.Resources},
		{"  fetched", c.FetchedResources},
		{"  failed", c.FailedResources},
		{"  skipped", c.SkippedResources},
	}

	fmt.Fprintf(tw, "Scan\t%s\n", report.ScanID)
	for _, row := range rows {
		fmt.Fprintf(tw, "%s\t%d\n", row.label, row.value)
	}
	return tw.Flush()
}
