package reporter

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"os"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/rs/zerolog"
)

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

const reportTemplateName = "report.html.tmpl"

// ReportTab is one list tab of the HTML report.
type ReportTab struct {
	Name  string
	Label string
	Items []string
}

// ReportPageData is the model rendered by the HTML template.
type ReportPageData struct {
	Title       string
	ScanID      string
	GeneratedAt string
	Tabs        []ReportTab
	Counts      models.ReportCounts
	Resources   []models.ResourceStatus
}

// HTMLReporter renders a ScanReport into a self-contained HTML page.
type HTMLReporter struct {
	title    string
	logger   zerolog.Logger
	template *template.Template
}

// NewHTMLReporter parses the embedded report template.
func NewHTMLReporter(title string, logger zerolog.Logger) (*HTMLReporter, error) {
	if title == "" {
		title = DefaultReportTitle
	}
	tmpl, err := template.New(reportTemplateName).Funcs(templateFunctions()).ParseFS(templatesFS, "templates/"+reportTemplateName)
	if err != nil {
		return nil, common.WrapError(err, "failed to parse embedded report template")
	}
	return &HTMLReporter{
		title:    title,
		logger:   logger.With().Str("component", "HTMLReporter").Logger(),
		template: tmpl,
	}, nil
}

// tabLists are the list tabs in display order; the summary tab is rendered separately.
var tabLists = []struct{ name, label string }{
	{"all", "All paths"},
	{"static", "Static"},
	{"api", "API"},
	{"other", "Other"},
	{"urls", "URLs"},
}

func (r *HTMLReporter) pageData(report *models.ScanReport) ReportPageData {
	data := ReportPageData{
		Title:       r.title,
		ScanID:      report.ScanID,
		GeneratedAt: report.GeneratedAt,
		Counts:      report.Counts,
		Resources:   report.Resources,
	}
	for _, tl := range tabLists {
		items, _ := report.ListByName(tl.name)
		data.Tabs = append(data.Tabs, ReportTab{Name: tl.name, Label: tl.label, Items: items})
	}
	data.Tabs = append(data.Tabs,
		ReportTab{Name: "url_paths", Label: "URL paths", Items: report.URLPaths},
		ReportTab{Name: "url_params", Label: "URL params", Items: report.URLParams},
		ReportTab{Name: "domains", Label: "Domains", Items: report.URLDomains},
	)
	return data
}

// Render writes the HTML report to w. All report values are HTML-escaped.
func (r *HTMLReporter) Render(w io.Writer, report *models.ScanReport) error {
	var buf bytes.Buffer
	if err := r.template.Execute(&buf, r.pageData(report)); err != nil {
		r.logger.Error().Err(err).Msg("Failed to execute template")
		return common.WrapError(err, "template execution failed")
	}
	_, err := buf.WriteTo(w)
	return err
}

func (r *HTMLReporter) writeFile(path string, report *models.ScanReport) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, FilePermissions)
	if err != nil {
		return common.WrapErrorf(err, "failed to create %s", path)
	}
	if err := r.Render(f, report); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
