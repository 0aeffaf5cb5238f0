package reporter

import (
	"path/filepath"
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/rs/zerolog"
)

// Reporter writes a ScanReport in every configured format.
type Reporter struct {
	cfg          config.ReporterConfig
	logger       zerolog.Logger
	directoryMgr *DirectoryManager
	html         *HTMLReporter
	now          func() time.Time
}

// New creates a Reporter. The HTML template is parsed only when the html
// format is enabled.
func New(cfg config.ReporterConfig, logger zerolog.Logger) (*Reporter, error) {
	moduleLogger := logger.With().Str("component", "Reporter").Logger()
	if cfg.OutputDir == "" {
		cfg.OutputDir = config.DefaultReporterOutputDir
		moduleLogger.Info().Str("default_dir", cfg.OutputDir).Msg("OutputDir not specified, using default.")
	}

	r := &Reporter{
		cfg:          cfg,
		logger:       moduleLogger,
		directoryMgr: NewDirectoryManager(moduleLogger),
		now:          time.Now,
	}
	if cfg.HasFormat(config.ReportFormatHTML) {
		html, err := NewHTMLReporter(cfg.ReportTitle, moduleLogger)
		if err != nil {
			return nil, err
		}
		r.html = html
	}
	return r, nil
}

// Generate writes the report and returns the paths of every file created.
// A failing format does not stop the others; errors are combined.
func (r *Reporter) Generate(report *models.ScanReport) ([]string, error) {
	if err := r.directoryMgr.EnsureOutputDirectory(r.cfg.OutputDir); err != nil {
		return nil, err
	}

	var (
		written   []string
		collector common.ErrorCollector
	)

	if r.cfg.HasFormat(config.ReportFormatText) {
		paths, err := ExportTextLists(report, r.cfg.OutputDir, ExportTimestamp(r.now()))
		written = append(written, paths...)
		collector.AddWithContext(err, "text export")
	}
	if r.cfg.HasFormat(config.ReportFormatJSON) {
		path := filepath.Join(r.cfg.OutputDir, JSONReportFileName)
		if err := writeJSONFile(path, report); err != nil {
			collector.AddWithContext(err, "json report")
		} else {
			written = append(written, path)
		}
	}
	if r.html != nil {
		path := filepath.Join(r.cfg.OutputDir, HTMLReportFileName)
		if err := r.html.writeFile(path, report); err != nil {
			collector.AddWithContext(err, "html report")
		} else {
			written = append(written, path)
		}
	}

	if collector.HasErrors() {
		r.logger.Error().Err(collector.Error()).Msg("Some reports could not be written")
		return written, collector.Error()
	}
	r.logger.Info().Str("output_dir", r.cfg.OutputDir).Int("files", len(written)).Msg("Reports generated")
	return written, nil
}
