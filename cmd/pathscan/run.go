package main

import (
	"context"
	"errors"
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/aleister1102/pathscan/internal/extractor"
	"github.com/aleister1102/pathscan/internal/httpclient"
	"github.com/aleister1102/pathscan/internal/inspector"
	"github.com/aleister1102/pathscan/internal/logger"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/aleister1102/pathscan/internal/progress"
	"github.com/aleister1102/pathscan/internal/reporter"
	"github.com/aleister1102/pathscan/internal/scanner"
	"github.com/aleister1102/pathscan/internal/urlhandler"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func run(ctx context.Context, cmd *cobra.Command, opts *options) error {
	bootLogger, err := logger.NewLoggerBuilder().WithLevel(zerolog.WarnLevel).Build()
	if err != nil {
		return err
	}

	gCfg, err := config.LoadGlobalConfig(opts.ConfigPath, bootLogger)
	if err != nil {
		return common.WrapError(err, "could not load config")
	}
	applyFlagOverrides(cmd, opts, gCfg)
	if err := config.ValidateConfig(gCfg); err != nil {
		return err
	}

	scanID := time.Now().Format(scanner.ScanIDFormat)
	zLogger, err := logger.NewWithScanID(gCfg.LogConfig, scanID)
	if err != nil {
		return common.WrapError(err, "could not initialize logger")
	}
	log := zLogger.With().Str("component", "Main").Str("scan_id", scanID).Logger()

	seeds, pageURLs, err := collectInputs(ctx, opts, gCfg, log)
	if err != nil {
		return err
	}
	if len(seeds) == 0 {
		return common.ErrNoSeeds
	}

	client, err := httpclient.NewClientFromConfig(gCfg.HTTPClientConfig, zLogger)
	if err != nil {
		return err
	}
	pathExtractor, err := extractor.NewPathExtractor(gCfg.ExtractorConfig, zLogger)
	if err != nil {
		return err
	}
	s, err := scanner.New(gCfg.ScannerConfig, client, pathExtractor, zLogger)
	if err != nil {
		return err
	}

	prog := progress.NewProgress()
	display := progress.NewDisplay(prog, gCfg.ProgressConfig, nil, zLogger)
	display.Start()

	report, scanErr := s.Scan(ctx, seeds, pageURLs, func(e models.ProgressEvent) {
		prog.OnEvent(e)
		display.Refresh()
	})
	if scanErr != nil {
		prog.Finish(progress.StatusCancelled)
	} else {
		prog.Finish(progress.StatusComplete)
	}
	display.Stop()

	rep, err := reporter.New(gCfg.ReporterConfig, zLogger)
	if err != nil {
		return err
	}
	files, reportErr := rep.Generate(report)
	for _, f := range files {
		log.Debug().Str("file", f).Msg("Report written")
	}

	if gCfg.ReporterConfig.PrintSummary && !opts.Quiet {
		if err := reporter.PrintSummary(cmd.OutOrStdout(), report); err != nil {
			log.Warn().Err(err).Msg("Failed to print summary")
		}
	}

	if scanErr != nil {
		return common.WrapError(scanErr, "scan interrupted, partial report written")
	}
	return reportErr
}

// applyFlagOverrides copies explicitly set flags over config values.
func applyFlagOverrides(cmd *cobra.Command, opts *options, gCfg *config.GlobalConfig) {
	flags := cmd.Flags()
	if flags.Changed("concurrency") {
		gCfg.ScannerConfig.Concurrency = opts.Concurrency
	}
	if flags.Changed("timeout") {
		gCfg.ScannerConfig.FetchTimeoutSecs = opts.TimeoutSecs
	}
	if flags.Changed("base-url") {
		gCfg.ScannerConfig.BaseURL = opts.BaseURL
	}
	if flags.Changed("output") {
		gCfg.ReporterConfig.OutputDir = opts.OutputDir
	}
	if flags.Changed("format") {
		gCfg.ReporterConfig.Formats = opts.Formats
	}
	if flags.Changed("headless") {
		gCfg.InspectorConfig.Headless.Enabled = opts.Headless
	}
	if flags.Changed("jsluice") {
		gCfg.ExtractorConfig.EnableJSluice = opts.JSluice
	}
	if opts.Quiet {
		gCfg.ProgressConfig.EnableProgress = false
		if level, err := logger.ParseLevel(gCfg.LogConfig.LogLevel); err != nil || level < zerolog.WarnLevel {
			gCfg.LogConfig.LogLevel = "warn"
		}
	}
}

// collectInputs gathers seeds and page URLs from the files and the inspected
// page. Without an explicit base URL, the inspected page's origin is used.
func collectInputs(ctx context.Context, opts *options, gCfg *config.GlobalConfig, log zerolog.Logger) ([]models.ResourceRef, []string, error) {
	var (
		seeds    []models.ResourceRef
		pageURLs []string
	)

	if opts.SeedsFile != "" {
		lines, err := readEntries(opts.SeedsFile, log)
		if err != nil {
			return nil, nil, common.WrapError(err, "could not read seeds file")
		}
		for _, line := range lines {
			seeds = append(seeds, models.ResourceRef(line))
		}
	}
	if opts.PageURLsFile != "" {
		lines, err := readEntries(opts.PageURLsFile, log)
		if err != nil {
			return nil, nil, common.WrapError(err, "could not read page URLs file")
		}
		pageURLs = append(pageURLs, lines...)
	}

	if opts.URL != "" {
		pageURL, err := urlhandler.NormalizeURL(opts.URL)
		if err != nil {
			return nil, nil, common.WrapError(err, "invalid --url")
		}
		inspection, err := inspector.New(gCfg.InspectorConfig, log).Inspect(ctx, pageURL)
		if err != nil {
			return nil, nil, common.WrapError(err, "page inspection failed")
		}
		log.Info().
			Str("page", inspection.PageURL).
			Int("seeds", len(inspection.Seeds)).
			Int("page_urls", len(inspection.PageURLs)).
			Msg("Page inspected")
		seeds = append(seeds, inspection.Seeds...)
		pageURLs = append(pageURLs, inspection.PageURLs...)

		if gCfg.ScannerConfig.BaseURL == "" {
			if origin, err := urlhandler.Origin(inspection.PageURL); err == nil {
				gCfg.ScannerConfig.BaseURL = origin
			}
		}
	}

	return seeds, pageURLs, nil
}

func readEntries(path string, log zerolog.Logger) ([]string, error) {
	lines, err := urlhandler.ReadLinesFromFile(path, log)
	if errors.Is(err, urlhandler.ErrFileEmpty) {
		log.Warn().Str("file", path).Msg("Input file has no entries")
		return nil, nil
	}
	return lines, err
}
