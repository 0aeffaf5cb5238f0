package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// options holds command-line flags. Zero values leave the config untouched.
type options struct {
	URL          string
	SeedsFile    string
	PageURLsFile string
	ConfigPath   string
	Concurrency  int
	TimeoutSecs  int
	BaseURL      string
	OutputDir    string
	Formats      []string
	Headless     bool
	JSluice      bool
	Quiet        bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pathscan -u <page-url> | -s <seeds-file> [flags]",
		Short: "Discover and classify paths embedded in a site's resources",
		Long: `pathscan fetches every resource a page loads (scripts, stylesheets,
images and so on), extracts the quoted relative paths found in their
content and classifies them as static files, API endpoints or other paths.
Each resource is fetched once; discovered paths are never followed.`,
		Example: `  pathscan -u https://example.com
  pathscan -u https://example.com --headless --jsluice -t 8
  pathscan -s seeds.txt --base-url https://example.com -o out --format json
  pathscan -s seeds.txt --page-urls-file urls.txt -q`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return run(ctx, cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	f := cmd.Flags()

	// Input
	f.StringVarP(&opts.URL, "url", "u", "", "Page to inspect for seed resources and page URLs")
	f.StringVarP(&opts.SeedsFile, "seeds-file", "s", "", "File with one seed resource URL per line")
	f.StringVar(&opts.PageURLsFile, "page-urls-file", "", "File with page URLs to analyze, one per line")
	f.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to YAML/JSON config file (default: $PATHSCAN_CONFIG_PATH, ./config.yaml)")

	// Scan
	f.IntVarP(&opts.Concurrency, "concurrency", "t", 0, "Number of resources fetched at once (default 1)")
	f.IntVar(&opts.TimeoutSecs, "timeout", 0, "Per-resource fetch timeout in seconds (default 5)")
	f.StringVar(&opts.BaseURL, "base-url", "", "Base URL for root-relative seeds (default: origin of --url)")
	f.BoolVar(&opts.Headless, "headless", false, "Inspect the page with headless Chrome")
	f.BoolVar(&opts.JSluice, "jsluice", false, "Also extract URLs from JavaScript with jsluice")

	// Output
	f.StringVarP(&opts.OutputDir, "output", "o", "", "Report output directory (default \"reports\")")
	f.StringSliceVar(&opts.Formats, "format", nil, "Report formats: text,json,html (default all)")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "Only log warnings and skip the summary and progress line")

	return cmd
}
