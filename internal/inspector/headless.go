package inspector

import (
	"context"
	"fmt"
	"time"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/config"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
)

const resourceEntriesJS = `() => performance.getEntriesByType("resource").map(e => e.name)`

// HeadlessInspector renders the page in Chrome and reads the browser's
// resource timing entries, so resources injected at runtime are included.
type HeadlessInspector struct {
	config config.InspectorConfig
	logger zerolog.Logger
}

// NewHeadlessInspector creates a HeadlessInspector. Chrome is launched per
// inspection and closed before Inspect returns.
func NewHeadlessInspector(cfg config.InspectorConfig, logger zerolog.Logger) *HeadlessInspector {
	return &HeadlessInspector{
		config: cfg,
		logger: logger.With().Str("component", "HeadlessInspector").Logger(),
	}
}

func (hi *HeadlessInspector) newLauncher(ctx context.Context) *launcher.Launcher {
	hc := hi.config.Headless
	l := launcher.New().Context(ctx).Headless(true)
	if hc.ChromePath != "" {
		l = l.Bin(hc.ChromePath)
	}
	for _, arg := range hc.BrowserArgs {
		l = l.Set(flags.Flag(arg))
	}
	return l
}

// Inspect loads pageURL and returns every resource the page fetched.
func (hi *HeadlessInspector) Inspect(ctx context.Context, pageURL string) (*Inspection, error) {
	hc := hi.config.Headless

	l := hi.newLauncher(ctx)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, common.WrapError(err, "failed to launch browser")
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return nil, common.WrapError(err, "failed to connect browser")
	}
	defer browser.Close()

	if hc.IgnoreHTTPSErrors {
		if err := browser.IgnoreCertErrors(true); err != nil {
			hi.logger.Warn().Err(err).Msg("Failed to ignore certificate errors")
		}
	}

	timeout := time.Duration(hc.PageLoadTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultHeadlessPageLoadTimeoutSecs * time.Second
	}
	page, err := browser.Timeout(timeout).Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, common.WrapError(err, "failed to create page")
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  hc.WindowWidth,
		Height: hc.WindowHeight,
	}); err != nil {
		hi.logger.Warn().Err(err).Msg("Failed to set viewport")
	}
	if hi.config.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: hi.config.UserAgent}); err != nil {
			hi.logger.Warn().Err(err).Msg("Failed to set user agent")
		}
	}

	if err := page.Navigate(pageURL); err != nil {
		return nil, common.NewFetchError(pageURL, 0, "navigation failed", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, common.NewFetchError(pageURL, 0, "page load failed", err)
	}
	if hc.WaitAfterLoadMs > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(hc.WaitAfterLoadMs) * time.Millisecond):
		}
	}

	finalURL := pageURL
	if info, err := page.Info(); err == nil && info.URL != "" {
		finalURL = info.URL
	}

	html, err := page.HTML()
	if err != nil {
		return nil, common.WrapError(err, fmt.Sprintf("failed to read rendered HTML for %s", finalURL))
	}
	inspection, err := buildInspection(finalURL, []byte(html))
	if err != nil {
		return nil, err
	}

	entries, err := page.Eval(resourceEntriesJS)
	if err != nil {
		hi.logger.Warn().Err(err).Msg("Failed to read performance entries, using markup resources only")
		return inspection, nil
	}

	seeds := models.NewOrderedSet()
	for _, entry := range entries.Value.Arr() {
		if name := entry.Str(); name != "" {
			seeds.Add(name)
		}
	}
	for _, seed := range inspection.Seeds {
		seeds.Add(seed.String())
	}
	inspection.Seeds = toResourceRefs(seeds.Items())

	hi.logger.Info().Str("url", finalURL).Int("resources", seeds.Len()).Msg("Collected resource entries")
	return inspection, nil
}
