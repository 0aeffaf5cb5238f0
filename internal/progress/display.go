package progress

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/pathscan/internal/config"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const barWidth = 20

// Display renders a Progress periodically. On a terminal it redraws a single
// line in place; otherwise each changed line is logged at info level.
type Display struct {
	progress      *Progress
	config        config.ProgressConfig
	out           *os.File
	interactive   bool
	logger        zerolog.Logger
	stopChan      chan struct{}
	trigger       chan struct{}
	wg            sync.WaitGroup
	mu            sync.Mutex
	lastDisplayed string
	running       bool
}

// NewDisplay creates a display for p writing to out (stderr when nil).
func NewDisplay(p *Progress, cfg config.ProgressConfig, out *os.File, logger zerolog.Logger) *Display {
	if out == nil {
		out = os.Stderr
	}
	return &Display{
		progress:    p,
		config:      cfg,
		out:         out,
		interactive: term.IsTerminal(int(out.Fd())),
		logger:      logger.With().Str("component", "ProgressDisplay").Logger(),
		stopChan:    make(chan struct{}),
		trigger:     make(chan struct{}, 1),
	}
}

// Start launches the render loop. It is a no-op when progress is disabled.
func (d *Display) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.config.EnableProgress || d.running {
		return
	}
	d.running = true

	d.wg.Add(1)
	go d.loop(time.NewTicker(d.config.GetDisplayIntervalDuration()))
}

// Refresh requests an immediate redraw without blocking.
func (d *Display) Refresh() {
	select {
	case d.trigger <- struct{}{}:
	default:
	}
}

// Stop halts the loop and prints the final state.
func (d *Display) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	d.mu.Unlock()

	close(d.stopChan)
	d.wg.Wait()
	d.render(true)
}

func (d *Display) loop(ticker *time.Ticker) {
	defer d.wg.Done()
	defer ticker.Stop()
	for {
		select {
		case <-d.stopChan:
			return
		case <-ticker.C:
			d.render(false)
		case <-d.trigger:
			d.render(false)
		}
	}
}

func (d *Display) render(final bool) {
	line := d.Format(d.progress.Snapshot())
	if line == "" {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if line == d.lastDisplayed && !(final && d.interactive) {
		return
	}
	d.lastDisplayed = line

	if !d.interactive {
		d.logger.Info().Msg(line)
		return
	}
	suffix := ""
	if final {
		suffix = "\n"
	}
	_, _ = fmt.Fprintf(d.out, "\r\033[K%s%s", line, suffix)
}

// Format builds the progress line. A tracker that has not seen any event
// renders as the empty string.
func (d *Display) Format(s Snapshot) string {
	if s.Status == StatusIdle {
		return ""
	}

	var b strings.Builder
	pct := s.Percent()
	fmt.Fprintf(&b, "%s %s %.1f%% (%d/%d)", statusIcon(s.Status), progressBar(pct, barWidth), pct, s.Done, s.Total)
	if s.Failed > 0 {
		fmt.Fprintf(&b, " | failed: %d", s.Failed)
	}
	if d.config.ShowETAEstimation && s.Status == StatusRunning && s.ETA > 0 {
		fmt.Fprintf(&b, " | ETA: %s", formatDuration(s.ETA))
	}
	switch {
	case s.Status == StatusComplete:
		b.WriteString(" | done")
	case s.Status == StatusCancelled:
		b.WriteString(" | interrupted")
	case s.Current != "":
		fmt.Fprintf(&b, " | %s", s.Current)
	}
	return b.String()
}

func progressBar(percentage float64, width int) string {
	filled := int(percentage / 100 * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}

func statusIcon(status Status) string {
	switch status {
	case StatusRunning:
		return "⏳"
	case StatusComplete:
		return "✅"
	case StatusCancelled:
		return "🚫"
	default:
		return "💤"
	}
}
