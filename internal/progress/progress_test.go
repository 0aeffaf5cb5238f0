package progress

import (
	"os"
	"testing"
	"time"

	"github.com/aleister1102/pathscan/internal/config"
	"github.com/aleister1102/pathscan/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances by step on every call.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(step)
		return t
	}
}

func TestProgress_FirstEventStartsRunning(t *testing.T) {
	p := NewProgress()
	assert.Equal(t, StatusIdle, p.Snapshot().Status)

	p.OnEvent(models.ProgressEvent{Completed: 1, Total: 4, Current: "/a.js"})
	snap := p.Snapshot()
	assert.Equal(t, StatusRunning, snap.Status)
	assert.Equal(t, int64(1), snap.Done)
	assert.Equal(t, "/a.js", snap.Current)
	assert.Equal(t, 25.0, snap.Percent())
	assert.False(t, snap.Started.IsZero())
}

func TestProgress_IgnoresRegressionButCountsFailures(t *testing.T) {
	p := NewProgress()
	p.OnEvent(models.ProgressEvent{Completed: 3, Total: 5, Current: "/c.js"})
	p.OnEvent(models.ProgressEvent{Completed: 2, Total: 5, Current: "/b.js", Failed: true})

	snap := p.Snapshot()
	assert.Equal(t, int64(3), snap.Done)
	assert.Equal(t, "/c.js", snap.Current)
	assert.Equal(t, int64(1), snap.Failed)
}

func TestProgress_ETA(t *testing.T) {
	p := NewProgress()
	p.now = fakeClock(time.Unix(0, 0), time.Second)

	p.OnEvent(models.ProgressEvent{Completed: 1, Total: 3})
	assert.Zero(t, p.Snapshot().ETA)

	// Two done one second after the start, one left.
	p.OnEvent(models.ProgressEvent{Completed: 2, Total: 3})
	assert.Equal(t, 500*time.Millisecond, p.Snapshot().ETA)

	p.Finish(StatusComplete)
	snap := p.Snapshot()
	assert.Equal(t, StatusComplete, snap.Status)
	assert.Zero(t, snap.ETA)
	assert.Empty(t, snap.Current)
}

func TestEstimateETA(t *testing.T) {
	assert.Equal(t, 4*time.Second, estimateETA(1, 3, 2*time.Second))
	assert.Zero(t, estimateETA(0, 3, time.Second))
	assert.Zero(t, estimateETA(3, 3, time.Second))
	assert.Zero(t, estimateETA(1, 3, 0))
}

func TestSnapshot_Percent(t *testing.T) {
	assert.Equal(t, 0.0, Snapshot{Done: 3}.Percent())
	assert.Equal(t, 100.0, Snapshot{Done: 9, Total: 3}.Percent())
	assert.Equal(t, 50.0, Snapshot{Done: 1, Total: 2}.Percent())
}

func TestDisplay_Format(t *testing.T) {
	d := NewDisplay(NewProgress(), config.NewDefaultProgressConfig(), nil, zerolog.Nop())

	assert.Empty(t, d.Format(Snapshot{Status: StatusIdle}))

	line := d.Format(Snapshot{Status: StatusComplete, Done: 2, Total: 2, Failed: 1})
	assert.Contains(t, line, "100.0% (2/2)")
	assert.Contains(t, line, "failed: 1")
	assert.Contains(t, line, "[████████████████████]")
	assert.Contains(t, line, "| done")

	running := d.Format(Snapshot{Status: StatusRunning, Done: 1, Total: 4, Current: "/app.js", ETA: 90 * time.Second})
	assert.Contains(t, running, "25.0% (1/4)")
	assert.Contains(t, running, "ETA: 1m30s")
	assert.Contains(t, running, "| /app.js")
	assert.NotContains(t, running, "failed")
}

func TestDisplay_StartStopNonInteractive(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "progress")
	require.NoError(t, err)
	defer f.Close()

	p := NewProgress()
	d := NewDisplay(p, config.NewDefaultProgressConfig(), f, zerolog.Nop())
	assert.False(t, d.interactive)

	d.Start()
	p.OnEvent(models.ProgressEvent{Completed: 1, Total: 1, Current: "/a.js"})
	d.Refresh()
	p.Finish(StatusComplete)
	d.Stop()
	d.Stop()

	assert.Contains(t, d.lastDisplayed, "done")
}

func TestDisplay_DisabledIsNoop(t *testing.T) {
	cfg := config.NewDefaultProgressConfig()
	cfg.EnableProgress = false
	d := NewDisplay(NewProgress(), cfg, nil, zerolog.Nop())

	d.Start()
	d.Stop()
	assert.Empty(t, d.lastDisplayed)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "42s", formatDuration(42*time.Second))
	assert.Equal(t, "2m5s", formatDuration(125*time.Second))
	assert.Equal(t, "1h1m", formatDuration(61*time.Minute))
}
