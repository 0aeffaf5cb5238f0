package progress

import (
	"sync"
	"time"

	"github.com/aleister1102/pathscan/internal/models"
)

// Progress tracks resource fetches for a single scan. Safe for concurrent use.
type Progress struct {
	mu   sync.RWMutex
	snap Snapshot
	now  func() time.Time
}

func NewProgress() *Progress {
	return &Progress{snap: Snapshot{Status: StatusIdle}, now: time.Now}
}

// Snapshot returns a copy of the current state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snap
}

// OnEvent applies one scanner progress event. The first event starts the
// clock. Events whose Completed is behind the recorded count leave the count
// alone so the display never moves backwards, but a failure is still tallied.
func (p *Progress) OnEvent(event models.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.snap.Status == StatusIdle {
		p.snap.Status = StatusRunning
		p.snap.Started = now
	}
	if event.Failed {
		p.snap.Failed++
	}
	p.snap.Updated = now

	done := int64(event.Completed)
	if done < p.snap.Done {
		return
	}
	p.snap.Done = done
	p.snap.Total = int64(event.Total)
	p.snap.Current = event.Current.String()
	p.snap.ETA = estimateETA(p.snap.Done, p.snap.Total, now.Sub(p.snap.Started))
}

// Finish moves the tracker to a terminal status and clears the ETA.
func (p *Progress) Finish(status Status) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snap.Status = status
	p.snap.Current = ""
	p.snap.ETA = 0
	p.snap.Updated = p.now()
}
