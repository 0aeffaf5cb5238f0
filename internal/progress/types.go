package progress

import "time"

// Status is the lifecycle state of a tracked scan.
type Status string

const (
	StatusIdle      Status = "IDLE"
	StatusRunning   Status = "RUNNING"
	StatusComplete  Status = "COMPLETE"
	StatusCancelled Status = "CANCELLED"
)

// Snapshot is a copy of the tracker state at one instant.
type Snapshot struct {
	Status  Status        `json:"status"`
	Done    int64         `json:"done"`
	Total   int64         `json:"total"`
	Failed  int64         `json:"failed"`
	Current string        `json:"current"`
	Started time.Time     `json:"started"`
	Updated time.Time     `json:"updated"`
	ETA     time.Duration `json:"eta"`
}

// Percent returns completion clamped to [0, 100].
func (s Snapshot) Percent() float64 {
	if s.Total <= 0 {
		return 0
	}
	return min(float64(s.Done)*100/float64(s.Total), 100)
}

// estimateETA projects the remaining time from the average rate so far.
func estimateETA(done, total int64, elapsed time.Duration) time.Duration {
	if done <= 0 || total <= done || elapsed <= 0 {
		return 0
	}
	perItem := elapsed / time.Duration(done)
	return perItem * time.Duration(total-done)
}
