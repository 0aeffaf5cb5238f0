package scanner

import (
	"sync"

	"github.com/aleister1102/pathscan/internal/common"
	"github.com/aleister1102/pathscan/internal/models"
)

// scanState lives for exactly one Scan call.
type scanState struct {
	mu         sync.Mutex
	candidates *models.OrderedSet
	results    map[models.ResourceRef]models.FetchResult
	pathsFound map[models.ResourceRef]int
	errors     common.ErrorCollector
	completed  int
	total      int
	onProgress ProgressFunc
}

func newScanState(total int, onProgress ProgressFunc) *scanState {
	return &scanState{
		candidates: models.NewOrderedSet(),
		results:    make(map[models.ResourceRef]models.FetchResult, total),
		pathsFound: make(map[models.ResourceRef]int, total),
		total:      total,
		onProgress: onProgress,
	}
}

// record stores the outcome for a resource, merges its paths and emits the
// next progress event. The lock is held across the callback so events are
// delivered in completion order.
func (st *scanState) record(result models.FetchResult, paths []string, fetchErr error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.results[result.Source] = result
	unique := models.NewOrderedSet()
	for _, p := range paths {
		unique.Add(p)
		st.candidates.Add(p)
	}
	st.pathsFound[result.Source] = unique.Len()
	st.errors.Add(fetchErr)

	st.completed++
	if st.onProgress != nil {
		st.onProgress(models.ProgressEvent{
			Completed: st.completed,
			Total:     st.total,
			Current:   result.Source,
			Failed:    fetchErr != nil,
		})
	}
}

// resources lists a status per seed in seed order. Seeds without a recorded
// result were never fetched and are reported as skipped.
func (st *scanState) resources(seeds []models.ResourceRef) []models.ResourceStatus {
	st.mu.Lock()
	defer st.mu.Unlock()

	out := make([]models.ResourceStatus, 0, len(seeds))
	for _, seed := range seeds {
		result, ok := st.results[seed]
		if !ok {
			out = append(out, models.ResourceStatus{Source: seed, State: models.ResourceSkipped})
			continue
		}
		out = append(out, models.ResourceStatusFromResult(result, st.pathsFound[seed]))
	}
	return out
}

func (st *scanState) candidateList() []string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.candidates.Items()
}
