package task

import (
	"math"

	"taskmgr/internal/models"
)

// ComputeStats derives the aggregate counters from the full collection. It is
// recomputed from scratch on every call; there are no incremental counters.
func ComputeStats(tasks []models.Task) models.Stats {
	st := models.Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			st.Completed++
		}
	}
	st.Pending = st.Total - st.Completed
	if st.Total > 0 {
		st.Percent = int(math.Round(float64(st.Completed) / float64(st.Total) * 100))
	}
	return st
}
