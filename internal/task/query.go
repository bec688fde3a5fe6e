package task

import (
	"sort"
	"strings"

	"taskmgr/internal/models"
)

// Apply filters and sorts a snapshot of the collection. The input slice is
// never modified; the result is a fresh slice. Sorting is stable, so tasks
// with equal sort keys keep their insertion order.
func Apply(tasks []models.Task, f models.Filters) []models.Task {
	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if q != "" && !matchesSearch(t, q) {
			continue
		}
		if f.Category != "" && f.Category != "all" && t.Category != f.Category {
			continue
		}
		if f.Priority != "" && f.Priority != "all" && t.Priority != f.Priority {
			continue
		}
		out = append(out, t)
	}

	switch f.Sort {
	case models.SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case models.SortOldest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		})
	case models.SortDueSoon:
		sort.SliceStable(out, func(i, j int) bool {
			di, dj := out[i].Due, out[j].Due
			switch {
			case di == nil:
				return false
			case dj == nil:
				return true
			default:
				return di.Before(*dj)
			}
		})
	case models.SortPriority:
		sort.SliceStable(out, func(i, j int) bool {
			return priorityRank(out[i].Priority) < priorityRank(out[j].Priority)
		})
	}

	return out
}

func matchesSearch(t models.Task, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Desc), q) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(t.Subtasks, " ")), q)
}

// priorityRank orders High before Medium before Low; anything unrecognized
// sorts after all three.
func priorityRank(p string) int {
	switch p {
	case models.PriorityHigh:
		return 0
	case models.PriorityMedium:
		return 1
	case models.PriorityLow:
		return 2
	default:
		return 3
	}
}
