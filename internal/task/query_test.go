package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmgr/internal/models"
)

func at(day int) time.Time {
	return time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC)
}

func TestApplyFilters(t *testing.T) {
	tasks := []models.Task{
		{ID: "1", Title: "Write report", Category: "Work", Priority: models.PriorityHigh},
		{ID: "2", Title: "Groceries", Desc: "weekly REPORT of spending", Category: "Personal", Priority: models.PriorityLow},
		{ID: "3", Title: "Standup", Category: "Work", Priority: models.PriorityMedium, Subtasks: []string{"prepare report notes"}},
		{ID: "4", Title: "Run", Category: "Health", Priority: models.PriorityLow},
	}

	tests := []struct {
		name    string
		filters models.Filters
		wantIDs []string
	}{
		{
			name:    "no filters passes everything",
			filters: models.Filters{},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "all sentinel passes everything",
			filters: models.Filters{Category: "all", Priority: "all"},
			wantIDs: []string{"1", "2", "3", "4"},
		},
		{
			name:    "search matches title desc and subtasks case-insensitively",
			filters: models.Filters{Search: "report"},
			wantIDs: []string{"1", "2", "3"},
		},
		{
			name:    "category and search are ANDed",
			filters: models.Filters{Search: "report", Category: "Work", Priority: "all"},
			wantIDs: []string{"1", "3"},
		},
		{
			name:    "priority filter",
			filters: models.Filters{Priority: models.PriorityLow},
			wantIDs: []string{"2", "4"},
		},
		{
			name:    "all three predicates",
			filters: models.Filters{Search: "report", Category: "Work", Priority: models.PriorityHigh},
			wantIDs: []string{"1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tasks, tt.filters)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestApplySortNewestOldest(t *testing.T) {
	tasks := []models.Task{
		{ID: "old", CreatedAt: at(1)},
		{ID: "new", CreatedAt: at(20)},
		{ID: "mid", CreatedAt: at(10)},
	}

	newest := Apply(tasks, models.Filters{Sort: models.SortNewest})
	require.Len(t, newest, 3)
	assert.Equal(t, "new", newest[0].ID)
	assert.Equal(t, "old", newest[2].ID)

	oldest := Apply(tasks, models.Filters{Sort: models.SortOldest})
	assert.Equal(t, "old", oldest[0].ID)
	assert.Equal(t, "new", oldest[2].ID)
}

func TestApplySortIsStable(t *testing.T) {
	same := at(5)
	tasks := []models.Task{
		{ID: "a", CreatedAt: same},
		{ID: "b", CreatedAt: same},
		{ID: "c", CreatedAt: same},
	}

	got := Apply(tasks, models.Filters{Sort: models.SortNewest})
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestApplySortDueSoon(t *testing.T) {
	d1, d2 := at(3), at(7)
	tasks := []models.Task{
		{ID: "none1"},
		{ID: "late", Due: &d2},
		{ID: "none2"},
		{ID: "soon", Due: &d1},
	}

	got := Apply(tasks, models.Filters{Sort: models.SortDueSoon})
	require.Len(t, got, 4)
	assert.Equal(t, "soon", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
	// Tasks without a due date sort strictly after all dated ones, insertion order kept.
	assert.Equal(t, "none1", got[2].ID)
	assert.Equal(t, "none2", got[3].ID)
}

func TestApplySortPriority(t *testing.T) {
	tasks := []models.Task{
		{ID: "odd", Priority: "Urgent"},
		{ID: "low", Priority: models.PriorityLow},
		{ID: "high", Priority: models.PriorityHigh},
		{ID: "med", Priority: models.PriorityMedium},
	}

	got := Apply(tasks, models.Filters{Sort: models.SortPriority})
	require.Len(t, got, 4)
	assert.Equal(t, "high", got[0].ID)
	assert.Equal(t, "med", got[1].ID)
	assert.Equal(t, "low", got[2].ID)
	assert.Equal(t, "odd", got[3].ID, "unrecognized priority ranks last")
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tasks := []models.Task{
		{ID: "b", CreatedAt: at(2)},
		{ID: "a", CreatedAt: at(1)},
	}

	_ = Apply(tasks, models.Filters{Sort: models.SortOldest})

	assert.Equal(t, "b", tasks[0].ID)
	assert.Equal(t, "a", tasks[1].ID)
}
