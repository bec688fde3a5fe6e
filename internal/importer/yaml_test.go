package importer

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmgr/internal/models"
	"taskmgr/internal/storage/memory"
	"taskmgr/internal/task"
)

func newTestStore(t *testing.T) *task.Store {
	t.Helper()
	st := task.NewStore(memory.New(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, st.Load())
	return st
}

func TestImport(t *testing.T) {
	st := newTestStore(t)

	yamlStr := `
tasks:
  - title: Write report
    desc: quarterly numbers
    category: Work
    priority: High
    due: 2026-09-01
    daily_reminder: true
    subtasks:
      - collect data
      - draft
  - title: Groceries
    due: 2026-09-02T18:00:00Z
`

	count, err := Import(st, yamlStr)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	tasks := st.Tasks()
	require.Len(t, tasks, 2)

	first := tasks[0]
	assert.Equal(t, "Write report", first.Title)
	assert.Equal(t, "Work", first.Category)
	assert.Equal(t, models.PriorityHigh, first.Priority)
	assert.True(t, first.DailyReminder)
	assert.Equal(t, []string{"collect data", "draft"}, first.Subtasks)
	require.NotNil(t, first.Due)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *first.Due)

	second := tasks[1]
	assert.Equal(t, "Personal", second.Category, "category defaults when omitted")
	assert.Equal(t, models.PriorityMedium, second.Priority, "priority defaults when omitted")
	require.NotNil(t, second.Due)
	assert.Equal(t, time.Date(2026, 9, 2, 18, 0, 0, 0, time.UTC), *second.Due)
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name    string
		yamlStr string
	}{
		{"invalid yaml", "tasks: [unclosed"},
		{"empty document", "tasks: []"},
		{"missing title", "tasks:\n  - desc: no title here"},
		{"invalid due date", "tasks:\n  - title: x\n    due: next tuesday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)

			_, err := Import(st, tt.yamlStr)
			assert.Error(t, err)
		})
	}
}

func TestImportStopsAtFirstFailure(t *testing.T) {
	st := newTestStore(t)

	yamlStr := `
tasks:
  - title: good one
  - title: ""
  - title: never reached
`

	count, err := Import(st, yamlStr)
	assert.Error(t, err)
	assert.Equal(t, 1, count)
	assert.Len(t, st.Tasks(), 1)
}
