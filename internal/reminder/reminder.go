package reminder

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"taskmgr/internal/models"
	"taskmgr/internal/storage"
)

const (
	lastShownKey = "taskmgr_v2_lastReminderDate"
	dateLayout   = "2006-01-02"
	maxTitles    = 6
)

// Banner is the in-app reminder surfaced to the UI once per calendar day.
type Banner struct {
	Message string `json:"message"`
	Visible bool   `json:"visible"`
}

// Evaluator decides on process start whether today's reminder banner should be
// shown, keyed on a single persisted last-shown date shared by all tasks.
type Evaluator struct {
	kv     storage.KV
	logger *slog.Logger
	now    func() time.Time
}

// New constructs an evaluator persisting its marker through kv.
func New(kv storage.KV, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{kv: kv, logger: logger, now: time.Now}
}

// Evaluate compares the persisted last-shown date against today. If they
// differ and at least one task qualifies, it returns a visible banner and
// persists today's date. With no qualifying task the date is left untouched,
// so the check repeats on every start until one appears. An unreadable or
// garbage stored value behaves as "never shown": the equality check against
// today simply fails.
func (e *Evaluator) Evaluate(tasks []models.Task) (Banner, error) {
	today := e.now().Format(dateLayout)

	last, ok, err := e.kv.Get(lastShownKey)
	if err != nil {
		e.logger.Warn("reading last reminder date failed, treating as never shown", "error", err)
	}
	if ok && last == today {
		return Banner{}, nil
	}

	var titles []string
	count := 0
	for _, t := range tasks {
		if !qualifies(t, today) {
			continue
		}
		count++
		if len(titles) < maxTitles {
			titles = append(titles, t.Title)
		}
	}
	if count == 0 {
		return Banner{}, nil
	}

	msg := "Daily reminder: " + strings.Join(titles, ", ")
	if count > maxTitles {
		msg += "..."
	}
	banner := Banner{Message: msg, Visible: true}

	if err := e.kv.Set(lastShownKey, today); err != nil {
		return banner, fmt.Errorf("store reminder date: %w", err)
	}
	return banner, nil
}

// qualifies reports whether a task belongs in today's banner: flagged for the
// daily reminder, not completed, and either without a due date or due today.
// A task overdue on a past date does not qualify.
func qualifies(t models.Task, today string) bool {
	if !t.DailyReminder || t.Completed {
		return false
	}
	return t.Due == nil || t.Due.Format(dateLayout) == today
}
