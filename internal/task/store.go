package task

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"taskmgr/internal/models"
	"taskmgr/internal/storage"
)

const collectionKey = "taskmgr_v2_tasks"

// Store owns the task collection. The in-memory slice is the source of truth,
// kept in insertion order; every successful mutation re-serializes the whole
// collection and issues exactly one write to the key-value store.
type Store struct {
	mu     sync.RWMutex
	kv     storage.KV
	logger *slog.Logger
	now    func() time.Time
	tasks  []models.Task
}

// NewStore constructs a store persisting through kv. Call Load before use.
func NewStore(kv storage.KV, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{kv: kv, logger: logger, now: time.Now}
}

// Load reads the persisted collection. An absent key or a value that fails to
// parse yields an empty collection, never an error; only a store read failure
// is reported.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.kv.Get(collectionKey)
	if err != nil {
		return fmt.Errorf("read collection: %w", err)
	}
	if !ok || raw == "" {
		s.tasks = nil
		return nil
	}

	var tasks []models.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		s.logger.Warn("stored collection is corrupt, starting empty", "error", err)
		s.tasks = nil
		return nil
	}
	s.tasks = tasks
	return nil
}

// Tasks returns a snapshot copy of the collection in insertion order.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Create validates the draft, assigns a fresh id and creation time, appends
// the task and persists.
func (s *Store) Create(d models.Draft) (models.Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return models.Task{}, fmt.Errorf("title must not be empty: %w", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := models.Task{
		ID:            uuid.NewString(),
		Title:         title,
		Desc:          strings.TrimSpace(d.Desc),
		Category:      d.Category,
		Priority:      d.Priority,
		Due:           d.Due,
		DailyReminder: d.DailyReminder,
		Subtasks:      cleanSubtasks(d.Subtasks),
		Completed:     false,
		CreatedAt:     s.now(),
	}

	s.tasks = append(s.tasks, t)
	if err := s.persistLocked(); err != nil {
		s.tasks = s.tasks[:len(s.tasks)-1]
		return models.Task{}, err
	}
	return t, nil
}

// Update replaces the mutable fields of the task with the given id. ID,
// CreatedAt and Completed are preserved.
func (s *Store) Update(id string, d models.Draft) (models.Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return models.Task{}, fmt.Errorf("title must not be empty: %w", models.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("update %q: %w", id, models.ErrNotFound)
	}

	prev := s.tasks[i]
	t := prev
	t.Title = title
	t.Desc = strings.TrimSpace(d.Desc)
	t.Category = d.Category
	t.Priority = d.Priority
	t.Due = d.Due
	t.DailyReminder = d.DailyReminder
	t.Subtasks = cleanSubtasks(d.Subtasks)

	s.tasks[i] = t
	if err := s.persistLocked(); err != nil {
		s.tasks[i] = prev
		return models.Task{}, err
	}
	return t, nil
}

// SetCompleted sets the completed flag of the task with the given id.
func (s *Store) SetCompleted(id string, completed bool) (models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("set completed %q: %w", id, models.ErrNotFound)
	}

	prev := s.tasks[i]
	s.tasks[i].Completed = completed
	if err := s.persistLocked(); err != nil {
		s.tasks[i] = prev
		return models.Task{}, err
	}
	return s.tasks[i], nil
}

// Delete removes the task with the given id. There is no tombstone and no undo.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("delete %q: %w", id, models.ErrNotFound)
	}

	prev := s.tasks[i]
	s.tasks = slices.Delete(s.tasks, i, i+1)
	if err := s.persistLocked(); err != nil {
		s.tasks = slices.Insert(s.tasks, i, prev)
		return err
	}
	return nil
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

func (s *Store) persistLocked() error {
	b, err := json.Marshal(s.tasks)
	if err != nil {
		return fmt.Errorf("serialize collection: %w", err)
	}
	if err := s.kv.Set(collectionKey, string(b)); err != nil {
		return fmt.Errorf("persist collection: %w", err)
	}
	return nil
}

// cleanSubtasks trims entries and drops empty ones, keeping entry order.
func cleanSubtasks(in []string) []string {
	var out []string
	for _, st := range in {
		st = strings.TrimSpace(st)
		if st != "" {
			out = append(out, st)
		}
	}
	return out
}
