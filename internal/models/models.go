package models

import (
	"errors"
	"time"
)

var (
	// ErrValidation indicates a rejected draft (empty title). No state change happened.
	ErrValidation = errors.New("validation error")
	// ErrNotFound indicates a mutation aimed at an id that is not in the collection.
	ErrNotFound = errors.New("task not found")
)

// Task represents a single trackable to-do item. ID and CreatedAt are fixed at
// creation; Completed changes only through the dedicated toggle operation.
type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Desc          string     `json:"desc"`
	Category      string     `json:"category"`
	Priority      string     `json:"priority"`
	Due           *time.Time `json:"due,omitempty"`
	DailyReminder bool       `json:"dailyReminder"`
	Subtasks      []string   `json:"subtasks,omitempty"`
	Completed     bool       `json:"completed"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Draft carries the user-editable fields of a task for create and update.
type Draft struct {
	Title         string     `json:"title"`
	Desc          string     `json:"desc"`
	Category      string     `json:"category"`
	Priority      string     `json:"priority"`
	Due           *time.Time `json:"due"`
	DailyReminder bool       `json:"dailyReminder"`
	Subtasks      []string   `json:"subtasks"`
}

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Categories is the fixed list offered in the UI. It is a curated choice, not a
// constraint the store enforces.
var Categories = []string{"Personal", "Work", "Study", "Health", "Finance", "Other"}

// Priorities in rank order, highest first.
var Priorities = []string{PriorityHigh, PriorityMedium, PriorityLow}

// Sort keys accepted by the query engine.
const (
	SortNewest   = "newest"
	SortOldest   = "oldest"
	SortDueSoon  = "due_soon"
	SortPriority = "priority"
)

var SortKeys = []string{SortNewest, SortOldest, SortDueSoon, SortPriority}

// Filters is the filter/sort configuration applied to a snapshot of the
// collection. An empty or "all" category/priority matches everything.
type Filters struct {
	Search   string
	Category string
	Priority string
	Sort     string
}

// Stats are the aggregate completion counters shown above the list.
type Stats struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Pending   int `json:"pending"`
	Percent   int `json:"percent"`
}
