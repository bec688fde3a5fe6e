package importer

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"taskmgr/internal/models"
	"taskmgr/internal/task"
)

// YAMLTask represents a single task in the YAML input.
type YAMLTask struct {
	Title         string   `yaml:"title"`
	Desc          string   `yaml:"desc,omitempty"`
	Category      string   `yaml:"category,omitempty"`
	Priority      string   `yaml:"priority,omitempty"`
	Due           string   `yaml:"due,omitempty"`
	DailyReminder bool     `yaml:"daily_reminder,omitempty"`
	Subtasks      []string `yaml:"subtasks,omitempty"`
}

// YAMLInput represents the root structure of the YAML input.
type YAMLInput struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Import parses a YAML document and creates the tasks it lists.
// Returns the number of tasks created; the first failure aborts the run.
func Import(s *task.Store, yamlStr string) (int, error) {
	var input YAMLInput
	if err := yaml.Unmarshal([]byte(yamlStr), &input); err != nil {
		return 0, fmt.Errorf("YAML parse error: %w", err)
	}

	if len(input.Tasks) == 0 {
		return 0, fmt.Errorf("no tasks found in YAML")
	}

	count := 0
	for _, yt := range input.Tasks {
		due, err := parseDue(yt.Due)
		if err != nil {
			return count, fmt.Errorf("task %q: %w", yt.Title, err)
		}

		d := models.Draft{
			Title:         yt.Title,
			Desc:          yt.Desc,
			Category:      yt.Category,
			Priority:      yt.Priority,
			Due:           due,
			DailyReminder: yt.DailyReminder,
			Subtasks:      yt.Subtasks,
		}
		if d.Category == "" {
			d.Category = "Personal"
		}
		if d.Priority == "" {
			d.Priority = models.PriorityMedium
		}

		if _, err := s.Create(d); err != nil {
			return count, fmt.Errorf("create task %q: %w", yt.Title, err)
		}
		count++
	}
	return count, nil
}

// parseDue accepts RFC3339 timestamps or bare calendar dates.
func parseDue(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q", raw)
	}
	return &t, nil
}
