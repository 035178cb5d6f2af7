package model

import "time"

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusPlanned TaskStatus = "planned"
	TaskStatusActive  TaskStatus = "active"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusBlocked TaskStatus = "blocked"
)

// Task is a unit of project work placed on the timeline.
// EndDate is optional: an open-ended task has none and the chart synthesizes
// a span from EstimatedHours (or a fixed default) at layout time.
type Task struct {
	ID             string
	ProjectID      string
	Name           string
	Assignee       string // email of the person the task is assigned to
	StartDate      time.Time
	EndDate        *time.Time // nil for open-ended tasks
	EstimatedHours float64    // 0 means not estimated
	Status         TaskStatus
	Color          string // hex color for the rendered bar, optional
	Entries        []TimeEntry
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TimeEntry is one logged chunk of work against a task.
type TimeEntry struct {
	ID     string
	Date   time.Time
	Hours  float64
	UserID string // email of the person who logged the hours
}

// LoggedHours sums all time entries on the task.
func (t Task) LoggedHours() float64 {
	var total float64
	for _, e := range t.Entries {
		total += e.Hours
	}
	return total
}
