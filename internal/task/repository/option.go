package repository

import (
	"time"

	"gantt-planner/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	ProjectID      string
	Name           string
	Assignee       string
	StartDate      time.Time
	EndDate        *time.Time
	EstimatedHours float64
	Status         model.TaskStatus
	Color          string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
type GetOneTaskOptions struct {
	ID string
}

// ListTasksOptions holds filter and pagination parameters for listing Tasks.
// Zero-value filters are skipped. Results are ordered by start date unless
// OrderBy says otherwise.
type ListTasksOptions struct {
	ProjectID string
	Assignee  string
	Status    model.TaskStatus
	Limit     int
	Offset    int
	OrderBy   string
}

// UpdateTaskOptions holds parameters for updating an existing Task.
// The full post-merge state is passed in; merging happens in the use case.
type UpdateTaskOptions struct {
	ID             string
	Name           string
	Assignee       string
	StartDate      time.Time
	EndDate        *time.Time
	EstimatedHours float64
	Status         model.TaskStatus
	Color          string
}

// AddTimeEntryOptions holds parameters for appending a time entry.
type AddTimeEntryOptions struct {
	TaskID string
	Entry  model.TimeEntry
}
