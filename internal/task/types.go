package task

import (
	"time"

	"gantt-planner/internal/model"
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	ProjectID      string
	Name           string
	Assignee       string
	StartDate      time.Time
	EndDate        *time.Time
	EstimatedHours float64
	Status         model.TaskStatus
	Color          string
}

type ListTasksInput struct {
	ProjectID string
	Assignee  string
	Status    model.TaskStatus
	Limit     int
	Offset    int
}

type UpdateTaskInput struct {
	ID             string
	Name           string
	Assignee       string
	StartDate      *time.Time
	EndDate        *time.Time
	EstimatedHours *float64
	Status         model.TaskStatus
	Color          string
}

type LogTimeInput struct {
	TaskID string
	Date   time.Time
	Hours  float64
	UserID string
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

type LogTimeOutput struct {
	Task model.Task
}
