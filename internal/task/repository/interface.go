package repository

import (
	"context"

	"gantt-planner/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	AddTimeEntry(ctx context.Context, opt AddTimeEntryOptions) (model.Task, error)

	// Version increases on every write. Layout caches key on it so
	// stale geometry is never served after a mutation.
	Version(ctx context.Context) (uint64, error)
}
