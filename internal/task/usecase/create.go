package usecase

import (
	"context"

	"gantt-planner/internal/model"
	"gantt-planner/internal/task"
	repo "gantt-planner/internal/task/repository"
)

// Create creates a new Task after validating its date range.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if input.Name == "" || input.StartDate.IsZero() {
		return task.CreateTaskOutput{}, task.ErrInvalidPayload
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return task.CreateTaskOutput{}, task.ErrInvalidDateRange
	}

	status := input.Status
	if status == "" {
		status = model.TaskStatusPlanned
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		ProjectID:      input.ProjectID,
		Name:           input.Name,
		Assignee:       input.Assignee,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		EstimatedHours: input.EstimatedHours,
		Status:         status,
		Color:          input.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.CreateTaskOutput{}, err
	}

	return task.CreateTaskOutput{Task: created}, nil
}
