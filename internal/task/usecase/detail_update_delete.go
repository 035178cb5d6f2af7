package usecase

import (
	"context"

	"gantt-planner/internal/task"
	repo "gantt-planner/internal/task/repository"
)

// Detail retrieves a single Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	found, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return task.DetailTaskOutput{}, err
	}
	if found.ID == "" {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: found}, nil
}

// Update modifies an existing Task. Absent fields keep their current
// values. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	if existing.ID == "" {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	opt := repo.UpdateTaskOptions{
		ID:             input.ID,
		Name:           uc.coalesce(input.Name, existing.Name),
		Assignee:       uc.coalesce(input.Assignee, existing.Assignee),
		StartDate:      existing.StartDate,
		EndDate:        existing.EndDate,
		EstimatedHours: existing.EstimatedHours,
		Status:         existing.Status,
		Color:          uc.coalesce(input.Color, existing.Color),
	}
	if input.StartDate != nil {
		opt.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		opt.EndDate = input.EndDate
	}
	if input.EstimatedHours != nil {
		opt.EstimatedHours = *input.EstimatedHours
	}
	if input.Status != "" {
		opt.Status = input.Status
	}

	if opt.EndDate != nil && opt.EndDate.Before(opt.StartDate) {
		return task.UpdateTaskOutput{}, task.ErrInvalidDateRange
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.UpdateTaskOutput{}, err
	}
	return task.UpdateTaskOutput{Task: updated}, nil
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneTask: %v", err)
		return err
	}
	if existing.ID == "" {
		return task.ErrTaskNotFound
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
