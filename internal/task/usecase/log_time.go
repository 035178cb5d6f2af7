package usecase

import (
	"context"

	"gantt-planner/internal/model"
	"gantt-planner/internal/task"
	repo "gantt-planner/internal/task/repository"
)

// LogTime appends a time entry to a Task and returns the updated Task.
func (uc *implUseCase) LogTime(ctx context.Context, input task.LogTimeInput) (task.LogTimeOutput, error) {
	if input.Hours <= 0 {
		return task.LogTimeOutput{}, task.ErrInvalidHours
	}
	if input.Date.IsZero() {
		return task.LogTimeOutput{}, task.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: input.TaskID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LogTime GetOneTask: %v", err)
		return task.LogTimeOutput{}, err
	}
	if existing.ID == "" {
		return task.LogTimeOutput{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.AddTimeEntry(ctx, repo.AddTimeEntryOptions{
		TaskID: input.TaskID,
		Entry: model.TimeEntry{
			Date:   input.Date,
			Hours:  input.Hours,
			UserID: input.UserID,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.LogTime AddTimeEntry: %v", err)
		return task.LogTimeOutput{}, err
	}

	return task.LogTimeOutput{Task: updated}, nil
}
