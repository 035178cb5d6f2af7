package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"gantt-planner/internal/model"
	repo "gantt-planner/internal/task/repository"
)

// CreateTask stores a new Task and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()
	task := model.Task{
		ID:             uuid.NewString(),
		ProjectID:      opt.ProjectID,
		Name:           opt.Name,
		Assignee:       opt.Assignee,
		StartDate:      opt.StartDate,
		EndDate:        opt.EndDate,
		EstimatedHours: opt.EstimatedHours,
		Status:         opt.Status,
		Color:          opt.Color,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks[task.ID] = cloneTask(task)
	r.version++

	return task, nil
}

// GetOneTask retrieves a single Task by ID.
// Returns zero-value Task (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	return cloneTask(task), nil
}

// ListTasks returns a filtered, ordered page of Tasks and the total count
// of matches. Limit <= 0 returns every match.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	r.mu.RLock()
	matches := make([]model.Task, 0, len(r.tasks))
	for _, task := range r.tasks {
		if opt.ProjectID != "" && task.ProjectID != opt.ProjectID {
			continue
		}
		if opt.Assignee != "" && task.Assignee != opt.Assignee {
			continue
		}
		if opt.Status != "" && task.Status != opt.Status {
			continue
		}
		matches = append(matches, cloneTask(task))
	}
	r.mu.RUnlock()

	sortTasks(matches, opt.OrderBy)
	total := len(matches)

	if opt.Offset > 0 {
		if opt.Offset >= total {
			return []model.Task{}, total, nil
		}
		matches = matches[opt.Offset:]
	}
	if opt.Limit > 0 && len(matches) > opt.Limit {
		matches = matches[:opt.Limit]
	}
	return matches, total, nil
}

// UpdateTask replaces the mutable fields of a Task by ID and returns the
// updated entity. Returns zero-value Task when the ID does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}

	task.Name = opt.Name
	task.Assignee = opt.Assignee
	task.StartDate = opt.StartDate
	task.EndDate = opt.EndDate
	task.EstimatedHours = opt.EstimatedHours
	task.Status = opt.Status
	task.Color = opt.Color
	task.UpdatedAt = time.Now().UTC()

	r.tasks[opt.ID] = cloneTask(task)
	r.version++

	return task, nil
}

// DeleteTask removes a Task by ID. Deleting a missing ID is a no-op.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; ok {
		delete(r.tasks, id)
		r.version++
	}
	return nil
}

// AddTimeEntry appends a time entry to a Task and returns the updated
// entity. Returns zero-value Task when the ID does not exist.
func (r *implRepository) AddTimeEntry(ctx context.Context, opt repo.AddTimeEntryOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[opt.TaskID]
	if !ok {
		return model.Task{}, nil
	}

	entry := opt.Entry
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	task.Entries = append(task.Entries, entry)
	task.UpdatedAt = time.Now().UTC()

	r.tasks[opt.TaskID] = cloneTask(task)
	r.version++

	return cloneTask(task), nil
}

// Version reports the current write counter.
func (r *implRepository) Version(ctx context.Context) (uint64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version, nil
}

// sortTasks orders tasks for stable chart rows: start date first, then
// creation time, then ID as the final tie-break.
func sortTasks(tasks []model.Task, orderBy string) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if orderBy == "name" && a.Name != b.Name {
			return a.Name < b.Name
		}
		if !a.StartDate.Equal(b.StartDate) {
			return a.StartDate.Before(b.StartDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
