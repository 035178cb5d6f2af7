package memory_test

import (
	"context"
	"testing"
	"time"

	"gantt-planner/internal/model"
	"gantt-planner/internal/task/repository"
	"gantt-planner/internal/task/repository/memory"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func seedTasks() []model.Task {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return []model.Task{
		{ID: "t-b", ProjectID: "p-1", Name: "Backend", Assignee: "lee@example.com", StartDate: start.AddDate(0, 0, 9), Status: model.TaskStatusPlanned},
		{ID: "t-a", ProjectID: "p-1", Name: "Design", Assignee: "dana@example.com", StartDate: start, Status: model.TaskStatusActive},
		{ID: "t-c", ProjectID: "p-2", Name: "Audit", Assignee: "dana@example.com", StartDate: start.AddDate(0, 0, 4), Status: model.TaskStatusActive},
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, nil)

	end := time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC)
	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		ProjectID: "p-1",
		Name:      "Design",
		StartDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Status:    model.TaskStatusPlanned,
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created task has no ID")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps not set")
	}

	got, err := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: created.ID})
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.Name != "Design" || got.EndDate == nil {
		t.Errorf("stored task mismatch: %+v", got)
	}
}

func TestGetMissingReturnsZeroValue(t *testing.T) {
	repo := memory.New(nopLogger{}, nil)

	got, err := repo.GetOneTask(context.Background(), repository.GetOneTaskOptions{ID: "missing"})
	if err != nil {
		t.Fatalf("not-found must not error, got %v", err)
	}
	if got.ID != "" {
		t.Errorf("expected zero value, got %+v", got)
	}
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, seedTasks())

	t.Run("orders by start date", func(t *testing.T) {
		tasks, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
		if err != nil {
			t.Fatalf("ListTasks: %v", err)
		}
		if total != 3 || len(tasks) != 3 {
			t.Fatalf("got %d/%d tasks", len(tasks), total)
		}
		if tasks[0].ID != "t-a" || tasks[1].ID != "t-c" || tasks[2].ID != "t-b" {
			t.Errorf("wrong order: %s, %s, %s", tasks[0].ID, tasks[1].ID, tasks[2].ID)
		}
	})

	t.Run("filters by project", func(t *testing.T) {
		tasks, total, _ := repo.ListTasks(ctx, repository.ListTasksOptions{ProjectID: "p-1"})
		if total != 2 {
			t.Errorf("expected 2 matches, got %d", total)
		}
		for _, task := range tasks {
			if task.ProjectID != "p-1" {
				t.Errorf("leaked task from %s", task.ProjectID)
			}
		}
	})

	t.Run("filters by assignee and status", func(t *testing.T) {
		_, total, _ := repo.ListTasks(ctx, repository.ListTasksOptions{
			Assignee: "dana@example.com",
			Status:   model.TaskStatusActive,
		})
		if total != 2 {
			t.Errorf("expected 2 matches, got %d", total)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		tasks, total, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Limit: 2, Offset: 1})
		if total != 3 {
			t.Errorf("total must ignore pagination, got %d", total)
		}
		if len(tasks) != 2 || tasks[0].ID != "t-c" {
			t.Errorf("wrong page: %+v", tasks)
		}
	})

	t.Run("offset past end", func(t *testing.T) {
		tasks, total, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Offset: 10})
		if total != 3 || len(tasks) != 0 {
			t.Errorf("expected empty page with total 3, got %d/%d", len(tasks), total)
		}
	})

	t.Run("orders by name when asked", func(t *testing.T) {
		tasks, _, _ := repo.ListTasks(ctx, repository.ListTasksOptions{OrderBy: "name"})
		if tasks[0].Name != "Audit" || tasks[2].Name != "Design" {
			t.Errorf("wrong name order: %s ... %s", tasks[0].Name, tasks[2].Name)
		}
	})
}

func TestUpdateTask(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, seedTasks())

	updated, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:             "t-a",
		Name:           "Design v2",
		Assignee:       "dana@example.com",
		StartDate:      time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		EstimatedHours: 16,
		Status:         model.TaskStatusDone,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Name != "Design v2" || updated.Status != model.TaskStatusDone {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not bumped")
	}

	missing, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: "nope"})
	if err != nil || missing.ID != "" {
		t.Errorf("missing update: task=%+v err=%v", missing, err)
	}
}

func TestDeleteTask(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, seedTasks())

	if err := repo.DeleteTask(ctx, "t-a"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	got, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "t-a"})
	if got.ID != "" {
		t.Error("task still present after delete")
	}

	if err := repo.DeleteTask(ctx, "t-a"); err != nil {
		t.Errorf("double delete must be a no-op, got %v", err)
	}
}

func TestAddTimeEntry(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, seedTasks())

	updated, err := repo.AddTimeEntry(ctx, repository.AddTimeEntryOptions{
		TaskID: "t-a",
		Entry: model.TimeEntry{
			Date:   time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
			Hours:  6,
			UserID: "dana@example.com",
		},
	})
	if err != nil {
		t.Fatalf("AddTimeEntry: %v", err)
	}
	if len(updated.Entries) != 1 || updated.Entries[0].ID == "" {
		t.Errorf("entry not stored with ID: %+v", updated.Entries)
	}
	if updated.LoggedHours() != 6 {
		t.Errorf("logged hours = %v", updated.LoggedHours())
	}
}

func TestVersionBumpsOnWrites(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, seedTasks())

	v0, _ := repo.Version(ctx)

	repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "t-a"})
	repo.ListTasks(ctx, repository.ListTasksOptions{})
	v1, _ := repo.Version(ctx)
	if v1 != v0 {
		t.Errorf("reads must not bump version: %d -> %d", v0, v1)
	}

	repo.CreateTask(ctx, repository.CreateTaskOptions{Name: "New", StartDate: time.Now()})
	v2, _ := repo.Version(ctx)
	if v2 != v1+1 {
		t.Errorf("create must bump version: %d -> %d", v1, v2)
	}

	repo.DeleteTask(ctx, "t-a")
	v3, _ := repo.Version(ctx)
	if v3 != v2+1 {
		t.Errorf("delete must bump version: %d -> %d", v2, v3)
	}
}

func TestStoredStateIsIsolated(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(nopLogger{}, seedTasks())

	repo.AddTimeEntry(ctx, repository.AddTimeEntryOptions{
		TaskID: "t-a",
		Entry:  model.TimeEntry{Date: time.Now(), Hours: 2, UserID: "dana@example.com"},
	})

	got, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "t-a"})
	got.Entries[0].Hours = 99
	got.Name = "tampered"

	again, _ := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: "t-a"})
	if again.Entries[0].Hours != 2 || again.Name == "tampered" {
		t.Errorf("stored task aliased by returned value: %+v", again)
	}
}
