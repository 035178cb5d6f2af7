package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gantt-planner/internal/model"
	"gantt-planner/internal/report"
	"gantt-planner/internal/report/usecase"
	"gantt-planner/internal/task/repository"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockTaskRepo struct {
	listFunc func(opt repository.ListTasksOptions) ([]model.Task, int, error)
}

func (m *mockTaskRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockTaskRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) DeleteTask(ctx context.Context, id string) error {
	return nil
}

func (m *mockTaskRepo) AddTimeEntry(ctx context.Context, opt repository.AddTimeEntryOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *mockTaskRepo) Version(ctx context.Context) (uint64, error) {
	return 1, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func entry(date time.Time, hours float64, user string) model.TimeEntry {
	return model.TimeEntry{Date: date, Hours: hours, UserID: user}
}

// seededRepo holds three tasks with entries from two people in July.
func seededRepo() *mockTaskRepo {
	return &mockTaskRepo{
		listFunc: func(opt repository.ListTasksOptions) ([]model.Task, int, error) {
			tasks := []model.Task{
				{
					ID: "t-1", Assignee: "alex@example.com",
					Entries: []model.TimeEntry{
						entry(day(2025, 7, 10), 4, "alex@example.com"),
						entry(day(2025, 7, 11), 3.5, "alex@example.com"),
					},
				},
				{
					ID: "t-2", Assignee: "dana@example.com",
					Entries: []model.TimeEntry{
						entry(day(2025, 7, 12), 6, "dana@example.com"),
						entry(day(2025, 7, 20), 2, "alex@example.com"),
					},
				},
				{
					ID: "t-3", Assignee: "dana@example.com",
					Entries: []model.TimeEntry{
						// No user on the entry, falls back to the assignee.
						entry(day(2025, 7, 14), 1, ""),
					},
				},
			}
			return tasks, len(tasks), nil
		},
	}
}

func TestAggregate(t *testing.T) {
	t.Run("Sums Per Assignee Sorted", func(t *testing.T) {
		uc := usecase.New(seededRepo(), &mockLogger{})

		out, err := uc.Aggregate(context.Background(), report.AggregateInput{ProjectID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Rows) != 2 {
			t.Fatalf("got %d rows, want 2: %+v", len(out.Rows), out.Rows)
		}

		alex := out.Rows[0]
		if alex.Assignee != "alex@example.com" {
			t.Fatalf("rows not sorted by assignee: %+v", out.Rows)
		}
		if alex.Hours != 9.5 || alex.EntryCount != 3 || alex.TaskCount != 2 {
			t.Errorf("alex row = %+v, want 9.5h over 3 entries on 2 tasks", alex)
		}

		dana := out.Rows[1]
		if dana.Hours != 7 || dana.EntryCount != 2 || dana.TaskCount != 2 {
			t.Errorf("dana row = %+v, want 7h over 2 entries on 2 tasks", dana)
		}

		if out.TotalHours != 16.5 {
			t.Errorf("TotalHours = %v, want 16.5", out.TotalHours)
		}
	})

	t.Run("Range Bounds Are Inclusive", func(t *testing.T) {
		uc := usecase.New(seededRepo(), &mockLogger{})

		out, err := uc.Aggregate(context.Background(), report.AggregateInput{
			ProjectID: "p-1",
			From:      day(2025, 7, 11),
			To:        day(2025, 7, 12),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// July 11 (3.5h alex) and July 12 (6h dana) survive.
		if out.TotalHours != 9.5 {
			t.Errorf("TotalHours = %v, want 9.5", out.TotalHours)
		}
		if len(out.Rows) != 2 {
			t.Fatalf("got %d rows, want 2", len(out.Rows))
		}
		if out.Rows[0].Hours != 3.5 || out.Rows[0].EntryCount != 1 {
			t.Errorf("alex row = %+v, want the July 11 entry only", out.Rows[0])
		}
	})

	t.Run("Open Ended From", func(t *testing.T) {
		uc := usecase.New(seededRepo(), &mockLogger{})

		out, err := uc.Aggregate(context.Background(), report.AggregateInput{
			ProjectID: "p-1",
			To:        day(2025, 7, 11),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.TotalHours != 7.5 {
			t.Errorf("TotalHours = %v, want everything up to July 11", out.TotalHours)
		}
	})

	t.Run("Reversed Range Error", func(t *testing.T) {
		uc := usecase.New(seededRepo(), &mockLogger{})

		_, err := uc.Aggregate(context.Background(), report.AggregateInput{
			From: day(2025, 7, 20),
			To:   day(2025, 7, 10),
		})
		if !errors.Is(err, report.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("No Entries Yields Empty Rows", func(t *testing.T) {
		repoMock := &mockTaskRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, int, error) {
				return []model.Task{{ID: "t-1", Assignee: "alex@example.com"}}, 1, nil
			},
		}
		uc := usecase.New(repoMock, &mockLogger{})

		out, err := uc.Aggregate(context.Background(), report.AggregateInput{ProjectID: "p-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Rows) != 0 || out.TotalHours != 0 {
			t.Errorf("expected empty report, got %+v", out)
		}
	})

	t.Run("Repository Error", func(t *testing.T) {
		repoMock := &mockTaskRepo{
			listFunc: func(opt repository.ListTasksOptions) ([]model.Task, int, error) {
				return nil, 0, errors.New("db error")
			},
		}
		uc := usecase.New(repoMock, &mockLogger{})

		if _, err := uc.Aggregate(context.Background(), report.AggregateInput{}); err == nil {
			t.Error("expected repository error to propagate")
		}
	})
}
