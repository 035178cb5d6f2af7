package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"gantt-planner/internal/model"
	"gantt-planner/internal/task"
	taskhttp "gantt-planner/internal/task/delivery/http"
	"gantt-planner/pkg/response"
)

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

type mockTaskUseCase struct {
	createOutput  task.CreateTaskOutput
	createErr     error
	listOutput    task.ListTasksOutput
	listErr       error
	detailOutput  task.DetailTaskOutput
	detailErr     error
	updateOutput  task.UpdateTaskOutput
	updateErr     error
	deleteErr     error
	logTimeOutput task.LogTimeOutput
	logTimeErr    error

	lastCreate task.CreateTaskInput
}

func (m *mockTaskUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	m.lastCreate = input
	return m.createOutput, m.createErr
}
func (m *mockTaskUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return m.listOutput, m.listErr
}
func (m *mockTaskUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	return m.detailOutput, m.detailErr
}
func (m *mockTaskUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return m.updateOutput, m.updateErr
}
func (m *mockTaskUseCase) Delete(ctx context.Context, id string) error {
	return m.deleteErr
}
func (m *mockTaskUseCase) LogTime(ctx context.Context, input task.LogTimeInput) (task.LogTimeOutput, error) {
	return m.logTimeOutput, m.logTimeErr
}

func newTestRouter(muc *mockTaskUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := taskhttp.New(&mockLogger{}, muc)
	taskhttp.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		muc := &mockTaskUseCase{
			createOutput: task.CreateTaskOutput{Task: model.Task{
				ID:        "task-1",
				Name:      "Design",
				StartDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
				Status:    model.TaskStatusPlanned,
			}},
		}
		engine := newTestRouter(muc)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", map[string]any{
			"name":       "Design",
			"start_date": "2025-07-10",
			"end_date":   "2025-07-18",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if muc.lastCreate.EndDate == nil || muc.lastCreate.EndDate.Day() != 18 {
			t.Errorf("end date not parsed: %+v", muc.lastCreate.EndDate)
		}

		var resp response.Resp
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal envelope: %v", err)
		}
		if resp.ErrorCode != 0 {
			t.Errorf("error_code = %d", resp.ErrorCode)
		}
	})

	t.Run("Missing Name", func(t *testing.T) {
		engine := newTestRouter(&mockTaskUseCase{})
		w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", map[string]any{
			"start_date": "2025-07-10",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("Bad Date Format", func(t *testing.T) {
		engine := newTestRouter(&mockTaskUseCase{})
		w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", map[string]any{
			"name":       "Design",
			"start_date": "10.07.2025",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("Domain Error Maps To 400", func(t *testing.T) {
		muc := &mockTaskUseCase{createErr: task.ErrInvalidDateRange}
		engine := newTestRouter(muc)
		w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks", map[string]any{
			"name":       "Design",
			"start_date": "2025-07-10",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})
}

func TestDetailHandler(t *testing.T) {
	t.Run("Not Found Maps To 404", func(t *testing.T) {
		muc := &mockTaskUseCase{detailErr: task.ErrTaskNotFound}
		engine := newTestRouter(muc)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/tasks/missing", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("Found", func(t *testing.T) {
		end := time.Date(2025, 7, 18, 0, 0, 0, 0, time.UTC)
		muc := &mockTaskUseCase{detailOutput: task.DetailTaskOutput{Task: model.Task{
			ID:        "task-1",
			Name:      "Design",
			StartDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			EndDate:   &end,
			Status:    model.TaskStatusActive,
			Entries: []model.TimeEntry{
				{ID: "e-1", Date: time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC), Hours: 6, UserID: "dana@example.com"},
			},
		}}}
		engine := newTestRouter(muc)

		w := doJSON(t, engine, http.MethodGet, "/api/v1/tasks/task-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		body := w.Body.String()
		for _, want := range []string{`"start_date":"2025-07-10"`, `"end_date":"2025-07-18"`, `"logged_hours":6`} {
			if !bytes.Contains([]byte(body), []byte(want)) {
				t.Errorf("body missing %s: %s", want, body)
			}
		}
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("Internal Error Hides Details", func(t *testing.T) {
		muc := &mockTaskUseCase{updateErr: context.DeadlineExceeded}
		engine := newTestRouter(muc)
		w := doJSON(t, engine, http.MethodPut, "/api/v1/tasks/task-1", map[string]any{"name": "x"})
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d", w.Code)
		}
		if bytes.Contains(w.Body.Bytes(), []byte("deadline")) {
			t.Errorf("internal error leaked: %s", w.Body.String())
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	muc := &mockTaskUseCase{deleteErr: task.ErrTaskNotFound}
	engine := newTestRouter(muc)
	w := doJSON(t, engine, http.MethodDelete, "/api/v1/tasks/missing", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d", w.Code)
	}
}

func TestLogTimeHandler(t *testing.T) {
	t.Run("Rejects Zero Hours Before UseCase", func(t *testing.T) {
		engine := newTestRouter(&mockTaskUseCase{})
		w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks/task-1/entries", map[string]any{
			"date":  "2025-07-11",
			"hours": 0,
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("Success", func(t *testing.T) {
		muc := &mockTaskUseCase{logTimeOutput: task.LogTimeOutput{Task: model.Task{
			ID:        "task-1",
			Name:      "Design",
			StartDate: time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
			Entries: []model.TimeEntry{
				{ID: "e-1", Date: time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC), Hours: 4, UserID: "dana@example.com"},
			},
		}}}
		engine := newTestRouter(muc)
		w := doJSON(t, engine, http.MethodPost, "/api/v1/tasks/task-1/entries", map[string]any{
			"date":  "2025-07-11",
			"hours": 4,
			"user":  "dana@example.com",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
	})
}
