package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"gantt-planner/internal/chart"
	charthttp "gantt-planner/internal/chart/delivery/http"
	"gantt-planner/internal/chart/svg"
	"gantt-planner/internal/metrics"
	"gantt-planner/internal/model"
	"gantt-planner/pkg/timegrid"
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

type mockChartUseCase struct {
	layoutOutput chart.LayoutOutput
	layoutErr    error

	lastInput chart.LayoutInput
}

func (m *mockChartUseCase) Layout(ctx context.Context, input chart.LayoutInput) (chart.LayoutOutput, error) {
	m.lastInput = input
	return m.layoutOutput, m.layoutErr
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// julyLayout is a month view of July 2025 at 1000px with one bar.
func julyLayout() chart.LayoutOutput {
	return chart.LayoutOutput{
		Window:       timegrid.Window{Start: day(2025, 7, 1), End: day(2025, 8, 1)},
		PixelsPerDay: 1000.0 / 31,
		Ticks: []timegrid.Tick{
			{Time: day(2025, 7, 1), Label: "Week 1", X: 0, Width: 200},
		},
		Bars: []chart.BarGeometry{{
			TaskID: "t-1",
			Name:   "Build parser",
			Status: model.TaskStatusActive,
			Row:    0,
			X:      290.3,
			Y:      0,
			Width:  96.8,
			Height: 50,
		}},
		Bands: []chart.Band{
			{Kind: chart.BandWeekend, X: 161.3, Width: 32.3},
		},
		TotalHeight: 60,
	}
}

func newTestRouter(muc *mockChartUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := charthttp.New(&mockLogger{}, muc, svg.NewRenderer(svg.DefaultTheme()), metrics.New(prometheus.NewRegistry()))
	charthttp.RegisterRoutes(engine.Group("/api/v1"), h)
	return engine
}

func doGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestChartHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		muc := &mockChartUseCase{layoutOutput: julyLayout()}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart?granularity=month&width=1000&at=2025-07-16")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}

		body := w.Body.String()
		if !strings.Contains(body, `"error_code":0`) {
			t.Errorf("missing success envelope: %s", body)
		}
		if !strings.Contains(body, `"task_id":"t-1"`) {
			t.Errorf("bar missing from body: %s", body)
		}
		if !strings.Contains(body, `"window_start":"2025-07-01 00:00:00"`) {
			t.Errorf("window missing from body: %s", body)
		}
		if !strings.Contains(body, `"kind":"weekend"`) {
			t.Errorf("band missing from body: %s", body)
		}

		if muc.lastInput.ProjectID != "p-1" {
			t.Errorf("ProjectID = %q, want p-1", muc.lastInput.ProjectID)
		}
		if muc.lastInput.WidthPx != 1000 {
			t.Errorf("WidthPx = %v, want 1000", muc.lastInput.WidthPx)
		}
		if muc.lastInput.View.Granularity != timegrid.GranularityMonth {
			t.Errorf("Granularity = %q, want month", muc.lastInput.View.Granularity)
		}
		if !muc.lastInput.At.Equal(day(2025, 7, 16)) {
			t.Errorf("At = %v, want July 16", muc.lastInput.At)
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		muc := &mockChartUseCase{layoutOutput: julyLayout()}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if muc.lastInput.WidthPx != 1280 {
			t.Errorf("WidthPx = %v, want default 1280", muc.lastInput.WidthPx)
		}
		if muc.lastInput.View.Granularity != timegrid.GranularityMonth {
			t.Errorf("Granularity = %q, want default month", muc.lastInput.View.Granularity)
		}
		if !muc.lastInput.At.IsZero() {
			t.Errorf("At = %v, want zero so the usecase uses now", muc.lastInput.At)
		}
	})

	t.Run("Unknown Granularity Rejected", func(t *testing.T) {
		engine := newTestRouter(&mockChartUseCase{})

		w := doGet(t, engine, "/api/v1/projects/p-1/chart?granularity=fortnight")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Bad Date Rejected", func(t *testing.T) {
		engine := newTestRouter(&mockChartUseCase{})

		w := doGet(t, engine, "/api/v1/projects/p-1/chart?at=16.07.2025")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Year Requires Range", func(t *testing.T) {
		engine := newTestRouter(&mockChartUseCase{})

		w := doGet(t, engine, "/api/v1/projects/p-1/chart?granularity=year")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Year Passes Range Through", func(t *testing.T) {
		muc := &mockChartUseCase{layoutOutput: julyLayout()}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart?granularity=year&from=2025-01-01&to=2025-12-31")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if !muc.lastInput.View.RefStart.Equal(day(2025, 1, 1)) {
			t.Errorf("RefStart = %v, want Jan 1", muc.lastInput.View.RefStart)
		}
		if !muc.lastInput.View.RefEnd.Equal(day(2025, 12, 31)) {
			t.Errorf("RefEnd = %v, want Dec 31", muc.lastInput.View.RefEnd)
		}
	})

	t.Run("Domain Error Is Bad Request", func(t *testing.T) {
		muc := &mockChartUseCase{layoutErr: chart.ErrInvalidWidth}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart?width=-5")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Internal Error Is Hidden", func(t *testing.T) {
		muc := &mockChartUseCase{layoutErr: errors.New("cache exploded")}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		body := w.Body.String()
		if strings.Contains(body, "cache exploded") {
			t.Errorf("internal detail leaked: %s", body)
		}
		if !strings.Contains(body, "Something went wrong") {
			t.Errorf("missing opaque message: %s", body)
		}
	})
}

func TestChartSVGHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		muc := &mockChartUseCase{layoutOutput: julyLayout()}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart.svg?granularity=month&width=1000&at=2025-07-16")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "image/svg+xml") {
			t.Errorf("Content-Type = %q, want image/svg+xml", ct)
		}

		body := w.Body.String()
		if !strings.HasPrefix(body, `<?xml version="1.0"`) {
			t.Errorf("not an XML document: %s", body[:minInt(len(body), 60)])
		}
		if !strings.Contains(body, "<title>Build parser</title>") {
			t.Error("task bar missing from SVG")
		}
		if !strings.HasSuffix(body, "</svg>") {
			t.Error("SVG document not closed")
		}
	})

	t.Run("Empty Chart Renders Placeholder", func(t *testing.T) {
		out := julyLayout()
		out.Bars = nil
		out.Bands = nil
		out.TotalHeight = 0
		out.Empty = true
		muc := &mockChartUseCase{layoutOutput: out}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart.svg")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), "No tasks to display") {
			t.Error("placeholder text missing")
		}
	})

	t.Run("Error Keeps JSON Envelope", func(t *testing.T) {
		muc := &mockChartUseCase{layoutErr: errors.New("boom")}
		engine := newTestRouter(muc)

		w := doGet(t, engine, "/api/v1/projects/p-1/chart.svg")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"error_code"`) {
			t.Errorf("error body is not the JSON envelope: %s", w.Body.String())
		}
	})
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
