package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"gantt-planner/internal/chart"
	"gantt-planner/internal/chart/svg"
	"gantt-planner/internal/metrics"
	"gantt-planner/internal/report"
	"gantt-planner/internal/task"
	"gantt-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Protection
	rateLimitPerMin int

	// Domains
	taskUC   task.UseCase
	chartUC  chart.UseCase
	reportUC report.UseCase
	renderer *svg.Renderer

	// Observability
	metrics         *metrics.Collector
	metricsRegistry *prometheus.Registry
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RateLimitPerMin is the per-client budget on /api/v1 routes.
	RateLimitPerMin int

	TaskUseCase   task.UseCase
	ChartUseCase  chart.UseCase
	ReportUseCase report.UseCase
	Renderer      *svg.Renderer

	Metrics         *metrics.Collector
	MetricsRegistry *prometheus.Registry
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		taskUC:          cfg.TaskUseCase,
		chartUC:         cfg.ChartUseCase,
		reportUC:        cfg.ReportUseCase,
		renderer:        cfg.Renderer,
		metrics:         cfg.Metrics,
		metricsRegistry: cfg.MetricsRegistry,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.chartUC == nil {
		return errors.New("chart usecase is required")
	}
	if srv.reportUC == nil {
		return errors.New("report usecase is required")
	}
	if srv.renderer == nil {
		return errors.New("renderer is required")
	}
	if srv.metrics == nil || srv.metricsRegistry == nil {
		return errors.New("metrics collector and registry are required")
	}
	return nil
}
