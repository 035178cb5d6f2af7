package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"gantt-planner/config"
	_ "gantt-planner/docs" // Swagger docs
	"gantt-planner/internal/chart/svg"
	chartUC "gantt-planner/internal/chart/usecase"
	"gantt-planner/internal/httpserver"
	"gantt-planner/internal/metrics"
	"gantt-planner/internal/model"
	"gantt-planner/internal/plan"
	reportUC "gantt-planner/internal/report/usecase"
	taskMemory "gantt-planner/internal/task/repository/memory"
	taskUC "gantt-planner/internal/task/usecase"
	"gantt-planner/internal/vacation"
	vacGcal "gantt-planner/internal/vacation/gcal"
	vacMemory "gantt-planner/internal/vacation/memory"
	"gantt-planner/pkg/gcalendar"
	"gantt-planner/pkg/log"
	"gantt-planner/pkg/timegrid"
)

// @title       Gantt Planner API
// @description Timeline layout service: resolves calendar windows, lays out task bars on a pixel grid, and renders Gantt charts as JSON geometry or SVG.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Gantt Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Time grid
	grid, err := timegrid.New(cfg.Chart.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chart.Timezone, err)
		grid, _ = timegrid.New("UTC")
	}

	// 4. Plan file seed (optional)
	var seedTasks []model.Task
	var seedVacations []model.VacationRange
	if cfg.Plan.Path != "" {
		planResult, planErr := plan.Load(cfg.Plan.Path)
		if planErr != nil {
			logger.Errorf(ctx, "Failed to load plan file %s: %v", cfg.Plan.Path, planErr)
			return
		}
		seedTasks = planResult.Tasks
		seedVacations = planResult.Vacations
		logger.Infof(ctx, "Plan %q loaded: %d tasks, %d vacations",
			planResult.Project.Name, len(seedTasks), len(seedVacations))
	}

	// 5. Repositories
	taskRepo := taskMemory.New(logger, seedTasks)

	// Google Calendar vacation source (optional), plan seed fallback
	var vacationSource vacation.Source = vacMemory.New(logger, seedVacations)
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
		} else {
			vacationSource = vacGcal.New(logger, calendarClient, cfg.GoogleCalendar.CalendarID)
			logger.Info(ctx, "✅ Google Calendar vacation source initialized")
		}
	}

	// 6. SVG theme
	theme := svg.DefaultTheme()
	if cfg.Chart.ThemePath != "" {
		theme, err = svg.LoadTheme(cfg.Chart.ThemePath)
		if err != nil {
			logger.Warnf(ctx, "Theme file %s not usable, using defaults: %v", cfg.Chart.ThemePath, err)
			theme = svg.DefaultTheme()
		}
	}

	// 7. Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.New(registry)

	// 8. UseCases
	taskUseCase := taskUC.New(taskRepo, logger)
	chartUseCase := chartUC.New(grid, taskRepo, vacationSource, collector, logger)
	reportUseCase := reportUC.New(taskRepo, logger)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		TaskUseCase:     taskUseCase,
		ChartUseCase:    chartUseCase,
		ReportUseCase:   reportUseCase,
		Renderer:        svg.NewRenderer(theme),
		Metrics:         collector,
		MetricsRegistry: registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
