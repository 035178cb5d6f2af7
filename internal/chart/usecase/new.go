package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"gantt-planner/internal/chart"
	"gantt-planner/internal/metrics"
	"gantt-planner/internal/task/repository"
	"gantt-planner/internal/vacation"
	"gantt-planner/pkg/log"
	"gantt-planner/pkg/timegrid"
)

const (
	// cacheTTL bounds how stale cached vacation bands can get; task
	// mutations invalidate through the repository version instead.
	cacheTTL  = 5 * time.Minute
	cacheSize = 256
)

// implUseCase is the private implementation of chart.UseCase.
type implUseCase struct {
	grid    *timegrid.Grid
	repo    repository.Repository
	vacs    vacation.Source
	cache   *expirable.LRU[string, chart.LayoutOutput]
	metrics *metrics.Collector
	l       log.Logger
}

// New creates a new chart UseCase implementation.
func New(grid *timegrid.Grid, repo repository.Repository, vacs vacation.Source, m *metrics.Collector, l log.Logger) *implUseCase {
	return &implUseCase{
		grid:    grid,
		repo:    repo,
		vacs:    vacs,
		cache:   expirable.NewLRU[string, chart.LayoutOutput](cacheSize, nil, cacheTTL),
		metrics: m,
		l:       l,
	}
}
