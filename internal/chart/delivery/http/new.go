package http

import (
	"github.com/gin-gonic/gin"

	"gantt-planner/internal/chart"
	"gantt-planner/internal/chart/svg"
	"gantt-planner/internal/metrics"
	"gantt-planner/pkg/log"
)

// Handler is the public interface for the chart HTTP delivery layer.
type Handler interface {
	Chart(c *gin.Context)
	ChartSVG(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       chart.UseCase
	renderer *svg.Renderer
	metrics  *metrics.Collector
}

// New creates a new HTTP handler for the chart domain.
func New(l log.Logger, uc chart.UseCase, renderer *svg.Renderer, m *metrics.Collector) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		renderer: renderer,
		metrics:  m,
	}
}
