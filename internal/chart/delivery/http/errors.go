package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gantt-planner/internal/chart"
	"gantt-planner/pkg/response"
)

// mapError translates domain errors into the client-facing HTTP response.
// Unknown errors become an opaque 500 so internals never leak.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chart.ErrInvalidWidth),
		errors.Is(err, chart.ErrInvalidView):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
