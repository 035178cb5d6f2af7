package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"gantt-planner/internal/task"
	"gantt-planner/pkg/response"
)

var errIDRequired = errors.New("id is required")

// mapError translates domain errors into the client-facing HTTP response.
// Unknown errors become an opaque 500 so internals never leak.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, task.ErrInvalidDateRange),
		errors.Is(err, task.ErrInvalidHours),
		errors.Is(err, task.ErrInvalidPayload):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
