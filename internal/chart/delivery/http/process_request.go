package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processChartReq binds and validates the chart query parameters + URI
// param. validate parses dates into the request, so it must complete
// before the request is returned.
func (h *handler) processChartReq(c *gin.Context) (chartReq, error) {
	var req chartReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	req.ProjectID = c.Param("id")
	if req.ProjectID == "" {
		return req, fmt.Errorf("project id is required")
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}
