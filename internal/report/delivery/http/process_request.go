package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processHoursReq binds and validates the hours report query
// parameters + URI param.
func (h *handler) processHoursReq(c *gin.Context) (hoursReq, error) {
	var req hoursReq
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
