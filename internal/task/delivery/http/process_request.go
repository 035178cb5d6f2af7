package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create task request body.
// validate parses date strings into the request, so it must complete
// before the request is returned.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, fmt.Errorf("id is required")
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

// processLogTimeReq binds and validates the log time request body + URI param.
func (h *handler) processLogTimeReq(c *gin.Context) (logTimeReq, error) {
	var req logTimeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.TaskID = c.Param("id")
	if req.TaskID == "" {
		return req, fmt.Errorf("id is required")
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}
