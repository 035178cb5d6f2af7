package http

import (
	"github.com/gin-gonic/gin"

	"gantt-planner/pkg/response"
)

// Hours godoc
// @Summary     Hours report
// @Description Sums logged hours per assignee for a project, optionally bounded to a date range.
// @Tags        Report
// @Accept      json
// @Produce     json
// @Param       id   path  string true  "Project ID"
// @Param       from query string false "First entry date to include (YYYY-MM-DD)"
// @Param       to   query string false "Last entry date to include (YYYY-MM-DD)"
// @Success     200 {object} hoursResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id}/reports/hours [GET]
func (h *handler) Hours(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHoursReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Aggregate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Aggregate: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newHoursResp(output))
}
