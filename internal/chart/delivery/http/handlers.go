package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gantt-planner/pkg/response"
)

// Chart godoc
// @Summary     Get chart layout
// @Description Computes the timeline geometry for a project: header ticks, task bars and background bands, scaled to the given container width.
// @Tags        Chart
// @Accept      json
// @Produce     json
// @Param       id          path  string true  "Project ID"
// @Param       granularity query string false "Window granularity (day/week/month/quarter/year, default: month)"
// @Param       width       query number false "Container width in pixels (default: 1280)"
// @Param       from        query string false "Window start for year granularity (YYYY-MM-DD)"
// @Param       to          query string false "Window end for year granularity (YYYY-MM-DD, exclusive)"
// @Param       at          query string false "Reference date the window derives from (YYYY-MM-DD, default: today)"
// @Success     200 {object} chartResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id}/chart [GET]
func (h *handler) Chart(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Layout(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Layout: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newChartResp(output))
}

// ChartSVG godoc
// @Summary     Render chart as SVG
// @Description Renders the project timeline as a standalone SVG document, usable directly in an img tag.
// @Tags        Chart
// @Produce     image/svg+xml
// @Param       id          path  string true  "Project ID"
// @Param       granularity query string false "Window granularity (day/week/month/quarter/year, default: month)"
// @Param       width       query number false "Container width in pixels (default: 1280)"
// @Param       from        query string false "Window start for year granularity (YYYY-MM-DD)"
// @Param       to          query string false "Window end for year granularity (YYYY-MM-DD, exclusive)"
// @Param       at          query string false "Reference date the window derives from (YYYY-MM-DD, default: today)"
// @Success     200 {string} string "SVG document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/projects/{id}/chart.svg [GET]
func (h *handler) ChartSVG(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChartReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Layout(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Layout: %v", err)
		h.mapError(c, err)
		return
	}

	doc := h.renderer.Render(output)
	h.metrics.RecordSVGRender()

	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(doc))
}
