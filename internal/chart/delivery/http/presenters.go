package http

import (
	"fmt"
	"time"

	"gantt-planner/internal/chart"
	"gantt-planner/pkg/response"
	"gantt-planner/pkg/timegrid"
)

// defaultWidthPx is used when the client does not report a container
// width, wide enough for a readable month view.
const defaultWidthPx = 1280

// parseDate parses the strict YYYY-MM-DD wire format used by the API.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// --- Request DTOs ---

type chartReq struct {
	ProjectID   string  `form:"-"` // populated from URI param
	Granularity string  `form:"granularity" binding:"omitempty,oneof=day week month quarter year"`
	Width       float64 `form:"width"`
	From        string  `form:"from"`
	To          string  `form:"to"`
	At          string  `form:"at"`

	view timegrid.View
	at   time.Time
}

// validate fills derived fields. The year view shows a caller-chosen
// range, so it is the one granularity that requires from and to.
func (r *chartReq) validate() error {
	if r.Granularity == "" {
		r.Granularity = string(timegrid.GranularityMonth)
	}
	if r.Width == 0 {
		r.Width = defaultWidthPx
	}

	r.view = timegrid.View{Granularity: timegrid.Granularity(r.Granularity)}

	if r.From != "" {
		from, err := parseDate(r.From)
		if err != nil {
			return err
		}
		r.view.RefStart = from
	}
	if r.To != "" {
		to, err := parseDate(r.To)
		if err != nil {
			return err
		}
		r.view.RefEnd = to
	}
	if r.view.Granularity == timegrid.GranularityYear && (r.From == "" || r.To == "") {
		return fmt.Errorf("granularity year requires from and to")
	}

	if r.At != "" {
		at, err := parseDate(r.At)
		if err != nil {
			return err
		}
		r.at = at
	}
	return nil
}

func (r chartReq) toInput() chart.LayoutInput {
	return chart.LayoutInput{
		ProjectID: r.ProjectID,
		View:      r.view,
		WidthPx:   r.Width,
		At:        r.at,
	}
}

// --- Response DTOs ---

type tickResp struct {
	Time  response.DateTime `json:"time"`
	Label string            `json:"label"`
	X     float64           `json:"x"`
	Width float64           `json:"width"`
}

type barResp struct {
	TaskID string  `json:"task_id"`
	Name   string  `json:"name"`
	Status string  `json:"status"`
	Color  string  `json:"color,omitempty"`
	Row    int     `json:"row"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type bandResp struct {
	Kind  string  `json:"kind"`
	Label string  `json:"label,omitempty"`
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

type chartResp struct {
	WindowStart  response.DateTime `json:"window_start"`
	WindowEnd    response.DateTime `json:"window_end"`
	PixelsPerDay float64           `json:"pixels_per_day"`
	TotalHeight  float64           `json:"total_height"`
	Empty        bool              `json:"empty"`
	Ticks        []tickResp        `json:"ticks"`
	Bars         []barResp         `json:"bars"`
	Bands        []bandResp        `json:"bands"`
}

func (h *handler) newChartResp(out chart.LayoutOutput) chartResp {
	resp := chartResp{
		WindowStart:  response.DateTime(out.Window.Start),
		WindowEnd:    response.DateTime(out.Window.End),
		PixelsPerDay: out.PixelsPerDay,
		TotalHeight:  out.TotalHeight,
		Empty:        out.Empty,
		Ticks:        make([]tickResp, 0, len(out.Ticks)),
		Bars:         make([]barResp, 0, len(out.Bars)),
		Bands:        make([]bandResp, 0, len(out.Bands)),
	}

	for _, t := range out.Ticks {
		resp.Ticks = append(resp.Ticks, tickResp{
			Time:  response.DateTime(t.Time),
			Label: t.Label,
			X:     t.X,
			Width: t.Width,
		})
	}
	for _, b := range out.Bars {
		resp.Bars = append(resp.Bars, barResp{
			TaskID: b.TaskID,
			Name:   b.Name,
			Status: string(b.Status),
			Color:  b.Color,
			Row:    b.Row,
			X:      b.X,
			Y:      b.Y,
			Width:  b.Width,
			Height: b.Height,
		})
	}
	for _, b := range out.Bands {
		resp.Bands = append(resp.Bands, bandResp{
			Kind:  string(b.Kind),
			Label: b.Label,
			X:     b.X,
			Width: b.Width,
		})
	}

	return resp
}
