package http

import (
	"fmt"
	"time"

	"gantt-planner/internal/report"
	"gantt-planner/pkg/response"
)

// parseDate parses the strict YYYY-MM-DD wire format used by the API.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(response.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

// --- Request DTOs ---

type hoursReq struct {
	ProjectID string `form:"-"` // populated from URI param
	From      string `form:"from"`
	To        string `form:"to"`

	from time.Time
	to   time.Time
}

func (r *hoursReq) validate() error {
	if r.From != "" {
		from, err := parseDate(r.From)
		if err != nil {
			return err
		}
		r.from = from
	}
	if r.To != "" {
		to, err := parseDate(r.To)
		if err != nil {
			return err
		}
		r.to = to
	}
	return nil
}

func (r hoursReq) toInput() report.AggregateInput {
	return report.AggregateInput{
		ProjectID: r.ProjectID,
		From:      r.from,
		To:        r.to,
	}
}

// --- Response DTOs ---

type assigneeRowResp struct {
	Assignee   string  `json:"assignee"`
	Hours      float64 `json:"hours"`
	EntryCount int     `json:"entry_count"`
	TaskCount  int     `json:"task_count"`
}

type hoursResp struct {
	Rows       []assigneeRowResp `json:"rows"`
	TotalHours float64           `json:"total_hours"`
}

func (h *handler) newHoursResp(out report.AggregateOutput) hoursResp {
	resp := hoursResp{
		Rows:       make([]assigneeRowResp, 0, len(out.Rows)),
		TotalHours: out.TotalHours,
	}
	for _, row := range out.Rows {
		resp.Rows = append(resp.Rows, assigneeRowResp{
			Assignee:   row.Assignee,
			Hours:      row.Hours,
			EntryCount: row.EntryCount,
			TaskCount:  row.TaskCount,
		})
	}
	return resp
}
