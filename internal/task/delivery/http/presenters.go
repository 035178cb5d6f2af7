package http

import (
	"fmt"
	"time"

	"gantt-planner/internal/model"
	"gantt-planner/internal/task"
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

type createReq struct {
	ProjectID      string  `json:"project_id"      binding:"omitempty,max=255"`
	Name           string  `json:"name"            binding:"required,min=1,max=255"`
	Assignee       string  `json:"assignee"        binding:"omitempty,max=255"`
	StartDate      string  `json:"start_date"      binding:"required"`
	EndDate        string  `json:"end_date"`
	EstimatedHours float64 `json:"estimated_hours" binding:"omitempty,gte=0"`
	Status         string  `json:"status"          binding:"omitempty,oneof=planned active done blocked"`
	Color          string  `json:"color"           binding:"omitempty,max=32"`

	start time.Time
	end   *time.Time
}

func (r *createReq) validate() error {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return err
	}
	r.start = start

	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		if err != nil {
			return err
		}
		r.end = &end
	}
	return nil
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		ProjectID:      r.ProjectID,
		Name:           r.Name,
		Assignee:       r.Assignee,
		StartDate:      r.start,
		EndDate:        r.end,
		EstimatedHours: r.EstimatedHours,
		Status:         model.TaskStatus(r.Status),
		Color:          r.Color,
	}
}

// ---

type listReq struct {
	ProjectID string `form:"project_id"`
	Assignee  string `form:"assignee"`
	Status    string `form:"status" binding:"omitempty,oneof=planned active done blocked"`
	Limit     int    `form:"limit"`
	Offset    int    `form:"offset"`
}

func (r *listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return task.ListTasksInput{
		ProjectID: r.ProjectID,
		Assignee:  r.Assignee,
		Status:    model.TaskStatus(r.Status),
		Limit:     limit,
		Offset:    r.Offset,
	}
}

// ---

type updateReq struct {
	ID             string   `json:"-"` // populated from URI param
	Name           string   `json:"name"            binding:"omitempty,min=1,max=255"`
	Assignee       string   `json:"assignee"        binding:"omitempty,max=255"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty"`
	Status         string   `json:"status"          binding:"omitempty,oneof=planned active done blocked"`
	Color          string   `json:"color"           binding:"omitempty,max=32"`

	start *time.Time
	end   *time.Time
}

func (r *updateReq) validate() error {
	if r.StartDate != "" {
		start, err := parseDate(r.StartDate)
		if err != nil {
			return err
		}
		r.start = &start
	}
	if r.EndDate != "" {
		end, err := parseDate(r.EndDate)
		if err != nil {
			return err
		}
		r.end = &end
	}
	if r.EstimatedHours != nil && *r.EstimatedHours < 0 {
		return fmt.Errorf("estimated_hours must not be negative")
	}
	return nil
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:             r.ID,
		Name:           r.Name,
		Assignee:       r.Assignee,
		StartDate:      r.start,
		EndDate:        r.end,
		EstimatedHours: r.EstimatedHours,
		Status:         model.TaskStatus(r.Status),
		Color:          r.Color,
	}
}

// ---

type logTimeReq struct {
	TaskID string  `json:"-"` // populated from URI param
	Date   string  `json:"date"  binding:"required"`
	Hours  float64 `json:"hours" binding:"required,gt=0"`
	User   string  `json:"user"  binding:"omitempty,max=255"`

	date time.Time
}

func (r *logTimeReq) validate() error {
	date, err := parseDate(r.Date)
	if err != nil {
		return err
	}
	r.date = date
	return nil
}

func (r logTimeReq) toInput() task.LogTimeInput {
	return task.LogTimeInput{
		TaskID: r.TaskID,
		Date:   r.date,
		Hours:  r.Hours,
		UserID: r.User,
	}
}

// --- Response DTOs ---

type entryResp struct {
	ID    string        `json:"id"`
	Date  response.Date `json:"date"`
	Hours float64       `json:"hours"`
	User  string        `json:"user"`
}

type taskResp struct {
	ID             string            `json:"id"`
	ProjectID      string            `json:"project_id,omitempty"`
	Name           string            `json:"name"`
	Assignee       string            `json:"assignee,omitempty"`
	StartDate      response.Date     `json:"start_date"`
	EndDate        *response.Date    `json:"end_date,omitempty"`
	EstimatedHours float64           `json:"estimated_hours,omitempty"`
	LoggedHours    float64           `json:"logged_hours"`
	Status         model.TaskStatus  `json:"status"`
	Color          string            `json:"color,omitempty"`
	Entries        []entryResp       `json:"entries,omitempty"`
	CreatedAt      response.DateTime `json:"created_at"`
	UpdatedAt      response.DateTime `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:             t.ID,
		ProjectID:      t.ProjectID,
		Name:           t.Name,
		Assignee:       t.Assignee,
		StartDate:      response.Date(t.StartDate),
		EstimatedHours: t.EstimatedHours,
		LoggedHours:    t.LoggedHours(),
		Status:         t.Status,
		Color:          t.Color,
		CreatedAt:      response.DateTime(t.CreatedAt),
		UpdatedAt:      response.DateTime(t.UpdatedAt),
	}
	if t.EndDate != nil {
		end := response.Date(*t.EndDate)
		resp.EndDate = &end
	}
	for _, entry := range t.Entries {
		resp.Entries = append(resp.Entries, entryResp{
			ID:    entry.ID,
			Date:  response.Date(entry.Date),
			Hours: entry.Hours,
			User:  entry.UserID,
		})
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type logTimeResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newLogTimeResp(out task.LogTimeOutput) logTimeResp {
	return logTimeResp{Task: newTaskResp(out.Task)}
}
