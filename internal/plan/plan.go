package plan

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"gantt-planner/internal/model"
)

// Result holds a fully materialized plan: the project header plus the
// domain records ready to seed a repository or feed a layout.
type Result struct {
	Project   model.Project
	Tasks     []model.Task
	Vacations []model.VacationRange
}

// dateFormats are tried in order when parsing plan dates.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Load reads a YAML plan file and materializes it into domain records.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading plan file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing plan file: %w", err)
	}

	return Materialize(&f)
}

// Materialize converts a decoded plan document into domain records.
// Missing IDs are assigned, statuses are normalized, and every date is
// parsed against the shared format list.
func Materialize(f *File) (*Result, error) {
	if f.Project.Name == "" {
		return nil, fmt.Errorf("plan has no project name")
	}

	project := model.Project{
		ID:       orNewID(f.Project.ID),
		Name:     f.Project.Name,
		Timezone: f.Project.Timezone,
	}
	if project.Timezone == "" {
		project.Timezone = "UTC"
	}

	now := time.Now().UTC()

	tasks := make([]model.Task, 0, len(f.Tasks))
	for i, doc := range f.Tasks {
		task, err := materializeTask(doc, project.ID, now)
		if err != nil {
			return nil, fmt.Errorf("task %d (%s): %w", i, doc.Name, err)
		}
		tasks = append(tasks, task)
	}

	vacations := make([]model.VacationRange, 0, len(f.Vacations))
	for i, doc := range f.Vacations {
		vac, err := materializeVacation(doc)
		if err != nil {
			return nil, fmt.Errorf("vacation %d (%s): %w", i, doc.User, err)
		}
		vacations = append(vacations, vac)
	}

	return &Result{Project: project, Tasks: tasks, Vacations: vacations}, nil
}

func materializeTask(doc TaskDoc, projectID string, now time.Time) (model.Task, error) {
	if doc.Name == "" {
		return model.Task{}, fmt.Errorf("missing name")
	}

	start, err := parseDate(doc.Start)
	if err != nil {
		return model.Task{}, fmt.Errorf("start: %w", err)
	}

	var end *time.Time
	if doc.End != "" {
		e, err := parseDate(doc.End)
		if err != nil {
			return model.Task{}, fmt.Errorf("end: %w", err)
		}
		if e.Before(start) {
			return model.Task{}, fmt.Errorf("end %s before start %s", doc.End, doc.Start)
		}
		end = &e
	}

	status, err := parseTaskStatus(doc.Status)
	if err != nil {
		return model.Task{}, err
	}

	entries := make([]model.TimeEntry, 0, len(doc.Entries))
	for j, entryDoc := range doc.Entries {
		date, err := parseDate(entryDoc.Date)
		if err != nil {
			return model.Task{}, fmt.Errorf("entry %d: %w", j, err)
		}
		if entryDoc.Hours <= 0 {
			return model.Task{}, fmt.Errorf("entry %d: hours must be positive", j)
		}
		entries = append(entries, model.TimeEntry{
			ID:     uuid.NewString(),
			Date:   date,
			Hours:  entryDoc.Hours,
			UserID: entryDoc.User,
		})
	}

	return model.Task{
		ID:             orNewID(doc.ID),
		ProjectID:      projectID,
		Name:           doc.Name,
		Assignee:       doc.Assignee,
		StartDate:      start,
		EndDate:        end,
		EstimatedHours: doc.EstimatedHours,
		Status:         status,
		Color:          doc.Color,
		Entries:        entries,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

func materializeVacation(doc VacationDoc) (model.VacationRange, error) {
	if doc.User == "" {
		return model.VacationRange{}, fmt.Errorf("missing user")
	}

	start, err := parseDate(doc.Start)
	if err != nil {
		return model.VacationRange{}, fmt.Errorf("start: %w", err)
	}
	end, err := parseDate(doc.End)
	if err != nil {
		return model.VacationRange{}, fmt.Errorf("end: %w", err)
	}
	if end.Before(start) {
		return model.VacationRange{}, fmt.Errorf("end %s before start %s", doc.End, doc.Start)
	}

	status, err := parseVacationStatus(doc.Status)
	if err != nil {
		return model.VacationRange{}, err
	}

	return model.VacationRange{
		ID:        uuid.NewString(),
		UserEmail: doc.User,
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}

	var lastErr error
	for _, format := range dateFormats {
		t, err := time.Parse(format, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("unable to parse date %q: %w", s, lastErr)
}

func parseTaskStatus(s string) (model.TaskStatus, error) {
	switch model.TaskStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return model.TaskStatusPlanned, nil
	case model.TaskStatusPlanned:
		return model.TaskStatusPlanned, nil
	case model.TaskStatusActive:
		return model.TaskStatusActive, nil
	case model.TaskStatusDone:
		return model.TaskStatusDone, nil
	case model.TaskStatusBlocked:
		return model.TaskStatusBlocked, nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

func parseVacationStatus(s string) (model.VacationStatus, error) {
	switch model.VacationStatus(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		// Plan files list planned absences; treat them as approved.
		return model.VacationStatusApproved, nil
	case model.VacationStatusPending:
		return model.VacationStatusPending, nil
	case model.VacationStatusApproved:
		return model.VacationStatusApproved, nil
	case model.VacationStatusRejected:
		return model.VacationStatusRejected, nil
	default:
		return "", fmt.Errorf("unknown vacation status %q", s)
	}
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
