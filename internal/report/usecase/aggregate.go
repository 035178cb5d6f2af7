package usecase

import (
	"context"
	"sort"
	"time"

	"gantt-planner/internal/report"
	repo "gantt-planner/internal/task/repository"
)

// Aggregate sums time entries per assignee. Hours are attributed to
// whoever logged them; entries without a user fall back to the task's
// assignee.
func (uc *implUseCase) Aggregate(ctx context.Context, input report.AggregateInput) (report.AggregateOutput, error) {
	if !input.From.IsZero() && !input.To.IsZero() && input.To.Before(input.From) {
		return report.AggregateOutput{}, report.ErrInvalidRange
	}

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{ProjectID: input.ProjectID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Aggregate ListTasks: %v", err)
		return report.AggregateOutput{}, err
	}

	type bucket struct {
		hours   float64
		entries int
		tasks   map[string]struct{}
	}
	buckets := make(map[string]*bucket)

	for _, t := range tasks {
		for _, e := range t.Entries {
			if !inRange(e.Date, input.From, input.To) {
				continue
			}
			key := e.UserID
			if key == "" {
				key = t.Assignee
			}
			b, ok := buckets[key]
			if !ok {
				b = &bucket{tasks: make(map[string]struct{})}
				buckets[key] = b
			}
			b.hours += e.Hours
			b.entries++
			b.tasks[t.ID] = struct{}{}
		}
	}

	out := report.AggregateOutput{Rows: make([]report.AssigneeRow, 0, len(buckets))}
	for assignee, b := range buckets {
		out.Rows = append(out.Rows, report.AssigneeRow{
			Assignee:   assignee,
			Hours:      b.hours,
			EntryCount: b.entries,
			TaskCount:  len(b.tasks),
		})
		out.TotalHours += b.hours
	}
	sort.Slice(out.Rows, func(i, j int) bool {
		return out.Rows[i].Assignee < out.Rows[j].Assignee
	})

	return out, nil
}

func inRange(d, from, to time.Time) bool {
	if !from.IsZero() && d.Before(from) {
		return false
	}
	if !to.IsZero() && d.After(to) {
		return false
	}
	return true
}
