package gcal

import (
	"context"
	"sort"
	"time"

	"gantt-planner/internal/model"
	"gantt-planner/internal/vacation"
	"gantt-planner/pkg/gcalendar"
)

// ListApproved maps calendar events overlapping [from, to] onto
// vacation ranges, ordered by start date.
func (s *implSource) ListApproved(ctx context.Context, from, to time.Time) ([]model.VacationRange, error) {
	events, err := s.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: s.calendarID,
		TimeMin:    from,
		// timeMax bounds event starts exclusively; push one day so
		// absences starting on `to` are kept.
		TimeMax: to.AddDate(0, 0, 1),
	})
	if err != nil {
		s.l.Errorf(ctx, "vacation/gcal ListEvents: %v", err)
		return nil, vacation.ErrSourceUnavailable
	}

	out := make([]model.VacationRange, 0, len(events))
	for _, ev := range events {
		out = append(out, toRange(ev))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

// toRange converts a calendar event into an approved vacation range.
// All-day events report an exclusive end date, so pull it back one day.
func toRange(ev gcalendar.Event) model.VacationRange {
	end := ev.EndTime
	if ev.AllDay {
		end = end.AddDate(0, 0, -1)
	}
	return model.VacationRange{
		ID:        ev.ID,
		UserEmail: ev.Creator,
		StartDate: ev.StartTime,
		EndDate:   end,
		Status:    model.VacationStatusApproved,
	}
}
