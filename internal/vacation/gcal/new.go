package gcal

import (
	"context"

	"gantt-planner/internal/vacation"
	"gantt-planner/pkg/gcalendar"
	"gantt-planner/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client this source
// needs. Narrow so tests can fake it.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implSource struct {
	l          log.Logger
	client     CalendarClient
	calendarID string
}

// New creates a vacation Source backed by a shared Google Calendar.
// Every event on the calendar counts as an approved absence of its
// creator.
func New(l log.Logger, client CalendarClient, calendarID string) vacation.Source {
	if client == nil {
		panic("vacation/gcal: client is required")
	}
	return &implSource{
		l:          l,
		client:     client,
		calendarID: calendarID,
	}
}
