package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
// All-day events carry date-only start/end; AllDay marks them. Google
// reports all-day ends exclusive, callers must adjust if they need an
// inclusive range.
type Event struct {
	ID          string
	Summary     string
	Description string
	Creator     string // email of the event creator
	StartTime   time.Time
	EndTime     time.Time
	AllDay      bool
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
