package report

import "time"

// AggregateInput selects which time entries to sum. Zero bounds are
// open; a set bound is inclusive, entries are day-dated.
type AggregateInput struct {
	ProjectID string
	From      time.Time
	To        time.Time
}

// AssigneeRow is the summed logged work for one person.
type AssigneeRow struct {
	Assignee   string
	Hours      float64
	EntryCount int
	TaskCount  int
}

// AggregateOutput holds per-assignee rows sorted by assignee and the
// grand total.
type AggregateOutput struct {
	Rows       []AssigneeRow
	TotalHours float64
}
