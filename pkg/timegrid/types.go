package timegrid

import (
	"math"
	"time"
)

// Granularity selects how the visible window is derived and how the header
// axis is divided.
type Granularity string

const (
	GranularityDay     Granularity = "day"
	GranularityWeek    Granularity = "week"
	GranularityMonth   Granularity = "month"
	GranularityQuarter Granularity = "quarter"
	GranularityYear    Granularity = "year"
)

// View is the caller-requested chart view. RefStart/RefEnd are consulted only
// when the granularity has no derived window of its own (year and anything
// unrecognized); the day/week/month/quarter branches derive the window from
// the reference instant passed to Resolve and ignore the range entirely.
type View struct {
	Granularity Granularity
	RefStart    time.Time
	RefEnd      time.Time
}

// Window is the concrete [Start, End) range shown on the timeline axis.
// Built fresh on every layout pass and never stored.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the window span in whole days, partial days rounded up.
// Never negative.
func (w Window) Days() int {
	hours := math.Abs(w.End.Sub(w.Start).Hours())
	return int(math.Ceil(hours / 24))
}

// Contains reports whether t falls inside [Start, End).
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Tick is one labeled division of the header axis with its horizontal extent
// in pixels.
type Tick struct {
	Time  time.Time
	Label string
	X     float64
	Width float64
}
