package chart

import (
	"time"

	"gantt-planner/internal/model"
	"gantt-planner/pkg/timegrid"
)

// Layout policy constants. The 8-hour day and 7-day fallback are fixed
// planning policy, not configuration.
const (
	RowHeight       = 60.0 // px per task row
	RowGutter       = 10.0 // px gap between bar bottom and row edge
	MinBarWidth     = 50.0 // px floor so short tasks stay clickable
	HoursPerDay     = 8.0  // working hours assumed when deriving spans
	DefaultSpanDays = 7    // synthetic span for open-ended tasks
)

// BandKind tags the background bands composed under the task bars.
type BandKind string

const (
	BandWeekend  BandKind = "weekend"
	BandVacation BandKind = "vacation"
)

// BarGeometry is the rendered rectangle of one task bar.
type BarGeometry struct {
	TaskID string
	Name   string
	Color  string
	Status model.TaskStatus
	Row    int
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Band is a non-interactive background rectangle spanning the full
// chart height.
type Band struct {
	Kind  BandKind
	Label string // user email for vacation bands
	X     float64
	Width float64
}

// --- UseCase Inputs ---

// LayoutInput describes one layout pass over a project's tasks.
type LayoutInput struct {
	ProjectID string
	View      timegrid.View
	WidthPx   float64

	// At is the reference instant for window resolution. Zero means
	// the current time.
	At time.Time
}

// --- UseCase Outputs ---

// LayoutOutput is everything a presentation surface needs to draw one
// chart: header ticks, task bars, background bands and the scale they
// share.
type LayoutOutput struct {
	Window       timegrid.Window
	PixelsPerDay float64
	Ticks        []timegrid.Tick
	Bars         []BarGeometry
	Bands        []Band
	TotalHeight  float64

	// Empty marks a project with no tasks at all. Renderers show a
	// placeholder instead of a zero-row grid.
	Empty bool
}
