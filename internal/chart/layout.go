package chart

import (
	"math"
	"time"

	"gantt-planner/internal/model"
	"gantt-planner/pkg/timegrid"
)

// EffectiveEnd returns the end used for layout: the stored end date
// verbatim, a span derived from the estimate at 8 hours per working
// day, or the 7-day default for fully open-ended tasks.
func EffectiveEnd(t model.Task) time.Time {
	if t.EndDate != nil {
		return *t.EndDate
	}
	if t.EstimatedHours > 0 {
		days := int(math.Ceil(t.EstimatedHours / HoursPerDay))
		return t.StartDate.AddDate(0, 0, days)
	}
	return t.StartDate.AddDate(0, 0, DefaultSpanDays)
}

// PositionTask computes the bar geometry for one task in the given
// window and scale. The second return is false when the task lies
// entirely outside the window.
//
// A task starting exactly on the window end is still visible; the
// exclusion test is strict on both sides. An end date before the start
// date is not rejected here, the width floor absorbs it.
func PositionTask(t model.Task, w timegrid.Window, pixelsPerDay float64, rowIndex int) (BarGeometry, bool) {
	effectiveEnd := EffectiveEnd(t)

	if effectiveEnd.Before(w.Start) || t.StartDate.After(w.End) {
		return BarGeometry{}, false
	}

	clippedStart := t.StartDate
	if clippedStart.Before(w.Start) {
		clippedStart = w.Start
	}
	clippedEnd := effectiveEnd
	if clippedEnd.After(w.End) {
		clippedEnd = w.End
	}

	width := timegrid.DaysBetween(clippedStart, clippedEnd) * pixelsPerDay
	if width < MinBarWidth {
		width = MinBarWidth
	}

	return BarGeometry{
		TaskID: t.ID,
		Name:   t.Name,
		Color:  t.Color,
		Status: t.Status,
		Row:    rowIndex,
		X:      timegrid.DaysBetween(w.Start, clippedStart) * pixelsPerDay,
		Y:      float64(rowIndex) * RowHeight,
		Width:  width,
		Height: RowHeight - RowGutter,
	}, true
}

// WeekendBands shades every header tick whose date falls on a weekend.
// The tick is the unit of shading: in week and default views that is a
// day, in coarser views whole ticks are shaded or not.
func WeekendBands(ticks []timegrid.Tick) []Band {
	var out []Band
	for _, tick := range ticks {
		switch tick.Time.Weekday() {
		case time.Saturday, time.Sunday:
			out = append(out, Band{Kind: BandWeekend, X: tick.X, Width: tick.Width})
		}
	}
	return out
}

// VacationBands clips absence ranges to the window and places them in
// the same coordinate space as task bars.
func VacationBands(ranges []model.VacationRange, w timegrid.Window, pixelsPerDay float64) []Band {
	var out []Band
	for _, v := range ranges {
		if v.EndDate.Before(w.Start) || v.StartDate.After(w.End) {
			continue
		}

		start := v.StartDate
		if start.Before(w.Start) {
			start = w.Start
		}
		end := v.EndDate
		if end.After(w.End) {
			end = w.End
		}

		out = append(out, Band{
			Kind:  BandVacation,
			Label: v.UserEmail,
			X:     timegrid.DaysBetween(w.Start, start) * pixelsPerDay,
			Width: timegrid.DaysBetween(start, end) * pixelsPerDay,
		})
	}
	return out
}

// ComposeInput bundles everything one layout pass consumes.
type ComposeInput struct {
	Window    timegrid.Window
	WidthPx   float64
	Ticks     []timegrid.Tick
	Tasks     []model.Task
	Vacations []model.VacationRange
}

// Compose runs one full layout pass. Each task owns the row matching
// its position in the input order whether or not it is visible, so
// rows stay stable as the window moves.
func Compose(in ComposeInput) LayoutOutput {
	pixelsPerDay := timegrid.PixelsPerDay(in.WidthPx, in.Window.Days())

	out := LayoutOutput{
		Window:       in.Window,
		PixelsPerDay: pixelsPerDay,
		Ticks:        in.Ticks,
		Empty:        len(in.Tasks) == 0,
	}
	if out.Empty {
		return out
	}

	for i, t := range in.Tasks {
		if geo, ok := PositionTask(t, in.Window, pixelsPerDay, i); ok {
			out.Bars = append(out.Bars, geo)
		}
	}

	out.Bands = WeekendBands(in.Ticks)
	out.Bands = append(out.Bands, VacationBands(in.Vacations, in.Window, pixelsPerDay)...)
	out.TotalHeight = float64(len(in.Tasks)) * RowHeight

	return out
}
