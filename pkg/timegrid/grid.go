package timegrid

import (
	"fmt"
	"math"
	"time"
)

// Grid computes windows, scales and header ticks for one timezone.
// All methods are pure functions of their arguments: the reference instant is
// always passed in, never read from the ambient clock.
type Grid struct {
	location *time.Location
}

// New creates a Grid for the given IANA timezone string, e.g. "Europe/Berlin".
func New(timezone string) (*Grid, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Grid{location: loc}, nil
}

// Location returns the grid's timezone.
func (g *Grid) Location() *time.Location {
	return g.location
}

// Resolve turns a view into the concrete window to display, relative to now.
// day/week/month/quarter derive the window from now; any other granularity
// (year included) passes the view's reference range through verbatim.
func (g *Grid) Resolve(view View, now time.Time) Window {
	switch view.Granularity {
	case GranularityDay:
		start := g.startOfDay(now)
		return Window{Start: start, End: start.AddDate(0, 0, 1)}
	case GranularityWeek:
		start := g.startOfWeek(now)
		return Window{Start: start, End: start.AddDate(0, 0, 7)}
	case GranularityMonth:
		start := g.startOfMonth(now)
		return Window{Start: start, End: start.AddDate(0, 1, 0)}
	case GranularityQuarter:
		start := g.startOfQuarter(now)
		return Window{Start: start, End: start.AddDate(0, 3, 0)}
	default:
		return Window{Start: view.RefStart, End: view.RefEnd}
	}
}

// Ticks generates the header axis divisions for a view. The slice is built
// fresh on every call; tick widths always sum to widthPx for the window the
// view itself resolves to.
//
// Per granularity: day has 24 hourly ticks, week 7 daily ticks, month one
// "Week N" tick per started week, quarter 3 monthly ticks, and everything
// else one tick per day labeled with month and day.
func (g *Grid) Ticks(view View, w Window, widthPx float64) []Tick {
	switch view.Granularity {
	case GranularityDay:
		tickWidth := widthPx / 24
		ticks := make([]Tick, 0, 24)
		for i := 0; i < 24; i++ {
			ticks = append(ticks, Tick{
				Time:  w.Start.Add(time.Duration(i) * time.Hour),
				Label: fmt.Sprintf("%d:00", i),
				X:     float64(i) * tickWidth,
				Width: tickWidth,
			})
		}
		return ticks
	case GranularityWeek:
		tickWidth := PixelsPerDay(widthPx, w.Days())
		ticks := make([]Tick, 0, 7)
		for i := 0; i < 7; i++ {
			date := w.Start.AddDate(0, 0, i)
			ticks = append(ticks, Tick{
				Time:  date,
				Label: date.Format("Mon 2"),
				X:     float64(i) * tickWidth,
				Width: tickWidth,
			})
		}
		return ticks
	case GranularityMonth:
		weeks := int(math.Ceil(float64(w.Days()) / 7))
		if weeks < 1 {
			weeks = 1
		}
		tickWidth := widthPx / float64(weeks)
		ticks := make([]Tick, 0, weeks)
		for i := 0; i < weeks; i++ {
			ticks = append(ticks, Tick{
				Time:  w.Start.AddDate(0, 0, i*7),
				Label: fmt.Sprintf("Week %d", i+1),
				X:     float64(i) * tickWidth,
				Width: tickWidth,
			})
		}
		return ticks
	case GranularityQuarter:
		tickWidth := widthPx / 3
		ticks := make([]Tick, 0, 3)
		for i := 0; i < 3; i++ {
			month := w.Start.AddDate(0, i, 0)
			ticks = append(ticks, Tick{
				Time:  month,
				Label: month.Format("Jan"),
				X:     float64(i) * tickWidth,
				Width: tickWidth,
			})
		}
		return ticks
	default:
		days := w.Days()
		if days < 1 {
			days = 1
		}
		tickWidth := PixelsPerDay(widthPx, days)
		ticks := make([]Tick, 0, days)
		for i := 0; i < days; i++ {
			date := w.Start.AddDate(0, 0, i)
			ticks = append(ticks, Tick{
				Time:  date,
				Label: date.Format("Jan 2"),
				X:     float64(i) * tickWidth,
				Width: tickWidth,
			})
		}
		return ticks
	}
}

// PixelsPerDay maps one day to horizontal pixels. totalDays is clamped to a
// minimum of 1 so a zero-length window never divides by zero.
func PixelsPerDay(widthPx float64, totalDays int) float64 {
	if totalDays < 1 {
		totalDays = 1
	}
	return widthPx / float64(totalDays)
}

// DaysBetween returns the fractional number of days from from to to.
// Negative when to precedes from.
func DaysBetween(from, to time.Time) float64 {
	return to.Sub(from).Hours() / 24
}

// startOfDay returns midnight of t's day in the grid's timezone.
func (g *Grid) startOfDay(t time.Time) time.Time {
	t = t.In(g.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, g.location)
}

// startOfWeek returns midnight of the Monday on or before t. Weeks start on
// Monday regardless of locale.
func (g *Grid) startOfWeek(t time.Time) time.Time {
	t = t.In(g.location)
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return g.startOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// startOfMonth returns midnight of the first day of t's month.
func (g *Grid) startOfMonth(t time.Time) time.Time {
	t = t.In(g.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, g.location)
}

// startOfQuarter returns midnight of the first day of t's quarter
// (January, April, July or October).
func (g *Grid) startOfQuarter(t time.Time) time.Time {
	t = t.In(g.location)
	quarter := (int(t.Month()) - 1) / 3
	return time.Date(t.Year(), time.Month(quarter*3+1), 1, 0, 0, 0, 0, g.location)
}
