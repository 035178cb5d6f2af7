package vacation

import (
	"context"
	"time"

	"gantt-planner/internal/model"
)

// Source supplies the approved absences that charts shade as
// unavailable time. Backends: static plan data or a shared Google
// Calendar.
//
//go:generate mockery --name Source
type Source interface {
	// ListApproved returns approved vacation ranges overlapping
	// [from, to], ordered by start date.
	ListApproved(ctx context.Context, from, to time.Time) ([]model.VacationRange, error)
}
