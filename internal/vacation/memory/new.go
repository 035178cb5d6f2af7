package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"gantt-planner/internal/model"
	"gantt-planner/internal/vacation"
	"gantt-planner/pkg/log"
)

type implSource struct {
	l log.Logger

	mu     sync.RWMutex
	ranges []model.VacationRange
}

// New creates an in-memory vacation Source seeded with the given ranges.
func New(l log.Logger, seed []model.VacationRange) vacation.Source {
	ranges := make([]model.VacationRange, len(seed))
	copy(ranges, seed)
	return &implSource{l: l, ranges: ranges}
}

// ListApproved returns approved ranges overlapping [from, to], ordered
// by start date.
func (s *implSource) ListApproved(ctx context.Context, from, to time.Time) ([]model.VacationRange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []model.VacationRange
	for _, v := range s.ranges {
		if v.Status != model.VacationStatusApproved {
			continue
		}
		if !v.Overlaps(from, to) {
			continue
		}
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}
