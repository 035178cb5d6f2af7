package usecase

import (
	"context"
	"fmt"
	"time"

	"gantt-planner/internal/chart"
	repo "gantt-planner/internal/task/repository"
	"gantt-planner/pkg/timegrid"
)

// Layout resolves the window, gathers tasks and absences and composes
// the full chart geometry. Results are cached until a task mutation
// bumps the repository version or the TTL expires.
func (uc *implUseCase) Layout(ctx context.Context, input chart.LayoutInput) (chart.LayoutOutput, error) {
	if input.WidthPx <= 0 {
		return chart.LayoutOutput{}, chart.ErrInvalidWidth
	}

	at := input.At
	if at.IsZero() {
		at = time.Now()
	}

	w := uc.grid.Resolve(input.View, at)
	if !w.End.After(w.Start) {
		return chart.LayoutOutput{}, chart.ErrInvalidView
	}

	version, err := uc.repo.Version(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Layout Version: %v", err)
		return chart.LayoutOutput{}, err
	}

	key := cacheKey(input, w, version)
	if out, ok := uc.cache.Get(key); ok {
		uc.metrics.RecordCacheHit()
		return out, nil
	}
	uc.metrics.RecordCacheMiss()

	started := time.Now()

	tasks, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{ProjectID: input.ProjectID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Layout ListTasks: %v", err)
		return chart.LayoutOutput{}, err
	}

	vacations, err := uc.vacs.ListApproved(ctx, w.Start, w.End)
	if err != nil {
		// The chart still renders when the absence source is down,
		// just without vacation bands.
		uc.l.Warnf(ctx, "uc.Layout ListApproved: %v", err)
		vacations = nil
	}

	out := chart.Compose(chart.ComposeInput{
		Window:    w,
		WidthPx:   input.WidthPx,
		Ticks:     uc.grid.Ticks(input.View, w, input.WidthPx),
		Tasks:     tasks,
		Vacations: vacations,
	})

	uc.cache.Add(key, out)
	uc.metrics.SetCacheEntries(uc.cache.Len())
	uc.metrics.ObserveLayout(string(input.View.Granularity), len(out.Bars), time.Since(started).Seconds())

	return out, nil
}

// cacheKey identifies one layout by everything that shapes it. The
// granularity is part of the key because two views can resolve to the
// same window but tick differently.
func cacheKey(input chart.LayoutInput, w timegrid.Window, version uint64) string {
	return fmt.Sprintf("%s|%s|%d|%d|%g|%d",
		input.ProjectID, input.View.Granularity,
		w.Start.Unix(), w.End.Unix(),
		input.WidthPx, version,
	)
}
