package memory

import (
	"sync"

	"gantt-planner/internal/model"
	"gantt-planner/internal/task/repository"
	"gantt-planner/pkg/log"
)

type implRepository struct {
	l log.Logger

	mu      sync.RWMutex
	tasks   map[string]model.Task
	version uint64
}

// New creates an in-memory Repository for the task domain, seeded with
// the given tasks. Seed entries keep their IDs.
func New(l log.Logger, seed []model.Task) repository.Repository {
	tasks := make(map[string]model.Task, len(seed))
	for _, t := range seed {
		tasks[t.ID] = cloneTask(t)
	}
	return &implRepository{
		l:       l,
		tasks:   tasks,
		version: 1,
	}
}

// cloneTask deep-copies a task so callers never alias stored state.
func cloneTask(t model.Task) model.Task {
	out := t
	if t.EndDate != nil {
		end := *t.EndDate
		out.EndDate = &end
	}
	if len(t.Entries) > 0 {
		out.Entries = make([]model.TimeEntry, len(t.Entries))
		copy(out.Entries, t.Entries)
	}
	return out
}
