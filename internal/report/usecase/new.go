package usecase

import (
	"gantt-planner/internal/task/repository"
	"gantt-planner/pkg/log"
)

// implUseCase is the private implementation of report.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new report UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
