package report

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Aggregate sums logged hours per assignee for one project.
	Aggregate(ctx context.Context, input AggregateInput) (AggregateOutput, error)
}
