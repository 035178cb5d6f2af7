package chart

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Layout runs one full layout pass for a project and view.
	Layout(ctx context.Context, input LayoutInput) (LayoutOutput, error)
}
