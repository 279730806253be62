package usecase

import "context"

// ReaperUsecase defines the interface for the retention sweeper
type ReaperUsecase interface {
	// Sweep hard-deletes pins past the retention ceiling and returns the
	// number of rows removed. Safe to run repeatedly; an overlapping sweep
	// simply finds nothing left to delete.
	Sweep(ctx context.Context) (int64, error)
}
