package repository

import (
	"context"

	"pindrop/internal/errors"
)

// ErrTransientStorage marks a retryable transaction conflict: a serialization
// failure or a deadlock the database resolved by aborting this transaction.
// Callers retry once before surfacing the error.
var ErrTransientStorage = errors.New("transient storage conflict")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewPinRepository returns a PinRepository instance bound to the current transaction.
	NewPinRepository() PinRepository

	// NewVisibilityRepository returns a VisibilityRepository instance bound to the current transaction.
	NewVisibilityRepository() VisibilityRepository
}
