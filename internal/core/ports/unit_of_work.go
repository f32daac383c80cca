package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction and then announces every order that was added
	// or updated inside it.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction and forgets tracked aggregates.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a repository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
