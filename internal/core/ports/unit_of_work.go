package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per command so that concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork scopes every change to draft orders made by a single command.
//
// Callers Begin, defer Rollback, mutate through OrderRepository and Commit.
// Rollback after a successful Commit returns an error and changes nothing,
// so the deferred call is safe to ignore.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// OrderRepository is bound to the transaction opened by Begin.
	// Outside a transaction it runs each call on its own.
	OrderRepository() OrderRepository
}
