package repository

import "context"

// TransactionManager runs persistence work within a single database
// transaction. The repository handed to fn is bound to that transaction, so
// inserts and updates stay buffered until Execute commits; the commit is the
// distinct final step of every mutating use case.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(repo PolicyRepository) error) error
}
