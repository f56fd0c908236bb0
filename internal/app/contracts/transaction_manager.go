package contracts

import "context"

// TransactionManager runs fn inside a database transaction. Repositories
// called with txCtx take part in the transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(txCtx context.Context) error) error
}
