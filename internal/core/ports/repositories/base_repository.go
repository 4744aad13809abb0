package repositories

import (
	"context"
)

// TxFunc is run by a TransactionManager with repositories bound to one database transaction.
type TxFunc func(ctx context.Context, repos RepositoryProvider) error

// TransactionManager defines methods for transaction management
type TransactionManager interface {
	// RunInTx begins a transaction, runs fn with transaction-bound repositories and
	// commits when fn returns nil. Any error or panic rolls the transaction back.
	RunInTx(ctx context.Context, fn TxFunc) error
}
