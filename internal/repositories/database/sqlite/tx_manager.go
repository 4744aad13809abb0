package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

// SQLiteTransactionManager runs callbacks inside a database/sql transaction. Opened
// with _txlock=immediate, every transaction takes the write lock at BEGIN, which
// serializes entry numbering across connections.
type SQLiteTransactionManager struct {
	db *sql.DB
}

var _ portsrepo.TransactionManager = (*SQLiteTransactionManager)(nil)

func (m *SQLiteTransactionManager) RunInTx(ctx context.Context, fn portsrepo.TxFunc) (err error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err, "failed to begin transaction")
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(ctx, newTxRepositoryProvider(tx)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return apperrors.NewPersistenceError("failed to commit transaction", err)
	}
	return nil
}

type joinedTx struct {
	repos *portsrepo.RepositoryProvider
}

func (j joinedTx) RunInTx(ctx context.Context, fn portsrepo.TxFunc) error {
	return fn(ctx, *j.repos)
}
