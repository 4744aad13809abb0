package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to db. db should be opened with
// database.OpenSQLite so foreign keys and immediate transactions are enabled.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	repos := newRepositories(db)
	repos.TxManager = &SQLiteTransactionManager{db: db}
	return repos
}

func newTxRepositoryProvider(tx *sql.Tx) portsrepo.RepositoryProvider {
	repos := newRepositories(tx)
	repos.TxManager = joinedTx{repos: &repos}
	return repos
}

func newRepositories(db dbtx) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		OrganizationRepo:   &OrganizationRepository{BaseRepository: base},
		AccountRepo:        &AccountRepository{BaseRepository: base},
		PeriodRepo:         &PeriodRepository{BaseRepository: base},
		JournalRepo:        &JournalRepository{BaseRepository: base},
		LedgerRepo:         &LedgerRepository{BaseRepository: base},
		ClassificationRepo: &ClassificationRepository{BaseRepository: base},
	}
}
