package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every repository to the pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	repos := newRepositories(dbPool)
	repos.TxManager = newPgxTransactionManager(dbPool)
	return repos
}

func newTxRepositoryProvider(tx pgx.Tx) portsrepo.RepositoryProvider {
	repos := newRepositories(tx)
	repos.TxManager = joinedTx{repos: &repos}
	return repos
}

func newRepositories(db dbtx) portsrepo.RepositoryProvider {
	base := BaseRepository{DB: db}
	return portsrepo.RepositoryProvider{
		OrganizationRepo:   &PgxOrganizationRepository{BaseRepository: base},
		AccountRepo:        &PgxAccountRepository{BaseRepository: base},
		PeriodRepo:         &PgxPeriodRepository{BaseRepository: base},
		JournalRepo:        &PgxJournalRepository{BaseRepository: base},
		LedgerRepo:         &PgxLedgerRepository{BaseRepository: base},
		ClassificationRepo: &PgxClassificationRepository{BaseRepository: base},
	}
}
