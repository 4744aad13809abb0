package pgsql

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxAccountRepository struct {
	BaseRepository
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountSelect = `
SELECT
	a.account_id, a.organization_id, a.account_type_id, a.code, a.name, a.is_active, a.is_system,
	a.tax_code, t.category, t.normal_balance,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM accounts a
JOIN account_types t ON t.account_type_id = a.account_type_id
`

func scanAccount(row pgx.CollectableRow) (domain.Account, error) {
	var a domain.Account
	var category, normal string
	err := row.Scan(
		&a.AccountID, &a.OrganizationID, &a.AccountTypeID, &a.Code, &a.Name, &a.IsActive, &a.IsSystem,
		&a.TaxCode, &category, &normal,
		&a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy,
	)
	a.Category = domain.AccountCategory(category)
	a.NormalBalance = domain.NormalBalance(normal)
	return a, err
}

func (r *PgxAccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.DB.Query(ctx, accountSelect+filterQuery, args...)
	if err != nil {
		return nil, mapError(err, "failed to query accounts")
	}
	accounts, err := pgx.CollectRows(rows, scanAccount)
	if err != nil {
		return nil, mapError(err, "failed to collect account rows")
	}
	return accounts, nil
}

func (r *PgxAccountRepository) getAccount(ctx context.Context, what, filterQuery string, args ...any) (*domain.Account, error) {
	rows, err := r.DB.Query(ctx, accountSelect+filterQuery, args...)
	if err != nil {
		return nil, mapError(err, "failed to query account")
	}
	account, err := pgx.CollectExactlyOneRow(rows, scanAccount)
	if err != nil {
		return nil, mapError(err, what)
	}
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	return r.getAccount(ctx, "account "+accountID, `WHERE a.organization_id = $1 AND a.account_id = $2`, organizationID, accountID)
}

func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	return r.getAccount(ctx, "account code "+code, `WHERE a.organization_id = $1 AND a.code = $2`, organizationID, code)
}

func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	accounts, err := r.getAccounts(ctx, `WHERE a.organization_id = $1 AND a.account_id = ANY($2)`, organizationID, accountIDs)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.AccountID] = a
	}
	return result, nil
}

func (r *PgxAccountRepository) FindAccountsByCodes(ctx context.Context, organizationID string, codes []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(codes))
	if len(codes) == 0 {
		return result, nil
	}
	accounts, err := r.getAccounts(ctx, `WHERE a.organization_id = $1 AND a.code = ANY($2)`, organizationID, codes)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.Code] = a
	}
	return result, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	return r.getAccounts(ctx, `WHERE a.organization_id = $1 ORDER BY a.code`, organizationID)
}

func (r *PgxAccountRepository) IsAccountReferenced(ctx context.Context, organizationID, accountID string) (bool, error) {
	var referenced bool
	err := r.DB.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id
			WHERE e.organization_id = $1 AND l.account_id = $2
		)`, organizationID, accountID).Scan(&referenced)
	if err != nil {
		return false, mapError(err, "failed to check account references")
	}
	return referenced, nil
}

func scanAccountType(row pgx.CollectableRow) (domain.AccountType, error) {
	var t domain.AccountType
	var category, normal string
	err := row.Scan(&t.AccountTypeID, &t.Name, &category, &normal, &t.DisplayOrder)
	t.Category = domain.AccountCategory(category)
	t.NormalBalance = domain.NormalBalance(normal)
	return t, err
}

const accountTypeSelect = `SELECT account_type_id, name, category, normal_balance, display_order FROM account_types `

func (r *PgxAccountRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	rows, err := r.DB.Query(ctx, accountTypeSelect+`ORDER BY display_order`)
	if err != nil {
		return nil, mapError(err, "failed to query account types")
	}
	types, err := pgx.CollectRows(rows, scanAccountType)
	if err != nil {
		return nil, mapError(err, "failed to collect account type rows")
	}
	return types, nil
}

func (r *PgxAccountRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	rows, err := r.DB.Query(ctx, accountTypeSelect+`WHERE account_type_id = $1`, accountTypeID)
	if err != nil {
		return nil, mapError(err, "failed to query account type")
	}
	t, err := pgx.CollectExactlyOneRow(rows, scanAccountType)
	if err != nil {
		return nil, mapError(err, "account type "+accountTypeID)
	}
	return &t, nil
}

// SaveAccount inserts a new account. A reused code surfaces as apperrors.ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	query := `
		INSERT INTO accounts (account_id, organization_id, account_type_id, code, name, is_active, is_system, tax_code,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.Exec(ctx, query,
		account.AccountID, account.OrganizationID, account.AccountTypeID, account.Code, account.Name,
		account.IsActive, account.IsSystem, account.TaxCode,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	return mapError(err, "failed to save account "+account.Code)
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	query := `
		UPDATE accounts
		SET name = $3, is_active = $4, tax_code = $5, last_updated_at = $6, last_updated_by = $7
		WHERE organization_id = $1 AND account_id = $2
	`
	tag, err := r.DB.Exec(ctx, query, account.OrganizationID, account.AccountID,
		account.Name, account.IsActive, account.TaxCode, account.LastUpdatedAt, account.LastUpdatedBy)
	if err != nil {
		return mapError(err, "failed to update account "+account.AccountID)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "account "+account.AccountID)
	}
	return nil
}

func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, organizationID, accountID string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM accounts WHERE organization_id = $1 AND account_id = $2`, organizationID, accountID)
	if err != nil {
		return mapError(err, "failed to delete account "+accountID)
	}
	if tag.RowsAffected() == 0 {
		return mapError(pgx.ErrNoRows, "account "+accountID)
	}
	return nil
}
