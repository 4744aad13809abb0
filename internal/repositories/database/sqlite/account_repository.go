package sqlite

import (
	"context"
	"database/sql"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

type AccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

const accountSelect = `
SELECT
	a.account_id, a.organization_id, a.account_type_id, a.code, a.name, a.is_active, a.is_system,
	a.tax_code, t.category, t.normal_balance,
	a.created_at, a.created_by, a.last_updated_at, a.last_updated_by
FROM accounts a
JOIN account_types t ON t.account_type_id = a.account_type_id
`

func scanAccount(row scanner) (domain.Account, error) {
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

func (r *AccountRepository) getAccounts(ctx context.Context, filterQuery string, args ...any) ([]domain.Account, error) {
	rows, err := r.DB.QueryContext(ctx, accountSelect+filterQuery, args...)
	if err != nil {
		return nil, mapError(err, "failed to query accounts")
	}
	accounts, err := collectRows(rows, scanAccount)
	if err != nil {
		return nil, mapError(err, "failed to collect account rows")
	}
	return accounts, nil
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	a, err := scanAccount(r.DB.QueryRowContext(ctx, accountSelect+`WHERE a.organization_id = ? AND a.account_id = ?`, organizationID, accountID))
	if err != nil {
		return nil, mapError(err, "account "+accountID)
	}
	return &a, nil
}

func (r *AccountRepository) FindAccountByCode(ctx context.Context, organizationID, code string) (*domain.Account, error) {
	a, err := scanAccount(r.DB.QueryRowContext(ctx, accountSelect+`WHERE a.organization_id = ? AND a.code = ?`, organizationID, code))
	if err != nil {
		return nil, mapError(err, "account code "+code)
	}
	return &a, nil
}

// inFilter builds "column IN (?, ...)" scoped to the organization.
func inFilter(column, organizationID string, values []string) (string, []any) {
	args := make([]any, 0, len(values)+1)
	args = append(args, organizationID)
	for _, v := range values {
		args = append(args, v)
	}
	return `WHERE a.organization_id = ? AND ` + column + ` IN (` + placeholders(len(values)) + `)`, args
}

func (r *AccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(accountIDs))
	if len(accountIDs) == 0 {
		return result, nil
	}
	filter, args := inFilter("a.account_id", organizationID, accountIDs)
	accounts, err := r.getAccounts(ctx, filter, args...)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.AccountID] = a
	}
	return result, nil
}

func (r *AccountRepository) FindAccountsByCodes(ctx context.Context, organizationID string, codes []string) (map[string]domain.Account, error) {
	result := make(map[string]domain.Account, len(codes))
	if len(codes) == 0 {
		return result, nil
	}
	filter, args := inFilter("a.code", organizationID, codes)
	accounts, err := r.getAccounts(ctx, filter, args...)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		result[a.Code] = a
	}
	return result, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	return r.getAccounts(ctx, `WHERE a.organization_id = ? ORDER BY a.code`, organizationID)
}

func (r *AccountRepository) IsAccountReferenced(ctx context.Context, organizationID, accountID string) (bool, error) {
	var referenced bool
	err := r.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id
			WHERE e.organization_id = ? AND l.account_id = ?
		)`, organizationID, accountID).Scan(&referenced)
	if err != nil {
		return false, mapError(err, "failed to check account references")
	}
	return referenced, nil
}

const accountTypeSelect = `SELECT account_type_id, name, category, normal_balance, display_order FROM account_types `

func scanAccountType(row scanner) (domain.AccountType, error) {
	var t domain.AccountType
	var category, normal string
	err := row.Scan(&t.AccountTypeID, &t.Name, &category, &normal, &t.DisplayOrder)
	t.Category = domain.AccountCategory(category)
	t.NormalBalance = domain.NormalBalance(normal)
	return t, err
}

func (r *AccountRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	rows, err := r.DB.QueryContext(ctx, accountTypeSelect+`ORDER BY display_order`)
	if err != nil {
		return nil, mapError(err, "failed to query account types")
	}
	types, err := collectRows(rows, scanAccountType)
	if err != nil {
		return nil, mapError(err, "failed to collect account type rows")
	}
	return types, nil
}

func (r *AccountRepository) FindAccountTypeByID(ctx context.Context, accountTypeID string) (*domain.AccountType, error) {
	t, err := scanAccountType(r.DB.QueryRowContext(ctx, accountTypeSelect+`WHERE account_type_id = ?`, accountTypeID))
	if err != nil {
		return nil, mapError(err, "account type "+accountTypeID)
	}
	return &t, nil
}

func (r *AccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO accounts (account_id, organization_id, account_type_id, code, name, is_active, is_system, tax_code,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		account.AccountID, account.OrganizationID, account.AccountTypeID, account.Code, account.Name,
		account.IsActive, account.IsSystem, account.TaxCode,
		account.CreatedAt, account.CreatedBy, account.LastUpdatedAt, account.LastUpdatedBy,
	)
	return mapError(err, "failed to save account "+account.Code)
}

func affectedOrNotFound(res sql.Result, what string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return mapError(err, what)
	}
	if n == 0 {
		return mapError(sql.ErrNoRows, what)
	}
	return nil
}

func (r *AccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE accounts
		SET name = ?, is_active = ?, tax_code = ?, last_updated_at = ?, last_updated_by = ?
		WHERE organization_id = ? AND account_id = ?
	`, account.Name, account.IsActive, account.TaxCode, account.LastUpdatedAt, account.LastUpdatedBy,
		account.OrganizationID, account.AccountID)
	if err != nil {
		return mapError(err, "failed to update account "+account.AccountID)
	}
	return affectedOrNotFound(res, "account "+account.AccountID)
}

func (r *AccountRepository) DeleteAccount(ctx context.Context, organizationID, accountID string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM accounts WHERE organization_id = ? AND account_id = ?`, organizationID, accountID)
	if err != nil {
		return mapError(err, "failed to delete account "+accountID)
	}
	return affectedOrNotFound(res, "account "+accountID)
}
