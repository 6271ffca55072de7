package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portsrepo "github.com/andinabank/ledger-service/internal/core/ports/repositories"
	"github.com/andinabank/ledger-service/internal/models"
	"github.com/andinabank/ledger-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, number, account_type, initial_balance, status, customer_id, created_at, last_updated_at`

type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepository
var _ portsrepo.AccountRepository = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Number,
		&m.AccountType,
		&m.InitialBalance,
		&m.Status,
		&m.CustomerID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, number, account_type, initial_balance, status, customer_id, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Number,
		m.AccountType,
		m.InitialBalance,
		m.Status,
		m.CustomerID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to save account %s: %w", m.AccountID, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = $1;
	`
	m, err := scanAccount(r.pool.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	d := mapping.ToDomainAccount(m)
	return &d, nil
}

// FindAccountsByCustomerID retrieves a customer's accounts with the given
// status, oldest first.
func (r *PgxAccountRepository) FindAccountsByCustomerID(ctx context.Context, customerID int64, status domain.StatusType) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE customer_id = $1 AND status = $2
		ORDER BY created_at, account_id;
	`
	rows, err := r.pool.Query(ctx, query, customerID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for customer %d: %w", customerID, err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for customer %d: %w", customerID, rows.Err())
	}
	return accounts, nil
}

// ListAccounts retrieves a paginated list of accounts with the given status.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, status domain.StatusType, limit int, offset int) ([]domain.Account, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE status = $1
		ORDER BY number
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		m, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", rows.Err())
	}
	return accounts, nil
}

// UpdateAccount updates an existing account in the database.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET number = $2, account_type = $3, initial_balance = $4, status = $5, last_updated_at = $6
		WHERE account_id = $1;
	`
	// customer_id and created_at are fixed at creation.

	cmdTag, err := r.pool.Exec(ctx, query,
		m.AccountID,
		m.Number,
		m.AccountType,
		m.InitialBalance,
		m.Status,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account number %s already exists", apperrors.ErrDuplicate, m.Number)
		}
		return fmt.Errorf("failed to execute update account %s: %w", m.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAccountDeleted flips an active account to DELETED status.
func (r *PgxAccountRepository) MarkAccountDeleted(ctx context.Context, accountID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET status = $2, last_updated_at = $3
		WHERE account_id = $1 AND status = $4;
	`
	cmdTag, err := r.pool.Exec(ctx, query, accountID, string(domain.StatusDeleted), now, string(domain.StatusActive))
	if err != nil {
		return fmt.Errorf("failed to execute delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the account doesn't exist or it was already deleted.
		_, findErr := r.FindAccountByID(ctx, accountID)
		if errors.Is(findErr, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		} else if findErr != nil {
			return fmt.Errorf("failed to check account status after delete attempt for %s: %w", accountID, findErr)
		}
		return apperrors.ErrAccountDeleted
	}
	return nil
}
