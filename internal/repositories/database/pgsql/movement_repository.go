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
	"github.com/andinabank/ledger-service/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const movementColumns = `movement_id, account_id, movement_type, value, movement_date, balance, created_at`

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepository {
	return &PgxMovementRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMovementRepository implements portsrepo.MovementRepository
var _ portsrepo.MovementRepository = (*PgxMovementRepository)(nil)

func scanMovement(row pgx.Row) (models.Movement, error) {
	var m models.Movement
	err := row.Scan(
		&m.MovementID,
		&m.AccountID,
		&m.MovementType,
		&m.Value,
		&m.MovementDate,
		&m.Balance,
		&m.CreatedAt,
	)
	return m, err
}

// FindMovementByID retrieves a movement with the owning account's number attached.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, movementID string) (*domain.Movement, error) {
	query := `
		SELECT m.movement_id, m.account_id, m.movement_type, m.value, m.movement_date, m.balance, m.created_at, a.number
		FROM movements m
		JOIN accounts a ON a.account_id = m.account_id
		WHERE m.movement_id = $1;
	`
	var m models.Movement
	var number string
	err := r.Pool.QueryRow(ctx, query, movementID).Scan(
		&m.MovementID,
		&m.AccountID,
		&m.MovementType,
		&m.Value,
		&m.MovementDate,
		&m.Balance,
		&m.CreatedAt,
		&number,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement by ID %s: %w", movementID, err)
	}

	d := mapping.ToDomainMovement(m)
	d.AccountNumber = number
	return &d, nil
}

// FindLatestBalance returns the balance stored on the account's most recent
// movement, or (nil, nil) when the account has none.
func (r *PgxMovementRepository) FindLatestBalance(ctx context.Context, accountID string) (*decimal.Decimal, error) {
	balance, err := findLatestBalanceQuerier(ctx, r.Pool, accountID, false)
	if err != nil {
		return nil, err
	}
	return balance, nil
}

// querier covers both pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func findLatestBalanceQuerier(ctx context.Context, q querier, accountID string, forUpdate bool) (*decimal.Decimal, error) {
	query := `
		SELECT balance
		FROM movements
		WHERE account_id = $1
		ORDER BY movement_date DESC, created_at DESC, movement_id DESC
		LIMIT 1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	query += `;`

	var balance decimal.Decimal
	err := q.QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest balance for account %s: %w", accountID, err)
	}
	return &balance, nil
}

// FindMovementsByAccountAndRange retrieves the account's movements with
// movement date inside [from, to], oldest first.
func (r *PgxMovementRepository) FindMovementsByAccountAndRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements
		WHERE account_id = $1 AND movement_date >= $2 AND movement_date <= $3
		ORDER BY movement_date, created_at, movement_id;
	`
	rows, err := r.Pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for account %s: %w", accountID, err)
	}
	defer rows.Close()

	movements := []domain.Movement{}
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan movement row for account %s: %w", accountID, err)
		}
		movements = append(movements, mapping.ToDomainMovement(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating movement rows for account %s: %w", accountID, rows.Err())
	}
	return movements, nil
}

// ListMovements retrieves a page of movements, newest first, using a keyset
// token of the last returned row.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, limit int, nextToken *string) ([]domain.Movement, *string, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT m.movement_id, m.account_id, m.movement_type, m.value, m.movement_date, m.balance, m.created_at, a.number
		FROM movements m
		JOIN accounts a ON a.account_id = m.account_id
	`
	args := []any{}
	if nextToken != nil && *nextToken != "" {
		afterDate, afterID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += `WHERE (m.movement_date, m.movement_id) < ($1, $2)
	`
		args = append(args, afterDate, afterID)
	}
	query += fmt.Sprintf(`ORDER BY m.movement_date DESC, m.movement_id DESC
		LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1) // fetch one extra to detect another page

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	movements := []domain.Movement{}
	for rows.Next() {
		var m models.Movement
		var number string
		if err := rows.Scan(&m.MovementID, &m.AccountID, &m.MovementType, &m.Value, &m.MovementDate, &m.Balance, &m.CreatedAt, &number); err != nil {
			return nil, nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		d := mapping.ToDomainMovement(m)
		d.AccountNumber = number
		movements = append(movements, d)
	}
	if rows.Err() != nil {
		return nil, nil, fmt.Errorf("error iterating movement rows: %w", rows.Err())
	}

	var token *string
	if len(movements) > limit {
		movements = movements[:limit]
		last := movements[len(movements)-1]
		t := pagination.EncodeToken(last.MovementDate, last.MovementID)
		token = &t
	}
	return movements, token, nil
}

// SaveMovementGuarded persists a movement inside a transaction that locks the
// account row and re-reads the latest stored balance. When the re-read
// disagrees with expectedBase a concurrent writer got in first; nothing is
// written and ErrConflict is returned so the caller can recompute.
func (r *PgxMovementRepository) SaveMovementGuarded(ctx context.Context, movement domain.Movement, expectedBase *decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck

	// The account row lock serializes concurrent registrations per account.
	var lockedID string
	err = tx.QueryRow(ctx, `SELECT account_id FROM accounts WHERE account_id = $1 FOR UPDATE;`, movement.AccountID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock account %s: %w", movement.AccountID, err)
	}

	latest, err := findLatestBalanceQuerier(ctx, tx, movement.AccountID, false)
	if err != nil {
		return err
	}
	if !basesMatch(latest, expectedBase) {
		return fmt.Errorf("%w: balance of account %s changed since it was read", apperrors.ErrConflict, movement.AccountID)
	}

	if err := insertMovement(ctx, tx, mapping.ToModelMovement(movement)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func basesMatch(latest, expected *decimal.Decimal) bool {
	if latest == nil || expected == nil {
		return latest == nil && expected == nil
	}
	return latest.Equal(*expected)
}

// SaveMovement persists a movement as supplied, without the balance guard.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.Movement) error {
	return insertMovement(ctx, r.Pool, mapping.ToModelMovement(movement))
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertMovement(ctx context.Context, e execer, m models.Movement) error {
	query := `
		INSERT INTO movements (movement_id, account_id, movement_type, value, movement_date, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := e.Exec(ctx, query,
		m.MovementID,
		m.AccountID,
		m.MovementType,
		m.Value,
		m.MovementDate,
		m.Balance,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique violation
				return fmt.Errorf("%w: movement %s already exists", apperrors.ErrDuplicate, m.MovementID)
			case "23503": // foreign key violation
				return fmt.Errorf("%w: account %s does not exist", apperrors.ErrNotFound, m.AccountID)
			}
		}
		return fmt.Errorf("failed to save movement %s: %w", m.MovementID, err)
	}
	return nil
}

// UpdateMovement re-persists a movement wholesale under its identifier.
func (r *PgxMovementRepository) UpdateMovement(ctx context.Context, movement domain.Movement) error {
	m := mapping.ToModelMovement(movement)

	query := `
		UPDATE movements
		SET account_id = $2, movement_type = $3, value = $4, movement_date = $5, balance = $6
		WHERE movement_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.MovementID,
		m.AccountID,
		m.MovementType,
		m.Value,
		m.MovementDate,
		m.Balance,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update movement %s: %w", m.MovementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteMovement removes a movement row.
func (r *PgxMovementRepository) DeleteMovement(ctx context.Context, movementID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM movements WHERE movement_id = $1;`, movementID)
	if err != nil {
		return fmt.Errorf("failed to execute delete movement %s: %w", movementID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
