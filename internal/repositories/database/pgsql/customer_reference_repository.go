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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCustomerReferenceRepository struct {
	pool *pgxpool.Pool
}

// newPgxCustomerReferenceRepository creates a new repository for the
// ledger-side customer projection.
func newPgxCustomerReferenceRepository(pool *pgxpool.Pool) portsrepo.CustomerReferenceRepository {
	return &PgxCustomerReferenceRepository{pool: pool}
}

// Ensure PgxCustomerReferenceRepository implements portsrepo.CustomerReferenceRepository
var _ portsrepo.CustomerReferenceRepository = (*PgxCustomerReferenceRepository)(nil)

// UpsertCustomerReference inserts the projection row, overwriting an existing
// row for the same customer. Replays of a creation event land here twice and
// converge on the same state.
func (r *PgxCustomerReferenceRepository) UpsertCustomerReference(ctx context.Context, ref domain.CustomerReference, now time.Time) error {
	query := `
		INSERT INTO customer_references (customer_id, name, identification, status, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (customer_id) DO UPDATE
		SET name = EXCLUDED.name,
			identification = EXCLUDED.identification,
			status = EXCLUDED.status,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.pool.Exec(ctx, query, ref.CustomerID, ref.Name, ref.Identification, string(ref.Status), now)
	if err != nil {
		return fmt.Errorf("failed to upsert customer reference %d: %w", ref.CustomerID, err)
	}
	return nil
}

// FindCustomerReferenceByID retrieves a projection row.
func (r *PgxCustomerReferenceRepository) FindCustomerReferenceByID(ctx context.Context, customerID int64) (*domain.CustomerReference, error) {
	query := `
		SELECT customer_id, name, identification, status, last_updated_at
		FROM customer_references
		WHERE customer_id = $1;
	`
	var m models.CustomerReference
	err := r.pool.QueryRow(ctx, query, customerID).Scan(
		&m.CustomerID,
		&m.Name,
		&m.Identification,
		&m.Status,
		&m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer reference %d: %w", customerID, err)
	}

	d := mapping.ToDomainCustomerReference(m)
	return &d, nil
}

// UpdateCustomerReference overwrites an existing projection row.
func (r *PgxCustomerReferenceRepository) UpdateCustomerReference(ctx context.Context, ref domain.CustomerReference, now time.Time) error {
	query := `
		UPDATE customer_references
		SET name = $2, identification = $3, status = $4, last_updated_at = $5
		WHERE customer_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query, ref.CustomerID, ref.Name, ref.Identification, string(ref.Status), now)
	if err != nil {
		return fmt.Errorf("failed to execute update customer reference %d: %w", ref.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkCustomerReferenceDeleted flips the projection status to DELETED,
// keeping name and identification for historical statements.
func (r *PgxCustomerReferenceRepository) MarkCustomerReferenceDeleted(ctx context.Context, customerID int64, now time.Time) error {
	query := `
		UPDATE customer_references
		SET status = $2, last_updated_at = $3
		WHERE customer_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query, customerID, string(domain.StatusDeleted), now)
	if err != nil {
		return fmt.Errorf("failed to execute delete customer reference %d: %w", customerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
