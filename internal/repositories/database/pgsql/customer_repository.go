package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/andinabank/ledger-service/internal/apperrors"
	"github.com/andinabank/ledger-service/internal/core/domain"
	portsrepo "github.com/andinabank/ledger-service/internal/core/ports/repositories"
	"github.com/andinabank/ledger-service/internal/models"
	"github.com/andinabank/ledger-service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const customerColumns = `customer_id, name, gender, identification, address, phone, password_hash, status, created_at, last_updated_at`

type PgxCustomerRepository struct {
	pool *pgxpool.Pool
}

// newPgxCustomerRepository creates a new repository for registry customers.
func newPgxCustomerRepository(pool *pgxpool.Pool) portsrepo.CustomerRepository {
	return &PgxCustomerRepository{pool: pool}
}

// Ensure PgxCustomerRepository implements portsrepo.CustomerRepository
var _ portsrepo.CustomerRepository = (*PgxCustomerRepository)(nil)

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.Name,
		&m.Gender,
		&m.Identification,
		&m.Address,
		&m.Phone,
		&m.PasswordHash,
		&m.Status,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveCustomer inserts a new customer and returns the generated identifier.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) (int64, error) {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (name, gender, identification, address, phone, password_hash, status, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING customer_id;
	`
	var customerID int64
	err := r.pool.QueryRow(ctx, query,
		m.Name,
		m.Gender,
		m.Identification,
		m.Address,
		m.Phone,
		m.PasswordHash,
		m.Status,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&customerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return 0, fmt.Errorf("%w: customer with identification %s already exists", apperrors.ErrDuplicate, m.Identification)
		}
		return 0, fmt.Errorf("failed to save customer: %w", err)
	}
	return customerID, nil
}

// FindCustomerByID retrieves a customer by identifier.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID int64) (*domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE customer_id = $1;
	`
	m, err := scanCustomer(r.pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %d: %w", customerID, err)
	}

	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// ListCustomersByStatus retrieves all customers with the given status.
func (r *PgxCustomerRepository) ListCustomersByStatus(ctx context.Context, status domain.StatusType) ([]domain.Customer, error) {
	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE status = $1
		ORDER BY customer_id;
	`
	rows, err := r.pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		m, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}

// UpdateCustomer updates an existing customer record.
func (r *PgxCustomerRepository) UpdateCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		UPDATE customers
		SET name = $2, gender = $3, identification = $4, address = $5, phone = $6, password_hash = $7, status = $8, last_updated_at = $9
		WHERE customer_id = $1;
	`
	cmdTag, err := r.pool.Exec(ctx, query,
		m.CustomerID,
		m.Name,
		m.Gender,
		m.Identification,
		m.Address,
		m.Phone,
		m.PasswordHash,
		m.Status,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: customer with identification %s already exists", apperrors.ErrDuplicate, m.Identification)
		}
		return fmt.Errorf("failed to execute update customer %d: %w", m.CustomerID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
