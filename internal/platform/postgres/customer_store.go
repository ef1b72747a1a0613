package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/store"
)

const customerColumns = `customer_id, name, email, mobile_number, created_at, created_by, updated_at, updated_by`

// PostgresCustomerStore implements the store.CustomerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCustomerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCustomerStore creates a new PostgreSQL implementation of the CustomerStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresCustomerStore(db store.DBTX, logger *slog.Logger) *PostgresCustomerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCustomerStore{
		db:     db,
		logger: logger.With(slog.String("component", "customer_store")),
	}
}

// Ensure PostgresCustomerStore implements store.CustomerStore interface
var _ store.CustomerStore = (*PostgresCustomerStore)(nil)

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	var audit nullableAudit
	dest := append([]any{&c.CustomerID, &c.Name, &c.Email, &c.MobileNumber}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	audit.into(&c.Audit)
	return &c, nil
}

func (s *PostgresCustomerStore) getOne(ctx context.Context, where string, arg any) (*domain.Customer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + customerColumns + ` FROM customer WHERE ` + where
	customer, err := scanCustomer(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err = wrapError("customer", "get", err); store.IsNotFoundError(err) {
			return nil, store.ErrCustomerNotFound
		}
		log.ErrorContext(ctx, "failed to get customer", slog.String("error", err.Error()))
		return nil, err
	}
	return customer, nil
}

// GetByID implements store.CustomerStore.GetByID
func (s *PostgresCustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.getOne(ctx, "customer_id = $1", id)
}

// GetByMobileNumber implements store.CustomerStore.GetByMobileNumber
func (s *PostgresCustomerStore) GetByMobileNumber(
	ctx context.Context,
	mobileNumber string,
) (*domain.Customer, error) {
	return s.getOne(ctx, "mobile_number = $1", mobileNumber)
}

// Create implements store.CustomerStore.Create
// The customer id is assigned by the database sequence.
func (s *PostgresCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		log.WarnContext(ctx, "customer validation failed during create",
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	customer.StampCreated(time.Now())

	query := `
		INSERT INTO customer (name, email, mobile_number, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING customer_id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		customer.CreatedAt,
		customer.CreatedBy,
	).Scan(&customer.CustomerID)
	if err != nil {
		err = wrapError("customer", "create", err)
		if !errors.Is(err, store.ErrDuplicate) {
			log.ErrorContext(ctx, "failed to create customer", slog.String("error", err.Error()))
		}
		return err
	}

	log.DebugContext(ctx, "customer created", slog.Int64("customer_id", customer.CustomerID))
	return nil
}

// Update implements store.CustomerStore.Update
// The created audit columns are never rewritten; the record receives their
// stored values.
func (s *PostgresCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	customer.StampUpdated(time.Now())

	query := `
		UPDATE customer
		SET name = $1, email = $2, mobile_number = $3, updated_at = $4, updated_by = $5
		WHERE customer_id = $6
		RETURNING created_at, created_by
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		customer.Name,
		customer.Email,
		customer.MobileNumber,
		customer.UpdatedAt,
		nullString(customer.UpdatedBy),
		customer.CustomerID,
	).Scan(&customer.CreatedAt, &customer.CreatedBy)
	if err != nil {
		err = wrapError("customer", "update", err)
		if store.IsNotFoundError(err) {
			return store.ErrCustomerNotFound
		}
		if !errors.Is(err, store.ErrDuplicate) {
			log.ErrorContext(ctx, "failed to update customer",
				slog.Int64("customer_id", customer.CustomerID),
				slog.String("error", err.Error()))
		}
		return err
	}
	customer.CreatedAt = customer.CreatedAt.UTC()
	return nil
}

// Delete implements store.CustomerStore.Delete
func (s *PostgresCustomerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM customer WHERE customer_id = $1`, id)
	if err != nil {
		log.ErrorContext(ctx, "failed to delete customer",
			slog.Int64("customer_id", id),
			slog.String("error", err.Error()))
		return wrapError("customer", "delete", err)
	}
	return CheckRowsAffected(result, store.ErrCustomerNotFound)
}
