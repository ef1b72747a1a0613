package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is the PostgreSQL error code for foreign key violations
	foreignKeyViolationCode = "23503"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"
)

// uniqueConstraints maps the unique constraints declared by the migrations to
// the store error reported when one of them is violated.
var uniqueConstraints = map[string]error{
	"customer_mobile_number_key": store.ErrMobileNumberExists,
	"accounts_pkey":              store.ErrRecordNumberExists,
	"accounts_customer_id_key":   store.ErrCustomerHasAccount,
	"loans_mobile_number_key":    store.ErrMobileNumberExists,
	"loans_loan_number_key":      store.ErrRecordNumberExists,
	"cards_mobile_number_key":    store.ErrMobileNumberExists,
	"cards_card_number_key":      store.ErrRecordNumberExists,
}

// MapError maps a database error to the matching store error.
// It wraps the original error to preserve context for debugging.
// Unique violations on a known constraint map to the specific duplicate
// error (mobile number or record number); unknown ones map to store.ErrDuplicate.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if specific, ok := uniqueConstraints[pgErr.ConstraintName]; ok {
				return fmt.Errorf("%w: %v", specific, err)
			}
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf(
				"%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case checkViolationCode:
			return fmt.Errorf(
				"%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ConstraintName,
				err,
			)
		case notNullViolationCode:
			return fmt.Errorf(
				"%w: not null violation (%s): %v",
				store.ErrInvalidEntity,
				pgErr.ColumnName,
				err,
			)
		}
	}

	return err
}

// CheckRowsAffected examines the number of rows affected by a database operation.
// If no rows were affected, it returns notFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

// wrapError maps err with MapError and attaches entity and operation context
// to errors that have no store equivalent, such as connection failures.
// Mapped store errors are returned unchanged.
func wrapError(entity, operation string, err error) error {
	mapped := MapError(err)
	if mapped == nil ||
		store.IsNotFoundError(mapped) ||
		store.IsDuplicateError(mapped) ||
		errors.Is(mapped, store.ErrInvalidEntity) {
		return mapped
	}
	return store.NewStoreError(entity, operation, "database error", mapped)
}
