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

const accountColumns = `account_number, customer_id, account_type, branch_address, created_at, created_by, updated_at, updated_by`

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the AccountStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

func scanAccount(row rowScanner) (*domain.Account, error) {
	var a domain.Account
	var audit nullableAudit
	dest := append([]any{&a.AccountNumber, &a.CustomerID, &a.AccountType, &a.BranchAddress}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	audit.into(&a.Audit)
	return &a, nil
}

func (s *PostgresAccountStore) getOne(ctx context.Context, where string, arg int64) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	account, err := scanAccount(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if err = wrapError("account", "get", err); store.IsNotFoundError(err) {
			return nil, store.ErrAccountNotFound
		}
		log.ErrorContext(ctx, "failed to get account", slog.String("error", err.Error()))
		return nil, err
	}
	return account, nil
}

// GetByAccountNumber implements store.AccountStore.GetByAccountNumber
func (s *PostgresAccountStore) GetByAccountNumber(
	ctx context.Context,
	accountNumber int64,
) (*domain.Account, error) {
	return s.getOne(ctx, "account_number = $1", accountNumber)
}

// GetByCustomerID implements store.AccountStore.GetByCustomerID
func (s *PostgresAccountStore) GetByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error) {
	return s.getOne(ctx, "customer_id = $1", customerID)
}

// Create implements store.AccountStore.Create
// A taken account number is reported as store.ErrRecordNumberExists and a
// customer that already owns an account as store.ErrCustomerHasAccount.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	account.StampCreated(time.Now())

	query := `
		INSERT INTO accounts (account_number, customer_id, account_type, branch_address, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		account.AccountNumber,
		account.CustomerID,
		account.AccountType,
		account.BranchAddress,
		account.CreatedAt,
		account.CreatedBy,
	)
	if err != nil {
		err = wrapError("account", "create", err)
		if !errors.Is(err, store.ErrDuplicate) {
			log.ErrorContext(ctx, "failed to create account",
				slog.Int64("customer_id", account.CustomerID),
				slog.String("error", err.Error()))
		}
		return err
	}
	return nil
}

// Update implements store.AccountStore.Update
// Only the account type, the branch and the update audit columns change.
func (s *PostgresAccountStore) Update(ctx context.Context, account *domain.Account) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	account.StampUpdated(time.Now())

	query := `
		UPDATE accounts
		SET account_type = $1, branch_address = $2, updated_at = $3, updated_by = $4
		WHERE account_number = $5
		RETURNING customer_id, created_at, created_by
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		account.AccountType,
		account.BranchAddress,
		account.UpdatedAt,
		nullString(account.UpdatedBy),
		account.AccountNumber,
	).Scan(&account.CustomerID, &account.CreatedAt, &account.CreatedBy)
	if err != nil {
		if err = wrapError("account", "update", err); store.IsNotFoundError(err) {
			return store.ErrAccountNotFound
		}
		log.ErrorContext(ctx, "failed to update account",
			slog.Int64("account_number", account.AccountNumber),
			slog.String("error", err.Error()))
		return err
	}
	account.CreatedAt = account.CreatedAt.UTC()
	return nil
}

// DeleteByCustomerID implements store.AccountStore.DeleteByCustomerID
// Deleting zero rows is not an error.
func (s *PostgresAccountStore) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE customer_id = $1`, customerID)
	if err != nil {
		log.ErrorContext(ctx, "failed to delete accounts",
			slog.Int64("customer_id", customerID),
			slog.String("error", err.Error()))
		return wrapError("account", "delete", err)
	}

	if n, err := result.RowsAffected(); err == nil {
		log.DebugContext(ctx, "accounts deleted",
			slog.Int64("customer_id", customerID),
			slog.Int64("rows", n))
	}
	return nil
}
