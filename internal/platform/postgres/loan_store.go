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

const loanColumns = `loan_id, mobile_number, loan_number, loan_type, total_loan, amount_paid, outstanding_amount,
	created_at, created_by, updated_at, updated_by`

// PostgresLoanStore implements the store.LoanStore interface
// using a PostgreSQL database as the storage backend.
type PostgresLoanStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLoanStore creates a new PostgreSQL implementation of the LoanStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresLoanStore(db store.DBTX, logger *slog.Logger) *PostgresLoanStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresLoanStore{
		db:     db,
		logger: logger.With(slog.String("component", "loan_store")),
	}
}

// Ensure PostgresLoanStore implements store.LoanStore interface
var _ store.LoanStore = (*PostgresLoanStore)(nil)

func scanLoan(row rowScanner) (*domain.Loan, error) {
	var l domain.Loan
	var audit nullableAudit
	dest := append([]any{
		&l.LoanID,
		&l.MobileNumber,
		&l.LoanNumber,
		&l.LoanType,
		&l.TotalLoan,
		&l.AmountPaid,
		&l.OutstandingAmount,
	}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	audit.into(&l.Audit)
	return &l, nil
}

func (s *PostgresLoanStore) getOne(ctx context.Context, column, value string) (*domain.Loan, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + loanColumns + ` FROM loans WHERE ` + column + ` = $1`
	loan, err := scanLoan(s.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if err = wrapError("loan", "get", err); store.IsNotFoundError(err) {
			return nil, store.ErrLoanNotFound
		}
		log.ErrorContext(ctx, "failed to get loan",
			slog.String("by", column),
			slog.String("error", err.Error()))
		return nil, err
	}
	return loan, nil
}

// GetByNumber implements store.LoanStore.GetByNumber
func (s *PostgresLoanStore) GetByNumber(ctx context.Context, loanNumber string) (*domain.Loan, error) {
	return s.getOne(ctx, "loan_number", loanNumber)
}

// GetByMobileNumber implements store.LoanStore.GetByMobileNumber
func (s *PostgresLoanStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Loan, error) {
	return s.getOne(ctx, "mobile_number", mobileNumber)
}

// Create implements store.LoanStore.Create
// The loan id is assigned by the database sequence.
func (s *PostgresLoanStore) Create(ctx context.Context, loan *domain.Loan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := loan.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	loan.StampCreated(time.Now())

	query := `
		INSERT INTO loans (mobile_number, loan_number, loan_type, total_loan, amount_paid,
			outstanding_amount, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING loan_id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		loan.MobileNumber,
		loan.LoanNumber,
		loan.LoanType,
		loan.TotalLoan,
		loan.AmountPaid,
		loan.OutstandingAmount,
		loan.CreatedAt,
		loan.CreatedBy,
	).Scan(&loan.LoanID)
	if err != nil {
		err = wrapError("loan", "create", err)
		if !errors.Is(err, store.ErrDuplicate) {
			log.ErrorContext(ctx, "failed to create loan", slog.String("error", err.Error()))
		}
		return err
	}
	return nil
}

// Update implements store.LoanStore.Update
// The loan number is fixed at creation; a record whose number differs from
// the stored one is treated as missing.
func (s *PostgresLoanStore) Update(ctx context.Context, loan *domain.Loan) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := loan.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	loan.StampUpdated(time.Now())

	query := `
		UPDATE loans
		SET mobile_number = $1, loan_type = $2, total_loan = $3, amount_paid = $4,
			outstanding_amount = $5, updated_at = $6, updated_by = $7
		WHERE loan_id = $8 AND loan_number = $9
		RETURNING created_at, created_by
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		loan.MobileNumber,
		loan.LoanType,
		loan.TotalLoan,
		loan.AmountPaid,
		loan.OutstandingAmount,
		loan.UpdatedAt,
		nullString(loan.UpdatedBy),
		loan.LoanID,
		loan.LoanNumber,
	).Scan(&loan.CreatedAt, &loan.CreatedBy)
	if err != nil {
		err = wrapError("loan", "update", err)
		if store.IsNotFoundError(err) {
			return store.ErrLoanNotFound
		}
		if !errors.Is(err, store.ErrDuplicate) {
			log.ErrorContext(ctx, "failed to update loan",
				slog.Int64("loan_id", loan.LoanID),
				slog.String("error", err.Error()))
		}
		return err
	}
	loan.CreatedAt = loan.CreatedAt.UTC()
	return nil
}

// Delete implements store.LoanStore.Delete
func (s *PostgresLoanStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM loans WHERE loan_id = $1`, id)
	if err != nil {
		log.ErrorContext(ctx, "failed to delete loan",
			slog.Int64("loan_id", id),
			slog.String("error", err.Error()))
		return wrapError("loan", "delete", err)
	}
	return CheckRowsAffected(result, store.ErrLoanNotFound)
}
