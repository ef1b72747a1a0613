package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/mapper"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// LoanService provides loan-related operations.
type LoanService interface {
	// CreateLoan issues a default home loan to mobileNumber.
	// Returns a domain.AlreadyExistsError if the mobile number already holds a loan.
	CreateLoan(ctx context.Context, mobileNumber string) error

	// FetchLoan returns the loan held by mobileNumber.
	// Returns a domain.ResourceNotFoundError if there is none.
	FetchLoan(ctx context.Context, mobileNumber string) (*dto.LoansDto, error)

	// UpdateLoan overwrites the loan with the DTO's loan number.
	// Returns a domain.ResourceNotFoundError if no loan has that number.
	UpdateLoan(ctx context.Context, loan dto.LoansDto) (bool, error)

	// DeleteLoan removes the loan held by mobileNumber.
	// Returns a domain.ResourceNotFoundError if there is none.
	DeleteLoan(ctx context.Context, mobileNumber string) (bool, error)
}

type loanServiceImpl struct {
	*numberedService[domain.Loan, *domain.Loan, dto.LoansDto]
}

var loanKind = numberedKind[domain.Loan, dto.LoansDto]{
	resource:    domain.ResourceLoan,
	numberField: "loanNumber",
	actor:       domain.ActorLoans,
	newRecord:   domain.NewLoan,
	toDTO:       mapper.ToLoansDto,
	apply:       mapper.OntoLoan,
	numberOf:    func(d dto.LoansDto) string { return d.LoanNumber },
	mobileOf:    func(d dto.LoansDto) string { return d.MobileNumber },
}

// NewLoanService creates a new LoanService.
// It returns an error if any of the required dependencies are nil.
func NewLoanService(
	loans store.LoanStore,
	numbers NumberGenerator,
	logger *slog.Logger,
) (LoanService, error) {
	impl, err := newNumberedService[domain.Loan, *domain.Loan](
		loans, numbers, loanKind, logger, "loan_service")
	if err != nil {
		return nil, err
	}
	return &loanServiceImpl{impl}, nil
}

// CreateLoan implements LoanService.CreateLoan
func (s *loanServiceImpl) CreateLoan(ctx context.Context, mobileNumber string) error {
	return s.Create(ctx, mobileNumber)
}

// FetchLoan implements LoanService.FetchLoan
func (s *loanServiceImpl) FetchLoan(ctx context.Context, mobileNumber string) (*dto.LoansDto, error) {
	return s.Fetch(ctx, mobileNumber)
}

// UpdateLoan implements LoanService.UpdateLoan
func (s *loanServiceImpl) UpdateLoan(ctx context.Context, loan dto.LoansDto) (bool, error) {
	return s.Update(ctx, loan)
}

// DeleteLoan implements LoanService.DeleteLoan
func (s *loanServiceImpl) DeleteLoan(ctx context.Context, mobileNumber string) (bool, error) {
	return s.Delete(ctx, mobileNumber)
}
