package service

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/mapper"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// AccountService provides operations on a customer and the account it owns.
type AccountService interface {
	// CreateAccount registers the customer and opens a default savings account
	// for it. Returns a domain.AlreadyExistsError if a customer already holds
	// the mobile number.
	CreateAccount(ctx context.Context, customer dto.CustomerDto) error

	// FetchAccount returns the customer holding mobileNumber with its account nested.
	// Returns a domain.ResourceNotFoundError if the customer or its account is missing.
	FetchAccount(ctx context.Context, mobileNumber string) (*dto.CustomerDto, error)

	// UpdateAccount overwrites the account named by customer.Accounts and then
	// the customer owning it. It returns false without changing anything when
	// customer.Accounts is nil.
	UpdateAccount(ctx context.Context, customer dto.CustomerDto) (bool, error)

	// DeleteAccount removes the customer holding mobileNumber and its accounts.
	// Returns a domain.ResourceNotFoundError if no customer holds the number.
	DeleteAccount(ctx context.Context, mobileNumber string) (bool, error)
}

// accountServiceImpl implements the AccountService interface
type accountServiceImpl struct {
	customers store.CustomerStore
	accounts  store.AccountStore
	numbers   NumberGenerator
	logger    *slog.Logger
}

// NewAccountService creates a new AccountService.
// It returns an error if any of the required dependencies are nil.
func NewAccountService(
	customers store.CustomerStore,
	accounts store.AccountStore,
	numbers NumberGenerator,
	logger *slog.Logger,
) (AccountService, error) {
	if customers == nil {
		return nil, domain.NewValidationError("customers", "cannot be nil", domain.ErrValidation)
	}
	if accounts == nil {
		return nil, domain.NewValidationError("accounts", "cannot be nil", domain.ErrValidation)
	}
	if numbers == nil {
		return nil, domain.NewValidationError("numbers", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &accountServiceImpl{
		customers: customers,
		accounts:  accounts,
		numbers:   numbers,
		logger:    logger.With(slog.String("component", "account_service")),
	}, nil
}

// CreateAccount implements AccountService.CreateAccount
func (s *accountServiceImpl) CreateAccount(ctx context.Context, d dto.CustomerDto) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.customers.GetByMobileNumber(ctx, d.MobileNumber)
	switch {
	case err == nil:
		return domain.NewAlreadyExistsError(domain.ResourceCustomer, d.MobileNumber)
	case !store.IsNotFoundError(err):
		log.ErrorContext(ctx, "failed to check for existing customer",
			slog.String("error", err.Error()))
		return err
	}

	customer := mapper.ToCustomer(d)
	customer.CreatedBy = domain.ActorAccounts
	if err := customer.Validate(); err != nil {
		return err
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		return uniqueViolation(err, domain.ResourceCustomer, d.MobileNumber)
	}

	var account *domain.Account
	err = withFreshNumber(ctx, log, func() error {
		account = domain.NewAccount(customer.CustomerID, s.numbers.AccountNumber())
		return s.accounts.Create(ctx, account)
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to open account, removing customer",
			slog.Int64("customer_id", customer.CustomerID),
			slog.String("error", err.Error()))
		if cleanupErr := s.customers.Delete(ctx, customer.CustomerID); cleanupErr != nil {
			log.ErrorContext(ctx, "failed to remove customer without account",
				slog.Int64("customer_id", customer.CustomerID),
				slog.String("error", cleanupErr.Error()))
		}
		return err
	}

	log.InfoContext(ctx, "account created",
		slog.Int64("customer_id", customer.CustomerID),
		slog.Int64("account_number", account.AccountNumber))
	return nil
}

// FetchAccount implements AccountService.FetchAccount
func (s *accountServiceImpl) FetchAccount(ctx context.Context, mobileNumber string) (*dto.CustomerDto, error) {
	customer, err := s.customers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceCustomer, "mobileNumber", mobileNumber)
	}

	account, err := s.accounts.GetByCustomerID(ctx, customer.CustomerID)
	if err != nil {
		return nil, notFoundOr(err, domain.ResourceAccount, "customerId",
			strconv.FormatInt(customer.CustomerID, 10))
	}

	d := mapper.ToCustomerDto(customer)
	accountsDto := mapper.ToAccountsDto(account)
	d.Accounts = &accountsDto
	return &d, nil
}

// UpdateAccount implements AccountService.UpdateAccount
// Both records are looked up and validated, and the new mobile number is
// checked, before either is written.
func (s *accountServiceImpl) UpdateAccount(ctx context.Context, d dto.CustomerDto) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if d.Accounts == nil {
		return false, nil
	}
	accountNumber := d.Accounts.AccountNumber

	account, err := s.accounts.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		return false, notFoundOr(err, domain.ResourceAccount, "accountNumber",
			strconv.FormatInt(accountNumber, 10))
	}

	customerID := account.CustomerID
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return false, notFoundOr(err, domain.ResourceCustomer, "customerId",
			strconv.FormatInt(customerID, 10))
	}

	mapper.OntoAccount(*d.Accounts, account)
	account.UpdatedBy = domain.ActorAccounts
	if err := account.Validate(); err != nil {
		return false, err
	}

	mapper.OntoCustomer(d, customer)
	customer.UpdatedBy = domain.ActorAccounts
	if err := customer.Validate(); err != nil {
		return false, err
	}

	holder, err := s.customers.GetByMobileNumber(ctx, customer.MobileNumber)
	switch {
	case err == nil && holder.CustomerID != customerID:
		return false, domain.NewAlreadyExistsError(domain.ResourceCustomer, customer.MobileNumber)
	case err != nil && !store.IsNotFoundError(err):
		log.ErrorContext(ctx, "failed to check mobile number owner",
			slog.String("error", err.Error()))
		return false, err
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return false, notFoundOr(err, domain.ResourceAccount, "accountNumber",
			strconv.FormatInt(accountNumber, 10))
	}
	if err := s.customers.Update(ctx, customer); err != nil {
		// Only a write racing this update can fail here.
		err = notFoundOr(err, domain.ResourceCustomer, "customerId", strconv.FormatInt(customerID, 10))
		return false, uniqueViolation(err, domain.ResourceCustomer, d.MobileNumber)
	}

	log.InfoContext(ctx, "account updated",
		slog.Int64("customer_id", customerID),
		slog.Int64("account_number", accountNumber))
	return true, nil
}

// DeleteAccount implements AccountService.DeleteAccount
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, mobileNumber string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	customer, err := s.customers.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, notFoundOr(err, domain.ResourceCustomer, "mobileNumber", mobileNumber)
	}

	if err := s.accounts.DeleteByCustomerID(ctx, customer.CustomerID); err != nil {
		return false, err
	}
	if err := s.customers.Delete(ctx, customer.CustomerID); err != nil {
		return false, notFoundOr(err, domain.ResourceCustomer, "mobileNumber", mobileNumber)
	}

	log.InfoContext(ctx, "account deleted",
		slog.Int64("customer_id", customer.CustomerID))
	return true, nil
}
