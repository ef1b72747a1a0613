package store

import (
	"context"

	"github.com/phrazzld/eazybank-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// GetByAccountNumber retrieves an account by its account number.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByAccountNumber(ctx context.Context, accountNumber int64) (*domain.Account, error)

	// GetByCustomerID retrieves the account owned by a customer.
	// Returns ErrAccountNotFound if the customer has no account.
	GetByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error)

	// Create inserts a new account. The account number must already be set.
	// Returns ErrRecordNumberExists if the number is taken and
	// ErrCustomerHasAccount if the customer already owns an account.
	Create(ctx context.Context, account *domain.Account) error

	// Update overwrites every mutable column of an existing account.
	// Returns ErrAccountNotFound if the account does not exist.
	Update(ctx context.Context, account *domain.Account) error

	// DeleteByCustomerID removes the accounts owned by a customer.
	// Deleting zero accounts is not an error.
	DeleteByCustomerID(ctx context.Context, customerID int64) error
}
