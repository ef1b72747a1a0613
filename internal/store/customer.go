package store

import (
	"context"

	"github.com/phrazzld/eazybank-api/internal/domain"
)

// CustomerStore defines the interface for customer data persistence.
type CustomerStore interface {
	// GetByID retrieves a customer by its store-assigned ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)

	// GetByMobileNumber retrieves a customer by mobile number.
	// Returns ErrCustomerNotFound if no customer holds the number.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Customer, error)

	// Create inserts a new customer and assigns its CustomerID.
	// Returns ErrMobileNumberExists if another customer holds the mobile number.
	Create(ctx context.Context, customer *domain.Customer) error

	// Update overwrites every mutable column of an existing customer.
	// Returns ErrCustomerNotFound if the customer does not exist.
	// Returns ErrMobileNumberExists if the new mobile number belongs to another customer.
	Update(ctx context.Context, customer *domain.Customer) error

	// Delete removes a customer by ID.
	// Returns ErrCustomerNotFound if the customer does not exist.
	Delete(ctx context.Context, id int64) error
}
