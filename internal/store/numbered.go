package store

import (
	"context"

	"github.com/phrazzld/eazybank-api/internal/domain"
)

// NumberedStore defines persistence for records owned directly by a mobile
// number that carry their own business number (loans and cards).
// R is the record type; implementations work on *R.
type NumberedStore[R any] interface {
	// GetByNumber retrieves a record by its business number.
	// Returns an ErrNotFound-wrapping error if no record has the number.
	GetByNumber(ctx context.Context, number string) (*R, error)

	// GetByMobileNumber retrieves the record owned by a mobile number.
	// Returns an ErrNotFound-wrapping error if the mobile number owns no record.
	GetByMobileNumber(ctx context.Context, mobileNumber string) (*R, error)

	// Create inserts a new record and assigns its internal ID.
	// Returns ErrMobileNumberExists or ErrRecordNumberExists on a unique key conflict.
	Create(ctx context.Context, record *R) error

	// Update overwrites every mutable column of the record with the record's internal ID.
	// Returns an ErrNotFound-wrapping error if the record does not exist and
	// ErrMobileNumberExists if the new mobile number is owned by another record.
	Update(ctx context.Context, record *R) error

	// Delete removes a record by internal ID.
	// Returns an ErrNotFound-wrapping error if the record does not exist.
	Delete(ctx context.Context, id int64) error
}

// LoanStore persists loans.
type LoanStore = NumberedStore[domain.Loan]

// CardStore persists cards.
type CardStore = NumberedStore[domain.Card]

// Layered is implemented by NumberedStore decorators, such as caches, whose
// reads may lag the store they wrap. Underlying returns the wrapped store.
type Layered[R any] interface {
	Underlying() NumberedStore[R]
}

// Authoritative unwraps s through every Layered decorator and returns the
// store whose reads are never stale.
func Authoritative[R any](s NumberedStore[R]) NumberedStore[R] {
	for {
		l, ok := s.(Layered[R])
		if !ok {
			return s
		}
		s = l.Underlying()
	}
}
