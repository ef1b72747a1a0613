package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// AccountStore implements store.AccountStore in memory.
type AccountStore struct {
	mutex      sync.RWMutex
	byNumber   map[int64]domain.Account
	byCustomer map[int64]int64
	clock      Clock
}

// NewAccountStore creates an empty AccountStore. A nil clock uses time.Now.
func NewAccountStore(clock Clock) *AccountStore {
	return &AccountStore{
		byNumber:   make(map[int64]domain.Account),
		byCustomer: make(map[int64]int64),
		clock:      clock,
	}
}

var _ store.AccountStore = (*AccountStore)(nil)

// GetByAccountNumber implements store.AccountStore.GetByAccountNumber
func (s *AccountStore) GetByAccountNumber(
	ctx context.Context,
	accountNumber int64,
) (*domain.Account, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	account, ok := s.byNumber[accountNumber]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	return &account, nil
}

// GetByCustomerID implements store.AccountStore.GetByCustomerID
func (s *AccountStore) GetByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	number, ok := s.byCustomer[customerID]
	if !ok {
		return nil, store.ErrAccountNotFound
	}
	account := s.byNumber[number]
	return &account, nil
}

// Create implements store.AccountStore.Create
func (s *AccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, taken := s.byNumber[account.AccountNumber]; taken {
		return store.ErrRecordNumberExists
	}
	if _, owns := s.byCustomer[account.CustomerID]; owns {
		return store.ErrCustomerHasAccount
	}

	account.StampCreated(s.clock.now())
	s.byNumber[account.AccountNumber] = *account
	s.byCustomer[account.CustomerID] = account.AccountNumber
	return nil
}

// Update implements store.AccountStore.Update
// The account number and owning customer are fixed at creation.
func (s *AccountStore) Update(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, ok := s.byNumber[account.AccountNumber]
	if !ok {
		return store.ErrAccountNotFound
	}

	account.CustomerID = existing.CustomerID
	account.CreatedAt = existing.CreatedAt
	account.CreatedBy = existing.CreatedBy
	account.StampUpdated(s.clock.now())

	s.byNumber[account.AccountNumber] = *account
	return nil
}

// DeleteByCustomerID implements store.AccountStore.DeleteByCustomerID
func (s *AccountStore) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	number, ok := s.byCustomer[customerID]
	if !ok {
		return nil
	}
	delete(s.byNumber, number)
	delete(s.byCustomer, customerID)
	return nil
}
