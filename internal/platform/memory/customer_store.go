package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// CustomerStore implements store.CustomerStore in memory.
type CustomerStore struct {
	mutex    sync.RWMutex
	byID     map[int64]domain.Customer
	byMobile map[string]int64
	nextID   int64
	clock    Clock
}

// NewCustomerStore creates an empty CustomerStore. A nil clock uses time.Now.
func NewCustomerStore(clock Clock) *CustomerStore {
	return &CustomerStore{
		byID:     make(map[int64]domain.Customer),
		byMobile: make(map[string]int64),
		clock:    clock,
	}
}

var _ store.CustomerStore = (*CustomerStore)(nil)

// GetByID implements store.CustomerStore.GetByID
func (s *CustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	customer, ok := s.byID[id]
	if !ok {
		return nil, store.ErrCustomerNotFound
	}
	return &customer, nil
}

// GetByMobileNumber implements store.CustomerStore.GetByMobileNumber
func (s *CustomerStore) GetByMobileNumber(
	ctx context.Context,
	mobileNumber string,
) (*domain.Customer, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	id, ok := s.byMobile[mobileNumber]
	if !ok {
		return nil, store.ErrCustomerNotFound
	}
	customer := s.byID[id]
	return &customer, nil
}

// Create implements store.CustomerStore.Create
func (s *CustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, taken := s.byMobile[customer.MobileNumber]; taken {
		return store.ErrMobileNumberExists
	}

	s.nextID++
	customer.CustomerID = s.nextID
	customer.StampCreated(s.clock.now())

	s.byID[customer.CustomerID] = *customer
	s.byMobile[customer.MobileNumber] = customer.CustomerID
	return nil
}

// Update implements store.CustomerStore.Update
func (s *CustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	if err := customer.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, ok := s.byID[customer.CustomerID]
	if !ok {
		return store.ErrCustomerNotFound
	}
	if owner, taken := s.byMobile[customer.MobileNumber]; taken && owner != customer.CustomerID {
		return store.ErrMobileNumberExists
	}

	customer.CreatedAt = existing.CreatedAt
	customer.CreatedBy = existing.CreatedBy
	customer.StampUpdated(s.clock.now())

	delete(s.byMobile, existing.MobileNumber)
	s.byID[customer.CustomerID] = *customer
	s.byMobile[customer.MobileNumber] = customer.CustomerID
	return nil
}

// Delete implements store.CustomerStore.Delete
func (s *CustomerStore) Delete(ctx context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, ok := s.byID[id]
	if !ok {
		return store.ErrCustomerNotFound
	}
	delete(s.byMobile, existing.MobileNumber)
	delete(s.byID, id)
	return nil
}
