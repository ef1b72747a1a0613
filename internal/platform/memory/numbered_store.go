package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// NumberedStore implements store.NumberedStore in memory for any record type
// whose pointer implements domain.NumberedRecord. Mobile numbers and record
// numbers are both unique.
type NumberedStore[R any, P interface {
	*R
	domain.NumberedRecord
}] struct {
	mutex    sync.RWMutex
	rows     map[int64]R
	byMobile map[string]int64
	byNumber map[string]int64
	nextID   int64
	clock    Clock
	notFound error
}

// NewNumberedStore creates an empty store that reports missing records with notFound.
func NewNumberedStore[R any, P interface {
	*R
	domain.NumberedRecord
}](clock Clock, notFound error) *NumberedStore[R, P] {
	return &NumberedStore[R, P]{
		rows:     make(map[int64]R),
		byMobile: make(map[string]int64),
		byNumber: make(map[string]int64),
		clock:    clock,
		notFound: notFound,
	}
}

// NewLoanStore creates an in-memory store.LoanStore.
func NewLoanStore(clock Clock) *NumberedStore[domain.Loan, *domain.Loan] {
	return NewNumberedStore[domain.Loan](clock, store.ErrLoanNotFound)
}

// NewCardStore creates an in-memory store.CardStore.
func NewCardStore(clock Clock) *NumberedStore[domain.Card, *domain.Card] {
	return NewNumberedStore[domain.Card](clock, store.ErrCardNotFound)
}

var (
	_ store.LoanStore = (*NumberedStore[domain.Loan, *domain.Loan])(nil)
	_ store.CardStore = (*NumberedStore[domain.Card, *domain.Card])(nil)
)

// GetByNumber implements store.NumberedStore.GetByNumber
func (s *NumberedStore[R, P]) GetByNumber(ctx context.Context, number string) (*R, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.lookup(s.byNumber, number)
}

// GetByMobileNumber implements store.NumberedStore.GetByMobileNumber
func (s *NumberedStore[R, P]) GetByMobileNumber(ctx context.Context, mobileNumber string) (*R, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.lookup(s.byMobile, mobileNumber)
}

func (s *NumberedStore[R, P]) lookup(index map[string]int64, key string) (*R, error) {
	id, ok := index[key]
	if !ok {
		return nil, s.notFound
	}
	record := s.rows[id]
	return &record, nil
}

// Create implements store.NumberedStore.Create
func (s *NumberedStore[R, P]) Create(ctx context.Context, record *R) error {
	rec := P(record)
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, taken := s.byMobile[rec.OwnerMobileNumber()]; taken {
		return store.ErrMobileNumberExists
	}
	if _, taken := s.byNumber[rec.RecordNumber()]; taken {
		return store.ErrRecordNumberExists
	}

	s.nextID++
	rec.SetRecordID(s.nextID)
	rec.AuditInfo().StampCreated(s.clock.now())

	s.rows[s.nextID] = *record
	s.byMobile[rec.OwnerMobileNumber()] = s.nextID
	s.byNumber[rec.RecordNumber()] = s.nextID
	return nil
}

// Update implements store.NumberedStore.Update
// The record number is fixed at creation and is never rewritten.
func (s *NumberedStore[R, P]) Update(ctx context.Context, record *R) error {
	rec := P(record)
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := rec.RecordID()
	existing, ok := s.rows[id]
	if !ok {
		return s.notFound
	}
	prev := P(&existing)
	if prev.RecordNumber() != rec.RecordNumber() {
		return fmt.Errorf("%w: record number cannot change", store.ErrInvalidEntity)
	}
	if owner, taken := s.byMobile[rec.OwnerMobileNumber()]; taken && owner != id {
		return store.ErrMobileNumberExists
	}

	audit := rec.AuditInfo()
	audit.CreatedAt = prev.AuditInfo().CreatedAt
	audit.CreatedBy = prev.AuditInfo().CreatedBy
	audit.StampUpdated(s.clock.now())

	delete(s.byMobile, prev.OwnerMobileNumber())
	s.rows[id] = *record
	s.byMobile[rec.OwnerMobileNumber()] = id
	return nil
}

// Delete implements store.NumberedStore.Delete
func (s *NumberedStore[R, P]) Delete(ctx context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	existing, ok := s.rows[id]
	if !ok {
		return s.notFound
	}
	prev := P(&existing)
	delete(s.byMobile, prev.OwnerMobileNumber())
	delete(s.byNumber, prev.RecordNumber())
	delete(s.rows, id)
	return nil
}
