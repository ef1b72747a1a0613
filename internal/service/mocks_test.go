package service

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockLoanStore mocks the store.LoanStore interface
type MockLoanStore struct {
	mock.Mock
}

func (m *MockLoanStore) GetByNumber(ctx context.Context, number string) (*domain.Loan, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Loan, error) {
	args := m.Called(ctx, mobileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanStore) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanStore) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerStore mocks the store.CustomerStore interface
type MockCustomerStore struct {
	mock.Mock
}

func (m *MockCustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerStore) GetByMobileNumber(
	ctx context.Context,
	mobileNumber string,
) (*domain.Customer, error) {
	args := m.Called(ctx, mobileNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerStore) Create(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerStore) Update(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAccountStore mocks the store.AccountStore interface
type MockAccountStore struct {
	mock.Mock
}

func (m *MockAccountStore) GetByAccountNumber(
	ctx context.Context,
	accountNumber int64,
) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) GetByCustomerID(ctx context.Context, customerID int64) (*domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountStore) DeleteByCustomerID(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

var (
	_ store.LoanStore     = (*MockLoanStore)(nil)
	_ store.CustomerStore = (*MockCustomerStore)(nil)
	_ store.AccountStore  = (*MockAccountStore)(nil)
)

// scriptedNumbers hands out the configured numbers in order and repeats the
// last one once the script runs out.
type scriptedNumbers struct {
	mu       sync.Mutex
	accounts []int64
	records  []string
	drawn    int
}

func (n *scriptedNumbers) AccountNumber() int64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.drawn++
	v := n.accounts[0]
	if len(n.accounts) > 1 {
		n.accounts = n.accounts[1:]
	}
	return v
}

func (n *scriptedNumbers) RecordNumber() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.drawn++
	v := n.records[0]
	if len(n.records) > 1 {
		n.records = n.records[1:]
	}
	return v
}

func (n *scriptedNumbers) draws() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.drawn
}

var _ NumberGenerator = (*scriptedNumbers)(nil)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
