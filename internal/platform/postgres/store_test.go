package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/platform/postgres"
	"github.com/phrazzld/eazybank-api/internal/store"
	"github.com/phrazzld/eazybank-api/internal/testdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresLoanStore(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	s := postgres.NewPostgresLoanStore(db, nil)

	loan := domain.NewLoan("4354437687", "100646930341")
	require.NoError(t, s.Create(ctx, loan))
	assert.Positive(t, loan.LoanID)

	got, err := s.GetByMobileNumber(ctx, "4354437687")
	require.NoError(t, err)
	assert.Equal(t, loan.LoanID, got.LoanID)
	assert.Equal(t, domain.LoanTypeHome, got.LoanType)
	assert.True(t, got.TotalLoan.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, domain.ActorLoans, got.CreatedBy)
	assert.True(t, got.UpdatedAt.IsZero())
	assert.Empty(t, got.UpdatedBy)

	t.Run("duplicate mobile number", func(t *testing.T) {
		err := s.Create(ctx, domain.NewLoan("4354437687", "100646930342"))
		assert.ErrorIs(t, err, store.ErrMobileNumberExists)
	})

	t.Run("duplicate loan number", func(t *testing.T) {
		err := s.Create(ctx, domain.NewLoan("4354437699", "100646930341"))
		assert.ErrorIs(t, err, store.ErrRecordNumberExists)
	})

	t.Run("update", func(t *testing.T) {
		got.AmountPaid = decimal.RequireFromString("2500.25")
		got.MobileNumber = "4354437611"
		got.UpdatedBy = domain.ActorLoans
		require.NoError(t, s.Update(ctx, got))
		assert.Equal(t, domain.ActorLoans, got.CreatedBy)

		byNumber, err := s.GetByNumber(ctx, "100646930341")
		require.NoError(t, err)
		assert.Equal(t, "4354437611", byNumber.MobileNumber)
		assert.True(t, byNumber.AmountPaid.Equal(decimal.RequireFromString("2500.25")))
		assert.False(t, byNumber.UpdatedAt.IsZero())
		assert.Equal(t, domain.ActorLoans, byNumber.UpdatedBy)
	})

	t.Run("update missing loan", func(t *testing.T) {
		missing := domain.NewLoan("4354437622", "100646930399")
		missing.LoanID = 9999
		assert.ErrorIs(t, s.Update(ctx, missing), store.ErrLoanNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, loan.LoanID))
		_, err := s.GetByNumber(ctx, "100646930341")
		assert.ErrorIs(t, err, store.ErrLoanNotFound)
		assert.ErrorIs(t, s.Delete(ctx, loan.LoanID), store.ErrLoanNotFound)
	})
}

func TestPostgresCardStore(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	s := postgres.NewPostgresCardStore(db, nil)

	card := domain.NewCard("4354437687", "100000000123")
	require.NoError(t, s.Create(ctx, card))

	got, err := s.GetByNumber(ctx, "100000000123")
	require.NoError(t, err)
	assert.Equal(t, card.CardID, got.CardID)
	assert.True(t, got.AvailableAmount.Equal(decimal.NewFromInt(100000)))

	assert.ErrorIs(t, s.Create(ctx, domain.NewCard("4354437687", "100000000456")), store.ErrMobileNumberExists)

	other := domain.NewCard("4354437699", "100000000456")
	require.NoError(t, s.Create(ctx, other))
	other.MobileNumber = "4354437687"
	assert.ErrorIs(t, s.Update(ctx, other), store.ErrMobileNumberExists)

	require.NoError(t, s.Delete(ctx, card.CardID))
	_, err = s.GetByMobileNumber(ctx, "4354437687")
	assert.ErrorIs(t, err, store.ErrCardNotFound)
}

func TestPostgresCustomerAndAccountStores(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()
	customers := postgres.NewPostgresCustomerStore(db, nil)
	accounts := postgres.NewPostgresAccountStore(db, nil)

	customer := &domain.Customer{
		Name:         "Madan Reddy",
		Email:        "tutor@eazybytes.com",
		MobileNumber: "4354437687",
		Audit:        domain.Audit{CreatedBy: domain.ActorAccounts},
	}
	require.NoError(t, customers.Create(ctx, customer))
	assert.Positive(t, customer.CustomerID)

	duplicate := *customer
	assert.ErrorIs(t, customers.Create(ctx, &duplicate), store.ErrMobileNumberExists)

	account := domain.NewAccount(customer.CustomerID, 1234567890)
	require.NoError(t, accounts.Create(ctx, account))
	assert.ErrorIs(t, accounts.Create(ctx, domain.NewAccount(customer.CustomerID+1, 1234567890)),
		store.ErrRecordNumberExists)
	assert.ErrorIs(t, accounts.Create(ctx, domain.NewAccount(customer.CustomerID, 1234567891)),
		store.ErrCustomerHasAccount)

	byCustomer, err := accounts.GetByCustomerID(ctx, customer.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), byCustomer.AccountNumber)
	assert.Equal(t, domain.AccountTypeSavings, byCustomer.AccountType)

	byCustomer.BranchAddress = "1 Harbour Road, Boston"
	byCustomer.UpdatedBy = domain.ActorAccounts
	require.NoError(t, accounts.Update(ctx, byCustomer))

	customer.Name = "Madan Reddy Jr"
	customer.UpdatedBy = domain.ActorAccounts
	require.NoError(t, customers.Update(ctx, customer))

	reloaded, err := customers.GetByID(ctx, customer.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "Madan Reddy Jr", reloaded.Name)
	assert.Equal(t, domain.ActorAccounts, reloaded.UpdatedBy)

	require.NoError(t, accounts.DeleteByCustomerID(ctx, customer.CustomerID))
	require.NoError(t, accounts.DeleteByCustomerID(ctx, customer.CustomerID), "zero rows is not an error")
	_, err = accounts.GetByAccountNumber(ctx, 1234567890)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)

	require.NoError(t, customers.Delete(ctx, customer.CustomerID))
	_, err = customers.GetByMobileNumber(ctx, "4354437687")
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)
	assert.ErrorIs(t, customers.Delete(ctx, customer.CustomerID), store.ErrCustomerNotFound)
}

func TestPostgresStores_InTransaction(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		cards := postgres.NewPostgresCardStore(tx, nil)
		require.NoError(t, cards.Create(ctx, domain.NewCard("4354437687", "100000000789")))

		got, err := cards.GetByMobileNumber(ctx, "4354437687")
		require.NoError(t, err)
		assert.Equal(t, "100000000789", got.CardNumber)
	})

	_, err := postgres.NewPostgresCardStore(db, nil).GetByMobileNumber(ctx, "4354437687")
	assert.ErrorIs(t, err, store.ErrCardNotFound, "the transaction was rolled back")
}

func TestRunMigration_UnknownCommand(t *testing.T) {
	err := postgres.RunMigration(context.Background(), nil, "sideways", nil)
	assert.ErrorContains(t, err, "unknown migration command")
}
