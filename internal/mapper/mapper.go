// Package mapper converts between persisted domain records and their transfer
// objects. Every function is a plain field copy with no side effects; the
// "onto" variants overwrite every mutable field of the target unconditionally.
package mapper

import (
	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/dto"
)

// ToCustomerDto copies a customer into a new transfer object. The nested
// account is left nil for the caller to attach.
func ToCustomerDto(c *domain.Customer) dto.CustomerDto {
	return dto.CustomerDto{
		Name:         c.Name,
		Email:        c.Email,
		MobileNumber: c.MobileNumber,
	}
}

// ToCustomer builds a new, unsaved customer from a transfer object.
func ToCustomer(d dto.CustomerDto) *domain.Customer {
	c := &domain.Customer{}
	OntoCustomer(d, c)
	return c
}

// OntoCustomer overwrites the customer's name, email and mobile number.
func OntoCustomer(d dto.CustomerDto, c *domain.Customer) {
	c.Name = d.Name
	c.Email = d.Email
	c.MobileNumber = d.MobileNumber
}

// ToAccountsDto copies an account into a new transfer object.
func ToAccountsDto(a *domain.Account) dto.AccountsDto {
	return dto.AccountsDto{
		AccountNumber: a.AccountNumber,
		AccountType:   a.AccountType,
		BranchAddress: a.BranchAddress,
	}
}

// OntoAccount overwrites the account's type and branch. The account number is
// the account's identity and is not copied.
func OntoAccount(d dto.AccountsDto, a *domain.Account) {
	a.AccountType = d.AccountType
	a.BranchAddress = d.BranchAddress
}

// ToLoansDto copies a loan into a new transfer object.
func ToLoansDto(l *domain.Loan) dto.LoansDto {
	return dto.LoansDto{
		MobileNumber:      l.MobileNumber,
		LoanNumber:        l.LoanNumber,
		LoanType:          l.LoanType,
		TotalLoan:         l.TotalLoan,
		AmountPaid:        l.AmountPaid,
		OutstandingAmount: l.OutstandingAmount,
	}
}

// OntoLoan overwrites every mutable loan field, including the owning mobile number.
func OntoLoan(d dto.LoansDto, l *domain.Loan) {
	l.MobileNumber = d.MobileNumber
	l.LoanType = d.LoanType
	l.TotalLoan = d.TotalLoan
	l.AmountPaid = d.AmountPaid
	l.OutstandingAmount = d.OutstandingAmount
}

// ToCardsDto copies a card into a new transfer object.
func ToCardsDto(c *domain.Card) dto.CardsDto {
	return dto.CardsDto{
		MobileNumber:    c.MobileNumber,
		CardNumber:      c.CardNumber,
		CardType:        c.CardType,
		TotalLimit:      c.TotalLimit,
		AmountUsed:      c.AmountUsed,
		AvailableAmount: c.AvailableAmount,
	}
}

// OntoCard overwrites every mutable card field, including the owning mobile number.
func OntoCard(d dto.CardsDto, c *domain.Card) {
	c.MobileNumber = d.MobileNumber
	c.CardType = d.CardType
	c.TotalLimit = d.TotalLimit
	c.AmountUsed = d.AmountUsed
	c.AvailableAmount = d.AvailableAmount
}
