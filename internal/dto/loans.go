package dto

import "github.com/shopspring/decimal"

// LoansDto is the transfer view of a loan.
type LoansDto struct {
	MobileNumber      string          `json:"mobileNumber" validate:"required,mobile"`
	LoanNumber        string          `json:"loanNumber" validate:"required,recordnumber"`
	LoanType          string          `json:"loanType" validate:"required"`
	TotalLoan         decimal.Decimal `json:"totalLoan" validate:"gt=0"`
	AmountPaid        decimal.Decimal `json:"amountPaid" validate:"gte=0"`
	OutstandingAmount decimal.Decimal `json:"outstandingAmount" validate:"gte=0"`
}

// CardsDto is the transfer view of a card.
type CardsDto struct {
	MobileNumber    string          `json:"mobileNumber" validate:"required,mobile"`
	CardNumber      string          `json:"cardNumber" validate:"required,recordnumber"`
	CardType        string          `json:"cardType" validate:"required"`
	TotalLimit      decimal.Decimal `json:"totalLimit" validate:"gt=0"`
	AmountUsed      decimal.Decimal `json:"amountUsed" validate:"gte=0"`
	AvailableAmount decimal.Decimal `json:"availableAmount" validate:"gte=0"`
}
