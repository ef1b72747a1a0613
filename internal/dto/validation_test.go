package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validLoan() LoansDto {
	return LoansDto{
		MobileNumber:      "9876543210",
		LoanNumber:        "100000000456",
		LoanType:          "Home Loan",
		TotalLoan:         decimal.NewFromInt(100000),
		AmountPaid:        decimal.Zero,
		OutstandingAmount: decimal.NewFromInt(100000),
	}
}

func TestValidateCustomerDto(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		dto     CustomerDto
		wantErr bool
	}{
		{
			name:    "valid without account",
			dto:     CustomerDto{Name: "Madan Reddy", Email: "madan@example.com", MobileNumber: "9876543210"},
			wantErr: false,
		},
		{
			name: "valid with account",
			dto: CustomerDto{
				Name: "Madan Reddy", Email: "madan@example.com", MobileNumber: "9876543210",
				Accounts: &AccountsDto{AccountNumber: 1234567890, AccountType: "Savings", BranchAddress: "Main St"},
			},
			wantErr: false,
		},
		{
			name:    "name too short",
			dto:     CustomerDto{Name: "Mad", Email: "madan@example.com", MobileNumber: "9876543210"},
			wantErr: true,
		},
		{
			name:    "bad email",
			dto:     CustomerDto{Name: "Madan Reddy", Email: "madan", MobileNumber: "9876543210"},
			wantErr: true,
		},
		{
			name:    "mobile with nine digits",
			dto:     CustomerDto{Name: "Madan Reddy", Email: "madan@example.com", MobileNumber: "987654321"},
			wantErr: true,
		},
		{
			name: "account number too short",
			dto: CustomerDto{
				Name: "Madan Reddy", Email: "madan@example.com", MobileNumber: "9876543210",
				Accounts: &AccountsDto{AccountNumber: 12345, AccountType: "Savings", BranchAddress: "Main St"},
			},
			wantErr: true,
		},
		{
			name: "account type missing",
			dto: CustomerDto{
				Name: "Madan Reddy", Email: "madan@example.com", MobileNumber: "9876543210",
				Accounts: &AccountsDto{AccountNumber: 1234567890, BranchAddress: "Main St"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.dto)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateLoansDto(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(validLoan()))

	zeroTotal := validLoan()
	zeroTotal.TotalLoan = decimal.Zero
	assert.Error(t, v.Struct(zeroTotal), "total loan must be positive")

	negativePaid := validLoan()
	negativePaid.AmountPaid = decimal.NewFromInt(-1)
	assert.Error(t, v.Struct(negativePaid), "amount paid cannot be negative")

	badNumber := validLoan()
	badNumber.LoanNumber = "12345"
	assert.Error(t, v.Struct(badNumber), "loan number must be 12 digits")
}

func TestValidateCardsDto(t *testing.T) {
	v := NewValidator()

	card := CardsDto{
		MobileNumber:    "9876543210",
		CardNumber:      "100000000789",
		CardType:        "Credit Card",
		TotalLimit:      decimal.NewFromInt(100000),
		AmountUsed:      decimal.NewFromInt(250),
		AvailableAmount: decimal.NewFromInt(99750),
	}
	assert.NoError(t, v.Struct(card))

	card.CardType = ""
	assert.Error(t, v.Struct(card))
}
