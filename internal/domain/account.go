package domain

// Defaults applied to every new account.
const (
	AccountTypeSavings   = "Savings"
	DefaultBranchAddress = "123 Main Street, New York"
)

// Account numbers are drawn from [MinAccountNumber, MinAccountNumber+AccountNumberSpan).
const (
	MinAccountNumber  int64 = 1_000_000_000
	AccountNumberSpan int64 = 900_000_000
)

// Account is a bank account linked to its customer by CustomerID.
// AccountNumber is generated once at creation and never changes.
type Account struct {
	AccountNumber int64  `json:"account_number"`
	CustomerID    int64  `json:"customer_id"`
	AccountType   string `json:"account_type"`
	BranchAddress string `json:"branch_address"`
	Audit
}

// NewAccount builds an account with the default type and branch.
func NewAccount(customerID, accountNumber int64) *Account {
	return &Account{
		AccountNumber: accountNumber,
		CustomerID:    customerID,
		AccountType:   AccountTypeSavings,
		BranchAddress: DefaultBranchAddress,
		Audit:         Audit{CreatedBy: ActorAccounts},
	}
}

// Validate checks the keys of the account.
func (a *Account) Validate() error {
	if a.AccountNumber <= 0 {
		return NewValidationError("accountNumber", "must be positive", ErrInvalidID)
	}
	if a.CustomerID <= 0 {
		return NewValidationError("customerId", "must be positive", ErrInvalidID)
	}
	return nil
}
