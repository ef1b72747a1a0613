package domain

import "github.com/shopspring/decimal"

// Defaults applied to every new loan.
const LoanTypeHome = "Home Loan"

// DefaultLoanAmount is the total amount granted to a new loan.
const DefaultLoanAmount int64 = 100_000

// Loan is a customer loan keyed by the owner's mobile number.
type Loan struct {
	LoanID            int64           `json:"loan_id"`
	MobileNumber      string          `json:"mobile_number"`
	LoanNumber        string          `json:"loan_number"`
	LoanType          string          `json:"loan_type"`
	TotalLoan         decimal.Decimal `json:"total_loan"`
	AmountPaid        decimal.Decimal `json:"amount_paid"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	Audit
}

// NewLoan builds a home loan with the default limit and nothing paid yet.
func NewLoan(mobileNumber, loanNumber string) *Loan {
	return &Loan{
		MobileNumber:      mobileNumber,
		LoanNumber:        loanNumber,
		LoanType:          LoanTypeHome,
		TotalLoan:         decimal.NewFromInt(DefaultLoanAmount),
		AmountPaid:        decimal.Zero,
		OutstandingAmount: decimal.NewFromInt(DefaultLoanAmount),
		Audit:             Audit{CreatedBy: ActorLoans},
	}
}

func (l *Loan) RecordID() int64           { return l.LoanID }
func (l *Loan) SetRecordID(id int64)      { l.LoanID = id }
func (l *Loan) RecordNumber() string      { return l.LoanNumber }
func (l *Loan) OwnerMobileNumber() string { return l.MobileNumber }
func (l *Loan) AuditInfo() *Audit         { return &l.Audit }

// Validate checks the keys of the loan.
func (l *Loan) Validate() error {
	return validateNumbered("loanNumber", l.LoanNumber, l.MobileNumber)
}

var _ NumberedRecord = (*Loan)(nil)
