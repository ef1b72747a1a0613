package domain

import (
	"regexp"
	"strings"
)

// Resource names used in error reporting.
const (
	ResourceCustomer = "Customer"
	ResourceAccount  = "Account"
	ResourceLoan     = "Loan"
	ResourceCard     = "Card"
)

// mobileNumberPattern matches the ten digit mobile numbers used as the business key.
var mobileNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// Customer owns exactly one account. It is created together with the account
// and removed together with it.
type Customer struct {
	CustomerID   int64  `json:"customer_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Audit
}

// Validate checks the fields a store needs before persisting the customer.
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.MobileNumber) == "" {
		return NewValidationError("mobileNumber", "cannot be empty", ErrValidation)
	}
	if !IsMobileNumber(c.MobileNumber) {
		return NewValidationError("mobileNumber", "must be 10 digits", ErrValidation)
	}
	return nil
}

// IsMobileNumber reports whether s is a ten digit mobile number.
func IsMobileNumber(s string) bool {
	return mobileNumberPattern.MatchString(s)
}
