// Package dto holds the wire-shaped transfer objects exchanged at the service
// boundary. They are never persisted; internal/mapper converts them to and
// from domain records.
package dto

import "time"

// CustomerDto is the transfer view of a customer, optionally carrying the
// customer's account.
type CustomerDto struct {
	Name         string       `json:"name" validate:"required,min=5,max=30"`
	Email        string       `json:"email" validate:"required,email"`
	MobileNumber string       `json:"mobileNumber" validate:"required,mobile"`
	Accounts     *AccountsDto `json:"accountsDto,omitempty"`
}

// AccountsDto is the transfer view of an account.
type AccountsDto struct {
	AccountNumber int64  `json:"accountNumber" validate:"required,min=1000000000,max=9999999999"`
	AccountType   string `json:"accountType" validate:"required"`
	BranchAddress string `json:"branchAddress" validate:"required"`
}

// ResponseDto is the body returned by successful mutating calls.
type ResponseDto struct {
	StatusCode string `json:"statusCode"`
	StatusMsg  string `json:"statusMsg"`
}

// ErrorResponseDto is the body returned when a call fails.
type ErrorResponseDto struct {
	APIPath      string    `json:"apiPath"`
	ErrorCode    int       `json:"errorCode"`
	ErrorMessage string    `json:"errorMessage"`
	ErrorTime    time.Time `json:"errorTime"`
	TraceID      string    `json:"traceId,omitempty"`
}
