package domain

import "regexp"

// Loan and card numbers are twelve digit strings drawn from
// [MinRecordNumber, MinRecordNumber+RecordNumberSpan).
const (
	MinRecordNumber  int64 = 100_000_000_000
	RecordNumberSpan int64 = 900_000_000
)

var recordNumberPattern = regexp.MustCompile(`^[0-9]{12}$`)

// NumberedRecord is a record owned directly by a mobile number that carries
// its own business number next to a store-assigned internal id.
// Loan and Card implement it through their pointer types.
type NumberedRecord interface {
	RecordID() int64
	SetRecordID(id int64)
	RecordNumber() string
	OwnerMobileNumber() string
	AuditInfo() *Audit
	Validate() error
}

// IsRecordNumber reports whether s is a twelve digit loan or card number.
func IsRecordNumber(s string) bool {
	return recordNumberPattern.MatchString(s)
}

func validateNumbered(numberField, number, mobile string) error {
	if !IsRecordNumber(number) {
		return NewValidationError(numberField, "must be 12 digits", ErrInvalidID)
	}
	if !IsMobileNumber(mobile) {
		return NewValidationError("mobileNumber", "must be 10 digits", ErrValidation)
	}
	return nil
}
