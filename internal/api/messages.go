package api

// Status messages carried in dto.ResponseDto bodies.
const (
	MessageOK            = "Request processed successfully"
	MessageUpdateFailed  = "Update operation failed. Please try again or contact Dev team"
	MessageDeleteFailed  = "Delete operation failed. Please try again or contact Dev team"
	MessageAccountCreate = "Account created successfully"
	MessageLoanCreate    = "Loan created successfully"
	MessageCardCreate    = "Card created successfully"
)
