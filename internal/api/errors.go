package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/eazybank-api/internal/api/shared"
	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// unexpectedErrorMessage is sent for every error the client cannot act on.
const unexpectedErrorMessage = "An unexpected error occurred"

// MapErrorToStatusCode maps internal errors to HTTP status codes. Anything
// not recognised is a 500 so that internal error types never leak.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.As(err, &validationErrs),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return http.StatusBadRequest

	// A second record for the same mobile number is a client mistake,
	// reported the same way as a validation failure.
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest

	// Not found errors
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a message that can be shown to the client.
// Domain errors already carry user-facing text; store and infrastructure
// errors are replaced by a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}

	var notFound *domain.ResourceNotFoundError
	var exists *domain.AlreadyExistsError
	var invalid *domain.ValidationError
	var validationErrs validator.ValidationErrors
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.As(err, &notFound):
		return notFound.Error()
	case errors.As(err, &exists):
		return exists.Error()
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)
	case errors.As(err, &invalid):
		if invalid.Field == "" {
			return "Invalid request: " + invalid.Message
		}
		return fmt.Sprintf("Invalid %s: %s", invalid.Field, invalid.Message)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return "Invalid request format"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"
	case errors.Is(err, domain.ErrNotFound):
		return "Resource not found"
	default:
		return unexpectedErrorMessage
	}
}

// SanitizeValidationError turns validator output into a short message naming
// the first offending field by its JSON name.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe.Field()), getValidationTagMessage(fe.Tag()))
	}

	// Errors that crossed a string boundary still carry the validator format:
	// "Key: 'LoansDto.LoanNumber' Error:Field validation for 'LoanNumber' failed on the 'recordnumber' tag"
	errMsg := err.Error()
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := jsonFieldName(fieldParts[1])
				if len(fieldParts) >= 5 && fieldParts[3] != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fieldParts[3]))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// jsonFieldName lowercases the first rune, which matches the camelCase JSON
// tags used by every transfer object.
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "mobile":
		return "must be 10 digits"
	case "recordnumber":
		return "must be 12 digits"
	case "gt":
		return "must be greater than zero"
	case "gte":
		return "must not be negative"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. Server errors are
// reported with defaultMsg; everything else with the safe domain message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	statusCode := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if statusCode == http.StatusInternalServerError && defaultMsg != "" {
		message = defaultMsg
	}
	shared.RespondWithErrorAndLog(w, r, statusCode, message, err)
}
