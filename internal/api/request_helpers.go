package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eazybank-api/internal/api/shared"
	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
)

// mobileNumberParam is the query parameter every fetch, create and delete
// call is keyed by.
const mobileNumberParam = "mobileNumber"

// getMobileNumber extracts and validates the mobileNumber query parameter.
//
// Returns:
//   - (mobileNumber, nil): the ten-digit number
//   - ("", error): a *domain.ValidationError if the parameter is missing or malformed
func getMobileNumber(r *http.Request) (string, error) {
	mobileNumber := r.URL.Query().Get(mobileNumberParam)
	if mobileNumber == "" {
		return "", domain.NewValidationError(mobileNumberParam, "is required", domain.ErrValidation)
	}
	if err := shared.ValidateVar(mobileNumber, "mobile"); err != nil {
		return "", domain.NewValidationError(mobileNumberParam, "must be 10 digits", domain.ErrValidation)
	}
	return mobileNumber, nil
}

// handleMobileNumber wraps getMobileNumber and writes the error response
// itself. The bool is false when the handler should stop.
func handleMobileNumber(w http.ResponseWriter, r *http.Request, log *slog.Logger) (string, bool) {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	mobileNumber, err := getMobileNumber(r)
	if err != nil {
		log.Debug("invalid mobile number parameter", slog.String("error", err.Error()))
		HandleAPIError(w, r, err, "")
		return "", false
	}
	return mobileNumber, true
}

// decodeAndValidate decodes the JSON body into v and validates it, writing a
// 400 response on failure. The bool is false when the handler should stop.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, log *slog.Logger) bool {
	if log == nil {
		log = logger.FromContextOrDefault(r.Context(), slog.Default())
	}

	if err := shared.DecodeJSON(r, v); err != nil {
		log.Debug("failed to decode request body", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// respondWithOutcome reports the boolean result of an update or delete:
// 200 when the record was changed, 417 with failureMsg otherwise.
func respondWithOutcome(w http.ResponseWriter, r *http.Request, ok bool, failureMsg string) {
	if ok {
		shared.RespondWithStatus(w, r, http.StatusOK, MessageOK)
		return
	}
	shared.RespondWithStatus(w, r, http.StatusExpectationFailed, failureMsg)
}
