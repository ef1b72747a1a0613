package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eazybank-api/internal/api/shared"
	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/service"
)

// AccountHandler handles customer and account HTTP requests.
type AccountHandler struct {
	service service.AccountService
	logger  *slog.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountService, logger *slog.Logger) *AccountHandler {
	if accountService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("accountService cannot be nil for AccountHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for AccountHandler")
	}

	return &AccountHandler{
		service: accountService,
		logger:  logger.With(slog.String("component", "account_handler")),
	}
}

// CreateAccount handles POST /api/accounts/create.
// The body is a CustomerDto; the account itself is generated.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.CustomerDto
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	if err := h.service.CreateAccount(r.Context(), req); err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	shared.RespondWithStatus(w, r, http.StatusCreated, MessageAccountCreate)
}

// FetchAccount handles GET /api/accounts/fetch?mobileNumber=.
func (h *AccountHandler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	customer, err := h.service.FetchAccount(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch account")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, customer)
}

// UpdateAccount handles PUT /api/accounts/update.
// A body without accountsDto is reported as a failed update.
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.CustomerDto
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	updated, err := h.service.UpdateAccount(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update account")
		return
	}

	respondWithOutcome(w, r, updated, MessageUpdateFailed)
}

// DeleteAccount handles DELETE /api/accounts/delete?mobileNumber=.
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteAccount(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	respondWithOutcome(w, r, deleted, MessageDeleteFailed)
}
