package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eazybank-api/internal/api/shared"
	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/service"
)

// LoanHandler handles loan HTTP requests.
type LoanHandler struct {
	service service.LoanService
	logger  *slog.Logger
}

// NewLoanHandler creates a new LoanHandler.
func NewLoanHandler(loanService service.LoanService, logger *slog.Logger) *LoanHandler {
	if loanService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("loanService cannot be nil for LoanHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for LoanHandler")
	}

	return &LoanHandler{
		service: loanService,
		logger:  logger.With(slog.String("component", "loan_handler")),
	}
}

// CreateLoan handles POST /api/loans/create?mobileNumber=.
func (h *LoanHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	if err := h.service.CreateLoan(r.Context(), mobileNumber); err != nil {
		HandleAPIError(w, r, err, "Failed to create loan")
		return
	}

	shared.RespondWithStatus(w, r, http.StatusCreated, MessageLoanCreate)
}

// FetchLoan handles GET /api/loans/fetch?mobileNumber=.
func (h *LoanHandler) FetchLoan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	loan, err := h.service.FetchLoan(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch loan")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, loan)
}

// UpdateLoan handles PUT /api/loans/update.
func (h *LoanHandler) UpdateLoan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.LoansDto
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	updated, err := h.service.UpdateLoan(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update loan")
		return
	}

	respondWithOutcome(w, r, updated, MessageUpdateFailed)
}

// DeleteLoan handles DELETE /api/loans/delete?mobileNumber=.
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteLoan(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete loan")
		return
	}

	respondWithOutcome(w, r, deleted, MessageDeleteFailed)
}
