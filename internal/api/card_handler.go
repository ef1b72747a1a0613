package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/eazybank-api/internal/api/shared"
	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/service"
)

// CardHandler handles card HTTP requests.
type CardHandler struct {
	service service.CardService
	logger  *slog.Logger
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService service.CardService, logger *slog.Logger) *CardHandler {
	if cardService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("cardService cannot be nil for CardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CardHandler")
	}

	return &CardHandler{
		service: cardService,
		logger:  logger.With(slog.String("component", "card_handler")),
	}
}

// CreateCard handles POST /api/cards/create?mobileNumber=.
func (h *CardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	if err := h.service.CreateCard(r.Context(), mobileNumber); err != nil {
		HandleAPIError(w, r, err, "Failed to create card")
		return
	}

	shared.RespondWithStatus(w, r, http.StatusCreated, MessageCardCreate)
}

// FetchCard handles GET /api/cards/fetch?mobileNumber=.
func (h *CardHandler) FetchCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	card, err := h.service.FetchCard(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to fetch card")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, card)
}

// UpdateCard handles PUT /api/cards/update.
func (h *CardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req dto.CardsDto
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	updated, err := h.service.UpdateCard(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update card")
		return
	}

	respondWithOutcome(w, r, updated, MessageUpdateFailed)
}

// DeleteCard handles DELETE /api/cards/delete?mobileNumber=.
func (h *CardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	mobileNumber, ok := handleMobileNumber(w, r, log)
	if !ok {
		return
	}

	deleted, err := h.service.DeleteCard(r.Context(), mobileNumber)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete card")
		return
	}

	respondWithOutcome(w, r, deleted, MessageDeleteFailed)
}
