package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/dto"
	"github.com/phrazzld/eazybank-api/internal/mapper"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// CardService provides card-related operations.
type CardService interface {
	// CreateCard issues a default credit card to mobileNumber.
	// Returns a domain.AlreadyExistsError if the mobile number already holds a card.
	CreateCard(ctx context.Context, mobileNumber string) error

	// FetchCard returns the card held by mobileNumber.
	// Returns a domain.ResourceNotFoundError if there is none.
	FetchCard(ctx context.Context, mobileNumber string) (*dto.CardsDto, error)

	// UpdateCard overwrites the card with the DTO's card number.
	// Returns a domain.ResourceNotFoundError if no card has that number.
	UpdateCard(ctx context.Context, card dto.CardsDto) (bool, error)

	// DeleteCard removes the card held by mobileNumber.
	// Returns a domain.ResourceNotFoundError if there is none.
	DeleteCard(ctx context.Context, mobileNumber string) (bool, error)
}

type cardServiceImpl struct {
	*numberedService[domain.Card, *domain.Card, dto.CardsDto]
}

var cardKind = numberedKind[domain.Card, dto.CardsDto]{
	resource:    domain.ResourceCard,
	numberField: "cardNumber",
	actor:       domain.ActorCards,
	newRecord:   domain.NewCard,
	toDTO:       mapper.ToCardsDto,
	apply:       mapper.OntoCard,
	numberOf:    func(d dto.CardsDto) string { return d.CardNumber },
	mobileOf:    func(d dto.CardsDto) string { return d.MobileNumber },
}

// NewCardService creates a new CardService.
// It returns an error if any of the required dependencies are nil.
func NewCardService(
	cards store.CardStore,
	numbers NumberGenerator,
	logger *slog.Logger,
) (CardService, error) {
	impl, err := newNumberedService[domain.Card, *domain.Card](
		cards, numbers, cardKind, logger, "card_service")
	if err != nil {
		return nil, err
	}
	return &cardServiceImpl{impl}, nil
}

// CreateCard implements CardService.CreateCard
func (s *cardServiceImpl) CreateCard(ctx context.Context, mobileNumber string) error {
	return s.Create(ctx, mobileNumber)
}

// FetchCard implements CardService.FetchCard
func (s *cardServiceImpl) FetchCard(ctx context.Context, mobileNumber string) (*dto.CardsDto, error) {
	return s.Fetch(ctx, mobileNumber)
}

// UpdateCard implements CardService.UpdateCard
func (s *cardServiceImpl) UpdateCard(ctx context.Context, card dto.CardsDto) (bool, error) {
	return s.Update(ctx, card)
}

// DeleteCard implements CardService.DeleteCard
func (s *cardServiceImpl) DeleteCard(ctx context.Context, mobileNumber string) (bool, error) {
	return s.Delete(ctx, mobileNumber)
}
