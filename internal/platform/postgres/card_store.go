package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/store"
)

const cardColumns = `card_id, mobile_number, card_number, card_type, total_limit, amount_used, available_amount,
	created_at, created_by, updated_at, updated_by`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the CardStore interface.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

var _ store.CardStore = (*PostgresCardStore)(nil)

func scanCard(row rowScanner) (*domain.Card, error) {
	var c domain.Card
	var audit nullableAudit
	dest := append([]any{
		&c.CardID,
		&c.MobileNumber,
		&c.CardNumber,
		&c.CardType,
		&c.TotalLimit,
		&c.AmountUsed,
		&c.AvailableAmount,
	}, audit.dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	audit.into(&c.Audit)
	return &c, nil
}

func (s *PostgresCardStore) getOne(ctx context.Context, column, value string) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE ` + column + ` = $1`
	card, err := scanCard(s.db.QueryRowContext(ctx, query, value))
	if err != nil {
		if err = wrapError("card", "get", err); store.IsNotFoundError(err) {
			return nil, store.ErrCardNotFound
		}
		log.ErrorContext(ctx, "failed to get card",
			slog.String("by", column),
			slog.String("error", err.Error()))
		return nil, err
	}
	return card, nil
}

// GetByNumber implements store.CardStore.GetByNumber
func (s *PostgresCardStore) GetByNumber(ctx context.Context, cardNumber string) (*domain.Card, error) {
	return s.getOne(ctx, "card_number", cardNumber)
}

// GetByMobileNumber implements store.CardStore.GetByMobileNumber
func (s *PostgresCardStore) GetByMobileNumber(ctx context.Context, mobileNumber string) (*domain.Card, error) {
	return s.getOne(ctx, "mobile_number", mobileNumber)
}

// Create implements store.CardStore.Create
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	card.StampCreated(time.Now())

	query := `
		INSERT INTO cards (mobile_number, card_number, card_type, total_limit, amount_used,
			available_amount, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING card_id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		card.MobileNumber,
		card.CardNumber,
		card.CardType,
		card.TotalLimit,
		card.AmountUsed,
		card.AvailableAmount,
		card.CreatedAt,
		card.CreatedBy,
	).Scan(&card.CardID)
	if err != nil {
		err = wrapError("card", "create", err)
		if !errors.Is(err, store.ErrDuplicate) {
			log.ErrorContext(ctx, "failed to create card", slog.String("error", err.Error()))
		}
		return err
	}
	return nil
}

// Update implements store.CardStore.Update
// The card number is never rewritten.
func (s *PostgresCardStore) Update(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	card.StampUpdated(time.Now())

	query := `
		UPDATE cards
		SET mobile_number = $1, card_type = $2, total_limit = $3, amount_used = $4,
			available_amount = $5, updated_at = $6, updated_by = $7
		WHERE card_id = $8 AND card_number = $9
		RETURNING created_at, created_by
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		card.MobileNumber,
		card.CardType,
		card.TotalLimit,
		card.AmountUsed,
		card.AvailableAmount,
		card.UpdatedAt,
		nullString(card.UpdatedBy),
		card.CardID,
		card.CardNumber,
	).Scan(&card.CreatedAt, &card.CreatedBy)
	if err != nil {
		err = wrapError("card", "update", err)
		if store.IsNotFoundError(err) {
			return store.ErrCardNotFound
		}
		if !errors.Is(err, store.ErrDuplicate) {
			log.ErrorContext(ctx, "failed to update card",
				slog.Int64("card_id", card.CardID),
				slog.String("error", err.Error()))
		}
		return err
	}
	card.CreatedAt = card.CreatedAt.UTC()
	return nil
}

// Delete implements store.CardStore.Delete
func (s *PostgresCardStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cards WHERE card_id = $1`, id)
	if err != nil {
		log.ErrorContext(ctx, "failed to delete card",
			slog.Int64("card_id", id),
			slog.String("error", err.Error()))
		return wrapError("card", "delete", err)
	}
	return CheckRowsAffected(result, store.ErrCardNotFound)
}
