package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// maxNumberAttempts bounds how many generated numbers a create tries before
// giving up with store.ErrRecordNumberExists.
const maxNumberAttempts = 5

// notFoundOr converts a store "not found" into a domain.ResourceNotFoundError
// naming the lookup field and value. Other store errors are returned unchanged.
func notFoundOr(err error, resource, field, value string) error {
	if store.IsNotFoundError(err) {
		return domain.NewResourceNotFoundError(resource, field, value)
	}
	return err
}

// withFreshNumber calls attempt until it succeeds, fails with something other
// than a number collision, or runs out of attempts.
func withFreshNumber(ctx context.Context, log *slog.Logger, attempt func() error) error {
	var err error
	for i := 1; i <= maxNumberAttempts; i++ {
		err = attempt()
		if !errors.Is(err, store.ErrRecordNumberExists) {
			return err
		}
		log.WarnContext(ctx, "generated number already in use, drawing another",
			slog.Int("attempt", i))
	}
	return err
}

// uniqueViolation converts a store mobile number conflict into a
// domain.AlreadyExistsError. Other errors are returned unchanged.
func uniqueViolation(err error, resource, mobileNumber string) error {
	if errors.Is(err, store.ErrMobileNumberExists) {
		return domain.NewAlreadyExistsError(resource, mobileNumber)
	}
	return err
}
