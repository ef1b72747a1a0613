package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/platform/logger"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// numberedKind describes one domain served by numberedService: how to build a
// default record and how to move data between the record and its DTO.
type numberedKind[R any, D any] struct {
	resource    string // e.g. domain.ResourceLoan
	numberField string // lookup field reported on update, e.g. "loanNumber"
	actor       string // audit actor stamped on create and update

	newRecord func(mobileNumber, number string) *R
	toDTO     func(*R) D
	apply     func(D, *R)
	numberOf  func(D) string
	mobileOf  func(D) string
}

// numberedService implements create, fetch, update and delete for records
// owned directly by a mobile number. LoanService and CardService are both
// instances of it.
type numberedService[R any, P interface {
	*R
	domain.NumberedRecord
}, D any] struct {
	store   store.NumberedStore[R]
	source  store.NumberedStore[R] // store with any cache layers removed
	numbers NumberGenerator
	kind    numberedKind[R, D]
	logger  *slog.Logger
}

func newNumberedService[R any, P interface {
	*R
	domain.NumberedRecord
}, D any](
	s store.NumberedStore[R],
	numbers NumberGenerator,
	kind numberedKind[R, D],
	log *slog.Logger,
	component string,
) (*numberedService[R, P, D], error) {
	if s == nil {
		return nil, domain.NewValidationError("store", "cannot be nil", domain.ErrValidation)
	}
	if numbers == nil {
		return nil, domain.NewValidationError("numbers", "cannot be nil", domain.ErrValidation)
	}
	if log == nil {
		log = slog.Default()
	}
	return &numberedService[R, P, D]{
		store:   s,
		source:  store.Authoritative(s),
		numbers: numbers,
		kind:    kind,
		logger:  log.With(slog.String("component", component)),
	}, nil
}

// Create registers a default record for mobileNumber under a freshly drawn number.
func (s *numberedService[R, P, D]) Create(ctx context.Context, mobileNumber string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !domain.IsMobileNumber(mobileNumber) {
		return domain.NewValidationError("mobileNumber", "must be 10 digits", domain.ErrValidation)
	}

	_, err := s.source.GetByMobileNumber(ctx, mobileNumber)
	switch {
	case err == nil:
		return domain.NewAlreadyExistsError(s.kind.resource, mobileNumber)
	case !store.IsNotFoundError(err):
		log.ErrorContext(ctx, "failed to check for existing record",
			slog.String("error", err.Error()))
		return err
	}

	var created *R
	err = withFreshNumber(ctx, log, func() error {
		created = s.kind.newRecord(mobileNumber, s.numbers.RecordNumber())
		return s.store.Create(ctx, created)
	})
	if err != nil {
		// A concurrent create for the same mobile number lost the race here.
		return uniqueViolation(err, s.kind.resource, mobileNumber)
	}

	log.InfoContext(ctx, "record created",
		slog.String("resource", s.kind.resource),
		slog.Int64("id", P(created).RecordID()))
	return nil
}

// Fetch returns the record owned by mobileNumber.
func (s *numberedService[R, P, D]) Fetch(ctx context.Context, mobileNumber string) (*D, error) {
	record, err := s.store.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, notFoundOr(err, s.kind.resource, "mobileNumber", mobileNumber)
	}
	d := s.kind.toDTO(record)
	return &d, nil
}

// Update overwrites the record identified by the DTO's own number with every
// mutable field of the DTO, including the owning mobile number.
func (s *numberedService[R, P, D]) Update(ctx context.Context, d D) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	number := s.kind.numberOf(d)

	record, err := s.store.GetByNumber(ctx, number)
	if err != nil {
		return false, notFoundOr(err, s.kind.resource, s.kind.numberField, number)
	}

	s.kind.apply(d, record)
	rec := P(record)
	rec.AuditInfo().UpdatedBy = s.kind.actor
	if err := rec.Validate(); err != nil {
		return false, err
	}

	if err := s.store.Update(ctx, record); err != nil {
		// A not found here means the record was deleted after the lookup.
		err = notFoundOr(err, s.kind.resource, s.kind.numberField, number)
		return false, uniqueViolation(err, s.kind.resource, s.kind.mobileOf(d))
	}

	log.InfoContext(ctx, "record updated",
		slog.String("resource", s.kind.resource),
		slog.Int64("id", rec.RecordID()))
	return true, nil
}

// Delete removes the record owned by mobileNumber.
func (s *numberedService[R, P, D]) Delete(ctx context.Context, mobileNumber string) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	record, err := s.source.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return false, notFoundOr(err, s.kind.resource, "mobileNumber", mobileNumber)
	}

	id := P(record).RecordID()
	if err := s.store.Delete(ctx, id); err != nil {
		return false, notFoundOr(err, s.kind.resource, "mobileNumber", mobileNumber)
	}

	log.InfoContext(ctx, "record deleted",
		slog.String("resource", s.kind.resource),
		slog.Int64("id", id))
	return true, nil
}
