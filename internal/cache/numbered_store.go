package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/phrazzld/eazybank-api/internal/domain"
	"github.com/phrazzld/eazybank-api/internal/store"
)

// NumberedStore decorates a store.NumberedStore with a read-through cache on
// GetByMobileNumber. Two keys are kept per cached record:
//
//	<prefix>:mobile:<mobileNumber>  JSON encoded record
//	<prefix>:id:<recordID>          owning mobile number
//
// The id key lets Update and Delete find the mobile entry to invalidate.
// It is written after the mobile key with the same ttl so it never expires first.
type NumberedStore[R any, P interface {
	*R
	domain.NumberedRecord
}] struct {
	next   store.NumberedStore[R]
	cache  Cache
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewNumberedStore wraps next with a cache. prefix namespaces the keys
// (e.g. "loans"). A nil logger uses slog.Default.
func NewNumberedStore[R any, P interface {
	*R
	domain.NumberedRecord
}](
	next store.NumberedStore[R],
	c Cache,
	prefix string,
	ttl time.Duration,
	logger *slog.Logger,
) *NumberedStore[R, P] {
	if logger == nil {
		logger = slog.Default()
	}
	return &NumberedStore[R, P]{
		next:   next,
		cache:  c,
		prefix: prefix,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache"), slog.String("prefix", prefix)),
	}
}

// NewLoanStore wraps a store.LoanStore with a cache under the "loans" prefix.
func NewLoanStore(
	next store.LoanStore,
	c Cache,
	ttl time.Duration,
	logger *slog.Logger,
) *NumberedStore[domain.Loan, *domain.Loan] {
	return NewNumberedStore[domain.Loan](next, c, "loans", ttl, logger)
}

// NewCardStore wraps a store.CardStore with a cache under the "cards" prefix.
func NewCardStore(
	next store.CardStore,
	c Cache,
	ttl time.Duration,
	logger *slog.Logger,
) *NumberedStore[domain.Card, *domain.Card] {
	return NewNumberedStore[domain.Card](next, c, "cards", ttl, logger)
}

var (
	_ store.LoanStore            = (*NumberedStore[domain.Loan, *domain.Loan])(nil)
	_ store.CardStore            = (*NumberedStore[domain.Card, *domain.Card])(nil)
	_ store.Layered[domain.Loan] = (*NumberedStore[domain.Loan, *domain.Loan])(nil)
)

// Underlying implements store.Layered. Callers that must not act on a stale
// read, such as uniqueness checks, read through it.
func (s *NumberedStore[R, P]) Underlying() store.NumberedStore[R] {
	return s.next
}

func (s *NumberedStore[R, P]) mobileKey(mobileNumber string) string {
	return fmt.Sprintf("%s:mobile:%s", s.prefix, mobileNumber)
}

func (s *NumberedStore[R, P]) idKey(id int64) string {
	return s.prefix + ":id:" + strconv.FormatInt(id, 10)
}

// GetByNumber is not cached.
func (s *NumberedStore[R, P]) GetByNumber(ctx context.Context, number string) (*R, error) {
	return s.next.GetByNumber(ctx, number)
}

// GetByMobileNumber serves from the cache when possible and fills it on a miss.
// Not-found results are never cached. A fill that races a concurrent Update
// or Delete can cache the old record; it is served until the ttl expires or
// the next write for the record invalidates it.
func (s *NumberedStore[R, P]) GetByMobileNumber(ctx context.Context, mobileNumber string) (*R, error) {
	key := s.mobileKey(mobileNumber)

	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var record R
		decodeErr := json.Unmarshal(raw, &record)
		if decodeErr == nil {
			return &record, nil
		}
		s.logger.WarnContext(ctx, "discarding undecodable cache entry",
			slog.String("error", decodeErr.Error()))
	case !errors.Is(err, ErrMiss):
		s.logger.WarnContext(ctx, "cache read failed",
			slog.String("error", err.Error()))
	}

	record, err := s.next.GetByMobileNumber(ctx, mobileNumber)
	if err != nil {
		return nil, err
	}
	s.fill(ctx, record)
	return record, nil
}

func (s *NumberedStore[R, P]) fill(ctx context.Context, record *R) {
	rec := P(record)
	raw, err := json.Marshal(record)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode record for cache",
			slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, s.mobileKey(rec.OwnerMobileNumber()), raw, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, s.idKey(rec.RecordID()), []byte(rec.OwnerMobileNumber()), s.ttl); err != nil {
		s.logger.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
	}
}

// Create writes through and drops any entry still cached for the mobile
// number. New records enter the cache on first read.
func (s *NumberedStore[R, P]) Create(ctx context.Context, record *R) error {
	if err := s.next.Create(ctx, record); err != nil {
		return err
	}
	s.invalidate(ctx, s.mobileKey(P(record).OwnerMobileNumber()))
	return nil
}

// Update writes through to the store, then drops the cached entries for the
// record under both its previous and its new mobile number.
func (s *NumberedStore[R, P]) Update(ctx context.Context, record *R) error {
	rec := P(record)
	keys := s.cachedKeys(ctx, rec.RecordID())

	if err := s.next.Update(ctx, record); err != nil {
		return err
	}

	s.invalidate(ctx, append(keys, s.mobileKey(rec.OwnerMobileNumber()))...)
	return nil
}

// Delete removes the record from the store, then from the cache.
func (s *NumberedStore[R, P]) Delete(ctx context.Context, id int64) error {
	keys := s.cachedKeys(ctx, id)

	if err := s.next.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, keys...)
	return nil
}

// cachedKeys returns the keys currently caching the record with the given id.
func (s *NumberedStore[R, P]) cachedKeys(ctx context.Context, id int64) []string {
	idKey := s.idKey(id)
	keys := []string{idKey}

	mobile, err := s.cache.Get(ctx, idKey)
	switch {
	case err == nil:
		keys = append(keys, s.mobileKey(string(mobile)))
	case !errors.Is(err, ErrMiss):
		s.logger.WarnContext(ctx, "cache read failed",
			slog.String("key", idKey),
			slog.String("error", err.Error()))
	}
	return keys
}

func (s *NumberedStore[R, P]) invalidate(ctx context.Context, keys ...string) {
	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "cache invalidation failed",
			slog.Int("keys", len(keys)),
			slog.String("error", err.Error()))
	}
}
