package service

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/phrazzld/eazybank-api/internal/domain"
)

// NumberGenerator draws new business identifiers.
type NumberGenerator interface {
	// AccountNumber returns a ten digit account number.
	AccountNumber() int64

	// RecordNumber returns a twelve digit loan or card number.
	RecordNumber() string
}

// RandomNumbers implements NumberGenerator with uniformly random draws.
// Uniqueness is not guaranteed; stores reject collisions.
type RandomNumbers struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomNumbers returns a generator reading from src.
// A nil src uses the runtime's concurrent-safe global source.
func NewRandomNumbers(src rand.Source) *RandomNumbers {
	g := &RandomNumbers{}
	if src != nil {
		g.rng = rand.New(src)
	}
	return g
}

var _ NumberGenerator = (*RandomNumbers)(nil)

func (g *RandomNumbers) draw(span int64) int64 {
	if g.rng == nil {
		return rand.Int64N(span)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Int64N(span)
}

// AccountNumber implements NumberGenerator.AccountNumber
func (g *RandomNumbers) AccountNumber() int64 {
	return domain.MinAccountNumber + g.draw(domain.AccountNumberSpan)
}

// RecordNumber implements NumberGenerator.RecordNumber
func (g *RandomNumbers) RecordNumber() string {
	return fmt.Sprintf("%012d", domain.MinRecordNumber+g.draw(domain.RecordNumberSpan))
}
