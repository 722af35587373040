// Package ordernum produces human-readable order identifiers of the form
// ORD-YYMMDD-NNNNN. The five-digit suffix is random, so the generator alone
// does not guarantee uniqueness; callers rely on the store's unique index
// and retry on conflict.
package ordernum

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const (
	prefix    = "ORD"
	suffixMin = 10000
	suffixMax = 99999
)

// Generator builds order numbers from a creation date plus a random
// five-digit suffix drawn uniformly from [10000, 99999].
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator seeded from the current time.
func New() *Generator {
	return &Generator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewWithSeed creates a deterministic Generator for tests.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a fresh order number for the given creation time.
func (g *Generator) Next(t time.Time) string {
	g.mu.Lock()
	suffix := suffixMin + g.rng.Intn(suffixMax-suffixMin+1)
	g.mu.Unlock()
	return fmt.Sprintf("%s-%s-%05d", prefix, t.Format("060102"), suffix)
}
