package reducer

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	// MaxSampleSize caps how many comments move downstream per request,
	// keeping LLM cost and latency bounded for very large comment lists.
	MaxSampleSize = 500

	DefaultMinLength = 20
)

// Reducer draws a bounded uniform sample from a raw comment list and drops
// comments too short to carry any real signal.
type Reducer struct {
	rng *rand.Rand
}

type Option func(*Reducer)

// WithSeed pins the sampling step to a deterministic random source.
func WithSeed(seed uint64) Option {
	return func(r *Reducer) {
		r.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

func New(opts ...Option) *Reducer {
	r := &Reducer{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reduce samples at most MaxSampleSize comments uniformly without replacement,
// then keeps only those whose trimmed length is at least minLength runes.
// The returned comments are in sample order, not input order.
func (r *Reducer) Reduce(comments []string, minLength int) []string {
	kept := []string{}
	if len(comments) == 0 {
		return kept
	}

	sampleSize := len(comments)
	if sampleSize > MaxSampleSize {
		sampleSize = MaxSampleSize
	}

	for _, comment := range r.sample(comments, sampleSize) {
		if utf8.RuneCountInString(strings.TrimSpace(comment)) >= minLength {
			kept = append(kept, comment)
		}
	}

	return kept
}

// sample runs a partial Fisher-Yates shuffle over a copy of comments and
// returns the first n elements: a uniform sample without replacement.
func (r *Reducer) sample(comments []string, n int) []string {
	pool := make([]string, len(comments))
	copy(pool, comments)

	for i := 0; i < n; i++ {
		j := i + r.intN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n]
}

func (r *Reducer) intN(n int) int {
	if r.rng != nil {
		return r.rng.IntN(n)
	}
	return rand.IntN(n)
}
