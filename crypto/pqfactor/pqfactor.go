// package pqfactor splits a 64 bit semiprime pq into its factors (p, q), p <= q.
//
// It uses Brent's variant of Pollard's rho, with trial division for small factors.
// The polynomial constants are a fixed schedule rather than random, so results
// and the search path are reproducible.
package pqfactor

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/brendoncarroll/go-cryptg"
)

const (
	DefaultMaxIterations = 1 << 24
	DefaultBatchSize     = 128
	DefaultTrialLimit    = 1 << 10
	defaultNumConstants  = 16
)

var defaultFactorizer = New()

// Factorize factors pq using the default Factorizer.
func Factorize(pq uint64) (p, q uint64, err error) {
	return defaultFactorizer.Factorize(pq)
}

// Factorizer finds a nontrivial divisor of a composite.
// It is immutable once created and safe for concurrent use.
type Factorizer struct {
	constants     []uint64
	maxIterations uint64
	batchSize     uint64
	trialLimit    uint64
	log           *logrus.Logger
}

func New(opts ...Option) *Factorizer {
	f := &Factorizer{
		maxIterations: DefaultMaxIterations,
		batchSize:     DefaultBatchSize,
		trialLimit:    DefaultTrialLimit,
		log:           cryptg.Logger,
	}
	for i := 0; i < defaultNumConstants; i++ {
		f.constants = append(f.constants, uint64(i+1))
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Factorize returns (p, q) with p <= q and p * q == pq.
// The factors are not checked for primality.
func (f *Factorizer) Factorize(pq uint64) (p, q uint64, err error) {
	if pq < 2 {
		return 0, 0, errors.Wrapf(cryptg.ErrInvalidInput, "pqfactor: pq=%d must be >= 2", pq)
	}
	if pq%2 == 0 {
		p, q = order(2, pq/2)
		return p, q, nil
	}
	if d := trialDivide(pq, f.trialLimit); d != 0 {
		p, q = order(d, pq/d)
		return p, q, nil
	}
	for _, c := range f.constants {
		if d := f.rho(pq, c); d != 0 {
			p, q = order(d, pq/d)
			return p, q, nil
		}
		f.log.Debugf("pqfactor: no divisor of %d found with c=%d", pq, c)
	}
	return 0, 0, errors.Wrapf(cryptg.ErrFactorizationFailed, "pqfactor: pq=%d after %d constants", pq, len(f.constants))
}

// rho runs Brent's cycle finding on x -> x^2 + c mod n.
// It returns a divisor 1 < d < n or 0 if none was found.
func (f *Factorizer) rho(n, c uint64) uint64 {
	c %= n
	m := f.batchSize
	y := uint64(2) % n
	step := func(x uint64) uint64 {
		return addMod(mulMod(x, x, n), c, n)
	}

	var x, ys uint64
	g, prod := uint64(1), uint64(1)
	for r := uint64(1); g == 1; r *= 2 {
		if r > f.maxIterations {
			return 0
		}
		x = y
		for i := uint64(0); i < r; i++ {
			y = step(y)
		}
		for k := uint64(0); k < r && g == 1; k += m {
			ys = y
			for i := uint64(0); i < m && i < r-k; i++ {
				y = step(y)
				prod = mulMod(prod, absDiff(x, y), n)
			}
			g = gcd(prod, n)
		}
	}
	if g == n {
		// the batch overshot, walk the last batch one step at a time.
		g = 1
		for i := uint64(0); i < m && g == 1; i++ {
			ys = step(ys)
			g = gcd(absDiff(x, ys), n)
		}
	}
	if g <= 1 || g >= n {
		return 0
	}
	return g
}

// trialDivide returns the smallest odd divisor d <= limit of n, or 0.
func trialDivide(n, limit uint64) uint64 {
	for d := uint64(3); d <= limit && d <= n/d; d += 2 {
		if n%d == 0 {
			return d
		}
	}
	return 0
}

func order(a, b uint64) (uint64, uint64) {
	if a > b {
		return b, a
	}
	return a, b
}

// mulMod returns a * b mod n. a and b must be < n.
func mulMod(a, b, n uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, n)
	return rem
}

// addMod returns a + b mod n. a and b must be < n.
func addMod(a, b, n uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= n {
		s -= n
	}
	return s
}

func absDiff(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}

// gcd is the binary GCD.
func gcd(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	shift := bits.TrailingZeros64(a | b)
	a >>= bits.TrailingZeros64(a)
	for b != 0 {
		b >>= bits.TrailingZeros64(b)
		if a > b {
			a, b = b, a
		}
		b -= a
	}
	return a << shift
}
