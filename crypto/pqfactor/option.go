package pqfactor

import "github.com/sirupsen/logrus"

type Option func(f *Factorizer)

// WithConstants sets the polynomial constants c in x^2 + c, tried in order.
func WithConstants(cs ...uint64) Option {
	if len(cs) == 0 {
		panic("pqfactor: at least one constant is required")
	}
	return func(f *Factorizer) {
		f.constants = append([]uint64{}, cs...)
	}
}

// WithMaxIterations sets the cycle length after which a constant is abandoned.
func WithMaxIterations(n uint64) Option {
	if n < 1 {
		panic(n)
	}
	return func(f *Factorizer) {
		f.maxIterations = n
	}
}

// WithBatchSize sets how many differences are multiplied together between GCDs.
func WithBatchSize(n uint64) Option {
	if n < 1 {
		panic(n)
	}
	return func(f *Factorizer) {
		f.batchSize = n
	}
}

// WithTrialLimit sets the largest divisor tried by trial division before rho.
// 0 disables trial division.
func WithTrialLimit(n uint64) Option {
	return func(f *Factorizer) {
		f.trialLimit = n
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(f *Factorizer) {
		f.log = l
	}
}
