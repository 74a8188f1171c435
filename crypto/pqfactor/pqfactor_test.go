package pqfactor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-cryptg"
)

func TestFactorize(t *testing.T) {
	tcs := []struct {
		P, Q uint64
	}{
		{2, 3},
		{3, 5},
		{5, 7},
		{7919, 104729},
		{65537, 999983},
		{999983, 15485863},
		{998244353, 1000000007},
		{1229739323, 1402015859},
		{2147483647, 4294967291},
		{4294967279, 4294967291},
	}
	for _, tc := range tcs {
		p, q, err := Factorize(tc.P * tc.Q)
		require.NoError(t, err)
		require.Equal(t, tc.P, p, "pq=%d", tc.P*tc.Q)
		require.Equal(t, tc.Q, q, "pq=%d", tc.P*tc.Q)
	}
}

func TestMTProtoExample(t *testing.T) {
	p, q, err := Factorize(0x17ED48941A08F981)
	require.NoError(t, err)
	require.Equal(t, uint64(0x494C553B), p)
	require.Equal(t, uint64(0x53911073), q)
}

func TestEven(t *testing.T) {
	p, q, err := Factorize(4)
	require.NoError(t, err)
	require.Equal(t, [2]uint64{2, 2}, [2]uint64{p, q})

	p, q, err = Factorize(2)
	require.NoError(t, err)
	require.Equal(t, [2]uint64{1, 2}, [2]uint64{p, q})

	p, q, err = Factorize(2 * 4294967291)
	require.NoError(t, err)
	require.Equal(t, [2]uint64{2, 4294967291}, [2]uint64{p, q})
}

func TestInvalidInput(t *testing.T) {
	for _, pq := range []uint64{0, 1} {
		_, _, err := Factorize(pq)
		require.ErrorIs(t, err, cryptg.ErrInvalidInput)
	}
}

func TestRhoOnly(t *testing.T) {
	f := New(WithTrialLimit(0))
	for _, pq := range []uint64{3 * 5, 7919 * 104729, 1229739323 * 1402015859} {
		p, q, err := f.Factorize(pq)
		require.NoError(t, err)
		require.Equal(t, pq, p*q)
		require.LessOrEqual(t, p, q)
		require.NotEqual(t, uint64(1), p)
	}
}

func TestBatchSize(t *testing.T) {
	for _, m := range []uint64{1, 7} {
		f := New(WithTrialLimit(0), WithBatchSize(m))
		p, q, err := f.Factorize(4294967279 * 4294967291)
		require.NoError(t, err)
		require.Equal(t, uint64(4294967279), p)
		require.Equal(t, uint64(4294967291), q)
	}
}

func TestExhausted(t *testing.T) {
	f := New(WithConstants(1, 2), WithMaxIterations(1<<8))
	_, _, err := f.Factorize(2147483647)
	require.ErrorIs(t, err, cryptg.ErrFactorizationFailed)
	require.True(t, cryptg.IsErrFactorizationFailed(err))
}

func TestDeterministic(t *testing.T) {
	const pq = 998244353 * 1000000007
	p1, q1, err := Factorize(pq)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		p2, q2, err := New().Factorize(pq)
		require.NoError(t, err)
		require.Equal(t, p1, p2)
		require.Equal(t, q1, q2)
	}
}

func TestArith(t *testing.T) {
	const n = 18446744073709551557 // largest prime < 2^64
	require.Equal(t, uint64(1), mulMod(n-1, n-1, n))
	require.Equal(t, uint64(n-2), addMod(n-1, n-1, n))
	require.Equal(t, uint64(0), addMod(n-1, 1, n))
	require.Equal(t, uint64(6), gcd(12, 18))
	require.Equal(t, uint64(7), gcd(0, 7))
	require.Equal(t, uint64(1), gcd(n, 1<<63))
	require.Equal(t, uint64(5), absDiff(3, 8))
}

func BenchmarkFactorize(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := Factorize(0x17ED48941A08F981); err != nil {
			b.Fatal(err)
		}
	}
}
