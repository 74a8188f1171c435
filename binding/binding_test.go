package binding

import (
	"context"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-cryptg"
	"github.com/brendoncarroll/go-cryptg/crypto/blockmode/blockmode_ige"
	"github.com/brendoncarroll/go-cryptg/crypto/pqfactor"
)

func TestEncryptDecryptIGE(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
		iv[i] = byte(i * 5)
	}
	plain := []byte("0123456789abcdef0123456789ABCDEF")

	ct, err := EncryptIGE(plain, key, iv)
	require.NoError(t, err)
	require.Len(t, ct, len(plain))
	require.NotEqual(t, plain, ct)

	pt, err := DecryptIGE(ct, key, iv)
	require.NoError(t, err)
	require.Equal(t, plain, pt)

	// inputs are not modified
	require.Equal(t, []byte("0123456789abcdef0123456789ABCDEF"), plain)
}

func TestPinnedVector(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	iv, err := hex.DecodeString("00112233445566778899aabbccddeeff00000000000000000000000000000000")
	require.NoError(t, err)
	ct, err := EncryptIGE(make([]byte, 16), key, iv)
	require.NoError(t, err)
	require.Equal(t, "8ea2b7ca516745bfeafc49904b496089", hex.EncodeToString(ct))
}

func TestBadLengths(t *testing.T) {
	good := make([]byte, 32)

	_, err := EncryptIGE(make([]byte, 15), good, good)
	require.ErrorIs(t, err, cryptg.ErrMalformedInput)

	_, err = DecryptIGE(make([]byte, 17), good, good)
	require.ErrorIs(t, err, cryptg.ErrMalformedInput)

	_, err = EncryptIGE(make([]byte, 16), make([]byte, 16), good)
	require.ErrorIs(t, err, cryptg.ErrMalformedInput)
	require.Contains(t, err.Error(), "invalid key length: expected 32, got 16")

	out, err := DecryptIGE(make([]byte, 16), good, make([]byte, 31))
	require.ErrorIs(t, err, cryptg.ErrMalformedInput)
	require.Contains(t, err.Error(), "IV length")
	require.Nil(t, out)
}

func TestTwofish(t *testing.T) {
	key := make([]byte, 32)
	iv := make([]byte, 32)
	plain := make([]byte, 64)
	ct, err := Encrypt(blockmode_ige.Twofish256{}, plain, key, iv)
	require.NoError(t, err)
	aesCT, err := EncryptIGE(plain, key, iv)
	require.NoError(t, err)
	require.NotEqual(t, aesCT, ct)

	pt, err := Decrypt(blockmode_ige.Twofish256{}, ct, key, iv)
	require.NoError(t, err)
	require.Equal(t, plain, pt)
}

func TestFactorizePQPair(t *testing.T) {
	p, q, err := FactorizePQPair(6)
	require.NoError(t, err)
	require.Equal(t, uint64(2), p)
	require.Equal(t, uint64(3), q)

	_, _, err = FactorizePQPair(1)
	require.True(t, cryptg.IsErrInvalidInput(err))
}

func TestFactorizeContext(t *testing.T) {
	ctx := context.Background()
	p, q, err := FactorizeContext(ctx, pqfactor.New(), 0x17ED48941A08F981)
	require.NoError(t, err)
	require.Equal(t, uint64(0x494C553B), p)
	require.Equal(t, uint64(0x53911073), q)

	ctx, cf := context.WithCancel(ctx)
	cf()
	// a prime keeps the factorizer busy until it gives up
	slow := pqfactor.New(pqfactor.WithConstants(1), pqfactor.WithMaxIterations(1<<20))
	_, _, err = FactorizeContext(ctx, slow, 18446744073709551557)
	require.ErrorIs(t, err, context.Canceled)

	ctx, cf = context.WithTimeout(context.Background(), time.Minute)
	defer cf()
	_, _, err = FactorizeContext(ctx, pqfactor.New(pqfactor.WithConstants(1), pqfactor.WithMaxIterations(16)), 2147483647)
	require.ErrorIs(t, err, cryptg.ErrFactorizationFailed)
}
