// package cryptg holds the vocabulary shared by the IGE and pq factorization engines:
// fixed size key and IV types, the error taxonomy, and the package logger.
//
// The engines themselves live in crypto/blockmode/blockmode_ige and crypto/pqfactor.
// The binding package exposes both over plain byte slices.
package cryptg

import (
	"github.com/pkg/errors"
)

const (
	KeySize = 32
	IVSize  = 32
)

// Key is a 256 bit key for a block cipher mode.
type Key = [KeySize]byte

// IV is a 256 bit initialization value.
// For IGE the first half seeds the previous ciphertext block
// and the second half seeds the previous plaintext block.
type IV = [IVSize]byte

// KeyFromBytes copies x into a Key, or returns ErrMalformedInput if x is not exactly KeySize bytes.
func KeyFromBytes(x []byte) (Key, error) {
	var k Key
	if len(x) != KeySize {
		return k, errors.Wrapf(ErrMalformedInput, "invalid key length: expected %d, got %d", KeySize, len(x))
	}
	copy(k[:], x)
	return k, nil
}

// IVFromBytes copies x into an IV, or returns ErrMalformedInput if x is not exactly IVSize bytes.
func IVFromBytes(x []byte) (IV, error) {
	var iv IV
	if len(x) != IVSize {
		return iv, errors.Wrapf(ErrMalformedInput, "invalid IV length: expected %d, got %d", IVSize, len(x))
	}
	copy(iv[:], x)
	return iv, nil
}

// SplitIV returns the two halves of iv.
func SplitIV(iv *IV) (iv1, iv2 [IVSize / 2]byte) {
	copy(iv1[:], iv[:IVSize/2])
	copy(iv2[:], iv[IVSize/2:])
	return iv1, iv2
}
