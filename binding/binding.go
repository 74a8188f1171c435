// package binding exposes the IGE and pq factorization engines over plain byte slices and integers,
// the shape expected by host runtimes and the command line tool.
//
// Key and IV lengths are validated here. Every output is freshly allocated and
// no partial output is returned on error.
package binding

import (
	"context"

	"github.com/brendoncarroll/go-cryptg"
	"github.com/brendoncarroll/go-cryptg/crypto/blockmode"
	"github.com/brendoncarroll/go-cryptg/crypto/blockmode/blockmode_ige"
	"github.com/brendoncarroll/go-cryptg/crypto/pqfactor"
)

var defaultScheme blockmode.SchemeK256IV256 = blockmode_ige.AES256{}

// EncryptIGE encrypts plain with AES-256 in IGE mode.
// key and iv must be 32 bytes, and len(plain) must be a multiple of 16.
func EncryptIGE(plain, key, iv []byte) ([]byte, error) {
	return Encrypt(defaultScheme, plain, key, iv)
}

// DecryptIGE decrypts ctext with AES-256 in IGE mode.
func DecryptIGE(ctext, key, iv []byte) ([]byte, error) {
	return Decrypt(defaultScheme, ctext, key, iv)
}

// Encrypt validates key and iv and encrypts src with s.
func Encrypt(s blockmode.SchemeK256IV256, src, key, iv []byte) ([]byte, error) {
	k, v, err := parseKeyIV(key, iv)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(src))
	if err := s.Encrypt(out, &k, &v, src); err != nil {
		return nil, err
	}
	return out, nil
}

// Decrypt validates key and iv and decrypts src with s.
func Decrypt(s blockmode.SchemeK256IV256, src, key, iv []byte) ([]byte, error) {
	k, v, err := parseKeyIV(key, iv)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(src))
	if err := s.Decrypt(out, &k, &v, src); err != nil {
		return nil, err
	}
	return out, nil
}

// FactorizePQPair splits pq into (p, q) with p <= q.
func FactorizePQPair(pq uint64) (p, q uint64, err error) {
	return pqfactor.Factorize(pq)
}

// FactorizeContext runs f on pq in a separate goroutine.
// If ctx is done first, the computation is abandoned and ctx.Err() is returned.
func FactorizeContext(ctx context.Context, f *pqfactor.Factorizer, pq uint64) (p, q uint64, err error) {
	type result struct {
		p, q uint64
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		var r result
		r.p, r.q, r.err = f.Factorize(pq)
		ch <- r
	}()
	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	case r := <-ch:
		return r.p, r.q, r.err
	}
}

func parseKeyIV(key, iv []byte) (cryptg.Key, cryptg.IV, error) {
	k, err := cryptg.KeyFromBytes(key)
	if err != nil {
		return cryptg.Key{}, cryptg.IV{}, err
	}
	v, err := cryptg.IVFromBytes(iv)
	if err != nil {
		return cryptg.Key{}, cryptg.IV{}, err
	}
	return k, v, nil
}
