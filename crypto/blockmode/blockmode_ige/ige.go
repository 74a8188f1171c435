// package blockmode_ige implements the Infinite Garble Extension (IGE) block cipher mode.
//
// Each ciphertext block depends on the previous ciphertext block and the previous plaintext block:
//
//	C_i = E(P_i ^ C_{i-1}) ^ P_{i-1}
//
// The first half of the IV is C_0 and the second half is P_0.
// This matches OpenSSL's AES_ige_encrypt and MTProto.
package blockmode_ige

import (
	"crypto/cipher"
)

var (
	_ cipher.BlockMode = &encrypter{}
	_ cipher.BlockMode = &decrypter{}
)

type ige struct {
	b          cipher.Block
	blockSize  int
	prevCipher []byte
	prevPlain  []byte
	tmp        []byte
}

func newIGE(b cipher.Block, iv []byte) ige {
	bs := b.BlockSize()
	if len(iv) != 2*bs {
		panic("blockmode_ige: IV length must be twice the block size")
	}
	buf := make([]byte, 3*bs)
	x := ige{
		b:          b,
		blockSize:  bs,
		prevCipher: buf[0*bs : 1*bs],
		prevPlain:  buf[1*bs : 2*bs],
		tmp:        buf[2*bs : 3*bs],
	}
	copy(x.prevCipher, iv[:bs])
	copy(x.prevPlain, iv[bs:])
	return x
}

func (x *ige) BlockSize() int { return x.blockSize }

func (x *ige) check(dst, src []byte) {
	if len(src)%x.blockSize != 0 {
		panic("blockmode_ige: input not full blocks")
	}
	if len(dst) < len(src) {
		panic("blockmode_ige: output smaller than input")
	}
}

type encrypter struct {
	ige
}

// NewEncrypter returns a BlockMode which encrypts in IGE mode using b.
// The length of iv must be twice b's block size.
// Chaining state carries over between calls to CryptBlocks.
func NewEncrypter(b cipher.Block, iv []byte) cipher.BlockMode {
	return &encrypter{newIGE(b, iv)}
}

func (x *encrypter) CryptBlocks(dst, src []byte) {
	x.check(dst, src)
	bs := x.blockSize
	for len(src) > 0 {
		xorBytes(x.tmp, src[:bs], x.prevCipher)
		x.b.Encrypt(x.tmp, x.tmp)
		xorBytes(x.tmp, x.tmp, x.prevPlain)
		// src and dst may be the same block, save the plaintext first.
		copy(x.prevPlain, src[:bs])
		copy(dst[:bs], x.tmp)
		copy(x.prevCipher, x.tmp)

		src = src[bs:]
		dst = dst[bs:]
	}
}

type decrypter struct {
	ige
}

// NewDecrypter returns a BlockMode which decrypts in IGE mode using b.
// The length of iv must be twice b's block size.
func NewDecrypter(b cipher.Block, iv []byte) cipher.BlockMode {
	return &decrypter{newIGE(b, iv)}
}

func (x *decrypter) CryptBlocks(dst, src []byte) {
	x.check(dst, src)
	bs := x.blockSize
	for len(src) > 0 {
		xorBytes(x.tmp, src[:bs], x.prevPlain)
		x.b.Decrypt(x.tmp, x.tmp)
		xorBytes(x.tmp, x.tmp, x.prevCipher)
		copy(x.prevCipher, src[:bs])
		copy(dst[:bs], x.tmp)
		copy(x.prevPlain, x.tmp)

		src = src[bs:]
		dst = dst[bs:]
	}
}

func xorBytes(dst, a, b []byte) {
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}
