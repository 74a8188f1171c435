package blockmode_ige

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/pkg/errors"
	"golang.org/x/crypto/twofish"

	"github.com/brendoncarroll/go-cryptg"
	"github.com/brendoncarroll/go-cryptg/crypto/blockmode"
)

// BlockSize is the block size of every cipher used by the schemes in this package.
const BlockSize = 16

var _ blockmode.SchemeK256IV256 = AES256{}

// AES256 is IGE over AES with a 256 bit key.
// This is the construction used by MTProto.
type AES256 struct{}

func (s AES256) Encrypt(dst []byte, key *[32]byte, iv *[32]byte, src []byte) error {
	b, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	return encrypt(b, dst, iv, src)
}

func (s AES256) Decrypt(dst []byte, key *[32]byte, iv *[32]byte, src []byte) error {
	b, err := aes.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	return decrypt(b, dst, iv, src)
}

func (s AES256) BlockSize() int {
	return BlockSize
}

var _ blockmode.SchemeK256IV256 = Twofish256{}

// Twofish256 is IGE over Twofish with a 256 bit key.
type Twofish256 struct{}

func (s Twofish256) Encrypt(dst []byte, key *[32]byte, iv *[32]byte, src []byte) error {
	b, err := twofish.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	return encrypt(b, dst, iv, src)
}

func (s Twofish256) Decrypt(dst []byte, key *[32]byte, iv *[32]byte, src []byte) error {
	b, err := twofish.NewCipher(key[:])
	if err != nil {
		panic(err)
	}
	return decrypt(b, dst, iv, src)
}

func (s Twofish256) BlockSize() int {
	return BlockSize
}

func encrypt(b cipher.Block, dst []byte, iv *[32]byte, src []byte) error {
	if err := checkAligned(src); err != nil {
		return err
	}
	NewEncrypter(b, iv[:]).CryptBlocks(dst, src)
	return nil
}

func decrypt(b cipher.Block, dst []byte, iv *[32]byte, src []byte) error {
	if err := checkAligned(src); err != nil {
		return err
	}
	NewDecrypter(b, iv[:]).CryptBlocks(dst, src)
	return nil
}

func checkAligned(src []byte) error {
	if len(src)%BlockSize != 0 {
		return errors.Wrapf(cryptg.ErrMalformedInput, "blockmode_ige: length %d is not a multiple of %d", len(src), BlockSize)
	}
	return nil
}
