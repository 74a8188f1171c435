// package blockmode provides an interface for block cipher modes of operation which
// transform whole buffers of blocks without padding or authentication.
package blockmode

// SchemeK256IV256 is a block cipher mode with a 32 byte key and a 32 byte IV.
type SchemeK256IV256 interface {
	// Encrypt writes the ciphertext for src to dst.
	// len(src) must be a multiple of BlockSize or an error is returned.
	// If len(dst) < len(src), Encrypt panics. dst and src may overlap exactly.
	Encrypt(dst []byte, key *[32]byte, iv *[32]byte, src []byte) error
	// Decrypt writes the plaintext for src to dst, with the same constraints as Encrypt.
	Decrypt(dst []byte, key *[32]byte, iv *[32]byte, src []byte) error
	// BlockSize is the size of the underlying block cipher's block.
	BlockSize() int
}
