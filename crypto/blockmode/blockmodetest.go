package blockmode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brendoncarroll/go-cryptg"
)

func TestSchemeK256IV256(t *testing.T, s SchemeK256IV256) {
	key, iv := testKey(), testIV()
	bs := s.BlockSize()

	t.Run("RoundTrip", func(t *testing.T) {
		for _, n := range []int{0, 1, 2, 3, 10, 64} {
			in := testInput(n * bs)
			ct := make([]byte, len(in))
			require.NoError(t, s.Encrypt(ct, &key, &iv, in))
			pt := make([]byte, len(ct))
			require.NoError(t, s.Decrypt(pt, &key, &iv, ct))
			require.Equal(t, in, pt)
			if n > 0 {
				require.NotEqual(t, in, ct)
			}
		}
	})
	t.Run("Deterministic", func(t *testing.T) {
		in := testInput(4 * bs)
		ct1 := make([]byte, len(in))
		ct2 := make([]byte, len(in))
		require.NoError(t, s.Encrypt(ct1, &key, &iv, in))
		require.NoError(t, s.Encrypt(ct2, &key, &iv, in))
		require.Equal(t, ct1, ct2)
	})
	t.Run("LengthPreserved", func(t *testing.T) {
		in := testInput(5 * bs)
		out := make([]byte, len(in)+bs)
		require.NoError(t, s.Encrypt(out, &key, &iv, in))
		// nothing past len(src) is touched
		require.Equal(t, make([]byte, bs), out[len(in):])
	})
	t.Run("InPlace", func(t *testing.T) {
		in := testInput(3 * bs)
		expected := make([]byte, len(in))
		require.NoError(t, s.Encrypt(expected, &key, &iv, in))

		buf := append([]byte{}, in...)
		require.NoError(t, s.Encrypt(buf, &key, &iv, buf))
		require.Equal(t, expected, buf)
		require.NoError(t, s.Decrypt(buf, &key, &iv, buf))
		require.Equal(t, in, buf)
	})
	t.Run("IVSensitive", func(t *testing.T) {
		in := testInput(2 * bs)
		iv1 := iv
		iv1[0] ^= 1
		iv2 := iv
		iv2[len(iv2)-1] ^= 1
		ct0 := make([]byte, len(in))
		ct1 := make([]byte, len(in))
		ct2 := make([]byte, len(in))
		require.NoError(t, s.Encrypt(ct0, &key, &iv, in))
		require.NoError(t, s.Encrypt(ct1, &key, &iv1, in))
		require.NoError(t, s.Encrypt(ct2, &key, &iv2, in))
		require.NotEqual(t, ct0, ct1)
		require.NotEqual(t, ct0, ct2)
	})
	t.Run("PartialBlock", func(t *testing.T) {
		for _, n := range []int{1, bs - 1, bs + 1, 3*bs - 1} {
			in := testInput(n)
			out := make([]byte, n)
			err := s.Encrypt(out, &key, &iv, in)
			require.ErrorIs(t, err, cryptg.ErrMalformedInput)
			err = s.Decrypt(out, &key, &iv, in)
			require.ErrorIs(t, err, cryptg.ErrMalformedInput)
		}
	})
}

func testKey() (k [32]byte) {
	for i := range k {
		k[i] = byte(i)
	}
	return k
}

func testIV() (iv [32]byte) {
	for i := range iv {
		iv[i] = byte(0xff - i)
	}
	return iv
}

func testInput(n int) []byte {
	x := make([]byte, n)
	for i := range x {
		x[i] = byte(i * 7)
	}
	return x
}
