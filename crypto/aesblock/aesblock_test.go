package aesblock_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/crypto/aesblock"
	bwrand "github.com/bitweave/bitweave/libs/rand"
	"github.com/bitweave/bitweave/types"
)

func mustHex(t *testing.T, s string) *bits.BitArray {
	t.Helper()
	a, err := codec.DecodeHex(s)
	require.NoError(t, err)
	return a
}

// FIPS-197 appendix C.1.
func TestKnownVector(t *testing.T) {
	key := mustHex(t, "000102030405060708090a0b0c0d0e0f")
	c, err := aesblock.NewCipher(key)
	require.NoError(t, err)

	plain := mustHex(t, "00112233445566778899aabbccddeeff")
	ct, err := c.EncryptBits(plain)
	require.NoError(t, err)
	require.Equal(t, "69c4e0d86a7b0430d8cdb78070b4c55a", codec.EncodeHex(ct))

	back, err := c.DecryptBits(ct)
	require.NoError(t, err)
	require.True(t, plain.Equal(back))
}

func TestWordBlockRoundTrip(t *testing.T) {
	for _, keyBits := range []int{128, 192, 256} {
		key := codec.FromBytes(bwrand.Bytes(keyBits / 8))
		c, err := aesblock.NewCipher(key)
		require.NoError(t, err)

		in := [4]uint32{bwrand.Uint32(), bwrand.Uint32(), bwrand.Uint32(), bwrand.Uint32()}
		require.Equal(t, in, c.Decrypt(c.Encrypt(in)))
	}
}

func TestKeySizeValidation(t *testing.T) {
	for _, nbits := range []int{0, 8, 127, 129, 512} {
		_, err := aesblock.NewCipher(bits.NewFromFn(nbits, func(int) bool { return false }))
		require.Error(t, err, "%d-bit key", nbits)
		require.True(t, types.IsKind(err, types.Invalid))
	}
}

func TestBlockSizeValidation(t *testing.T) {
	c, err := aesblock.NewCipher(codec.FromBytes(bwrand.Bytes(16)))
	require.NoError(t, err)

	_, err = c.EncryptBits(codec.FromBytes(bwrand.Bytes(15)))
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.Invalid))
}

// Callers compose modes themselves; verify the Xor4 chaining boundary
// the way a CBC collaborator would use it.
func TestXorChaining(t *testing.T) {
	c, err := aesblock.NewCipher(codec.FromBytes(bwrand.Bytes(16)))
	require.NoError(t, err)

	iv := [4]uint32{bwrand.Uint32(), bwrand.Uint32(), bwrand.Uint32(), bwrand.Uint32()}
	p1 := [4]uint32{1, 2, 3, 4}
	p2 := [4]uint32{5, 6, 7, 8}

	c1 := c.Encrypt(bits.Xor4(p1, iv))
	c2 := c.Encrypt(bits.Xor4(p2, c1))

	require.Equal(t, p2, bits.Xor4(c.Decrypt(c2), c1))
	require.Equal(t, p1, bits.Xor4(c.Decrypt(c1), iv))
}
