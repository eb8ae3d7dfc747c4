package sha1_test

import (
	stdsha1 "crypto/sha1"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/crypto/sha1"
	bwrand "github.com/bitweave/bitweave/libs/rand"
)

func TestKnownVectors(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	}
	for _, tc := range testCases {
		got := codec.EncodeHex(sha1.HashString(tc.in))
		require.Equal(t, tc.want, got, "sha1(%q)", tc.in)
	}
}

func TestMatchesStandardLibrary(t *testing.T) {
	for i := 0; i < 30; i++ {
		bz := bwrand.Bytes(bwrand.Intn(300))
		want := stdsha1.Sum(bz)
		got := codec.ToBytes(sha1.Hash(codec.FromBytes(bz)))
		require.Equal(t, want[:], got)
	}
}

func TestChunkingInvariance(t *testing.T) {
	data := codec.FromBytes(bwrand.Bytes(200))
	whole := sha1.Hash(data)

	for i := 0; i < 20; i++ {
		e := sha1.New()
		// Split at arbitrary bit offsets, not just byte boundaries.
		off := 0
		for off < data.Len() {
			end := off + 1 + bwrand.Intn(data.Len()-off)
			require.NoError(t, e.Update(data.Slice(off, end)))
			off = end
		}
		require.True(t, whole.Equal(e.Finalize()))
	}
}

func TestStreamingMillionA(t *testing.T) {
	e := sha1.New()
	chunk := strings.Repeat("a", 1000)
	for i := 0; i < 1000; i++ {
		require.NoError(t, e.UpdateString(chunk))
	}
	got := codec.EncodeHex(e.Finalize())
	assert.Equal(t, "34aa973cd4c4daa4f61eeb2bdbad27316534016f", got)
}

func TestReusableAfterFinalize(t *testing.T) {
	e := sha1.New()
	require.NoError(t, e.UpdateString("abc"))
	first := e.Finalize()
	require.True(t, first.Equal(sha1.HashString("abc")))

	// Finalize resets: the engine immediately hashes fresh input.
	second := e.Finalize()
	require.True(t, second.Equal(sha1.HashString("")))
}

func TestBitLevelInput(t *testing.T) {
	// A 4-bit message and its byte-padded form hash differently.
	nibble := bits.NewPartial(4, 0xa)
	padded := bits.NewPartial(8, 0xa0)
	require.Equal(t, sha1.Size, sha1.Hash(nibble).Len())
	require.False(t, sha1.Hash(nibble).Equal(sha1.Hash(padded)))

	// Deterministic across engines.
	e := sha1.New()
	require.NoError(t, e.Update(nibble))
	require.True(t, e.Finalize().Equal(sha1.Hash(nibble)))
}

func TestOneShotMatchesEngine(t *testing.T) {
	data := codec.FromString("one-shot equivalence")
	e := sha1.New()
	require.NoError(t, e.Update(data))
	require.True(t, sha1.Hash(data).Equal(e.Finalize()))
}
