package pbkdf2_test

import (
	stdsha1 "crypto/sha1"
	"testing"

	"github.com/stretchr/testify/require"
	xpbkdf2 "golang.org/x/crypto/pbkdf2"

	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/crypto"
	"github.com/bitweave/bitweave/crypto/pbkdf2"
	"github.com/bitweave/bitweave/crypto/sha1"
	bwrand "github.com/bitweave/bitweave/libs/rand"
	"github.com/bitweave/bitweave/types"
)

func newSha1() crypto.Hash { return sha1.New() }

// RFC 6070 test vectors (PBKDF2-HMAC-SHA1).
func TestKnownVectors(t *testing.T) {
	testCases := []struct {
		iter int
		want string
	}{
		{1, "0c60c80f961f0e71f3a9b524af6012062fe037a6"},
		{2, "ea6c014dc72d6f8ccd1ed92ace1d41f0d8de8957"},
		{4096, "4b007901b765489abead49d926f721d065a429c1"},
	}
	password := codec.FromString("password")
	salt := codec.FromString("salt")
	for _, tc := range testCases {
		key, err := pbkdf2.Key(password, salt, tc.iter, 160, newSha1)
		require.NoError(t, err)
		require.Equal(t, tc.want, codec.EncodeHex(key), "iter=%d", tc.iter)
	}
}

func TestShortDerivedKey(t *testing.T) {
	// RFC 6070 case 6: a 128-bit key is a clamped prefix.
	key, err := pbkdf2.Key(codec.FromString("pass\x00word"), codec.FromString("sa\x00lt"), 4096, 128, newSha1)
	require.NoError(t, err)
	require.Equal(t, "56fa6aa75548099dcc37d7f03425e0c3", codec.EncodeHex(key))
}

func TestMatchesXCrypto(t *testing.T) {
	for i := 0; i < 10; i++ {
		password := bwrand.Bytes(1 + bwrand.Intn(30))
		salt := bwrand.Bytes(1 + bwrand.Intn(30))
		iter := 1 + bwrand.Intn(50)
		keyLen := 1 + bwrand.Intn(64) // bytes

		want := xpbkdf2.Key(password, salt, iter, keyLen, stdsha1.New)
		key, err := pbkdf2.Key(codec.FromBytes(password), codec.FromBytes(salt), iter, 8*keyLen, newSha1)
		require.NoError(t, err)
		require.Equal(t, want, codec.ToBytes(key))
	}
}

func TestParameterValidation(t *testing.T) {
	password := codec.FromString("p")
	salt := codec.FromString("s")

	_, err := pbkdf2.Key(password, salt, 0, 160, newSha1)
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.Invalid))

	_, err = pbkdf2.Key(password, salt, 1, 0, newSha1)
	require.Error(t, err)
	require.True(t, types.IsKind(err, types.Invalid))
}
