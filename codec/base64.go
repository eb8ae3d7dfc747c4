package codec

import (
	"strings"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/types"
)

const (
	base64Alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

// EncodeBase64 renders a bit array in the standard base64 alphabet,
// padded with '=' to a multiple of 4 characters unless pad is false.
func EncodeBase64(a *bits.BitArray, pad bool) string {
	return encodeBase64(a, base64Alphabet, pad)
}

// EncodeBase64URL is EncodeBase64 with the URL-safe alphabet and no
// padding.
func EncodeBase64URL(a *bits.BitArray) string {
	return encodeBase64(a, base64URLAlphabet, false)
}

func encodeBase64(a *bits.BitArray, alphabet string, pad bool) string {
	n := a.Len()
	var sb strings.Builder
	for i := 0; i < n; i += 6 {
		take := n - i
		if take > 6 {
			take = 6
		}
		v := a.Extract(i, take) << (6 - uint(take))
		sb.WriteByte(alphabet[v])
	}
	if pad {
		for sb.Len()%4 != 0 {
			sb.WriteByte('=')
		}
	}
	return sb.String()
}

// DecodeBase64 parses a standard-alphabet base64 string. The result is
// truncated to a whole number of bytes.
func DecodeBase64(s string) (*bits.BitArray, error) {
	return decodeBase64(s, base64Alphabet)
}

// DecodeBase64URL parses a URL-safe-alphabet base64 string.
func DecodeBase64URL(s string) (*bits.BitArray, error) {
	return decodeBase64(s, base64URLAlphabet)
}

func decodeBase64(s, alphabet string) (*bits.BitArray, error) {
	s = strings.ReplaceAll(stripSpace(s), "=", "")
	w := newWordBuilder(6 * len(s))
	for i := 0; i < len(s); i++ {
		x := strings.IndexByte(alphabet, s[i])
		if x < 0 {
			return nil, types.Invalidf("invalid base64 character %q", s[i])
		}
		w.push(uint32(x), 6)
	}
	// The sub-byte remainder of the final 6-bit group is padding, not
	// data; drop it so a padded encoding decodes to its original byte
	// length.
	a := w.bitArray()
	return a.Clamp(a.Len() &^ 7), nil
}
