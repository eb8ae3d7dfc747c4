package codec

import (
	"strings"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/types"
)

// RFC 4648 alphabets.
const (
	base32Alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"
	base32HexAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUV"
)

// EncodeBase32 renders a bit array in the standard RFC 4648 base32
// alphabet. The output is padded with '=' to a multiple of 8 characters
// unless pad is false.
func EncodeBase32(a *bits.BitArray, pad bool) string {
	return encodeBase32(a, base32Alphabet, pad)
}

// EncodeBase32Hex is EncodeBase32 with the "base32hex" alphabet.
func EncodeBase32Hex(a *bits.BitArray, pad bool) string {
	return encodeBase32(a, base32HexAlphabet, pad)
}

func encodeBase32(a *bits.BitArray, alphabet string, pad bool) string {
	n := a.Len()
	var sb strings.Builder
	for i := 0; i < n; i += 5 {
		take := n - i
		if take > 5 {
			take = 5
		}
		// MSB-first 5-bit group; a short final group is zero-filled on
		// the right.
		v := a.Extract(i, take) << (5 - uint(take))
		sb.WriteByte(alphabet[v])
	}
	if pad {
		for sb.Len()%8 != 0 {
			sb.WriteByte('=')
		}
	}
	return sb.String()
}

// DecodeBase32 parses a standard-alphabet base32 string. Whitespace and
// '=' padding are stripped and the input is uppercased first; the
// result is truncated to a whole number of bytes. On an invalid
// character the hex-variant alphabet is tried before giving up.
func DecodeBase32(s string) (*bits.BitArray, error) {
	a, err := decodeBase32(s, base32Alphabet)
	if err != nil {
		if a, hexErr := decodeBase32(s, base32HexAlphabet); hexErr == nil {
			return a, nil
		}
		return nil, types.Invalidf("not a base32 string: %q", s)
	}
	return a, nil
}

// DecodeBase32Hex parses a base32hex-alphabet string.
func DecodeBase32Hex(s string) (*bits.BitArray, error) {
	a, err := decodeBase32(s, base32HexAlphabet)
	if err != nil {
		return nil, types.Invalidf("not a base32hex string: %q", s)
	}
	return a, nil
}

func decodeBase32(s, alphabet string) (*bits.BitArray, error) {
	s = strings.ToUpper(strings.ReplaceAll(stripSpace(s), "=", ""))
	w := newWordBuilder(5 * len(s))
	for i := 0; i < len(s); i++ {
		x := strings.IndexByte(alphabet, s[i])
		if x < 0 {
			return nil, types.Invalidf("invalid base32 character %q", s[i])
		}
		w.push(uint32(x), 5)
	}
	// The sub-byte remainder of the final 5-bit group is padding, not
	// data: dropping it makes every validly padded encoding decode to
	// exactly its original byte length.
	a := w.bitArray()
	return a.Clamp(a.Len() &^ 7), nil
}

// wordBuilder accumulates sub-word bit groups into packed words without
// rebuilding the array on every step.
type wordBuilder struct {
	words   []uint32
	acc     uint64
	accBits uint
	nbits   int
}

func newWordBuilder(totalBits int) *wordBuilder {
	return &wordBuilder{words: make([]uint32, 0, (totalBits+31)/32)}
}

// push appends the low n bits of v, MSB-first.
func (w *wordBuilder) push(v uint32, n uint) {
	w.acc = w.acc<<n | uint64(v)
	w.accBits += n
	w.nbits += int(n)
	for w.accBits >= 32 {
		w.words = append(w.words, uint32(w.acc>>(w.accBits-32)))
		w.accBits -= 32
	}
}

func (w *wordBuilder) bitArray() *bits.BitArray {
	words := w.words
	if w.accBits > 0 {
		words = append(words, uint32(w.acc)<<(32-w.accBits))
	}
	return bits.New(words, w.nbits)
}
