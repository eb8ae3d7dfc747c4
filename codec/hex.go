package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/types"
)

// EncodeHex renders a bit array as lowercase hexadecimal. Each word
// contributes 8 digits; the output is truncated to exactly bitLen/4
// characters, so a trailing partial nibble is dropped.
func EncodeHex(a *bits.BitArray) string {
	var sb strings.Builder
	for _, w := range a.Words() {
		sb.WriteString(fmt.Sprintf("%08x", w))
	}
	return sb.String()[:a.Len()/4]
}

// DecodeHex parses a hexadecimal string into a bit array. Whitespace
// and "0x" prefixes are stripped; the result is clamped to four bits
// per remaining character.
func DecodeHex(s string) (*bits.BitArray, error) {
	s = strings.ReplaceAll(stripSpace(s), "0x", "")
	s = strings.ReplaceAll(s, "0X", "")
	n := len(s)
	padded := s + strings.Repeat("0", (8-n%8)%8)
	words := make([]uint32, 0, len(padded)/8)
	for i := 0; i < len(padded); i += 8 {
		w, err := strconv.ParseUint(padded[i:i+8], 16, 32)
		if err != nil {
			return nil, types.Invalidf("not a hex string: %q", s)
		}
		words = append(words, uint32(w))
	}
	return bits.FromWords(words).Clamp(4 * n), nil
}
