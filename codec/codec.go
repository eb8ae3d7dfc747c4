// Package codec converts between bit arrays and external textual or
// binary representations: hex, base32 (standard and hex alphabets),
// base64 (standard and URL-safe alphabets), raw bytes and UTF-8 text.
//
// All conversions are pure: they depend only on the public operations
// of bits.BitArray and perform no I/O.
package codec

import (
	"strings"
	"unicode"
)

// stripSpace removes all Unicode whitespace from s. Every decoder
// tolerates embedded whitespace.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
