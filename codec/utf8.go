package codec

import (
	"github.com/bitweave/bitweave/bits"
)

// FromBytes packs a byte slice into a bit array, four bytes per word,
// big-endian, with a partial final word when the byte count is not a
// multiple of 4.
func FromBytes(bz []byte) *bits.BitArray {
	words := make([]uint32, 0, (len(bz)+3)/4)
	var w uint32
	for i, b := range bz {
		w = w<<8 | uint32(b)
		if i%4 == 3 {
			words = append(words, w)
			w = 0
		}
	}
	if r := len(bz) % 4; r != 0 {
		words = append(words, w<<(8*(4-uint(r))))
	}
	return bits.New(words, 8*len(bz))
}

// ToBytes unpacks a bit array into bytes, dropping a trailing partial
// byte per the array's significant-bit count.
func ToBytes(a *bits.BitArray) []byte {
	n := a.Len() / 8
	bz := make([]byte, n)
	for i := 0; i < n; i++ {
		bz[i] = byte(a.Extract(8*i, 8))
	}
	return bz
}

// FromString decomposes text into its UTF-8 byte sequence and packs it
// into a bit array.
func FromString(s string) *bits.BitArray {
	return FromBytes([]byte(s))
}

// ToString reconstructs text from the packed UTF-8 byte stream.
func ToString(a *bits.BitArray) string {
	return string(ToBytes(a))
}
