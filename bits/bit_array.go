// Package bits implements a packed bit-array type used as the common
// data currency between the hash engines, ciphers and codecs of this
// library.
//
// A BitArray is an ordered sequence of 32-bit words representing a bit
// string whose length need not be a multiple of 32. Bit 0 is the most
// significant bit of the first word. All words except the last carry
// exactly 32 significant bits; the last word may be partial, holding
// between 1 and 32 significant bits left-justified with zero low bits.
// The significant-bit count is carried explicitly by the array's total
// bit length rather than tagged into the word value.
//
// BitArray values are immutable: every transforming operation returns a
// fresh array, so values may be freely shared across concurrent readers
// without synchronization. A nil *BitArray is a valid empty array.
package bits

import (
	"fmt"
	mbits "math/bits"
	"strings"

	"github.com/bitweave/bitweave/types"
)

// BitArray is a packed sequence of bits. The zero value and nil are
// both the empty array.
type BitArray struct {
	words []uint32
	nbits int
}

// New constructs a BitArray of nbits bits from the given words. The
// words slice is copied; it must hold exactly ceil(nbits/32) entries.
// Unused low bits of the last word are cleared.
func New(words []uint32, nbits int) *BitArray {
	if nbits < 0 {
		panic(fmt.Sprintf("bits: negative bit length %d", nbits))
	}
	need := (nbits + 31) / 32
	if len(words) != need {
		panic(fmt.Sprintf("bits: %d words cannot hold %d bits", len(words), nbits))
	}
	b := &BitArray{words: append([]uint32(nil), words...), nbits: nbits}
	b.maskTail()
	return b
}

// FromWords constructs a BitArray of full 32-bit words.
func FromWords(words []uint32) *BitArray {
	return New(words, 32*len(words))
}

// NewPartial constructs an array of nbits bits (0 <= nbits <= 32) from
// the right-justified value x. The value is left-shifted into position;
// nbits == 32 stores x unmodified.
func NewPartial(nbits int, x uint32) *BitArray {
	if nbits < 0 || nbits > 32 {
		panic(fmt.Sprintf("bits: partial word length %d out of range", nbits))
	}
	if nbits == 0 {
		return &BitArray{}
	}
	return New([]uint32{x << ((32 - uint(nbits)) % 32)}, nbits)
}

// NewPartialLeft is NewPartial for a value that is already
// left-justified.
func NewPartialLeft(nbits int, x uint32) *BitArray {
	if nbits < 0 || nbits > 32 {
		panic(fmt.Sprintf("bits: partial word length %d out of range", nbits))
	}
	if nbits == 0 {
		return &BitArray{}
	}
	return New([]uint32{x}, nbits)
}

// NewFromFn constructs an array of nbits bits whose i-th bit is fn(i).
func NewFromFn(nbits int, fn func(int) bool) *BitArray {
	if nbits < 0 {
		panic(fmt.Sprintf("bits: negative bit length %d", nbits))
	}
	words := make([]uint32, (nbits+31)/32)
	for i := 0; i < nbits; i++ {
		if fn(i) {
			words[i/32] |= 1 << (31 - uint(i)%32)
		}
	}
	return &BitArray{words: words, nbits: nbits}
}

// Len returns the bit length of the array. It is O(1) and nil-safe.
func (b *BitArray) Len() int {
	if b == nil {
		return 0
	}
	return b.nbits
}

// PartialBits returns the number of significant bits in the last word:
// 32 for a word-aligned array, 0 for an empty one.
func (b *BitArray) PartialBits() int {
	if b.Len() == 0 {
		return 0
	}
	if r := b.nbits % 32; r != 0 {
		return r
	}
	return 32
}

// Word returns the i-th 32-bit word. The last word of an unaligned
// array is left-justified with zero low bits.
func (b *BitArray) Word(i int) uint32 {
	if b == nil || i < 0 || i >= len(b.words) {
		panic(fmt.Sprintf("bits: word index %d out of range [0,%d)", i, b.numWords()))
	}
	return b.words[i]
}

// Words returns a copy of the underlying words.
func (b *BitArray) Words() []uint32 {
	if b.Len() == 0 {
		return nil
	}
	return append([]uint32(nil), b.words...)
}

// Get reports whether bit i is set.
func (b *BitArray) Get(i int) bool {
	if b == nil || i < 0 || i >= b.nbits {
		panic(fmt.Sprintf("bits: bit index %d out of range [0,%d)", i, b.Len()))
	}
	return b.words[i/32]>>(31-uint(i)%32)&1 == 1
}

// Slice returns the bits [start, end) as a new array.
func (b *BitArray) Slice(start, end int) *BitArray {
	if start < 0 || end < start || end > b.Len() {
		panic(fmt.Sprintf("bits: slice bounds [%d,%d) out of range [0,%d)", start, end, b.Len()))
	}
	n := end - start
	if n == 0 {
		return &BitArray{}
	}
	words := make([]uint32, 0, (n+31)/32)
	for i := 0; i < n; i += 32 {
		take := n - i
		if take > 32 {
			take = 32
		}
		// Left-justify the final chunk so the tail invariant holds.
		words = append(words, b.window(start+i, take)<<((32-uint(take))%32))
	}
	out := &BitArray{words: words, nbits: n}
	out.maskTail()
	return out
}

// SliceFrom returns the bits [start, Len()).
func (b *BitArray) SliceFrom(start int) *BitArray {
	return b.Slice(start, b.Len())
}

// Extract returns the length-bit unsigned integer at bit offset start,
// right-justified. length must be at most 32; the range may cross a
// word boundary.
func (b *BitArray) Extract(start, length int) uint32 {
	if length < 0 || length > 32 {
		panic(fmt.Sprintf("bits: extract length %d out of range [0,32]", length))
	}
	if start < 0 || start+length > b.Len() {
		panic(fmt.Sprintf("bits: extract range [%d,%d) out of range [0,%d)", start, start+length, b.Len()))
	}
	return b.window(start, length)
}

// window returns the n bits at offset start, right-justified. Bounds
// are the caller's responsibility; n is in [0, 32].
func (b *BitArray) window(start, n int) uint32 {
	if n == 0 {
		return 0
	}
	wi, off := start/32, uint(start)%32
	w := uint64(b.words[wi]) << 32
	if int(off)+n > 32 {
		w |= uint64(b.words[wi+1])
	}
	return uint32(w << off >> (64 - uint(n)))
}

// Concat returns the bit-exact concatenation of b followed by other.
func (b *BitArray) Concat(other *BitArray) *BitArray {
	if b.Len() == 0 {
		return other.copy()
	}
	if other.Len() == 0 {
		return b.copy()
	}
	total := b.nbits + other.nbits
	need := (total + 31) / 32

	p := uint(b.PartialBits())
	if p == 32 {
		// Aligned tail: structural append.
		words := make([]uint32, 0, need)
		words = append(words, b.words...)
		words = append(words, other.words...)
		return &BitArray{words: words, nbits: total}
	}

	// Shift other right by p bits, carrying b's partial tail in.
	words := make([]uint32, 0, need)
	words = append(words, b.words[:len(b.words)-1]...)
	carry := b.words[len(b.words)-1]
	for _, w := range other.words {
		words = append(words, carry|w>>p)
		carry = w << (32 - p)
	}
	if len(words) < need {
		words = append(words, carry)
	}
	out := &BitArray{words: words[:need], nbits: total}
	out.maskTail()
	return out
}

// Clamp truncates the array to n bits. It is a no-op (returning a copy)
// when the array is already no longer than n bits.
func (b *BitArray) Clamp(n int) *BitArray {
	if n < 0 {
		panic(fmt.Sprintf("bits: negative clamp length %d", n))
	}
	if b.Len() <= n {
		return b.copy()
	}
	words := append([]uint32(nil), b.words[:(n+31)/32]...)
	out := &BitArray{words: words, nbits: n}
	out.maskTail()
	return out
}

// Equal reports whether a and b hold identical bit strings. After the
// length comparison it XORs every word pair into an accumulator without
// early exit, so the runtime does not depend on where the first
// differing bit occurs.
func (b *BitArray) Equal(other *BitArray) bool {
	if b.Len() != other.Len() {
		return false
	}
	if b.Len() == 0 {
		return true
	}
	var x uint32
	for i := range b.words {
		x |= b.words[i] ^ other.words[i]
	}
	return x == 0
}

// Byteswap returns a copy with the byte order reversed within each
// word. The array must be word-aligned; callers holding a partial tail
// must Clamp to a whole-word boundary first.
func (b *BitArray) Byteswap() (*BitArray, error) {
	if b.Len()%32 != 0 {
		return nil, types.Invalidf("byteswap requires whole words, have %d bits", b.Len())
	}
	if b.Len() == 0 {
		return &BitArray{}, nil
	}
	words := make([]uint32, len(b.words))
	for i, w := range b.words {
		words[i] = mbits.ReverseBytes32(w)
	}
	return &BitArray{words: words, nbits: b.Len()}, nil
}

// Xor4 returns the bitwise XOR of two 4-word blocks. It services
// cipher-mode collaborators operating on 128-bit blocks.
func Xor4(x, y [4]uint32) [4]uint32 {
	return [4]uint32{x[0] ^ y[0], x[1] ^ y[1], x[2] ^ y[2], x[3] ^ y[3]}
}

// String renders the array with 'x' for set bits and '_' for unset
// bits, e.g. "x_x__".
func (b *BitArray) String() string {
	if b.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(b.nbits)
	for i := 0; i < b.nbits; i++ {
		if b.Get(i) {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

func (b *BitArray) copy() *BitArray {
	if b.Len() == 0 {
		return &BitArray{}
	}
	return &BitArray{words: append([]uint32(nil), b.words...), nbits: b.nbits}
}

func (b *BitArray) numWords() int {
	if b == nil {
		return 0
	}
	return len(b.words)
}

// maskTail clears the unused low bits of a partial last word.
func (b *BitArray) maskTail() {
	if r := uint(b.nbits) % 32; r != 0 {
		b.words[len(b.words)-1] &= ^uint32(0) << (32 - r)
	}
}
