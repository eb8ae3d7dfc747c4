// Package sha1 implements the SHA-1 hash algorithm as a streaming
// block engine over bit arrays. Unlike the standard library
// implementation it accepts inputs of any bit length, not just whole
// bytes.
//
// SHA-1 is cryptographically broken and should not be used where
// collision resistance matters.
package sha1

import (
	mbits "math/bits"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/types"
)

const (
	// Size is the digest length in bits.
	Size = 160
	// BlockSize is the compression block length in bits.
	BlockSize = 512

	// maxBitLength is the largest total input length accepted by an
	// engine, 2^53-1 bits.
	maxBitLength = 1<<53 - 1
)

var initVector = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// roundKeys holds one constant per 20-round range.
var roundKeys = [4]uint32{0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6}

// Engine is a streaming SHA-1 state machine. The zero value is not
// usable; construct engines with New. An Engine is not safe for
// concurrent use.
type Engine struct {
	digest [5]uint32
	buffer *bits.BitArray
	length uint64
}

// New returns a fresh engine.
func New() *Engine {
	e := new(Engine)
	e.Reset()
	return e
}

// Reset returns the engine to its fresh state: digest at the
// initialization vector, empty buffer, zero length.
func (e *Engine) Reset() {
	e.digest = initVector
	e.buffer = nil
	e.length = 0
}

// Size returns the digest length in bits.
func (*Engine) Size() int { return Size }

// BlockSize returns the compression block length in bits.
func (*Engine) BlockSize() int { return BlockSize }

// Update appends data to the running hash, compressing full blocks as
// they accumulate. It fails with an Invalid error when the total input
// length would exceed 2^53-1 bits.
func (e *Engine) Update(data *bits.BitArray) error {
	nl := e.length + uint64(data.Len())
	if nl > maxBitLength {
		return types.Invalidf("message length %d bits exceeds 2^53-1", nl)
	}
	e.length = nl
	e.buffer = e.buffer.Concat(data)
	// Consume every settled block before re-slicing the buffer once;
	// slicing per block would copy the tail quadratically.
	full := e.buffer.Len() / BlockSize
	for k := 0; k < full; k++ {
		var block [16]uint32
		for i := range block {
			block[i] = e.buffer.Word(16*k + i)
		}
		e.compress(&block)
	}
	if full > 0 {
		e.buffer = e.buffer.SliceFrom(full * BlockSize)
	}
	return nil
}

// UpdateString appends text, converted via the UTF-8 codec.
func (e *Engine) UpdateString(s string) error {
	return e.Update(codec.FromString(s))
}

// Finalize appends the 1-bit terminator, zero-pads to 64 bits short of
// a block boundary, appends the 64-bit big-endian total length,
// compresses the remaining blocks and returns the digest. The engine is
// reset and immediately reusable.
func (e *Engine) Finalize() *bits.BitArray {
	b := e.buffer.Concat(bits.NewPartial(1, 1))
	if pad := (BlockSize - 64 - b.Len()%BlockSize + BlockSize) % BlockSize; pad > 0 {
		b = b.Concat(bits.New(make([]uint32, (pad+31)/32), pad))
	}
	b = b.Concat(bits.FromWords([]uint32{uint32(e.length >> 32), uint32(e.length)}))

	for off := 0; off < b.Len(); off += BlockSize {
		var block [16]uint32
		for i := range block {
			block[i] = b.Word(off/32 + i)
		}
		e.compress(&block)
	}
	digest := bits.FromWords(e.digest[:])
	e.Reset()
	return digest
}

// Hash is the one-shot convenience: a fresh engine updated with data
// and finalized.
func Hash(data *bits.BitArray) *bits.BitArray {
	e := New()
	if err := e.Update(data); err != nil {
		// A single resident bit array cannot reach 2^53 bits.
		panic(err)
	}
	return e.Finalize()
}

// HashString is Hash over the UTF-8 bits of s.
func HashString(s string) *bits.BitArray {
	return Hash(codec.FromString(s))
}

// compress runs the 80-round compression function over one 512-bit
// block and folds the working variables into the digest with
// wraparound addition.
func (e *Engine) compress(block *[16]uint32) {
	var w [80]uint32
	copy(w[:16], block[:])
	for t := 16; t < 80; t++ {
		w[t] = mbits.RotateLeft32(w[t-3]^w[t-8]^w[t-14]^w[t-16], 1)
	}

	a, b, c, d, ee := e.digest[0], e.digest[1], e.digest[2], e.digest[3], e.digest[4]
	for t := 0; t < 80; t++ {
		tmp := mbits.RotateLeft32(a, 5) + f(t, b, c, d) + ee + w[t] + roundKeys[t/20]
		a, b, c, d, ee = tmp, a, mbits.RotateLeft32(b, 30), c, d
	}

	e.digest[0] += a
	e.digest[1] += b
	e.digest[2] += c
	e.digest[3] += d
	e.digest[4] += ee
}

// f is the round-range logical function. A round index outside [0,80)
// is an unreachable internal-invariant violation, not a user-facing
// error.
func f(t int, b, c, d uint32) uint32 {
	switch t / 20 {
	case 0:
		return b&c | ^b&d
	case 1, 3:
		return b ^ c ^ d
	case 2:
		return b&c | b&d | c&d
	default:
		panic(types.Bugf("sha1 round index %d outside [0,80)", t))
	}
}
