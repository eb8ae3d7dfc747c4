// Package sha256 implements the SHA-256 hash algorithm as a streaming
// block engine over bit arrays. It is structurally identical to the
// sha1 engine: same buffering, padding and length rules, with a wider
// digest and a different round function.
package sha256

import (
	mbits "math/bits"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/types"
)

const (
	// Size is the digest length in bits.
	Size = 256
	// BlockSize is the compression block length in bits.
	BlockSize = 512

	maxBitLength = 1<<53 - 1
)

var initVector = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var roundKeys = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// Engine is a streaming SHA-256 state machine. Construct engines with
// New. An Engine is not safe for concurrent use.
type Engine struct {
	digest [8]uint32
	buffer *bits.BitArray
	length uint64
}

// New returns a fresh engine.
func New() *Engine {
	e := new(Engine)
	e.Reset()
	return e
}

// Reset returns the engine to its fresh state.
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

// Finalize pads the buffered input, compresses the remaining blocks and
// returns the 256-bit digest. The engine is reset and immediately
// reusable.
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

// compress runs the 64-round compression function over one 512-bit
// block.
func (e *Engine) compress(block *[16]uint32) {
	var w [64]uint32
	copy(w[:16], block[:])
	for t := 16; t < 64; t++ {
		s0 := mbits.RotateLeft32(w[t-15], -7) ^ mbits.RotateLeft32(w[t-15], -18) ^ w[t-15]>>3
		s1 := mbits.RotateLeft32(w[t-2], -17) ^ mbits.RotateLeft32(w[t-2], -19) ^ w[t-2]>>10
		w[t] = w[t-16] + s0 + w[t-7] + s1
	}

	a, b, c, d := e.digest[0], e.digest[1], e.digest[2], e.digest[3]
	ee, ff, g, h := e.digest[4], e.digest[5], e.digest[6], e.digest[7]
	for t := 0; t < 64; t++ {
		s1 := mbits.RotateLeft32(ee, -6) ^ mbits.RotateLeft32(ee, -11) ^ mbits.RotateLeft32(ee, -25)
		ch := ee&ff ^ ^ee&g
		t1 := h + s1 + ch + roundKeys[t] + w[t]
		s0 := mbits.RotateLeft32(a, -2) ^ mbits.RotateLeft32(a, -13) ^ mbits.RotateLeft32(a, -22)
		maj := a&b ^ a&c ^ b&c
		t2 := s0 + maj
		h, g, ff, ee, d, c, b, a = g, ff, ee, d+t1, c, b, a, t1+t2
	}

	e.digest[0] += a
	e.digest[1] += b
	e.digest[2] += c
	e.digest[3] += d
	e.digest[4] += ee
	e.digest[5] += ff
	e.digest[6] += g
	e.digest[7] += h
}
