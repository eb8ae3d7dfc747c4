package crypto

import (
	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/crypto/sha1"
	"github.com/bitweave/bitweave/crypto/sha256"
)

// Hash is a streaming block-hash engine over bit arrays. Finalize
// resets the engine, so it is immediately reusable.
type Hash interface {
	// Reset returns the engine to its fresh state.
	Reset()
	// Update appends data to the running hash. It fails with an
	// Invalid error when the total input length would exceed 2^53-1
	// bits.
	Update(data *bits.BitArray) error
	// UpdateString appends text, converted via the UTF-8 codec.
	UpdateString(s string) error
	// Finalize pads and compresses the remaining input, returns the
	// digest and resets the engine.
	Finalize() *bits.BitArray
	// Size returns the digest length in bits.
	Size() int
	// BlockSize returns the compression block length in bits.
	BlockSize() int
}

// Interface assertions.
var (
	_ Hash = (*sha1.Engine)(nil)
	_ Hash = (*sha256.Engine)(nil)
)

// Sha1 returns the 160-bit digest of the data.
func Sha1(data *bits.BitArray) *bits.BitArray {
	return sha1.Hash(data)
}

// Sha256 returns the 256-bit digest of the data.
func Sha256(data *bits.BitArray) *bits.BitArray {
	return sha256.Hash(data)
}
