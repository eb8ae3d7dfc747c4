// Package aesblock exposes the AES block transform over 4-word blocks,
// the boundary at which cipher collaborators consume bit arrays. Modes
// of operation are deliberately out of scope; callers compose blocks
// themselves, typically with bits.Xor4.
package aesblock

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/types"
)

// Cipher wraps a single AES key schedule. It is safe for concurrent
// use: the block transform does not mutate state.
type Cipher struct {
	block cipher.Block
}

// NewCipher builds a key schedule from a 128-, 192- or 256-bit key.
func NewCipher(key *bits.BitArray) (*Cipher, error) {
	switch key.Len() {
	case 128, 192, 256:
	default:
		return nil, types.Invalidf("aes key must be 128, 192 or 256 bits, have %d", key.Len())
	}
	block, err := aes.NewCipher(codec.ToBytes(key))
	if err != nil {
		return nil, types.Invalidf("aes key rejected: %v", err)
	}
	return &Cipher{block: block}, nil
}

// Encrypt transforms one 128-bit block, given and returned as four
// big-endian words.
func (c *Cipher) Encrypt(in [4]uint32) [4]uint32 {
	var buf [16]byte
	packBlock(&buf, in)
	c.block.Encrypt(buf[:], buf[:])
	return unpackBlock(&buf)
}

// Decrypt inverts Encrypt.
func (c *Cipher) Decrypt(in [4]uint32) [4]uint32 {
	var buf [16]byte
	packBlock(&buf, in)
	c.block.Decrypt(buf[:], buf[:])
	return unpackBlock(&buf)
}

// EncryptBits is Encrypt with the block carried as a 128-bit array.
func (c *Cipher) EncryptBits(b *bits.BitArray) (*bits.BitArray, error) {
	in, err := blockWords(b)
	if err != nil {
		return nil, err
	}
	out := c.Encrypt(in)
	return bits.FromWords(out[:]), nil
}

// DecryptBits is Decrypt with the block carried as a 128-bit array.
func (c *Cipher) DecryptBits(b *bits.BitArray) (*bits.BitArray, error) {
	in, err := blockWords(b)
	if err != nil {
		return nil, err
	}
	out := c.Decrypt(in)
	return bits.FromWords(out[:]), nil
}

func blockWords(b *bits.BitArray) ([4]uint32, error) {
	if b.Len() != 128 {
		return [4]uint32{}, types.Invalidf("aes block must be 128 bits, have %d", b.Len())
	}
	return [4]uint32{b.Word(0), b.Word(1), b.Word(2), b.Word(3)}, nil
}

func packBlock(buf *[16]byte, w [4]uint32) {
	for i, x := range w {
		binary.BigEndian.PutUint32(buf[4*i:], x)
	}
}

func unpackBlock(buf *[16]byte) (w [4]uint32) {
	for i := range w {
		w[i] = binary.BigEndian.Uint32(buf[4*i:])
	}
	return w
}
