// Package hmac implements HMAC (RFC 2104) over any streaming engine
// satisfying crypto.Hash, with keys and messages supplied as bit
// arrays.
package hmac

import (
	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/crypto"
)

const (
	ipad = 0x36363636
	opad = 0x5c5c5c5c
)

// HMAC is a keyed MAC. It satisfies crypto.Hash itself, so it can be
// used anywhere a plain engine can; like the engines, it is not safe
// for concurrent use.
type HMAC struct {
	newHash func() crypto.Hash
	inner   crypto.Hash
	ipadKey *bits.BitArray
	opadKey *bits.BitArray
}

var _ crypto.Hash = (*HMAC)(nil)

// New returns an HMAC keyed with key. Keys longer than the engine's
// block are hashed first; shorter keys are zero-padded to the block.
func New(newHash func() crypto.Hash, key *bits.BitArray) (*HMAC, error) {
	e := newHash()
	bs := e.BlockSize()
	if key.Len() > bs {
		if err := e.Update(key); err != nil {
			return nil, err
		}
		key = e.Finalize()
	}
	if short := bs - key.Len(); short > 0 {
		key = key.Concat(bits.New(make([]uint32, (short+31)/32), short))
	}

	kw := key.Words()
	iw := make([]uint32, len(kw))
	ow := make([]uint32, len(kw))
	for i, w := range kw {
		iw[i] = w ^ ipad
		ow[i] = w ^ opad
	}
	h := &HMAC{
		newHash: newHash,
		ipadKey: bits.FromWords(iw),
		opadKey: bits.FromWords(ow),
	}
	h.Reset()
	return h, nil
}

// Reset returns the MAC to its fresh keyed state.
func (h *HMAC) Reset() {
	h.inner = h.newHash()
	if err := h.inner.Update(h.ipadKey); err != nil {
		// A block-sized key cannot overflow a fresh engine.
		panic(err)
	}
}

// Update appends message data.
func (h *HMAC) Update(data *bits.BitArray) error {
	return h.inner.Update(data)
}

// UpdateString appends text, converted via the UTF-8 codec.
func (h *HMAC) UpdateString(s string) error {
	return h.Update(codec.FromString(s))
}

// Finalize returns the MAC of the accumulated message and resets the
// keyed state for reuse.
func (h *HMAC) Finalize() *bits.BitArray {
	innerDigest := h.inner.Finalize()
	outer := h.newHash()
	if err := outer.Update(h.opadKey); err != nil {
		panic(err)
	}
	if err := outer.Update(innerDigest); err != nil {
		panic(err)
	}
	mac := outer.Finalize()
	h.Reset()
	return mac
}

// Size returns the MAC length in bits.
func (h *HMAC) Size() int { return h.newHash().Size() }

// BlockSize returns the underlying engine's block length in bits.
func (h *HMAC) BlockSize() int { return h.newHash().BlockSize() }

// Sum is the one-shot convenience over New, Update and Finalize.
func Sum(newHash func() crypto.Hash, key, data *bits.BitArray) (*bits.BitArray, error) {
	h, err := New(newHash, key)
	if err != nil {
		return nil, err
	}
	if err := h.Update(data); err != nil {
		return nil, err
	}
	return h.Finalize(), nil
}
