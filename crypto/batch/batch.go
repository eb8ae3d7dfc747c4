// Package batch hashes many inputs in parallel. Engines are not safe
// for concurrent mutation, so each input gets its own; bit arrays are
// immutable and freely shared across the goroutines.
package batch

import (
	"golang.org/x/sync/errgroup"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/crypto"
)

// Hash digests every input with a fresh engine from newHash and returns
// the digests in input order.
func Hash(newHash func() crypto.Hash, inputs ...*bits.BitArray) ([]*bits.BitArray, error) {
	out := make([]*bits.BitArray, len(inputs))
	var g errgroup.Group
	for i, in := range inputs {
		i, in := i, in
		g.Go(func() error {
			e := newHash()
			if err := e.Update(in); err != nil {
				return err
			}
			out[i] = e.Finalize()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
