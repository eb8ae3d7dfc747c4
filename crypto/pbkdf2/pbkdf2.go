// Package pbkdf2 implements password-based key derivation (RFC 2898)
// with HMAC over any crypto.Hash engine as the pseudo-random function.
package pbkdf2

import (
	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/crypto"
	"github.com/bitweave/bitweave/crypto/hmac"
	"github.com/bitweave/bitweave/types"
)

// Key derives a keyBits-bit key from the password and salt using iter
// rounds of HMAC over the given engine.
func Key(password, salt *bits.BitArray, iter, keyBits int, newHash func() crypto.Hash) (*bits.BitArray, error) {
	if iter < 1 {
		return nil, types.Invalidf("iteration count %d is not positive", iter)
	}
	if keyBits <= 0 {
		return nil, types.Invalidf("derived key length %d is not positive", keyBits)
	}

	prf, err := hmac.New(newHash, password)
	if err != nil {
		return nil, err
	}

	var out *bits.BitArray
	for blk := uint32(1); out.Len() < keyBits; blk++ {
		// U_1 = PRF(salt || INT(blk)); T = U_1 ^ U_2 ^ ... ^ U_iter.
		if err := prf.Update(salt); err != nil {
			return nil, err
		}
		if err := prf.Update(bits.FromWords([]uint32{blk})); err != nil {
			return nil, err
		}
		u := prf.Finalize()
		acc := u.Words()
		for i := 1; i < iter; i++ {
			if err := prf.Update(u); err != nil {
				return nil, err
			}
			u = prf.Finalize()
			for j, w := range u.Words() {
				acc[j] ^= w
			}
		}
		out = out.Concat(bits.FromWords(acc))
	}
	return out.Clamp(keyBits), nil
}
