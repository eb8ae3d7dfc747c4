// Package rand provides a pseudo-random number generator seeded with OS
// randomness, used by this library's tests to generate arbitrary bit
// arrays and byte strings. None of the provided functions are suitable
// for cryptographic usage: they all utilize math/rand's prng
// internally.
//
// All functions are safe for concurrent use; a mutex guards the shared
// generator.
package rand

import (
	crand "crypto/rand"
	mrand "math/rand"
	"sync"
)

const strChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz" // 62 characters

// Rand is a prng seeded with OS randomness obtained from crypto/rand.
type Rand struct {
	mtx  sync.Mutex
	rand *mrand.Rand
}

var grand = NewRand()

// NewRand returns a generator seeded from OS randomness.
func NewRand() *Rand {
	r := &Rand{}
	r.reset(newSeed())
	return r
}

func newSeed() int64 {
	bz := cRandBytes(8)
	var seed uint64
	for i := 0; i < 8; i++ {
		seed |= uint64(bz[i])
		seed <<= 8
	}
	return int64(seed)
}

func (r *Rand) reset(seed int64) {
	// G404: this prng backs tests, not key material.
	//nolint:gosec
	r.rand = mrand.New(mrand.NewSource(seed))
}

// Seed reseeds the generator, making its output reproducible.
func (r *Rand) Seed(seed int64) {
	r.mtx.Lock()
	r.reset(seed)
	r.mtx.Unlock()
}

// Str constructs a random alphanumeric string of the given length.
func (r *Rand) Str(length int) string {
	if length <= 0 {
		return ""
	}
	chars := make([]byte, 0, length)
	for len(chars) < length {
		chars = append(chars, strChars[r.Intn(len(strChars))])
	}
	return string(chars)
}

// Bytes returns n random bytes generated from the internal prng.
func (r *Rand) Bytes(n int) []byte {
	bs := make([]byte, n)
	for i := range bs {
		bs[i] = byte(r.Int() & 0xFF)
	}
	return bs
}

// Uint32 returns a random uint32.
func (r *Rand) Uint32() uint32 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.rand.Uint32()
}

// Int returns a non-negative random int.
func (r *Rand) Int() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.rand.Int()
}

// Intn returns, as an int, a uniform random number in [0, n).
// It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.rand.Intn(n)
}

// Bool returns a uniformly random boolean.
func (r *Rand) Bool() bool {
	// See https://github.com/golang/go/issues/23804#issuecomment-365370418
	// for reasoning behind computing like this.
	return r.Int63()%2 == 0
}

// Int63 returns a non-negative random int64.
func (r *Rand) Int63() int64 {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return r.rand.Int63()
}

// ----------------------------------------
// Global functions backed by a shared generator.

// Seed reseeds the shared generator for deterministic behavior in tests.
func Seed(seed int64) {
	grand.Seed(seed)
}

// Str constructs a random alphanumeric string of the given length.
func Str(length int) string {
	return grand.Str(length)
}

// Bytes returns n random bytes from the shared generator.
func Bytes(n int) []byte {
	return grand.Bytes(n)
}

// Uint32 returns a random uint32.
func Uint32() uint32 {
	return grand.Uint32()
}

// Int returns a non-negative random int.
func Int() int {
	return grand.Int()
}

// Intn returns, as an int, a uniform random number in [0, n).
func Intn(n int) int {
	return grand.Intn(n)
}

// Bool returns a uniformly random boolean.
func Bool() bool {
	return grand.Bool()
}

// cRandBytes reads n crypto-random bytes, panicking on failure: the OS
// randomness source not being available is not a recoverable state.
func cRandBytes(numBytes int) []byte {
	b := make([]byte, numBytes)
	if _, err := crand.Read(b); err != nil {
		panic(err)
	}
	return b
}
