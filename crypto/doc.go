// crypto is the hashing layer of this library.
//
// The streaming engines live in subpackages (sha1, sha256); both
// satisfy the Hash interface defined here, and derived primitives
// (hmac, pbkdf2, batch) are written against that interface rather than
// a concrete engine.
//
// All engines consume and produce bits.BitArray values, so inputs need
// not be byte-aligned:
//
//	digest := crypto.Sha1(codec.FromString("abc"))
//	fmt.Println(codec.EncodeHex(digest))
//
// Engines hold private mutable state and are not safe for concurrent
// mutation; use one engine per goroutine (see the batch subpackage).
package crypto
