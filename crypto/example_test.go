package crypto_test

import (
	"fmt"

	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/crypto"
)

func ExampleSha1() {
	sum := crypto.Sha1(codec.FromString("abc"))
	fmt.Println(codec.EncodeHex(sum))
	// Output:
	// a9993e364706816aba3e25717850c26c9cd0d89d
}

func ExampleSha256() {
	sum := crypto.Sha256(codec.FromString("abc"))
	fmt.Println(codec.EncodeHex(sum))
	// Output:
	// ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
