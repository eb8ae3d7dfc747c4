package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
	"github.com/bitweave/bitweave/crypto"
	"github.com/bitweave/bitweave/crypto/batch"
	"github.com/bitweave/bitweave/crypto/sha1"
	"github.com/bitweave/bitweave/crypto/sha256"
)

var sumAlgo string

func init() {
	SumCmd.Flags().StringVar(&sumAlgo, "algo", "sha1", "digest algorithm (sha1|sha256)")
}

// SumCmd prints the hex digest of each named file, or of standard
// input when no files are given.
var SumCmd = &cobra.Command{
	Use:   "sum [file ...]",
	Short: "Print the digest of files or standard input",
	RunE: func(cmd *cobra.Command, args []string) error {
		newHash, err := engineFor(sumAlgo)
		if err != nil {
			return err
		}

		if len(args) == 0 {
			bz, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "reading standard input")
			}
			digest := hashOne(newHash, codec.FromBytes(bz))
			fmt.Fprintf(cmd.OutOrStdout(), "%s  -\n", codec.EncodeHex(digest))
			return nil
		}

		inputs := make([]*bits.BitArray, len(args))
		for i, path := range args {
			bz, err := os.ReadFile(path)
			if err != nil {
				return errors.Wrapf(err, "reading %s", path)
			}
			logger.Debug("read input", "file", path, "bytes", len(bz))
			inputs[i] = codec.FromBytes(bz)
		}
		digests, err := batch.Hash(newHash, inputs...)
		if err != nil {
			return err
		}
		for i, digest := range digests {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", codec.EncodeHex(digest), args[i])
		}
		return nil
	},
}

func engineFor(algo string) (func() crypto.Hash, error) {
	switch algo {
	case "sha1":
		return func() crypto.Hash { return sha1.New() }, nil
	case "sha256":
		return func() crypto.Hash { return sha256.New() }, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q, expected sha1 or sha256", algo)
	}
}

func hashOne(newHash func() crypto.Hash, data *bits.BitArray) *bits.BitArray {
	e := newHash()
	if err := e.Update(data); err != nil {
		// Resident input cannot exceed the engine's length ceiling.
		panic(err)
	}
	return e.Finalize()
}
