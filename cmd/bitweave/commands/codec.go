package commands

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bitweave/bitweave/bits"
	"github.com/bitweave/bitweave/codec"
)

var encodeNoPad bool

func init() {
	EncodeCmd.Flags().BoolVar(&encodeNoPad, "no-pad", false, "suppress '=' padding")
}

// EncodeCmd renders the bytes on standard input in the named text
// format.
var EncodeCmd = &cobra.Command{
	Use:       "encode <format>",
	Short:     "Encode standard input as hex, base32, base32hex, base64 or base64url",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"hex", "base32", "base32hex", "base64", "base64url"},
	RunE: func(cmd *cobra.Command, args []string) error {
		bz, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "reading standard input")
		}
		a := codec.FromBytes(bz)

		var out string
		switch args[0] {
		case "hex":
			out = codec.EncodeHex(a)
		case "base32":
			out = codec.EncodeBase32(a, !encodeNoPad)
		case "base32hex":
			out = codec.EncodeBase32Hex(a, !encodeNoPad)
		case "base64":
			out = codec.EncodeBase64(a, !encodeNoPad)
		case "base64url":
			out = codec.EncodeBase64URL(a)
		default:
			return fmt.Errorf("unknown format %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// DecodeCmd parses text in the named format from standard input and
// writes the raw bytes to standard output.
var DecodeCmd = &cobra.Command{
	Use:       "decode <format>",
	Short:     "Decode hex, base32, base32hex, base64 or base64url from standard input",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"hex", "base32", "base32hex", "base64", "base64url"},
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return errors.Wrap(err, "reading standard input")
		}

		var a *bits.BitArray
		switch args[0] {
		case "hex":
			a, err = codec.DecodeHex(string(text))
		case "base32":
			a, err = codec.DecodeBase32(string(text))
		case "base32hex":
			a, err = codec.DecodeBase32Hex(string(text))
		case "base64":
			a, err = codec.DecodeBase64(string(text))
		case "base64url":
			a, err = codec.DecodeBase64URL(string(text))
		default:
			return fmt.Errorf("unknown format %q", args[0])
		}
		if err != nil {
			return err
		}
		logger.Debug("decoded input", "format", args[0], "bits", a.Len())
		_, err = cmd.OutOrStdout().Write(codec.ToBytes(a))
		return err
	},
}
