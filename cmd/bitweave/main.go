package main

import (
	"os"

	cmd "github.com/bitweave/bitweave/cmd/bitweave/commands"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.SumCmd,
		cmd.EncodeCmd,
		cmd.DecodeCmd,
		cmd.VersionCmd,
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
