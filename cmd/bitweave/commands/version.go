package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitweave/bitweave/version"
)

// VersionCmd prints the tool version.
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(cmd *cobra.Command, _ []string) {
		v := version.SemVer
		if version.GitCommitHash != "" {
			v += "+" + version.GitCommitHash
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
	},
}
