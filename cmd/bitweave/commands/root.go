package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	cliflags "github.com/bitweave/bitweave/libs/cli/flags"
	"github.com/bitweave/bitweave/libs/log"
)

var (
	logger   = log.NewLogger(os.Stderr)
	logLevel string
)

func init() {
	registerFlagsRootCmd(RootCmd.PersistentFlags())
}

func registerFlagsRootCmd(fs *pflag.FlagSet) {
	fs.StringVar(&logLevel, "log-level", cliflags.DefaultLogLevel, "log level (debug|info|warn|error|none)")
}

// RootCmd is the root command for the bitweave tool.
var RootCmd = &cobra.Command{
	Use:   "bitweave",
	Short: "Bit-level hashing and codec toolkit",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}
		l, err := cliflags.ParseLogLevel(logLevel, os.Stderr)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}
