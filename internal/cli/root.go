package cli

import (
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "wire",
	Short:   "A small, composable terminal HTTP client",
	Version: version,
	Long: `Wire is a terminal HTTP client built on a fluent client façade:
a base URL plus default headers, timeouts, and SSL policy produce
immutable requests that are dispatched through a swappable transport
and normalized into uniform responses with automatic JSON decoding
and timing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.AddCommand(getCmd)
	RootCmd.AddCommand(postCmd)
	RootCmd.AddCommand(putCmd)
	RootCmd.AddCommand(patchCmd)
	RootCmd.AddCommand(deleteCmd)
	RootCmd.AddCommand(requestCmd)
	RootCmd.AddCommand(benchCmd)
}
