package cli

import (
	"github.com/spf13/cobra"
)

var requestCmd = &cobra.Command{
	Use:   "request METHOD URL",
	Short: "Make a request with an arbitrary HTTP method",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// The method token is uppercased downstream regardless of how
		// it is spelled here.
		return executeRequest(cmd, args[0], args[1])
	},
}

func init() {
	addRequestFlags(requestCmd, true)
}
