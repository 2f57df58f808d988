package cli

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete URL",
	Short: "Make a DELETE request to the specified URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeRequest(cmd, "DELETE", args[0])
	},
}

func init() {
	addRequestFlags(deleteCmd, false)
}
