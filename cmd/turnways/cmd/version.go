package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set by build flags; it defaults to a development marker
// when the binary is built without them.
var Version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("turnways version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
