package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/paramlink"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of paramlink",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "paramlink version %s\n", strings.TrimSpace(paramlink.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
