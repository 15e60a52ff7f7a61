package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/traverse"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of traverse",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "traverse version %s\n", strings.TrimSpace(traverse.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
