package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/traverse/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in traverses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		return cli.RunList(cmd.OutOrStdout(), debug)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
