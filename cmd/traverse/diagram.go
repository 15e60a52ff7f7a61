package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/traverse/internal/cli"
	"github.com/aretw0/traverse/internal/presentation/diagram"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram [name]",
	Short: "Write an annotated SVG diagram of a traverse to stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		opts := diagram.DefaultOptions()
		opts.Width, _ = cmd.Flags().GetInt("width")
		opts.Height, _ = cmd.Flags().GetInt("height")

		return cli.RunDiagram(cmd.OutOrStdout(), nameArg(args), opts, debug)
	},
}

func init() {
	rootCmd.AddCommand(diagramCmd)
	defaults := diagram.DefaultOptions()
	diagramCmd.Flags().Int("width", defaults.Width, "Canvas width in pixels")
	diagramCmd.Flags().Int("height", defaults.Height, "Canvas height in pixels")
}
