package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/aretw0/traverse/internal/cli"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the read-only HTTP server",
	Long:  `Serves the built-in traverses as JSON reports and SVG diagrams, with Prometheus metrics on /metrics.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		port, _ := cmd.Flags().GetString("port")

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		return cli.RunServe(ctx, cmd.OutOrStdout(), cli.NewServer(":"+port, debug))
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
}
