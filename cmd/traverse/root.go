package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "traverse",
	Short: "Traverse turns surveyor field notes into a closed polygon",
	Long: `Traverse walks a land survey's measured sides and turning angles from the origin,
applies rotation and magnetic declination corrections, and reports the area,
perimeter, closure error and closing bearing of the resulting polygon.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}
