package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/traverse/internal/cli"
	"github.com/aretw0/traverse/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [name]",
	Short: "Check a traverse's closure precision and polygon shape",
	Long:  `Solves a built-in traverse and fails if its closure ratio is below --min-precision or its sides cross each other.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		opts := validator.DefaultOptions()
		opts.MinPrecision, _ = cmd.Flags().GetFloat64("min-precision")

		return cli.RunValidate(cmd.OutOrStdout(), nameArg(args), opts, debug)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().Float64("min-precision", validator.DefaultOptions().MinPrecision, "Minimum closure ratio 1:N (0 disables)")
}
