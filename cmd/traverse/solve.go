package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/traverse/internal/cli"
	"github.com/aretw0/traverse/pkg/domain"
)

var solveCmd = &cobra.Command{
	Use:   "solve [name]",
	Short: "Solve a traverse and print its report",
	Long: `Solves a built-in traverse and prints area, perimeter, closure error and
closing bearing. Text output is rendered for the terminal; pipe it or pick
--format markdown|json|yaml for machine-readable output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		rawFormat, _ := cmd.Flags().GetString("format")
		rawUnit, _ := cmd.Flags().GetString("unit")

		format, err := cli.ParseFormat(rawFormat)
		if err != nil {
			return err
		}
		unit, err := domain.ParseUnit(rawUnit)
		if err != nil {
			return err
		}

		return cli.RunSolve(cmd.OutOrStdout(), cli.SolveOptions{
			Name:   nameArg(args),
			Format: format,
			Unit:   unit,
			Debug:  debug,
		})
	},
}

// nameArg defaults to the complete plot 7 survey.
func nameArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "plot7"
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringP("format", "f", "text", "Output format (text, markdown, json, yaml)")
	solveCmd.Flags().StringP("unit", "u", "ft", "Length unit (ft, m, mm)")
}
