package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/montymxb/FDSSL/internal/parser"
)

// sampleFailure is printed instead of a diagnostic when the sample does not parse.
const sampleFailure = "Error: Not a function"

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print the built-in sample program and its parse result",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, parser.SampleProgram)

		program, _, err := parser.Program(parser.SampleProgram)
		if err != nil {
			fmt.Fprintln(out, sampleFailure)
			return nil
		}
		fmt.Fprintln(out, program.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}
