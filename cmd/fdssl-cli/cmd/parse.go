package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/montymxb/FDSSL/grammar"
	"github.com/montymxb/FDSSL/internal/ast"
	"github.com/montymxb/FDSSL/internal/errors"
	"github.com/montymxb/FDSSL/internal/parser"
)

const (
	engineDescent    = "descent"
	engineParticiple = "participle"
)

var (
	inlineSource string
	engine       string
	partial      bool
	valueOnly    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a file, an inline program or the built-in sample",
	Long: `Parses FDSSL source and prints the syntax tree.

Without a file or -e the built-in sample program is parsed. With --partial
the longest parsable prefix is accepted and the remainder is printed. With
--value the input is a single value such as "[[1], [2]]" or "mut x = 1",
checked strictly for integer range and vector shape.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&inlineSource, "eval", "e", "", "Parse the given source text")
	parseCmd.Flags().StringVar(&engine, "engine", engineDescent, "Parser to use: descent or participle")
	parseCmd.Flags().BoolVar(&partial, "partial", false, "Accept trailing input and print it")
	parseCmd.Flags().BoolVar(&valueOnly, "value", false, "Parse a single value instead of a program")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	name, source, err := readSource(args)
	if err != nil {
		return err
	}
	if engine != engineDescent && engine != engineParticiple {
		return fmt.Errorf("unknown engine %q", engine)
	}
	if partial && engine == engineParticiple {
		return fmt.Errorf("--partial is only supported by the %s engine", engineDescent)
	}
	if partial && valueOnly {
		return fmt.Errorf("--partial and --value cannot be combined")
	}

	out := cmd.OutOrStdout()
	startTime := time.Now()

	var (
		tree      fmt.Stringer
		program   *ast.Program
		value     ast.Expr
		remainder string
	)
	switch {
	case valueOnly && engine == engineParticiple:
		value, err = grammar.ParseValue(name, source)
	case valueOnly:
		value, err = parser.ParseValue(name, source)
	case engine == engineParticiple:
		program, err = grammar.Parse(name, source)
	case partial:
		program, remainder, err = parser.New(source, parser.WithFilename(name)).Program()
	default:
		program, err = parser.ParseSource(name, source)
	}

	duration := formatDuration(time.Since(startTime))

	if err != nil {
		reporter := errors.NewErrorReporter(name, source)
		fmt.Fprint(cmd.ErrOrStderr(), reporter.Report(err))
		color.New(color.FgRed).Fprintf(out, "Parsing failed after %s\n", duration)
		return fmt.Errorf("parse %s: %w", name, err)
	}

	if valueOnly {
		tree = value
	} else {
		tree = program
	}
	fmt.Fprintln(out, tree.String())
	if remainder != "" {
		fmt.Fprintf(out, "Remainder: %q\n", remainder)
	}
	color.New(color.FgGreen).Fprintf(out, "Successfully parsed %s in %s\n", name, duration)
	return nil
}

func readSource(args []string) (string, string, error) {
	switch {
	case inlineSource != "" && len(args) > 0:
		return "", "", fmt.Errorf("use either a file or -e, not both")
	case inlineSource != "":
		return "<eval>", inlineSource, nil
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file: %w", err)
		}
		return args[0], string(data), nil
	default:
		return "<sample>", parser.SampleProgram, nil
	}
}
