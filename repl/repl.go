// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/montymxb/FDSSL/internal/errors"
	"github.com/montymxb/FDSSL/internal/parser"
)

const PROMPT = ">> "

const replFile = "<repl>"

// Start reads one program per line from in and writes its AST or the
// diagnostic to out. The line ":sample" parses the built-in sample and
// ":value <text>" parses text as a single value.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":sample":
			line = parser.SampleProgram
		}

		if text, ok := strings.CutPrefix(line, ":value "); ok {
			value, err := parser.ParseValue(replFile, text)
			if err != nil {
				fmt.Fprint(out, errors.NewErrorReporter(replFile, text).Report(err))
				continue
			}
			fmt.Fprintf(out, "Value:\n%s\n", value.String())
			continue
		}

		program, err := parser.New(line, parser.WithFilename(replFile)).ParseSource()
		if err != nil {
			fmt.Fprint(out, errors.NewErrorReporter(replFile, line).Report(err))
			continue
		}

		fmt.Fprintf(out, "AST:\n%s\n", program.String())
	}
}
