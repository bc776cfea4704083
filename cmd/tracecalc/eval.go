package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var evalIn string

var evalCmd = &cobra.Command{
	Use:   "eval [EXPR...]",
	Short: "Evaluate expressions and print their reduction steps",
	Long: `Evaluate each argument as an expression. With --in, each line of the
file is also an expression. With neither, lines are read from standard input.`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVar(&evalIn, "in", "", "input file with one expression per line (- for stdin)")
}

func runEval(cmd *cobra.Command, args []string) error {
	p := newPrinter(cmd.OutOrStdout())
	var srcs []string
	in, closer, err := infile(cmd, evalIn, len(args) == 0)
	if err != nil {
		return err
	}
	if in != nil {
		defer closer.Close()
		lines, err := readLines(in)
		if err != nil {
			return err
		}
		srcs = append(srcs, lines...)
	}
	srcs = append(srcs, args...)

	failed := 0
	for _, src := range srcs {
		if err := evaluate(p, src); err != nil {
			logger.Debug().Err(err).Str("expr", src).Msg("evaluation failed")
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions failed", failed, len(srcs))
	}
	return nil
}

// infile opens the input named by the --in flag. std selects standard input
// when no name is given. The result is nil if there is no input file.
func infile(cmd *cobra.Command, name string, std bool) (io.Reader, io.Closer, error) {
	switch {
	case name != "" && name != "-":
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("opening input: %w", err)
		}
		return f, f, nil
	case name == "-", std:
		return cmd.InOrStdin(), io.NopCloser(nil), nil
	}
	return nil, nil, nil
}

// readLines reads the lines of r, skipping blank ones.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if blank(sc.Text()) {
			continue
		}
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
