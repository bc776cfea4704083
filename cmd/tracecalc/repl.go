package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const banner = `tracecalc: integer arithmetic with + - * / and parentheses. :help for help, :quit to exit.`

const help = `Enter an expression such as (10 / 3 + 23) * (1 - 4) to see each reduction.
Division truncates toward zero. Values are 64-bit and wrap on overflow.
  :help   show this message
  :quit   exit (also Ctrl-D)`

func runRepl(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if hist := cfg.History(); hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(hist)
			if err != nil {
				logger.Warn().Err(err).Str("file", hist).Msg("could not save history")
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	s := session{p: newPrinter(out)}
	for {
		line, err := ln.Prompt(cfg.Prompt)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			return fmt.Errorf("reading input: %w", err)
		}
		if !blank(line) {
			ln.AppendHistory(line)
		}
		if s.handle(line) {
			return nil
		}
	}
}

// session handles lines entered at the prompt.
type session struct {
	p *printer
}

// handle evaluates a line or runs a command. It returns true when the session
// should end.
func (s *session) handle(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, ":"):
		switch strings.ToLower(line) {
		case ":quit", ":q", ":exit":
			return true
		case ":help", ":h", ":?":
			s.p.println(help)
		default:
			s.p.println("unknown command " + line + ". Type :help for help.")
		}
		return false
	}
	if err := evaluate(s.p, line); err != nil {
		logger.Debug().Err(err).Str("expr", line).Msg("evaluation failed")
	}
	return false
}

// blank returns whether a line has nothing to evaluate.
func blank(line string) bool {
	return strings.TrimSpace(line) == ""
}
