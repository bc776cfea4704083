package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/tracecalc"
)

var tokensAll bool

var tokensCmd = &cobra.Command{
	Use:   "tokens EXPR",
	Short: "List the tokens of an expression",
	Long: `List the tokens of an expression with their byte spans. Whitespace is
omitted unless --all is given. Scanning continues past invalid characters.`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().BoolVarP(&tokensAll, "all", "a", false, "include whitespace tokens")
}

func runTokens(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	src := args[0]
	l := tracecalc.NewLexer(src)
	invalid := 0
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		switch tok.Kind {
		case tracecalc.TokenWhitespace:
			if !tokensAll {
				continue
			}
		case tracecalc.TokenInvalid:
			invalid++
		}
		fmt.Fprintf(out, "%-6s %-12s %s\n", fmt.Sprintf("%d:%d", tok.Span.Start, tok.Span.End), tok.Kind, describe(tok))
	}
	if invalid > 0 {
		return fmt.Errorf("%d invalid characters", invalid)
	}
	return nil
}

func describe(tok tracecalc.Token) string {
	switch tok.Kind {
	case tracecalc.TokenNum:
		return strconv.FormatInt(tok.Value, 10)
	case tracecalc.TokenEOF:
		return ""
	default:
		return strconv.Quote(tok.Span.Text)
	}
}
