package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrtronium/tracecalc/internal/config"
)

func TestSessionHandle(t *testing.T) {
	cfg = config.Default()
	cfg.ShowTree = false
	cases := []struct {
		name string
		line string
		quit bool
		out  string
	}{
		{"blank", "   ", false, ""},
		{"quit", ":quit", true, ""},
		{"quit-short", " :q ", true, ""},
		{"quit-upper", ":QUIT", true, ""},
		{"exit", ":exit", true, ""},
		{"help", ":help", false, help + "\n"},
		{"unknown", ":wat", false, "unknown command :wat. Type :help for help.\n"},
		{"expr", "6 / 4", false, "→ 1\n= 1\n"},
		{"error", "(1", false, "  (1\n  ^\nerror: 1: open bracket ( with no close bracket\n"},
		{"retry-after-error", "1 - 2", false, "→ -1\n= -1\n"},
	}
	var buf bytes.Buffer
	s := session{p: newPrinter(&buf)}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf.Reset()
			assert.Equal(t, c.quit, s.handle(c.line))
			assert.Equal(t, c.out, buf.String())
		})
	}
}

func TestBlank(t *testing.T) {
	assert.True(t, blank(""))
	assert.True(t, blank(" \t"))
	assert.False(t, blank(" 1 "))
}
