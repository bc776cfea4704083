package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/tracecalc"
	"github.com/zephyrtronium/tracecalc/internal/config"
)

var (
	configPath string
	colorMode  string
	logLevel   string
	showTree   bool
)

// cfg and logger are set up before any command runs.
var (
	cfg    = config.Default()
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "tracecalc",
	Short: "Integer calculator that shows its work",
	Long: `tracecalc evaluates integer arithmetic with + - * / and parentheses,
printing the expression after each reduction until only the value is left.

With no command, it reads expressions interactively.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRepl,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/"+config.DefaultFile+")")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Color output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&showTree, "tree", true, "print the parenthesized expression before its steps")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the config file, applies flags that were set explicitly, and
// creates the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("color") {
		c.Color = colorMode
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("tree") {
		c.ShowTree = showTree
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		With().Timestamp().Str("service", "tracecalc").Logger().
		Level(cfg.Level())
	setColor(cfg.Color, cmd.OutOrStdout())
	logger.Debug().Str("config", configPath).Str("color", cfg.Color).Bool("tree", cfg.ShowTree).Msg("configured")
	return nil
}

// evaluate parses and evaluates one expression, printing its trace with p.
// Errors are printed before they are returned. An empty expression prints
// nothing.
func evaluate(p *printer, src string) error {
	a, err := tracecalc.Parse(src)
	if err != nil {
		p.failure(src, err)
		return err
	}
	if a.Empty() {
		return nil
	}
	if cfg.ShowTree {
		p.expr(a.String())
	}
	ctx := tracecalc.NewContext(tracecalc.TraceFunc(p.reduction), tracecalc.WithLogger(logger))
	r, err := ctx.Eval(a)
	if err != nil {
		p.failure(src, err)
		return err
	}
	p.value(r)
	return nil
}
