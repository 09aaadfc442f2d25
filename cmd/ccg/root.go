package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/ccg/lexicon"
	"github.com/npillmayer/ccg/server"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ccg",
	Short: "ccg parses sentences with combinatory categorial grammars",
	Long: `ccg is a CYK chart parser for combinatory categorial grammars with
unification of feature structures.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	defaults := DefaultConfig()
	flags.String("config", "", "YAML configuration file")
	flags.StringP("lexicon", "l", defaults.Lexicon, "built-in lexicon name or lexicon file")
	flags.Int("max-tokens", defaults.MaxTokens, "maximum number of words of a sentence (0 = no limit)")
	flags.Int("workers", defaults.Workers, "number of goroutines filling the chart")
	flags.String("trace", defaults.Trace, "trace level [Debug|Info|Error]")
}

// setup reads the configuration, initializes display and tracing and creates
// a parser engine for the configured lexicon.
func setup(cmd *cobra.Command) (Config, *server.Engine, error) {
	filename, _ := cmd.Flags().GetString("config")
	cfg, err := LoadConfig(filename)
	if err != nil {
		return cfg, nil, err
	}
	cfg.Override(cmd.Flags())
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(cfg.Trace))
	tracer().Infof("Trace level is %s", cfg.Trace)
	engine, err := newEngine(cfg, cfg.Lexicon)
	return cfg, engine, err
}

func newEngine(cfg Config, name string) (*server.Engine, error) {
	lex, err := lexicon.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cannot load lexicon %q: %w", name, err)
	}
	return server.NewEngine(lex, server.MaxTokens(cfg.MaxTokens), server.Workers(cfg.Workers))
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
