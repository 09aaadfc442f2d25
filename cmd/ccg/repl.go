package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/ccg/notation"
	"github.com/npillmayer/ccg/server"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Parse sentences interactively",
	Long: `Starts an interactive session. Enter sentences to parse them, or one of
the commands

  :tree          toggle display of derivation trees
  :lex           list the lexicon
  :load name     switch to another lexicon
  :cat notation  parse a category
  :quit          end the session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, engine, err := setup(cmd)
		if err != nil {
			return err
		}
		repl, err := readline.New("ccg> ")
		if err != nil {
			return err
		}
		defer repl.Close()
		intp := &Intp{cfg: cfg, engine: engine, repl: repl}
		pterm.Info.Printf("Welcome to the CCG REPL, lexicon is %s\n", engine.Lexicon().Name)
		tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
		intp.REPL()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

// Intp is our interpreter object
type Intp struct {
	cfg      Config
	engine   *server.Engine
	repl     *readline.Instance
	showTree bool
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Eval evaluates a line of input, which is either a command or a sentence.
// It returns true if the session should end.
func (intp *Intp) Eval(line string) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		result, err := intp.engine.Parse(context.Background(), line)
		if err != nil {
			return false, err
		}
		printResult(result, intp.showTree)
		return false, nil
	}
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	switch cmd {
	case ":quit", ":q":
		return true, nil
	case ":tree":
		intp.showTree = !intp.showTree
		pterm.Info.Printf("derivation trees %s\n", onOff(intp.showTree))
	case ":lex":
		printLexicon(intp.engine.Lexicon())
	case ":load":
		if arg == "" {
			return false, fmt.Errorf("usage: :load <lexicon>")
		}
		engine, err := newEngine(intp.cfg, arg)
		if err != nil {
			return false, err
		}
		intp.engine = engine
		pterm.Info.Printf("lexicon is %s\n", engine.Lexicon().Name)
	case ":cat":
		c, err := notation.ParseFeatures(arg)
		if err != nil {
			return false, err
		}
		pterm.Info.Printf("%v  (arity %d)\n", c, c.Arity())
	default:
		return false, fmt.Errorf("unknown command %s", cmd)
	}
	return false, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
