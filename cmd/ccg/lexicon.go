package main

import (
	"strings"

	"github.com/npillmayer/ccg/lexicon"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "List the entries of a lexicon",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, engine, err := setup(cmd)
		if err != nil {
			return err
		}
		printLexicon(engine.Lexicon())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}

func printLexicon(lex *lexicon.File) {
	pterm.Info.Printf("lexicon %s (%s), built-in lexicons are %s\n", lex.Name, lex.Payload,
		strings.Join(lexicon.Builtins(), ", "))
	pterm.DefaultTable.WithHasHeader().WithData(lexiconTable(lex)).Render()
}

func lexiconTable(lex *lexicon.File) pterm.TableData {
	data := pterm.TableData{{"Word", "Categories"}}
	for _, e := range lex.Entries {
		data = append(data, []string{e.Word, strings.Join(e.Categories, "  ")})
	}
	return data
}
