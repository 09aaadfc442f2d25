package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/npillmayer/ccg/server"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [sentence]",
	Short: "Parse a sentence and print its categories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, engine, err := setup(cmd)
		if err != nil {
			return err
		}
		showTree, _ := cmd.Flags().GetBool("tree")
		result, err := engine.Parse(context.Background(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		printResult(result, showTree)
		if len(result.Categories) == 0 {
			return fmt.Errorf("no parse for %q", result.Sentence)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolP("tree", "t", false, "print derivation trees")
}

func printResult(result *server.Result, showTree bool) {
	if len(result.Categories) == 0 {
		pterm.Info.Println("no parse")
		return
	}
	for _, c := range result.Distinct {
		pterm.Info.Println(c)
	}
	if !showTree {
		return
	}
	for i, d := range result.Derivations {
		pterm.Println(fmt.Sprintf("derivation %d of %d", i+1, len(result.Derivations)))
		pterm.DefaultTree.WithRoot(derivationTree(d)).Render()
	}
}

// derivationTree converts a derivation into a tree for display.
func derivationTree(d *server.Derivation) pterm.TreeNode {
	var ll pterm.LeveledList
	d.Walk(func(node *server.Derivation, depth int) {
		ll = append(ll, pterm.LeveledListItem{
			Level: depth,
			Text:  derivationLabel(node),
		})
	})
	return pterm.NewTreeFromLeveledList(ll)
}

func derivationLabel(d *server.Derivation) string {
	if d.Word != "" {
		return fmt.Sprintf("%s  %s", d.Category, d.Word)
	}
	return fmt.Sprintf("%s  (%s)", d.Category, d.Rule)
}
