package chart

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// We use a tiny context-free grammar in Chomsky normal form for testing,
// with categories being plain strings:
//
//     S  ➞ NP VP
//     VP ➞ V NP
//     NP ➞ Det N  |  NP PP
//     PP ➞ P NP
//     VP ➞ VP PP
//
type toyGrammar struct {
	words map[string][]string
	rules map[string][]string
}

func makeToyGrammar() *toyGrammar {
	return &toyGrammar{
		words: map[string][]string{
			"John":      {"NP"},
			"Mary":      {"NP"},
			"sees":      {"V"},
			"a":         {"Det"},
			"dog":       {"N"},
			"telescope": {"N"},
			"with":      {"P"},
		},
		rules: map[string][]string{
			"NP VP": {"S"},
			"V NP":  {"VP"},
			"Det N": {"NP"},
			"NP PP": {"NP"},
			"P NP":  {"PP"},
			"VP PP": {"VP"},
		},
	}
}

func (g *toyGrammar) TerminalCategories(word string) []string {
	return g.words[word]
}

func (g *toyGrammar) Combine(left, right string) []string {
	return g.rules[left+" "+right]
}

type labelingToyGrammar struct {
	*toyGrammar
}

func (g labelingToyGrammar) CombineLabeled(left, right string) []Labeled[string] {
	var labeled []Labeled[string]
	for _, c := range g.Combine(left, right) {
		labeled = append(labeled, Labeled[string]{Value: c, Rule: c + "→" + left + "·" + right})
	}
	return labeled
}

func count(cats []string, c string) int {
	n := 0
	for _, x := range cats {
		if x == c {
			n++
		}
	}
	return n
}

func TestParseSimple(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.chart")
	defer teardown()
	//
	g := makeToyGrammar()
	result := Parse(strings.Fields("John sees a dog"), g)
	if len(result) != 1 || result[0] != "S" {
		t.Errorf("expected [S], got %v", result)
	}
	if result = Parse(strings.Fields("sees John a dog"), g); len(result) != 0 {
		t.Errorf("expected no result for ungrammatical input, got %v", result)
	}
}

func TestParseEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.chart")
	defer teardown()
	//
	if result := Parse(nil, makeToyGrammar()); len(result) != 0 {
		t.Errorf("expected empty result for empty input, got %v", result)
	}
	c := Build([]string{}, makeToyGrammar())
	if c.Len() != 0 || c.Size() != 0 || len(c.Result()) != 0 {
		t.Errorf("expected empty chart")
	}
}

func TestParseUnknownWord(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.chart")
	defer teardown()
	//
	c := Build(strings.Fields("John sees a unicorn"), makeToyGrammar())
	if len(c.Result()) != 0 {
		t.Errorf("expected no result, got %v", c.Result())
	}
	if len(c.Cell(3, 1)) != 0 {
		t.Errorf("expected empty terminal cell for unknown word")
	}
	if cats := c.Cell(0, 2); len(cats) != 0 {
		t.Errorf("expected no categories for 'John sees', got %v", cats)
	}
	if cats := c.Cell(1, 1); len(cats) != 1 || cats[0] != "V" {
		t.Errorf("expected [V] for 'sees', got %v", cats)
	}
}

func TestAmbiguity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.chart")
	defer teardown()
	//
	tracer().SetTraceLevel(tracing.LevelDebug)
	input := strings.Fields("John sees a dog with a telescope")
	c := Build(input, makeToyGrammar())
	c.Dump()
	result := c.Result()
	if count(result, "S") != 2 {
		t.Errorf("expected 2 readings (PP attachment), got %v", result)
	}
	if c.Len() != 7 {
		t.Errorf("expected chart of length 7, is %d", c.Len())
	}
	if c.Edges(5, 3) != nil || c.Edges(-1, 1) != nil || c.Edges(0, 0) != nil {
		t.Errorf("expected nil for spans outside of the chart")
	}
}

func TestDeterministic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.chart")
	defer teardown()
	//
	g := makeToyGrammar()
	input := strings.Fields("John sees a dog with a telescope with a telescope")
	r1 := Parse(input, g)
	r2 := Parse(input, g)
	if strings.Join(r1, ",") != strings.Join(r2, ",") {
		t.Errorf("parsing twice gives different results: %v vs %v", r1, r2)
	}
	r3 := Parse(input, g, Parallel(4))
	if strings.Join(r1, ",") != strings.Join(r3, ",") {
		t.Errorf("parallel parse differs: %v vs %v", r1, r3)
	}
	if count(r1, "S") != 5 {
		t.Errorf("expected 5 readings, got %d", count(r1, "S"))
	}
}

func TestDerivations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.chart")
	defer teardown()
	//
	input := strings.Fields("John sees Mary")
	c := Build(input, labelingToyGrammar{makeToyGrammar()})
	roots := c.Derivations()
	if len(roots) != 1 {
		t.Fatalf("expected 1 derivation, got %d", len(roots))
	}
	root := roots[0]
	if root.Rule != "S→NP·VP" || root.Span.Len() != 3 {
		t.Errorf("unexpected root edge %v %s %s", root.Value, root.Rule, root.Span)
	}
	var lines []string
	root.Walk(func(e *Edge[string], depth int) {
		lines = append(lines, strings.Repeat(" ", depth)+e.Value+" "+e.Span.String())
	})
	expected := []string{
		"S (0…3)",
		" NP (0…1)",
		" VP (1…3)",
		"  V (1…2)",
		"  NP (2…3)",
	}
	if strings.Join(lines, "\n") != strings.Join(expected, "\n") {
		t.Errorf("unexpected derivation:\n%s", strings.Join(lines, "\n"))
	}
	if !root.Left.IsTerminal() || root.Left.Rule != LexRule {
		t.Errorf("expected left child to be a terminal")
	}
	// grammar without labels yields empty rule names
	plain := Build(input, makeToyGrammar())
	if plain.Derivations()[0].Rule != "" {
		t.Errorf("expected no rule label")
	}
}

func TestMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ccg.chart")
	defer teardown()
	//
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	Parse(strings.Fields("John sees Mary"), makeToyGrammar(), WithMetrics(m))
	if v := testutil.ToFloat64(m.Parses); v != 1 {
		t.Errorf("expected 1 parse, got %v", v)
	}
	// 2 pairs for spans of length 2, 1 pair for the complete input
	if v := testutil.ToFloat64(m.Combinations); v != 3 {
		t.Errorf("expected 3 combinations, got %v", v)
	}
	if v := testutil.ToFloat64(m.Edges); v != 5 {
		t.Errorf("expected 5 edges, got %v", v)
	}
	if n, err := testutil.GatherAndCount(reg); err != nil || n != 6 {
		t.Errorf("expected 6 registered metrics, got %d (%v)", n, err)
	}
}
