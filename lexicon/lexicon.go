package lexicon

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/npillmayer/ccg/feature"
	"github.com/npillmayer/ccg/grammar"
	"github.com/npillmayer/ccg/notation"
	"gopkg.in/yaml.v3"
)

// Payload kinds of a lexicon.
const (
	Features = "features"
	Labels   = "labels"
)

// Header holds the settings of a lexicon file.
type Header struct {
	Name    string              `mapstructure:"name"`
	Payload string              `mapstructure:"payload"`
	Policy  string              `mapstructure:"policy"`
	Types   map[string][]string `mapstructure:"types"`
}

// Entry is a word together with its categories, in textual notation.
type Entry struct {
	Word       string
	Categories []string
}

// File is a lexicon read from YAML.
type File struct {
	Header
	Entries []Entry
}

// Load reads a lexicon from r.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read lexicon: %w", err)
	}
	var doc yaml.Node
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed lexicon: %w", err)
	}
	if len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("malformed lexicon: expected a mapping at top level")
	}
	root := doc.Content[0]
	var raw map[string]interface{}
	if err = root.Decode(&raw); err != nil {
		return nil, fmt.Errorf("malformed lexicon: %w", err)
	}
	f := &File{}
	if err = mapstructure.Decode(raw, &f.Header); err != nil {
		return nil, fmt.Errorf("malformed lexicon header: %w", err)
	}
	if f.Payload == "" {
		f.Payload = Features
	}
	if f.Payload != Features && f.Payload != Labels {
		return nil, fmt.Errorf("lexicon %s: unknown payload %q", f.Name, f.Payload)
	}
	if _, err = f.policy(); err != nil {
		return nil, err
	}
	// entries are read from the node tree, as maps do not keep their order
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "entries" {
			continue
		}
		if f.Entries, err = readEntries(root.Content[i+1]); err != nil {
			return nil, fmt.Errorf("lexicon %s: %w", f.Name, err)
		}
	}
	tracer().Debugf("loaded lexicon %q with %d entries", f.Name, len(f.Entries))
	return f, nil
}

func readEntries(node *yaml.Node) ([]Entry, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: entries must be a mapping", node.Line)
	}
	var entries []Entry
	for i := 0; i+1 < len(node.Content); i += 2 {
		word, value := node.Content[i].Value, node.Content[i+1]
		e := Entry{Word: word}
		switch value.Kind {
		case yaml.ScalarNode:
			e.Categories = []string{value.Value}
		case yaml.SequenceNode:
			if err := value.Decode(&e.Categories); err != nil {
				return nil, fmt.Errorf("line %d: entry %q: %w", value.Line, word, err)
			}
		default:
			return nil, fmt.Errorf("line %d: entry %q: expected a category or a list of categories",
				value.Line, word)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// LoadFile reads a lexicon from a YAML file.
func LoadFile(filename string) (*File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (f *File) policy() (feature.Policy, error) {
	switch strings.ToLower(f.Policy) {
	case "", "open":
		return feature.OpenWorld, nil
	case "closed":
		return feature.ClosedWorld, nil
	}
	return feature.OpenWorld, fmt.Errorf("lexicon %s: unknown policy %q", f.Name, f.Policy)
}

// Hierarchy returns the type hierarchy of a lexicon, or nil if it has none.
func (f *File) Hierarchy() (*feature.Hierarchy, error) {
	if len(f.Types) == 0 {
		return nil, nil
	}
	h := feature.NewHierarchy()
	for typ, parents := range f.Types {
		h.Define(typ, parents...)
	}
	if err := h.Check(); err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", f.Name, err)
	}
	return h, nil
}

// Unifier creates a unifier configured by the lexicon's header.
func (f *File) Unifier() (*feature.Unifier, error) {
	policy, err := f.policy()
	if err != nil {
		return nil, err
	}
	h, err := f.Hierarchy()
	if err != nil {
		return nil, err
	}
	opts := []feature.Option{feature.WithPolicy(policy)}
	if h != nil {
		opts = append(opts, feature.WithTypes(h))
	}
	return feature.NewUnifier(opts...), nil
}

// FeatureLexicon parses all categories of the lexicon, with feature
// structure payloads.
func (f *File) FeatureLexicon() (*grammar.Lexicon[*feature.Struct], error) {
	lex := grammar.NewLexicon[*feature.Struct]()
	for _, e := range f.Entries {
		for _, s := range e.Categories {
			c, err := notation.ParseFeatures(s)
			if err != nil {
				return nil, fmt.Errorf("lexicon %s: entry %q: %w", f.Name, e.Word, err)
			}
			lex.Add(e.Word, c)
		}
	}
	return lex, nil
}

// LabelLexicon parses all categories of the lexicon, with plain label
// payloads.
func (f *File) LabelLexicon() (*grammar.Lexicon[string], error) {
	lex := grammar.NewLexicon[string]()
	for _, e := range f.Entries {
		for _, s := range e.Categories {
			c, err := notation.ParseLabel(s)
			if err != nil {
				return nil, fmt.Errorf("lexicon %s: entry %q: %w", f.Name, e.Word, err)
			}
			lex.Add(e.Word, c)
		}
	}
	return lex, nil
}

// FeatureGrammar creates a grammar for the lexicon, with feature structure
// payloads. It works for label lexicons, too, as labels are valid structures
// without features.
func (f *File) FeatureGrammar(opts ...grammar.Option) (*grammar.CCG[*feature.Struct, feature.Env], error) {
	u, err := f.Unifier()
	if err != nil {
		return nil, err
	}
	lex, err := f.FeatureLexicon()
	if err != nil {
		return nil, err
	}
	return grammar.NewFeatureGrammar(lex, u, opts...), nil
}

// LabelGrammar creates a grammar for the lexicon, with plain label payloads.
// Lexicons using feature structures are rejected.
func (f *File) LabelGrammar(opts ...grammar.Option) (*grammar.CCG[string, struct{}], error) {
	lex, err := f.LabelLexicon()
	if err != nil {
		return nil, err
	}
	return grammar.NewLabelGrammar(lex, opts...), nil
}

// --- Built-in lexicons -----------------------------------------------------

//go:embed data/*.yaml
var builtins embed.FS

// Builtins returns the names of the built-in lexicons.
func Builtins() []string {
	dir, err := builtins.ReadDir("data")
	if err != nil {
		panic(err) // cannot happen for embedded files
	}
	var names []string
	for _, e := range dir {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

// Builtin returns a built-in lexicon by name.
func Builtin(name string) (*File, error) {
	data, err := builtins.ReadFile(path.Join("data", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("no built-in lexicon %q", name)
	}
	return Load(bytes.NewReader(data))
}

// Open returns a built-in lexicon if name denotes one, otherwise it loads
// the lexicon from a file.
func Open(name string) (*File, error) {
	for _, b := range Builtins() {
		if b == name {
			return Builtin(name)
		}
	}
	return LoadFile(name)
}
