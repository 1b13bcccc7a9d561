package catalog

import (
	"strings"

	"github.com/hueseek/hueseek/rgba"
	"golang.org/x/exp/slices"
)

// Entry is a named reference color. Name is the dot-joined key path from the
// catalog root to the leaf.
type Entry struct {
	Name  string     `json:"name" jsonschema:"description=Dot-joined path of the color in the catalog"`
	Color rgba.Color `json:"color"`
}

// Flatten walks root depth-first and returns one Entry per leaf in document
// order. root is not modified. A root that is itself a leaf yields a single
// entry with an empty name.
func Flatten(root Node, opts ...Option) ([]Entry, error) {
	f := flattener{
		policy: newOptions(opts).duplicates,
		index:  make(map[string]int),
	}

	if err := f.visit(root, nil); err != nil {
		return nil, err
	}

	if f.entries == nil {
		return []Entry{}, nil
	}
	return f.entries, nil
}

type flattener struct {
	policy  Duplicates
	entries []Entry
	index   map[string]int
}

func (f *flattener) visit(n Node, path []string) error {
	switch n := n.(type) {
	case Leaf:
		name := strings.Join(path, ".")
		color, err := rgba.Parse(string(n))
		if err != nil {
			return &ParseError{Path: name, Value: string(n), Err: err}
		}
		return f.emit(Entry{Name: name, Color: color})
	case Branch:
		for _, field := range n {
			// Clip so sibling appends never share a backing array.
			if err := f.visit(field.Node, append(slices.Clip(path), field.Key)); err != nil {
				return err
			}
		}
		return nil
	case nil:
		return &SchemaError{Path: strings.Join(path, "."), Kind: "nil"}
	default:
		return &SchemaError{Path: strings.Join(path, "."), Kind: "unknown node"}
	}
}

func (f *flattener) emit(e Entry) error {
	if i, ok := f.index[e.Name]; ok {
		if f.policy != LastWins {
			return &DuplicateNameError{Name: e.Name}
		}
		f.entries[i].Color = e.Color
		return nil
	}

	f.index[e.Name] = len(f.entries)
	f.entries = append(f.entries, e)
	return nil
}
