package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// FromYAML decodes a YAML or JSON catalog document. Mapping order is kept,
// aliases are followed and merge keys are expanded in place, with explicit
// keys taking precedence. Only string
// scalars are leaves.
func FromYAML(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	// empty document
	if doc.Kind == 0 {
		return Branch{}, nil
	}

	return fromYAML(&doc, nil)
}

func fromYAML(n *yaml.Node, path []string) (Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Branch{}, nil
		}
		return fromYAML(n.Content[0], path)
	case yaml.AliasNode:
		return fromYAML(n.Alias, path)
	case yaml.ScalarNode:
		if n.ShortTag() != "!!str" {
			return nil, &SchemaError{Path: strings.Join(path, "."), Kind: strings.TrimPrefix(n.ShortTag(), "!!")}
		}
		return Leaf(n.Value), nil
	case yaml.MappingNode:
		return fromYAMLMapping(n, path)
	case yaml.SequenceNode:
		return nil, &SchemaError{Path: strings.Join(path, "."), Kind: "sequence"}
	default:
		return nil, &SchemaError{Path: strings.Join(path, "."), Kind: fmt.Sprintf("yaml kind %d", n.Kind)}
	}
}

// fromYAMLMapping applies merge keys the YAML way: explicit keys override
// merged ones in the merged key's position, and earlier merges win over later
// ones. Explicit keys repeated within the mapping are kept so the duplicate
// policy sees them.
func fromYAMLMapping(n *yaml.Node, path []string) (Branch, error) {
	var (
		branch   = make(Branch, 0, len(n.Content)/2)
		position = make(map[string]int, len(n.Content)/2)
		explicit = make(map[string]bool, len(n.Content)/2)
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, &SchemaError{Path: strings.Join(path, "."), Kind: "non-scalar key"}
		}

		if k.ShortTag() == "!!merge" {
			merged, err := fromYAMLMerge(v, path)
			if err != nil {
				return nil, err
			}
			for _, field := range merged {
				if _, ok := position[field.Key]; ok {
					continue
				}
				position[field.Key] = len(branch)
				branch = append(branch, field)
			}
			continue
		}

		child, err := fromYAML(v, append(slices.Clip(path), k.Value))
		if err != nil {
			return nil, err
		}

		if at, ok := position[k.Value]; ok && !explicit[k.Value] {
			branch[at].Node = child
			explicit[k.Value] = true
			continue
		}

		position[k.Value] = len(branch)
		explicit[k.Value] = true
		branch = append(branch, Field{Key: k.Value, Node: child})
	}

	return branch, nil
}

// fromYAMLMerge expands "<<: *anchor" and "<<: [*a, *b]".
func fromYAMLMerge(v *yaml.Node, path []string) (Branch, error) {
	if v.Kind == yaml.AliasNode {
		v = v.Alias
	}

	switch v.Kind {
	case yaml.MappingNode:
		return fromYAMLMapping(v, path)
	case yaml.SequenceNode:
		var merged Branch
		for _, item := range v.Content {
			b, err := fromYAMLMerge(item, path)
			if err != nil {
				return nil, err
			}
			merged = append(merged, b...)
		}
		return merged, nil
	default:
		return nil, &SchemaError{Path: strings.Join(path, "."), Kind: "merge of a non-mapping"}
	}
}
