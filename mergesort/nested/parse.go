package nested

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Parse reads a bracket literal such as "[1,[2,3],[]]" or a bare integer.
// Only integer scalars and flow sequences are accepted; anything else
// (strings, maps, aliases, block sequences) yields ErrMalformed.
func Parse(s string) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(s), &doc); err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return Value{}, fmt.Errorf("%w: %q is empty", ErrMalformed, s)
	}
	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode && root.Style&yaml.FlowStyle == 0 {
		return Value{}, fmt.Errorf("%w: %q is not a bracket list", ErrMalformed, s)
	}
	return fromNode(root)
}

// MustParse is like Parse but panics on error. Intended for literals in tests
// and examples.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromNode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.ShortTag() != "!!int" {
			return Value{}, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformed, n.Line, n.Value)
		}
		i, err := strconv.Atoi(n.Value)
		if err != nil {
			return Value{}, fmt.Errorf("%w: line %d: %v", ErrMalformed, n.Line, err)
		}
		return Int(i), nil
	case yaml.SequenceNode:
		items := make([]Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return List(items...), nil
	default:
		return Value{}, fmt.Errorf("%w: line %d: unexpected %s", ErrMalformed, n.Line, kindName(n.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "node"
	}
}
