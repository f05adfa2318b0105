// Package settings models the nested settings document that feeds template
// placeholders.
//
// A settings entry is either a scalar string, a list of alternative strings or
// a nested mapping. Value carries that distinction explicitly so lookups never
// have to guess the shape of what they got back.
package settings

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies which field of a Value is populated.
type Kind int

const (
	KindNone Kind = iota
	KindScalar
	KindList
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "none"
	}
}

// Value is a tagged settings value.
type Value struct {
	kind   Kind
	scalar string
	list   []string
	fields map[string]Value
}

func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

func List(items ...string) Value {
	return Value{kind: KindList, list: append([]string(nil), items...)}
}

func Map(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindMap, fields: fields}
}

func (v Value) Kind() Kind { return v.kind }

// String returns the scalar content. It is empty for non-scalar values.
func (v Value) String() string { return v.scalar }

// Items returns the alternatives of a list value.
func (v Value) Items() []string { return v.list }

// Lookup returns the entry stored under key. It reports false when v is not
// a mapping or the key is absent.
func (v Value) Lookup(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	child, ok := v.fields[key]
	return child, ok
}

// Len returns the number of list items or mapping entries.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return len(v.fields)
	default:
		return 0
	}
}

// UnmarshalYAML decodes a YAML node into a tagged value. Sequences must hold
// scalars only; null decodes to the zero Value.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			*v = Value{}
			return nil
		}
		return v.UnmarshalYAML(node.Content[0])

	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*v = Value{}
			return nil
		}
		*v = Scalar(node.Value)
		return nil

	case yaml.SequenceNode:
		items := make([]string, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.AliasNode && item.Alias != nil {
				item = item.Alias
			}
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: list items must be scalars", item.Line)
			}
			items = append(items, item.Value)
		}
		*v = List(items...)
		return nil

	case yaml.MappingNode:
		fields := make(map[string]Value, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, val := node.Content[i], node.Content[i+1]

			var child Value
			if err := child.UnmarshalYAML(val); err != nil {
				return fmt.Errorf("%s: %w", key.Value, err)
			}
			fields[key.Value] = child
		}
		*v = Map(fields)
		return nil
	}

	return fmt.Errorf("line %d: unsupported yaml node", node.Line)
}
