package grc

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// Kind identifies the shape of a decoded [Node].
type Kind int

// The possible kinds of a [Node].
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

// Node is one value in a decoded document: a null, a bool, a number, a
// string, an ordered array of Nodes, or an ordered object of Nodes.
//
// Object key order is preserved because resource-kind tags, macro
// definitions, and GDLG controls are all emitted in source order; a plain
// map[string]any loses that order on decode.
type Node struct {
	Kind Kind

	Bool  bool
	Int   int64
	Float float64
	Str   string

	Items []*Node

	keys   []string
	fields map[string]*Node
}

// Decode parses a JSON document into an ordered [Node] tree.
//
// JSON is valid YAML, so the document is parsed with goccy/go-yaml's AST
// parser, which preserves mapping key order natively via
// [ast.MappingNode]/[ast.MappingValueNode] -- exactly the representation
// needed to walk the document in source order.
func Decode(data []byte) (*Node, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	if len(file.Docs) == 0 {
		return &Node{Kind: KindObject, fields: map[string]*Node{}}, nil
	}

	return fromAST(file.Docs[0].Body)
}

func fromAST(node ast.Node) (*Node, error) {
	if node == nil {
		return &Node{Kind: KindNull}, nil
	}

	switch n := node.(type) {
	case *ast.MappingNode:
		return objectFromValues(n.Values)
	case *ast.MappingValueNode:
		return objectFromValues([]*ast.MappingValueNode{n})
	case *ast.SequenceNode:
		items := make([]*Node, 0, len(n.Values))

		for _, v := range n.Values {
			item, err := fromAST(v)
			if err != nil {
				return nil, err
			}

			items = append(items, item)
		}

		return &Node{Kind: KindArray, Items: items}, nil
	case *ast.NullNode:
		return &Node{Kind: KindNull}, nil
	case *ast.BoolNode:
		b, err := strconv.ParseBool(n.String())
		if err != nil {
			return &Node{Kind: KindString, Str: n.String()}, nil
		}

		return &Node{Kind: KindBool, Bool: b}, nil
	case *ast.IntegerNode:
		i, err := strconv.ParseInt(n.String(), 10, 64)
		if err != nil {
			return &Node{Kind: KindString, Str: n.String()}, nil
		}

		return &Node{Kind: KindInt, Int: i}, nil
	case *ast.FloatNode:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return &Node{Kind: KindString, Str: n.String()}, nil
		}

		return &Node{Kind: KindFloat, Float: f}, nil
	default:
		return &Node{Kind: KindString, Str: node.String()}, nil
	}
}

func objectFromValues(values []*ast.MappingValueNode) (*Node, error) {
	obj := &Node{
		Kind:   KindObject,
		fields: make(map[string]*Node, len(values)),
	}

	for _, mvn := range values {
		key := mvn.Key.String()

		val, err := fromAST(mvn.Value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}

		if _, exists := obj.fields[key]; !exists {
			obj.keys = append(obj.keys, key)
		}

		obj.fields[key] = val
	}

	return obj, nil
}

// IsObject reports whether the node is an object.
func (n *Node) IsObject() bool { return n != nil && n.Kind == KindObject }

// IsArray reports whether the node is an array.
func (n *Node) IsArray() bool { return n != nil && n.Kind == KindArray }

// IsNull reports whether the node is null, including a nil *Node itself.
func (n *Node) IsNull() bool { return n == nil || n.Kind == KindNull }

// Keys returns an object node's keys in source order. Returns nil for a
// non-object node.
func (n *Node) Keys() []string {
	if n == nil || n.Kind != KindObject {
		return nil
	}

	return n.keys
}

// Field returns an object node's value for key, or nil if absent or n is
// not an object.
func (n *Node) Field(key string) *Node {
	if n == nil || n.Kind != KindObject {
		return nil
	}

	return n.fields[key]
}

// Has reports whether an object node has key.
func (n *Node) Has(key string) bool {
	if n == nil || n.Kind != KindObject {
		return false
	}

	_, ok := n.fields[key]

	return ok
}
