// Package document holds a parsed Gerber file as an ordered node sequence
// and offers the typed accessors and round-trip serialization spec.md §4.3
// describes. It is the only component that wires the tokenizer and parser
// together for callers — ast and parse are otherwise independent of it.
package document

import (
	"strings"

	"github.com/pkg/errors"

	"gerberts/ast"
	"gerberts/parse"
)

// Document is an ordered sequence of ast.Node, exclusively owned by the
// Document value itself. Nodes are immutable after construction; the only
// supported mutation is appending via AddCommand/EnsureEndOfFile.
type Document struct {
	Nodes []ast.Node
}

// Parse tokenizes and parses source into a new Document.
func Parse(source string) *Document {
	return &Document{Nodes: parse.Nodes(source)}
}

// ParseGerberFile is an alias of Parse matching spec.md §6's named library
// entry point.
func ParseGerberFile(source string) *Document {
	return Parse(source)
}

// ParseOne is the single fallible entry point in this library's surface
// (spec.md §7): it parses source and requires exactly one resulting node.
func ParseOne(source string) (ast.Node, error) {
	nodes := parse.Nodes(source)
	if len(nodes) != 1 {
		return nil, errors.Errorf("document: expected exactly one node, got %d", len(nodes))
	}
	return nodes[0], nil
}

// GetString concatenates every node's serialization with a single newline
// separator and a trailing newline, per spec.md §4.3's round-trip contract.
func (d *Document) GetString() string {
	var b strings.Builder
	for _, n := range d.Nodes {
		b.WriteString(n.Serialize())
		b.WriteByte('\n')
	}
	return b.String()
}

// AddCommand appends x to the document. If x is a string, it is parsed and
// every resulting node is appended in order; otherwise x must be an
// ast.Node, which is appended directly.
func (d *Document) AddCommand(x interface{}) {
	switch v := x.(type) {
	case string:
		d.Nodes = append(d.Nodes, parse.Nodes(v)...)
	case ast.Node:
		d.Nodes = append(d.Nodes, v)
	}
}

// EnsureEndOfFile appends an ast.EndOfFile node if the sequence does not
// already contain one.
func (d *Document) EnsureEndOfFile() {
	for _, n := range d.Nodes {
		if _, ok := n.(ast.EndOfFile); ok {
			return
		}
	}
	d.Nodes = append(d.Nodes, ast.EndOfFile{})
}

// FormatSpecification returns the document's format specification, if any.
func (d *Document) FormatSpecification() (ast.FormatSpecification, bool) {
	for _, n := range d.Nodes {
		if fs, ok := n.(ast.FormatSpecification); ok {
			return fs, true
		}
	}
	return ast.FormatSpecification{}, false
}

// UnitMode returns the document's declared unit mode, if any.
func (d *Document) UnitMode() (ast.UnitMode, bool) {
	for _, n := range d.Nodes {
		if u, ok := n.(ast.UnitMode); ok {
			return u, true
		}
	}
	return ast.UnitMode{}, false
}

// ApertureDefinitions returns every ApertureDefinition node in document
// order.
func (d *Document) ApertureDefinitions() []ast.ApertureDefinition {
	var out []ast.ApertureDefinition
	for _, n := range d.Nodes {
		if ad, ok := n.(ast.ApertureDefinition); ok {
			out = append(out, ad)
		}
	}
	return out
}

// FileAttributes returns every FileAttribute node in document order.
func (d *Document) FileAttributes() []ast.FileAttribute {
	var out []ast.FileAttribute
	for _, n := range d.Nodes {
		if fa, ok := n.(ast.FileAttribute); ok {
			out = append(out, fa)
		}
	}
	return out
}

// Operations returns every Operation node in document order.
func (d *Document) Operations() []ast.Operation {
	var out []ast.Operation
	for _, n := range d.Nodes {
		if op, ok := n.(ast.Operation); ok {
			out = append(out, op)
		}
	}
	return out
}

// Comments returns every Comment node in document order.
func (d *Document) Comments() []ast.Comment {
	var out []ast.Comment
	for _, n := range d.Nodes {
		if c, ok := n.(ast.Comment); ok {
			out = append(out, c)
		}
	}
	return out
}
