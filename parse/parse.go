// Package parse turns a token.Token stream into ast.Node values.
//
// Dispatch is a straight prefix match on each token's value string, in the
// order documented in spec.md §4.2 — first match wins. Nothing here
// consults earlier nodes (a FormatSpecification's digit counts, say); that
// kind of context-sensitive interpretation is the renderer's job, replaying
// the node sequence against graphics state. The parser's only job is
// recognizing shapes.
package parse

import (
	"strconv"
	"strings"

	"gerberts/ast"
	"gerberts/internal/fixedpoint"
	"gerberts/token"
)

// Nodes parses src end to end and returns its ordered node sequence
// (excluding the EOF sentinel token, which produces no node of its own —
// an explicit ast.EndOfFile node only appears when the source contains an
// M00/M02 command).
func Nodes(src string) []ast.Node {
	toks := token.Tokenize(src)
	nodes := make([]ast.Node, 0, len(toks))
	for _, t := range toks {
		switch t.Kind {
		case token.ExtendedBlock:
			nodes = append(nodes, parseExtended(t.Value))
		case token.Command:
			nodes = append(nodes, parseCommand(t.Value))
		case token.EOF:
			// sentinel; produces no node
		}
	}
	return nodes
}

var gCodeModes = map[string]ast.InterpolationMode{
	"G01": ast.Linear,
	"G1":  ast.Linear,
	"G02": ast.CircularCW,
	"G2":  ast.CircularCW,
	"G03": ast.CircularCCW,
	"G3":  ast.CircularCCW,
	"G74": ast.SingleQuadrant,
	"G75": ast.MultiQuadrant,
}

// gCodeModeOrder lists the map's keys longest-prefix-first so that "G01"
// is tried before a hypothetical shorter match could steal it.
var gCodeModeOrder = []string{"G01", "G02", "G03", "G74", "G75", "G1", "G2", "G3"}

var endOfFileCommands = map[string]bool{
	"M00": true, "M0": true, "M02": true, "M2": true,
}

func parseCommand(value string) ast.Node {
	s := strings.TrimSpace(value)

	if mode, ok := gCodeModes[s]; ok {
		return ast.SetInterpolationMode{Mode: mode}
	}
	if s == "G36" {
		return ast.RegionStart{}
	}
	if s == "G37" {
		return ast.RegionEnd{}
	}
	if endOfFileCommands[s] {
		return ast.EndOfFile{}
	}
	if strings.HasPrefix(s, "G04") {
		return ast.Comment{Text: strings.TrimSpace(s[len("G04"):])}
	}
	if n, ok := bareApertureSelect(s); ok {
		if sel, err := ast.NewSelectAperture(n); err == nil {
			return sel
		}
	}

	// Operation, optionally prefixed by a G-code that also changes the
	// interpolation mode (the "tagged" form of spec.md §4.2).
	rest := s
	var mode *ast.InterpolationMode
	for _, prefix := range gCodeModeOrder {
		if strings.HasPrefix(s, prefix) {
			m := gCodeModes[prefix]
			mode = &m
			rest = s[len(prefix):]
			break
		}
	}
	if op, ok := parseOperation(rest, mode); ok {
		return op
	}

	return ast.UnknownCommand{Raw: s + "*"}
}

// bareApertureSelect recognizes a command that is nothing but "D" followed
// by a code of 10 or more (spec.md §4.2: "D<n> with n >= 10").
func bareApertureSelect(s string) (int, bool) {
	if len(s) < 3 || s[0] != 'D' {
		return 0, false
	}
	digits := s[1:]
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 10 {
		return 0, false
	}
	return n, true
}

func parseOperation(rest string, mode *ast.InterpolationMode) (ast.Operation, bool) {
	f := fixedpoint.Scan(rest)
	if !f.HasD || (f.D != int(ast.Interpolate) && f.D != int(ast.Move) && f.D != int(ast.Flash)) {
		return ast.Operation{}, false
	}
	return ast.Operation{
		DCode: ast.DCode(f.D),
		X:     f.X,
		Y:     f.Y,
		I:     f.I,
		J:     f.J,
		Mode:  mode,
	}, true
}
