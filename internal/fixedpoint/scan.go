// Package fixedpoint scans the X/Y/I/J/D operand letters out of a Gerber
// command string without resorting to regular expressions.
//
// Gerber packs an entire draw/move/flash operation into one token, e.g.
// "X1000000Y-500000D01". The grammar is simple enough that a single pass
// over the bytes — read a letter, then an optional sign, then digits, until
// the next letter or the end of the string — is both faster and more
// obviously correct than a regexp (see spec.md's design notes: "Prefer a
// small byte-by-byte state machine over the command's characters").
package fixedpoint

import "strconv"

// Fields holds the operand letters recognized in a D01/D02/D03 operation.
// A pointer field is nil when the corresponding letter was absent from the
// command, which under Gerber's modal rules means "keep the previous value".
type Fields struct {
	X, Y, I, J *int64
	D          int
	HasD       bool
}

// Scan walks s (e.g. "X0Y0D02", "X1000000Y1000000D01", "I500J0D01") and
// extracts the X, Y, I, J, and D fields. Unrecognized letters and malformed
// numeric runs are skipped rather than treated as errors: a field that fails
// to parse is left unset, which the renderer later treats as "carry
// forward the modal value" per spec.md §7.
func Scan(s string) Fields {
	var f Fields
	n := len(s)
	for i := 0; i < n; {
		letter := s[i]
		i++
		start := i
		for i < n && !isLetter(s[i]) {
			i++
		}
		lit := s[start:i]
		switch letter {
		case 'X':
			f.X = parseSigned(lit)
		case 'Y':
			f.Y = parseSigned(lit)
		case 'I':
			f.I = parseSigned(lit)
		case 'J':
			f.J = parseSigned(lit)
		case 'D':
			if v, err := strconv.Atoi(lit); err == nil {
				f.D = v
				f.HasD = true
			}
		}
	}
	return f
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// parseSigned reads an optional leading sign followed by decimal digits. It
// returns nil if lit contains no digits at all (an omitted or malformed
// field), matching the "treated as absent" error policy of spec.md §7.
func parseSigned(lit string) *int64 {
	if lit == "" {
		return nil
	}
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil
	}
	return &v
}
