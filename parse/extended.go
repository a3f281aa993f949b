package parse

import (
	"strconv"
	"strings"

	"gerberts/ast"
)

// parseExtended dispatches a "%...%" block's inner text (as captured by the
// tokenizer, markers already stripped) to the matching ast.Node variant.
func parseExtended(inner string) ast.Node {
	s := strings.TrimSuffix(inner, "*")

	switch {
	case strings.HasPrefix(s, "FS"):
		return parseFormatSpecification(s[2:])
	case strings.HasPrefix(s, "MO"):
		return ast.UnitMode{Unit: parseUnit(s[2:])}
	case strings.HasPrefix(s, "AD"):
		return parseApertureDefinition(s[2:])
	case strings.HasPrefix(s, "AM"):
		return parseApertureMacro(s[2:])
	case strings.HasPrefix(s, "LP"):
		return ast.LoadPolarity{Polarity: parsePolarity(s[2:])}
	case strings.HasPrefix(s, "LM"):
		return ast.LoadMirroring{Mirroring: parseMirroring(s[2:])}
	case strings.HasPrefix(s, "LR"):
		return ast.LoadRotation{Degrees: parseFloatOrZero(s[2:])}
	case strings.HasPrefix(s, "LS"):
		return ast.LoadScaling{Factor: parseFloatOrZero(s[2:])}
	case strings.HasPrefix(s, "SR"):
		return parseStepRepeat(s[2:])
	case strings.HasPrefix(s, "TF."):
		name, values := parseAttributeBody(s[3:])
		return ast.FileAttribute{Name: name, Values: values}
	case strings.HasPrefix(s, "TA."):
		name, values := parseAttributeBody(s[3:])
		return ast.ApertureAttribute{Name: name, Values: values}
	case strings.HasPrefix(s, "TO."):
		name, values := parseAttributeBody(s[3:])
		return ast.ObjectAttribute{Name: name, Values: values}
	case strings.HasPrefix(s, "TD"):
		return ast.DeleteAttribute{Name: s[2:]}
	case strings.HasPrefix(s, "IP"):
		return ast.SetImagePolarity{Value: s[2:]}
	case strings.HasPrefix(s, "OF"):
		return ast.SetOffset{Value: s[2:]}
	default:
		return ast.UnknownCommand{Raw: "%" + inner + "%"}
	}
}

func parseFormatSpecification(s string) ast.FormatSpecification {
	fs := ast.FormatSpecification{}
	if len(s) > 0 {
		if s[0] == 'T' {
			fs.ZeroOmission = ast.Trailing
		} else {
			fs.ZeroOmission = ast.Leading
		}
	}
	if len(s) > 1 {
		if s[1] == 'I' {
			fs.CoordinateMode = ast.Incremental
		} else {
			fs.CoordinateMode = ast.Absolute
		}
	}
	xi := strings.IndexByte(s, 'X')
	if xi >= 0 && xi+2 < len(s) {
		fs.XInteger = digitOrZero(s[xi+1])
		fs.XDecimal = digitOrZero(s[xi+2])
	}
	yi := strings.IndexByte(s, 'Y')
	if yi >= 0 && yi+2 < len(s) {
		fs.YInteger = digitOrZero(s[yi+1])
		fs.YDecimal = digitOrZero(s[yi+2])
	}
	return fs
}

func digitOrZero(b byte) int {
	if b >= '0' && b <= '9' {
		return int(b - '0')
	}
	return 0
}

func parseUnit(s string) ast.Unit {
	if strings.Contains(s, "IN") {
		return ast.Inches
	}
	return ast.Millimetres
}

// parseApertureDefinition implements spec.md §4.2's "ADD<code><template>
// [,<params>]" pattern, falling back to code=10/template="C" for garbage
// input per §4.2's error policy ("the only place where the parser
// guesses").
func parseApertureDefinition(s string) ast.ApertureDefinition {
	s = strings.TrimPrefix(s, "D")
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return ast.ApertureDefinition{Code: 10, Template: ast.TemplateCircle}
	}
	code, _ := strconv.Atoi(s[:i])
	rest := s[i:]

	var template, paramStr string
	if comma := strings.IndexByte(rest, ','); comma >= 0 {
		template, paramStr = rest[:comma], rest[comma+1:]
	} else {
		template = rest
	}
	if template == "" {
		template = ast.TemplateCircle
	}

	var params []float64
	if paramStr != "" {
		for _, p := range strings.Split(paramStr, "X") {
			if v, err := strconv.ParseFloat(p, 64); err == nil {
				params = append(params, v)
			}
		}
	}
	return ast.ApertureDefinition{Code: code, Template: template, Params: params}
}

func parseApertureMacro(s string) ast.ApertureMacro {
	star := strings.IndexByte(s, '*')
	if star < 0 {
		return ast.ApertureMacro{Name: s}
	}
	return ast.ApertureMacro{Name: s[:star], Body: s[star+1:]}
}

func parsePolarity(s string) ast.Polarity {
	if s == "C" {
		return ast.Clear
	}
	return ast.Dark
}

func parseMirroring(s string) ast.Mirroring {
	switch s {
	case "X":
		return ast.MirrorX
	case "Y":
		return ast.MirrorY
	case "XY":
		return ast.MirrorXY
	default:
		return ast.MirrorNone
	}
}

func parseFloatOrZero(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseStepRepeat(s string) ast.StepRepeat {
	sr := ast.StepRepeat{XCount: 1, YCount: 1}
	fields := splitLetterFields(s)
	if v, ok := fields['X']; ok {
		if n, err := strconv.Atoi(v); err == nil {
			sr.XCount = n
		}
	}
	if v, ok := fields['Y']; ok {
		if n, err := strconv.Atoi(v); err == nil {
			sr.YCount = n
		}
	}
	if v, ok := fields['I']; ok {
		sr.IStep = parseFloatOrZero(v)
	}
	if v, ok := fields['J']; ok {
		sr.JStep = parseFloatOrZero(v)
	}
	return sr
}

func parseAttributeBody(s string) (string, []string) {
	parts := strings.Split(s, ",")
	if len(parts) == 0 {
		return "", nil
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return parts[0], parts[1:]
}

// splitLetterFields scans a run of "<LETTER><value>" pairs (value read up
// to the next uppercase letter or end of string), used by commands like SR
// whose fields are real numbers rather than the fixed-point integers
// internal/fixedpoint handles.
func splitLetterFields(s string) map[byte]string {
	fields := make(map[byte]string)
	n := len(s)
	for i := 0; i < n; {
		letter := s[i]
		if letter < 'A' || letter > 'Z' {
			i++
			continue
		}
		i++
		start := i
		for i < n && !(s[i] >= 'A' && s[i] <= 'Z') {
			i++
		}
		fields[letter] = s[start:i]
	}
	return fields
}
