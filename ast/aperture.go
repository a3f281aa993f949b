package ast

import (
	"strconv"
	"strings"
)

// Standard aperture templates. A template may also be the name of an
// ApertureMacro defined earlier in the document.
const (
	TemplateCircle  = "C"
	TemplateRect    = "R"
	TemplateObround = "O"
	TemplatePolygon = "P"
)

// ApertureDefinition (AD) declares a numbered aperture: a circle, rectangle,
// obround, regular polygon, or a reference to an ApertureMacro by name.
type ApertureDefinition struct {
	Code     int
	Template string
	Params   []float64
}

func (a ApertureDefinition) Serialize() string {
	var b strings.Builder
	b.WriteString("%ADD")
	b.WriteString(strconv.Itoa(a.Code))
	b.WriteString(a.Template)
	if len(a.Params) > 0 {
		b.WriteByte(',')
		for i, p := range a.Params {
			if i > 0 {
				b.WriteByte('X')
			}
			b.WriteString(formatFloat(p))
		}
	}
	b.WriteString("*%")
	return b.String()
}

// ApertureMacro (AM) stores a macro's name and raw primitive body. The body
// is never evaluated by this module (spec.md Non-goals); it is kept
// structurally so that round-trip serialization is exact.
type ApertureMacro struct {
	Name string
	Body string
}

func (m ApertureMacro) Serialize() string {
	return "%AM" + m.Name + "*" + m.Body + "*%"
}

// SelectAperture (Dnn, nn >= 10) selects a previously defined aperture as
// the current tool.
type SelectAperture struct {
	Code int
}

// NewSelectAperture validates the aperture-code invariant of spec.md §8
// (Invariant 5): codes below 10 are reserved for D01/D02/D03 and cannot
// name an aperture.
func NewSelectAperture(code int) (SelectAperture, error) {
	if code < 10 {
		return SelectAperture{}, &InvalidApertureCodeError{Code: code}
	}
	return SelectAperture{Code: code}, nil
}

func (s SelectAperture) Serialize() string {
	return "D" + strconv.Itoa(s.Code) + "*"
}

// InvalidApertureCodeError reports an attempt to select an aperture code
// reserved for D01/D02/D03.
type InvalidApertureCodeError struct {
	Code int
}

func (e *InvalidApertureCodeError) Error() string {
	return "ast: aperture code " + strconv.Itoa(e.Code) + " is reserved (must be >= 10)"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
