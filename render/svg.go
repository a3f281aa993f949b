// Package render replays a document.Document's node sequence against a
// graphics state to produce an SVG preview. It is the renderer component of
// spec.md §4.4: a total function (no node kind can make it fail), operating
// in a single pass, in document order.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gerberts/ast"
	"gerberts/document"
)

// GerberToSVG renders doc to an SVG document, matching spec.md §6's named
// entry point `renderGerberToSvg(doc, options?)`. opts is variadic so
// callers may omit it entirely and get DefaultOptions().
func GerberToSVG(doc *document.Document, opts ...Options) string {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	s := newGraphicsState()
	for _, n := range doc.Nodes {
		replay(s, n, o)
	}
	return assemble(s, o)
}

func replay(s *graphicsState, n ast.Node, o Options) {
	switch v := n.(type) {
	case ast.FormatSpecification:
		fs := v
		s.format = &fs
	case ast.UnitMode:
		s.unit = v.Unit
	case ast.ApertureDefinition:
		s.apertures[v.Code] = v
	case ast.SelectAperture:
		if ap, ok := s.apertures[v.Code]; ok {
			s.aperture = &ap
		} else {
			s.aperture = nil
		}
	case ast.SetInterpolationMode:
		applyMode(s, v.Mode)
	case ast.LoadPolarity:
		s.polarity = v.Polarity
	case ast.RegionStart:
		s.regionMode = true
		s.regionPath = ""
		s.hasRegionPath = false
	case ast.RegionEnd:
		if s.hasRegionPath {
			s.regionPaths = append(s.regionPaths, s.regionPath+" Z")
		}
		s.regionMode = false
		s.regionPath = ""
		s.hasRegionPath = false
	case ast.Operation:
		if v.Mode != nil {
			applyMode(s, *v.Mode)
		}
		replayOperation(s, v, o)
	default:
		// structurally preserved, no rendering effect (ApertureMacro,
		// LoadMirroring/Rotation/Scaling, StepRepeat, attributes,
		// Comment, EndOfFile, UnknownCommand, legacy IP/OF).
	}
}

// applyMode updates the interpolation mode for modes that affect rendering;
// SingleQuadrant/MultiQuadrant govern arc quadrant semantics this core does
// not implement and are ignored here (spec.md §4.4).
func applyMode(s *graphicsState, mode ast.InterpolationMode) {
	switch mode {
	case ast.Linear, ast.CircularCW, ast.CircularCCW:
		s.mode = mode
	}
}

func replayOperation(s *graphicsState, op ast.Operation, o Options) {
	xDec, yDec := s.decimalDigits()
	newX, newY := s.x, s.y
	if op.X != nil {
		newX = float64(*op.X) / math.Pow10(xDec)
	}
	if op.Y != nil {
		newY = float64(*op.Y) / math.Pow10(yDec)
	}
	s.bbox.point(newX, newY)

	switch op.DCode {
	case ast.Interpolate:
		if s.regionMode {
			if !s.hasRegionPath {
				s.regionPath = fmt.Sprintf("M %s %s", fnum(s.x), fnum(s.y))
				s.hasRegionPath = true
			}
			s.regionPath += fmt.Sprintf(" L %s %s", fnum(newX), fnum(newY))
		} else if s.aperture != nil {
			width := apertureWidth(s.aperture)
			s.traces = append(s.traces, fmt.Sprintf(
				`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="%s" stroke-linecap="round"/>`,
				fnum(s.x), fnum(s.y), fnum(newX), fnum(newY), o.StrokeColor, fnum(width)))
		}
	case ast.Move:
		if s.regionMode && s.hasRegionPath {
			s.regionPath += fmt.Sprintf(" M %s %s", fnum(newX), fnum(newY))
		}
	case ast.Flash:
		if s.aperture != nil {
			s.flashes = append(s.flashes, flashShape(s, newX, newY, o))
		}
	}

	s.x, s.y = newX, newY
}

func flashShape(s *graphicsState, cx, cy float64, o Options) string {
	ap := s.aperture
	switch ap.Template {
	case ast.TemplateCircle:
		d := param(ap.Params, 0, 0)
		r := d / 2
		s.bbox.disk(cx, cy, r)
		return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, fnum(cx), fnum(cy), fnum(r), o.FillColor)
	case ast.TemplateRect:
		w := param(ap.Params, 0, 0)
		h := param(ap.Params, 1, w)
		s.bbox.point(cx-w/2, cy-h/2)
		s.bbox.point(cx+w/2, cy+h/2)
		return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			fnum(cx-w/2), fnum(cy-h/2), fnum(w), fnum(h), o.FillColor)
	case ast.TemplateObround:
		w := param(ap.Params, 0, 0)
		h := param(ap.Params, 1, w)
		rad := math.Min(w, h) / 2
		s.bbox.point(cx-w/2, cy-h/2)
		s.bbox.point(cx+w/2, cy+h/2)
		return fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s" rx="%s" ry="%s" fill="%s"/>`,
			fnum(cx-w/2), fnum(cy-h/2), fnum(w), fnum(h), fnum(rad), fnum(rad), o.FillColor)
	default:
		const r = 0.005
		s.bbox.disk(cx, cy, r)
		return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s"/>`, fnum(cx), fnum(cy), fnum(r), o.FillColor)
	}
}

func param(p []float64, i int, fallback float64) float64 {
	if i < len(p) {
		return p[i]
	}
	return fallback
}

func assemble(s *graphicsState, o Options) string {
	minX, minY, maxX, maxY := 0.0, 0.0, 0.0, 0.0
	if s.bbox.set {
		minX, minY, maxX, maxY = s.bbox.minX, s.bbox.minY, s.bbox.maxX, s.bbox.maxY
	}
	viewMinX := minX - o.Padding
	viewMinY := minY - o.Padding
	viewMaxX := maxX + o.Padding
	viewMaxY := maxY + o.Padding
	width := viewMaxX - viewMinX
	height := viewMaxY - viewMinY

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		fnum(width*o.Scale), fnum(height*o.Scale), fnum(width), fnum(height))
	fmt.Fprintf(&b, `<g transform="translate(0, %s) scale(1, -1) translate(%s, %s)">`+"\n",
		fnum(height), fnum(-viewMinX), fnum(-viewMinY))

	if o.BackgroundColor != "none" {
		fmt.Fprintf(&b, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			fnum(viewMinX), fnum(viewMinY), fnum(width), fnum(height), o.BackgroundColor)
	}
	for _, p := range s.regionPaths {
		fmt.Fprintf(&b, `<path d="%s" fill-rule="evenodd" fill="%s"/>`+"\n", p, o.FillColor)
	}
	for _, t := range s.traces {
		b.WriteString(t)
		b.WriteByte('\n')
	}
	for _, f := range s.flashes {
		b.WriteString(f)
		b.WriteByte('\n')
	}

	b.WriteString("</g>\n</svg>\n")
	return b.String()
}

// fnum formats a coordinate/length with enough precision to round-trip but
// without the noise of Go's default float formatting.
func fnum(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return s
}
