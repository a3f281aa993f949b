package render

import "gerberts/ast"

// defaultDecimalDigits is used for coordinate conversion when no
// FormatSpecification has been seen yet (spec.md §7: "Render-time missing
// format spec... Default decimal-digits = 4 assumed").
const defaultDecimalDigits = 4

// bbox accumulates the drawing bounding box across a replay pass. It starts
// empty (set == false) and widens to cover every drawn primitive.
type bbox struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

func (b *bbox) point(x, y float64) {
	if !b.set {
		b.minX, b.minY, b.maxX, b.maxY = x, y, x, y
		b.set = true
		return
	}
	if x < b.minX {
		b.minX = x
	}
	if y < b.minY {
		b.minY = y
	}
	if x > b.maxX {
		b.maxX = x
	}
	if y > b.maxY {
		b.maxY = y
	}
}

func (b *bbox) disk(cx, cy, r float64) {
	b.point(cx-r, cy-r)
	b.point(cx+r, cy+r)
}

// graphicsState is the single mutable replay context spec.md §4.4
// describes: current point, selected aperture, interpolation mode, region
// mode, polarity, unit, format, bounding box, and the three output
// accumulators. One graphicsState is built and consumed per render call; it
// is never reused across documents (spec.md §5).
type graphicsState struct {
	x, y       float64
	apertures  map[int]ast.ApertureDefinition
	aperture   *ast.ApertureDefinition
	mode       ast.InterpolationMode
	regionMode bool
	polarity   ast.Polarity
	unit       ast.Unit
	format     *ast.FormatSpecification
	bbox       bbox

	regionPaths []string
	traces      []string
	flashes     []string

	regionPath    string
	hasRegionPath bool
}

func newGraphicsState() *graphicsState {
	return &graphicsState{
		apertures: make(map[int]ast.ApertureDefinition),
		mode:      ast.Linear,
		polarity:  ast.Dark,
		unit:      ast.Inches,
	}
}

func (s *graphicsState) decimalDigits() (x, y int) {
	if s.format == nil {
		return defaultDecimalDigits, defaultDecimalDigits
	}
	return s.format.XDecimal, s.format.YDecimal
}

// apertureWidth implements spec.md §4.4's documented heuristic: the first
// parameter of the current aperture is used as a stroke width regardless of
// template (a known limitation carried over from the source; see
// DESIGN.md).
func apertureWidth(ap *ast.ApertureDefinition) float64 {
	if ap == nil || len(ap.Params) == 0 {
		return 0
	}
	return ap.Params[0]
}
