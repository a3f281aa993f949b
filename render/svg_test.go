package render_test

import (
	"image"
	"math"
	"strings"
	"testing"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerberts/document"
	"gerberts/render"
)

// rasterizes svgText to confirm it is a well-formed, drawable SVG document.
// This exercises the render package's output against a real SVG rasterizer;
// it is test tooling only, not a shipped raster feature (see DESIGN.md).
func rasterize(t *testing.T, svgText string) *oksvg.SvgIcon {
	t.Helper()
	icon, err := oksvg.ReadIconStream(strings.NewReader(svgText))
	require.NoError(t, err)

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	require.Greater(t, w, 0)
	require.Greater(t, h, 0)

	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)

	return icon
}

func TestRenderLineTrace(t *testing.T) {
	doc := document.Parse("%FSLAX26Y26*%\n%MOMM*%\n%ADD10C,0.1*%\nD10*\nX0Y0D02*\nX1000000Y1000000D01*\nM02*\n")
	svg := render.GerberToSVG(doc)

	assert.Contains(t, svg, `<line x1="0" y1="0" x2="1" y2="1"`)
	assert.Contains(t, svg, `stroke-width="0.1"`)
	rasterize(t, svg)
}

func TestRenderCircularFlash(t *testing.T) {
	doc := document.Parse("%FSLAX26Y26*%\n%MOMM*%\n%ADD10C,0.5*%\nD10*\nX500000Y500000D03*\nM02*\n")
	svg := render.GerberToSVG(doc)

	assert.Contains(t, svg, `<circle cx="0.5" cy="0.5" r="0.25"`)
	rasterize(t, svg)
}

func TestRenderRectangularFlash(t *testing.T) {
	doc := document.Parse("%FSLAX26Y26*%\n%MOMM*%\n%ADD10R,1X0.5*%\nD10*\nX500000Y500000D03*\nM02*\n")
	svg := render.GerberToSVG(doc)

	assert.Contains(t, svg, `<rect x="0" y="0.25" width="1" height="0.5"`)
	rasterize(t, svg)
}

func TestRenderObroundFlashUsesRoundedRect(t *testing.T) {
	doc := document.Parse("%FSLAX26Y26*%\n%MOMM*%\n%ADD10O,1X0.5*%\nD10*\nX500000Y500000D03*\nM02*\n")
	svg := render.GerberToSVG(doc)

	assert.Contains(t, svg, `rx="0.25"`)
	assert.Contains(t, svg, `ry="0.25"`)
	rasterize(t, svg)
}

func TestRenderRegionEmitsFilledPath(t *testing.T) {
	doc := document.Parse("%FSLAX26Y26*%\n%MOMM*%\nG36*\nX0Y0D02*\nX1000000Y0D01*\nX1000000Y1000000D01*\nX0Y0D01*\nG37*\nM02*\n")
	svg := render.GerberToSVG(doc)

	assert.Contains(t, svg, `<path d="M 0 0 L 1 0 L 1 1 L 0 0 Z"`)
	assert.Contains(t, svg, `fill-rule="evenodd"`)
	rasterize(t, svg)
}

func TestRenderNoDrawingCommandsStillProducesValidEnvelope(t *testing.T) {
	doc := document.Parse("%FSLAX26Y26*%\n%MOMM*%\nM02*\n")
	svg := render.GerberToSVG(doc)

	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "</svg>")
	rasterize(t, svg)
}

func TestRenderHonorsCustomOptions(t *testing.T) {
	doc := document.Parse("%FSLAX26Y26*%\n%MOMM*%\n%ADD10C,0.5*%\nD10*\nX500000Y500000D03*\nM02*\n")
	svg := render.GerberToSVG(doc, render.Options{
		Scale:           2,
		StrokeColor:     "#f00",
		FillColor:       "#0f0",
		BackgroundColor: "#fff",
		Padding:         0,
	})

	assert.Contains(t, svg, `fill="#0f0"`)
	assert.Contains(t, svg, `<rect x="0.25" y="0.25" width="0.5" height="0.5" fill="#fff"/>`)
	rasterize(t, svg)
}
