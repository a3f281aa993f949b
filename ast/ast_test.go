package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerberts/ast"
)

func TestSerialize(t *testing.T) {
	i64 := func(v int64) *int64 { return &v }

	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{
			name: "format specification",
			node: ast.FormatSpecification{ZeroOmission: ast.Leading, CoordinateMode: ast.Absolute, XInteger: 2, XDecimal: 6, YInteger: 2, YDecimal: 6},
			want: "%FSLAX26Y26*%",
		},
		{
			name: "unit mode mm",
			node: ast.UnitMode{Unit: ast.Millimetres},
			want: "%MOMM*%",
		},
		{
			name: "unit mode inches",
			node: ast.UnitMode{Unit: ast.Inches},
			want: "%MOIN*%",
		},
		{
			name: "aperture definition with params",
			node: ast.ApertureDefinition{Code: 10, Template: ast.TemplateCircle, Params: []float64{0.1}},
			want: "%ADD10C,0.1*%",
		},
		{
			name: "aperture definition rectangle two params",
			node: ast.ApertureDefinition{Code: 11, Template: ast.TemplateRect, Params: []float64{1.0, 0.5}},
			want: "%ADD11R,1X0.5*%",
		},
		{
			name: "aperture macro",
			node: ast.ApertureMacro{Name: "DONUTVAR", Body: "\n1,1,$1,$2,$3"},
			want: "%AMDONUTVAR*\n1,1,$1,$2,$3*%",
		},
		{
			name: "comment",
			node: ast.Comment{Text: "hello world"},
			want: "G04 hello world*",
		},
		{
			name: "region start",
			node: ast.RegionStart{},
			want: "G36*",
		},
		{
			name: "region end",
			node: ast.RegionEnd{},
			want: "G37*",
		},
		{
			name: "end of file",
			node: ast.EndOfFile{},
			want: "M02*",
		},
		{
			name: "select aperture",
			node: ast.SelectAperture{Code: 10},
			want: "D10*",
		},
		{
			name: "operation plain",
			node: ast.Operation{DCode: ast.Interpolate, X: i64(1000000), Y: i64(1000000)},
			want: "X1000000Y1000000D01*",
		},
		{
			name: "operation move no coords",
			node: ast.Operation{DCode: ast.Move},
			want: "D02*",
		},
		{
			name: "file attribute",
			node: ast.FileAttribute{Name: "GenerationSoftware", Values: []string{"gerberts", "1.0.0"}},
			want: "%TF.GenerationSoftware,gerberts,1.0.0*%",
		},
		{
			name: "delete attribute all",
			node: ast.DeleteAttribute{},
			want: "%TD*%",
		},
		{
			name: "delete attribute named",
			node: ast.DeleteAttribute{Name: "FileFunction"},
			want: "%TDFileFunction*%",
		},
		{
			name: "unknown command",
			node: ast.UnknownCommand{Raw: "%G54D10*%"},
			want: "%G54D10*%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Serialize())
		})
	}
}

func TestNewSelectApertureRejectsLowCodes(t *testing.T) {
	_, err := ast.NewSelectAperture(5)
	require.Error(t, err)

	sel, err := ast.NewSelectAperture(10)
	require.NoError(t, err)
	assert.Equal(t, 10, sel.Code)
}
