// Package ast defines the Gerber document's node types.
//
// Node is a closed tagged variant: every command recognized by the parser
// maps to exactly one concrete type below, and every concrete type knows how
// to re-emit itself as Gerber text. This replaces the base-class-plus-
// instanceof dispatch spec.md §9 calls out as a source-language artifact —
// in Go, a small interface implemented by a fixed set of structs, matched
// with a type switch, gives the same closed-variant guarantee without
// virtual dispatch.
package ast

import "fmt"

// Node is implemented by every AST variant. Serialize reproduces the
// original command byte-for-byte, modulo whitespace and the canonical form
// chosen below (e.g. "%FSLAX26Y26*%").
type Node interface {
	Serialize() string
}

// ZeroOmission selects which end of a coordinate literal's digit string may
// be truncated by the Gerber writer.
type ZeroOmission int

const (
	Leading ZeroOmission = iota
	Trailing
)

func (z ZeroOmission) letter() string {
	if z == Trailing {
		return "T"
	}
	return "L"
}

// CoordinateMode selects whether coordinates are absolute or incremental.
type CoordinateMode int

const (
	Absolute CoordinateMode = iota
	Incremental
)

func (c CoordinateMode) letter() string {
	if c == Incremental {
		return "I"
	}
	return "A"
}

// Unit is the measurement system declared by a UnitMode (MO) command.
type Unit int

const (
	Millimetres Unit = iota
	Inches
)

func (u Unit) code() string {
	if u == Inches {
		return "IN"
	}
	return "MM"
}

// InterpolationMode is the drawing mode set by G01/G02/G03/G74/G75.
type InterpolationMode int

const (
	Linear InterpolationMode = iota
	CircularCW
	CircularCCW
	SingleQuadrant
	MultiQuadrant
)

func (m InterpolationMode) code() string {
	switch m {
	case CircularCW:
		return "G02"
	case CircularCCW:
		return "G03"
	case SingleQuadrant:
		return "G74"
	case MultiQuadrant:
		return "G75"
	default:
		return "G01"
	}
}

// Polarity is the modal value set by a LoadPolarity (LP) command.
type Polarity int

const (
	Dark Polarity = iota
	Clear
)

func (p Polarity) code() string {
	if p == Clear {
		return "C"
	}
	return "D"
}

// Mirroring is the modal value set by a LoadMirroring (LM) command.
type Mirroring int

const (
	MirrorNone Mirroring = iota
	MirrorX
	MirrorY
	MirrorXY
)

func (m Mirroring) code() string {
	switch m {
	case MirrorX:
		return "X"
	case MirrorY:
		return "Y"
	case MirrorXY:
		return "XY"
	default:
		return "N"
	}
}

// DCode is the drawing operation a coordinate command performs.
type DCode int

const (
	Interpolate DCode = 1 // D01
	Move        DCode = 2 // D02
	Flash       DCode = 3 // D03
)

// FormatSpecification declares how integer coordinate literals are to be
// interpreted as fixed-point reals. Once present in a document, it governs
// every subsequent Operation's numeric fields.
type FormatSpecification struct {
	ZeroOmission   ZeroOmission
	CoordinateMode CoordinateMode
	XInteger       int
	XDecimal       int
	YInteger       int
	YDecimal       int
}

func (f FormatSpecification) Serialize() string {
	return fmt.Sprintf("%%FS%s%sX%d%dY%d%d*%%",
		f.ZeroOmission.letter(), f.CoordinateMode.letter(),
		f.XInteger, f.XDecimal, f.YInteger, f.YDecimal)
}

// UnitMode declares the measurement unit (MM or IN) for the rest of the
// document.
type UnitMode struct {
	Unit Unit
}

func (u UnitMode) Serialize() string {
	return fmt.Sprintf("%%MO%s*%%", u.Unit.code())
}

// Comment is a human-readable G04 annotation; it has no effect on graphics
// state.
type Comment struct {
	Text string
}

func (c Comment) Serialize() string {
	return fmt.Sprintf("G04 %s*", c.Text)
}

// RegionStart (G36) opens region mode: subsequent D01/D02 operations trace a
// filled contour instead of strokes.
type RegionStart struct{}

func (RegionStart) Serialize() string { return "G36*" }

// RegionEnd (G37) closes the region opened by the most recent RegionStart.
type RegionEnd struct{}

func (RegionEnd) Serialize() string { return "G37*" }

// EndOfFile (M00/M02) terminates the command stream.
type EndOfFile struct{}

func (EndOfFile) Serialize() string { return "M02*" }

// SetInterpolationMode changes the interpolation mode (G01/G02/G03/G74/G75)
// without itself carrying a coordinate operation.
type SetInterpolationMode struct {
	Mode InterpolationMode
}

func (s SetInterpolationMode) Serialize() string {
	return s.Mode.code() + "*"
}

// UnknownCommand preserves the raw text of any command or extended block the
// parser does not recognize, so that serialization remains byte-faithful.
type UnknownCommand struct {
	Raw string
}

func (u UnknownCommand) Serialize() string { return u.Raw }
