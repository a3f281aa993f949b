package fixedpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gerberts/internal/fixedpoint"
)

func TestScan(t *testing.T) {
	f := fixedpoint.Scan("X1000000Y1000000D01")
	require.NotNil(t, f.X)
	require.NotNil(t, f.Y)
	assert.Equal(t, int64(1000000), *f.X)
	assert.Equal(t, int64(1000000), *f.Y)
	assert.True(t, f.HasD)
	assert.Equal(t, 1, f.D)
}

func TestScanNegativeAndOmittedAxis(t *testing.T) {
	f := fixedpoint.Scan("X-500000D02")
	require.NotNil(t, f.X)
	assert.Equal(t, int64(-500000), *f.X)
	assert.Nil(t, f.Y)
	assert.True(t, f.HasD)
	assert.Equal(t, 2, f.D)
}

func TestScanArcFields(t *testing.T) {
	f := fixedpoint.Scan("I500000J0D01")
	require.NotNil(t, f.I)
	require.NotNil(t, f.J)
	assert.Equal(t, int64(500000), *f.I)
	assert.Equal(t, int64(0), *f.J)
}

func TestScanNoDCode(t *testing.T) {
	f := fixedpoint.Scan("X0Y0")
	assert.False(t, f.HasD)
}

func TestScanMalformedLiteralLeftAbsent(t *testing.T) {
	f := fixedpoint.Scan("Xabc Y0D02")
	assert.Nil(t, f.X)
	require.NotNil(t, f.Y)
	assert.Equal(t, int64(0), *f.Y)
}
