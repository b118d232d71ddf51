package qrcode

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qrforge/qrforge/internal/capacity"
	"github.com/qrforge/qrforge/qrecc"
	"github.com/qrforge/qrforge/qrmode"
	"github.com/qrforge/qrforge/qrsegment"
)

func TestEncodeTextHelloWorldQuartileBoost(t *testing.T) {
	sym, err := EncodeText("HELLO WORLD", qrecc.Quartile)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, 21, sym.Size())
	assert.Equal(t, qrecc.High, sym.ErrorCorrectionLevel())
	assert.True(t, sym.Mask() >= 0 && sym.Mask() <= 7)
}

func TestEncodeTextPureNumericChoosesNumericMode(t *testing.T) {
	segs := qrsegment.MakeSegments("01234567")
	require.Len(t, segs, 1)
	assert.Equal(t, qrmode.Numeric, segs[0].Mode)

	sym, err := EncodeText("01234567", qrecc.Medium)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())
}

func TestEncodeTextEmpty(t *testing.T) {
	sym, err := EncodeText("", qrecc.Low)
	require.NoError(t, err)
	assert.Equal(t, 1, sym.Version())
	assert.Equal(t, 21, sym.Size())
}

func TestEncodeBinaryMaximalVersion40(t *testing.T) {
	data := make([]byte, 2953)
	sym, err := EncodeBinary(data, qrecc.Low)
	require.NoError(t, err)
	assert.Equal(t, 40, sym.Version())
}

func TestEncodeBinaryTooLongFails(t *testing.T) {
	data := make([]byte, 2954)
	_, err := EncodeBinary(data, qrecc.Low)
	assert.Error(t, err)
}

func TestEncodeTextLowercaseIsByteMode(t *testing.T) {
	segs := qrsegment.MakeSegments("a")
	require.Len(t, segs, 1)
	assert.Equal(t, qrmode.Byte, segs[0].Mode)
}

func TestEncodeTextUTF8IsByteMode(t *testing.T) {
	segs := qrsegment.MakeSegments("héllo")
	require.Len(t, segs, 1)
	assert.Equal(t, qrmode.Byte, segs[0].Mode)
	assert.Equal(t, 6, segs[0].NumChars)
}

func TestVersionAndSizeInvariant(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		sym, err := EncodeSegments(nil, qrecc.Low, WithMinVersion(v), WithMaxVersion(v))
		require.NoError(t, err)
		assert.Equal(t, v, sym.Version())
		assert.Equal(t, v*4+17, sym.Size())
	}
}

func TestGetNumRawDataModulesRange(t *testing.T) {
	for v := MinVersion; v <= MaxVersion; v++ {
		r := capacity.NumRawDataModules(v)
		assert.GreaterOrEqual(t, r, 208)
		assert.LessOrEqual(t, r, 29648)
	}
}

func TestGetNumDataCodewordsNonNegative(t *testing.T) {
	for _, level := range []qrecc.Level{qrecc.Low, qrecc.Medium, qrecc.Quartile, qrecc.High} {
		for v := MinVersion; v <= MaxVersion; v++ {
			assert.GreaterOrEqual(t, capacity.NumDataCodewords(level, v), 0)
		}
	}
}

func TestGetModuleOutOfRangeIsLight(t *testing.T) {
	sym, err := EncodeText("TEST", qrecc.Low)
	require.NoError(t, err)
	assert.False(t, sym.GetModule(-1, 0))
	assert.False(t, sym.GetModule(0, -1))
	assert.False(t, sym.GetModule(sym.Size(), 0))
	assert.False(t, sym.GetModule(0, sym.Size()))
}

func TestMaskInvolution(t *testing.T) {
	sym, err := EncodeSegments(qrsegment.MakeSegments("MASK INVOLUTION TEST"), qrecc.Medium, WithMask(3))
	require.NoError(t, err)

	before := make([][]bool, sym.size)
	for i, row := range sym.modules {
		before[i] = append([]bool(nil), row...)
	}

	// isFunction was released after construction; rebuild a throwaway
	// all-false function-marker grid so applyMask's self-inverse property
	// is exercised over every module of the finished matrix.
	sym.isFunction = make([][]bool, sym.size)
	for i := range sym.isFunction {
		sym.isFunction[i] = make([]bool, sym.size)
	}

	sym.applyMask(3)
	sym.applyMask(3)

	assert.Equal(t, before, sym.modules)
}

func TestAutoMaskSelectionIsDeterministic(t *testing.T) {
	sym1, err := EncodeText("DETERMINISTIC MASK SELECTION", qrecc.Medium)
	require.NoError(t, err)
	sym2, err := EncodeText("DETERMINISTIC MASK SELECTION", qrecc.Medium)
	require.NoError(t, err)

	assert.Equal(t, sym1.Mask(), sym2.Mask())
	assert.Equal(t, sym1.modules, sym2.modules)
}

func TestBoostMonotonicity(t *testing.T) {
	symBoosted, err := EncodeSegments(qrsegment.MakeSegments("HELLO WORLD"), qrecc.Low, WithBoostECL(true))
	require.NoError(t, err)
	symUnboosted, err := EncodeSegments(qrsegment.MakeSegments("HELLO WORLD"), qrecc.Low, WithBoostECL(false))
	require.NoError(t, err)

	assert.GreaterOrEqual(t, symBoosted.ErrorCorrectionLevel().Ordinal(), qrecc.Low.Ordinal())
	assert.Equal(t, symUnboosted.Version(), symBoosted.Version())
}

func TestEncodeSegmentsRejectsInvalidVersionRange(t *testing.T) {
	_, err := EncodeSegments(nil, qrecc.Low, WithMinVersion(5), WithMaxVersion(2))
	assert.Error(t, err)

	_, err = EncodeSegments(nil, qrecc.Low, WithMinVersion(0))
	assert.Error(t, err)

	_, err = EncodeSegments(nil, qrecc.Low, WithMaxVersion(41))
	assert.Error(t, err)
}

func TestEncodeSegmentsRejectsInvalidMask(t *testing.T) {
	_, err := EncodeSegments(nil, qrecc.Low, WithMask(8))
	assert.Error(t, err)
	_, err = EncodeSegments(nil, qrecc.Low, WithMask(-2))
	assert.Error(t, err)
}

func TestAlignmentPatternPositions(t *testing.T) {
	assert.Empty(t, alignmentPatternPositions(1))
	assert.Equal(t, []int{6, 18}, alignmentPatternPositions(2))
	assert.Equal(t, []int{6, 26, 46, 66}, alignmentPatternPositions(14))
	pos32 := alignmentPatternPositions(32)
	assert.Equal(t, 6, pos32[0])
	assert.Equal(t, 32*4+17-7, pos32[len(pos32)-1])
}

func TestToSVGStringRejectsNegativeBorder(t *testing.T) {
	sym, err := EncodeText("X", qrecc.Low)
	require.NoError(t, err)
	_, err = sym.ToSVGString(-1, false)
	assert.Error(t, err)
}

func TestToSVGStringProducesPathForEachDarkModule(t *testing.T) {
	sym, err := EncodeText("X", qrecc.Low)
	require.NoError(t, err)
	svg, err := sym.ToSVGString(4, false)
	require.NoError(t, err)
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "<path")

	dark := 0
	for y := 0; y < sym.Size(); y++ {
		for x := 0; x < sym.Size(); x++ {
			if sym.GetModule(x, y) {
				dark++
			}
		}
	}
	assert.Equal(t, dark, strings.Count(svg, "h1v1h-1z"))
}

func TestStringDumpsModules(t *testing.T) {
	sym, err := EncodeText("X", qrecc.Low)
	require.NoError(t, err)
	s := sym.String()
	assert.Contains(t, s, fmt.Sprintf("version=%d", sym.Version()))
	// One header line plus one line per module row.
	assert.Equal(t, sym.Size()+1, strings.Count(s, "\n"))
}
