package capacity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qrforge/qrforge/qrecc"
)

func TestNumRawDataModules(t *testing.T) {
	tests := []struct {
		version int
		want    int
	}{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{13, 4256},
		{22, 10068},
		{32, 19723},
		{40, 29648},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumRawDataModules(tt.version), "version %d", tt.version)
	}
}

func TestNumDataCodewords(t *testing.T) {
	tests := []struct {
		version int
		level   qrecc.Level
		want    int
	}{
		{1, qrecc.Low, 19},
		{1, qrecc.Medium, 16},
		{1, qrecc.Quartile, 13},
		{1, qrecc.High, 9},
		{3, qrecc.Low, 55},
		{6, qrecc.Medium, 108},
		{7, qrecc.Quartile, 88},
		{40, qrecc.Low, 2956},
		{40, qrecc.High, 1276},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NumDataCodewords(tt.level, tt.version), "version %d level %v", tt.version, tt.level)
	}
}

func TestEccCodewordsPerBlockBoundaries(t *testing.T) {
	assert.Equal(t, 7, EccCodewordsPerBlock(qrecc.Low, 1))
	assert.Equal(t, 30, EccCodewordsPerBlock(qrecc.Low, 40))
	assert.Equal(t, 30, EccCodewordsPerBlock(qrecc.High, 40))
}

func TestNumErrorCorrectionBlocksBoundaries(t *testing.T) {
	assert.Equal(t, 1, NumErrorCorrectionBlocks(qrecc.Low, 1))
	assert.Equal(t, 25, NumErrorCorrectionBlocks(qrecc.Low, 40))
	assert.Equal(t, 81, NumErrorCorrectionBlocks(qrecc.High, 40))
}
