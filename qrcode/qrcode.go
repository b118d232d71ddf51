/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 * Modeled after https://github.com/nayuki/QR-Code-generator.
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

// Package qrcode assembles encoded segments into a finished QR Code Model 2
// symbol: it selects the minimal viable version and error correction
// level, splits and interleaves codewords with Reed-Solomon parity, lays
// out the function patterns and data modules of the module matrix, and
// picks (or applies) a mask.
package qrcode

import (
	"fmt"
	"strings"

	"github.com/qrforge/qrforge/internal/bitx"
	"github.com/qrforge/qrforge/internal/capacity"
	"github.com/qrforge/qrforge/internal/rs"
	"github.com/qrforge/qrforge/qrecc"
	"github.com/qrforge/qrforge/qrsegment"
)

// The minimum and maximum symbol versions (side lengths) supported:
// version 1 is 21x21 modules, version 40 is 177x177 modules.
const (
	MinVersion = 1
	MaxVersion = 40
)

// Penalty weights used by the standard's four masking-penalty rules.
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// Symbol is a finished QR Code Model 2 symbol: a square grid of light/dark
// modules, built by EncodeSegments/EncodeText/EncodeBinary. A returned
// Symbol is well-formed by construction; there is no separate validity
// check to run against it.
type Symbol struct {
	version int
	size    int
	level   qrecc.Level
	mask    int
	modules [][]bool

	// isFunction marks modules that are never touched by masking. It is
	// only needed while the matrix is under construction and is released
	// (set to nil) once the symbol is finished.
	isFunction [][]bool
}

// Version returns the symbol's version, in [MinVersion, MaxVersion].
func (s *Symbol) Version() int { return s.version }

// Size returns the symbol's side length in modules (4*version + 17).
func (s *Symbol) Size() int { return s.size }

// ErrorCorrectionLevel returns the error correction level actually used to
// build this symbol (which may be higher than requested if ECC boosting
// was enabled and there was room for it).
func (s *Symbol) ErrorCorrectionLevel() qrecc.Level { return s.level }

// Mask returns the mask pattern, in [0, 7], applied to this symbol.
func (s *Symbol) Mask() int { return s.mask }

// GetModule reports whether the module at (x, y) is dark. Any coordinate
// outside [0, Size()) is reported as light rather than failing, so callers
// can probe around the symbol's border without bounds-checking first.
func (s *Symbol) GetModule(x, y int) bool {
	if x < 0 || x >= s.size || y < 0 || y >= s.size {
		return false
	}
	return s.modules[y][x]
}

// options collects the parameters EncodeSegments accepts, in the manner of
// the teacher's functional-options encoder configuration.
type options struct {
	minVersion int
	maxVersion int
	mask       int // -1 means automatic selection.
	boostECL   bool
}

// Option configures an EncodeSegments call.
type Option func(*options)

// WithMinVersion sets the minimum symbol version EncodeSegments may choose.
func WithMinVersion(version int) Option {
	return func(o *options) { o.minVersion = version }
}

// WithMaxVersion sets the maximum symbol version EncodeSegments may choose.
func WithMaxVersion(version int) Option {
	return func(o *options) { o.maxVersion = version }
}

// WithMask forces a specific mask pattern in [0, 7] instead of automatic
// selection.
func WithMask(mask int) Option {
	return func(o *options) { o.mask = mask }
}

// WithAutoMask restores automatic mask selection (the default).
func WithAutoMask() Option {
	return func(o *options) { o.mask = -1 }
}

// WithBoostECL enables or disables opportunistically raising the error
// correction level when the chosen version has spare capacity (enabled by
// default).
func WithBoostECL(boost bool) Option {
	return func(o *options) { o.boostECL = boost }
}

// EncodeText encodes text as a QR Code symbol at the given error
// correction level, automatically choosing a single mode for the whole
// text (see qrsegment.MakeSegments).
func EncodeText(text string, level qrecc.Level) (*Symbol, error) {
	return EncodeSegments(qrsegment.MakeSegments(text), level)
}

// EncodeBinary encodes an arbitrary byte sequence as a single byte-mode
// segment QR Code symbol at the given error correction level.
func EncodeBinary(data []byte, level qrecc.Level) (*Symbol, error) {
	return EncodeSegments([]qrsegment.Segment{qrsegment.MakeBytes(data)}, level)
}

// EncodeSegments builds a QR Code symbol from one or more segments at the
// given error correction level, honoring the supplied options. By default,
// the minimum version is searched from 1 to 40, the mask is chosen
// automatically, and the ECC level is boosted when the chosen version has
// spare capacity.
func EncodeSegments(segs []qrsegment.Segment, level qrecc.Level, opts ...Option) (*Symbol, error) {
	o := options{minVersion: MinVersion, maxVersion: MaxVersion, mask: -1, boostECL: true}
	for _, opt := range opts {
		opt(&o)
	}

	if o.minVersion < MinVersion || o.maxVersion > MaxVersion || o.maxVersion < o.minVersion {
		return nil, fmt.Errorf("qrcode: invalid version range [%d, %d]", o.minVersion, o.maxVersion)
	}
	if o.mask < -1 || o.mask > 7 {
		return nil, fmt.Errorf("qrcode: mask value out of range: %d", o.mask)
	}

	// Find the minimal version that fits the segments at the requested level.
	version := o.minVersion
	var usedBits int
	for {
		capacityBits := capacity.NumDataCodewords(level, version) * 8
		usedBits = qrsegment.TotalBits(segs, version)
		if usedBits <= capacityBits {
			break
		}
		if version >= o.maxVersion {
			return nil, fmt.Errorf("qrcode: data too long: %d bits needed, %d bits available at version %d", usedBits, capacityBits, version)
		}
		version++
	}

	// Opportunistically raise the error correction level while the data
	// still fits in the chosen version.
	if o.boostECL {
		for _, candidate := range []qrecc.Level{qrecc.Medium, qrecc.Quartile, qrecc.High} {
			if usedBits <= capacity.NumDataCodewords(candidate, version)*8 {
				level = candidate
			}
		}
	}

	dataCodewords := assembleCodewords(segs, version, level, usedBits)

	size := version*4 + 17
	sym := &Symbol{
		version:    version,
		size:       size,
		level:      level,
		modules:    make([][]bool, size),
		isFunction: make([][]bool, size),
	}
	for i := range sym.modules {
		sym.modules[i] = make([]bool, size)
		sym.isFunction[i] = make([]bool, size)
	}

	sym.drawFunctionPatterns()
	allCodewords := sym.addEccAndInterleave(dataCodewords)
	sym.drawCodewords(allCodewords)
	sym.mask = sym.handleMasking(o.mask)
	sym.isFunction = nil

	return sym, nil
}

// assembleCodewords concatenates the segments' headers and bit data,
// appends the terminator/pad bits, and packs the result into data
// codeword bytes (§4.6 steps 1-5).
func assembleCodewords(segs []qrsegment.Segment, version int, level qrecc.Level, usedBits int) []byte {
	var bb bitx.Buffer
	for _, seg := range segs {
		bb.AppendBits(seg.Mode.Indicator(), 4)
		bb.AppendBits(seg.NumChars, seg.Mode.NumCharCountBits(version))
		bb = append(bb, seg.Data()...)
	}
	bitx.Assert(bb.Len() == usedBits, "assembled bit stream length mismatch")

	capacityBits := capacity.NumDataCodewords(level, version) * 8
	bitx.Assert(bb.Len() <= capacityBits, "assembled bit stream exceeds capacity")

	// Terminator: up to 4 zero bits, but never past capacity.
	terminatorLen := 4
	if rem := capacityBits - bb.Len(); rem < terminatorLen {
		terminatorLen = rem
	}
	bb.AppendBits(0, terminatorLen)

	// Pad to the next byte boundary.
	bb.AppendBits(0, (8-bb.Len()%8)%8)
	bitx.Assert(bb.Len()%8 == 0, "bit stream is not byte-aligned after padding")

	// Pad with alternating bytes until capacity is reached.
	for padByte := 0xEC; bb.Len() < capacityBits; padByte ^= 0xEC ^ 0x11 {
		bb.AppendBits(padByte, 8)
	}

	return bb.PackBytes()
}

// addEccAndInterleave splits data into the blocks prescribed for this
// symbol's version and level, appends Reed-Solomon parity to each block,
// and interleaves the blocks column-by-column (§4.6 steps 6-7).
func (s *Symbol) addEccAndInterleave(data []byte) []byte {
	bitx.Assert(len(data) == capacity.NumDataCodewords(s.level, s.version), "data is not the expected length")

	numBlocks := capacity.NumErrorCorrectionBlocks(s.level, s.version)
	blockEccLen := capacity.EccCodewordsPerBlock(s.level, s.version)
	rawCodewords := capacity.NumRawDataModules(s.version) / 8
	numShortBlocks := numBlocks - rawCodewords%numBlocks
	shortBlockLen := rawCodewords / numBlocks

	divisor := rs.ComputeDivisor(blockEccLen)

	// Every block array is allocated at the long block's size
	// (shortBlockLen+1 bytes of data, plus ECC): a short block's data
	// occupies one fewer leading byte and leaves a single zero gap byte
	// just before its ECC section, which interleaving below skips.
	blocks := make([][]byte, numBlocks)
	k := 0
	for i := 0; i < numBlocks; i++ {
		dataLen := shortBlockLen - blockEccLen
		if i >= numShortBlocks {
			dataLen++
		}
		chunk := data[k : k+dataLen]
		k += dataLen

		ecc := rs.ComputeRemainder(chunk, divisor)
		block := make([]byte, shortBlockLen+1)
		copy(block, chunk)
		copy(block[len(block)-len(ecc):], ecc)
		blocks[i] = block
	}

	result := make([]byte, 0, rawCodewords)
	for i := 0; i < len(blocks[0]); i++ {
		for j, block := range blocks {
			// Skip the padding gap byte in short blocks.
			if i == shortBlockLen-blockEccLen && j < numShortBlocks {
				continue
			}
			result = append(result, block[i])
		}
	}

	bitx.Assert(len(result) == rawCodewords, "interleaved codeword length mismatch")
	return result
}

// String returns a compact textual dump of the matrix, useful for
// debugging and doctests. It is not a renderer; rendering to an image
// format is outside this package's scope.
func (s *Symbol) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Symbol(version=%d, size=%d, level=%s, mask=%d)\n", s.version, s.size, s.level, s.mask)
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.modules[y][x] {
				sb.WriteString("##")
			} else {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToSVGString renders the symbol as a minimal SVG document with the given
// quiet-zone border width, expressed in modules. This is the thin,
// external-collaborator rendering path sketched by the core only insofar
// as it reads GetModule/Size; it performs no encoding work of its own.
func (s *Symbol) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("qrcode: border must be non-negative")
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	dim := s.size + border*2
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n", dim)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if !s.modules[y][x] {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}
