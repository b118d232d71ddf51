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
 */

package qrcode

import (
	"github.com/qrforge/qrforge/internal/bitx"
	"github.com/qrforge/qrforge/internal/capacity"
)

// setFunctionModule sets the module at (x, y) and marks it as a function
// module, which masking and data placement must never touch again.
func (s *Symbol) setFunctionModule(x, y int, isDark bool) {
	s.modules[y][x] = isDark
	s.isFunction[y][x] = true
}

// drawFunctionPatterns draws every function pattern: timing, the three
// finder patterns, alignment patterns, and placeholder format/version
// information (format bits are redrawn for real once a mask is chosen).
func (s *Symbol) drawFunctionPatterns() {
	for i := 0; i < s.size; i++ {
		s.setFunctionModule(6, i, i%2 == 0)
		s.setFunctionModule(i, 6, i%2 == 0)
	}

	s.drawFinderPattern(3, 3)
	s.drawFinderPattern(s.size-4, 3)
	s.drawFinderPattern(3, s.size-4)

	positions := alignmentPatternPositions(s.version)
	n := len(positions)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == 0 && j == 0 || i == 0 && j == n-1 || i == n-1 && j == 0 {
				continue // Skip the three finder corners.
			}
			s.drawAlignmentPattern(positions[i], positions[j])
		}
	}

	s.drawFormatBits(0)
	s.drawVersion()
}

// drawFinderPattern draws a 9x9 finder pattern (the 7x7 concentric-square
// marker plus its 1-module light separator), centred at (x, y). A module
// is dark iff its Chebyshev distance from the centre is neither 2 nor 4.
func (s *Symbol) drawFinderPattern(x, y int) {
	for dy := -4; dy <= 4; dy++ {
		for dx := -4; dx <= 4; dx++ {
			dist := maxInt(absInt(dx), absInt(dy))
			xx, yy := x+dx, y+dy
			if 0 <= xx && xx < s.size && 0 <= yy && yy < s.size {
				s.setFunctionModule(xx, yy, dist != 2 && dist != 4)
			}
		}
	}
}

// drawAlignmentPattern draws a 5x5 alignment pattern centred at (x, y). A
// module is dark iff its Chebyshev distance from the centre is not 1.
func (s *Symbol) drawAlignmentPattern(x, y int) {
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			s.setFunctionModule(x+dx, y+dy, maxInt(absInt(dx), absInt(dy)) != 1)
		}
	}
}

// alignmentPatternPositions returns the ascending list of alignment
// pattern coordinates (used on both axes) for the given version; empty
// for version 1.
func alignmentPatternPositions(version int) []int {
	if version == 1 {
		return nil
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // Special snowflake, per the standard.
		step = 26
	} else {
		step = (version*4+numAlign*2+1) / (numAlign*2 - 2) * 2
	}

	result := make([]int, numAlign)
	result[0] = 6
	pos := version*4 + 17 - 7
	for i := numAlign - 1; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}
	return result
}

// drawCodewords zig-zags the given interleaved codeword stream into every
// non-function module, two columns at a time, starting from the
// rightmost column pair and working left. Within a column pair, direction
// alternates so the scan snakes up and down the symbol. Function modules
// must already be marked before this runs. Any remainder bits (0 to 7)
// left over from a non-multiple-of-8 raw module count stay light.
func (s *Symbol) drawCodewords(data []byte) {
	bitx.Assert(len(data) == rawCodewordCount(s.version), "codeword data is not the expected length")

	i := 0
	for right := s.size - 1; right >= 1; right -= 2 {
		if right == 6 {
			right = 5 // Skip the vertical timing column.
		}
		upward := (right+1)&2 == 0
		for vert := 0; vert < s.size; vert++ {
			for j := 0; j < 2; j++ {
				x := right - j
				var y int
				if upward {
					y = s.size - 1 - vert
				} else {
					y = vert
				}
				if !s.isFunction[y][x] && i < len(data)*8 {
					s.modules[y][x] = bitx.GetBitBool(int(data[i>>3]), 7-(i&7))
					i++
				}
			}
		}
	}

	bitx.Assert(i == len(data)*8, "not all codeword bits were placed")
}

func rawCodewordCount(version int) int {
	return capacity.NumRawDataModules(version) / 8
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
