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

import "github.com/qrforge/qrforge/internal/bitx"

// applyMask XORs every non-function module at (x, y) with the given
// mask's predicate. Self-inverse: applying the same mask twice restores
// the original grid.
func (s *Symbol) applyMask(mask int) {
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			if s.isFunction[y][x] || !maskInvert(mask, x, y) {
				continue
			}
			s.modules[y][x] = !s.modules[y][x]
		}
	}
}

// maskInvert reports whether mask's predicate selects module (x, y) for
// inversion, per the eight patterns ISO/IEC 18004 defines.
func maskInvert(mask, x, y int) bool {
	switch mask {
	case 0:
		return (x+y)%2 == 0
	case 1:
		return y%2 == 0
	case 2:
		return x%3 == 0
	case 3:
		return (x+y)%3 == 0
	case 4:
		return (x/3+y/2)%2 == 0
	case 5:
		return x*y%2+x*y%3 == 0
	case 6:
		return (x*y%2+x*y%3)%2 == 0
	case 7:
		return ((x+y)%2+x*y%3)%2 == 0
	default:
		panic("qrcode: illegal mask value")
	}
}

// handleMasking applies mask (or, if mask is -1, the lowest-penalty mask
// found by trying all eight) and writes its format bits. Returns the mask
// actually applied.
func (s *Symbol) handleMasking(mask int) int {
	if mask == -1 {
		bestPenalty := -1
		for m := 0; m < 8; m++ {
			s.applyMask(m)
			s.drawFormatBits(m)
			penalty := s.penaltyScore()
			if bestPenalty == -1 || penalty < bestPenalty {
				mask = m
				bestPenalty = penalty
			}
			s.applyMask(m) // Undo: XOR is self-inverse.
		}
	}

	if mask < 0 || mask > 7 {
		panic("qrcode: illegal mask value")
	}

	s.applyMask(mask)
	s.drawFormatBits(mask)
	return mask
}

// penaltyScore computes this symbol's total masking penalty per the
// standard's four rules (N1=3, N2=3, N3=40, N4=10).
func (s *Symbol) penaltyScore() int {
	result := 0

	for y := 0; y < s.size; y++ {
		result += s.rowPenalty(y)
	}
	for x := 0; x < s.size; x++ {
		result += s.columnPenalty(x)
	}

	// Rule 2: 2x2 blocks of one colour.
	for y := 0; y < s.size-1; y++ {
		for x := 0; x < s.size-1; x++ {
			color := s.modules[y][x]
			if s.modules[y][x+1] == color && s.modules[y+1][x] == color && s.modules[y+1][x+1] == color {
				result += penaltyN2
			}
		}
	}

	// Rule 4: proportion of dark modules.
	dark := 0
	for _, row := range s.modules {
		for _, m := range row {
			if m {
				dark++
			}
		}
	}
	total := s.size * s.size
	k := (absInt(dark*20-total*10)+total-1)/total - 1
	result += k * penaltyN4

	return result
}

func (s *Symbol) rowPenalty(y int) int {
	result := 0
	runColor, runLen := false, 0
	var history [7]int
	for x := 0; x < s.size; x++ {
		if s.modules[y][x] == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			finderPenaltyAddHistory(runLen, &history, s.size)
			if !runColor {
				result += finderPenaltyCountPatterns(&history, s.size) * penaltyN3
			}
			runColor = s.modules[y][x]
			runLen = 1
		}
	}
	result += finderPenaltyTerminateAndCount(runColor, runLen, &history, s.size) * penaltyN3
	return result
}

func (s *Symbol) columnPenalty(x int) int {
	result := 0
	runColor, runLen := false, 0
	var history [7]int
	for y := 0; y < s.size; y++ {
		if s.modules[y][x] == runColor {
			runLen++
			if runLen == 5 {
				result += penaltyN1
			} else if runLen > 5 {
				result++
			}
		} else {
			finderPenaltyAddHistory(runLen, &history, s.size)
			if !runColor {
				result += finderPenaltyCountPatterns(&history, s.size) * penaltyN3
			}
			runColor = s.modules[y][x]
			runLen = 1
		}
	}
	result += finderPenaltyTerminateAndCount(runColor, runLen, &history, s.size) * penaltyN3
	return result
}

// finderPenaltyAddHistory pushes currentRunLength to the front of the
// 7-slot run-history, dropping the oldest entry. A light border of length
// size is virtually prepended to the very first run of a line.
func finderPenaltyAddHistory(currentRunLength int, history *[7]int, size int) {
	if history[0] == 0 {
		currentRunLength += size
	}
	copy(history[1:], history[:6])
	history[0] = currentRunLength
}

// finderPenaltyCountPatterns detects finder-like (n,n,3n,n,n) cores in the
// run history and counts how many sides (light run >= 4n on one side, >= n
// on the other) qualify as a penalized finder-like pattern.
func finderPenaltyCountPatterns(history *[7]int, size int) int {
	n := history[1]
	bitx.Assert(n <= size*3, "corrupt run history")
	core := n > 0 && history[2] == n && history[3] == n*3 && history[4] == n && history[5] == n

	count := 0
	if core && history[0] >= n*4 && history[6] >= n {
		count++
	}
	if core && history[6] >= n*4 && history[0] >= n {
		count++
	}
	return count
}

// finderPenaltyTerminateAndCount finalizes the run history at the end of a
// line (virtually appending a light border) and returns the resulting
// finder-like-pattern count.
func finderPenaltyTerminateAndCount(runColor bool, runLength int, history *[7]int, size int) int {
	if runColor { // Terminate a dark run first.
		finderPenaltyAddHistory(runLength, history, size)
		runLength = 0
	}
	runLength += size
	finderPenaltyAddHistory(runLength, history, size)
	return finderPenaltyCountPatterns(history, size)
}
