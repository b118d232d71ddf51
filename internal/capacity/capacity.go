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

// Package capacity holds the ISO/IEC 18004 Annex D capacity tables and the
// per-version capacity arithmetic built on top of them. The version and
// ECC-level selection that uses these numbers lives in package qrcode.
package capacity

import "github.com/qrforge/qrforge/qrecc"

// eccCodewordsPerBlock[ecc.Ordinal()][version] is the number of error
// correction codewords per block. Index 0 is an illegal sentinel for the
// nonexistent version 0.
var eccCodewordsPerBlock = [4][41]int{
	// Low
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	// Medium
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	// Quartile
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	// High
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

// numErrorCorrectionBlocks[ecc.Ordinal()][version] is the number of blocks
// the data+ECC codewords are split into.
var numErrorCorrectionBlocks = [4][41]int{
	// Low
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	// Medium
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	// Quartile
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	// High
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

// EccCodewordsPerBlock returns the number of ECC codewords per block for
// the given level and version.
func EccCodewordsPerBlock(level qrecc.Level, version int) int {
	return eccCodewordsPerBlock[level.Ordinal()][version]
}

// NumErrorCorrectionBlocks returns the number of blocks the codewords are
// split into for the given level and version.
func NumErrorCorrectionBlocks(level qrecc.Level, version int) int {
	return numErrorCorrectionBlocks[level.Ordinal()][version]
}

// NumRawDataModules returns the total number of data modules available at
// the given version before any error-correction split, including any
// remainder bits. A closed-form substitute for a 40-entry table. The
// result is always in [208, 29648].
func NumRawDataModules(version int) int {
	r := (16*version+128)*version + 64
	if version >= 2 {
		numAlign := version/7 + 2
		r -= (25*numAlign-10)*numAlign - 55
		if version >= 7 {
			r -= 36
		}
	}
	return r
}

// NumDataCodewords returns the number of 8-bit data (non-ECC) codewords a
// symbol of the given version and level holds, with remainder bits
// discarded.
func NumDataCodewords(level qrecc.Level, version int) int {
	return NumRawDataModules(version)/8 - EccCodewordsPerBlock(level, version)*NumErrorCorrectionBlocks(level, version)
}
