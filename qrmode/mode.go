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
 */

// Package qrmode describes the five segment modes a QR Code Model 2 symbol
// can mix within its data stream.
package qrmode

// Mode describes how a segment's data bits are interpreted, carrying both
// its 4-bit mode indicator and the version-dependent width of its
// character-count field.
type Mode struct {
	indicator   int8
	charCountBits [3]int8
}

// The five segment modes defined by ISO/IEC 18004. Kanji is described here
// (mode indicator and character-count widths) so a caller may hand-build a
// kanji segment at the low-level qrsegment API, but qrsegment itself does
// not provide a text-to-kanji factory.
var (
	Numeric      = Mode{0x1, [3]int8{10, 12, 14}}
	Alphanumeric = Mode{0x2, [3]int8{9, 11, 13}}
	Byte         = Mode{0x4, [3]int8{8, 16, 16}}
	Kanji        = Mode{0x8, [3]int8{8, 10, 12}}
	ECI          = Mode{0x7, [3]int8{0, 0, 0}}
)

// Indicator returns the 4-bit mode indicator for this mode.
func (m Mode) Indicator() int {
	return int(m.indicator)
}

// NumCharCountBits returns the bit width of the character-count field for a
// segment in this mode at the given symbol version, partitioning versions
// 1-9, 10-26 and 27-40 into indices 0, 1 and 2 respectively.
func (m Mode) NumCharCountBits(version int) int {
	return int(m.charCountBits[(version+7)/17])
}
