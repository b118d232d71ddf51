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

// Package qrecc defines the four error correction levels a QR Code symbol
// may be built with.
package qrecc

// Level is the error correction level of a QR Code symbol.
type Level int8

// The four error correction levels, ordered by increasing recovery
// capacity. The ordinal (used to index the capacity tables) intentionally
// does not match the 2-bit format code written into the symbol's format
// information; both are required by the standard.
const (
	Low      Level = iota // Recovers about 7% of codewords.
	Medium                // Recovers about 15% of codewords.
	Quartile              // Recovers about 25% of codewords.
	High                  // Recovers about 30% of codewords.
)

// Ordinal returns the 0..3 index used to address the per-level capacity
// tables.
func (l Level) Ordinal() int {
	switch l {
	case Low, Medium, Quartile, High:
		return int(l)
	default:
		panic("qrecc: unknown level")
	}
}

// FormatBits returns the 2-bit code written into the symbol's format
// information field for this level. This differs from Ordinal: the
// standard assigns Low=01, Medium=00, Quartile=11, High=10.
func (l Level) FormatBits() int {
	switch l {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrecc: unknown level")
	}
}

// String implements fmt.Stringer for diagnostic output.
func (l Level) String() string {
	switch l {
	case Low:
		return "LOW"
	case Medium:
		return "MEDIUM"
	case Quartile:
		return "QUARTILE"
	case High:
		return "HIGH"
	default:
		return "INVALID"
	}
}
