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

// drawFormatBits draws both copies of the 15-bit format information field
// (error correction level and mask, BCH-protected with generator 0x537 and
// XORed with the fixed mask 0x5412), plus the always-dark module at
// (8, size-8).
func (s *Symbol) drawFormatBits(mask int) {
	data := s.level.FormatBits()<<3 | mask
	rem := data
	for i := 0; i < 10; i++ {
		rem = rem<<1 ^ (rem>>9)*0x537
	}
	bits := data<<10 | rem
	bits ^= 0x5412
	bitx.Assert(bits>>15 == 0, "format bits overflowed 15 bits")

	// First copy, around the top-left finder pattern.
	for i := 0; i <= 5; i++ {
		s.setFunctionModule(8, i, bitx.GetBitBool(bits, i))
	}
	s.setFunctionModule(8, 7, bitx.GetBitBool(bits, 6))
	s.setFunctionModule(8, 8, bitx.GetBitBool(bits, 7))
	s.setFunctionModule(7, 8, bitx.GetBitBool(bits, 8))
	for i := 9; i < 15; i++ {
		s.setFunctionModule(14-i, 8, bitx.GetBitBool(bits, i))
	}

	// Second copy, split between the top-right and bottom-left finders.
	for i := 0; i < 8; i++ {
		s.setFunctionModule(s.size-1-i, 8, bitx.GetBitBool(bits, i))
	}
	for i := 8; i < 15; i++ {
		s.setFunctionModule(8, s.size-15+i, bitx.GetBitBool(bits, i))
	}
	s.setFunctionModule(8, s.size-8, true)
}

// drawVersion draws both copies of the 18-bit version information field
// (BCH-protected with generator 0x1F25), for versions 7 and above only.
func (s *Symbol) drawVersion() {
	if s.version < 7 {
		return
	}

	rem := s.version
	for i := 0; i < 12; i++ {
		rem = rem<<1 ^ (rem>>11)*0x1F25
	}
	bits := s.version<<12 | rem
	bitx.Assert(bits>>18 == 0, "version bits overflowed 18 bits")

	for i := 0; i < 18; i++ {
		bit := bitx.GetBitBool(bits, i)
		a := s.size - 11 + i%3
		b := i / 3
		s.setFunctionModule(a, b, bit)
		s.setFunctionModule(b, a, bit)
	}
}
