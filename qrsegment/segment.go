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

// Package qrsegment builds the mode-tagged bit segments that make up a QR
// Code's data stream: numeric, alphanumeric, byte and ECI segments, plus
// the MakeSegments heuristic that picks the smallest-mode encoding for an
// arbitrary text string.
package qrsegment

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/qrforge/qrforge/internal/bitx"
	"github.com/qrforge/qrforge/qrmode"
)

// Segment is an immutable (mode, character count, bit data) triple. NumChars
// is the semantic count for the mode (decimal digits, alphanumeric
// characters, bytes, or 0 for ECI); Data is a defensive copy of the packed
// bits so the value cannot be mutated through an alias after construction.
type Segment struct {
	Mode     qrmode.Mode
	NumChars int
	data     bitx.Buffer
}

// Data returns a defensive copy of the segment's packed bits.
func (s Segment) Data() bitx.Buffer {
	out := make(bitx.Buffer, len(s.data))
	copy(out, s.data)
	return out
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

func isNumeric(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isAlphanumeric(text string) bool {
	for _, r := range text {
		if strings.IndexRune(alphanumericCharset, r) < 0 {
			return false
		}
	}
	return true
}

// MakeNumeric builds a numeric-mode segment from a string of decimal
// digits. Groups of three digits pack into 10 bits, a remaining pair packs
// into 7 bits, and a remaining single digit packs into 4 bits.
func MakeNumeric(digits string) (Segment, error) {
	if !isNumeric(digits) {
		return Segment{}, fmt.Errorf("qrsegment: not a decimal digit string: %q", digits)
	}

	var bb bitx.Buffer
	for i := 0; i < len(digits); {
		n := len(digits) - i
		if n > 3 {
			n = 3
		}
		d, err := strconv.Atoi(digits[i : i+n])
		if err != nil {
			return Segment{}, fmt.Errorf("qrsegment: %w", err)
		}
		bb.AppendBits(d, n*3+1)
		i += n
	}

	return Segment{Mode: qrmode.Numeric, NumChars: len(digits), data: bb}, nil
}

// MakeAlphanumeric builds an alphanumeric-mode segment from a string drawn
// from the QR alphanumeric charset (digits, uppercase letters, and
// " $%*+-./:"). Pairs of characters pack as 45*a+b in 11 bits; a trailing
// single character packs in 6 bits.
func MakeAlphanumeric(text string) (Segment, error) {
	if !isAlphanumeric(text) {
		return Segment{}, fmt.Errorf("qrsegment: not an alphanumeric-charset string: %q", text)
	}

	var bb bitx.Buffer
	i := 0
	for ; i <= len(text)-2; i += 2 {
		v := strings.IndexByte(alphanumericCharset, text[i])*45 + strings.IndexByte(alphanumericCharset, text[i+1])
		bb.AppendBits(v, 11)
	}
	if i < len(text) {
		bb.AppendBits(strings.IndexByte(alphanumericCharset, text[i]), 6)
	}

	return Segment{Mode: qrmode.Alphanumeric, NumChars: len(text), data: bb}, nil
}

// MakeBytes builds a byte-mode segment, packing each input byte as 8 bits.
func MakeBytes(data []byte) Segment {
	var bb bitx.Buffer
	for _, b := range data {
		bb.AppendBits(int(b), 8)
	}
	return Segment{Mode: qrmode.Byte, NumChars: len(data), data: bb}
}

// MakeECI builds an Extended Channel Interpretation segment for the given
// assignment value. Values below 128 are written as 8 bits; values below
// 2^14 are written with a "10" prefix in 14 bits; values below 10^6 are
// written with a "110" prefix in 21 bits. Larger values are rejected.
func MakeECI(assignValue int) (Segment, error) {
	var bb bitx.Buffer
	switch {
	case assignValue < 0:
		return Segment{}, fmt.Errorf("qrsegment: ECI assignment value out of range: %d", assignValue)
	case assignValue < 1<<7:
		bb.AppendBits(assignValue, 8)
	case assignValue < 1<<14:
		bb.AppendBits(0b10, 2)
		bb.AppendBits(assignValue, 14)
	case assignValue < 1_000_000:
		bb.AppendBits(0b110, 3)
		bb.AppendBits(assignValue, 21)
	default:
		return Segment{}, fmt.Errorf("qrsegment: ECI assignment value out of range: %d", assignValue)
	}

	return Segment{Mode: qrmode.ECI, NumChars: 0, data: bb}, nil
}

// MakeSegments chooses the narrowest encoding for an arbitrary text string:
// empty text yields no segments, an all-decimal string yields one numeric
// segment, a string drawn from the alphanumeric charset yields one
// alphanumeric segment, and anything else yields one byte-mode segment
// holding the UTF-8 encoding of text.
func MakeSegments(text string) []Segment {
	if len(text) == 0 {
		return []Segment{}
	}
	if isNumeric(text) {
		seg, err := MakeNumeric(text)
		bitx.Assert(err == nil, "numeric check passed but MakeNumeric failed")
		return []Segment{seg}
	}
	if isAlphanumeric(text) {
		seg, err := MakeAlphanumeric(text)
		bitx.Assert(err == nil, "alphanumeric check passed but MakeAlphanumeric failed")
		return []Segment{seg}
	}
	return []Segment{MakeBytes([]byte(text))}
}

// TotalBits returns the total number of bits needed to encode the given
// segments at the given version, including each segment's 4-bit mode
// indicator and character-count header. Returns math.MaxInt32 if any
// segment's character count overflows the mode's character-count field at
// this version, signalling the segment list cannot fit any symbol at this
// version.
func TotalBits(segs []Segment, version int) int {
	var result int64
	for _, seg := range segs {
		ccBits := seg.Mode.NumCharCountBits(version)
		if seg.NumChars >= 1<<uint(ccBits) {
			return math.MaxInt32
		}
		result += int64(4 + ccBits + seg.data.Len())
		if result > math.MaxInt32 {
			return math.MaxInt32
		}
	}
	return int(result)
}
