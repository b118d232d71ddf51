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

// Package rs implements GF(2^8) arithmetic (reduction polynomial 0x11D) and
// the Reed-Solomon error-correction polynomials QR Code symbols use to
// protect their codeword stream.
package rs

// Multiply returns the product of the two given field elements modulo
// GF(2^8)/0x11D, using Russian-peasant multiplication.
func Multiply(x, y byte) byte {
	z := 0
	for i := 7; i >= 0; i-- {
		z = z<<1 ^ z>>7*0x11D
		z ^= int(y>>uint(i)&1) * int(x)
	}
	return byte(z)
}

// ComputeDivisor returns the coefficients, highest power to lowest, of the
// degree-d generator polynomial prod_{i=0}^{d-1} (x - 2^i) over GF(256),
// with its leading (always 1) x^d coefficient dropped.
func ComputeDivisor(degree int) []byte {
	if degree < 1 || degree > 255 {
		panic("rs: degree out of range")
	}

	result := make([]byte, degree)
	result[degree-1] = 1 // Start with the monomial x^0.

	root := byte(1)
	for i := 0; i < degree; i++ {
		// Multiply the running product by (x - root).
		for j := 0; j < len(result); j++ {
			result[j] = Multiply(result[j], root)
			if j+1 < len(result) {
				result[j] ^= result[j+1]
			}
		}
		root = Multiply(root, 0x02)
	}

	return result
}

// ComputeRemainder returns the Reed-Solomon remainder (ECC codewords) of
// data divided by divisor.
func ComputeRemainder(data, divisor []byte) []byte {
	result := make([]byte, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i := range result {
			result[i] ^= Multiply(divisor[i], factor)
		}
	}
	return result
}
