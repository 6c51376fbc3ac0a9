// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package codepoints decodes UTF-8 text into Unicode code points.
//
// Callers validate text once, at the API boundary, using [Valid] or
// [ValidASCII].  Afterwards the text can be decoded using [All] without
// further error checking.
package codepoints

import "iter"

// A Codepoint is a Unicode code point decoded from UTF-8 text, together
// with the length of its encoding in bytes.
type Codepoint struct {
	Rune rune
	Size int
}

// Valid reports whether s is well-formed UTF-8: every leading byte
// announces a sequence of one to four bytes, all continuation bytes
// have high bits 10, and each code point uses the shortest possible
// encoding and is a Unicode scalar value.
func Valid(s string) bool {
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c < 0x80:
			i++
		case c&0b1110_0000 == 0b1100_0000:
			if len(s)-i < 2 || !isCont(s[i+1]) {
				return false
			}
			r := rune(c&0b1_1111)<<6 | rune(s[i+1]&contMask)
			if r < 0x80 {
				return false // overlong encoding
			}
			i += 2
		case c&0b1111_0000 == 0b1110_0000:
			if len(s)-i < 3 || !isCont(s[i+1]) || !isCont(s[i+2]) {
				return false
			}
			r := rune(c&0b1111)<<12 | rune(s[i+1]&contMask)<<6 | rune(s[i+2]&contMask)
			if r < 0x800 || (r >= 0xD800 && r < 0xE000) {
				return false // overlong encoding or surrogate
			}
			i += 3
		case c&0b1111_1000 == 0b1111_0000:
			if len(s)-i < 4 || !isCont(s[i+1]) || !isCont(s[i+2]) || !isCont(s[i+3]) {
				return false
			}
			r := rune(c&0b111)<<18 | rune(s[i+1]&contMask)<<12 |
				rune(s[i+2]&contMask)<<6 | rune(s[i+3]&contMask)
			if r < 0x1_0000 || r > 0x10_FFFF {
				return false
			}
			i += 4
		default:
			return false
		}
	}
	return true
}

// ValidASCII reports whether s consists of 7-bit ASCII bytes only.
func ValidASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// All decodes s into a sequence of code points.
//
// The string must have been checked with [Valid] before; calling All on
// unvalidated text indicates a bug in the caller and panics.
func All(s string) iter.Seq[Codepoint] {
	return func(yield func(Codepoint) bool) {
		for i := 0; i < len(s); {
			cp := decodeOne(s, i)
			if !yield(cp) {
				return
			}
			i += cp.Size
		}
	}
}

func decodeOne(s string, i int) Codepoint {
	c := s[i]
	var size int
	var r rune
	switch {
	case c < 0x80:
		return Codepoint{Rune: rune(c), Size: 1}
	case c&0b1110_0000 == 0b1100_0000:
		r = rune(c & 0b1_1111)
		size = 2
	case c&0b1111_0000 == 0b1110_0000:
		r = rune(c & 0b1111)
		size = 3
	case c&0b1111_1000 == 0b1111_0000:
		r = rune(c & 0b111)
		size = 4
	default:
		panic("codepoints: invalid leading byte in validated text")
	}
	if len(s)-i < size {
		panic("codepoints: truncated sequence in validated text")
	}
	for j := 1; j < size; j++ {
		cc := s[i+j]
		if !isCont(cc) {
			panic("codepoints: invalid continuation byte in validated text")
		}
		r = r<<6 | rune(cc&contMask)
	}
	return Codepoint{Rune: r, Size: size}
}

const contMask = 0b11_1111

func isCont(c byte) bool {
	return c&0b1100_0000 == 0b1000_0000
}
