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

package codepoints

import (
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestValid(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"", true},
		{"hello", true},
		{"hällo", true},
		{"€", true},            // three-byte sequence
		{"\U0001F600", true},        // four-byte sequence
		{"\x80", false},             // stray continuation byte
		{"\xC3", false},             // truncated two-byte sequence
		{"\xE2\x82", false},         // truncated three-byte sequence
		{"\xF0\x9F\x98", false},     // truncated four-byte sequence
		{"\xC3\x28", false},         // invalid continuation byte
		{"\xC0\x80", false},         // overlong encoding of NUL
		{"\xE0\x80\xAF", false},     // overlong three-byte encoding
		{"\xED\xA0\x80", false},     // surrogate half
		{"\xF4\x90\x80\x80", false}, // beyond U+10FFFF
		{"\xFE", false},             // invalid leading byte
		{"\xFF", false},
	}
	for _, test := range cases {
		if got := Valid(test.in); got != test.valid {
			t.Errorf("Valid(%q) = %t, want %t", test.in, got, test.valid)
		}
	}
}

func TestValidASCII(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"", true},
		{"hello, world!", true},
		{"\x00\x7F", true},
		{"hällo", false},
		{"\x80", false},
	}
	for _, test := range cases {
		if got := ValidASCII(test.in); got != test.valid {
			t.Errorf("ValidASCII(%q) = %t, want %t", test.in, got, test.valid)
		}
	}
}

func TestAll(t *testing.T) {
	in := "Aä€\U0001F600"
	want := []Codepoint{
		{Rune: 'A', Size: 1},
		{Rune: 0xE4, Size: 2},
		{Rune: 0x20AC, Size: 3},
		{Rune: 0x1F600, Size: 4},
	}

	var got []Codepoint
	for cp := range All(in) {
		got = append(got, cp)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("different (-want +got):\n%s", diff)
	}
}

// TestAllRestartable makes sure the sequence returned by All can be
// iterated more than once.
func TestAllRestartable(t *testing.T) {
	seq := All("abc")
	for range 2 {
		var got []rune
		for cp := range seq {
			got = append(got, cp.Rune)
		}
		if string(got) != "abc" {
			t.Errorf("got %q, want %q", string(got), "abc")
		}
	}
}

func TestAllEmpty(t *testing.T) {
	for cp := range All("") {
		t.Errorf("unexpected code point %v in empty string", cp)
	}
}

func FuzzValid(f *testing.F) {
	f.Add("")
	f.Add("hello, world")
	f.Add("hällo wörld")
	f.Add("€ 9.99")
	f.Add("\U0001F600\U0001F601")
	f.Add("\xC0\x80")
	f.Add("\xED\xA0\x80")
	f.Add("\xF4\x90\x80\x80")

	f.Fuzz(func(t *testing.T, s string) {
		valid := Valid(s)
		if valid != utf8.ValidString(s) {
			t.Fatalf("Valid(%q) = %t, but utf8.ValidString = %t",
				s, valid, !valid)
		}
		if !valid {
			return
		}

		// Decoding and re-encoding must reproduce the input exactly.
		var buf []byte
		n := 0
		for cp := range All(s) {
			buf = utf8.AppendRune(buf, cp.Rune)
			n += cp.Size
		}
		if string(buf) != s {
			t.Errorf("round trip changed %q to %q", s, buf)
		}
		if n != len(s) {
			t.Errorf("consumed %d bytes of %d", n, len(s))
		}
	})
}
