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

package stdmtx

import (
	"testing"
)

var allFonts = []string{
	"Courier",
	"Courier-Bold",
	"Courier-BoldOblique",
	"Courier-Oblique",
	"Helvetica",
	"Helvetica-Bold",
	"Helvetica-BoldOblique",
	"Helvetica-Oblique",
	"Times-Roman",
	"Times-Bold",
	"Times-BoldItalic",
	"Times-Italic",
	"Symbol",
	"ZapfDingbats",
}

func TestMetricsComplete(t *testing.T) {
	if len(Metrics) != len(allFonts) {
		t.Errorf("got %d fonts, want %d", len(Metrics), len(allFonts))
	}
	for _, name := range allFonts {
		m, ok := Metrics[name]
		if !ok {
			t.Errorf("%s: no metrics", name)
			continue
		}
		if m.Ascent <= 0 {
			t.Errorf("%s: ascent %f", name, m.Ascent)
		}
		if m.Descent >= 0 {
			t.Errorf("%s: descent %f", name, m.Descent)
		}
		if m.CapHeight <= 0 {
			t.Errorf("%s: cap height %f", name, m.CapHeight)
		}
		if m.FontBBox == [4]float64{} {
			t.Errorf("%s: empty bounding box", name)
		}
		if m.StemV <= 0 {
			t.Errorf("%s: stem width %f", name, m.StemV)
		}
	}
}

func TestWidthTables(t *testing.T) {
	for _, name := range allFonts {
		m := Metrics[name]
		switch name {
		case "Symbol", "ZapfDingbats":
			if m.Width != nil {
				t.Errorf("%s: unexpected width table", name)
			}
		default:
			if len(m.Width) != 128 {
				t.Errorf("%s: width table has %d entries", name, len(m.Width))
				continue
			}
			if m.Width[' '] <= 0 {
				t.Errorf("%s: no space width", name)
			}
			for c := 0x20; c <= 0x7E; c++ {
				if m.Width[c] <= 0 {
					t.Errorf("%s: no width for %q", name, c)
				}
			}
		}
	}
}

func TestCourier(t *testing.T) {
	m := Metrics["Courier"]
	if !m.IsFixedPitch {
		t.Error("Courier not marked as fixed pitch")
	}
	for c := 0x20; c <= 0x7E; c++ {
		if m.Width[c] != 600 {
			t.Errorf("width %f for %q", m.Width[c], c)
		}
	}
}

func TestSharedVariants(t *testing.T) {
	pairs := [][2]string{
		{"Helvetica", "Helvetica-Oblique"},
		{"Helvetica-Bold", "Helvetica-BoldOblique"},
		{"Times-Roman", "Times-Italic"},
		{"Times-Bold", "Times-BoldItalic"},
		{"Courier", "Courier-Oblique"},
		{"Courier-Bold", "Courier-BoldOblique"},
	}
	for _, p := range pairs {
		if Metrics[p[0]] != Metrics[p[1]] {
			t.Errorf("%s and %s have different metrics", p[0], p[1])
		}
	}
}

func TestKnownWidths(t *testing.T) {
	type testCase struct {
		font  string
		char  byte
		width float64
	}
	cases := []testCase{
		{"Helvetica", 'A', 667},
		{"Helvetica", ' ', 278},
		{"Helvetica", 'i', 222},
		{"Helvetica-Bold", 'A', 722},
		{"Times-Roman", 'A', 722},
		{"Times-Roman", ' ', 250},
		{"Times-Bold", 'A', 722},
		{"Courier", 'W', 600},
	}
	for _, c := range cases {
		m := Metrics[c.font]
		if got := m.Width[c.char]; got != c.width {
			t.Errorf("%s %q: got %f, want %f", c.font, c.char, got, c.width)
		}
	}
}
