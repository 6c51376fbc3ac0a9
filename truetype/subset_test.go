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

package truetype

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

func TestSubsetArguments(t *testing.T) {
	f, err := Parse(makeTestFont())
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		glyphs []glyph.ID
	}{
		{"empty", nil},
		{"missing notdef", []glyph.ID{1}},
		{"duplicate glyph", []glyph.ID{0, 1, 1}},
		{"glyph out of range", []glyph.ID{0, 99}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := f.Subset(test.glyphs)
			if err == nil {
				t.Error("expected an error")
			}
		})
	}
}

// TestSubsetComposite checks that component glyphs are pulled into the
// subset and that component references are rewritten.
func TestSubsetComposite(t *testing.T) {
	f, err := Parse(makeTestFont())
	if err != nil {
		t.Fatal(err)
	}

	subData, err := f.Subset([]glyph.ID{0, 2})
	if err != nil {
		t.Fatal(err)
	}
	sub, err := Parse(subData)
	if err != nil {
		t.Fatal(err)
	}

	// Glyph 2 uses glyphs 4 and 1, so the new font is [0, 2, 4, 1].
	if sub.NumGlyphs != 4 {
		t.Fatalf("expected 4 glyphs, got %d", sub.NumGlyphs)
	}
	widths := []funit.Int16{500, 700, 800, 600}
	for gid, want := range widths {
		if w := sub.GlyphWidth(glyph.ID(gid)); w != want {
			t.Errorf("glyph %d: expected width %d, got %d", gid, want, w)
		}
	}

	cc, err := sub.Components(1)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]glyph.ID{2, 3}, cc); d != "" {
		t.Errorf("different (-want +got):\n%s", d)
	}
	for _, gid := range []glyph.ID{0, 2, 3} {
		cc, err := sub.Components(gid)
		if err != nil {
			t.Fatal(err)
		}
		if len(cc) != 0 {
			t.Errorf("glyph %d: unexpected components %v", gid, cc)
		}
	}

	if sub.UnitsPerEm != f.UnitsPerEm {
		t.Errorf("expected %d units per em, got %d",
			f.UnitsPerEm, sub.UnitsPerEm)
	}
	if d := cmp.Diff(f.FontBBox, sub.FontBBox); d != "" {
		t.Errorf("different (-want +got):\n%s", d)
	}
	if !sub.Has("cvt ") {
		t.Error("expected a \"cvt \" table")
	}
	for _, tag := range []string{"post", "OS/2", "cmap", "name"} {
		if sub.Has(tag) {
			t.Errorf("unexpected %q table", tag)
		}
	}
}

func TestSubsetBlankGlyph(t *testing.T) {
	f, err := Parse(makeTestFont())
	if err != nil {
		t.Fatal(err)
	}

	subData, err := f.Subset([]glyph.ID{0, 3})
	if err != nil {
		t.Fatal(err)
	}
	sub, err := Parse(subData)
	if err != nil {
		t.Fatal(err)
	}

	if sub.NumGlyphs != 2 {
		t.Fatalf("expected 2 glyphs, got %d", sub.NumGlyphs)
	}
	if w := sub.GlyphWidth(1); w != 250 {
		t.Errorf("expected width 250, got %d", w)
	}
	cc, err := sub.Components(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cc) != 0 {
		t.Errorf("unexpected components %v", cc)
	}
}

// TestSubsetGoRegular subsets a real font and verifies the resulting
// glyph complement and metrics.
func TestSubsetGoRegular(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	// Include a composite glyph, so that the subset has to pull in
	// component glyphs.
	composite := glyph.ID(0)
	for gid := 1; gid < f.NumGlyphs; gid++ {
		cc, err := f.Components(glyph.ID(gid))
		if err != nil {
			t.Fatal(err)
		}
		if len(cc) > 0 {
			composite = glyph.ID(gid)
			break
		}
	}
	if composite == 0 {
		t.Fatal("no composite glyph found")
	}

	glyphs := []glyph.ID{0, 1, 2, 3, composite}
	subData, err := f.Subset(glyphs)
	if err != nil {
		t.Fatal(err)
	}
	sub, err := Parse(subData)
	if err != nil {
		t.Fatal(err)
	}

	// The glyph complement must be the closure of the requested glyphs
	// under component references.
	closure := map[glyph.ID]bool{}
	todo := append([]glyph.ID{}, glyphs...)
	for len(todo) > 0 {
		gid := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if closure[gid] {
			continue
		}
		closure[gid] = true
		cc, err := f.Components(gid)
		if err != nil {
			t.Fatal(err)
		}
		todo = append(todo, cc...)
	}
	if sub.NumGlyphs != len(closure) {
		t.Errorf("expected %d glyphs, got %d", len(closure), sub.NumGlyphs)
	}

	// The requested glyphs keep their positions, ...
	for newGid, oldGid := range glyphs {
		if w := sub.GlyphWidth(glyph.ID(newGid)); w != f.GlyphWidth(oldGid) {
			t.Errorf("glyph %d: expected width %d, got %d",
				newGid, f.GlyphWidth(oldGid), w)
		}
	}

	// ... and the appended glyphs make up the rest of the closure.
	wantWidths := map[funit.Int16]int{}
	for gid := range closure {
		wantWidths[f.GlyphWidth(gid)]++
	}
	gotWidths := map[funit.Int16]int{}
	for gid := 0; gid < sub.NumGlyphs; gid++ {
		gotWidths[sub.GlyphWidth(glyph.ID(gid))]++
	}
	if d := cmp.Diff(wantWidths, gotWidths); d != "" {
		t.Errorf("different (-want +got):\n%s", d)
	}

	// Component references must point to the same outlines as before.
	ccOld, err := f.Components(composite)
	if err != nil {
		t.Fatal(err)
	}
	ccNew, err := sub.Components(glyph.ID(len(glyphs) - 1))
	if err != nil {
		t.Fatal(err)
	}
	if len(ccOld) != len(ccNew) {
		t.Fatalf("expected %d components, got %d", len(ccOld), len(ccNew))
	}
	for i := range ccOld {
		if int(ccNew[i]) >= sub.NumGlyphs {
			t.Errorf("component %d outside of subset", ccNew[i])
		}
		if sub.GlyphWidth(ccNew[i]) != f.GlyphWidth(ccOld[i]) {
			t.Errorf("component %d: expected width %d, got %d",
				i, f.GlyphWidth(ccOld[i]), sub.GlyphWidth(ccNew[i]))
		}
	}
}

func TestSubsetDeterministic(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	glyphs := make([]glyph.ID, 40)
	for i := range glyphs {
		glyphs[i] = glyph.ID(i)
	}
	first, err := f.Subset(glyphs)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.Subset(glyphs)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("subsetting is not deterministic")
	}
}

// TestSubsetChecksums verifies that generated font files carry correct
// table checksums and checksum adjustment.
func TestSubsetChecksums(t *testing.T) {
	fonts := map[string][]byte{
		"synthetic": makeTestFont(),
		"goregular": goregular.TTF,
	}
	for name, data := range fonts {
		t.Run(name, func(t *testing.T) {
			f, err := Parse(data)
			if err != nil {
				t.Fatal(err)
			}
			subData, err := f.Subset([]glyph.ID{0, 1, 2})
			if err != nil {
				t.Fatal(err)
			}
			checkFileChecksums(t, subData)
		})
	}
}

func checkFileChecksums(t *testing.T, data []byte) {
	t.Helper()
	if got := checksum(data); got != 0xB1B0AFBA {
		t.Errorf("wrong whole file checksum 0x%08X", got)
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	for i := 0; i < numTables; i++ {
		rec := data[12+16*i:]
		tag := string(rec[:4])
		want := binary.BigEndian.Uint32(rec[4:8])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])

		table := clone(data[offset : offset+(length+3)&^3])
		if tag == "head" {
			// The head checksum is computed without the checksum
			// adjustment field.
			for j := 8; j < 12; j++ {
				table[j] = 0
			}
		}
		if got := checksum(table); got != want {
			t.Errorf("table %q: expected checksum 0x%08X, got 0x%08X",
				tag, want, got)
		}
	}
}
