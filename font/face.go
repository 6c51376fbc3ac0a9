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

package font

import (
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfgen/truetype"
)

// Face gives glyph-level access to a TrueType font.  It combines the
// character map and kerning information from the font with the table
// data needed for embedding.
type Face struct {
	// Info is the parsed font program.
	Info *truetype.Font

	otf *sfnt.Font
	buf sfnt.Buffer
}

// NewFace parses the given TrueType font data.
func NewFace(data []byte) (*Face, error) {
	info, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	otf, err := sfnt.Parse(data)
	if err != nil {
		return nil, &truetype.InvalidFontError{Reason: err.Error()}
	}
	return &Face{Info: info, otf: otf}, nil
}

// UnitsPerEm returns the size of the font's design grid.
func (f *Face) UnitsPerEm() uint16 {
	return f.Info.UnitsPerEm
}

// PostScriptName returns the PostScript name of the font, or "Unknown"
// if the font does not specify one.
func (f *Face) PostScriptName() string {
	name, err := f.otf.Name(&f.buf, sfnt.NameIDPostScript)
	if err != nil || name == "" {
		return "Unknown"
	}
	return name
}

// HasKerning reports whether the font contains kerning information.
func (f *Face) HasKerning() bool {
	return f.Info.Has("kern")
}

// GlyphIndex returns the glyph used to represent the rune r.  The
// result is glyph 0 (".notdef") if the font has no glyph for r.
func (f *Face) GlyphIndex(r rune) glyph.ID {
	gid, err := f.otf.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return glyph.ID(gid)
}

// AdvanceWidth returns the horizontal advance of a glyph, scaled to the
// given font size.
func (f *Face) AdvanceWidth(gid glyph.ID, size float64) float64 {
	w := f.Info.GlyphWidth(gid)
	return float64(w) * size / float64(f.Info.UnitsPerEm)
}

// Kern returns the kerning adjustment for the glyph pair (left, right),
// scaled to the given font size.  Positive values move the glyphs
// further apart.  The result is 0 if the font has no kerning
// information for the pair.
func (f *Face) Kern(left, right glyph.ID, size float64) float64 {
	// At ppem == unitsPerEm the scaling inside the sfnt package is the
	// identity, so the returned value is in font design units.
	ppem := fixed.Int26_6(f.Info.UnitsPerEm)
	k, err := f.otf.Kern(&f.buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right),
		ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return float64(k) * size / float64(f.Info.UnitsPerEm)
}
