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

package document

import (
	"os"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// LoadFont reads a TrueType font from a file and registers it for
// embedding into the document.
func (g *Generator) LoadFont(path string) (FontID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return g.EmbedFont(data)
}

// EmbedFont registers a TrueType font for embedding into the document.
// The font program is subsetted when the document is written, so that
// only glyphs actually used are included in the file.
func (g *Generator) EmbedFont(data []byte) (FontID, error) {
	if g.version < pdfgen.V1_3 {
		return 0, &pdfgen.VersionError{Operation: "composite TrueType fonts", Earliest: pdfgen.V1_3}
	}
	f, err := font.Embed(data)
	if err != nil {
		return 0, err
	}
	f.Ref = g.alloc()
	g.fonts = append(g.fonts, f)
	return FontID(len(g.fonts) - 1), nil
}

// Builtin registers one of the 14 standard PDF fonts with the
// document.  Registering the same builtin font twice returns the same
// ID.  The method panics if b is not one of the names defined in the
// font package.
func (g *Generator) Builtin(b font.Builtin) FontID {
	for i, f := range g.fonts {
		if f.Builtin == b {
			return FontID(i)
		}
	}
	f := b.New()
	f.Ref = g.alloc()
	g.fonts = append(g.fonts, f)
	return FontID(len(g.fonts) - 1)
}

// TextWidth returns the width of text, set in the given font at the
// given size.  For embedded fonts the glyphs used are registered for
// inclusion in the font subset.
func (g *Generator) TextWidth(id FontID, text string, size float64) (float64, error) {
	return g.fonts[id].TextWidth(text, size)
}
