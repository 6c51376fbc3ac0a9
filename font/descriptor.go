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
	"seehuhn.de/go/pdfgen"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of PDF 32000-1:2008.
type Descriptor struct {
	FontName   string // required
	FontFamily string // optional

	IsFixedPitch bool // flag
	IsSerif      bool // flag
	IsSymbolic   bool // flag
	IsScript     bool // flag
	IsItalic     bool // flag
	IsAllCap     bool // flag
	IsSmallCap   bool // flag
	ForceBold    bool // flag

	FontBBox     *pdfgen.Rectangle // required
	ItalicAngle  float64           // required
	Ascent       float64           // required
	Descent      float64           // required
	CapHeight    float64           // required, except if no latin chars
	StemV        float64           // required (set to -1 to omit)
	MissingWidth float64           // optional (default: 0)
}

// AsDict returns the descriptor as a PDF dictionary.
func (d *Descriptor) AsDict() pdfgen.Dict {
	var flags pdfgen.Integer
	if d.IsFixedPitch {
		flags |= flagFixedPitch
	}
	if d.IsSerif {
		flags |= flagSerif
	}
	if d.IsSymbolic {
		flags |= flagSymbolic
	} else {
		flags |= flagNonsymbolic
	}
	if d.IsScript {
		flags |= flagScript
	}
	if d.IsItalic {
		flags |= flagItalic
	}
	if d.IsAllCap {
		flags |= flagAllCap
	}
	if d.IsSmallCap {
		flags |= flagSmallCap
	}
	if d.ForceBold {
		flags |= flagForceBold
	}

	dict := pdfgen.Dict{
		"Type":        pdfgen.Name("FontDescriptor"),
		"Flags":       flags,
		"ItalicAngle": pdfgen.Number(d.ItalicAngle),
	}
	if d.FontName != "" {
		dict["FontName"] = pdfgen.Name(d.FontName)
	}
	if d.FontFamily != "" {
		dict["FontFamily"] = pdfgen.String(d.FontFamily)
	}
	if d.FontBBox != nil {
		dict["FontBBox"] = d.FontBBox
	}
	if d.Ascent != 0 {
		dict["Ascent"] = pdfgen.Number(d.Ascent)
	}
	if d.Descent != 0 {
		dict["Descent"] = pdfgen.Number(d.Descent)
	}
	if d.CapHeight != 0 {
		dict["CapHeight"] = pdfgen.Number(d.CapHeight)
	}
	if d.StemV >= 0 {
		dict["StemV"] = pdfgen.Number(d.StemV)
	}
	if d.MissingWidth != 0 {
		dict["MissingWidth"] = pdfgen.Number(d.MissingWidth)
	}

	return dict
}

// Possible values for PDF font descriptor flags.
const (
	flagFixedPitch  pdfgen.Integer = 1 << 0  // all glyphs have the same width
	flagSerif       pdfgen.Integer = 1 << 1  // glyphs have serifs
	flagSymbolic    pdfgen.Integer = 1 << 2  // font contains glyphs outside the Adobe standard Latin character set
	flagScript      pdfgen.Integer = 1 << 3  // glyphs resemble cursive handwriting
	flagNonsymbolic pdfgen.Integer = 1 << 5  // font uses the Adobe standard Latin character set or a subset of it
	flagItalic      pdfgen.Integer = 1 << 6  // glyphs have dominant vertical strokes that are slanted
	flagAllCap      pdfgen.Integer = 1 << 16 // font contains no lowercase letters
	flagSmallCap    pdfgen.Integer = 1 << 17 // lowercase glyphs are small capital letters
	flagForceBold   pdfgen.Integer = 1 << 18 // glyphs are painted bold at small sizes
)
