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

// Package font implements text layout for embedded TrueType fonts and
// for the 14 standard PDF fonts.
//
// Embedded fonts keep track of which glyphs have been used, so that
// only the used glyphs need to be included in the PDF file.  Glyphs are
// identified in content streams by their position in this list of used
// glyphs, starting with the ".notdef" glyph at position 0.
package font

import (
	"errors"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/internal/codepoints"
	"seehuhn.de/go/pdfgen/internal/stdmtx"
)

// ErrBadUTF8 indicates that a text string is not valid UTF-8.
var ErrBadUTF8 = errors.New("text is not valid UTF-8")

// ErrNotASCII indicates that text for a builtin font contains bytes
// outside the ASCII range.
var ErrNotASCII = errors.New("builtin fonts only support ASCII text")

// ErrNoMetrics indicates that glyph widths were requested for a font
// for which no metrics are available.
var ErrNoMetrics = errors.New("no glyph metrics available")

// Font represents a font loaded into a generation session.
//
// Exactly one of Face and Builtin is set.
type Font struct {
	// Data contains the original font file.  This is nil for builtin
	// fonts.
	Data []byte

	// Face gives access to the font tables.  This is nil for builtin
	// fonts.
	Face *Face

	// Builtin is the PostScript name of one of the 14 standard fonts,
	// or "" for embedded fonts.
	Builtin Builtin

	// Ref is the reference of the PDF font dictionary.  The reference
	// is allocated when the font is added to a document.
	Ref pdfgen.Reference

	// Glyphs lists the glyphs used so far, in order of first use.
	// Glyphs[0] is always the ".notdef" glyph.  The position of a glyph
	// in this list is the character code used in content streams.
	Glyphs []glyph.ID

	// Text gives the rune shown by each glyph in Glyphs.
	Text []rune

	cid map[glyph.ID]glyph.ID
}

// Embed loads a TrueType font for embedding into a PDF file.
func Embed(data []byte) (*Font, error) {
	face, err := NewFace(data)
	if err != nil {
		return nil, err
	}
	return &Font{
		Data:   data,
		Face:   face,
		Glyphs: []glyph.ID{0},
		Text:   []rune{0},
		cid:    map[glyph.ID]glyph.ID{0: 0},
	}, nil
}

// CID returns the character identifier for the given glyph, allocating
// a new one if the glyph has not been used before.  The rune r records
// the text content of the glyph, for text extraction by PDF viewers.
//
// CID must not be called for builtin fonts.
func (f *Font) CID(gid glyph.ID, r rune) glyph.ID {
	if f.Builtin != "" {
		panic("glyph registration for a builtin font")
	}
	if c, ok := f.cid[gid]; ok {
		return c
	}
	c := glyph.ID(len(f.Glyphs))
	f.Glyphs = append(f.Glyphs, gid)
	f.Text = append(f.Text, r)
	f.cid[gid] = c
	return c
}

// GlyphAdvance returns the horizontal advance of the glyph used to show
// the rune r, scaled to the given font size.  For embedded fonts the
// glyph is registered for inclusion in the font subset.
func (f *Font) GlyphAdvance(r rune, size float64) (float64, error) {
	if f.Builtin != "" {
		m := stdmtx.Metrics[string(f.Builtin)]
		if m.Width == nil {
			return 0, ErrNoMetrics
		}
		if r < 0 || r > 127 {
			return 0, ErrNotASCII
		}
		return m.Width[r] * size / 1000, nil
	}

	gid := f.Face.GlyphIndex(r)
	f.CID(gid, r)
	return f.Face.AdvanceWidth(gid, size), nil
}

// TextWidth returns the width of the string s, set in this font at the
// given size.
//
// For embedded fonts, s must be valid UTF-8 and kerning is applied when
// the font provides it.  For builtin fonts, s must be ASCII.
func (f *Font) TextWidth(s string, size float64) (float64, error) {
	if s == "" {
		return 0, nil
	}

	if f.Builtin != "" {
		if !codepoints.ValidASCII(s) {
			return 0, ErrNotASCII
		}
		m := stdmtx.Metrics[string(f.Builtin)]
		if m.Width == nil {
			return 0, ErrNoMetrics
		}
		var total float64
		for i := 0; i < len(s); i++ {
			total += m.Width[s[i]] * size / 1000
		}
		return total, nil
	}

	if !codepoints.Valid(s) {
		return 0, ErrBadUTF8
	}
	kern := f.Face.HasKerning()
	var total float64
	var prev glyph.ID
	first := true
	for cp := range codepoints.All(s) {
		gid := f.Face.GlyphIndex(cp.Rune)
		f.CID(gid, cp.Rune)
		if kern && !first {
			total += f.Face.Kern(prev, gid, size)
		}
		total += f.Face.AdvanceWidth(gid, size)
		prev = gid
		first = false
	}
	return total, nil
}

// Glyph represents a single glyph in a glyph sequence.
type Glyph struct {
	// CID is the character identifier of the glyph.
	CID glyph.ID

	// Advance is the displacement to the start of the next glyph, in
	// PDF text space units.  This includes any kerning adjustment for
	// the following glyph.
	Advance float64

	// Text is the text content of the glyph.
	Text []rune
}

// GlyphSeq represents a sequence of positioned glyphs.
type GlyphSeq struct {
	// Skip is a horizontal displacement applied before the first
	// glyph, in PDF text space units.
	Skip float64

	Seq []Glyph
}

// TotalWidth returns the total advance width of the sequence,
// including the initial skip.
func (s *GlyphSeq) TotalWidth() float64 {
	total := s.Skip
	for _, g := range s.Seq {
		total += g.Advance
	}
	return total
}

// Layout computes the positioned glyph sequence for the string s at the
// given font size.  For embedded fonts the glyphs used are registered
// for inclusion in the font subset, and kerning adjustments are folded
// into the Advance field of the preceding glyph.
func (f *Font) Layout(s string, size float64) (*GlyphSeq, error) {
	res := &GlyphSeq{}
	if s == "" {
		return res, nil
	}

	if f.Builtin != "" {
		if !codepoints.ValidASCII(s) {
			return nil, ErrNotASCII
		}
		m := stdmtx.Metrics[string(f.Builtin)]
		if m.Width == nil {
			return nil, ErrNoMetrics
		}
		for i := 0; i < len(s); i++ {
			c := s[i]
			res.Seq = append(res.Seq, Glyph{
				CID:     glyph.ID(c),
				Advance: m.Width[c] * size / 1000,
				Text:    []rune{rune(c)},
			})
		}
		return res, nil
	}

	if !codepoints.Valid(s) {
		return nil, ErrBadUTF8
	}
	kern := f.Face.HasKerning()
	var prev glyph.ID
	first := true
	for cp := range codepoints.All(s) {
		gid := f.Face.GlyphIndex(cp.Rune)
		if kern && !first {
			if adj := f.Face.Kern(prev, gid, size); adj != 0 {
				res.Seq[len(res.Seq)-1].Advance += adj
			}
		}
		res.Seq = append(res.Seq, Glyph{
			CID:     f.CID(gid, cp.Rune),
			Advance: f.Face.AdvanceWidth(gid, size),
			Text:    []rune{cp.Rune},
		})
		prev = gid
		first = false
	}
	return res, nil
}

// CIDWidth returns the natural advance width of the glyph with the
// given character identifier, scaled to the given font size.
func (f *Font) CIDWidth(c glyph.ID, size float64) float64 {
	if f.Builtin != "" {
		m := stdmtx.Metrics[string(f.Builtin)]
		if m.Width == nil || int(c) >= len(m.Width) {
			return 0
		}
		return m.Width[c] * size / 1000
	}
	if int(c) >= len(f.Glyphs) {
		return 0
	}
	return f.Face.AdvanceWidth(f.Glyphs[c], size)
}

// AppendCID appends the character code for the given character
// identifier to a PDF string.  Builtin fonts use one byte per
// character, embedded fonts use two.
func (f *Font) AppendCID(s pdfgen.String, c glyph.ID) pdfgen.String {
	if f.Builtin != "" {
		return append(s, byte(c))
	}
	return append(s, byte(c>>8), byte(c))
}
