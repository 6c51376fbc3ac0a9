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

package graphics

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// TextLayout appends the glyphs of the string s to seq, after applying
// the text layout of the current font.  Character spacing, word
// spacing and horizontal scaling from the current graphics state are
// folded into the glyph advances.  If seq is nil, a new glyph sequence
// is allocated.
//
// The function returns an error if no font is set, or if the string
// cannot be represented in the current font.
func (w *Writer) TextLayout(seq *font.GlyphSeq, s string) (*font.GlyphSeq, error) {
	if err := w.mustBeSet(StateTextFont); err != nil {
		return nil, err
	}

	gg, err := w.TextFont.Layout(s, w.TextFontSize)
	if err != nil {
		return nil, err
	}
	for i, g := range gg.Seq {
		advance := g.Advance + w.TextCharacterSpacing
		if string(g.Text) == " " {
			advance += w.TextWordSpacing
		}
		gg.Seq[i].Advance = advance * w.TextHorizontalScaling
	}

	if seq == nil {
		return gg, nil
	}
	seq.Seq = append(seq.Seq, gg.Seq...)
	return seq, nil
}

// TextShow draws a string, using the text layout of the current font.
// The function returns the width of the string in text space units.
//
// This generates the PDF graphics operators "Tj" and "TJ", as needed.
func (w *Writer) TextShow(s string) float64 {
	if !w.isValid("TextShow", objText) {
		return 0
	}

	seq, err := w.TextLayout(nil, s)
	if err != nil {
		w.Err = err
		return 0
	}
	return w.TextShowGlyphs(seq)
}

// TextShowKerned draws text runs interleaved with explicit kerning
// adjustments, using the text layout of the current font.  Each
// argument must be a string or a number.  Numbers give horizontal
// adjustments in thousandths of text space units, scaled by the
// current font size; a positive adjustment moves the following text
// to the left.  The function returns the total advance in text space
// units.
//
// This generates the PDF graphics operators "Tj" and "TJ", as needed.
func (w *Writer) TextShowKerned(args ...any) float64 {
	if !w.isValid("TextShowKerned", objText) {
		return 0
	}

	seq := &font.GlyphSeq{}
	for _, arg := range args {
		var delta float64
		switch a := arg.(type) {
		case string:
			if _, err := w.TextLayout(seq, a); err != nil {
				w.Err = err
				return 0
			}
			continue
		case float64:
			delta = a
		case int:
			delta = float64(a)
		case pdfgen.Integer:
			delta = float64(a)
		case pdfgen.Real:
			delta = float64(a)
		case pdfgen.Number:
			delta = float64(a)
		default:
			w.Err = fmt.Errorf("TextShowKerned: invalid argument type %T", arg)
			return 0
		}

		shift := delta / 1000 * w.TextFontSize * w.TextHorizontalScaling
		if n := len(seq.Seq); n > 0 {
			seq.Seq[n-1].Advance -= shift
		} else {
			seq.Skip -= shift
		}
	}
	return w.TextShowGlyphs(seq)
}

// TextShowGlyphs draws a sequence of positioned glyphs.  Where the
// given glyph advances deviate from the natural advance widths, the
// difference is emitted as kerning adjustments.  The function returns
// the total advance in text space units.
//
// This generates the PDF graphics operators "Tj" and "TJ", as needed.
func (w *Writer) TextShowGlyphs(seq *font.GlyphSeq) float64 {
	if !w.isValid("TextShowGlyphs", objText) {
		return 0
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix | StateTextHorizontalScaling | StateTextWordSpacing | StateTextCharacterSpacing); err != nil {
		w.Err = err
		return 0
	}

	F := w.TextFont
	size := w.TextFontSize
	hScale := w.TextHorizontalScaling

	var run pdfgen.String
	var out pdfgen.Array

	// xWanted is the position where the next glyph should go,
	// xActual the position the PDF operators written so far produce.
	// Where the two disagree, a kerning adjustment brings them back
	// together.  Positive values in a TJ array move the next glyph to
	// the left by the given amount, in thousandths of text space units.
	xWanted := seq.Skip
	xActual := 0.0
	adjust := func() {
		if size == 0 || hScale == 0 {
			return
		}
		xOffsetInt := pdfgen.Integer(math.Round((xWanted - xActual) / size / hScale * 1000))
		if xOffsetInt == 0 {
			return
		}
		if len(run) > 0 {
			out = append(out, run)
			run = nil
		}
		out = append(out, -xOffsetInt)
		xActual += float64(xOffsetInt) / 1000 * size * hScale
	}
	flush := func() {
		if w.Err != nil {
			return
		}
		if len(run) > 0 {
			out = append(out, run)
			run = nil
		}
		if len(out) == 0 {
			return
		}
		if len(out) == 1 {
			if s, ok := out[0].(pdfgen.String); ok {
				w.Err = s.PDF(w.Content)
				if w.Err != nil {
					return
				}
				_, w.Err = fmt.Fprintln(w.Content, " Tj")
				out = nil
				return
			}
		}
		w.Err = out.PDF(w.Content)
		if w.Err != nil {
			return
		}
		_, w.Err = fmt.Fprintln(w.Content, " TJ")
		out = nil
	}

	for _, g := range seq.Seq {
		adjust()

		run = F.AppendCID(run, g.CID)

		glyphWidth := F.CIDWidth(g.CID, size) + w.TextCharacterSpacing
		if F.Builtin != "" && g.CID == 32 {
			glyphWidth += w.TextWordSpacing
		}
		xActual += glyphWidth * hScale
		xWanted += g.Advance
	}
	adjust()
	flush()

	if w.Err != nil {
		return 0
	}

	w.TextMatrix = matrix.Translate(xActual, 0).Mul(w.TextMatrix)

	return xActual
}
