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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	w.TextMatrix = matrix.Identity
	w.TextLineMatrix = matrix.Identity
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextStart")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	w.Set &= ^StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetCharacterSpacing sets additional character spacing.
// The value does not scale with font size.
//
// This implements the PDF graphics operator "Tc".
func (w *Writer) TextSetCharacterSpacing(charSpacing float64) {
	if !w.isValid("TextSetCharacterSpacing", objText|objPage) {
		return
	}
	if w.isSet(StateTextCharacterSpacing) && nearlyEqual(charSpacing, w.TextCharacterSpacing) {
		return
	}

	w.TextCharacterSpacing = charSpacing
	w.Set |= StateTextCharacterSpacing

	_, w.Err = fmt.Fprintln(w.Content, w.coord(charSpacing), "Tc")
}

// TextSetWordSpacing sets additional word spacing.  The spacing is
// applied to every single-byte character code 32, and does not scale
// with font size.
//
// This implements the PDF graphics operator "Tw".
func (w *Writer) TextSetWordSpacing(wordSpacing float64) {
	if !w.isValid("TextSetWordSpacing", objText|objPage) {
		return
	}
	if w.isSet(StateTextWordSpacing) && nearlyEqual(wordSpacing, w.TextWordSpacing) {
		return
	}

	w.TextWordSpacing = wordSpacing
	w.Set |= StateTextWordSpacing

	_, w.Err = fmt.Fprintln(w.Content, w.coord(wordSpacing), "Tw")
}

// TextSetHorizontalScaling sets the horizontal scaling.  The effect of
// this is to stretch/compress the text horizontally.  The value 1
// corresponds to normal scaling.  Negative values correspond to
// horizontally mirrored text.
//
// This implements the PDF graphics operator "Tz".
func (w *Writer) TextSetHorizontalScaling(scaling float64) {
	if !w.isValid("TextSetHorizontalScaling", objText|objPage) {
		return
	}
	if w.isSet(StateTextHorizontalScaling) && nearlyEqual(scaling, w.TextHorizontalScaling) {
		return
	}

	w.TextHorizontalScaling = scaling
	w.Set |= StateTextHorizontalScaling

	_, w.Err = fmt.Fprintln(w.Content, w.coord(scaling*100), "Tz")
}

// TextSetLeading sets the leading.  The leading is the distance
// between the baselines of two consecutive lines of text.  Positive
// values indicate that the next line of text is below the current
// line.
//
// This implements the PDF graphics operator "TL".
func (w *Writer) TextSetLeading(leading float64) {
	if !w.isValid("TextSetLeading", objText|objPage) {
		return
	}
	if w.isSet(StateTextLeading) && nearlyEqual(leading, w.TextLeading) {
		return
	}

	w.TextLeading = leading
	w.Set |= StateTextLeading

	_, w.Err = fmt.Fprintln(w.Content, w.coord(leading), "TL")
}

// TextSetFont sets the font and font size.  The font must already have
// been registered with the document, so that it has an indirect
// reference.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(F *font.Font, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	if w.isSet(StateTextFont) && w.TextFont == F && nearlyEqual(w.TextFontSize, size) {
		return
	}
	if F.Ref == 0 {
		w.Err = errors.New("TextSetFont: font has not been added to the document")
		return
	}

	w.TextFont = F
	w.TextFontSize = size
	w.Set |= StateTextFont

	name := w.resourceName(catFont, F, F.Ref)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", w.coord(size), "Tf")
}

// TextSetRenderingMode sets the text rendering mode.
//
// This implements the PDF graphics operator "Tr".
func (w *Writer) TextSetRenderingMode(mode TextRenderingMode) {
	if !w.isValid("TextSetRenderingMode", objText|objPage) {
		return
	}
	if w.isSet(StateTextRenderingMode) && w.TextRenderingMode == mode {
		return
	}

	w.TextRenderingMode = mode
	w.Set |= StateTextRenderingMode

	_, w.Err = fmt.Fprintln(w.Content, int(mode), "Tr")
}

// TextSetRise sets the text rise.  Positive values move the text up.
// The value does not scale with font size.
//
// This implements the PDF graphics operator "Ts".
func (w *Writer) TextSetRise(rise float64) {
	if !w.isValid("TextSetRise", objText|objPage) {
		return
	}
	if w.isSet(StateTextRise) && nearlyEqual(rise, w.TextRise) {
		return
	}

	w.TextRise = rise
	w.Set |= StateTextRise

	_, w.Err = fmt.Fprintln(w.Content, w.coord(rise), "Ts")
}

// TextFirstLine moves to the start of the next line of text.
//
// This implements the PDF graphics operator "Td".
func (w *Writer) TextFirstLine(dx, dy float64) {
	if !w.isValid("TextFirstLine", objText) {
		return
	}

	w.TextLineMatrix = matrix.Translate(dx, dy).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "Td")
}

// TextSecondLine moves to the start of the next line of text and sets
// the leading to -dy.  Usually, dy is negative.
//
// This implements the PDF graphics operator "TD".
func (w *Writer) TextSecondLine(dx, dy float64) {
	if !w.isValid("TextSecondLine", objText) {
		return
	}

	w.TextLineMatrix = matrix.Translate(dx, dy).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix
	w.TextLeading = -dy
	w.Set |= StateTextLeading

	_, w.Err = fmt.Fprintln(w.Content, w.coord(dx), w.coord(dy), "TD")
}

// TextSetMatrix replaces the current text matrix and line matrix with M.
//
// This implements the PDF graphics operator "Tm".
func (w *Writer) TextSetMatrix(M matrix.Matrix) {
	if !w.isValid("TextSetMatrix", objText) {
		return
	}

	w.TextMatrix = M
	w.TextLineMatrix = M
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(M[0]), w.coord(M[1]), w.coord(M[2]),
		w.coord(M[3]), w.coord(M[4]), w.coord(M[5]), "Tm")
}

// TextNextLine moves to the start of the next line of text, using the
// current leading.
//
// This implements the PDF graphics operator "T*".
func (w *Writer) TextNextLine() {
	if !w.isValid("TextNextLine", objText) {
		return
	}
	if err := w.mustBeSet(StateTextMatrix | StateTextLeading); err != nil {
		w.Err = err
		return
	}

	w.TextLineMatrix = matrix.Translate(0, -w.TextLeading).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	_, w.Err = fmt.Fprintln(w.Content, "T*")
}

// TextShowRaw shows an already encoded text in the PDF file.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowRaw(s pdfgen.String) {
	if !w.isValid("TextShowRaw", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix | StateTextHorizontalScaling | StateTextWordSpacing | StateTextCharacterSpacing); err != nil {
		w.Err = err
		return
	}

	w.updateTextPosition(s)

	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}

// TextShowNextLineRaw starts a new line and then shows an already
// encoded text in the PDF file.  This has the same effect as
// [Writer.TextNextLine] followed by [Writer.TextShowRaw].
//
// This implements the PDF graphics operator "'".
func (w *Writer) TextShowNextLineRaw(s pdfgen.String) {
	if !w.isValid("TextShowNextLineRaw", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix | StateTextHorizontalScaling | StateTextWordSpacing | StateTextCharacterSpacing | StateTextLeading); err != nil {
		w.Err = err
		return
	}

	w.TextLineMatrix = matrix.Translate(0, -w.TextLeading).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	w.updateTextPosition(s)

	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " '")
}

// TextShowSpacedRaw adjusts word and character spacing and then shows
// an already encoded text in the PDF file.  This has the same effect
// as [Writer.TextSetWordSpacing] and [Writer.TextSetCharacterSpacing],
// followed by [Writer.TextShowNextLineRaw].
//
// This implements the PDF graphics operator `"`.
func (w *Writer) TextShowSpacedRaw(wordSpacing, charSpacing float64, s pdfgen.String) {
	if !w.isValid("TextShowSpacedRaw", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix | StateTextHorizontalScaling | StateTextLeading); err != nil {
		w.Err = err
		return
	}

	w.TextWordSpacing = wordSpacing
	w.TextCharacterSpacing = charSpacing
	w.Set |= StateTextWordSpacing | StateTextCharacterSpacing

	w.TextLineMatrix = matrix.Translate(0, -w.TextLeading).Mul(w.TextLineMatrix)
	w.TextMatrix = w.TextLineMatrix

	w.updateTextPosition(s)

	_, w.Err = fmt.Fprint(w.Content, w.coord(wordSpacing), " ", w.coord(charSpacing), " ")
	if w.Err != nil {
		return
	}
	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " \"")
}

// TextShowKernedRaw shows an already encoded text in the PDF file,
// using kerning information provided to adjust glyph spacing.  The
// arguments must be of type [pdfgen.String], [pdfgen.Integer],
// [pdfgen.Real] or [pdfgen.Number].  Positive numbers in the argument
// list move the following glyphs to the left.
//
// This implements the PDF graphics operator "TJ".
func (w *Writer) TextShowKernedRaw(args ...pdfgen.Object) {
	if !w.isValid("TextShowKernedRaw", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix | StateTextHorizontalScaling | StateTextWordSpacing | StateTextCharacterSpacing); err != nil {
		w.Err = err
		return
	}

	var a pdfgen.Array
	for _, arg := range args {
		var delta float64
		switch arg := arg.(type) {
		case pdfgen.String:
			w.updateTextPosition(arg)
		case pdfgen.Real:
			delta = float64(arg)
		case pdfgen.Integer:
			delta = float64(arg)
		case pdfgen.Number:
			delta = float64(arg)
		default:
			w.Err = fmt.Errorf("TextShowKernedRaw: invalid argument type %T", arg)
			return
		}
		if delta != 0 {
			delta *= -w.TextFontSize / 1000
			w.TextMatrix = matrix.Translate(delta*w.TextHorizontalScaling, 0).Mul(w.TextMatrix)
		}
		a = append(a, arg)
	}

	w.Err = a.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " TJ")
}

// updateTextPosition advances the text matrix by the width of the
// encoded string s.
func (w *Writer) updateTextPosition(s pdfgen.String) {
	F := w.TextFont
	size := w.TextFontSize

	var delta float64
	if F.Builtin != "" {
		for _, c := range s {
			delta += F.CIDWidth(glyph.ID(c), size) + w.TextCharacterSpacing
			if c == 32 {
				delta += w.TextWordSpacing
			}
		}
	} else {
		for i := 0; i+1 < len(s); i += 2 {
			cid := glyph.ID(s[i])<<8 | glyph.ID(s[i+1])
			delta += F.CIDWidth(cid, size) + w.TextCharacterSpacing
		}
	}
	w.TextMatrix = matrix.Translate(delta*w.TextHorizontalScaling, 0).Mul(w.TextMatrix)
}
