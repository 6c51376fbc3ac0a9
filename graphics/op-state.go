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
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/internal/float"
)

// PushGraphicsState saves the current graphics state.
//
// This implements the PDF graphics operator "q".
func (w *Writer) PushGraphicsState() {
	if !w.isValid("PushGraphicsState", objPage|objText) {
		return
	}

	w.nesting = append(w.nesting, pairTypeQ)
	w.stack = append(w.stack, w.State.Clone())

	_, w.Err = fmt.Fprintln(w.Content, "q")
}

// PopGraphicsState restores the previously saved graphics state.
//
// This implements the PDF graphics operator "Q".
func (w *Writer) PopGraphicsState() {
	if !w.isValid("PopGraphicsState", objPage|objText) {
		return
	}

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeQ {
		w.Err = fmt.Errorf("PopGraphicsState: no matching PushGraphicsState")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	w.State = w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]

	_, w.Err = fmt.Fprintln(w.Content, "Q")
}

// Transform applies a transformation matrix to the coordinate system.
// The new matrix is multiplied from the left onto the current
// transformation matrix.
//
// This implements the PDF graphics operator "cm".
func (w *Writer) Transform(extraTrfm matrix.Matrix) {
	if !w.isValid("Transform", objPage) {
		return
	}

	w.CTM = extraTrfm.Mul(w.CTM)

	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(extraTrfm[0], 3), float.Format(extraTrfm[1], 3),
		float.Format(extraTrfm[2], 3), float.Format(extraTrfm[3], 3),
		float.Format(extraTrfm[4], 3), float.Format(extraTrfm[5], 3), "cm")
}

// Translate moves the origin of the coordinate system.
func (w *Writer) Translate(dx, dy float64) {
	w.Transform(matrix.Translate(dx, dy))
}

// Scale scales the coordinate system.
func (w *Writer) Scale(sx, sy float64) {
	w.Transform(matrix.Scale(sx, sy))
}

// Rotate rotates the coordinate system counterclockwise around the
// origin, by the angle phi in radians.
func (w *Writer) Rotate(phi float64) {
	w.Transform(matrix.Rotate(phi))
}

// SetLineWidth sets the line width in user space units.
// The width must not be negative.
//
// This implements the PDF graphics operator "w".
func (w *Writer) SetLineWidth(width float64) {
	if !w.isValid("SetLineWidth", objPage|objText) {
		return
	}
	if width < 0 {
		w.Err = ErrNegativeLineWidth
		return
	}
	if w.isSet(StateLineWidth) && nearlyEqual(width, w.LineWidth) {
		return
	}

	w.LineWidth = width
	w.Set |= StateLineWidth

	_, w.Err = fmt.Fprintln(w.Content, float.Format(width, 3), "w")
}

// SetLineCap sets the line cap style.
//
// This implements the PDF graphics operator "J".
func (w *Writer) SetLineCap(cap LineCapStyle) {
	if !w.isValid("SetLineCap", objPage|objText) {
		return
	}
	if cap > 2 {
		w.Err = fmt.Errorf("SetLineCap: invalid line cap style %d", cap)
		return
	}
	if w.isSet(StateLineCap) && cap == w.LineCap {
		return
	}

	w.LineCap = cap
	w.Set |= StateLineCap

	_, w.Err = fmt.Fprintln(w.Content, int(cap), "J")
}

// SetLineJoin sets the line join style.
//
// This implements the PDF graphics operator "j".
func (w *Writer) SetLineJoin(join LineJoinStyle) {
	if !w.isValid("SetLineJoin", objPage|objText) {
		return
	}
	if join > 2 {
		w.Err = fmt.Errorf("SetLineJoin: invalid line join style %d", join)
		return
	}
	if w.isSet(StateLineJoin) && join == w.LineJoin {
		return
	}

	w.LineJoin = join
	w.Set |= StateLineJoin

	_, w.Err = fmt.Fprintln(w.Content, int(join), "j")
}

// SetMiterLimit sets the miter limit.
//
// This implements the PDF graphics operator "M".
func (w *Writer) SetMiterLimit(limit float64) {
	if !w.isValid("SetMiterLimit", objPage|objText) {
		return
	}
	if limit < 1 {
		w.Err = fmt.Errorf("SetMiterLimit: invalid miter limit %f", limit)
		return
	}
	if w.isSet(StateMiterLimit) && nearlyEqual(limit, w.MiterLimit) {
		return
	}

	w.MiterLimit = limit
	w.Set |= StateMiterLimit

	_, w.Err = fmt.Fprintln(w.Content, float.Format(limit, 3), "M")
}

// SetLineDash sets the line dash pattern.  An empty pattern makes
// strokes solid.
//
// This implements the PDF graphics operator "d".
func (w *Writer) SetLineDash(phase float64, pattern ...float64) {
	if !w.isValid("SetLineDash", objPage|objText) {
		return
	}
	for _, x := range pattern {
		if x < 0 {
			w.Err = fmt.Errorf("SetLineDash: negative dash length %f", x)
			return
		}
	}
	if w.isSet(StateLineDash) &&
		dashesEqual(pattern, w.DashPattern) &&
		nearlyEqual(phase, w.DashPhase) {
		return
	}

	w.DashPattern = pattern
	w.DashPhase = phase
	w.Set |= StateLineDash

	pp := make([]string, len(pattern))
	for i, x := range pattern {
		pp[i] = float.Format(x, 3)
	}
	_, w.Err = fmt.Fprintf(w.Content, "[%s] %s d\n",
		strings.Join(pp, " "), float.Format(phase, 3))
}

// SetRenderingIntent sets the rendering intent.
//
// This implements the PDF graphics operator "ri".
func (w *Writer) SetRenderingIntent(intent RenderingIntent) {
	if !w.isValid("SetRenderingIntent", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_1 {
		w.Err = &pdfgen.VersionError{Operation: "SetRenderingIntent", Earliest: pdfgen.V1_1}
		return
	}
	if w.isSet(StateRenderingIntent) && intent == w.RenderingIntent {
		return
	}

	w.RenderingIntent = intent
	w.Set |= StateRenderingIntent

	w.Err = pdfgen.Name(intent).PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " ri")
}

// SetFlatnessTolerance sets the maximum distance, in device pixels,
// by which a flattened curve may deviate from the true curve.
//
// This implements the PDF graphics operator "i".
func (w *Writer) SetFlatnessTolerance(flatness float64) {
	if !w.isValid("SetFlatnessTolerance", objPage|objText) {
		return
	}
	if flatness < 0 || flatness > 100 {
		w.Err = fmt.Errorf("SetFlatnessTolerance: invalid flatness %f", flatness)
		return
	}
	if w.isSet(StateFlatnessTolerance) && nearlyEqual(flatness, w.FlatnessTolerance) {
		return
	}

	w.FlatnessTolerance = flatness
	w.Set |= StateFlatnessTolerance

	_, w.Err = fmt.Fprintln(w.Content, float.Format(flatness, 3), "i")
}

// ApplyExtGState applies a graphics state parameter dictionary which
// has previously been written to the file.
//
// This implements the PDF graphics operator "gs".
func (w *Writer) ApplyExtGState(ref pdfgen.Reference) {
	if !w.isValid("ApplyExtGState", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_2 {
		w.Err = &pdfgen.VersionError{Operation: "ApplyExtGState", Earliest: pdfgen.V1_2}
		return
	}

	name := w.resourceName(catExtGState, ref, ref)

	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " gs")
}
