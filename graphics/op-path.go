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
)

// MoveTo starts a new path or a new subpath of the current path,
// beginning at the given point.
//
// This implements the PDF graphics operator "m".
func (w *Writer) MoveTo(x, y float64) {
	if !w.isValid("MoveTo", objPage|objPath) {
		return
	}
	w.currentObject = objPath
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "m")
}

// LineTo appends a straight line segment from the current point to the
// given point.
//
// This implements the PDF graphics operator "l".
func (w *Writer) LineTo(x, y float64) {
	if !w.isValid("LineTo", objPath) {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, w.coord(x), w.coord(y), "l")
}

// CurveTo appends a cubic Bezier curve to the current subpath.  The
// curve extends from the current point to (x3, y3), with (x1, y1) and
// (x2, y2) as the control points.
//
// This implements the PDF graphics operator "c".
func (w *Writer) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !w.isValid("CurveTo", objPath) {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x1), w.coord(y1),
		w.coord(x2), w.coord(y2),
		w.coord(x3), w.coord(y3), "c")
}

// CurveToV appends a cubic Bezier curve which uses the current point
// as the first control point.
//
// This implements the PDF graphics operator "v".
func (w *Writer) CurveToV(x2, y2, x3, y3 float64) {
	if !w.isValid("CurveToV", objPath) {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x2), w.coord(y2),
		w.coord(x3), w.coord(y3), "v")
}

// CurveToY appends a cubic Bezier curve which uses the end point
// (x3, y3) as the second control point.
//
// This implements the PDF graphics operator "y".
func (w *Writer) CurveToY(x1, y1, x3, y3 float64) {
	if !w.isValid("CurveToY", objPath) {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x1), w.coord(y1),
		w.coord(x3), w.coord(y3), "y")
}

// ClosePath closes the current subpath with a straight line back to
// its starting point.
//
// This implements the PDF graphics operator "h".
func (w *Writer) ClosePath() {
	if !w.isValid("ClosePath", objPath) {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "h")
}

// Rectangle appends a complete rectangle, with the given width and
// height and the lower left corner at (x, y), to the current path as
// a new subpath.
//
// This implements the PDF graphics operator "re".
func (w *Writer) Rectangle(x, y, width, height float64) {
	if !w.isValid("Rectangle", objPage|objPath) {
		return
	}
	w.currentObject = objPath
	_, w.Err = fmt.Fprintln(w.Content,
		w.coord(x), w.coord(y), w.coord(width), w.coord(height), "re")
}

// Stroke strokes the current path.
//
// This implements the PDF graphics operator "S".
func (w *Writer) Stroke() {
	if !w.isValid("Stroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "S")
}

// CloseAndStroke closes and then strokes the current path.
//
// This implements the PDF graphics operator "s".
func (w *Writer) CloseAndStroke() {
	if !w.isValid("CloseAndStroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "s")
}

// Fill fills the current path, using the nonzero winding number rule.
// Open subpaths are closed implicitly.
//
// This implements the PDF graphics operator "f".
func (w *Writer) Fill() {
	if !w.isValid("Fill", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "f")
}

// FillCompat fills the current path like [Writer.Fill], using the
// obsolete "F" operator.  New content streams should use [Writer.Fill]
// instead.
func (w *Writer) FillCompat() {
	if !w.isValid("FillCompat", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "F")
}

// FillEvenOdd fills the current path, using the even-odd rule.
//
// This implements the PDF graphics operator "f*".
func (w *Writer) FillEvenOdd() {
	if !w.isValid("FillEvenOdd", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "f*")
}

// FillAndStroke fills and then strokes the current path, using the
// nonzero winding number rule for filling.
//
// This implements the PDF graphics operator "B".
func (w *Writer) FillAndStroke() {
	if !w.isValid("FillAndStroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "B")
}

// FillAndStrokeEvenOdd fills and then strokes the current path, using
// the even-odd rule for filling.
//
// This implements the PDF graphics operator "B*".
func (w *Writer) FillAndStrokeEvenOdd() {
	if !w.isValid("FillAndStrokeEvenOdd", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "B*")
}

// CloseFillAndStroke closes, fills and then strokes the current path,
// using the nonzero winding number rule for filling.
//
// This implements the PDF graphics operator "b".
func (w *Writer) CloseFillAndStroke() {
	if !w.isValid("CloseFillAndStroke", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "b")
}

// CloseFillAndStrokeEvenOdd closes, fills and then strokes the current
// path, using the even-odd rule for filling.
//
// This implements the PDF graphics operator "b*".
func (w *Writer) CloseFillAndStrokeEvenOdd() {
	if !w.isValid("CloseFillAndStrokeEvenOdd", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "b*")
}

// EndPath ends the path without filling or stroking it.  This is for
// use after [Writer.ClipNonZero] or [Writer.ClipEvenOdd], to set the
// clipping path without painting anything.
//
// This implements the PDF graphics operator "n".
func (w *Writer) EndPath() {
	if !w.isValid("EndPath", objPath|objClippingPath) {
		return
	}
	w.currentObject = objPage
	_, w.Err = fmt.Fprintln(w.Content, "n")
}

// ClipNonZero intersects the current clipping path with the current
// path, using the nonzero winding number rule.  The clipping path
// takes effect after the next painting operator.
//
// This implements the PDF graphics operator "W".
func (w *Writer) ClipNonZero() {
	if !w.isValid("ClipNonZero", objPath) {
		return
	}
	w.currentObject = objClippingPath
	_, w.Err = fmt.Fprintln(w.Content, "W")
}

// ClipEvenOdd intersects the current clipping path with the current
// path, using the even-odd rule.
//
// This implements the PDF graphics operator "W*".
func (w *Writer) ClipEvenOdd() {
	if !w.isValid("ClipEvenOdd", objPath) {
		return
	}
	w.currentObject = objClippingPath
	_, w.Err = fmt.Fprintln(w.Content, "W*")
}
