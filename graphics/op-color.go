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

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/internal/float"
)

func checkComponents(cmd string, components ...float64) error {
	for _, x := range components {
		if x < 0 || x > 1 {
			return fmt.Errorf("%s: color component %f out of range", cmd, x)
		}
	}
	return nil
}

// SetFillGray sets the fill color to a gray value in the DeviceGray
// color space.  The value 0 is black, 1 is white.
//
// This implements the PDF graphics operator "g".
func (w *Writer) SetFillGray(gray float64) {
	if !w.isValid("SetFillGray", objPage|objText) {
		return
	}
	if w.Err = checkComponents("SetFillGray", gray); w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, float.Format(gray, 3), "g")
}

// SetStrokeGray sets the stroke color to a gray value in the
// DeviceGray color space.
//
// This implements the PDF graphics operator "G".
func (w *Writer) SetStrokeGray(gray float64) {
	if !w.isValid("SetStrokeGray", objPage|objText) {
		return
	}
	if w.Err = checkComponents("SetStrokeGray", gray); w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, float.Format(gray, 3), "G")
}

// SetFillRGB sets the fill color in the DeviceRGB color space.
// All components must be in the range from 0 to 1.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillRGB(r, g, b float64) {
	if !w.isValid("SetFillRGB", objPage|objText) {
		return
	}
	if w.Err = checkComponents("SetFillRGB", r, g, b); w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(r, 3), float.Format(g, 3), float.Format(b, 3), "rg")
}

// SetStrokeRGB sets the stroke color in the DeviceRGB color space.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeRGB(r, g, b float64) {
	if !w.isValid("SetStrokeRGB", objPage|objText) {
		return
	}
	if w.Err = checkComponents("SetStrokeRGB", r, g, b); w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(r, 3), float.Format(g, 3), float.Format(b, 3), "RG")
}

// SetFillCMYK sets the fill color in the DeviceCMYK color space.
//
// This implements the PDF graphics operator "k".
func (w *Writer) SetFillCMYK(c, m, y, k float64) {
	if !w.isValid("SetFillCMYK", objPage|objText) {
		return
	}
	if w.Err = checkComponents("SetFillCMYK", c, m, y, k); w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(c, 3), float.Format(m, 3),
		float.Format(y, 3), float.Format(k, 3), "k")
}

// SetStrokeCMYK sets the stroke color in the DeviceCMYK color space.
//
// This implements the PDF graphics operator "K".
func (w *Writer) SetStrokeCMYK(c, m, y, k float64) {
	if !w.isValid("SetStrokeCMYK", objPage|objText) {
		return
	}
	if w.Err = checkComponents("SetStrokeCMYK", c, m, y, k); w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content,
		float.Format(c, 3), float.Format(m, 3),
		float.Format(y, 3), float.Format(k, 3), "K")
}

// SetFillColorSpace selects a color space, written to the file
// beforehand, for filling operations.  The fill color is reset to the
// initial color of the space.
//
// This implements the PDF graphics operator "cs".
func (w *Writer) SetFillColorSpace(ref pdfgen.Reference) {
	if !w.isValid("SetFillColorSpace", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_1 {
		w.Err = &pdfgen.VersionError{Operation: "SetFillColorSpace", Earliest: pdfgen.V1_1}
		return
	}

	name := w.resourceName(catColorSpace, ref, ref)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " cs")
}

// SetStrokeColorSpace selects a color space, written to the file
// beforehand, for stroking operations.
//
// This implements the PDF graphics operator "CS".
func (w *Writer) SetStrokeColorSpace(ref pdfgen.Reference) {
	if !w.isValid("SetStrokeColorSpace", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_1 {
		w.Err = &pdfgen.VersionError{Operation: "SetStrokeColorSpace", Earliest: pdfgen.V1_1}
		return
	}

	name := w.resourceName(catColorSpace, ref, ref)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " CS")
}

// SetFillColor sets the fill color within the color space selected by
// [Writer.SetFillColorSpace].
//
// This implements the PDF graphics operator "scn".
func (w *Writer) SetFillColor(components ...float64) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}

	_, w.Err = fmt.Fprintf(w.Content, "%s scn\n", formatComponents(components))
}

// SetStrokeColor sets the stroke color within the color space selected
// by [Writer.SetStrokeColorSpace].
//
// This implements the PDF graphics operator "SCN".
func (w *Writer) SetStrokeColor(components ...float64) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}

	_, w.Err = fmt.Fprintf(w.Content, "%s SCN\n", formatComponents(components))
}

// SetFillPattern sets the fill color to a pattern, written to the file
// beforehand.
//
// This implements the PDF graphics operators "cs" and "scn".
func (w *Writer) SetFillPattern(ref pdfgen.Reference) {
	if !w.isValid("SetFillPattern", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_2 {
		w.Err = &pdfgen.VersionError{Operation: "SetFillPattern", Earliest: pdfgen.V1_2}
		return
	}

	name := w.resourceName(catPattern, ref, ref)

	_, w.Err = fmt.Fprintln(w.Content, "/Pattern cs")
	if w.Err != nil {
		return
	}
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " scn")
}

// SetStrokePattern sets the stroke color to a pattern, written to the
// file beforehand.
//
// This implements the PDF graphics operators "CS" and "SCN".
func (w *Writer) SetStrokePattern(ref pdfgen.Reference) {
	if !w.isValid("SetStrokePattern", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_2 {
		w.Err = &pdfgen.VersionError{Operation: "SetStrokePattern", Earliest: pdfgen.V1_2}
		return
	}

	name := w.resourceName(catPattern, ref, ref)

	_, w.Err = fmt.Fprintln(w.Content, "/Pattern CS")
	if w.Err != nil {
		return
	}
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " SCN")
}

// DrawShading paints the given shading, written to the file beforehand,
// into the current clipping region.
//
// This implements the PDF graphics operator "sh".
func (w *Writer) DrawShading(ref pdfgen.Reference) {
	if !w.isValid("DrawShading", objPage) {
		return
	}
	if w.Version < pdfgen.V1_3 {
		w.Err = &pdfgen.VersionError{Operation: "DrawShading", Earliest: pdfgen.V1_3}
		return
	}

	name := w.resourceName(catShading, ref, ref)
	w.Err = name.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " sh")
}

func formatComponents(components []float64) string {
	cc := make([]string, len(components))
	for i, x := range components {
		cc[i] = float.Format(x, 3)
	}
	return strings.Join(cc, " ")
}
