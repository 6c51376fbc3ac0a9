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

import "seehuhn.de/go/pdfgen"

// ExtGState describes a graphics state parameter dictionary.  Only
// fields set to a non-zero value are included in the PDF file.
type ExtGState struct {
	// LineWidth is the line width, in user space units.
	LineWidth float64

	// StrokeAlpha is the alpha constant for stroking operations.
	StrokeAlpha float64

	// FillAlpha is the alpha constant for filling and other
	// non-stroking operations.
	FillAlpha float64

	// BlendMode is the blend mode for the transparent imaging model,
	// for example "Multiply" or "Screen".
	BlendMode pdfgen.Name
}

type extGStateInfo struct {
	ref  pdfgen.Reference
	dict pdfgen.Dict
}

// AddExtGState registers a graphics state parameter dictionary with
// the document.  The returned ID can be used with
// [Context.SetExtGState].
func (g *Generator) AddExtGState(gs ExtGState) GStateID {
	dict := pdfgen.Dict{
		"Type": pdfgen.Name("ExtGState"),
	}
	if gs.LineWidth != 0 {
		dict["LW"] = pdfgen.Number(gs.LineWidth)
	}
	if gs.StrokeAlpha != 0 {
		dict["CA"] = pdfgen.Number(gs.StrokeAlpha)
	}
	if gs.FillAlpha != 0 {
		dict["ca"] = pdfgen.Number(gs.FillAlpha)
	}
	if gs.BlendMode != "" {
		dict["BM"] = gs.BlendMode
	}
	g.extGStates = append(g.extGStates, &extGStateInfo{
		ref:  g.alloc(),
		dict: dict,
	})
	return GStateID(len(g.extGStates) - 1)
}
