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

	"seehuhn.de/go/pdfgen"
)

// MarkedContent describes a marked-content point or sequence.
type MarkedContent struct {
	// Tag specifies the role or significance of the point/sequence.
	Tag pdfgen.Name

	// Properties is an optional property list providing additional
	// data.  This can either be a [pdfgen.Dict], which is embedded
	// inline in the content stream, or a [pdfgen.Reference] to a
	// property list written to the file beforehand.  Marked content
	// without properties uses the BMC/MP operators, marked content
	// with properties the BDC/DP operators.
	Properties pdfgen.Object
}

// MarkedContentPoint adds a marked-content point to the content stream.
//
// This implements the PDF graphics operators "MP" and "DP".
func (w *Writer) MarkedContentPoint(mc *MarkedContent) {
	if !w.isValid("MarkedContentPoint", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_2 {
		w.Err = &pdfgen.VersionError{Operation: "marked content", Earliest: pdfgen.V1_2}
		return
	}

	w.Err = mc.Tag.PDF(w.Content)
	if w.Err != nil {
		return
	}
	if mc.Properties == nil {
		_, w.Err = fmt.Fprintln(w.Content, " MP")
		return
	}

	prop := w.propertiesObject(mc)
	_, w.Err = fmt.Fprint(w.Content, " ")
	if w.Err != nil {
		return
	}
	w.Err = prop.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " DP")
}

// MarkedContentStart begins a marked-content sequence.  The sequence
// is terminated by a call to [Writer.MarkedContentEnd].
//
// This implements the PDF graphics operators "BMC" and "BDC".
func (w *Writer) MarkedContentStart(mc *MarkedContent) {
	if !w.isValid("MarkedContentStart", objPage|objText) {
		return
	}
	if w.Version < pdfgen.V1_2 {
		w.Err = &pdfgen.VersionError{Operation: "marked content", Earliest: pdfgen.V1_2}
		return
	}

	w.nesting = append(w.nesting, pairTypeBMC)

	w.Err = mc.Tag.PDF(w.Content)
	if w.Err != nil {
		return
	}
	if mc.Properties == nil {
		_, w.Err = fmt.Fprintln(w.Content, " BMC")
		return
	}

	prop := w.propertiesObject(mc)
	_, w.Err = fmt.Fprint(w.Content, " ")
	if w.Err != nil {
		return
	}
	w.Err = prop.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " BDC")
}

// propertiesObject returns the operand which refers to the property
// list of mc in the content stream.  Property lists given as indirect
// references are routed through the resource dictionary, dictionaries
// are embedded inline.
func (w *Writer) propertiesObject(mc *MarkedContent) pdfgen.Object {
	if ref, ok := mc.Properties.(pdfgen.Reference); ok {
		return w.resourceName(catProperties, ref, ref)
	}
	return mc.Properties
}

// MarkedContentEnd ends a marked-content sequence.  This must be
// matched with a preceding call to [Writer.MarkedContentStart].
//
// This implements the PDF graphics operator "EMC".
func (w *Writer) MarkedContentEnd() {
	if !w.isValid("MarkedContentEnd", objPage|objText) {
		return
	}

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBMC {
		w.Err = ErrEmcOnEmpty
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]

	_, w.Err = fmt.Fprintln(w.Content, "EMC")
}
