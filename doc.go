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

// Package pdfgen provides support for generating PDF files.
//
// This package treats a PDF file as a container for a sequence of objects
// (typically dictionaries and streams).  Objects are written sequentially,
// each under an object number allocated with [Writer.Alloc]:
//
//	buf := &bytes.Buffer{}
//	w, err := pdfgen.NewWriter(buf, pdfgen.V1_7, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	... add objects to the document using w.Put() and w.OpenStream() ...
//
//	w.GetMeta().Catalog.Pages = pages
//	err = w.Close()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	Stream
//	String
//
// The subpackages build on this container layer to produce complete PDF
// documents: [seehuhn.de/go/pdfgen/document] manages document structure and
// output files, [seehuhn.de/go/pdfgen/graphics] generates content streams,
// and [seehuhn.de/go/pdfgen/font] and [seehuhn.de/go/pdfgen/truetype]
// embed TrueType fonts.
package pdfgen
