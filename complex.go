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

package pdfgen

// This file contains more complex PDF data structures, which are composed
// of the elementary types from "objects.go".

import (
	"fmt"
	"io"
	"math"
	"time"
)

// A Number is either an Integer or a Real.
type Number float64

// PDF implements the [Object] interface.
func (x Number) PDF(w io.Writer) error {
	var obj Object
	if i := Integer(x); Number(i) == x {
		obj = i
	} else {
		obj = Real(x)
	}
	return obj.PDF(w)
}

// Rectangle represents a PDF rectangle.
type Rectangle struct {
	LLx, LLy, URx, URy float64
}

func (rect *Rectangle) String() string {
	return fmt.Sprintf("[%.2f %.2f %.2f %.2f]", rect.LLx, rect.LLy, rect.URx, rect.URy)
}

// PDF implements the [Object] interface.
func (rect *Rectangle) PDF(w io.Writer) error {
	res := Array{}
	for _, x := range []float64{rect.LLx, rect.LLy, rect.URx, rect.URy} {
		x = math.Round(100*x) / 100
		res = append(res, Number(x))
	}
	return res.PDF(w)
}

// IsZero is true if the rectangle is the zero rectangle object.
func (rect Rectangle) IsZero() bool {
	return rect.LLx == 0 && rect.LLy == 0 && rect.URx == 0 && rect.URy == 0
}

// NearlyEqual reports whether the corner coordinates of two rectangles
// differ by less than `eps`.
func (rect *Rectangle) NearlyEqual(other *Rectangle, eps float64) bool {
	return (math.Abs(rect.LLx-other.LLx) < eps &&
		math.Abs(rect.LLy-other.LLy) < eps &&
		math.Abs(rect.URx-other.URx) < eps &&
		math.Abs(rect.URy-other.URy) < eps)
}

// XPos returns the x-coordinate of a point in the rectangle, where rel=0
// corresponds to the left edge and rel=1 to the right edge.
func (rect *Rectangle) XPos(rel float64) float64 {
	return rect.LLx + rel*(rect.URx-rect.LLx)
}

// YPos returns the y-coordinate of a point in the rectangle, where rel=0
// corresponds to the bottom edge and rel=1 to the top edge.
func (rect *Rectangle) YPos(rel float64) float64 {
	return rect.LLy + rel*(rect.URy-rect.LLy)
}

// Width returns the width of the rectangle.
func (rect *Rectangle) Width() float64 {
	return rect.URx - rect.LLx
}

// Height returns the height of the rectangle.
func (rect *Rectangle) Height() float64 {
	return rect.URy - rect.LLy
}

// Extend enlarges the rectangle to also cover `other`.
func (rect *Rectangle) Extend(other *Rectangle) {
	if other.IsZero() {
		return
	}
	if rect.IsZero() {
		*rect = *other
		return
	}
	if other.LLx < rect.LLx {
		rect.LLx = other.LLx
	}
	if other.LLy < rect.LLy {
		rect.LLy = other.LLy
	}
	if other.URx > rect.URx {
		rect.URx = other.URx
	}
	if other.URy > rect.URy {
		rect.URy = other.URy
	}
}

// PageRotation describes how a page shall be rotated when displayed or
// printed.  The possible values are [RotateInherit], [Rotate0], [Rotate90],
// [Rotate180], [Rotate270].
type PageRotation int

// Valid values for PageRotation.
const (
	RotateInherit PageRotation = iota // use inherited value

	Rotate0   // don't rotate
	Rotate90  // rotate 90 degrees clockwise
	Rotate180 // rotate 180 degrees clockwise
	Rotate270 // rotate 270 degrees clockwise
)

// ToPDF returns the PDF representation of the rotation, in degrees.
func (r PageRotation) ToPDF() Integer {
	switch r {
	case Rotate90:
		return 90
	case Rotate180:
		return 180
	case Rotate270:
		return 270
	default:
		return 0
	}
}

// PageDict represents a PDF page dictionary.
//
// This structure is described in section 7.7.3.3 of PDF 32000-1:2008.
type PageDict struct {
	_ struct{} `pdf:"Type=Page"`

	// Parent specifies the immediate parent of this page object in the page
	// tree.
	Parent Reference

	// LastModified represents the date and time when the page contents were
	// last modified.
	LastModified time.Time `pdf:"optional"`

	// Resources lists the required resources (fonts, images, etc.) for the
	// page.  This is a [Resources] object.
	Resources Object

	// MediaBox defines the boundaries of the physical medium on which the page
	// will be displayed or printed, as a PDF [Rectangle].
	MediaBox Object

	// CropBox defines the visible region of the page's default user space. The
	// page contents will be clipped to this rectangle during display or
	// printing, as a PDF [Rectangle].
	//
	// Default value: the value of MediaBox.
	CropBox Object `pdf:"optional"`

	// BleedBox defines the region to which the contents of the page will be
	// clipped when output in a production environment, as a PDF [Rectangle].
	//
	// Default value: the value of CropBox.
	BleedBox Object `pdf:"optional"`

	// TrimBox defines the intended dimensions of the finished page after
	// trimming, as a PDF [Rectangle].
	//
	// Default value: the value of CropBox.
	TrimBox Object `pdf:"optional"`

	// ArtBox defines the extent of the page's meaningful content, including
	// potential white space, as intended by the page's creator, as a PDF
	// [Rectangle].
	//
	// Default value: the value of CropBox.
	ArtBox Object `pdf:"optional"`

	// Contents describes the content stream for the page.  This can be a
	// single stream or an array of streams.
	Contents Object `pdf:"optional"`

	// Rotate describes how the page will be rotated when displayed or printed.
	//
	// Default value: RotateInherit.
	Rotate PageRotation `pdf:"optional"`

	// Group specifies the page's page group for use in the transparent imaging
	// model.
	Group Object `pdf:"optional"`

	// Dur specifies the maximum length of time, in seconds, that the page will
	// be displayed during presentations before automatically advancing to the
	// next page.
	Dur Number `pdf:"optional"`

	// Trans describes the transition effect for the page during presentations.
	Trans Object `pdf:"optional"`

	// Annots is an array of references to all annotations associated with the
	// page.
	Annots Object `pdf:"optional"`

	// Metadata contains a PDF stream with metadata for the page.
	Metadata Object `pdf:"optional"`

	// UserUnit specifies the default user space unit in multiples of 1/72.
	//
	// Default value: 1.0.
	UserUnit Number `pdf:"optional"`
}

// Resources describes a PDF Resource Dictionary.
//
// See section 7.8.3 of PDF 32000-1:2008 for details.
type Resources struct {
	ExtGState  Dict  `pdf:"optional"` // maps resource names to graphics state parameter dictionaries
	ColorSpace Dict  `pdf:"optional"` // maps each resource name to either the name of a device-dependent colour space or an array describing a colour space
	Pattern    Dict  `pdf:"optional"` // maps resource names to pattern objects
	Shading    Dict  `pdf:"optional"` // maps resource names to shading dictionaries
	XObject    Dict  `pdf:"optional"` // maps resource names to external objects
	Font       Dict  `pdf:"optional"` // maps resource names to font dictionaries
	ProcSet    Array `pdf:"optional"` // predefined procedure set names
	Properties Dict  `pdf:"optional"` // maps resource names to property list dictionaries for marked content
}
