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

// Package graphics provides a builder for PDF content streams.
//
// A [Writer] appends PDF operators to a content stream and tracks the
// graphics state as it goes.  Operators which are not allowed in the
// current state set the Err field, and once Err is set all further
// calls are ignored.  This allows to chain drawing operations without
// checking for errors after every call; the first error is reported by
// [Writer.Finish].
package graphics

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/pdfgen"
)

// Errors reported by a [Writer].
var (
	// ErrNegativeLineWidth is returned when a negative line width is set.
	ErrNegativeLineWidth = errors.New("negative line width")

	// ErrEmcOnEmpty is returned when a marked-content sequence is ended
	// while none is open.
	ErrEmcOnEmpty = errors.New("no open marked-content sequence")

	// ErrUnclosedMarkedContent is returned by [Writer.Finish] when a
	// marked-content sequence is still open at the end of the stream.
	ErrUnclosedMarkedContent = errors.New("unclosed marked-content sequence")
)

// Writer writes a PDF content stream.
type Writer struct {
	Content   io.Writer
	Resources *pdfgen.Resources
	Version   pdfgen.Version

	// Err is the first error which occurred while writing the stream.
	// Once Err is non-nil, all writer methods return immediately.
	Err error

	State
	stack []State

	currentObject objectType
	nesting       []pairType

	resName map[resKey]pdfgen.Name
}

// NewWriter allocates a new content stream writer.
func NewWriter(content io.Writer, v pdfgen.Version) *Writer {
	return &Writer{
		Content:   content,
		Resources: &pdfgen.Resources{},
		Version:   v,

		State: NewState(),

		currentObject: objPage,

		resName: map[resKey]pdfgen.Name{},
	}
}

// Finish checks that the stream ends in a consistent state.
// It returns the first error encountered while writing the stream,
// or an error if any q, BT or BMC operator is left unclosed.
func (w *Writer) Finish() error {
	if w.Err != nil {
		return w.Err
	}
	if w.currentObject != objPage {
		w.Err = fmt.Errorf("content stream ends inside a %s object", w.currentObject)
		return w.Err
	}
	if len(w.nesting) > 0 {
		inner := w.nesting[len(w.nesting)-1]
		if inner == pairTypeBMC {
			w.Err = ErrUnclosedMarkedContent
		} else {
			w.Err = fmt.Errorf("unclosed %s", inner)
		}
		return w.Err
	}
	return nil
}

// isValid returns true, if the current graphics object is one of the
// given types.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}
	if w.currentObject&ss != 0 {
		return true
	}
	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// objectType represents the graphics object the content stream is
// currently inside, as in Figure 9 of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
	objClippingPath
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	case objClippingPath:
		return "clipping path"
	default:
		return fmt.Sprintf("objectType(%d)", int(s))
	}
}

// pairType is an operator which must be closed by a matching partner
// before the content stream ends.
type pairType byte

const (
	pairTypeQ   pairType = iota + 1 // q ... Q
	pairTypeBT                      // BT ... ET
	pairTypeBMC                     // BMC/BDC ... EMC
)

func (p pairType) String() string {
	switch p {
	case pairTypeQ:
		return "q operator"
	case pairTypeBT:
		return "BT operator"
	case pairTypeBMC:
		return "marked-content sequence"
	default:
		return fmt.Sprintf("pairType(%d)", int(p))
	}
}

type resourceCategory byte

const (
	catFont resourceCategory = iota + 1
	catExtGState
	catXObject
	catColorSpace
	catPattern
	catShading
	catProperties
)

// resKey identifies a resource within its category.
type resKey struct {
	cat resourceCategory
	res any
}

// resourceName returns the name by which the given resource can be
// referred to in the content stream.  The resource is added to the
// resource dictionary when it is first used.
func (w *Writer) resourceName(cat resourceCategory, res any, obj pdfgen.Object) pdfgen.Name {
	key := resKey{cat, res}
	if name, ok := w.resName[key]; ok {
		return name
	}

	dict := w.categoryDict(cat)
	if *dict == nil {
		*dict = pdfgen.Dict{}
	}
	name := w.generateName(cat, *dict)
	(*dict)[name] = obj
	w.resName[key] = name
	return name
}

func (w *Writer) categoryDict(cat resourceCategory) *pdfgen.Dict {
	switch cat {
	case catFont:
		return &w.Resources.Font
	case catExtGState:
		return &w.Resources.ExtGState
	case catXObject:
		return &w.Resources.XObject
	case catColorSpace:
		return &w.Resources.ColorSpace
	case catPattern:
		return &w.Resources.Pattern
	case catShading:
		return &w.Resources.Shading
	case catProperties:
		return &w.Resources.Properties
	default:
		panic("invalid resource category")
	}
}

func (w *Writer) generateName(cat resourceCategory, dict pdfgen.Dict) pdfgen.Name {
	var prefix string
	switch cat {
	case catFont:
		prefix = "F"
	case catExtGState:
		prefix = "E"
	case catXObject:
		prefix = "X"
	case catColorSpace:
		prefix = "C"
	case catPattern:
		prefix = "P"
	case catShading:
		prefix = "S"
	case catProperties:
		prefix = "M"
	}

	numUsed := len(dict)
	for k := numUsed + 1; ; k-- {
		name := pdfgen.Name(prefix + strconv.Itoa(k))
		if _, ok := dict[name]; !ok {
			return name
		}
	}
}
