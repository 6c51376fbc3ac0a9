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

// Package document generates complete PDF documents.
//
// A [Generator] accumulates pages, fonts and other resources in
// memory.  Page contents are drawn using [Context] objects, which
// provide the PDF content stream operators.  [Generator.Commit]
// writes the finished document to disk, atomically replacing the
// output file.
package document

import (
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// Options controls details of the generated document.
// The zero value is a valid set of default options.
type Options struct {
	// Version is the PDF version of the generated file.
	// The default is PDF 1.7.
	Version pdfgen.Version

	// PageSize is the default media box for new pages.
	// The default is A4 paper in portrait orientation.
	PageSize *pdfgen.Rectangle

	// Compress enables Flate compression for content streams,
	// embedded font programs and metadata.
	Compress bool

	// Title, Author, Subject and Creator are copied into the document
	// information dictionary and the XMP metadata stream.
	Title   string
	Author  string
	Subject string
	Creator string

	// Lang is the default natural language of the document.
	Lang language.Tag

	// CreationDate is the time recorded as the creation date of the
	// document.  The zero value means the current time.
	CreationDate time.Time
}

// FontID identifies a font registered with a [Generator].
type FontID int

// PageID identifies a page added to a [Generator].
type PageID int

// PatternID identifies a tiling pattern added to a [Generator].
type PatternID int

// FormXObjectID identifies a form XObject added to a [Generator].
type FormXObjectID int

// ColorSpaceID identifies an ICC-based color space registered with a
// [Generator].
type ColorSpaceID int

// GStateID identifies a graphics state parameter set registered with
// a [Generator].
type GStateID int

// Generator is a PDF document under construction.
//
// A Generator must not be shared between goroutines.
type Generator struct {
	path     string
	version  pdfgen.Version
	paper    *pdfgen.Rectangle
	compress bool
	lang     language.Tag
	info     *pdfgen.Info

	nextRef uint32

	fonts       []*font.Font
	pages       []*pageInfo
	patterns    []*patternInfo
	forms       []*formInfo
	colorSpaces []*colorSpaceInfo
	extGStates  []*extGStateInfo

	intent *outputIntent
}

// New prepares a new document which will be written to the file with
// the given name.  No file is created until [Generator.Commit] is
// called.
func New(filename string, opt *Options) (*Generator, error) {
	if opt == nil {
		opt = &Options{}
	}

	version := opt.Version
	if version == 0 {
		version = pdfgen.V1_7
	}
	if _, err := version.ToString(); err != nil {
		return nil, err
	}

	paper := opt.PageSize
	if paper == nil {
		paper = A4
	}

	creationDate := opt.CreationDate
	if creationDate.IsZero() {
		creationDate = time.Now()
	}
	info := &pdfgen.Info{
		Title:        opt.Title,
		Author:       opt.Author,
		Subject:      opt.Subject,
		Creator:      opt.Creator,
		CreationDate: creationDate,
	}

	return &Generator{
		path:     filename,
		version:  version,
		paper:    paper,
		compress: opt.Compress,
		lang:     opt.Lang,
		info:     info,
		nextRef:  1,
	}, nil
}

// alloc reserves an object number in the generated file.  The objects
// themselves are written by Commit.
func (g *Generator) alloc() pdfgen.Reference {
	ref := pdfgen.NewReference(g.nextRef, 0)
	g.nextRef++
	return ref
}

// Font returns the font registered under the given ID.
func (g *Generator) Font(id FontID) *font.Font {
	return g.fonts[id]
}

// PatternRef returns the reference of a registered tiling pattern,
// for use with [graphics.Writer.SetFillPattern] and
// [graphics.Writer.SetStrokePattern].
func (g *Generator) PatternRef(id PatternID) pdfgen.Reference {
	return g.patterns[id].ref
}

// FormRef returns the reference of a registered form XObject, for use
// with [graphics.Writer.DrawXObject].
func (g *Generator) FormRef(id FormXObjectID) pdfgen.Reference {
	return g.forms[id].ref
}

// ColorSpaceRef returns the reference of a registered ICC-based color
// space, for use with [graphics.Writer.SetFillColorSpace] and
// [graphics.Writer.SetStrokeColorSpace].
func (g *Generator) ColorSpaceRef(id ColorSpaceID) pdfgen.Reference {
	return g.colorSpaces[id].ref
}

// ExtGStateRef returns the reference of a registered graphics state
// parameter set.
func (g *Generator) ExtGStateRef(id GStateID) pdfgen.Reference {
	return g.extGStates[id].ref
}
