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

import (
	"bytes"
	"errors"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/graphics"
)

type contextKind int

const (
	contextPage contextKind = iota + 1
	contextPattern
	contextForm
)

func (k contextKind) String() string {
	switch k {
	case contextPage:
		return "page"
	case contextPattern:
		return "pattern"
	case contextForm:
		return "form XObject"
	default:
		return "unknown"
	}
}

// Context is a content stream under construction.  The embedded
// [graphics.Writer] provides the PDF content stream operators.
//
// A Context is created by one of [Generator.NewPage],
// [Generator.NewPattern] and [Generator.NewFormXObject], and is
// consumed by the corresponding Add method.  Using a Context after it
// has been added to the document panics.
type Context struct {
	*graphics.Writer

	gen  *Generator
	kind contextKind
	buf  *bytes.Buffer

	mediaBox   *pdfgen.Rectangle
	transition *Transition
	duration   float64

	bbox         *pdfgen.Rectangle
	xStep, yStep float64
}

func (g *Generator) newContext(kind contextKind) *Context {
	buf := &bytes.Buffer{}
	return &Context{
		Writer: graphics.NewWriter(buf, g.version),
		gen:    g,
		kind:   kind,
		buf:    buf,
	}
}

// NewPage opens a content scope for a new page.  The page uses the
// default paper size of the document until [Context.SetPageSize] is
// called.
//
// Call [Generator.AddPage] to add the finished page to the document.
func (g *Generator) NewPage() *Context {
	ctx := g.newContext(contextPage)
	ctx.mediaBox = g.paper
	return ctx
}

// NewPattern opens a content scope for a tiling pattern.  The pattern
// cell has the given width and height; the cell is tiled without gaps
// over the area painted with the pattern.
//
// Call [Generator.AddPattern] to add the finished pattern to the
// document.
func (g *Generator) NewPattern(width, height float64) *Context {
	ctx := g.newContext(contextPattern)
	ctx.bbox = &pdfgen.Rectangle{URx: width, URy: height}
	ctx.xStep = width
	ctx.yStep = height
	return ctx
}

// NewFormXObject opens a content scope for a form XObject, a group of
// graphics operators which can be painted repeatedly using
// [graphics.Writer.DrawXObject].
//
// Call [Generator.AddFormXObject] to add the finished form to the
// document.
func (g *Generator) NewFormXObject(bbox *pdfgen.Rectangle) *Context {
	ctx := g.newContext(contextForm)
	ctx.bbox = bbox
	return ctx
}

// SetPageSize overrides the media box for this page.
// For pattern and form contexts the call records an error.
func (c *Context) SetPageSize(paper *pdfgen.Rectangle) {
	if c.kind != contextPage {
		if c.Err == nil {
			c.Err = errors.New("page size on a " + c.kind.String() + " context")
		}
		return
	}
	c.mediaBox = paper
}

// SetTransition sets the presentation transition shown when the page
// is displayed.  For pattern and form contexts the call records an
// error.
func (c *Context) SetTransition(t *Transition) {
	if c.kind != contextPage {
		if c.Err == nil {
			c.Err = errors.New("transition on a " + c.kind.String() + " context")
		}
		return
	}
	c.transition = t
}

// SetDuration sets the time in seconds after which a presentation
// advances past this page automatically.  For pattern and form
// contexts the call records an error.
func (c *Context) SetDuration(seconds float64) {
	if c.kind != contextPage {
		if c.Err == nil {
			c.Err = errors.New("display duration on a " + c.kind.String() + " context")
		}
		return
	}
	c.duration = seconds
}

// SetFont selects a registered font for the following text.
func (c *Context) SetFont(id FontID, size float64) {
	c.TextSetFont(c.gen.fonts[id], size)
}

// DrawForm paints a registered form XObject.
func (c *Context) DrawForm(id FormXObjectID) {
	c.DrawXObject(c.gen.forms[id].ref)
}

// SetExtGState applies a registered graphics state parameter set.
func (c *Context) SetExtGState(id GStateID) {
	c.ApplyExtGState(c.gen.extGStates[id].ref)
}

// close finishes the content stream and detaches the Context, so that
// further use panics.
func (c *Context) close() error {
	err := c.Writer.Finish()
	if err != nil {
		return err
	}
	c.Writer = nil
	return nil
}

func (c *Context) checkOpen() {
	if c.Writer == nil {
		panic("context has already been added to the document")
	}
}

// pageInfo is a closed page waiting to be written by Commit.
type pageInfo struct {
	content    []byte
	resources  *pdfgen.Resources
	mediaBox   *pdfgen.Rectangle
	transition *Transition
	duration   float64
}

// patternInfo is a closed tiling pattern waiting to be written by
// Commit.
type patternInfo struct {
	ref          pdfgen.Reference
	content      []byte
	resources    *pdfgen.Resources
	bbox         *pdfgen.Rectangle
	xStep, yStep float64
}

// formInfo is a closed form XObject waiting to be written by Commit.
type formInfo struct {
	ref       pdfgen.Reference
	content   []byte
	resources *pdfgen.Resources
	bbox      *pdfgen.Rectangle
}

// AddPage closes the content scope and appends the page to the
// document.  The returned ID is the zero-based position of the page.
//
// If ctx was created by [Generator.NewPattern] or
// [Generator.NewFormXObject], the page is rejected with
// [ErrContextType] and ctx stays open.
func (g *Generator) AddPage(ctx *Context) (PageID, error) {
	ctx.checkOpen()
	if ctx.kind != contextPage {
		return 0, ErrContextType
	}

	resources := ctx.Resources
	err := ctx.close()
	if err != nil {
		return 0, err
	}

	g.pages = append(g.pages, &pageInfo{
		content:    ctx.buf.Bytes(),
		resources:  resources,
		mediaBox:   ctx.mediaBox,
		transition: ctx.transition,
		duration:   ctx.duration,
	})
	return PageID(len(g.pages) - 1), nil
}

// AddPattern closes the content scope and registers the tiling
// pattern for use on later pages.
//
// If ctx was created by [Generator.NewPage] or
// [Generator.NewFormXObject], the pattern is rejected with
// [ErrContextType] and ctx stays open.
func (g *Generator) AddPattern(ctx *Context) (PatternID, error) {
	ctx.checkOpen()
	if ctx.kind != contextPattern {
		return 0, ErrContextType
	}

	resources := ctx.Resources
	err := ctx.close()
	if err != nil {
		return 0, err
	}

	g.patterns = append(g.patterns, &patternInfo{
		ref:       g.alloc(),
		content:   ctx.buf.Bytes(),
		resources: resources,
		bbox:      ctx.bbox,
		xStep:     ctx.xStep,
		yStep:     ctx.yStep,
	})
	return PatternID(len(g.patterns) - 1), nil
}

// AddFormXObject closes the content scope and registers the form
// XObject for use on later pages.
//
// If ctx was created by [Generator.NewPage] or
// [Generator.NewPattern], the form is rejected with [ErrContextType]
// and ctx stays open.
func (g *Generator) AddFormXObject(ctx *Context) (FormXObjectID, error) {
	ctx.checkOpen()
	if ctx.kind != contextForm {
		return 0, ErrContextType
	}

	resources := ctx.Resources
	err := ctx.close()
	if err != nil {
		return 0, err
	}

	g.forms = append(g.forms, &formInfo{
		ref:       g.alloc(),
		content:   ctx.buf.Bytes(),
		resources: resources,
		bbox:      ctx.bbox,
	})
	return FormXObjectID(len(g.forms) - 1), nil
}
