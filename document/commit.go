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
	"io"
	"os"

	"golang.org/x/text/language"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// Commit writes the document to the output file given at [New].
//
// The data is first written to a temporary file next to the output
// file, flushed to disk, and then moved into place.  If Commit fails,
// an existing output file is left unchanged; a stray temporary file
// may remain.
//
// Commit fails with [ErrNoPages] if no page has been added to the
// document.  In this case no file is created.
func (g *Generator) Commit() error {
	if len(g.pages) == 0 {
		return ErrNoPages
	}

	// All fallible preparation happens before the temporary file is
	// created, so that font or metadata problems do not leave files
	// behind.
	p, err := g.prepare()
	if err != nil {
		return err
	}

	tmp := g.path + "~"
	fd, err := os.Create(tmp)
	if err != nil {
		return &FileError{Op: "open", Path: tmp, Err: err}
	}

	err = g.writeDocument(fd, p)
	if err != nil {
		fd.Close()
		return &FileError{Op: "write", Path: tmp, Err: err}
	}

	err = fd.Sync()
	if err != nil {
		fd.Close()
		return &FileError{Op: "sync", Path: tmp, Err: err}
	}
	err = fd.Close()
	if err != nil {
		return &FileError{Op: "write", Path: tmp, Err: err}
	}

	err = os.Rename(tmp, g.path)
	if err != nil {
		return &FileError{Op: "rename", Path: g.path, Err: err}
	}
	return nil
}

// prepared holds the objects of a document which can only be
// constructed once all pages are known.
type prepared struct {
	fonts   []*preparedFont
	xmpData []byte
}

type preparedFont struct {
	ref  pdfgen.Reference
	dict pdfgen.Dict

	// The following fields are only used for embedded fonts.
	cidRef   pdfgen.Reference
	cidDict  pdfgen.Dict
	descRef  pdfgen.Reference
	descDict pdfgen.Dict
	fileRef  pdfgen.Reference
	fileData []byte
	tuRef    pdfgen.Reference
	tuData   []byte
}

func (g *Generator) prepare() (*prepared, error) {
	res := &prepared{}
	for _, f := range g.fonts {
		pf, err := g.prepareFont(f)
		if err != nil {
			return nil, err
		}
		res.fonts = append(res.fonts, pf)
	}
	if g.version >= pdfgen.V1_4 {
		data, err := g.buildXMP()
		if err != nil {
			return nil, err
		}
		res.xmpData = data
	}
	return res, nil
}

// prepareFont collects the PDF objects for one font.  For embedded
// fonts this subsets the font program to the glyphs actually used.
func (g *Generator) prepareFont(f *font.Font) (*preparedFont, error) {
	if f.Builtin != "" {
		return &preparedFont{
			ref: f.Ref,
			dict: pdfgen.Dict{
				"Type":     pdfgen.Name("Font"),
				"Subtype":  pdfgen.Name("Type1"),
				"BaseFont": pdfgen.Name(f.Builtin),
			},
		}, nil
	}

	info := f.Face.Info
	subsetData, err := info.Subset(f.Glyphs)
	if err != nil {
		return nil, err
	}

	subsetTag := font.GetSubsetTag(f.Glyphs, info.NumGlyphs)
	fontName := subsetTag + "+" + f.Face.PostScriptName()

	q := 1000 / float64(info.UnitsPerEm)

	// Character codes are positions in f.Glyphs, and the subset keeps
	// the glyphs in this order, so the widths can be indexed by code.
	ww := make([]funit.Int16, len(f.Glyphs))
	for i, gid := range f.Glyphs {
		ww[i] = info.GlyphWidth(gid)
	}
	dw, W := font.EncodeWidths(ww, info.UnitsPerEm)

	p := &preparedFont{
		ref:      f.Ref,
		cidRef:   g.alloc(),
		descRef:  g.alloc(),
		fileRef:  g.alloc(),
		tuRef:    g.alloc(),
		fileData: subsetData,
		tuData:   font.ToUnicodeCMap(f.Text),
	}

	p.dict = pdfgen.Dict{
		"Type":            pdfgen.Name("Font"),
		"Subtype":         pdfgen.Name("Type0"),
		"BaseFont":        pdfgen.Name(fontName),
		"Encoding":        pdfgen.Name("Identity-H"),
		"DescendantFonts": pdfgen.Array{p.cidRef},
		"ToUnicode":       p.tuRef,
	}

	ros := pdfgen.Dict{
		"Registry":   pdfgen.String("Adobe"),
		"Ordering":   pdfgen.String("Identity"),
		"Supplement": pdfgen.Integer(0),
	}
	p.cidDict = pdfgen.Dict{
		"Type":           pdfgen.Name("Font"),
		"Subtype":        pdfgen.Name("CIDFontType2"),
		"BaseFont":       pdfgen.Name(fontName),
		"CIDSystemInfo":  ros,
		"FontDescriptor": p.descRef,
		"CIDToGIDMap":    pdfgen.Name("Identity"),
	}
	if dw != 1000 {
		p.cidDict["DW"] = dw
	}
	if W != nil {
		p.cidDict["W"] = W
	}

	fd := &font.Descriptor{
		FontName:     fontName,
		IsFixedPitch: info.IsFixedPitch,
		IsSymbolic:   true,
		FontBBox: &pdfgen.Rectangle{
			LLx: info.FontBBox.LLx.AsFloat(q),
			LLy: info.FontBBox.LLy.AsFloat(q),
			URx: info.FontBBox.URx.AsFloat(q),
			URy: info.FontBBox.URy.AsFloat(q),
		},
		ItalicAngle: info.ItalicAngle,
		Ascent:      info.Ascent.AsFloat(q),
		Descent:     info.Descent.AsFloat(q),
		CapHeight:   info.CapHeight.AsFloat(q),
		StemV:       80,
	}
	p.descDict = fd.AsDict()
	p.descDict["FontFile2"] = p.fileRef

	return p, nil
}

// buildXMP encodes the XMP metadata packet for the document.
func (g *Generator) buildXMP() ([]byte, error) {
	dc := &xmp.DublinCore{}
	if g.info.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), g.info.Title)
	}
	if g.info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(g.info.Author))
	}
	if g.info.Subject != "" {
		dc.Description.Set(language.MustParse("x-default"), g.info.Subject)
	}

	basic := &xmp.Basic{
		CreateDate: xmp.NewDate(g.info.CreationDate),
		ModifyDate: xmp.NewDate(g.info.CreationDate),
	}

	pdfInfo := &pdfProperties{
		Producer: xmp.NewAgentName("seehuhn.de/go/pdfgen"),
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	buf := &bytes.Buffer{}
	err := packet.Write(buf, nil)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfProperties is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type pdfProperties struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// filters returns the filter pipeline for content and data streams.
func (g *Generator) filters() []pdfgen.Filter {
	if !g.compress {
		return nil
	}
	return []pdfgen.Filter{&pdfgen.FilterFlate{}}
}

// writeDocument writes the complete PDF file to out.
func (g *Generator) writeDocument(out io.Writer, p *prepared) error {
	w, err := pdfgen.NewWriter(out, g.version, &pdfgen.WriterOptions{Info: g.info})
	if err != nil {
		return err
	}

	for _, pf := range p.fonts {
		err = g.writeFont(w, pf)
		if err != nil {
			return err
		}
	}

	for _, gs := range g.extGStates {
		err = w.Put(gs.ref, gs.dict)
		if err != nil {
			return err
		}
	}

	for _, cs := range g.colorSpaces {
		err = g.writeColorSpace(w, cs)
		if err != nil {
			return err
		}
	}

	for _, pat := range g.patterns {
		dict := pdfgen.Dict{
			"Type":        pdfgen.Name("Pattern"),
			"PatternType": pdfgen.Integer(1),
			"PaintType":   pdfgen.Integer(1),
			"TilingType":  pdfgen.Integer(1),
			"BBox":        pat.bbox,
			"XStep":       pdfgen.Number(pat.xStep),
			"YStep":       pdfgen.Number(pat.yStep),
			"Resources":   pdfgen.AsDict(pat.resources),
		}
		err = writeStream(w, pat.ref, dict, pat.content, g.filters()...)
		if err != nil {
			return err
		}
	}

	for _, form := range g.forms {
		dict := pdfgen.Dict{
			"Subtype":   pdfgen.Name("Form"),
			"FormType":  pdfgen.Integer(1),
			"BBox":      form.bbox,
			"Resources": pdfgen.AsDict(form.resources),
		}
		err = writeStream(w, form.ref, dict, form.content, g.filters()...)
		if err != nil {
			return err
		}
	}

	treeRef := g.alloc()
	kids := make(pdfgen.Array, 0, len(g.pages))
	for _, page := range g.pages {
		contentRef := g.alloc()
		err = writeStream(w, contentRef, nil, page.content, g.filters()...)
		if err != nil {
			return err
		}

		pd := &pdfgen.PageDict{
			Parent:    treeRef,
			Resources: pdfgen.AsDict(page.resources),
			MediaBox:  page.mediaBox,
			Contents:  contentRef,
			Dur:       pdfgen.Number(page.duration),
		}
		if page.transition != nil {
			pd.Trans = page.transition.asDict()
		}
		pageRef := g.alloc()
		err = w.Put(pageRef, pdfgen.AsDict(pd))
		if err != nil {
			return err
		}
		kids = append(kids, pageRef)
	}
	err = w.Put(treeRef, pdfgen.Dict{
		"Type":  pdfgen.Name("Pages"),
		"Kids":  kids,
		"Count": pdfgen.Integer(len(kids)),
	})
	if err != nil {
		return err
	}

	catalog := w.GetMeta().Catalog
	catalog.Pages = treeRef
	catalog.Lang = g.lang

	if p.xmpData != nil {
		// The metadata stream is left uncompressed, so that XMP
		// scanners which do not understand PDF can find it.
		metaRef := g.alloc()
		dict := pdfgen.Dict{
			"Type":    pdfgen.Name("Metadata"),
			"Subtype": pdfgen.Name("XML"),
		}
		err = writeStream(w, metaRef, dict, p.xmpData)
		if err != nil {
			return err
		}
		catalog.Metadata = metaRef
	}

	if g.intent != nil {
		cs := g.colorSpaces[g.intent.cs]
		catalog.OutputIntents = pdfgen.Array{
			pdfgen.Dict{
				"Type":                      pdfgen.Name("OutputIntent"),
				"S":                         g.intent.subtype,
				"OutputConditionIdentifier": pdfgen.TextString(g.intent.identifier),
				"DestOutputProfile":         cs.streamRef,
			},
		}
	}

	return w.Close()
}

func (g *Generator) writeFont(w *pdfgen.Writer, pf *preparedFont) error {
	err := w.Put(pf.ref, pf.dict)
	if err != nil {
		return err
	}
	if pf.cidRef == 0 {
		return nil
	}

	err = w.Put(pf.cidRef, pf.cidDict)
	if err != nil {
		return err
	}
	err = w.Put(pf.descRef, pf.descDict)
	if err != nil {
		return err
	}

	fileDict := pdfgen.Dict{
		"Subtype": pdfgen.Name("TrueType"),
		"Length1": pdfgen.Integer(len(pf.fileData)),
	}
	err = writeStream(w, pf.fileRef, fileDict, pf.fileData, g.filters()...)
	if err != nil {
		return err
	}

	return writeStream(w, pf.tuRef, nil, pf.tuData, g.filters()...)
}

func (g *Generator) writeColorSpace(w *pdfgen.Writer, cs *colorSpaceInfo) error {
	dict := pdfgen.Dict{
		"N": pdfgen.Integer(cs.n),
	}
	err := writeStream(w, cs.streamRef, dict, cs.profile, g.filters()...)
	if err != nil {
		return err
	}
	return w.Put(cs.ref, pdfgen.Array{pdfgen.Name("ICCBased"), cs.streamRef})
}

func writeStream(w *pdfgen.Writer, ref pdfgen.Reference, dict pdfgen.Dict, data []byte, filters ...pdfgen.Filter) error {
	stm, err := w.OpenStream(ref, dict, filters...)
	if err != nil {
		return err
	}
	_, err = stm.Write(data)
	if err != nil {
		return err
	}
	return stm.Close()
}
