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

import (
	"bufio"
	"bytes"
	"crypto/md5"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Putter is the interface for objects which allow adding indirect objects
// to a PDF file.  This is implemented by [Writer] and [Data].
type Putter interface {
	// Alloc allocates a new object number for an indirect object.
	Alloc() Reference

	// Put writes an indirect object to the file, using the given reference.
	Put(ref Reference, obj Object) error

	// OpenStream adds a PDF stream to the file and returns a writer which
	// can be used to add the stream's data.  No other objects can be added
	// to the file until the stream is closed.
	OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error)

	// GetMeta returns the meta information of the file.
	GetMeta() *MetaInfo

	// Close closes the file.
	Close() error
}

// WriterOptions allows to influence the way a PDF file is generated.
type WriterOptions struct {
	// ID is the optional file identifier, consisting of two byte slices.
	// If this is nil, a file identifier is generated when the file is
	// closed.
	ID [][]byte

	// Info is the optional document information dictionary.
	Info *Info
}

// Writer represents a PDF file open for writing.
// Use [NewWriter] to create a new Writer.
type Writer struct {
	// Meta contains the meta information of the PDF file.  The Catalog
	// field must be filled in before the file is closed.
	Meta MetaInfo

	w *posWriter

	nextRef  uint32
	xref     map[uint32]*xrefEntry
	inStream bool
	closed   bool
}

type xrefEntry struct {
	pos int64
	gen uint16
}

// NewWriter prepares a PDF file for writing, using the given PDF version.
//
// The Writer does not buffer the data in memory; objects are written to w as
// soon as they are added.  The file is not complete until [Writer.Close] has
// been called.  Closing the Writer does not close the underlying io.Writer.
func NewWriter(w io.Writer, ver Version, opt *WriterOptions) (*Writer, error) {
	if opt == nil {
		opt = &WriterOptions{}
	}

	versionString, err := ver.ToString()
	if err != nil {
		return nil, err
	}

	if len(opt.ID) != 0 && len(opt.ID) != 2 {
		return nil, errors.New("malformed file identifier")
	}

	pdf := &Writer{
		Meta: MetaInfo{
			Version: ver,
			Catalog: &Catalog{},
			Info:    opt.Info,
		},

		w: &posWriter{w: bufio.NewWriter(w)},

		nextRef: 1,
		xref:    make(map[uint32]*xrefEntry),
	}
	if len(opt.ID) == 2 {
		pdf.Meta.ID = [][]byte{
			bytes.Clone(opt.ID[0]),
			bytes.Clone(opt.ID[1]),
		}
	}

	_, err = fmt.Fprintf(pdf.w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", versionString)
	if err != nil {
		return nil, err
	}

	return pdf, nil
}

// GetMeta returns the meta information of the file.
// This implements part of the [Putter] interface.
func (pdf *Writer) GetMeta() *MetaInfo {
	return &pdf.Meta
}

// Alloc allocates a new object number for an indirect object.
// This implements part of the [Putter] interface.
func (pdf *Writer) Alloc() Reference {
	ref := NewReference(pdf.nextRef, 0)
	pdf.nextRef++
	return ref
}

// Put writes an indirect object to the file, using the given reference.
// This implements part of the [Putter] interface.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	err := pdf.checkReady(ref)
	if err != nil {
		return err
	}

	pos := pdf.w.pos
	_, err = fmt.Fprintf(pdf.w, "%d %d obj\n", ref.Number(), ref.Generation())
	if err != nil {
		return err
	}
	err = writeObject(pdf.w, obj)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\nendobj\n"))
	if err != nil {
		return err
	}

	pdf.setXRef(ref, pos)
	return nil
}

// OpenStream adds a PDF stream to the file and returns a writer which can be
// used to add the stream's data.  No other objects can be added to the file
// until the stream is closed.
//
// The stream data is buffered in memory until the stream is closed, so that
// the /Length entry of the stream dictionary can be computed.
// This implements part of the [Putter] interface.
func (pdf *Writer) OpenStream(ref Reference, dict Dict, filters ...Filter) (io.WriteCloser, error) {
	err := pdf.checkReady(ref)
	if err != nil {
		return nil, err
	}

	streamDict := maps.Clone(dict)
	if streamDict == nil {
		streamDict = Dict{}
	}
	// Copy the Filter and DecodeParms entries, so that we don't modify the
	// caller's dict when appending filters.
	if filter, ok := streamDict["Filter"].(Array); ok {
		streamDict["Filter"] = slices.Clone(filter)
	}
	if parms, ok := streamDict["DecodeParms"].(Array); ok {
		streamDict["DecodeParms"] = slices.Clone(parms)
	}

	var w io.WriteCloser = &streamWriter{
		pdf:  pdf,
		ref:  ref,
		dict: streamDict,
	}
	for _, filter := range filters {
		w, err = filter.Encode(pdf.Meta.Version, w)
		if err != nil {
			return nil, err
		}
		name, parms, err := filter.Info(pdf.Meta.Version)
		if err != nil {
			return nil, err
		}
		err = appendFilter(streamDict, name, parms)
		if err != nil {
			return nil, err
		}
	}

	pdf.inStream = true
	return w, nil
}

// streamWriter buffers the stream data in memory, and writes the complete
// stream object once the caller closes the stream.
type streamWriter struct {
	bytes.Buffer
	pdf  *Writer
	ref  Reference
	dict Dict
}

func (w *streamWriter) Close() error {
	w.pdf.inStream = false

	w.dict["Length"] = Integer(w.Len())
	stream := &Stream{
		Dict: w.dict,
		R:    bytes.NewReader(w.Bytes()),
	}
	return w.pdf.Put(w.ref, stream)
}

// Close writes the cross reference table and trailer of the PDF file.
// The underlying io.Writer is flushed, but not closed.
func (pdf *Writer) Close() error {
	if pdf.closed {
		return errors.New("writer already closed")
	}
	if pdf.inStream {
		return errors.New("stream is still open")
	}

	catalog := pdf.Meta.Catalog
	if catalog == nil || catalog.Pages == 0 {
		return errors.New("missing page tree")
	}
	catalogRef := pdf.Alloc()
	err := pdf.Put(catalogRef, AsDict(catalog))
	if err != nil {
		return err
	}

	var infoRef Reference
	if pdf.Meta.Info != nil {
		infoRef = pdf.Alloc()
		err = pdf.Put(infoRef, AsDict(pdf.Meta.Info))
		if err != nil {
			return err
		}
	}

	if pdf.Meta.ID == nil {
		id := pdf.generateID()
		pdf.Meta.ID = [][]byte{id, id}
	}

	trailer := Dict{
		"Size": Integer(pdf.nextRef),
		"Root": catalogRef,
		"ID": Array{
			String(pdf.Meta.ID[0]),
			String(pdf.Meta.ID[1]),
		},
	}
	if infoRef != 0 {
		trailer["Info"] = infoRef
	}

	xrefPos := pdf.w.pos
	err = pdf.writeXRefTable(trailer)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(pdf.w, "startxref\n%d\n%%%%EOF\n", xrefPos)
	if err != nil {
		return err
	}

	err = pdf.w.Flush()
	if err != nil {
		return err
	}

	pdf.closed = true
	return nil
}

// generateID computes a file identifier from the document metadata.
// The same metadata always leads to the same identifier, so that
// generated files are reproducible.
func (pdf *Writer) generateID() []byte {
	h := md5.New()
	versionString, _ := pdf.Meta.Version.ToString()
	fmt.Fprintln(h, versionString)
	fmt.Fprintln(h, Format(AsDict(pdf.Meta.Catalog)))
	if pdf.Meta.Info != nil {
		fmt.Fprintln(h, Format(AsDict(pdf.Meta.Info)))
	}
	fmt.Fprintln(h, pdf.nextRef)
	return h.Sum(nil)
}

func (pdf *Writer) checkReady(ref Reference) error {
	if pdf.closed {
		return errors.New("writer already closed")
	}
	if pdf.inStream {
		return errors.New("stream is still open")
	}
	if ref.Number() == 0 {
		return errors.New("invalid object reference")
	}
	if _, seen := pdf.xref[ref.Number()]; seen {
		return fmt.Errorf("object %s already written", ref)
	}
	if ref.Number() >= pdf.nextRef {
		pdf.nextRef = ref.Number() + 1
	}
	return nil
}

func (pdf *Writer) setXRef(ref Reference, pos int64) {
	pdf.xref[ref.Number()] = &xrefEntry{pos: pos, gen: ref.Generation()}
}

// writeXRefTable writes the cross reference table and the trailer
// dictionary.  Unused object numbers are chained into the free list.
func (pdf *Writer) writeXRefTable(trailer Dict) error {
	size := pdf.nextRef

	nextFree := make(map[uint32]uint32)
	prev := uint32(0)
	for number := uint32(1); number < size; number++ {
		if _, used := pdf.xref[number]; !used {
			nextFree[prev] = number
			prev = number
		}
	}

	_, err := fmt.Fprintf(pdf.w, "xref\n0 %d\n", size)
	if err != nil {
		return err
	}
	for number := uint32(0); number < size; number++ {
		// Each entry is exactly 20 bytes long, including the line break.
		if entry, used := pdf.xref[number]; used {
			_, err = fmt.Fprintf(pdf.w, "%010d %05d n\r\n", entry.pos, entry.gen)
		} else {
			_, err = fmt.Fprintf(pdf.w, "%010d 65535 f\r\n", nextFree[number])
		}
		if err != nil {
			return err
		}
	}

	_, err = pdf.w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pdf.w)
	if err != nil {
		return err
	}
	_, err = pdf.w.Write([]byte("\n"))
	return err
}

type posWriter struct {
	w   *bufio.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}

func (w *posWriter) Flush() error {
	return w.w.Flush()
}
