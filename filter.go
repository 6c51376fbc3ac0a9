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
	"compress/zlib"
	"errors"
	"io"
)

// Filter represents a PDF stream filter.
type Filter interface {
	// Info returns the name and parameters of the filter.
	Info(ver Version) (Name, Dict, error)

	// Encode returns a writer which encodes data written to it and writes
	// the encoded data to w.  The returned writer must be closed to flush
	// the filter state; closing it also closes w.
	Encode(ver Version, w io.WriteCloser) (io.WriteCloser, error)

	// Decode returns a reader which reads encoded data from r and returns
	// the decoded data.
	Decode(ver Version, r io.Reader) (io.Reader, error)
}

// FilterFlate is the FlateDecode filter, based on the zlib compressed data
// format.  The filter requires PDF version 1.2 or newer.
type FilterFlate struct {
	// Level is the compression level, in the range 1 (fastest) to
	// 9 (best compression).  Level 0 selects the default compression
	// level.
	Level int
}

// Info implements the [Filter] interface.
func (f *FilterFlate) Info(ver Version) (Name, Dict, error) {
	if ver < V1_2 {
		return "", nil, &VersionError{Operation: "FlateDecode filter", Earliest: V1_2}
	}
	return "FlateDecode", nil, nil
}

// Encode implements the [Filter] interface.
func (f *FilterFlate) Encode(ver Version, w io.WriteCloser) (io.WriteCloser, error) {
	if _, _, err := f.Info(ver); err != nil {
		return nil, err
	}
	level := f.Level
	if level == 0 {
		level = zlib.DefaultCompression
	}
	zw, err := zlib.NewWriterLevel(w, level)
	if err != nil {
		return nil, err
	}
	return &flateWriter{zw: zw, next: w}, nil
}

// Decode implements the [Filter] interface.
func (f *FilterFlate) Decode(ver Version, r io.Reader) (io.Reader, error) {
	if _, _, err := f.Info(ver); err != nil {
		return nil, err
	}
	return zlib.NewReader(r)
}

type flateWriter struct {
	zw   *zlib.Writer
	next io.WriteCloser
}

func (w *flateWriter) Write(p []byte) (int, error) {
	return w.zw.Write(p)
}

func (w *flateWriter) Close() error {
	err := w.zw.Close()
	if err != nil {
		return err
	}
	return w.next.Close()
}

// appendFilter adds a filter to the Filter and DecodeParms entries of a
// stream dictionary.
func appendFilter(dict Dict, name Name, parms Dict) error {
	var parmsObj Object
	if len(parms) > 0 {
		parmsObj = parms
	}

	switch filter := dict["Filter"].(type) {
	case nil:
		dict["Filter"] = name
		if parmsObj != nil {
			dict["DecodeParms"] = parmsObj
		}
	case Name:
		oldParms := dict["DecodeParms"]
		dict["Filter"] = Array{filter, name}
		if parmsObj != nil || oldParms != nil {
			dict["DecodeParms"] = Array{oldParms, parmsObj}
		}
	case Array:
		dict["Filter"] = append(filter, name)
		parmsArray, _ := dict["DecodeParms"].(Array)
		if parmsObj != nil || len(parmsArray) > 0 {
			for len(parmsArray) < len(filter) {
				parmsArray = append(parmsArray, nil)
			}
			dict["DecodeParms"] = append(parmsArray, parmsObj)
		}
	default:
		return errors.New("invalid /Filter entry in stream dictionary")
	}
	return nil
}
