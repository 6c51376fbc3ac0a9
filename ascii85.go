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
	"errors"
	"io"
)

// FilterASCII85 is the ASCII85Decode filter.  The filter encodes
// binary data as ASCII text, at the cost of a 25% size increase.
type FilterASCII85 struct{}

// Info implements the [Filter] interface.
func (f *FilterASCII85) Info(ver Version) (Name, Dict, error) {
	return "ASCII85Decode", nil, nil
}

// Encode implements the [Filter] interface.
func (f *FilterASCII85) Encode(ver Version, w io.WriteCloser) (io.WriteCloser, error) {
	return &ascii85Writer{
		next: w,
		line: make([]byte, 0, 80),
	}, nil
}

// Decode implements the [Filter] interface.
func (f *FilterASCII85) Decode(ver Version, r io.Reader) (io.Reader, error) {
	return &ascii85Reader{r: r}, nil
}

type ascii85Writer struct {
	next  io.WriteCloser
	line  []byte
	group uint32
	k     int
}

func (w *ascii85Writer) Write(p []byte) (int, error) {
	for i, b := range p {
		w.group = w.group<<8 | uint32(b)
		w.k++
		if w.k < 4 {
			continue
		}

		if w.group == 0 {
			w.line = append(w.line, 'z')
		} else {
			w.line = appendBase85(w.line, w.group, 5)
		}
		w.group = 0
		w.k = 0

		if len(w.line) >= 75 {
			err := w.flush()
			if err != nil {
				return i + 1, err
			}
		}
	}
	return len(p), nil
}

func (w *ascii85Writer) Close() error {
	if w.k > 0 {
		// A final, partial group of k bytes is encoded using k+1
		// characters.  The 'z' abbreviation is not allowed here.
		group := w.group << (8 * (4 - w.k))
		w.line = appendBase85(w.line, group, w.k+1)
		w.k = 0
	}
	w.line = append(w.line, '~', '>')
	err := w.flush()
	if err != nil {
		return err
	}
	return w.next.Close()
}

func (w *ascii85Writer) flush() error {
	w.line = append(w.line, '\n')
	_, err := w.next.Write(w.line)
	w.line = w.line[:0]
	return err
}

// appendBase85 appends the first l characters of the base-85
// representation of group to buf.
func appendBase85(buf []byte, group uint32, l int) []byte {
	var c [5]byte
	for i := 4; i >= 0; i-- {
		c[i] = byte(group%85) + '!'
		group /= 85
	}
	return append(buf, c[:l]...)
}

type ascii85Reader struct {
	r   io.Reader
	buf [512]byte
	pos int
	end int

	group  uint32
	nChars int

	outbuf   [4]byte
	leftover []byte

	atEOD   bool
	err     error
	readErr error
}

func (r *ascii85Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	n := 0
	if len(r.leftover) > 0 {
		n = copy(p, r.leftover)
		r.leftover = r.leftover[n:]
	}

	for n < len(p) {
		if r.err != nil {
			return n, r.err
		}

		c, ok := r.next()
		if !ok {
			return n, r.err
		}

		switch {
		case r.atEOD:
			// "~" can only be the first half of the end marker "~>".
			if c == '>' {
				r.err = io.EOF
			} else {
				r.err = errors.New("invalid end marker in ASCII85 stream")
			}

		case isASCII85Space(c):
			// whitespace is allowed everywhere

		case c >= '!' && c <= 'u':
			r.group = r.group*85 + uint32(c-'!')
			r.nChars++
			if r.nChars == 5 {
				n += r.emit(p[n:], 4)
				r.group = 0
				r.nChars = 0
			}

		case c == 'z' && r.nChars == 0:
			r.group = 0
			n += r.emit(p[n:], 4)

		case c == '~':
			switch r.nChars {
			case 0:
				// no partial group
			case 1:
				r.err = errors.New("unexpected end marker in ASCII85 stream")
			default:
				for i := r.nChars; i < 5; i++ {
					r.group = r.group*85 + 84
				}
				n += r.emit(p[n:], r.nChars-1)
			}
			r.atEOD = true

		default:
			r.err = errors.New("invalid character in ASCII85 stream")
		}
	}
	return n, nil
}

// next returns the next byte of the encoded stream.  Once the
// underlying reader is exhausted, r.err is set and ok is false.
func (r *ascii85Reader) next() (byte, bool) {
	for r.pos == r.end {
		if r.readErr != nil {
			r.err = r.readErr
			return 0, false
		}
		r.end, r.readErr = r.r.Read(r.buf[:])
		r.pos = 0
		if r.readErr == io.EOF {
			// The stream must be terminated by "~>".
			r.readErr = io.ErrUnexpectedEOF
		}
	}
	c := r.buf[r.pos]
	r.pos++
	return c, true
}

// emit copies the first l bytes of the current group into dst.  Bytes
// which do not fit are kept for the next call to Read.
func (r *ascii85Reader) emit(dst []byte, l int) int {
	r.outbuf[0] = byte(r.group >> 24)
	r.outbuf[1] = byte(r.group >> 16)
	r.outbuf[2] = byte(r.group >> 8)
	r.outbuf[3] = byte(r.group)
	k := copy(dst, r.outbuf[:l])
	if k < l {
		r.leftover = r.outbuf[k:l]
	}
	return k
}

func isASCII85Space(c byte) bool {
	switch c {
	case 0, 9, 10, 12, 13, 32:
		return true
	}
	return false
}
