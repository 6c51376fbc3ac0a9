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

import "errors"

// ErrNoPages indicates that [Generator.Commit] was called before any
// page was added to the document.
var ErrNoPages = errors.New("document has no pages")

// ErrContextType indicates that a [Context] was passed to the wrong
// Add method, for example a pattern context to [Generator.AddPage].
var ErrContextType = errors.New("wrong context type")

// FileError indicates that writing the document to disk failed.
type FileError struct {
	// Op is the stage which failed: "open", "write", "sync" or
	// "rename".
	Op string

	// Path is the name of the file the failed operation applied to.
	Path string

	// Err is the underlying error.
	Err error
}

func (e *FileError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}
