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

import "errors"

var errVersion = errors.New("unsupported PDF version")

// VersionError is returned when trying to use a feature of the PDF file
// format which is not supported by the version of PDF used.
type VersionError struct {
	Operation string
	Earliest  Version
}

// CheckVersion checks whether the target PDF version is at least `earliest`.
// If the version is older, a [VersionError] for the given operation is
// returned.
func CheckVersion(pdf Putter, operation string, earliest Version) error {
	if pdf.GetMeta().Version >= earliest {
		return nil
	}
	return &VersionError{
		Operation: operation,
		Earliest:  earliest,
	}
}

func (err *VersionError) Error() string {
	return err.Operation + " requires PDF version " + err.Earliest.String() + " or newer"
}
