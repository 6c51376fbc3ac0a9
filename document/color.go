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
	"errors"
	"fmt"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfgen"
)

// ErrProfileComponents indicates that the number of color components
// declared by the caller does not match the ICC profile data.
var ErrProfileComponents = errors.New("wrong number of color components")

type colorSpaceInfo struct {
	ref       pdfgen.Reference
	streamRef pdfgen.Reference
	profile   []byte
	n         int
}

// LoadICCProfile registers an ICC color profile with the document.
// The profile defines an ICCBased color space with n components,
// which can be selected using [graphics.Writer.SetFillColorSpace] and
// [graphics.Writer.SetStrokeColorSpace] together with
// [Generator.ColorSpaceRef].
//
// An error is returned if the profile data is malformed, or if n does
// not equal the number of components of the profile's color space.
func (g *Generator) LoadICCProfile(data []byte, n int) (ColorSpaceID, error) {
	if g.version < pdfgen.V1_3 {
		return 0, &pdfgen.VersionError{Operation: "ICCBased color space", Earliest: pdfgen.V1_3}
	}

	p, err := icc.Decode(data)
	if err != nil {
		return 0, err
	}
	if got := p.ColorSpace.NumComponents(); got != n {
		return 0, fmt.Errorf("ICC profile has %d components, not %d: %w",
			got, n, ErrProfileComponents)
	}
	if n != 1 && n != 3 && n != 4 {
		return 0, fmt.Errorf("ICCBased: invalid number of components %d", n)
	}

	g.colorSpaces = append(g.colorSpaces, &colorSpaceInfo{
		ref:       g.alloc(),
		streamRef: g.alloc(),
		profile:   data,
		n:         n,
	})
	return ColorSpaceID(len(g.colorSpaces) - 1), nil
}

type outputIntent struct {
	cs         ColorSpaceID
	subtype    pdfgen.Name
	identifier string
}

// SetOutputIntent declares the output condition the document's colors
// have been prepared for.  The subtype is the registered standard the
// intent complies with, for example "GTS_PDFX", and identifier names
// the output condition.  The profile previously registered under id is
// used as the destination profile.
func (g *Generator) SetOutputIntent(id ColorSpaceID, subtype pdfgen.Name, identifier string) error {
	if g.version < pdfgen.V1_4 {
		return &pdfgen.VersionError{Operation: "output intents", Earliest: pdfgen.V1_4}
	}
	g.intent = &outputIntent{
		cs:         id,
		subtype:    subtype,
		identifier: identifier,
	}
	return nil
}
