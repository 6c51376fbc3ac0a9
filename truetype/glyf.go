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

package truetype

import (
	"seehuhn.de/go/sfnt/glyph"
)

// The recognized flag values in composite glyph component records.
//
// https://learn.microsoft.com/en-us/typography/opentype/spec/glyf#compositeGlyphFlags
const (
	flagArg1And2AreWords   uint16 = 0x0001
	flagWeHaveAScale       uint16 = 0x0008
	flagMoreComponents     uint16 = 0x0020
	flagWeHaveAnXAndYScale uint16 = 0x0040
	flagWeHaveATwoByTwo    uint16 = 0x0080
)

// glyphData returns the raw outline data for one glyph.  The slice is
// empty for blank glyphs.
func (f *Font) glyphData(gid glyph.ID) []byte {
	if int(gid) >= f.NumGlyphs {
		return nil
	}
	return f.glyf[f.loca[gid]:f.loca[gid+1]]
}

// Components returns the glyph IDs a composite glyph is built from.
// For simple and blank glyphs the result is empty.
func (f *Font) Components(gid glyph.ID) ([]glyph.ID, error) {
	if int(gid) >= f.NumGlyphs {
		return nil, invalidFontf("glyph %d outside of font (numGlyphs=%d)",
			gid, f.NumGlyphs)
	}
	data := f.glyphData(gid)
	if len(data) == 0 {
		return nil, nil
	}
	if len(data) < 10 {
		return nil, errIncompleteGlyph
	}
	numContours := int16(data[0])<<8 | int16(data[1])
	if numContours >= 0 { // a simple glyph
		return nil, nil
	}

	var components []glyph.ID
	err := walkComponents(data[10:], func(pos int, flags uint16, component glyph.ID) {
		components = append(components, component)
	})
	if err != nil {
		return nil, err
	}
	return components, nil
}

// walkComponents iterates over the component records of a composite
// glyph.  The data must start directly after the 10-byte glyph header.
// For each component, fn receives the byte position of the record
// within data, the flag word, and the referenced glyph ID.
func walkComponents(data []byte, fn func(pos int, flags uint16, component glyph.ID)) error {
	pos := 0
	for {
		if len(data)-pos < 4 {
			return errIncompleteGlyph
		}
		flags := uint16(data[pos])<<8 | uint16(data[pos+1])
		component := glyph.ID(data[pos+2])<<8 | glyph.ID(data[pos+3])
		fn(pos, flags, component)

		skip := 4
		if flags&flagArg1And2AreWords != 0 {
			skip += 4
		} else {
			skip += 2
		}
		if flags&flagWeHaveAScale != 0 {
			skip += 2
		} else if flags&flagWeHaveAnXAndYScale != 0 {
			skip += 4
		} else if flags&flagWeHaveATwoByTwo != 0 {
			skip += 8
		}
		if len(data)-pos < skip {
			return errIncompleteGlyph
		}
		pos += skip

		if flags&flagMoreComponents == 0 {
			return nil
		}
	}
}

var errIncompleteGlyph = &InvalidFontError{Reason: "incomplete glyph"}
