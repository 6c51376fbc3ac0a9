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
	"encoding/binary"
	"errors"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

// Subset returns a new font program which contains only the given
// glyphs, at the given positions.  The first entry of glyphs must be
// glyph 0 (the ".notdef" glyph).
//
// Glyphs which are referenced as components of composite glyphs are
// appended to the end of the list as needed, so the glyph count of the
// result may be larger than len(glyphs).  Glyph IDs in the returned
// font are positions in the extended list.
func (f *Font) Subset(glyphs []glyph.ID) ([]byte, error) {
	if len(glyphs) == 0 || glyphs[0] != 0 {
		return nil, errors.New("truetype: subset must start with the .notdef glyph")
	}

	s := &subsetter{
		glyphs: make([]glyph.ID, len(glyphs)),
		newGid: make(map[glyph.ID]glyph.ID, len(glyphs)),
	}
	copy(s.glyphs, glyphs)
	for newGid, oldGid := range s.glyphs {
		if int(oldGid) >= f.NumGlyphs {
			return nil, invalidFontf("glyph %d outside of font (numGlyphs=%d)",
				oldGid, f.NumGlyphs)
		}
		if _, seen := s.newGid[oldGid]; seen {
			return nil, invalidFontf("glyph %d requested twice", oldGid)
		}
		s.newGid[oldGid] = glyph.ID(newGid)
	}

	err := s.closeOverComponents(f)
	if err != nil {
		return nil, err
	}

	glyfData, locaData, locaFormat, err := s.encodeGlyf(f)
	if err != nil {
		return nil, err
	}
	hheaData, hmtxData := s.encodeHmtx(f)

	tableData := map[string][]byte{
		"glyf": glyfData,
		"loca": locaData,
		"hhea": hheaData,
		"hmtx": hmtxData,
		"maxp": s.encodeMaxp(f),
		"head": encodeHead(f.head, locaFormat),
	}
	for _, tag := range keepTables {
		if data, ok := f.tables[tag]; ok {
			tableData[tag] = data
		}
	}

	return writeTables(f.ScalerType, tableData), nil
}

type subsetter struct {
	glyphs []glyph.ID
	newGid map[glyph.ID]glyph.ID
}

// closeOverComponents extends the glyph list until every glyph
// referenced by a composite glyph in the list is itself in the list.
// Newly discovered glyphs are appended in the order in which they are
// first referenced, so the output is deterministic.
func (s *subsetter) closeOverComponents(f *Font) error {
	for i := 0; i < len(s.glyphs); i++ {
		cc, err := f.Components(s.glyphs[i])
		if err != nil {
			return err
		}
		for _, componentGid := range cc {
			if int(componentGid) >= f.NumGlyphs {
				return invalidFontf("component glyph %d outside of font (numGlyphs=%d)",
					componentGid, f.NumGlyphs)
			}
			if _, ok := s.newGid[componentGid]; ok {
				continue
			}
			s.newGid[componentGid] = glyph.ID(len(s.glyphs))
			s.glyphs = append(s.glyphs, componentGid)
		}
	}
	return nil
}

// encodeGlyf builds the new "glyf" and "loca" tables.  Composite glyph
// component references are rewritten to the new glyph IDs.
func (s *subsetter) encodeGlyf(f *Font) (glyfData, locaData []byte, locaFormat int16, err error) {
	offs := make([]uint32, len(s.glyphs)+1)
	for newGid, oldGid := range s.glyphs {
		offs[newGid] = uint32(len(glyfData))

		data := f.glyphData(oldGid)
		if len(data) == 0 {
			continue
		}
		if len(data) < 10 {
			return nil, nil, 0, errIncompleteGlyph
		}

		start := len(glyfData)
		glyfData = append(glyfData, data...)
		numContours := int16(data[0])<<8 | int16(data[1])
		if numContours < 0 {
			body := glyfData[start+10:]
			err := walkComponents(body, func(pos int, flags uint16, component glyph.ID) {
				newGid := s.newGid[component]
				body[pos+2] = byte(newGid >> 8)
				body[pos+3] = byte(newGid)
			})
			if err != nil {
				return nil, nil, 0, err
			}
		}
		for len(glyfData)%glyfAlign != 0 {
			glyfData = append(glyfData, 0)
		}
	}
	offs[len(s.glyphs)] = uint32(len(glyfData))

	locaData, locaFormat = encodeLoca(offs)
	return glyfData, locaData, locaFormat, nil
}

const glyfAlign = 2

// encodeLoca encodes glyph offsets, using the short format where
// possible.  All offsets must be even multiples when the short format
// is chosen; encodeGlyf guarantees this by padding glyph data.
func encodeLoca(offs []uint32) (locaData []byte, locaFormat int16) {
	if offs[len(offs)-1] <= 2*0xFFFF {
		locaData = make([]byte, 2*len(offs))
		for i, off := range offs {
			binary.BigEndian.PutUint16(locaData[2*i:], uint16(off/2))
		}
		return locaData, 0
	}
	locaData = make([]byte, 4*len(offs))
	for i, off := range offs {
		binary.BigEndian.PutUint32(locaData[4*i:], off)
	}
	return locaData, 1
}

// encodeHmtx builds the new "hmtx" table together with a matching
// "hhea" table.  A run of equal advance widths at the end of the glyph
// range is stored in compressed form.
func (s *subsetter) encodeHmtx(f *Font) (hheaData, hmtxData []byte) {
	numGlyphs := len(s.glyphs)
	widths := make([]funit.Int16, numGlyphs)
	lsbs := make([]funit.Int16, numGlyphs)
	var maxWidth funit.Int16
	for newGid, oldGid := range s.glyphs {
		widths[newGid] = f.widths[oldGid]
		lsbs[newGid] = f.lsbs[oldGid]
		if widths[newGid] > maxWidth {
			maxWidth = widths[newGid]
		}
	}

	numHMetrics := numGlyphs
	for numHMetrics > 1 && widths[numHMetrics-1] == widths[numHMetrics-2] {
		numHMetrics--
	}

	hmtxData = make([]byte, 4*numHMetrics+2*(numGlyphs-numHMetrics))
	for i := 0; i < numHMetrics; i++ {
		binary.BigEndian.PutUint16(hmtxData[4*i:], uint16(widths[i]))
		binary.BigEndian.PutUint16(hmtxData[4*i+2:], uint16(lsbs[i]))
	}
	base := 4 * numHMetrics
	for i := numHMetrics; i < numGlyphs; i++ {
		binary.BigEndian.PutUint16(hmtxData[base+2*(i-numHMetrics):], uint16(lsbs[i]))
	}

	hheaData = make([]byte, len(f.hhea))
	copy(hheaData, f.hhea)
	binary.BigEndian.PutUint16(hheaData[10:], uint16(maxWidth))
	binary.BigEndian.PutUint16(hheaData[34:], uint16(numHMetrics))
	return hheaData, hmtxData
}

func (s *subsetter) encodeMaxp(f *Font) []byte {
	maxpData := make([]byte, len(f.maxp))
	copy(maxpData, f.maxp)
	binary.BigEndian.PutUint16(maxpData[4:], uint16(len(s.glyphs)))
	return maxpData
}

// encodeHead copies the "head" table, clearing the checksum adjustment
// (recomputed by writeTables) and setting the new loca format.
func encodeHead(head []byte, locaFormat int16) []byte {
	headData := make([]byte, len(head))
	copy(headData, head)
	binary.BigEndian.PutUint32(headData[8:], 0)
	binary.BigEndian.PutUint16(headData[50:], uint16(locaFormat))
	return headData
}
