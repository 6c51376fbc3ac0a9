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

// Package truetype parses TrueType font programs and generates subsets
// for embedding into PDF files.
//
// The parser reads the binary sfnt container directly and keeps only the
// information needed for subsetting and for the PDF font descriptor.  It
// is meant to be safe on untrusted input: malformed or truncated fonts
// are reported via [InvalidFontError], and no input can make the parser
// read outside the given buffer.
//
// https://learn.microsoft.com/en-us/typography/opentype/spec/otff
package truetype

import (
	"encoding/binary"
	"fmt"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/glyph"
)

// Supported values for the scaler type field at the start of the table
// directory.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeApple    = 0x74727565 // "true"
)

// Tables which are copied into subsets unchanged.  These hold data for
// the font's hinting programs, which outline data may depend on.
var keepTables = []string{"cvt ", "fpgm", "prep", "gasp"}

// maxNumTables limits the size of the table directory.  Real fonts have
// a few dozen tables; the limit only guards against corrupt headers.
const maxNumTables = 512

// InvalidFontError indicates a problem with font data.
type InvalidFontError struct {
	Reason string
}

func (err *InvalidFontError) Error() string {
	return "truetype: " + err.Reason
}

func invalidFontf(format string, a ...any) error {
	return &InvalidFontError{Reason: fmt.Sprintf(format, a...)}
}

// Font is a parsed TrueType font program.
//
// The struct retains sub-slices of the data given to [Parse].
type Font struct {
	// ScalerType is the first field of the table directory.
	ScalerType uint32

	// UnitsPerEm is the size of the design grid, from the "head" table.
	UnitsPerEm uint16

	// NumGlyphs is the number of glyphs in the font.
	NumGlyphs int

	// FontBBox is the union of all glyph bounding boxes, from the
	// "head" table.
	FontBBox funit.Rect16

	// Ascent, Descent and LineGap are the typographic metrics from the
	// "hhea" table.  Descent is negative for glyphs below the baseline.
	Ascent  funit.Int16
	Descent funit.Int16
	LineGap funit.Int16

	// CapHeight is the height of capital letters, from the "OS/2"
	// table.  If the font has no usable "OS/2" table, the ascent is
	// used instead.
	CapHeight funit.Int16

	// ItalicAngle is the slant of the font in degrees counterclockwise
	// from vertical, from the "post" table.
	ItalicAngle float64

	// IsFixedPitch indicates a monospaced font, from the "post" table.
	IsFixedPitch bool

	widths []funit.Int16 // advance widths, indexed by glyph ID
	lsbs   []funit.Int16 // left side bearings, indexed by glyph ID

	head []byte   // the raw "head" table
	hhea []byte   // the raw "hhea" table
	maxp []byte   // the raw "maxp" table
	loca []uint32 // glyph data offsets, numGlyphs+1 entries
	glyf []byte   // the raw "glyf" table

	tables map[string][]byte // all tables, by tag
}

// Parse reads the table directory and the tables required for
// subsetting.  The function never panics on malformed input; all
// structural problems are reported as an [InvalidFontError].
func Parse(data []byte) (*Font, error) {
	if len(data) < 12 {
		return nil, errMissingDirectory
	}
	scalerType := binary.BigEndian.Uint32(data[:4])
	switch scalerType {
	case ScalerTypeTrueType, ScalerTypeApple:
		// pass
	default:
		return nil, invalidFontf("unsupported scaler type 0x%08X", scalerType)
	}

	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	if numTables > maxNumTables {
		return nil, invalidFontf("too many tables (%d)", numTables)
	}
	if len(data) < 12+16*numTables {
		return nil, errMissingDirectory
	}

	tables := make(map[string][]byte, numTables)
	for i := 0; i < numTables; i++ {
		rec := data[12+16*i:]
		tag := string(rec[:4])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])
		if int64(offset)+int64(length) > int64(len(data)) {
			return nil, invalidFontf("table %q extends beyond end of file", tag)
		}
		if _, ok := tables[tag]; ok {
			return nil, invalidFontf("duplicate table %q", tag)
		}
		tables[tag] = data[offset : offset+length]
	}

	f := &Font{
		ScalerType: scalerType,
		tables:     tables,
	}

	if err := f.parseHead(); err != nil {
		return nil, err
	}
	if err := f.parseMaxp(); err != nil {
		return nil, err
	}
	if err := f.parseHhea(); err != nil {
		return nil, err
	}
	if err := f.parseHmtx(); err != nil {
		return nil, err
	}
	if err := f.parseLoca(); err != nil {
		return nil, err
	}
	f.parsePost()
	f.parseOS2()

	return f, nil
}

func (f *Font) parseHead() error {
	head, ok := f.tables["head"]
	if !ok || len(head) < 54 {
		return invalidFontf("missing or broken %q table", "head")
	}
	if binary.BigEndian.Uint32(head[12:16]) != 0x5F0F3CF5 {
		return invalidFontf("wrong magic number in %q table", "head")
	}
	f.UnitsPerEm = binary.BigEndian.Uint16(head[18:20])
	if f.UnitsPerEm == 0 {
		return invalidFontf("invalid unitsPerEm value 0")
	}
	f.FontBBox = funit.Rect16{
		LLx: funit.Int16(binary.BigEndian.Uint16(head[36:38])),
		LLy: funit.Int16(binary.BigEndian.Uint16(head[38:40])),
		URx: funit.Int16(binary.BigEndian.Uint16(head[40:42])),
		URy: funit.Int16(binary.BigEndian.Uint16(head[42:44])),
	}
	indexToLocFormat := int16(binary.BigEndian.Uint16(head[50:52]))
	if indexToLocFormat != 0 && indexToLocFormat != 1 {
		return invalidFontf("invalid indexToLocFormat value %d", indexToLocFormat)
	}
	f.head = head
	return nil
}

func (f *Font) parseMaxp() error {
	maxp, ok := f.tables["maxp"]
	if !ok || len(maxp) < 6 {
		return invalidFontf("missing or broken %q table", "maxp")
	}
	f.NumGlyphs = int(binary.BigEndian.Uint16(maxp[4:6]))
	if f.NumGlyphs == 0 {
		return invalidFontf("font contains no glyphs")
	}
	f.maxp = maxp
	return nil
}

func (f *Font) parseHhea() error {
	hhea, ok := f.tables["hhea"]
	if !ok || len(hhea) < 36 {
		return invalidFontf("missing or broken %q table", "hhea")
	}
	f.Ascent = funit.Int16(binary.BigEndian.Uint16(hhea[4:6]))
	f.Descent = funit.Int16(binary.BigEndian.Uint16(hhea[6:8]))
	f.LineGap = funit.Int16(binary.BigEndian.Uint16(hhea[8:10]))
	f.hhea = hhea
	return nil
}

func (f *Font) parseHmtx() error {
	hhea := f.hhea
	numHMetrics := int(binary.BigEndian.Uint16(hhea[34:36]))
	if numHMetrics < 1 || numHMetrics > f.NumGlyphs {
		return invalidFontf("invalid numberOfHMetrics value %d", numHMetrics)
	}
	hmtx, ok := f.tables["hmtx"]
	if !ok || len(hmtx) < 4*numHMetrics+2*(f.NumGlyphs-numHMetrics) {
		return invalidFontf("missing or broken %q table", "hmtx")
	}

	f.widths = make([]funit.Int16, f.NumGlyphs)
	f.lsbs = make([]funit.Int16, f.NumGlyphs)
	var aw funit.Int16
	for i := 0; i < numHMetrics; i++ {
		aw = funit.Int16(binary.BigEndian.Uint16(hmtx[4*i : 4*i+2]))
		f.widths[i] = aw
		f.lsbs[i] = funit.Int16(binary.BigEndian.Uint16(hmtx[4*i+2 : 4*i+4]))
	}
	base := 4 * numHMetrics
	for i := numHMetrics; i < f.NumGlyphs; i++ {
		pos := base + 2*(i-numHMetrics)
		f.widths[i] = aw
		f.lsbs[i] = funit.Int16(binary.BigEndian.Uint16(hmtx[pos : pos+2]))
	}
	return nil
}

func (f *Font) parseLoca() error {
	loca, ok := f.tables["loca"]
	if !ok {
		return invalidFontf("missing %q table", "loca")
	}
	glyf, ok := f.tables["glyf"]
	if !ok {
		return invalidFontf("missing %q table", "glyf")
	}

	n := f.NumGlyphs + 1
	offs := make([]uint32, n)
	longFormat := int16(binary.BigEndian.Uint16(f.head[50:52])) == 1
	if longFormat {
		if len(loca) < 4*n {
			return invalidFontf("%q table too short", "loca")
		}
		for i := range offs {
			offs[i] = binary.BigEndian.Uint32(loca[4*i : 4*i+4])
		}
	} else {
		if len(loca) < 2*n {
			return invalidFontf("%q table too short", "loca")
		}
		for i := range offs {
			offs[i] = 2 * uint32(binary.BigEndian.Uint16(loca[2*i:2*i+2]))
		}
	}
	for i := 0; i < f.NumGlyphs; i++ {
		if offs[i] > offs[i+1] {
			return invalidFontf("invalid glyph offset at index %d", i)
		}
	}
	if offs[f.NumGlyphs] > uint32(len(glyf)) {
		return invalidFontf("glyph data extends beyond %q table", "glyf")
	}

	f.loca = offs
	f.glyf = glyf
	return nil
}

// parsePost extracts the italic angle and the fixed pitch flag.  The
// "post" table is optional for our purposes, so errors are ignored.
func (f *Font) parsePost() {
	post, ok := f.tables["post"]
	if !ok || len(post) < 16 {
		return
	}
	f.ItalicAngle = float64(int32(binary.BigEndian.Uint32(post[4:8]))) / 65536
	f.IsFixedPitch = binary.BigEndian.Uint32(post[12:16]) != 0
}

// parseOS2 extracts the cap height.  Absent or short "OS/2" tables cause
// a fall back to the ascent.
func (f *Font) parseOS2() {
	f.CapHeight = f.Ascent
	os2, ok := f.tables["OS/2"]
	if !ok || len(os2) < 90 {
		return
	}
	version := binary.BigEndian.Uint16(os2[:2])
	if version < 2 {
		return
	}
	if capHeight := funit.Int16(binary.BigEndian.Uint16(os2[88:90])); capHeight > 0 {
		f.CapHeight = capHeight
	}
}

// Has reports whether the font contains a table with the given tag.
func (f *Font) Has(tag string) bool {
	_, ok := f.tables[tag]
	return ok
}

// GlyphWidth returns the advance width of the given glyph in font
// design units.
func (f *Font) GlyphWidth(gid glyph.ID) funit.Int16 {
	if int(gid) >= len(f.widths) {
		return 0
	}
	return f.widths[gid]
}

var errMissingDirectory = &InvalidFontError{Reason: "missing table directory"}
