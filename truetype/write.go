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
	"math/bits"
	"sort"

	"golang.org/x/exp/maps"
)

// writeTables assembles a font file from a set of tables.  Table
// checksums and the checksum adjustment in the "head" table are filled
// in, so that the result is self-consistent.
func writeTables(scalerType uint32, tableData map[string][]byte) []byte {
	tags := maps.Keys(tableData)
	sort.Strings(tags)
	numTables := len(tags)

	totalSize := 12 + 16*numTables
	for _, tag := range tags {
		totalSize += (len(tableData[tag]) + 3) &^ 3
	}
	buf := make([]byte, totalSize)

	binary.BigEndian.PutUint32(buf[0:], scalerType)
	binary.BigEndian.PutUint16(buf[4:], uint16(numTables))
	entrySelector := bits.Len(uint(numTables)) - 1
	searchRange := 16 << entrySelector
	binary.BigEndian.PutUint16(buf[6:], uint16(searchRange))
	binary.BigEndian.PutUint16(buf[8:], uint16(entrySelector))
	binary.BigEndian.PutUint16(buf[10:], uint16(numTables*16-searchRange))

	var headOffset int
	offset := 12 + 16*numTables
	for i, tag := range tags {
		data := tableData[tag]
		copy(buf[offset:], data)
		if tag == "head" {
			headOffset = offset
		}

		rec := buf[12+16*i:]
		copy(rec[:4], tag)
		binary.BigEndian.PutUint32(rec[4:], checksum(buf[offset:offset+(len(data)+3)&^3]))
		binary.BigEndian.PutUint32(rec[8:], uint32(offset))
		binary.BigEndian.PutUint32(rec[12:], uint32(len(data)))

		offset += (len(data) + 3) &^ 3
	}

	if headOffset != 0 {
		adjustment := 0xB1B0AFBA - checksum(buf)
		binary.BigEndian.PutUint32(buf[headOffset+8:], adjustment)
	}

	return buf
}

// checksum sums the data as big-endian 32-bit words, zero-padding the
// tail to a word boundary.
func checksum(data []byte) uint32 {
	var sum uint32
	i := 0
	for ; i+4 <= len(data); i += 4 {
		sum += binary.BigEndian.Uint32(data[i:])
	}
	if i < len(data) {
		var tail [4]byte
		copy(tail[:], data[i:])
		sum += binary.BigEndian.Uint32(tail[:])
	}
	return sum
}
