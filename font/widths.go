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

package font

import (
	"math"

	"seehuhn.de/go/dag"
	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/pdfgen"
)

// maxRun limits the length of a single width array in the W entry.
// Longer arrays are split.
const maxRun = 64

// EncodeWidths constructs the DW and W entries for a CIDFont
// dictionary.  The slice ww contains the glyph widths in font design
// units, indexed by CID.  The encoding with the shortest textual
// representation is chosen.
func EncodeWidths(ww []funit.Int16, unitsPerEm uint16) (pdfgen.Number, pdfgen.Array) {
	dw := mostFrequent(ww)

	g := wwGraph{ww, dw}
	ee, err := dag.ShortestPath[wwEdge, int](g, len(ww))
	if err != nil {
		panic(err)
	}

	q := 1000 / float64(unitsPerEm)

	var res pdfgen.Array
	pos := 0
	for _, e := range ee {
		switch {
		case e > 0:
			wScaled := pdfgen.Integer(math.Round(ww[pos].AsFloat(q)))
			res = append(res,
				pdfgen.Integer(pos),
				pdfgen.Integer(pos+int(e)-1),
				wScaled)
		case e < 0:
			var wi pdfgen.Array
			for i := pos; i < pos+int(-e); i++ {
				wi = append(wi, pdfgen.Integer(math.Round(ww[i].AsFloat(q))))
			}
			res = append(res, pdfgen.Integer(pos), wi)
		}
		pos = g.To(pos, e)
	}

	return pdfgen.Number(dw.AsFloat(q)), res
}

type wwGraph struct {
	ww []funit.Int16
	dw funit.Int16
}

// A wwEdge encodes how the widths of the next CIDs are written.
// The edge values have the following meaning:
//
//	e=0: the width of the next CID is the default width, no entry needed
//	e>0: the next e CIDs have the same width, encode as a range
//	e<0: the next -e widths are encoded as an array
type wwEdge int32

func (g wwGraph) AppendEdges(ee []wwEdge, v int) []wwEdge {
	ww := g.ww
	if ww[v] == g.dw {
		return append(ee, 0)
	}

	n := len(ww)

	// positive edges: runs of CIDs with the same width
	i := v + 1
	for i < n && ww[i] == ww[v] {
		i++
	}
	if i > v+1 {
		ee = append(ee, wwEdge(i-v))
	}

	// negative edges: arrays of individual widths
	for i := v + 1; i <= n && i-v <= maxRun; i++ {
		ee = append(ee, wwEdge(v-i))
	}

	return ee
}

func (g wwGraph) Length(v int, e wwEdge) int {
	// for simplicity we assume that all integers in the output have 3 digits
	if e == 0 {
		return 0
	} else if e > 0 {
		// "%d %d %d\n"
		return 12
	} else {
		// "%d [%d ... %d]\n"
		return 6 + 4*int(-e)
	}
}

func (g wwGraph) To(v int, e wwEdge) int {
	if e == 0 {
		return v + 1
	}
	step := int(e)
	if step < 0 {
		step = -step
	}
	return v + step
}

func mostFrequent(ww []funit.Int16) funit.Int16 {
	hist := make(map[funit.Int16]int)
	for _, w := range ww {
		hist[w]++
	}

	bestCount := 0
	bestVal := funit.Int16(0)
	for w, count := range hist {
		if count > bestCount || (count == bestCount && w < bestVal) {
			bestCount = count
			bestVal = w
		}
	}
	return bestVal
}
