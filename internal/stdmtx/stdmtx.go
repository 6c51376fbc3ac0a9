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

// Package stdmtx provides metrics for the 14 standard PDF fonts.
//
// PDF viewers ship these fonts and the corresponding metrics, so the
// fonts can be used without embedding a font program.  The tables here
// cover the ASCII range of the twelve text fonts; the oblique and
// italic variants share the widths of their upright counterparts.
package stdmtx

// FontData holds the metrics of one font, in PDF glyph space units
// (thousandths of text space at font size 1).
type FontData struct {
	Ascent    float64
	Descent   float64 // negative
	CapHeight float64
	FontBBox  [4]float64
	StemV     float64

	IsFixedPitch bool

	// Width contains the advance widths, indexed by character code.
	// Width is nil for Symbol and ZapfDingbats, where the character
	// codes do not map to text.
	Width []float64
}

// Metrics maps PostScript font names to the metrics of the 14 standard
// fonts.
var Metrics = map[string]*FontData{
	"Courier":               courier,
	"Courier-Bold":          courier,
	"Courier-BoldOblique":   courier,
	"Courier-Oblique":       courier,
	"Helvetica":             helvetica,
	"Helvetica-Bold":        helveticaBold,
	"Helvetica-BoldOblique": helveticaBold,
	"Helvetica-Oblique":     helvetica,
	"Times-Roman":           times,
	"Times-Bold":            timesBold,
	"Times-BoldItalic":      timesBold,
	"Times-Italic":          times,
	"Symbol":                symbol,
	"ZapfDingbats":          zapfDingbats,
}

var (
	helvetica = &FontData{
		Ascent:    718,
		Descent:   -207,
		CapHeight: 718,
		FontBBox:  [4]float64{-166, -225, 1000, 931},
		StemV:     88,
		Width:     helveticaWidths,
	}
	helveticaBold = &FontData{
		Ascent:    718,
		Descent:   -207,
		CapHeight: 718,
		FontBBox:  [4]float64{-166, -225, 1000, 931},
		StemV:     140,
		Width:     helveticaBoldWidths,
	}
	times = &FontData{
		Ascent:    683,
		Descent:   -217,
		CapHeight: 662,
		FontBBox:  [4]float64{-168, -218, 1000, 898},
		StemV:     84,
		Width:     timesWidths,
	}
	timesBold = &FontData{
		Ascent:    683,
		Descent:   -217,
		CapHeight: 662,
		FontBBox:  [4]float64{-168, -218, 1000, 898},
		StemV:     121,
		Width:     timesBoldWidths,
	}
	courier = &FontData{
		Ascent:       629,
		Descent:      -157,
		CapHeight:    562,
		FontBBox:     [4]float64{-23, -250, 715, 805},
		StemV:        51,
		IsFixedPitch: true,
		Width:        fixedPitchWidths(600),
	}
	symbol = &FontData{
		Ascent:    800,
		Descent:   -200,
		CapHeight: 800,
		FontBBox:  [4]float64{-180, -293, 1090, 1010},
		StemV:     85,
	}
	zapfDingbats = &FontData{
		Ascent:    800,
		Descent:   -200,
		CapHeight: 800,
		FontBBox:  [4]float64{-1, -143, 981, 820},
		StemV:     90,
	}
)

func fixedPitchWidths(w float64) []float64 {
	ww := make([]float64, 128)
	for c := 0x20; c <= 0x7E; c++ {
		ww[c] = w
	}
	return ww
}

var helveticaWidths = []float64{
	0, 0, 0, 0, 0, 0, 0, 0, // 0x00
	0, 0, 0, 0, 0, 0, 0, 0, // 0x08
	0, 0, 0, 0, 0, 0, 0, 0, // 0x10
	0, 0, 0, 0, 0, 0, 0, 0, // 0x18
	278, 278, 355, 556, 556, 889, 667, 191, // 0x20
	333, 333, 389, 584, 278, 333, 278, 278, // 0x28
	556, 556, 556, 556, 556, 556, 556, 556, // 0x30
	556, 556, 278, 278, 584, 584, 584, 556, // 0x38
	1015, 667, 667, 722, 722, 667, 611, 778, // 0x40
	722, 278, 500, 667, 556, 833, 722, 778, // 0x48
	667, 778, 722, 667, 611, 722, 667, 944, // 0x50
	667, 667, 611, 278, 278, 278, 469, 556, // 0x58
	333, 556, 556, 500, 556, 556, 278, 556, // 0x60
	556, 222, 222, 500, 222, 833, 556, 556, // 0x68
	556, 556, 333, 500, 278, 556, 500, 722, // 0x70
	500, 500, 500, 334, 260, 334, 584, 0, // 0x78
}

var helveticaBoldWidths = []float64{
	0, 0, 0, 0, 0, 0, 0, 0, // 0x00
	0, 0, 0, 0, 0, 0, 0, 0, // 0x08
	0, 0, 0, 0, 0, 0, 0, 0, // 0x10
	0, 0, 0, 0, 0, 0, 0, 0, // 0x18
	278, 333, 474, 556, 556, 889, 722, 238, // 0x20
	333, 333, 389, 584, 278, 333, 278, 278, // 0x28
	556, 556, 556, 556, 556, 556, 556, 556, // 0x30
	556, 556, 333, 333, 584, 584, 584, 611, // 0x38
	975, 722, 722, 722, 722, 667, 611, 778, // 0x40
	722, 278, 556, 722, 611, 833, 722, 778, // 0x48
	667, 778, 722, 667, 611, 722, 667, 944, // 0x50
	667, 667, 611, 333, 278, 333, 584, 556, // 0x58
	333, 556, 611, 556, 611, 556, 333, 611, // 0x60
	611, 278, 278, 556, 278, 889, 611, 611, // 0x68
	611, 611, 389, 556, 333, 611, 556, 778, // 0x70
	556, 556, 500, 389, 280, 389, 584, 0, // 0x78
}

var timesWidths = []float64{
	0, 0, 0, 0, 0, 0, 0, 0, // 0x00
	0, 0, 0, 0, 0, 0, 0, 0, // 0x08
	0, 0, 0, 0, 0, 0, 0, 0, // 0x10
	0, 0, 0, 0, 0, 0, 0, 0, // 0x18
	250, 333, 408, 500, 500, 833, 778, 180, // 0x20
	333, 333, 500, 564, 250, 333, 250, 278, // 0x28
	500, 500, 500, 500, 500, 500, 500, 500, // 0x30
	500, 500, 278, 278, 564, 564, 564, 444, // 0x38
	921, 722, 667, 667, 722, 611, 556, 722, // 0x40
	722, 333, 389, 722, 611, 889, 722, 722, // 0x48
	556, 722, 667, 556, 611, 722, 722, 944, // 0x50
	722, 722, 611, 333, 278, 333, 469, 500, // 0x58
	333, 444, 500, 444, 500, 444, 333, 500, // 0x60
	500, 278, 278, 500, 278, 778, 500, 500, // 0x68
	500, 500, 333, 389, 278, 500, 500, 722, // 0x70
	500, 500, 444, 480, 200, 480, 541, 0, // 0x78
}

var timesBoldWidths = []float64{
	0, 0, 0, 0, 0, 0, 0, 0, // 0x00
	0, 0, 0, 0, 0, 0, 0, 0, // 0x08
	0, 0, 0, 0, 0, 0, 0, 0, // 0x10
	0, 0, 0, 0, 0, 0, 0, 0, // 0x18
	250, 333, 555, 500, 500, 1000, 833, 278, // 0x20
	333, 333, 500, 570, 250, 333, 250, 278, // 0x28
	500, 500, 500, 500, 500, 500, 500, 500, // 0x30
	500, 500, 333, 333, 570, 570, 570, 500, // 0x38
	930, 722, 667, 722, 722, 667, 611, 778, // 0x40
	778, 389, 500, 778, 667, 944, 722, 778, // 0x48
	611, 778, 722, 556, 667, 722, 722, 1000, // 0x50
	722, 722, 667, 333, 278, 333, 581, 500, // 0x58
	333, 500, 556, 444, 556, 444, 333, 500, // 0x60
	556, 278, 333, 556, 278, 833, 556, 500, // 0x68
	556, 556, 444, 389, 333, 556, 500, 722, // 0x70
	500, 500, 444, 394, 220, 394, 520, 0, // 0x78
}
