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

package graphics

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// State collects the graphics state parameters tracked by a [Writer].
//
// The writer uses the state to reject operators which are not allowed
// in the current context, and to skip operators which would not change
// the state.  Parameters whose value is not known, for example after a
// Q operator restored a state saved before the parameter was changed,
// have their bit cleared in Set.
type State struct {
	CTM matrix.Matrix

	LineWidth   float64
	LineCap     LineCapStyle
	LineJoin    LineJoinStyle
	MiterLimit  float64
	DashPattern []float64
	DashPhase   float64

	RenderingIntent   RenderingIntent
	FlatnessTolerance float64

	TextFont              *font.Font
	TextFontSize          float64
	TextCharacterSpacing  float64
	TextWordSpacing       float64
	TextHorizontalScaling float64 // 1 corresponds to normal spacing
	TextLeading           float64
	TextRenderingMode     TextRenderingMode
	TextRise              float64

	TextMatrix     matrix.Matrix
	TextLineMatrix matrix.Matrix

	Set StateBits
}

// NewState returns the graphics state at the start of a content stream,
// with all parameters at their default values.
func NewState() State {
	return State{
		CTM:                   matrix.Identity,
		LineWidth:             1,
		LineCap:               LineCapButt,
		LineJoin:              LineJoinMiter,
		MiterLimit:            10,
		RenderingIntent:       RelativeColorimetric,
		FlatnessTolerance:     1,
		TextHorizontalScaling: 1,
		Set:                   initialStateBits,
	}
}

// Clone returns a copy of the state which shares no data with s.
func (s State) Clone() State {
	s.DashPattern = slices.Clone(s.DashPattern)
	return s
}

// StateBits is a bit mask of graphics state parameters.
type StateBits uint32

const (
	StateLineWidth StateBits = 1 << iota
	StateLineCap
	StateLineJoin
	StateMiterLimit
	StateLineDash
	StateRenderingIntent
	StateFlatnessTolerance
	StateTextFont
	StateTextMatrix
	StateTextCharacterSpacing
	StateTextWordSpacing
	StateTextHorizontalScaling
	StateTextLeading
	StateTextRenderingMode
	StateTextRise

	stateFirstUnused
)

// AllStateBits covers every parameter tracked in a [State].
const AllStateBits = stateFirstUnused - 1

// Parameters which have no default value and must be set explicitly
// before they can be used.
const initialStateBits = AllStateBits &^ (StateTextFont | StateTextMatrix | StateTextLeading)

var stateBitNames = [...]string{
	"LineWidth",
	"LineCap",
	"LineJoin",
	"MiterLimit",
	"LineDash",
	"RenderingIntent",
	"FlatnessTolerance",
	"TextFont",
	"TextMatrix",
	"TextCharacterSpacing",
	"TextWordSpacing",
	"TextHorizontalScaling",
	"TextLeading",
	"TextRenderingMode",
	"TextRise",
}

func (s StateBits) String() string {
	var names []string
	for i, name := range stateBitNames {
		if s&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	if extra := s &^ AllStateBits; extra != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(extra)))
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

// isSet returns true if all of the given parameters are known.
func (w *Writer) isSet(bits StateBits) bool {
	return w.Set&bits == bits
}

// mustBeSet returns an error if any of the given parameters is not known.
func (w *Writer) mustBeSet(bits StateBits) error {
	if missing := bits &^ w.Set; missing != 0 {
		return fmt.Errorf("graphics state parameter %s not set", missing)
	}
	return nil
}

func nearlyEqual(a, b float64) bool {
	const eps = 1e-6
	return math.Abs(a-b) < eps
}

func dashesEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, x := range a {
		if !nearlyEqual(x, b[i]) {
			return false
		}
	}
	return true
}

// LineCapStyle is the shape to be used at the ends of open subpaths
// when they are stroked.
type LineCapStyle uint8

const (
	LineCapButt   LineCapStyle = 0
	LineCapRound  LineCapStyle = 1
	LineCapSquare LineCapStyle = 2
)

// LineJoinStyle is the shape to be used at the corners of stroked paths.
type LineJoinStyle uint8

const (
	LineJoinMiter LineJoinStyle = 0
	LineJoinRound LineJoinStyle = 1
	LineJoinBevel LineJoinStyle = 2
)

// RenderingIntent controls how colors are mapped between color spaces.
type RenderingIntent pdfgen.Name

const (
	AbsoluteColorimetric RenderingIntent = "AbsoluteColorimetric"
	RelativeColorimetric RenderingIntent = "RelativeColorimetric"
	Saturation           RenderingIntent = "Saturation"
	Perceptual           RenderingIntent = "Perceptual"
)

// TextRenderingMode determines whether showing text fills or strokes
// the glyph outlines, and whether the outlines are added to the
// clipping path.
type TextRenderingMode uint8

const (
	TextRenderingModeFill TextRenderingMode = iota
	TextRenderingModeStroke
	TextRenderingModeFillStroke
	TextRenderingModeInvisible
	TextRenderingModeFillClip
	TextRenderingModeStrokeClip
	TextRenderingModeFillStrokeClip
	TextRenderingModeClip
)
