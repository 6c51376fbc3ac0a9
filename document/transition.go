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

import "seehuhn.de/go/pdfgen"

// TransitionStyle selects the visual effect used when moving to a
// page during a presentation.
type TransitionStyle pdfgen.Name

// The transition styles defined in section 12.4.4.1 of
// PDF 32000-1:2008.
const (
	TransitionSplit    TransitionStyle = "Split"
	TransitionBlinds   TransitionStyle = "Blinds"
	TransitionBox      TransitionStyle = "Box"
	TransitionWipe     TransitionStyle = "Wipe"
	TransitionDissolve TransitionStyle = "Dissolve"
	TransitionGlitter  TransitionStyle = "Glitter"
	TransitionReplace  TransitionStyle = "R"
	TransitionFly      TransitionStyle = "Fly"
	TransitionPush     TransitionStyle = "Push"
	TransitionCover    TransitionStyle = "Cover"
	TransitionUncover  TransitionStyle = "Uncover"
	TransitionFade     TransitionStyle = "Fade"
)

// Transition describes the effect shown when a presentation moves to
// a page.  Use [Context.SetTransition] to attach a Transition to a
// page.
type Transition struct {
	// Style is the transition effect.
	Style TransitionStyle

	// Duration is the length of the effect in seconds.
	// The zero value means the PDF default of one second.
	Duration float64

	// Vertical makes the Split and Blinds styles move along the
	// vertical axis instead of the horizontal one.
	Vertical bool

	// Outward makes the Split and Box styles move outward from the
	// center instead of inward.
	Outward bool

	// Direction is the direction of motion in degrees counterclockwise
	// from left to right, for the Wipe, Glitter, Fly, Cover, Uncover
	// and Push styles.  Valid values are multiples of 90, plus 315 for
	// Glitter.
	Direction int
}

func (t *Transition) asDict() pdfgen.Dict {
	dict := pdfgen.Dict{
		"Type": pdfgen.Name("Trans"),
		"S":    pdfgen.Name(t.Style),
	}
	if t.Duration != 0 {
		dict["D"] = pdfgen.Number(t.Duration)
	}
	if t.Vertical {
		dict["Dm"] = pdfgen.Name("V")
	}
	if t.Outward {
		dict["M"] = pdfgen.Name("O")
	}
	if t.Direction != 0 {
		dict["Di"] = pdfgen.Integer(t.Direction)
	}
	return dict
}
