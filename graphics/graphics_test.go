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
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

func newTestWriter() (*bytes.Buffer, *Writer) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, pdfgen.V1_7)
	return buf, w
}

func TestPathOperators(t *testing.T) {
	buf, w := newTestWriter()

	w.MoveTo(0, 0)
	w.LineTo(100, 0)
	w.CurveTo(110, 0, 120, 10, 120, 20)
	w.CurveToV(120, 40, 110, 50)
	w.CurveToY(100, 60, 90, 60)
	w.ClosePath()
	w.Stroke()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := `0 0 m
100 0 l
110 0 120 10 120 20 c
120 40 110 50 v
100 60 90 60 y
h
S
`
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestRectangleAndFill(t *testing.T) {
	buf, w := newTestWriter()

	w.SetFillRGB(1, 0.502, 0)
	w.Rectangle(10, 20, 100, 50)
	w.Fill()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := `1 .502 0 rg
10 20 100 50 re
f
`
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestClip(t *testing.T) {
	buf, w := newTestWriter()

	w.Rectangle(0, 0, 200, 200)
	w.ClipNonZero()
	w.EndPath()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := `0 0 200 200 re
W
n
`
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestPaintWithoutPath(t *testing.T) {
	_, w := newTestWriter()
	w.Fill()
	if w.Err == nil {
		t.Error("painting without a path succeeded")
	}
}

func TestLineToWithoutMoveTo(t *testing.T) {
	_, w := newTestWriter()
	w.LineTo(10, 10)
	if w.Err == nil {
		t.Error("LineTo outside a path succeeded")
	}
}

func TestNegativeLineWidth(t *testing.T) {
	_, w := newTestWriter()
	w.SetLineWidth(-1)
	if !errors.Is(w.Err, ErrNegativeLineWidth) {
		t.Errorf("expected ErrNegativeLineWidth, got %v", w.Err)
	}
}

func TestStateDeduplication(t *testing.T) {
	buf, w := newTestWriter()

	w.SetLineWidth(3)
	w.SetLineWidth(3)
	w.SetLineCap(LineCapRound)
	w.SetLineCap(LineCapRound)
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "3 w\n1 J\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestPushPopState(t *testing.T) {
	buf, w := newTestWriter()

	w.SetLineWidth(4)
	w.PushGraphicsState()
	w.SetLineWidth(8)
	w.PopGraphicsState()
	// the pop restored the width to 4, so this must be written again
	w.SetLineWidth(8)
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "4 w\nq\n8 w\nQ\n8 w\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
	if w.LineWidth != 8 {
		t.Errorf("wrong line width %f", w.LineWidth)
	}
}

func TestPopWithoutPush(t *testing.T) {
	_, w := newTestWriter()
	w.PopGraphicsState()
	if w.Err == nil {
		t.Error("unbalanced Q succeeded")
	}
}

func TestFinishUnclosedQ(t *testing.T) {
	_, w := newTestWriter()
	w.PushGraphicsState()
	if err := w.Finish(); err == nil {
		t.Error("unclosed q not detected")
	}
}

func TestFinishInsideText(t *testing.T) {
	_, w := newTestWriter()
	w.TextStart()
	if err := w.Finish(); err == nil {
		t.Error("unclosed BT not detected")
	}
}

func TestLineDash(t *testing.T) {
	buf, w := newTestWriter()

	w.SetLineDash(0, 3, 1)
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "[3 1] 0 d\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestTransform(t *testing.T) {
	buf, w := newTestWriter()

	w.Transform(matrix.Translate(10, 20))
	w.Transform(matrix.Scale(2, 2))
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "1 0 0 1 10 20 cm\n2 0 0 2 0 0 cm\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}

	// the CTM has the scaling applied after the translation
	ctm := matrix.Scale(2, 2).Mul(matrix.Translate(10, 20))
	if w.CTM != ctm {
		t.Errorf("wrong CTM %v", w.CTM)
	}
}

func TestMarkedContent(t *testing.T) {
	buf, w := newTestWriter()

	w.MarkedContentStart(&MarkedContent{Tag: "Artifact"})
	w.MarkedContentEnd()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "/Artifact BMC\nEMC\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestMarkedContentProperties(t *testing.T) {
	buf, w := newTestWriter()

	mc := &MarkedContent{
		Tag:        "Span",
		Properties: pdfgen.Dict{"MCID": pdfgen.Integer(7)},
	}
	w.MarkedContentStart(mc)
	w.MarkedContentEnd()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "/Span <<\n/MCID 7\n>> BDC\nEMC\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestMarkedContentByReference(t *testing.T) {
	buf, w := newTestWriter()

	ref := pdfgen.NewReference(12, 0)
	w.MarkedContentStart(&MarkedContent{Tag: "OC", Properties: ref})
	w.MarkedContentEnd()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "/OC /M1 BDC\nEMC\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
	if w.Resources.Properties["M1"] != ref {
		t.Error("property list not in resource dictionary")
	}
}

func TestEmcOnEmpty(t *testing.T) {
	_, w := newTestWriter()
	w.MarkedContentEnd()
	if !errors.Is(w.Err, ErrEmcOnEmpty) {
		t.Errorf("expected ErrEmcOnEmpty, got %v", w.Err)
	}
}

func TestUnclosedMarkedContent(t *testing.T) {
	_, w := newTestWriter()
	w.MarkedContentStart(&MarkedContent{Tag: "Artifact"})
	err := w.Finish()
	if !errors.Is(err, ErrUnclosedMarkedContent) {
		t.Errorf("expected ErrUnclosedMarkedContent, got %v", err)
	}
}

func TestMarkedContentNesting(t *testing.T) {
	_, w := newTestWriter()

	w.MarkedContentStart(&MarkedContent{Tag: "Outer"})
	w.PushGraphicsState()
	// the q operator must be closed before the marked-content sequence
	w.MarkedContentEnd()
	if w.Err == nil {
		t.Error("misnested EMC succeeded")
	}
}

func TestExtGState(t *testing.T) {
	buf, w := newTestWriter()

	ref := pdfgen.NewReference(3, 0)
	w.ApplyExtGState(ref)
	w.ApplyExtGState(ref)
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "/E1 gs\n/E1 gs\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
	if len(w.Resources.ExtGState) != 1 || w.Resources.ExtGState["E1"] != ref {
		t.Errorf("wrong resource dict %v", w.Resources.ExtGState)
	}
}

func TestDrawXObject(t *testing.T) {
	buf, w := newTestWriter()

	refA := pdfgen.NewReference(3, 0)
	refB := pdfgen.NewReference(4, 0)
	w.DrawXObject(refA)
	w.DrawXObject(refB)
	w.DrawXObject(refA)
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "/X1 Do\n/X2 Do\n/X1 Do\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
	if len(w.Resources.XObject) != 2 {
		t.Errorf("wrong resource dict %v", w.Resources.XObject)
	}
}

func TestPattern(t *testing.T) {
	buf, w := newTestWriter()

	ref := pdfgen.NewReference(9, 0)
	w.SetFillPattern(ref)
	w.Rectangle(0, 0, 100, 100)
	w.Fill()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := "/Pattern cs\n/P1 scn\n0 0 100 100 re\nf\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
	if w.Resources.Pattern["P1"] != ref {
		t.Error("pattern not in resource dictionary")
	}
}

func TestColorOperators(t *testing.T) {
	buf, w := newTestWriter()

	w.SetFillGray(0.5)
	w.SetStrokeGray(1)
	w.SetFillCMYK(0, 0.25, 0.5, 0.75)
	w.SetStrokeRGB(0.1, 0.2, 0.3)
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := ".5 g\n1 G\n0 .25 .5 .75 k\n.1 .2 .3 RG\n"
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestColorOutOfRange(t *testing.T) {
	_, w := newTestWriter()
	w.SetFillRGB(1.5, 0, 0)
	if w.Err == nil {
		t.Error("out of range color component accepted")
	}
}

func TestVersionCheck(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf, pdfgen.V1_0)
	w.ApplyExtGState(pdfgen.NewReference(3, 0))
	var versionError *pdfgen.VersionError
	if !errors.As(w.Err, &versionError) {
		t.Errorf("expected VersionError, got %v", w.Err)
	}
}

func TestTextStateOperators(t *testing.T) {
	buf, w := newTestWriter()

	F := font.Helvetica.New()
	F.Ref = pdfgen.NewReference(5, 0)

	w.TextStart()
	w.TextSetFont(F, 12)
	w.TextSetCharacterSpacing(0.2)
	w.TextSetWordSpacing(1.5)
	w.TextSetHorizontalScaling(0.8)
	w.TextSetLeading(14)
	w.TextSetRenderingMode(TextRenderingModeStroke)
	w.TextSetRise(3)
	w.TextEnd()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := `BT
/F1 12 Tf
0.2 Tc
1.5 Tw
80 Tz
14 TL
1 Tr
3 Ts
ET
`
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
	if w.Resources.Font["F1"] != F.Ref {
		t.Error("font not in resource dictionary")
	}
}

func TestTextPositioning(t *testing.T) {
	buf, w := newTestWriter()

	w.TextStart()
	w.TextFirstLine(72, 720)
	w.TextSecondLine(0, -14)
	w.TextNextLine()
	w.TextSetMatrix(matrix.Matrix{2, 0, 0, 2, 10, 10})
	w.TextEnd()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}

	expected := `BT
72 720 Td
0 -14 TD
T*
2 0 0 2 10 10 Tm
ET
`
	if d := cmp.Diff(buf.String(), expected); d != "" {
		t.Errorf("unexpected content stream: %s", d)
	}
}

func TestTextMatrixUpdates(t *testing.T) {
	_, w := newTestWriter()

	w.TextStart()
	w.TextFirstLine(72, 720)
	if w.TextMatrix != matrix.Translate(72, 720) {
		t.Errorf("wrong text matrix %v", w.TextMatrix)
	}

	// TD sets the leading to -dy
	w.TextSecondLine(0, -14)
	if w.TextLeading != 14 {
		t.Errorf("wrong leading %f", w.TextLeading)
	}
	if w.TextMatrix[5] != 720-14 {
		t.Errorf("wrong text matrix %v", w.TextMatrix)
	}

	// T* moves down by the leading
	w.TextNextLine()
	if w.TextMatrix[5] != 720-2*14 {
		t.Errorf("wrong text matrix %v", w.TextMatrix)
	}

	w.TextEnd()
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}
}

func TestNextLineNeedsLeading(t *testing.T) {
	_, w := newTestWriter()

	w.TextStart()
	w.TextNextLine()
	if w.Err == nil {
		t.Error("T* without leading succeeded")
	}
}

func TestTextOutsideTextObject(t *testing.T) {
	_, w := newTestWriter()
	w.TextFirstLine(0, 0)
	if w.Err == nil {
		t.Error("Td outside BT/ET succeeded")
	}
}

func TestEndTextTwice(t *testing.T) {
	_, w := newTestWriter()
	w.TextStart()
	w.TextEnd()
	w.TextEnd()
	if w.Err == nil {
		t.Error("unbalanced ET succeeded")
	}
}

func TestErrorSticks(t *testing.T) {
	buf, w := newTestWriter()

	w.SetLineWidth(-1)
	if !errors.Is(w.Err, ErrNegativeLineWidth) {
		t.Fatalf("expected ErrNegativeLineWidth, got %v", w.Err)
	}

	// all further calls must be ignored
	w.Rectangle(0, 0, 10, 10)
	w.Fill()
	if buf.Len() != 0 {
		t.Errorf("output written after error: %q", buf.String())
	}
	if !errors.Is(w.Finish(), ErrNegativeLineWidth) {
		t.Error("Finish does not report the first error")
	}
}
