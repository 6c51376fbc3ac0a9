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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/language"

	"seehuhn.de/go/icc"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
)

// commitFile builds a document, commits it and returns the file
// contents.
func commitFile(t *testing.T, opt *Options, build func(g *Generator)) []byte {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.pdf")
	g, err := New(path, opt)
	if err != nil {
		t.Fatal(err)
	}
	build(g)

	err = g.Commit()
	if err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path + "~"); !os.IsNotExist(err) {
		t.Error("temporary file left behind")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func addTextPage(t *testing.T, g *Generator, text string) {
	t.Helper()
	helv := g.Builtin(font.Helvetica)
	page := g.NewPage()
	page.TextStart()
	page.SetFont(helv, 12)
	page.TextFirstLine(72, 720)
	page.TextShow(text)
	page.TextEnd()
	if _, err := g.AddPage(page); err != nil {
		t.Fatal(err)
	}
}

func TestCommit(t *testing.T) {
	data := commitFile(t, &Options{Title: "Commit Test"}, func(g *Generator) {
		addTextPage(t, g, "Hello world")
	})

	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) {
		t.Errorf("wrong header %q", data[:16])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing end-of-file marker")
	}
	for _, want := range []string{
		"/Title (Commit Test)",
		"/BaseFont /Helvetica",
		"/Subtype /Type1",
		"(Hello world) Tj",
		"/MediaBox [0 0 595.28 841.89]",
		"/Type /Pages",
		"/Count 1",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestCommitNoPages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	g, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}

	err = g.Commit()
	if !errors.Is(err, ErrNoPages) {
		t.Errorf("got %v, want ErrNoPages", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("output file was created")
	}
	if _, err := os.Stat(path + "~"); !os.IsNotExist(err) {
		t.Error("temporary file was created")
	}
}

func TestCommitReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	err := os.WriteFile(path, []byte("old contents"), 0666)
	if err != nil {
		t.Fatal(err)
	}

	g, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	addTextPage(t, g, "new")
	err = g.Commit()
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Error("output file was not replaced")
	}
}

func TestCommitOpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.pdf")
	g, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	addTextPage(t, g, "x")

	err = g.Commit()
	var fErr *FileError
	if !errors.As(err, &fErr) {
		t.Fatalf("got %v, want FileError", err)
	}
	if fErr.Op != "open" {
		t.Errorf("got Op %q, want \"open\"", fErr.Op)
	}
}

func TestCommitRenameError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	err := os.Mkdir(path, 0755)
	if err != nil {
		t.Fatal(err)
	}

	g, err := New(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	addTextPage(t, g, "x")

	err = g.Commit()
	var fErr *FileError
	if !errors.As(err, &fErr) {
		t.Fatalf("got %v, want FileError", err)
	}
	if fErr.Op != "rename" {
		t.Errorf("got Op %q, want \"rename\"", fErr.Op)
	}

	// the failed rename must leave the existing path untouched
	fi, err := os.Stat(path)
	if err != nil || !fi.IsDir() {
		t.Error("existing output path was modified")
	}
}

func TestEmbeddedFontOutput(t *testing.T) {
	data := commitFile(t, nil, func(g *Generator) {
		id, err := g.EmbedFont(goregular.TTF)
		if err != nil {
			t.Fatal(err)
		}
		page := g.NewPage()
		page.TextStart()
		page.SetFont(id, 24)
		page.TextFirstLine(72, 700)
		page.TextShow("ABC")
		page.TextEnd()
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	for _, want := range []string{
		"/Subtype /Type0",
		"/Encoding /Identity-H",
		"/Subtype /CIDFontType2",
		"/CIDToGIDMap /Identity",
		"/Registry (Adobe)",
		"/Ordering (Identity)",
		"/FontFile2",
		"/Subtype /TrueType",
		"/Length1",
		"/ToUnicode",
		"beginbfchar",
		"/W [",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}

	subsetName := regexp.MustCompile(`/BaseFont /[A-Z]{6}\+`)
	if !subsetName.Match(data) {
		t.Error("no subset tag in font name")
	}
}

func TestTransitionOutput(t *testing.T) {
	data := commitFile(t, nil, func(g *Generator) {
		page := g.NewPage()
		page.SetTransition(&Transition{
			Style:    TransitionSplit,
			Duration: 2,
			Vertical: true,
			Outward:  true,
		})
		page.SetDuration(5)
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}

		page = g.NewPage()
		page.SetTransition(&Transition{
			Style:     TransitionGlitter,
			Direction: 315,
		})
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	for _, want := range []string{
		"/Type /Trans",
		"/S /Split",
		"/D 2",
		"/Dm /V",
		"/M /O",
		"/Dur 5",
		"/S /Glitter",
		"/Di 315",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestPatternOutput(t *testing.T) {
	data := commitFile(t, nil, func(g *Generator) {
		pat := g.NewPattern(20, 20)
		pat.SetFillRGB(1, 0, 0)
		pat.Rectangle(0, 0, 10, 10)
		pat.Fill()
		patID, err := g.AddPattern(pat)
		if err != nil {
			t.Fatal(err)
		}

		page := g.NewPage()
		page.SetFillPattern(g.PatternRef(patID))
		page.Rectangle(50, 50, 100, 100)
		page.Fill()
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	for _, want := range []string{
		"/Type /Pattern",
		"/PatternType 1",
		"/PaintType 1",
		"/TilingType 1",
		"/BBox [0 0 20 20]",
		"/XStep 20",
		"/YStep 20",
		"/Pattern cs",
		"/P1 scn",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestFormOutput(t *testing.T) {
	data := commitFile(t, nil, func(g *Generator) {
		form := g.NewFormXObject(&pdfgen.Rectangle{URx: 10, URy: 10})
		form.Rectangle(0, 0, 10, 10)
		form.Stroke()
		formID, err := g.AddFormXObject(form)
		if err != nil {
			t.Fatal(err)
		}

		page := g.NewPage()
		page.PushGraphicsState()
		page.Translate(95, 10)
		page.DrawForm(formID)
		page.PopGraphicsState()
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	for _, want := range []string{
		"/Subtype /Form",
		"/FormType 1",
		"/BBox [0 0 10 10]",
		"/X1 Do",
		"1 0 0 1 95 10 cm",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestExtGStateOutput(t *testing.T) {
	data := commitFile(t, nil, func(g *Generator) {
		gsID := g.AddExtGState(ExtGState{
			FillAlpha: 0.5,
			BlendMode: "Multiply",
		})

		page := g.NewPage()
		page.SetExtGState(gsID)
		page.Rectangle(10, 10, 50, 50)
		page.Fill()
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	for _, want := range []string{
		"/Type /ExtGState",
		"/ca 0.5",
		"/BM /Multiply",
		"/E1 gs",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestICCOutput(t *testing.T) {
	data := commitFile(t, nil, func(g *Generator) {
		csID, err := g.LoadICCProfile(icc.SRGBv2Profile, 3)
		if err != nil {
			t.Fatal(err)
		}
		err = g.SetOutputIntent(csID, "GTS_PDFX", "sRGB IEC61966-2.1")
		if err != nil {
			t.Fatal(err)
		}

		page := g.NewPage()
		page.SetFillColorSpace(g.ColorSpaceRef(csID))
		page.SetFillColor(0.2, 0.4, 0.6)
		page.Rectangle(10, 10, 50, 50)
		page.Fill()
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	for _, want := range []string{
		"/ICCBased",
		"/N 3",
		"/C1 cs",
		"0.2 0.4 0.6 scn",
		"/OutputIntents",
		"/Type /OutputIntent",
		"/S /GTS_PDFX",
		"/OutputConditionIdentifier (sRGB IEC61966-2.1)",
		"/DestOutputProfile",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestICCMismatch(t *testing.T) {
	g := testGenerator(t)
	_, err := g.LoadICCProfile(icc.SRGBv2Profile, 4)
	if !errors.Is(err, ErrProfileComponents) {
		t.Errorf("got %v, want ErrProfileComponents", err)
	}
}

func TestMetadataOutput(t *testing.T) {
	data := commitFile(t, &Options{Title: "XMP Test", Author: "Test Person"},
		func(g *Generator) {
			addTextPage(t, g, "x")
		})

	for _, want := range []string{
		"/Type /Metadata",
		"/Subtype /XML",
		"CreateDate",
		"seehuhn.de/go/pdfgen",
		"Test Person",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}

	// the metadata stream must stay readable for XMP scanners
	i := bytes.Index(data, []byte("/Type /Metadata"))
	start := bytes.LastIndex(data[:i], []byte("<<"))
	end := i + bytes.Index(data[i:], []byte("stream"))
	if bytes.Contains(data[start:end], []byte("FlateDecode")) {
		t.Error("metadata stream is compressed")
	}
}

func TestNoMetadataBeforeV14(t *testing.T) {
	data := commitFile(t, &Options{Version: pdfgen.V1_3, Title: "Old"},
		func(g *Generator) {
			addTextPage(t, g, "x")
		})

	if bytes.Contains(data, []byte("/Type /Metadata")) {
		t.Error("metadata stream written for PDF 1.3")
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.3\n")) {
		t.Errorf("wrong header %q", data[:16])
	}
}

func TestCompressedOutput(t *testing.T) {
	data := commitFile(t, &Options{Compress: true}, func(g *Generator) {
		addTextPage(t, g, "Hello world")
	})

	if !bytes.Contains(data, []byte("/Filter /FlateDecode")) {
		t.Error("no compressed streams in output")
	}
	if bytes.Contains(data, []byte("(Hello world) Tj")) {
		t.Error("content stream is not compressed")
	}
}

func TestLanguage(t *testing.T) {
	data := commitFile(t, &Options{Lang: language.German}, func(g *Generator) {
		addTextPage(t, g, "Hallo")
	})

	if !bytes.Contains(data, []byte("/Lang (de)")) {
		t.Error("document language missing from catalog")
	}
}

func TestPageSizeOutput(t *testing.T) {
	data := commitFile(t, &Options{PageSize: Letter}, func(g *Generator) {
		page := g.NewPage()
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}

		page = g.NewPage()
		page.SetPageSize(&pdfgen.Rectangle{URx: 200, URy: 100})
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	for _, want := range []string{
		"/MediaBox [0 0 612 792]",
		"/MediaBox [0 0 200 100]",
		"/Count 2",
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

// TestXRef checks that all cross reference table entries point at the
// objects they promise.
func TestXRef(t *testing.T) {
	data := commitFile(t, nil, func(g *Generator) {
		id, err := g.EmbedFont(goregular.TTF)
		if err != nil {
			t.Fatal(err)
		}
		gsID := g.AddExtGState(ExtGState{StrokeAlpha: 0.8})

		page := g.NewPage()
		page.SetExtGState(gsID)
		page.TextStart()
		page.SetFont(id, 12)
		page.TextFirstLine(100, 100)
		page.TextShow("xref")
		page.TextEnd()
		if _, err := g.AddPage(page); err != nil {
			t.Fatal(err)
		}
	})

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(data)
	if m == nil {
		t.Fatal("no startxref")
	}
	xrefPos, err := strconv.Atoi(string(m[1]))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data[xrefPos:], []byte("xref\n")) {
		t.Fatalf("startxref does not point at the xref table")
	}

	m = regexp.MustCompile(`^xref\n0 (\d+)\n`).FindSubmatch(data[xrefPos:])
	if m == nil {
		t.Fatal("malformed xref table")
	}
	count, err := strconv.Atoi(string(m[1]))
	if err != nil {
		t.Fatal(err)
	}
	entries := data[xrefPos+len(m[0]):]

	for i := 0; i < count; i++ {
		entry := entries[20*i : 20*i+20]
		switch entry[17] {
		case 'f':
			continue
		case 'n':
			offset, err := strconv.Atoi(string(entry[:10]))
			if err != nil {
				t.Fatal(err)
			}
			head := []byte(strconv.Itoa(i) + " 0 obj\n")
			if !bytes.HasPrefix(data[offset:], head) {
				t.Errorf("xref entry %d points at %q", i, data[offset:offset+10])
			}
		default:
			t.Errorf("invalid xref entry type %q", entry[17])
		}
	}
}
