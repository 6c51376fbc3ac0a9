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

// Command pdfslides turns a simple text outline into a PDF slide
// show.  Each slide has a centered heading and a list of bullet
// points, and over-long bullet points are broken into several lines.
//
// The input format uses one line per item:
//
//	# heading of the first slide
//	- first bullet point
//	- second bullet point
//
// When no input file is given, a small example presentation is
// generated.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/document"
)

const (
	headingSize = 44.0
	textSize    = 32.0
	bulletSize  = 28.0

	bulletIndent     = 90.0
	bulletSeparation = 1.5
	bulletLineSep    = 1.2
)

func cm(x float64) float64 {
	return x * 28.346
}

type slide struct {
	title   string
	bullets []string
}

func main() {
	outName := flag.String("o", "slides.pdf", "name of the output file")
	width := flag.Float64("width", 28, "page width in cm")
	height := flag.Float64("height", 16, "page height in cm")
	flag.Parse()

	var slides []slide
	var err error
	if flag.NArg() > 0 {
		slides, err = readSlides(flag.Arg(0))
	} else {
		slides = demoSlides()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = writeSlides(*outName, cm(*width), cm(*height), slides)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func demoSlides() []slide {
	return []slide{
		{
			title: "This is a heading",
			bullets: []string{
				"Bullet point 1",
				"Bullet point 2",
				"The third entry is so long that it overflows and takes two lines.",
			},
		},
	}
}

func readSlides(fname string) ([]slide, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return parseSlides(fd)
}

func parseSlides(r io.Reader) ([]slide, error) {
	var slides []slide
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			// pass
		case strings.HasPrefix(line, "# "):
			slides = append(slides, slide{title: strings.TrimSpace(line[2:])})
		case strings.HasPrefix(line, "- "):
			if len(slides) == 0 {
				return nil, fmt.Errorf("line %d: bullet point before the first heading", lineNo)
			}
			cur := &slides[len(slides)-1]
			cur.bullets = append(cur.bullets, strings.TrimSpace(line[2:]))
		default:
			return nil, fmt.Errorf("line %d: expected \"# \" or \"- \"", lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(slides) == 0 {
		return nil, errors.New("no slides found")
	}
	return slides, nil
}

func writeSlides(name string, width, height float64, slides []slide) error {
	doc, err := document.New(name, &document.Options{
		Creator:  "pdfslides",
		PageSize: &pdfgen.Rectangle{URx: width, URy: height},
	})
	if err != nil {
		return err
	}
	regular, err := doc.EmbedFont(goregular.TTF)
	if err != nil {
		return err
	}
	bold, err := doc.EmbedFont(gobold.TTF)
	if err != nil {
		return err
	}

	for _, s := range slides {
		page := doc.NewPage()

		titleWidth, err := doc.TextWidth(bold, s.title, headingSize)
		if err != nil {
			return err
		}
		headY := height - 1.5*headingSize
		drawText(page, bold, headingSize, (width-titleWidth)/2, headY, s.title)

		y := headY - 1.5*headingSize
		for _, entry := range s.bullets {
			drawText(page, regular, bulletSize, bulletIndent-40, y+1, "•")
			lines, err := breakLines(doc, regular, entry, textSize, width-2*bulletIndent)
			if err != nil {
				return err
			}
			for _, line := range lines {
				drawText(page, regular, textSize, bulletIndent, y, line)
				y -= bulletLineSep * textSize
			}
			y += (bulletLineSep - bulletSeparation) * textSize
		}

		_, err = doc.AddPage(page)
		if err != nil {
			return err
		}
	}

	return doc.Commit()
}

func drawText(page *document.Context, f document.FontID, size, x, y float64, s string) {
	page.TextStart()
	page.SetFont(f, size)
	page.TextFirstLine(x, y)
	page.TextShow(s)
	page.TextEnd()
}

// breakLines splits text into lines not wider than maxWidth, breaking
// at spaces.  Words which are too long for a line of their own are
// not broken.
func breakLines(doc *document.Generator, f document.FontID, text string, size, maxWidth float64) ([]string, error) {
	total, err := doc.TextWidth(f, text, size)
	if err != nil {
		return nil, err
	}
	if total <= maxWidth {
		return []string{text}, nil
	}

	spaceWidth, err := doc.TextWidth(f, " ", size)
	if err != nil {
		return nil, err
	}

	var lines []string
	var current []string
	currentWidth := 0.0
	for _, word := range strings.Fields(text) {
		wordWidth, err := doc.TextWidth(f, word, size)
		if err != nil {
			return nil, err
		}
		if len(current) > 0 && currentWidth+spaceWidth+wordWidth >= maxWidth {
			lines = append(lines, strings.Join(current, " "))
			current = current[:0]
			currentWidth = 0
		}
		current = append(current, word)
		if currentWidth > 0 {
			currentWidth += spaceWidth
		}
		currentWidth += wordWidth
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines, nil
}
