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

package pdfgen

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func TestAsDictCatalog(t *testing.T) {
	pagesRef := NewReference(1, 0)

	catalog := &Catalog{
		Pages: pagesRef,
		Lang:  language.German,
	}
	dict := AsDict(catalog)

	want := Dict{
		"Type":  Name("Catalog"),
		"Pages": pagesRef,
		"Lang":  TextString("de"),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("wrong Catalog dict: %s", d)
	}
}

func TestAsDictInfo(t *testing.T) {
	// nil structs give nil dicts
	var missing *Info
	if dict := AsDict(missing); dict != nil {
		t.Errorf("wrong dict for nil Info struct: %s", Format(dict))
	}

	// empty structs give empty dicts
	if dict := AsDict(&Info{}); len(dict) != 0 {
		t.Errorf("wrong dict for empty Info struct: %s", Format(dict))
	}

	created := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	info := &Info{
		Title:        "Test Document",
		Author:       "Jochen Voß",
		CreationDate: created,
		Trapped:      "False",
		Custom: map[string]string{
			"Source": "test.tex",
		},
	}
	dict := AsDict(info)

	want := Dict{
		"Title":        TextString("Test Document"),
		"Author":       TextString("Jochen Voß"),
		"CreationDate": Date(created),
		"Trapped":      Name("False"),
		"Source":       TextString("test.tex"),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("wrong Info dict: %s", d)
	}
}

func TestAsDictPage(t *testing.T) {
	parent := NewReference(7, 0)
	contents := NewReference(8, 0)

	page := &PageDict{
		Parent:    parent,
		Resources: Dict{},
		MediaBox:  &Rectangle{0, 0, 595.28, 841.89},
		Contents:  contents,
		Rotate:    Rotate90,
	}
	dict := AsDict(page)

	if dict["Type"] != Name("Page") {
		t.Errorf("wrong /Type: %s", Format(dict["Type"]))
	}
	if dict["Parent"] != parent {
		t.Errorf("wrong /Parent: %s", Format(dict["Parent"]))
	}
	if dict["Rotate"] != Integer(90) {
		t.Errorf("wrong /Rotate: %s", Format(dict["Rotate"]))
	}
	if _, present := dict["CropBox"]; present {
		t.Error("unset optional field written")
	}

	// pages without explicit rotation have no /Rotate entry
	page.Rotate = RotateInherit
	dict = AsDict(page)
	if _, present := dict["Rotate"]; present {
		t.Error("inherited rotation written")
	}

	// explicit zero rotation is written
	page.Rotate = Rotate0
	dict = AsDict(page)
	if dict["Rotate"] != Integer(0) {
		t.Errorf("wrong /Rotate: %s", Format(dict["Rotate"]))
	}
}
