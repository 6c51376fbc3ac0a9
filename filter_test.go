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
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlateRoundTrip(t *testing.T) {
	testData := bytes.Repeat([]byte("all work and no play makes Jack a dull boy\n"), 50)

	filter := &FilterFlate{Level: 9}
	data := NewData(V1_7)
	ref := data.Alloc()
	stm, err := data.OpenStream(ref, nil, filter)
	if err != nil {
		t.Fatal(err)
	}
	_, err = stm.Write(testData)
	if err != nil {
		t.Fatal(err)
	}
	err = stm.Close()
	if err != nil {
		t.Fatal(err)
	}

	s, ok := data.Get(ref).(*Stream)
	if !ok {
		t.Fatal("stream object missing")
	}
	if s.Dict["Filter"] != Name("FlateDecode") {
		t.Errorf("wrong /Filter entry: %s", Format(s.Dict["Filter"]))
	}
	length, ok := s.Dict["Length"].(Integer)
	if !ok || length <= 0 || length >= Integer(len(testData)) {
		t.Errorf("wrong /Length entry: %s", Format(s.Dict["Length"]))
	}

	r, err := filter.Decode(V1_7, s.R)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, testData) {
		t.Error("wrong stream contents after decoding")
	}
}

func TestFlateVersion(t *testing.T) {
	filter := &FilterFlate{}

	_, _, err := filter.Info(V1_2)
	if err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	_, _, err = filter.Info(V1_1)
	var versionError *VersionError
	if !errors.As(err, &versionError) {
		t.Fatalf("expected VersionError, got %v", err)
	}
	if versionError.Earliest != V1_2 {
		t.Errorf("wrong version in error: %s", versionError.Earliest)
	}
}

func TestAppendFilter(t *testing.T) {
	dict := Dict{}

	err := appendFilter(dict, "FlateDecode", nil)
	if err != nil {
		t.Fatal(err)
	}
	if dict["Filter"] != Name("FlateDecode") {
		t.Errorf("wrong /Filter entry: %s", Format(dict["Filter"]))
	}
	if _, present := dict["DecodeParms"]; present {
		t.Error("unexpected /DecodeParms entry")
	}

	err = appendFilter(dict, "ASCIIHexDecode", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := Array{Name("FlateDecode"), Name("ASCIIHexDecode")}
	if d := cmp.Diff(want, dict["Filter"]); d != "" {
		t.Errorf("wrong /Filter entry: %s", d)
	}

	parms := Dict{"Predictor": Integer(12)}
	err = appendFilter(dict, "FlateDecode", parms)
	if err != nil {
		t.Fatal(err)
	}
	wantFilter := Array{Name("FlateDecode"), Name("ASCIIHexDecode"), Name("FlateDecode")}
	if d := cmp.Diff(wantFilter, dict["Filter"]); d != "" {
		t.Errorf("wrong /Filter entry: %s", d)
	}
	wantParms := Array{nil, nil, parms}
	if d := cmp.Diff(wantParms, dict["DecodeParms"]); d != "" {
		t.Errorf("wrong /DecodeParms entry: %s", d)
	}
}
