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
	"bytes"
	"fmt"
	"text/template"
	"unicode/utf16"
)

// ToUnicodeCMap returns a CMap stream which maps character codes to
// Unicode text.  The slice text contains the rune shown by each
// character code, as accumulated in [Font.Text]; codes with rune 0 are
// omitted from the mapping.
func ToUnicodeCMap(text []rune) []byte {
	type bfChar struct {
		Code charCode
		Text string
	}

	var chars []bfChar
	for code, r := range text {
		if r == 0 {
			continue
		}
		chars = append(chars, bfChar{charCode(code), string(r)})
	}

	buf := &bytes.Buffer{}
	err := toUnicodeTmpl.Execute(buf, chunks(chars, 100))
	if err != nil {
		// The template only fails on invalid templates, not on
		// invalid data.
		panic(err)
	}
	return buf.Bytes()
}

type charCode int

func (c charCode) String() string {
	return fmt.Sprintf("<%04x>", int(c))
}

func utf16String(s string) string {
	var enc []byte
	for _, x := range utf16.Encode([]rune(s)) {
		enc = append(enc, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%02X>", enc)
}

func chunks[T any](x []T, size int) [][]T {
	var res [][]T
	for len(x) > size {
		res = append(res, x[:size])
		x = x[size:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

var toUnicodeTmpl = template.Must(template.New("CMap").Funcs(template.FuncMap{
	"text": utf16String,
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
/CMapName /Adobe-Identity-UCS def
/CMapType 2 def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
{{range . -}}
{{len .}} beginbfchar
{{range . -}}
{{.Code}} {{text .Text}}
{{end -}}
endbfchar
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
