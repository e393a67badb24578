// seehuhn.de/go/ellipses - practice sheets for drawing ellipses
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

package sheet

import (
	"bytes"
	"maps"
	"slices"
	"testing"

	"seehuhn.de/go/ellipses/testcases"
)

func TestFixtures(t *testing.T) {
	r := testRenderer()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				canvas := Canvas{Width: tc.Width, Height: tc.Height}
				for _, mode := range documentModes {
					data, err := r.Preview(tc.Ellipses, canvas, mode)
					if err != nil {
						t.Fatalf("%s: %v", mode, err)
					}
					decodePNG(t, data)
				}

				doc, err := r.Document(tc.Ellipses, canvas)
				if err != nil {
					t.Fatal(err)
				}
				if !bytes.HasPrefix(doc, []byte("%PDF-")) {
					t.Error("document does not start with %PDF-")
				}
			})
		}
	}
}

func BenchmarkPreview(b *testing.B) {
	tc := testcases.All["generated"][0]
	canvas := Canvas{Width: tc.Width, Height: tc.Height}
	r := testRenderer()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := r.Preview(tc.Ellipses, canvas, Full); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDocument(b *testing.B) {
	tc := testcases.All["generated"][0]
	canvas := Canvas{Width: tc.Width, Height: tc.Height}
	r := testRenderer()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := r.Document(tc.Ellipses, canvas); err != nil {
			b.Fatal(err)
		}
	}
}
