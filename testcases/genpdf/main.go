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

// Command genpdf generates reference sheets for all test cases.
// For every test case it writes the PDF document and the PNG preview.
// With -gs, the first PDF page is also rendered using Ghostscript, for
// visual comparison with the built-in rasterizer.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/ellipses/sheet"
	"seehuhn.de/go/ellipses/testcases"
)

const refDir = "testdata/reference"

func main() {
	useGS := flag.Bool("gs", false, "also render the PDF files with Ghostscript")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	if err := os.MkdirAll(refDir, 0755); err != nil {
		logger.Fatal("cannot create output directory", "err", err)
	}

	r := sheet.NewRenderer(sheet.DefaultDPI, logger)
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			base := filepath.Join(refDir, name)

			if err := generate(r, tc, base); err != nil {
				logger.Fatal("cannot generate reference", "case", name, "err", err)
			}
			if *useGS {
				if err := renderPNG(base+".pdf", base+"_gs.png"); err != nil {
					logger.Fatal("ghostscript failed", "case", name, "err", err)
				}
			}
			logger.Info("generated", "case", name, "ellipses", len(tc.Ellipses))
		}
	}
}

func generate(r *sheet.Renderer, tc testcases.TestCase, base string) error {
	canvas := sheet.Canvas{Width: tc.Width, Height: tc.Height}

	doc, err := r.Document(tc.Ellipses, canvas)
	if err != nil {
		return err
	}
	if err := os.WriteFile(base+".pdf", doc, 0644); err != nil {
		return err
	}

	img, err := r.Preview(tc.Ellipses, canvas, sheet.Full)
	if err != nil {
		return err
	}
	return os.WriteFile(base+".png", img, 0644)
}

func renderPNG(pdfPath, pngPath string) error {
	// -r100: the resolution of the built-in previews
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		fmt.Sprintf("-r%d", sheet.DefaultDPI),
		"-dFirstPage=1", "-dLastPage=1",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
