// seehuhn.de/go/gridline - integer line rasterization
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

// Command genpdf writes one PDF per test case, showing the cells the case
// produces as filled squares with the ideal geometry drawn on top.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/gridline"
	"seehuhn.de/go/gridline/testcases"
)

var (
	outDir  string
	scale   float64
	verbose bool
)

func init() {
	flag.StringVar(&outDir, "d", "testdata/pdf", "output directory")
	flag.Float64Var(&scale, "scale", 8, "size of a cell in PDF points")
	flag.BoolVar(&verbose, "v", false, "log progress to stderr")
}

func main() {
	flag.Parse()
	if verbose {
		gridline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "genpdf:", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")
			if err := generatePDF(tc, pdfPath); err != nil {
				fmt.Fprintf(os.Stderr, "genpdf: %s: %v\n", name, err)
				os.Exit(1)
			}
			gridline.Logger().Info("wrote", slog.String("file", pdfPath))
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	w := float64(tc.Width) * scale
	h := float64(tc.Height) * scale
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; the cell grid starts top-left.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, 0, h})

	page.SetFillColor(color.DeviceGray(1))
	for _, p := range gridline.ExampleCells(tc) {
		page.Rectangle(float64(p.X), float64(p.Y), 1, 1)
	}
	page.Fill()

	if _, ok := tc.Op.(testcases.Hairline); ok {
		if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
			page.Transform(tc.CTM)
		}
		page.SetStrokeColor(color.DeviceGray(0.5))
		page.SetLineWidth(0.1)
		// PDF has no quadratic curves
		for cmd, pts := range tc.Path.ToCubic() {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			case path.CmdCubeTo:
				page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}
