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

// Package gridline rasterizes straight lines onto an integer cell grid
// using Bresenham's algorithm.
//
// [Rasterize] writes the cells of a single line into a caller-supplied
// buffer, [Walker] steps through the cells one at a time, and [Tracer]
// draws vector paths as one-cell-wide hairlines.
package gridline

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpng

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/gridline/testcases"
)

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order.
// Cells on the line are set to 255.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	for _, p := range ExampleCells(tc) {
		x, y := int(p.X), int(p.Y)
		if x >= 0 && x < width && y >= 0 && y < height {
			buf[y*stride+x] = 255
		}
	}
}

// ExampleCells returns the cells a test case draws, in drawing order.
// For Hairline cases only cells inside the canvas are returned.
// Line cases which Rasterize rejects draw nothing.
func ExampleCells(tc testcases.TestCase) []Point {
	var cells []Point
	switch op := tc.Op.(type) {
	case testcases.Line:
		p0 := Point{op.X1, op.Y1}
		p1 := Point{op.X2, op.Y2}
		if op.Limit == 0 {
			return AppendCells(nil, p0, p1)
		}
		cells = make([]Point, max(op.Limit, 0))
		n, err := Rasterize(op.X1, op.Y1, op.X2, op.Y2, op.Limit, cells)
		if err != nil {
			return nil
		}
		cells = cells[:n]

	case testcases.Hairline:
		t := NewTracer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
		if tc.CTM != (matrix.Matrix{}) {
			t.CTM = tc.CTM
		}
		t.Dash = op.Dash
		t.DashPhase = op.DashPhase
		t.Path(tc.Path, func(x, y int) {
			cells = append(cells, Point{int32(x), int32(y)})
		})
	}
	return cells
}
