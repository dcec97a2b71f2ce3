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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string        // lowercase a-z and _ only
	Path   path.Path     // the geometry for Hairline operations
	Width  int           // canvas width in cells
	Height int           // canvas height in cells
	Op     Operation     // line or hairline
	CTM    matrix.Matrix // transformation matrix (zero-value means no transform)

	// Want is the expected cell mask, one string per row with '#' for set
	// cells and '.' for clear ones. Nil means the case is only checked for
	// structural properties.
	Want []string
}

// Operation is the rasterization operation to apply.
type Operation interface {
	isOperation()
}

// Line rasterizes the integer line from (X1, Y1) to (X2, Y2) directly.
type Line struct {
	X1, Y1, X2, Y2 int32
	Limit          int32 // buffer capacity; 0 means the full line
}

func (Line) isOperation() {}

// Hairline traces the test case's path one cell wide.
type Hairline struct {
	Dash      []int // dash pattern in cells (nil for solid)
	DashPhase int   // dash phase offset
}

func (Hairline) isOperation() {}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(pts) == 0 {
			return
		}
		if !yield(path.CmdMoveTo, pts[:1]) {
			return
		}
		for i := 1; i < len(pts); i++ {
			if !yield(path.CmdLineTo, pts[i:i+1]) {
				return
			}
		}
	}
}

// polygon builds a closed path through the given points.
func polygon(pts ...vec.Vec2) path.Path {
	open := polyline(pts...)
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for cmd, p := range open {
			if !yield(cmd, p) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
