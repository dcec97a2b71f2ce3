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

package gridline

import "iter"

// Circle is a round widget on the cell grid which tracks the mouse.
type Circle struct {
	X, Y int32 // centre cell
	R    int32 // radius in cells

	MouseHover bool // the mouse is over the circle
	MouseDown  bool // a button was pressed while hovering
}

// SetPos moves the centre of the circle to (x, y).
func (c *Circle) SetPos(x, y int32) {
	c.X = x
	c.Y = y
}

// Contains reports whether the cell (x, y) lies inside the circle or on
// its boundary. A circle with negative radius contains nothing.
func (c *Circle) Contains(x, y int32) bool {
	if c.R < 0 {
		return false
	}
	dx := int64(x) - int64(c.X)
	dy := int64(y) - int64(c.Y)
	r := int64(c.R)
	return dx*dx+dy*dy <= r*r
}

// Update sets the mouse state from a mouse position and button state.
// MouseDown is only set while hovering. The return value reports whether
// anything changed.
func (c *Circle) Update(mx, my int32, down bool) bool {
	hover := c.Contains(mx, my)
	pressed := hover && down
	changed := hover != c.MouseHover || pressed != c.MouseDown
	c.MouseHover = hover
	c.MouseDown = pressed
	return changed
}

// Outline returns an iterator over the boundary cells of the circle,
// computed with the integer midpoint algorithm. Every cell is produced
// exactly once. A circle of radius 0 consists of its centre cell.
func (c *Circle) Outline() iter.Seq[Point] {
	cx, cy, r := c.X, c.Y, c.R
	return func(yield func(Point) bool) {
		if r < 0 {
			return
		}

		var buf [8]Point
		x, y := int32(0), r
		d := 1 - r
		for x <= y {
			// the eight symmetric cells, without repeats on the axes and
			// diagonals
			pts := buf[:0]
			for _, o := range [8][2]int32{
				{x, y}, {y, x}, {y, -x}, {x, -y},
				{-x, -y}, {-y, -x}, {-y, x}, {-x, y},
			} {
				p := Point{X: cx + o[0], Y: cy + o[1]}
				dup := false
				for _, q := range pts {
					if q == p {
						dup = true
						break
					}
				}
				if !dup {
					pts = append(pts, p)
				}
			}
			for _, p := range pts {
				if !yield(p) {
					return
				}
			}

			x++
			if d < 0 {
				d += 2*x + 1
			} else {
				y--
				d += 2*(x-y) + 1
			}
		}
	}
}
