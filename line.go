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

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math"
	"math/bits"
	"slices"
)

// Supported coordinate range. Endpoints may be any int32 values; deltas and
// error terms are computed in int64, so no input can overflow.
const (
	MinCoord = math.MinInt32
	MaxCoord = math.MaxInt32
)

var (
	// ErrInvalidCapacity is returned when the requested capacity is negative.
	ErrInvalidCapacity = errors.New("invalid capacity")

	// ErrBufferTooSmall is returned when the output buffer cannot hold the
	// requested number of points.
	ErrBufferTooSmall = errors.New("output buffer too small")
)

// Point is a grid cell.
type Point struct {
	X, Y int32
}

// Rasterize writes the first n cells of the line from (x1, y1) to (x2, y2)
// into out and returns the number of cells written. Both endpoints are
// part of the line, so the full line has Len cells.
//
// If n is negative, or if out has fewer than n elements, Rasterize returns
// -1 and an error, and out is not modified. For n == 0, out is never
// accessed and may be nil.
func Rasterize(x1, y1, x2, y2, n int32, out []Point) (int32, error) {
	if err := checkCapacity(n, len(out), 1); err != nil {
		Logger().Debug("rasterize rejected",
			slog.Int("n", int(n)), slog.Int("len", len(out)), slog.Any("err", err))
		return -1, err
	}

	var w Walker
	w.Reset(Point{x1, y1}, Point{x2, y2})

	var count int32
	for count < n {
		p, ok := w.Next()
		if !ok {
			break
		}
		out[count] = p
		count++
	}
	return count, nil
}

// RasterizeInterleaved is like Rasterize, but stores the cells as
// interleaved coordinate pairs x0, y0, x1, y1, ... in out. The buffer must
// have room for 2*n values.
func RasterizeInterleaved(x1, y1, x2, y2, n int32, out []int32) (int32, error) {
	if err := checkCapacity(n, len(out), 2); err != nil {
		Logger().Debug("rasterize rejected",
			slog.Int("n", int(n)), slog.Int("len", len(out)), slog.Any("err", err))
		return -1, err
	}

	var w Walker
	w.Reset(Point{x1, y1}, Point{x2, y2})

	var count int32
	for count < n {
		p, ok := w.Next()
		if !ok {
			break
		}
		out[2*count] = p.X
		out[2*count+1] = p.Y
		count++
	}
	return count, nil
}

// checkCapacity verifies that a buffer of length size can hold n cells of
// stride values each.
func checkCapacity(n int32, size, stride int) error {
	if n < 0 {
		return fmt.Errorf("gridline: capacity %d: %w", n, ErrInvalidCapacity)
	}
	if need := int64(n) * int64(stride); int64(size) < need {
		return fmt.Errorf("gridline: buffer has %d slots, need %d: %w",
			size, need, ErrBufferTooSmall)
	}
	return nil
}

// Len returns the number of cells on the line from p0 to p1.
func Len(p0, p1 Point) int64 {
	dx := abs64(int64(p1.X) - int64(p0.X))
	dy := abs64(int64(p1.Y) - int64(p0.Y))
	return max(dx, dy) + 1
}

// Cells returns an iterator over the cells of the line from p0 to p1.
func Cells(p0, p1 Point) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		var w Walker
		w.Reset(p0, p1)
		for {
			p, ok := w.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// AppendCells appends the cells of the line from p0 to p1 to dst and
// returns the extended slice.
func AppendCells(dst []Point, p0, p1 Point) []Point {
	var w Walker
	w.Reset(p0, p1)
	dst = slices.Grow(dst, int(w.Len()))
	for {
		p, ok := w.Next()
		if !ok {
			return dst
		}
		dst = append(dst, p)
	}
}

// Walker steps through the cells of a line, one cell per call to Next.
// The zero Walker is exhausted; use Reset to start a line.
//
// The axis with the larger delta (x on ties) is the major axis and
// advances on every step. The minor axis advances when the error term
// crosses zero. When the ideal line passes exactly half way between two
// cells, the cell with the smaller minor coordinate is chosen, so that a
// line and its reverse cover the same cells.
type Walker struct {
	maj0, min0 int64 // start cell, in major/minor coordinates
	maj, min   int64 // next cell
	sMaj, sMin int64 // step directions, -1, 0 or +1
	a, b       int64 // absolute major and minor deltas
	e          int64 // error term
	k, n       int64 // index of the next cell, total number of cells
	swap       bool  // true if y is the major axis
}

// Reset prepares w to walk the line from p0 to p1.
func (w *Walker) Reset(p0, p1 Point) {
	x0, y0 := int64(p0.X), int64(p0.Y)
	dx := int64(p1.X) - x0
	dy := int64(p1.Y) - y0

	w.swap = abs64(dy) > abs64(dx)
	if w.swap {
		w.maj0, w.min0 = y0, x0
		w.sMaj, w.sMin = sign64(dy), sign64(dx)
		w.a, w.b = abs64(dy), abs64(dx)
	} else {
		w.maj0, w.min0 = x0, y0
		w.sMaj, w.sMin = sign64(dx), sign64(dy)
		w.a, w.b = abs64(dx), abs64(dy)
	}
	w.n = w.a + 1
	w.Seek(0)
}

// Len returns the total number of cells on the line.
func (w *Walker) Len() int64 {
	return w.n
}

// Remaining returns the number of cells not yet returned by Next.
func (w *Walker) Remaining() int64 {
	return w.n - w.k
}

// Next returns the next cell of the line. The second return value is
// false once all cells have been returned.
func (w *Walker) Next() (Point, bool) {
	if w.k >= w.n {
		return Point{}, false
	}
	p := w.point(w.maj, w.min)

	w.k++
	if w.k < w.n {
		w.maj += w.sMaj
		w.e += 2 * w.b
		if w.e > 0 || (w.e == 0 && w.sMin < 0) {
			w.min += w.sMin
			w.e -= 2 * w.a
		}
	}
	return p, true
}

// Seek positions w so that the following call to Next returns the cell
// with index k. Indices outside [0, Len] are clamped.
func (w *Walker) Seek(k int64) {
	k = min(max(k, 0), w.n)
	w.k = k
	if k == w.n {
		return
	}
	m, e := w.minorAt(k)
	w.maj = w.maj0 + w.sMaj*k
	w.min = w.min0 + w.sMin*m
	w.e = e
}

// At returns the cell with index k, which must be in the range [0, Len).
// The state of w is not changed.
func (w *Walker) At(k int64) Point {
	m, _ := w.minorAt(k)
	return w.point(w.maj0+w.sMaj*k, w.min0+w.sMin*m)
}

// minorAt returns the number of minor steps taken before cell k and the
// error term at that cell.
//
// After k major steps the error term is e = 2kb - a - 2ma, kept in the
// range (-2a, 0] when moving in the positive minor direction and in
// [-2a, 0) otherwise.  Solving for m gives
//
//	m = floor((2kb + a - 1) / 2a)   (positive direction)
//	m = floor((2kb + a) / 2a)       (negative direction)
//
// The numerator can exceed 64 bits for lines spanning the whole int32
// range, so a 128-bit intermediate is used.
func (w *Walker) minorAt(k int64) (m, e int64) {
	if w.a == 0 {
		return 0, 0
	}
	c := w.a - 1
	if w.sMin < 0 {
		c = w.a
	}
	hi, lo := bits.Mul64(uint64(k), uint64(2*w.b))
	lo, carry := bits.Add64(lo, uint64(c), 0)
	hi += carry
	q, r := bits.Div64(hi, lo, uint64(2*w.a))

	m = int64(q)
	e = int64(r) - 2*w.a
	if w.sMin >= 0 {
		e++
	}
	return m, e
}

func (w *Walker) point(major, minor int64) Point {
	if w.swap {
		return Point{X: int32(minor), Y: int32(major)}
	}
	return Point{X: int32(major), Y: int32(minor)}
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign64(x int64) int64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
