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
	"log/slog"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Tracer draws vector paths as hairlines, one grid cell wide.
// Device space is the cell grid: the point (x, y) lies in the cell
// (floor(x), floor(y)).
//
// Create one instance and reuse it for multiple paths.
// A Tracer is not safe for concurrent use.
type Tracer struct {
	// CTM transforms from user space to device space.
	CTM matrix.Matrix

	// Clip restricts output to the cells (x, y) with LLx <= x < URx and
	// LLy <= y < URy. Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in cells.
	// Values which are not positive select the default.
	Flatness float64

	// Dash specifies alternating on/off run lengths, counted in cells along
	// each subpath. Nil means solid.
	Dash []int

	// DashPhase offsets into the dash pattern, in cells.
	DashPhase int

	// clip window in cells, valid during a call
	xMin, xMax, yMin, yMax int64

	// dash state: total pattern length (0 for solid) and normalised phase
	dashLen, dashOff int64

	flatness float64 // Flatness, or the default if Flatness is not positive

	pos   int64 // index of the next new cell along the current subpath
	first Point // cell with index 0 in the current subpath

	// The last cell of a segment is held back until the next segment
	// starts, so that joints and the closing cell are emitted once.
	pending   bool
	pendCell  Point
	pendIndex int64

	emit   func(x, y int)
	walker Walker
}

// NewTracer returns a Tracer with the given clip rectangle and default
// values for the other parameters.
func NewTracer(clip rect.Rect) *Tracer {
	t := &Tracer{}
	t.Reset(clip)
	return t
}

// Reset sets the clip rectangle and restores the defaults for all other
// parameters.
func (t *Tracer) Reset(clip rect.Rect) {
	t.CTM = matrix.Identity
	t.Clip = clip
	t.Flatness = defaultFlatness
	t.Dash = nil
	t.DashPhase = 0
}

// Segment draws the straight line from p0 to p1, including both end cells.
func (t *Tracer) Segment(p0, p1 vec.Vec2, emit func(x, y int)) {
	t.begin(emit)
	defer t.end()

	t.startSubpath()
	t.line(t.toDevice(p0), t.toDevice(p1))
	t.flush()
}

// Path draws the outline of p. Within a subpath, the cell shared by two
// consecutive segments is emitted only once, and closing a subpath does not
// repeat its first cell. A subpath consisting of a single MoveTo draws
// nothing.
func (t *Tracer) Path(p path.Path, emit func(x, y int)) {
	t.begin(emit)
	defer t.end()

	var current, start vec.Vec2
	inSubpath := false

	seg := func(from, to vec.Vec2) {
		t.line(t.toDevice(from), t.toDevice(to))
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			t.flush()
			current = pts[0]
			start = current
			inSubpath = true
			t.startSubpath()

		case path.CmdLineTo:
			if !inSubpath {
				continue
			}
			seg(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !inSubpath {
				continue
			}
			t.flattenQuadratic(current, pts[0], pts[1], seg)
			current = pts[1]

		case path.CmdCubeTo:
			if !inSubpath {
				continue
			}
			t.flattenCubic(current, pts[0], pts[1], pts[2], seg)
			current = pts[2]

		case path.CmdClose:
			if !inSubpath {
				continue
			}
			if t.pending && current != start {
				seg(current, start)
			}
			// the held-back cell is the first cell again, unless it is
			// the only cell of the subpath
			if t.pending && t.pendCell == t.first && t.pendIndex > 0 {
				t.pending = false
			}
			t.flush()
			current = start
			inSubpath = false
		}
	}
	t.flush()
}

// begin prepares the per-call state derived from the public fields.
func (t *Tracer) begin(emit func(x, y int)) {
	t.emit = emit
	t.pending = false

	t.flatness = t.Flatness
	if !(t.flatness > 0) {
		t.flatness = defaultFlatness
	}

	t.xMin = clipCoord(t.Clip.LLx)
	t.xMax = clipCoord(t.Clip.URx)
	t.yMin = clipCoord(t.Clip.LLy)
	t.yMax = clipCoord(t.Clip.URy)

	t.dashLen, t.dashOff = 0, 0
	for _, d := range t.Dash {
		t.dashLen += int64(max(d, 0))
	}
	if len(t.Dash)%2 == 1 {
		t.dashLen *= 2
	}
	if t.dashLen > 0 {
		t.dashOff = int64(t.DashPhase) % t.dashLen
		if t.dashOff < 0 {
			t.dashOff += t.dashLen
		}
	}
}

func (t *Tracer) end() {
	t.emit = nil
}

func (t *Tracer) startSubpath() {
	t.pos = 0
	t.pending = false
}

// line emits the visible cells of the line from d0 to d1 (device space),
// except for the last one, which becomes the pending cell. If the line
// starts on the pending cell, that cell is emitted as part of this line.
func (t *Tracer) line(d0, d1 vec.Vec2) {
	c0, c1, ok := toCells(d0, d1)
	if !ok {
		return
	}

	var base int64
	if t.pending && t.pendCell == c0 {
		base = t.pendIndex
		t.pending = false
	} else {
		t.flush()
		base = t.pos
		if base == 0 {
			t.first = c0
		}
	}

	w := &t.walker
	w.Reset(c0, c1)
	n := w.Len()
	t.pos = base + n
	t.pending = true
	t.pendCell = c1
	t.pendIndex = base + n - 1

	lo, hi := t.visible(w, c0, c1)
	hi = min(hi, n-1)
	if lo >= hi {
		return
	}

	w.Seek(lo)
	for k := lo; k < hi; k++ {
		p, _ := w.Next()
		if t.dashOn(base + k) {
			t.emit(int(p.X), int(p.Y))
		}
	}
}

// flush emits the pending cell, if any.
func (t *Tracer) flush() {
	if !t.pending {
		return
	}
	t.pending = false
	p := t.pendCell
	x, y := int64(p.X), int64(p.Y)
	if x < t.xMin || x >= t.xMax || y < t.yMin || y >= t.yMax {
		return
	}
	if t.dashOn(t.pendIndex) {
		t.emit(int(p.X), int(p.Y))
	}
}

// visible returns the range [lo, hi) of cell indices on the line walked by
// w which fall inside the clip window. Both coordinates are monotone along
// a line, so each axis restricts the indices to an interval.
func (t *Tracer) visible(w *Walker, c0, c1 Point) (lo, hi int64) {
	n := w.Len()
	xLo, xHi := axisRange(n, c1.X < c0.X, t.xMin, t.xMax, func(k int64) int64 {
		return int64(w.At(k).X)
	})
	yLo, yHi := axisRange(n, c1.Y < c0.Y, t.yMin, t.yMax, func(k int64) int64 {
		return int64(w.At(k).Y)
	})
	return max(xLo, yLo), min(xHi, yHi)
}

// axisRange returns the range [lo, hi) of indices k in [0, n) for which
// cMin <= coord(k) < cMax. The function coord must be non-decreasing, or
// non-increasing if decreasing is set.
func axisRange(n int64, decreasing bool, cMin, cMax int64, coord func(int64) int64) (lo, hi int64) {
	if decreasing {
		lo = search(n, func(k int64) bool { return coord(k) < cMax })
		hi = search(n, func(k int64) bool { return coord(k) < cMin })
	} else {
		lo = search(n, func(k int64) bool { return coord(k) >= cMin })
		hi = search(n, func(k int64) bool { return coord(k) >= cMax })
	}
	return lo, hi
}

// search returns the smallest k in [0, n) for which f(k) is true, or n if
// there is none. f must be false up to some index and true from there on.
func search(n int64, f func(int64) bool) int64 {
	lo, hi := int64(0), n
	for lo < hi {
		h := int64(uint64(lo+hi) >> 1)
		if f(h) {
			hi = h
		} else {
			lo = h + 1
		}
	}
	return lo
}

// dashOn reports whether cell i of the current subpath is part of a dash.
func (t *Tracer) dashOn(i int64) bool {
	if t.dashLen == 0 {
		return true
	}
	pos := (i + t.dashOff) % t.dashLen
	for j := 0; ; j++ {
		d := int64(max(t.Dash[j%len(t.Dash)], 0))
		if pos < d {
			return j%2 == 0
		}
		pos -= d
	}
}

// toDevice applies the CTM to a point.
func (t *Tracer) toDevice(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t.CTM[0]*p.X + t.CTM[2]*p.Y + t.CTM[4],
		Y: t.CTM[1]*p.X + t.CTM[3]*p.Y + t.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func (t *Tracer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: t.CTM[0]*v.X + t.CTM[2]*v.Y,
		Y: t.CTM[1]*v.X + t.CTM[3]*v.Y,
	}
}

// flattenQuadratic splits a quadratic Bézier curve into line segments.
// p0 is the current point, p1 the control point and p2 the endpoint,
// all in user space.
func (t *Tracer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// deviation from the chord: (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := t.transformLinear(e).Length()

	n := segmentCount(math.Sqrt(errDev / t.flatness))

	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		oms := 1 - s
		pt := p0.Mul(oms * oms).Add(p1.Mul(2 * oms * s)).Add(p2.Mul(s * s))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic splits a cubic Bézier curve into line segments, using
// Wang's formula for the segment count.
func (t *Tracer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := t.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := t.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	m := max(d1.Length(), d2.Length())
	n := segmentCount(math.Sqrt(3 * m / (4 * t.flatness)))

	prev := p0
	for i := 1; i <= n; i++ {
		s := float64(i) / float64(n)
		oms := 1 - s
		pt := p0.Mul(oms * oms * oms).
			Add(p1.Mul(3 * oms * oms * s)).
			Add(p2.Mul(3 * oms * s * s)).
			Add(p3.Mul(s * s * s))
		emit(prev, pt)
		prev = pt
	}
}

// segmentCount rounds an estimated number of flattening segments up to an
// integer in the range [1, maxCurveSegments].
func segmentCount(nf float64) int {
	if !(nf > 1) {
		return 1
	}
	if nf > maxCurveSegments {
		Logger().Debug("curve segment count capped",
			slog.Float64("wanted", nf), slog.Int("used", maxCurveSegments))
		return maxCurveSegments
	}
	return int(math.Ceil(nf))
}

// toCells converts a device-space segment to its end cells. Segments with
// non-finite coordinates are dropped. Segments reaching beyond the int32
// range are first cut to the representable square.
func toCells(d0, d1 vec.Vec2) (Point, Point, bool) {
	if !finite(d0) || !finite(d1) {
		Logger().Debug("dropping non-finite segment",
			slog.Any("from", d0), slog.Any("to", d1))
		return Point{}, Point{}, false
	}
	if !representable(d0) || !representable(d1) {
		var ok bool
		d0, d1, ok = clampSegment(d0, d1)
		if !ok {
			Logger().Debug("dropping segment outside coordinate range",
				slog.Any("from", d0), slog.Any("to", d1))
			return Point{}, Point{}, false
		}
		Logger().Debug("segment cut to coordinate range",
			slog.Any("from", d0), slog.Any("to", d1))
	}
	return cellOf(d0), cellOf(d1), true
}

func cellOf(d vec.Vec2) Point {
	return Point{
		X: int32(min(max(math.Floor(d.X), MinCoord), MaxCoord)),
		Y: int32(min(max(math.Floor(d.Y), MinCoord), MaxCoord)),
	}
}

func finite(d vec.Vec2) bool {
	return !math.IsNaN(d.X) && !math.IsInf(d.X, 0) &&
		!math.IsNaN(d.Y) && !math.IsInf(d.Y, 0)
}

// representable reports whether d lies in a cell with int32 coordinates.
func representable(d vec.Vec2) bool {
	return d.X >= MinCoord && d.X < MaxCoord+1 &&
		d.Y >= MinCoord && d.Y < MaxCoord+1
}

// clampSegment clips a segment to the square of representable cells,
// using the Liang-Barsky algorithm.
func clampSegment(d0, d1 vec.Vec2) (vec.Vec2, vec.Vec2, bool) {
	const lo, hi = float64(MinCoord), float64(MaxCoord) + 0.5

	d := d1.Sub(d0)
	t0, t1 := 0.0, 1.0
	for _, c := range [4]struct{ p, q float64 }{
		{-d.X, d0.X - lo},
		{d.X, hi - d0.X},
		{-d.Y, d0.Y - lo},
		{d.Y, hi - d0.Y},
	} {
		if c.p == 0 {
			if c.q < 0 {
				return d0, d1, false
			}
			continue
		}
		r := c.q / c.p
		if c.p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
	}
	if t0 > t1 {
		return d0, d1, false
	}
	return d0.Add(d.Mul(t0)), d0.Add(d.Mul(t1)), true
}

// clipCoord converts a clip rectangle coordinate to a cell coordinate,
// saturating at the ends of the representable range.
func clipCoord(v float64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	return int64(min(max(math.Floor(v), MinCoord), MaxCoord+1))
}

// Default values for tracer parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in cells.
	defaultFlatness = 0.25

	// maxCurveSegments limits the number of line segments per curve.
	maxCurveSegments = 1 << 16
)
