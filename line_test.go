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
	"math"
	"slices"
	"testing"
)

func TestRasterizeShallow(t *testing.T) {
	out := make([]Point, 10)
	n, err := Rasterize(0, 0, 3, 1, 10, out)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}}
	if !slices.Equal(out[:n], want) {
		t.Errorf("got %v, want %v", out[:n], want)
	}
}

func TestRasterizeDegenerate(t *testing.T) {
	out := make([]Point, 10)
	n, err := Rasterize(5, 5, 5, 5, 10, out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || out[0] != (Point{5, 5}) {
		t.Errorf("got %v, want [(5,5)]", out[:n])
	}
}

func TestRasterizeZeroCapacity(t *testing.T) {
	n, err := Rasterize(-7, 3, 12, 40, 0, nil)
	if err != nil || n != 0 {
		t.Errorf("nil buffer: got %d, %v", n, err)
	}

	sentinel := Point{-99, -99}
	out := []Point{sentinel, sentinel}
	n, err = Rasterize(0, 0, 1, 1, 0, out)
	if err != nil || n != 0 {
		t.Errorf("got %d, %v", n, err)
	}
	if out[0] != sentinel || out[1] != sentinel {
		t.Errorf("buffer modified: %v", out)
	}
}

func TestRasterizeErrors(t *testing.T) {
	sentinel := Point{-99, -99}
	cases := []struct {
		n    int32
		size int
		want error
	}{
		{-1, 4, ErrInvalidCapacity},
		{math.MinInt32, 0, ErrInvalidCapacity},
		{5, 4, ErrBufferTooSmall},
		{1, 0, ErrBufferTooSmall},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("n=%d,len=%d", c.n, c.size), func(t *testing.T) {
			out := make([]Point, c.size)
			for i := range out {
				out[i] = sentinel
			}
			n, err := Rasterize(0, 0, 10, 3, c.n, out)
			if !errors.Is(err, c.want) {
				t.Errorf("got error %v, want %v", err, c.want)
			}
			if n != -1 {
				t.Errorf("got count %d, want -1", n)
			}
			for i, p := range out {
				if p != sentinel {
					t.Errorf("out[%d] modified: %v", i, p)
				}
			}
		})
	}
}

func TestRasterizeInterleaved(t *testing.T) {
	out := make([]int32, 8)
	n, err := RasterizeInterleaved(0, 0, 3, 1, 4, out)
	if err != nil {
		t.Fatal(err)
	}
	want := []int32{0, 0, 1, 0, 2, 1, 3, 1}
	if n != 4 || !slices.Equal(out, want) {
		t.Errorf("got %d %v, want 4 %v", n, out, want)
	}

	_, err = RasterizeInterleaved(0, 0, 3, 1, 4, make([]int32, 7))
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("short buffer: got %v", err)
	}
	_, err = RasterizeInterleaved(0, 0, 3, 1, -2, out)
	if !errors.Is(err, ErrInvalidCapacity) {
		t.Errorf("negative capacity: got %v", err)
	}
}

// lines returns a set of test lines covering all octants, the axes and
// the diagonals.
func lines() [][2]Point {
	var res [][2]Point
	for dx := int32(-7); dx <= 7; dx++ {
		for dy := int32(-7); dy <= 7; dy++ {
			res = append(res, [2]Point{{-3, 2}, {-3 + dx, 2 + dy}})
		}
	}
	res = append(res,
		[2]Point{{-100, -37}, {250, 12}},
		[2]Point{{17, 1000}, {-3, -999}},
	)
	return res
}

func TestEndpoints(t *testing.T) {
	for _, l := range lines() {
		cells := AppendCells(nil, l[0], l[1])
		if int64(len(cells)) != Len(l[0], l[1]) {
			t.Errorf("%v: got %d cells, want %d", l, len(cells), Len(l[0], l[1]))
			continue
		}
		if cells[0] != l[0] || cells[len(cells)-1] != l[1] {
			t.Errorf("%v: path runs from %v to %v", l, cells[0], cells[len(cells)-1])
		}
	}
}

func TestConnected(t *testing.T) {
	for _, l := range lines() {
		cells := AppendCells(nil, l[0], l[1])
		seen := make(map[Point]bool)
		for i, p := range cells {
			if seen[p] {
				t.Errorf("%v: duplicate cell %v", l, p)
			}
			seen[p] = true
			if i == 0 {
				continue
			}
			q := cells[i-1]
			dx, dy := abs64(int64(p.X-q.X)), abs64(int64(p.Y-q.Y))
			if max(dx, dy) != 1 {
				t.Errorf("%v: step from %v to %v", l, q, p)
			}
		}
	}
}

func TestReversal(t *testing.T) {
	for _, l := range lines() {
		fwd := AppendCells(nil, l[0], l[1])
		rev := AppendCells(nil, l[1], l[0])
		slices.Reverse(rev)
		if !slices.Equal(fwd, rev) {
			t.Errorf("%v:\n  forward  %v\n  reversed %v", l, fwd, rev)
		}
	}
}

func TestTruncation(t *testing.T) {
	for _, l := range lines() {
		full := AppendCells(nil, l[0], l[1])
		for n := range int32(len(full)) + 2 {
			out := make([]Point, n)
			count, err := Rasterize(l[0].X, l[0].Y, l[1].X, l[1].Y, n, out)
			if err != nil {
				t.Fatal(err)
			}
			if want := min(n, int32(len(full))); count != want {
				t.Fatalf("%v, n=%d: got %d cells, want %d", l, n, count, want)
			}
			if !slices.Equal(out[:count], full[:count]) {
				t.Fatalf("%v, n=%d: got %v, want prefix of %v", l, n, out[:count], full)
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	a := make([]Point, 20)
	b := make([]Point, 20)
	na, _ := Rasterize(-4, 9, 13, -2, 20, a)
	nb, _ := Rasterize(-4, 9, 13, -2, 20, b)
	if na != nb || !slices.Equal(a, b) {
		t.Errorf("results differ: %v vs %v", a[:na], b[:nb])
	}
}

func TestTieBreak(t *testing.T) {
	// The ideal line passes exactly between two cells at x=1 and x=3.
	// The lower cell is chosen in both directions.
	got := AppendCells(nil, Point{0, 0}, Point{4, 2})
	want := []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}
	if !slices.Equal(got, want) {
		t.Errorf("forward: got %v, want %v", got, want)
	}
	got = AppendCells(nil, Point{4, 2}, Point{0, 0})
	slices.Reverse(want)
	if !slices.Equal(got, want) {
		t.Errorf("backward: got %v, want %v", got, want)
	}
}

func TestFullRange(t *testing.T) {
	const lo, hi = math.MinInt32, math.MaxInt32
	cases := []struct {
		p0, p1 Point
		k      []int64
		want   []Point
	}{
		{
			p0:   Point{lo, 0},
			p1:   Point{hi, 3},
			k:    []int64{0, 1, 2, 1<<32 - 3, 1<<32 - 2, 1<<32 - 1},
			want: []Point{{lo, 0}, {lo + 1, 0}, {lo + 2, 0}, {hi - 2, 3}, {hi - 1, 3}, {hi, 3}},
		},
		{
			p0:   Point{hi, lo},
			p1:   Point{lo, hi},
			k:    []int64{0, 1, 1<<32 - 2, 1<<32 - 1},
			want: []Point{{hi, lo}, {hi - 1, lo + 1}, {lo + 1, hi - 1}, {lo, hi}},
		},
		{
			p0:   Point{lo, hi},
			p1:   Point{hi, hi - 5},
			k:    []int64{0, 1<<31 - 1, 1 << 31, 1<<31 + 1, 1<<32 - 1},
			want: []Point{{lo, hi}, {-1, hi - 2}, {0, hi - 3}, {1, hi - 3}, {hi, hi - 5}},
		},
	}
	for i, c := range cases {
		var w Walker
		w.Reset(c.p0, c.p1)
		if w.Len() != 1<<32 {
			t.Errorf("%d: Len = %d, want %d", i, w.Len(), int64(1<<32))
		}
		for j, k := range c.k {
			if got := w.At(k); got != c.want[j] {
				t.Errorf("%d: At(%d) = %v, want %v", i, k, got, c.want[j])
			}
			w.Seek(k)
			if got, ok := w.Next(); !ok || got != c.want[j] {
				t.Errorf("%d: Seek(%d)+Next = %v %t, want %v", i, k, got, ok, c.want[j])
			}
		}
	}
}

func TestWalkerSeek(t *testing.T) {
	for _, l := range lines() {
		full := AppendCells(nil, l[0], l[1])
		var w Walker
		w.Reset(l[0], l[1])
		for k := range int64(len(full)) {
			w.Seek(k)
			if w.Remaining() != int64(len(full))-k {
				t.Fatalf("%v: Remaining after Seek(%d) = %d", l, k, w.Remaining())
			}
			var rest []Point
			for {
				p, ok := w.Next()
				if !ok {
					break
				}
				rest = append(rest, p)
			}
			if !slices.Equal(rest, full[k:]) {
				t.Fatalf("%v: Seek(%d) continues with %v, want %v", l, k, rest, full[k:])
			}
		}
	}
}

func TestWalkerZero(t *testing.T) {
	var w Walker
	if _, ok := w.Next(); ok {
		t.Error("zero Walker returned a cell")
	}
	w.Seek(5)
	if w.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", w.Remaining())
	}
}

func TestCellsBreak(t *testing.T) {
	var got []Point
	for p := range Cells(Point{0, 0}, Point{10, 0}) {
		if p.X == 3 {
			break
		}
		got = append(got, p)
	}
	want := []Point{{0, 0}, {1, 0}, {2, 0}}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRasterizeAllocs(t *testing.T) {
	out := make([]Point, 64)
	allocs := testing.AllocsPerRun(100, func() {
		Rasterize(-20, 7, 30, -11, 64, out)
	})
	if allocs != 0 {
		t.Errorf("Rasterize allocates %.1f times per call", allocs)
	}
}
