package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadratic(pt(2.5, 28.5), pt(16, -10), pt(29.5, 28.5)),
		Width:  32,
		Height: 32,
		Op:     Hairline{},
	},
	{
		Name:   "cubic_s",
		Path:   cubic(pt(2.5, 2.5), pt(40, 2.5), pt(-8, 29.5), pt(29.5, 29.5)),
		Width:  32,
		Height: 32,
		Op:     Hairline{},
	},
	{
		Name:   "circle",
		Path:   circle(16, 16, 12),
		Width:  32,
		Height: 32,
		Op:     Hairline{},
	},
	{
		Name:   "circle_dashed",
		Path:   circle(16, 16, 12),
		Width:  32,
		Height: 32,
		Op:     Hairline{Dash: []int{4, 2}},
	},
}

// quadratic builds a path consisting of a single quadratic Bézier curve.
func quadratic(p0, p1, p2 vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{p0}) {
			return
		}
		yield(path.CmdQuadTo, []vec.Vec2{p1, p2})
	}
}

// cubic builds a path consisting of a single cubic Bézier curve.
func cubic(p0, p1, p2, p3 vec.Vec2) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{p0}) {
			return
		}
		yield(path.CmdCubeTo, []vec.Vec2{p1, p2, p3})
	}
}

// circle builds a closed circle from four cubic Bézier arcs.
func circle(cx, cy, r float64) path.Path {
	const k = 0.5522847498 // control point distance for a quarter circle
	kr := k * r
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{pt(cx+r, cy)}) {
			return
		}
		arcs := [4][3]vec.Vec2{
			{pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)},
			{pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)},
			{pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r)},
			{pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)},
		}
		for _, a := range arcs {
			if !yield(path.CmdCubeTo, a[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}
