package testcases

import "seehuhn.de/go/geom/matrix"

var ctmCases = []TestCase{
	{
		Name:   "scale",
		Path:   polyline(pt(0.5, 0.5), pt(4.5, 2.5)),
		Width:  10,
		Height: 6,
		Op:     Hairline{},
		CTM:    matrix.Matrix{2, 0, 0, 2, 0, 0},
		Want: []string{
			"..........",
			".##.......",
			"...##.....",
			".....##...",
			".......##.",
			".........#",
		},
	},
	{
		Name:   "flip",
		Path:   polyline(pt(1.5, 1.5), pt(6.5, 3.5)),
		Width:  8,
		Height: 6,
		Op:     Hairline{},
		CTM:    matrix.Matrix{1, 0, 0, -1, 0, 6},
		Want: []string{
			"........",
			"........",
			".....##.",
			"...##...",
			".##.....",
			"........",
		},
	},
}
