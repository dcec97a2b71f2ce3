package testcases

var pathCases = []TestCase{
	{
		Name:   "triangle",
		Path:   polygon(pt(1.5, 1.5), pt(8.5, 1.5), pt(1.5, 6.5)),
		Width:  10,
		Height: 8,
		Op:     Hairline{},
		Want: []string{
			"..........",
			".########.",
			".#....##..",
			".#...#....",
			".#..#.....",
			".###......",
			".#........",
			"..........",
		},
	},
	{
		Name:   "zigzag",
		Path:   polyline(pt(0.5, 4.5), pt(3.5, 0.5), pt(6.5, 4.5), pt(9.5, 0.5)),
		Width:  10,
		Height: 5,
		Op:     Hairline{},
		Want: []string{
			"...#.....#",
			"..#.#...#.",
			".#..#..#..",
			".#...#.#..",
			"#.....#...",
		},
	},
	{
		Name:   "clipped",
		Path:   polyline(pt(-5.5, -2.5), pt(14.5, 7.5)),
		Width:  10,
		Height: 5,
		Op:     Hairline{},
		Want: []string{
			"##........",
			"..##......",
			"....##....",
			"......##..",
			"........##",
		},
	},
	{
		Name:   "square_explicit_close",
		Path:   polygon(pt(1.5, 1.5), pt(6.5, 1.5), pt(6.5, 4.5), pt(1.5, 4.5), pt(1.5, 1.5)),
		Width:  8,
		Height: 6,
		Op:     Hairline{},
		Want: []string{
			"........",
			".######.",
			".#....#.",
			".#....#.",
			".######.",
			"........",
		},
	},
	{
		Name:   "square_explicit_close_dashed",
		Path:   polygon(pt(1.5, 1.5), pt(6.5, 1.5), pt(6.5, 4.5), pt(1.5, 4.5), pt(1.5, 1.5)),
		Width:  8,
		Height: 6,
		Op:     Hairline{Dash: []int{1, 1}},
		Want: []string{
			"........",
			".#.#.#..",
			"......#.",
			".#......",
			"..#.#.#.",
			"........",
		},
	},
	{
		Name:   "star",
		Path:   polygon(pt(16, 2), pt(24.5, 28), pt(2, 11), pt(30, 11), pt(7.5, 28)),
		Width:  32,
		Height: 32,
		Op:     Hairline{},
	},
}
