package testcases

var dashCases = []TestCase{
	{
		Name:   "two_one",
		Path:   polyline(pt(0.5, 1.5), pt(11.5, 1.5)),
		Width:  12,
		Height: 3,
		Op:     Hairline{Dash: []int{2, 1}},
		Want: []string{
			"............",
			"##.##.##.##.",
			"............",
		},
	},
	{
		Name:   "odd_length",
		Path:   polyline(pt(0.5, 1.5), pt(11.5, 1.5)),
		Width:  12,
		Height: 3,
		Op:     Hairline{Dash: []int{3}},
		Want: []string{
			"............",
			"###...###...",
			"............",
		},
	},
	{
		Name:   "negative_phase",
		Path:   polyline(pt(0.5, 1.5), pt(11.5, 1.5)),
		Width:  12,
		Height: 3,
		Op:     Hairline{Dash: []int{2, 2}, DashPhase: -1},
		Want: []string{
			"............",
			".##..##..##.",
			"............",
		},
	},
	{
		Name:   "corner",
		Path:   polyline(pt(0.5, 0.5), pt(5.5, 0.5), pt(5.5, 5.5)),
		Width:  7,
		Height: 7,
		Op:     Hairline{Dash: []int{1, 1}},
		Want: []string{
			"#.#.#..",
			".....#.",
			".......",
			".....#.",
			".......",
			".....#.",
			".......",
		},
	},
	{
		Name:   "all_zero",
		Path:   polyline(pt(0.5, 1.5), pt(11.5, 1.5)),
		Width:  12,
		Height: 3,
		Op:     Hairline{Dash: []int{0, 0}},
		Want: []string{
			"............",
			"############",
			"............",
		},
	},
}
