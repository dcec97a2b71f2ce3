package testcases

var largeCases = []TestCase{
	{
		// spans the whole int32 range; only the middle is visible
		Name:   "full_range_rising",
		Path:   polyline(pt(-2147483648, 0.5), pt(2147483647.5, 3.5)),
		Width:  10,
		Height: 5,
		Op:     Hairline{},
		Want: []string{
			"..........",
			"..........",
			"##########",
			"..........",
			"..........",
		},
	},
	{
		Name:   "full_range_falling",
		Path:   polyline(pt(-2147483648, 4.5), pt(2147483647.5, -3.5)),
		Width:  10,
		Height: 5,
		Op:     Hairline{},
		Want: []string{
			"##########",
			"..........",
			"..........",
			"..........",
			"..........",
		},
	},
	{
		Name:   "beyond_int32",
		Path:   polyline(pt(-1e12, 2.5), pt(1e12, 2.5)),
		Width:  10,
		Height: 5,
		Op:     Hairline{},
		Want: []string{
			"..........",
			"..........",
			"##########",
			"..........",
			"..........",
		},
	},
}
