package testcases

var lineCases = []TestCase{
	{
		Name:   "shallow",
		Width:  5,
		Height: 3,
		Op:     Line{X1: 0, Y1: 0, X2: 3, Y2: 1},
		Want: []string{
			"##...",
			"..##.",
			".....",
		},
	},
	{
		Name:   "steep_backwards",
		Width:  6,
		Height: 6,
		Op:     Line{X1: 4, Y1: 0, X2: 1, Y2: 5},
		Want: []string{
			"....#.",
			"...#..",
			"...#..",
			"..#...",
			"..#...",
			".#....",
		},
	},
	{
		Name:   "degenerate",
		Width:  5,
		Height: 5,
		Op:     Line{X1: 2, Y1: 2, X2: 2, Y2: 2},
		Want: []string{
			".....",
			".....",
			"..#..",
			".....",
			".....",
		},
	},
	{
		Name:   "horizontal",
		Width:  8,
		Height: 5,
		Op:     Line{X1: 1, Y1: 2, X2: 6, Y2: 2},
		Want: []string{
			"........",
			"........",
			".######.",
			"........",
			"........",
		},
	},
	{
		Name:   "vertical",
		Width:  7,
		Height: 5,
		Op:     Line{X1: 3, Y1: 4, X2: 3, Y2: 0},
		Want: []string{
			"...#...",
			"...#...",
			"...#...",
			"...#...",
			"...#...",
		},
	},
	{
		Name:   "diagonal",
		Width:  5,
		Height: 5,
		Op:     Line{X1: 0, Y1: 4, X2: 4, Y2: 0},
		Want: []string{
			"....#",
			"...#.",
			"..#..",
			".#...",
			"#....",
		},
	},
	{
		Name:   "truncated",
		Width:  8,
		Height: 4,
		Op:     Line{X1: 0, Y1: 0, X2: 7, Y2: 3, Limit: 4},
		Want: []string{
			"##......",
			"..##....",
			"........",
			"........",
		},
	},
	{
		Name:   "tie",
		Width:  3,
		Height: 2,
		Op:     Line{X1: 0, Y1: 0, X2: 2, Y2: 1},
		Want: []string{
			"##.",
			"..#",
		},
	},
	{
		Name:   "tie_reversed",
		Width:  3,
		Height: 2,
		Op:     Line{X1: 2, Y1: 1, X2: 0, Y2: 0},
		Want: []string{
			"##.",
			"..#",
		},
	},
	{
		Name:   "negative",
		Width:  6,
		Height: 6,
		Op:     Line{X1: -3, Y1: -2, X2: 9, Y2: 7},
	},
}
