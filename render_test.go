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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/gridline/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				actual := make([]byte, w*h)
				RenderExample(tc, actual, w, h, w)

				if tc.Want == nil {
					if countSet(actual) == 0 {
						t.Error("nothing drawn")
					}
					return
				}

				expected, err := parseMask(tc.Want, w, h)
				if err != nil {
					t.Fatal(err)
				}
				if !slices.Equal(expected, actual) {
					writeDiffImage(name, expected, actual, w, h)
					t.Errorf("mismatch:\n%s", showMasks(expected, actual, w, h))
				}
			})
		}
	}
}

func TestExampleCellsInCanvas(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if _, ok := tc.Op.(testcases.Hairline); !ok {
				continue
			}
			for _, p := range ExampleCells(tc) {
				if p.X < 0 || int(p.X) >= tc.Width || p.Y < 0 || int(p.Y) >= tc.Height {
					t.Errorf("%s_%s: cell %v outside the canvas", category, tc.Name, p)
				}
			}
		}
	}
}

func TestExampleCellsRejected(t *testing.T) {
	var buf bytes.Buffer
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	tc := testcases.TestCase{
		Name:   "negative_limit",
		Width:  4,
		Height: 4,
		Op:     testcases.Line{X2: 3, Y2: 3, Limit: -1},
	}
	if cells := ExampleCells(tc); len(cells) != 0 {
		t.Errorf("got %v, want no cells", cells)
	}
	if !strings.Contains(buf.String(), "invalid capacity") {
		t.Errorf("expected a log message, got %q", buf.String())
	}

	mask := make([]byte, 16)
	RenderExample(tc, mask, 4, 4, 4)
	if n := countSet(mask); n != 0 {
		t.Errorf("%d cells set", n)
	}
}

// parseMask converts rows of '#' and '.' into a grayscale buffer.
func parseMask(rows []string, w, h int) ([]byte, error) {
	if len(rows) != h {
		return nil, fmt.Errorf("mask has %d rows, want %d", len(rows), h)
	}
	buf := make([]byte, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("mask row %d has %d columns, want %d", y, len(row), w)
		}
		for x, c := range []byte(row) {
			switch c {
			case '#':
				buf[y*w+x] = 255
			case '.':
			default:
				return nil, fmt.Errorf("mask row %d: invalid character %q", y, c)
			}
		}
	}
	return buf, nil
}

func countSet(buf []byte) int {
	n := 0
	for _, b := range buf {
		if b != 0 {
			n++
		}
	}
	return n
}

// showMasks formats expected and actual masks side by side.
func showMasks(expected, actual []byte, w, h int) string {
	var b strings.Builder
	for y := range h {
		for _, buf := range [][]byte{expected, actual} {
			for x := range w {
				if buf[y*w+x] != 0 {
					b.WriteByte('#')
				} else {
					b.WriteByte('.')
				}
			}
			b.WriteString("   ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeDiffImage(name string, expected, actual []byte, w, h int) {
	os.MkdirAll("debug", 0755)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			img.Set(x, y, color.RGBA{
				R: expected[i], // expected in red
				G: actual[i],   // actual in green
				B: 0,
				A: 255,
			})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return
	}
	defer f.Close()
	png.Encode(f, img)
}
