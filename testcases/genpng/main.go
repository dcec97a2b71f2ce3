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

// Command genpng writes one PNG per test case, showing the cells the case
// produces as white squares on black, enlarged for viewing.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/image/draw"

	"seehuhn.de/go/gridline"
	"seehuhn.de/go/gridline/testcases"
)

var (
	outDir  string
	scale   int
	verbose bool
)

func init() {
	flag.StringVar(&outDir, "d", "testdata/png", "output directory")
	flag.IntVar(&scale, "scale", 8, "size of a cell in pixels")
	flag.BoolVar(&verbose, "v", false, "log progress to stderr")
}

func main() {
	flag.Parse()
	if verbose {
		gridline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if scale < 1 {
		fmt.Fprintln(os.Stderr, "genpng: scale must be positive")
		os.Exit(1)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintln(os.Stderr, "genpng:", err)
		os.Exit(1)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pngPath := filepath.Join(outDir, name+".png")
			if err := writePNG(tc, pngPath); err != nil {
				fmt.Fprintf(os.Stderr, "genpng: %s: %v\n", name, err)
				os.Exit(1)
			}
			gridline.Logger().Info("wrote", slog.String("file", pngPath))
		}
	}
}

func writePNG(tc testcases.TestCase, pngPath string) error {
	mask := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	gridline.RenderExample(tc, mask.Pix, tc.Width, tc.Height, mask.Stride)

	big := image.NewGray(image.Rect(0, 0, tc.Width*scale, tc.Height*scale))
	draw.NearestNeighbor.Scale(big, big.Bounds(), mask, mask.Bounds(), draw.Src, nil)

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, big); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
