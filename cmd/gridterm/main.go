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

// Command gridterm draws a line on the terminal from an anchor cell to the
// mouse position. Clicking sets the anchor; the circle lights up while the
// mouse is over it. Press 'c' to move the circle to the mouse, 'q' or
// Escape to quit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"seehuhn.de/go/gridline"
)

var (
	limit   int
	radius  int
	logPath string
)

func init() {
	flag.IntVar(&limit, "n", 0, "maximum number of cells to draw (0 for no limit)")
	flag.IntVar(&radius, "r", 4, "radius of the circle widget")
	flag.StringVar(&logPath, "log", "", "write debug log to this file")
}

func main() {
	flag.Parse()

	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gridterm:", err)
			os.Exit(1)
		}
		defer f.Close()
		gridline.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "gridterm:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "gridterm:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	v := newView(screen)
	v.run()
}

// view holds the demo state.
type view struct {
	screen tcell.Screen
	width  int
	height int

	anchor gridline.Point
	mouse  gridline.Point
	circle gridline.Circle

	buf   []gridline.Point
	count int32
	err   error
}

func newView(screen tcell.Screen) *view {
	w, h := screen.Size()
	v := &view{
		screen: screen,
		anchor: gridline.Point{X: int32(w / 4), Y: int32(h / 2)},
		circle: gridline.Circle{X: int32(3 * w / 4), Y: int32(h / 2), R: int32(radius)},
	}
	v.resize()
	v.mouse = v.anchor
	return v
}

// resize adapts the cell buffer to the screen size. Every line between
// two cells on the screen fits into max(width, height) cells.
func (v *view) resize() {
	v.width, v.height = v.screen.Size()
	v.buf = make([]gridline.Point, max(v.width, v.height))
}

func (v *view) run() {
	v.draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return

		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return
			}
			if ev.Key() == tcell.KeyRune && ev.Rune() == 'c' {
				v.circle.SetPos(v.mouse.X, v.mouse.Y)
				v.circle.Update(v.mouse.X, v.mouse.Y, false)
			}

		case *tcell.EventMouse:
			x, y := ev.Position()
			v.mouse = gridline.Point{X: int32(x), Y: int32(y)}
			down := ev.Buttons()&tcell.Button1 != 0
			if down && !v.circle.Contains(v.mouse.X, v.mouse.Y) {
				v.anchor = v.mouse
			}
			if v.circle.Update(v.mouse.X, v.mouse.Y, down) {
				gridline.Logger().Debug("circle state",
					slog.Bool("hover", v.circle.MouseHover),
					slog.Bool("down", v.circle.MouseDown))
			}

		case *tcell.EventResize:
			v.resize()
			v.screen.Sync()
		}
		v.draw()
	}
}

func (v *view) draw() {
	s := v.screen
	s.Clear()

	circleStyle := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	switch {
	case v.circle.MouseDown:
		circleStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	case v.circle.MouseHover:
		circleStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	}
	for p := range v.circle.Outline() {
		v.set(p, 'o', circleStyle)
	}

	n := int32(len(v.buf))
	if limit > 0 {
		n = min(n, int32(limit))
	}
	v.count, v.err = gridline.Rasterize(v.anchor.X, v.anchor.Y, v.mouse.X, v.mouse.Y, n, v.buf)
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i := int32(0); i < v.count; i++ {
		v.set(v.buf[i], '█', lineStyle)
	}
	v.set(v.anchor, '@', tcell.StyleDefault.Foreground(tcell.ColorWhite))

	status := fmt.Sprintf("(%d,%d) -> (%d,%d): %d of %d cells",
		v.anchor.X, v.anchor.Y, v.mouse.X, v.mouse.Y,
		v.count, gridline.Len(v.anchor, v.mouse))
	if v.err != nil {
		status = v.err.Error()
	}
	for i, r := range []rune(status) {
		if i >= v.width {
			break
		}
		s.SetContent(i, v.height-1, r, nil, tcell.StyleDefault.Reverse(true))
	}

	s.Show()
}

func (v *view) set(p gridline.Point, r rune, style tcell.Style) {
	x, y := int(p.X), int(p.Y)
	if x < 0 || x >= v.width || y < 0 || y >= v.height {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}
