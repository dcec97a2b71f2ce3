// Command export writes the test cases and the cells they produce to JSON,
// for use by the test suites of other-language bindings.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/gridline"
	"seehuhn.de/go/gridline/testcases"
)

var (
	outPath string
	verbose bool
)

func init() {
	flag.StringVar(&outPath, "o", "testdata/testcases.json", "output file path")
	flag.BoolVar(&verbose, "v", false, "log progress to stderr")
}

func main() {
	flag.Parse()
	if verbose {
		gridline.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := write(out); err != nil {
		fmt.Fprintln(os.Stderr, "export:", err)
		os.Exit(1)
	}
	gridline.Logger().Info("wrote", slog.String("file", outPath),
		slog.Int("testcases", len(out.TestCases)))
}

func write(v any) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type jsonTestCase struct {
	Name      string     `json:"name"`
	Width     int        `json:"width"`
	Height    int        `json:"height"`
	Op        string     `json:"op"`
	Line      []int32    `json:"line,omitempty"` // x1, y1, x2, y2
	Limit     int32      `json:"limit,omitempty"`
	Dash      []int      `json:"dash,omitempty"`
	DashPhase int        `json:"dash_phase,omitempty"`
	Cells     [][2]int32 `json:"cells"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Cells:  [][2]int32{},
	}

	switch op := tc.Op.(type) {
	case testcases.Line:
		jtc.Op = "line"
		jtc.Line = []int32{op.X1, op.Y1, op.X2, op.Y2}
		jtc.Limit = op.Limit
	case testcases.Hairline:
		jtc.Op = "hairline"
		jtc.Dash = op.Dash
		jtc.DashPhase = op.DashPhase
	}

	for _, p := range gridline.ExampleCells(tc) {
		jtc.Cells = append(jtc.Cells, [2]int32{p.X, p.Y})
	}
	return jtc
}
