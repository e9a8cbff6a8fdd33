// seehuhn.de/go/scan - scan conversion of lines, curves and conics
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

// Command export renders all test cases to reference PNG images and
// writes a JSON description of the scenes.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/scan"
	"seehuhn.de/go/scan/pixel"
	"seehuhn.de/go/scan/testcases"
)

var (
	outDir  = flag.String("o", "testdata/reference", "output directory for reference images")
	jsonOut = flag.String("json", "testdata/testcases.json", "output file for scene descriptions (empty to skip)")
	preview = flag.Int("preview", 0, "if >1, also write previews enlarged by this factor to debug/")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}
	if *preview > 1 {
		if err := os.MkdirAll("debug", 0755); err != nil {
			log.Fatal(err)
		}
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			img := pixel.Filled(tc.Width, tc.Height, pixel.Black[pixel.Gray[uint8]]())
			scan.RenderExample(tc, img)

			fname := filepath.Join(*outDir, name+".png")
			if err := writePNG(fname, img); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}
			if *preview > 1 {
				fname := filepath.Join("debug", name+".png")
				if err := writePNG(fname, enlarge(img, *preview)); err != nil {
					log.Fatal(fmt.Errorf("%s: %w", name, err))
				}
			}

			out.TestCases = append(out.TestCases, toJSON(name, tc))
		}
	}

	if *jsonOut == "" {
		return
	}
	f, err := os.Create(*jsonOut)
	if err != nil {
		log.Fatal(err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}
}

func writePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// enlarge scales img up by an integer factor, so that single pixels stay
// visible as squares.
func enlarge(img image.Image, factor int) image.Image {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

type jsonTestCase struct {
	Name   string   `json:"name"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Ops    []jsonOp `json:"ops"`
}

type jsonOp struct {
	Op     string        `json:"op"`
	Pts    [][]float64   `json:"pts,omitempty"`
	Radii  []int         `json:"radii,omitempty"`
	Filled bool          `json:"filled,omitempty"`
	Path   []jsonSegment `json:"path,omitempty"`
	CTM    []float64     `json:"ctm,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
	}

	for _, op := range tc.Ops {
		var jop jsonOp
		switch op := op.(type) {
		case testcases.Line:
			jop.Op = "line"
			jop.Pts = [][]float64{{op.Start.X, op.Start.Y}, {op.End.X, op.End.Y}}
		case testcases.AntialiasedLine:
			jop.Op = "aaline"
			jop.Pts = [][]float64{
				{float64(op.Start.X), float64(op.Start.Y)},
				{float64(op.End.X), float64(op.End.Y)},
			}
		case testcases.Ellipse:
			jop.Op = "ellipse"
			jop.Pts = [][]float64{{float64(op.Center.X), float64(op.Center.Y)}}
			jop.Radii = []int{op.WidthRadius, op.HeightRadius}
			jop.Filled = op.Filled
		case testcases.Circle:
			jop.Op = "circle"
			jop.Pts = [][]float64{{float64(op.Center.X), float64(op.Center.Y)}}
			jop.Radii = []int{op.Radius}
			jop.Filled = op.Filled
		case testcases.Bezier:
			jop.Op = "bezier"
			jop.Pts = [][]float64{
				{op.Start.X, op.Start.Y},
				{op.ControlA.X, op.ControlA.Y},
				{op.ControlB.X, op.ControlB.Y},
				{op.End.X, op.End.Y},
			}
		case testcases.Rect:
			jop.Op = "rect"
			r := op.Rect
			jop.Pts = [][]float64{
				{float64(r.Left()), float64(r.Top())},
				{float64(r.Right()), float64(r.Bottom())},
			}
			jop.Filled = op.Filled
		case testcases.Cross:
			jop.Op = "cross"
			jop.Pts = [][]float64{{float64(op.Center.X), float64(op.Center.Y)}}
		case testcases.Stroke:
			jop.Op = "stroke"
			jop.Path = pathToJSON(op.Path)
			if op.CTM != (matrix.Matrix{}) {
				jop.CTM = op.CTM[:]
			}
		}
		jtc.Ops = append(jtc.Ops, jop)
	}
	return jtc
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
