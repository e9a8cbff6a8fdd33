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

// Command genpdf writes every test case as a vector PDF, for visual
// comparison of the rasterized shapes with the ideal geometry.
// Optionally, the PDFs are rendered to PNG using Ghostscript.
package main

import (
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/scan/testcases"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var (
	outDir    = flag.String("o", "testdata/pdf", "output directory")
	renderPNG = flag.Bool("png", false, "also render the PDFs to PNG using Ghostscript")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")

			if err := generatePDF(tc, pdfPath); err != nil {
				log.Fatal(fmt.Errorf("%s: %w", name, err))
			}

			if *renderPNG {
				pngPath := filepath.Join(*outDir, name+".png")
				if err := ghostscript(pdfPath, pngPath); err != nil {
					log.Fatal(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	page.SetLineWidth(1)
	page.SetLineJoin(graphics.LineJoinMiter)

	// The pixel with integer coordinates (x, y) covers the unit square
	// with lower left corner (x, y), so shape outlines are drawn through
	// the pixel centres.
	const c = 0.5

	for _, op := range tc.Ops {
		switch op := op.(type) {
		case testcases.Line:
			page.SetLineCap(graphics.LineCapSquare)
			page.MoveTo(op.Start.X+c, op.Start.Y+c)
			page.LineTo(op.End.X+c, op.End.Y+c)
			page.Stroke()

		case testcases.AntialiasedLine:
			page.SetLineCap(graphics.LineCapRound)
			page.MoveTo(float64(op.Start.X)+c, float64(op.Start.Y)+c)
			page.LineTo(float64(op.End.X)+c, float64(op.End.Y)+c)
			page.Stroke()

		case testcases.Ellipse:
			cx := float64(op.Center.X) + c
			cy := float64(op.Center.Y) + c
			ellipse(page, cx, cy, float64(op.WidthRadius), float64(op.HeightRadius), op.Filled)

		case testcases.Circle:
			cx := float64(op.Center.X) + c
			cy := float64(op.Center.Y) + c
			r := float64(op.Radius)
			ellipse(page, cx, cy, r, r, op.Filled)

		case testcases.Bezier:
			page.SetLineCap(graphics.LineCapSquare)
			page.MoveTo(op.Start.X+c, op.Start.Y+c)
			page.CurveTo(
				op.ControlA.X+c, op.ControlA.Y+c,
				op.ControlB.X+c, op.ControlB.Y+c,
				op.End.X+c, op.End.Y+c)
			page.Stroke()

		case testcases.Rect:
			r := op.Rect
			x := float64(r.Left())
			y := float64(r.Top())
			w := float64(r.Width())
			h := float64(r.Height())
			if op.Filled {
				page.Rectangle(x, y, w, h)
				page.Fill()
			} else {
				page.Rectangle(x+c, y+c, w-1, h-1)
				page.Stroke()
			}

		case testcases.Cross:
			x := float64(op.Center.X)
			y := float64(op.Center.Y)
			page.Rectangle(x-1, y, 3, 1)
			page.Rectangle(x, y-1, 1, 3)
			page.Fill()

		case testcases.Stroke:
			ctm := op.CTM
			if ctm == (matrix.Matrix{}) {
				ctm = matrix.Identity
			}
			// Transform the points instead of the page, so that the
			// line width stays at one pixel.
			tr := func(v vec.Vec2) (float64, float64) {
				return ctm[0]*v.X + ctm[2]*v.Y + ctm[4] + c,
					ctm[1]*v.X + ctm[3]*v.Y + ctm[5] + c
			}
			page.SetLineCap(graphics.LineCapSquare)
			for cmd, pts := range op.Path.ToCubic() {
				switch cmd {
				case path.CmdMoveTo:
					page.MoveTo(tr(pts[0]))
				case path.CmdLineTo:
					page.LineTo(tr(pts[0]))
				case path.CmdCubeTo:
					x1, y1 := tr(pts[0])
					x2, y2 := tr(pts[1])
					x3, y3 := tr(pts[2])
					page.CurveTo(x1, y1, x2, y2, x3, y3)
				case path.CmdClose:
					page.ClosePath()
				}
			}
			page.Stroke()
		}
	}

	return page.Close()
}

// ellipse adds an axis-aligned ellipse to the page and paints it.
// Filled ellipses are grown by half a pixel, so that they cover the
// pixels on the boundary.
func ellipse(page *document.Page, cx, cy, rx, ry float64, filled bool) {
	if filled {
		rx += 0.5
		ry += 0.5
	}
	kx := rx * kappa
	ky := ry * kappa

	page.MoveTo(cx+rx, cy)
	page.CurveTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
	page.CurveTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
	page.CurveTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
	page.CurveTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	page.ClosePath()
	if filled {
		page.Fill()
	} else {
		page.Stroke()
	}
}

func ghostscript(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
