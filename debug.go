/*
 * Copyright (c) 2014-2017 Christian Muehlhaeuser
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *	Authors:
 *		Christian Muehlhaeuser <muesli@gmail.com>
 *		Michael Wendland <michael@michiwend.com>
 *		Bjørn Erik Pedersen <bjorn.erik.pedersen@gmail.com>
 */

package smartcrop

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DebugInfo carries the intermediate state of a crop for offline inspection.
type DebugInfo struct {
	// Output is the salience map at analysis resolution: skin in R, detail
	// in G, saturation in B and boost in A.
	Output *image.NRGBA
	Config Config
	// Crops holds every scored candidate in input coordinates, in the order
	// they were generated.
	Crops []Crop
	// Prescale is the factor the input was reduced by before analysis.
	Prescale float64
}

// Summary describes the score distribution of all candidates.
type Summary struct {
	Candidates int
	Best       float64
	Mean       float64
	StdDev     float64
}

func (d *DebugInfo) Summary() Summary {
	s := Summary{Candidates: len(d.Crops)}
	if len(d.Crops) == 0 {
		return s
	}

	totals := make([]float64, len(d.Crops))
	for i, c := range d.Crops {
		totals[i] = c.Score.Total
	}
	s.Best = floats.Max(totals)
	if len(totals) < 2 {
		s.Mean = totals[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(totals, nil)
	return s
}

// Visualize renders the salience map opaque, tints every pixel by its
// importance for area and outlines area. Boosted pixels show up blue. area
// is in input coordinates; the image is at analysis resolution.
func (d *DebugInfo) Visualize(area Rectangle) *image.RGBA {
	crop := area
	if d.Prescale > 0 && d.Prescale != 1.0 {
		crop = area.scale(d.Prescale)
	}

	sca := smartcropAnalyzer{config: d.Config}
	b := d.Output.Bounds()
	o := image.NewRGBA(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := d.Output.NRGBAAt(x, y)
			r8 := float64(c.R)
			g8 := float64(c.G)
			b8 := c.B
			if c.A > b8 {
				b8 = c.A
			}

			imp := sca.importance(crop, x, y)

			if imp > 0 {
				g8 += imp * 32
			} else if imp < 0 {
				r8 += imp * -64
			}

			o.SetRGBA(x, y, color.RGBA{uint8(bounds(r8)), uint8(bounds(g8)), b8, 255})
		}
	}

	drawRect(o, color.RGBA{255, 255, 0, 255}, crop.Bounds())
	return o
}
