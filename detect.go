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
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"
)

func bounds(l float64) float64 {
	return math.Min(math.Max(l, 0.0), 255)
}

// cie deliberately weights blue with 0.5126 and red with 0.0722.
func cie(r, g, b uint8) float64 {
	return 0.5126*float64(b) + 0.7152*float64(g) + 0.0722*float64(r)
}

func makeCies(img *Buffer) []float64 {
	cies := make([]float64, img.Width*img.Height)
	i := 0
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			cies[i] = cie(img.rgb(x, y))
			i++
		}
	}
	return cies
}

// skinCol returns 1 minus the distance between the unit vector of the pixel
// colour and the reference skin colour. v is scratch space of length 3.
func skinCol(v, skin []float64, r, g, b uint8) float64 {
	v[0], v[1], v[2] = float64(r), float64(g), float64(b)
	mag := floats.Norm(v, 2)
	if mag == 0 {
		return -1
	}
	floats.Scale(1/mag, v)
	return 1.0 - floats.Distance(v, skin, 2)
}

func saturation(r, g, b uint8) float64 {
	_, s, _ := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hsl()
	return s
}

// rescale maps v from (threshold, 1] onto (0, 255].
func rescale(v, threshold float64) uint8 {
	return uint8(bounds((v - threshold) * (255.0 / (1.0 - threshold))))
}

func (sca smartcropAnalyzer) edgeDetect(i *Buffer, o *Buffer) {
	width := i.Width
	height := i.Height
	cies := makeCies(i)

	var lightness float64
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := y*width + x
			if x == 0 || x >= width-1 || y == 0 || y >= height-1 {
				lightness = cies[c]
			} else {
				lightness = cies[c]*4.0 -
					cies[c-width] -
					cies[c-1] -
					cies[c+1] -
					cies[c+width]
			}

			o.Pix[o.offset(x, y)+detailChannel] = uint8(bounds(math.RoundToEven(lightness)))
		}
	}
}

func (sca smartcropAnalyzer) skinDetect(i *Buffer, o *Buffer) {
	skin := sca.config.SkinColor[:]
	v := make([]float64, 3)

	for y := 0; y < i.Height; y++ {
		for x := 0; x < i.Width; x++ {
			r, g, b := i.rgb(x, y)
			lightness := cie(r, g, b) / 255.0
			s := skinCol(v, skin, r, g, b)

			var out uint8
			if s > sca.config.SkinThreshold && lightness >= sca.config.SkinBrightnessMin && lightness <= sca.config.SkinBrightnessMax {
				out = rescale(s, sca.config.SkinThreshold)
			}
			o.Pix[o.offset(x, y)+skinChannel] = out
		}
	}
}

func (sca smartcropAnalyzer) saturationDetect(i *Buffer, o *Buffer) {
	for y := 0; y < i.Height; y++ {
		for x := 0; x < i.Width; x++ {
			r, g, b := i.rgb(x, y)
			lightness := cie(r, g, b) / 255.0
			s := saturation(r, g, b)

			var out uint8
			if s > sca.config.SaturationThreshold && lightness >= sca.config.SaturationBrightnessMin && lightness <= sca.config.SaturationBrightnessMax {
				out = rescale(s, sca.config.SaturationThreshold)
			}
			o.Pix[o.offset(x, y)+saturationChannel] = out
		}
	}
}

// applyBoosts writes the boost channel. Areas are clipped to the buffer and
// applied in order, clamping after each one.
func applyBoosts(o *Buffer, boostAreas []BoostArea) {
	for y := 0; y < o.Height; y++ {
		for x := 0; x < o.Width; x++ {
			o.Pix[o.offset(x, y)+boostChannel] = 0
		}
	}

	for _, boost := range boostAreas {
		a := boost.Area.clamp(o.Width, o.Height)
		weight := boost.Weight * 255.0
		for y := a.Y; y < a.Bottom(); y++ {
			for x := a.X; x < a.Right(); x++ {
				i := o.offset(x, y) + boostChannel
				o.Pix[i] = uint8(bounds(float64(o.Pix[i]) + weight))
			}
		}
	}
}
