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

// downSample reduces every factor x factor tile of the analysis buffer to a
// single pixel. Trailing columns and rows that don't fill a tile are dropped.
// Skin and detail blend in the tile maximum so small strong features survive.
func downSample(i *Buffer, factor int) *Buffer {
	width := i.Width / factor
	height := i.Height / factor
	o := newAnalysisBuffer(width, height)

	ifactor2 := 1.0 / float64(factor*factor)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var skin, detail, sat, boost int
			var maxSkin, maxDetail uint8

			for v := 0; v < factor; v++ {
				for u := 0; u < factor; u++ {
					p := i.Pix[i.offset(x*factor+u, y*factor+v):]
					skin += int(p[skinChannel])
					detail += int(p[detailChannel])
					sat += int(p[saturationChannel])
					boost += int(p[boostChannel])
					if p[skinChannel] > maxSkin {
						maxSkin = p[skinChannel]
					}
					if p[detailChannel] > maxDetail {
						maxDetail = p[detailChannel]
					}
				}
			}

			p := o.Pix[o.offset(x, y):]
			p[skinChannel] = uint8(float64(skin)*ifactor2*0.5 + float64(maxSkin)*0.5)
			p[detailChannel] = uint8(float64(detail)*ifactor2*0.7 + float64(maxDetail)*0.3)
			p[saturationChannel] = uint8(float64(sat) * ifactor2)
			p[boostChannel] = uint8(float64(boost) * ifactor2)
		}
	}

	return o
}
