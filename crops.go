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

import "math"

// crops enumerates candidates from the largest scale down, then by row,
// then by column. Scoring relies on this order for tie-breaks. Scales that
// round a side down to zero produce no candidates.
func (sca smartcropAnalyzer) crops(width, height int, p params) []Crop {
	res := []Crop{}

	minDimension := int(math.Min(float64(width), float64(height)))
	cropW := float64(p.cropWidth.or(minDimension))
	cropH := float64(p.cropHeight.or(minDimension))

	for scale := sca.config.MaxScale; scale >= p.minScale; scale -= sca.config.ScaleStep {
		w, h := round(cropW*scale), round(cropH*scale)
		if w <= 0 || h <= 0 {
			continue
		}
		for y := 0; float64(y)+cropH*scale <= float64(height); y += sca.config.Step {
			for x := 0; float64(x)+cropW*scale <= float64(width); x += sca.config.Step {
				res = append(res, Crop{Area: Rect(x, y, w, h)})
			}
		}
	}

	return res
}
