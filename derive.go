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
	"fmt"
	"math"
)

// prescaleReference is the size the shorter prescale side is reduced to.
const prescaleReference = 256.0

// dimension is a crop size that is either unset or holds a value.
type dimension struct {
	value int
	set   bool
}

func sized(v int) dimension {
	return dimension{value: v, set: true}
}

func (d dimension) or(fallback int) int {
	if d.set {
		return d.value
	}
	return fallback
}

// params holds everything derived from Config and the image for one crop.
type params struct {
	cropWidth  dimension
	cropHeight dimension
	minScale   float64
	prescale   float64
	boosts     []BoostArea
}

// prepare derives the crop parameters and, if enabled, prescales the buffer.
// The returned buffer is either buf itself or a resampled copy. Caller owned
// boost areas are copied, never modified.
func (sca smartcropAnalyzer) prepare(buf *Buffer, boostAreas []BoostArea) (*Buffer, params, error) {
	p := params{
		minScale: sca.config.MinScale,
		prescale: 1.0,
		boosts:   append([]BoostArea(nil), boostAreas...),
	}

	imgW, imgH := float64(buf.Width), float64(buf.Height)
	width, height := float64(sca.config.Width), float64(sca.config.Height)
	if sca.config.Aspect > 0 {
		width, height = sca.config.Aspect, 1
	}

	if width > 0 && height > 0 {
		scale := math.Min(imgW/width, imgH/height)
		p.cropWidth = sized(round(width * scale))
		p.cropHeight = sized(round(height * scale))
		// don't pick crops that need upscaling
		p.minScale = math.Min(sca.config.MaxScale, math.Max(1.0/scale, sca.config.MinScale))
		sca.logger.Log.Printf("scale: %f, cropw: %d, croph: %d, minscale: %f\n", scale, p.cropWidth.value, p.cropHeight.value, p.minScale)
	}

	if !sca.config.Prescale {
		return buf, p, nil
	}

	f := math.Min(math.Max(prescaleReference/imgW, prescaleReference/imgH), 1.0)
	if f >= 1.0 {
		return buf, p, nil
	}

	w, h := round(imgW*f), round(imgH*f)
	small := sca.Resize(buf.Image(), uint(w), uint(h))
	if small == nil || small.Bounds().Dx() != w || small.Bounds().Dy() != h {
		return nil, p, fmt.Errorf("%w: resizer did not produce a %dx%d image", ErrInvalidImage, w, h)
	}
	sca.logger.Log.Printf("prescale: %f, %dx%d -> %dx%d\n", f, buf.Width, buf.Height, w, h)

	p.prescale = f
	if p.cropWidth.set {
		p.cropWidth = sized(round(float64(p.cropWidth.value) * f))
		p.cropHeight = sized(round(float64(p.cropHeight.value) * f))
	}
	for i := range p.boosts {
		p.boosts[i].Area = p.boosts[i].Area.scale(f)
	}

	return FromImage(small), p, nil
}
