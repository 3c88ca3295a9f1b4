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
)

// hLine draws a horizontal line from x1 to x2 inclusive
func hLine(img *image.RGBA, col color.RGBA, y, x1, x2 int) {
	for ; x1 <= x2; x1++ {
		img.SetRGBA(x1, y, col)
	}
}

// vLine draws a vertical line from y1 to y2 inclusive
func vLine(img *image.RGBA, col color.RGBA, x, y1, y2 int) {
	for ; y1 <= y2; y1++ {
		img.SetRGBA(x, y1, col)
	}
}

// drawRect outlines the pixels just inside r. Parts outside img are skipped.
func drawRect(img *image.RGBA, col color.RGBA, r image.Rectangle) {
	if r.Empty() {
		return
	}
	right, bottom := r.Max.X-1, r.Max.Y-1
	hLine(img, col, r.Min.Y, r.Min.X, right)
	hLine(img, col, bottom, r.Min.X, right)
	vLine(img, col, r.Min.X, r.Min.Y, bottom)
	vLine(img, col, right, r.Min.Y, bottom)
}
