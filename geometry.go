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
	"image"
	"math"
)

// Rectangle is an axis aligned integer rectangle covering the half-open
// region [X, X+Width) x [Y, Y+Height).
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect returns the rectangle with origin (x, y) and the given size.
func Rect(x, y, width, height int) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

// Right returns the first column past the rectangle.
func (r Rectangle) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rectangle.
func (r Rectangle) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rectangle covers no pixels.
func (r Rectangle) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether o lies completely inside r.
func (r Rectangle) Contains(o Rectangle) bool {
	return r.X <= o.X && o.Right() <= r.Right() &&
		r.Y <= o.Y && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share at least one pixel.
func (r Rectangle) Intersects(o Rectangle) bool {
	return o.X < r.Right() && r.X < o.Right() &&
		o.Y < r.Bottom() && r.Y < o.Bottom()
}

// Bounds converts r to an image.Rectangle.
func (r Rectangle) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func (r Rectangle) String() string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

// scale multiplies every component by f, rounding each independently.
func (r Rectangle) scale(f float64) Rectangle {
	return Rectangle{
		X:      round(float64(r.X) * f),
		Y:      round(float64(r.Y) * f),
		Width:  round(float64(r.Width) * f),
		Height: round(float64(r.Height) * f),
	}
}

// unscale divides every component by f, rounding each independently.
func (r Rectangle) unscale(f float64) Rectangle {
	return Rectangle{
		X:      round(float64(r.X) / f),
		Y:      round(float64(r.Y) / f),
		Width:  round(float64(r.Width) / f),
		Height: round(float64(r.Height) / f),
	}
}

// clamp returns the part of r that lies inside a width x height image.
func (r Rectangle) clamp(width, height int) Rectangle {
	x0, y0 := clampInt(r.X, 0, width), clampInt(r.Y, 0, height)
	x1, y1 := clampInt(r.Right(), x0, width), clampInt(r.Bottom(), y0, height)
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// BoostArea marks a region the caller wants in the crop. Weight is usually
// between 0 and 1 but is not clamped.
type BoostArea struct {
	Area   Rectangle `json:"area"`
	Weight float64   `json:"weight"`
}

func round(x float64) int {
	return int(math.RoundToEven(x))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
