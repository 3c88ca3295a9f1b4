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

// Package resizer adapts third party resampling libraries to
// options.Resizer.
package resizer

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/third-light/smartcrop/v2/options"
)

var backends = map[string]func() options.Resizer{
	"nfnt":    NewNfnt,
	"imaging": NewImaging,
	"gift":    NewGift,
	"bild":    NewBild,
	"draw":    NewDraw,
}

// Names lists the registered backends in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the backend registered under name.
func ByName(name string) (options.Resizer, error) {
	newResizer, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown resizer %q, want one of %v", name, Names())
	}
	return newResizer(), nil
}

// targetSize fills in a zero width or height from the aspect ratio of b.
func targetSize(b image.Rectangle, width, height uint) (int, int) {
	w, h := float64(width), float64(height)
	switch {
	case width == 0 && height == 0:
		return b.Dx(), b.Dy()
	case width == 0:
		w = math.Max(1, math.Round(h*float64(b.Dx())/float64(b.Dy())))
	case height == 0:
		h = math.Max(1, math.Round(w*float64(b.Dy())/float64(b.Dx())))
	}
	return int(w), int(h)
}
