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
	"image/color"

	"golang.org/x/image/draw"
)

// ChannelOrder declares the byte order of a 4 byte pixel.
type ChannelOrder int

const (
	// RGBA stores red, green, blue, alpha.
	RGBA ChannelOrder = iota
	// BGRA stores blue, green, red, alpha.
	BGRA
)

func (o ChannelOrder) String() string {
	switch o {
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	}
	return fmt.Sprintf("ChannelOrder(%d)", int(o))
}

// Analysis buffers always use RGBA order with these channel assignments.
const (
	skinChannel       = 0
	detailChannel     = 1
	saturationChannel = 2
	boostChannel      = 3
)

// Buffer is a row-major pixel buffer with 4 bytes per pixel. Pixel (x, y)
// starts at Pix[y*Stride + x*4].
type Buffer struct {
	Pix    []uint8
	Stride int
	Width  int
	Height int
	Order  ChannelOrder
}

// NewBuffer wraps pix without copying it.
func NewBuffer(pix []uint8, width, height, stride int, order ChannelOrder) (*Buffer, error) {
	b := &Buffer{Pix: pix, Stride: stride, Width: width, Height: height, Order: order}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func newAnalysisBuffer(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]uint8, width*height*4),
		Stride: width * 4,
		Width:  width,
		Height: height,
		Order:  RGBA,
	}
}

func (b *Buffer) validate() error {
	switch {
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: empty %dx%d buffer", ErrInvalidImage, b.Width, b.Height)
	case b.Order != RGBA && b.Order != BGRA:
		return fmt.Errorf("%w: unsupported channel order %v", ErrInvalidImage, b.Order)
	case b.Stride < b.Width*4:
		return fmt.Errorf("%w: stride %d is shorter than a %d pixel row", ErrInvalidImage, b.Stride, b.Width)
	case len(b.Pix) < (b.Height-1)*b.Stride+b.Width*4:
		return fmt.Errorf("%w: %d bytes cannot hold %dx%d pixels with stride %d", ErrInvalidImage, len(b.Pix), b.Width, b.Height, b.Stride)
	}
	return nil
}

func (b *Buffer) offset(x, y int) int {
	return y*b.Stride + x*4
}

func (b *Buffer) red(i int) uint8 {
	if b.Order == BGRA {
		return b.Pix[i+2]
	}
	return b.Pix[i]
}

func (b *Buffer) green(i int) uint8 {
	return b.Pix[i+1]
}

func (b *Buffer) blue(i int) uint8 {
	if b.Order == BGRA {
		return b.Pix[i]
	}
	return b.Pix[i+2]
}

func (b *Buffer) alpha(i int) uint8 {
	return b.Pix[i+3]
}

// rgb returns the colour channels of pixel (x, y) regardless of order.
func (b *Buffer) rgb(x, y int) (uint8, uint8, uint8) {
	i := b.offset(x, y)
	return b.red(i), b.green(i), b.blue(i)
}

// Image exposes the buffer as an image.Image. RGBA buffers share their
// pixels with the returned *image.RGBA.
func (b *Buffer) Image() image.Image {
	if b.Order == RGBA {
		return &image.RGBA{Pix: b.Pix, Stride: b.Stride, Rect: image.Rect(0, 0, b.Width, b.Height)}
	}
	return bgraImage{b}
}

type bgraImage struct {
	b *Buffer
}

func (m bgraImage) ColorModel() color.Model { return color.RGBAModel }

func (m bgraImage) Bounds() image.Rectangle { return image.Rect(0, 0, m.b.Width, m.b.Height) }

func (m bgraImage) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.RGBA{}
	}
	i := m.b.offset(x, y)
	return color.RGBA{m.b.red(i), m.b.green(i), m.b.blue(i), m.b.alpha(i)}
}

// FromImage adapts img to a Buffer. *image.RGBA is wrapped without copying,
// anything else is converted. Coordinates are relative to img.Bounds().Min.
func FromImage(img image.Image) *Buffer {
	rgba := toRGBA(img)
	return &Buffer{
		Pix:    rgba.Pix,
		Stride: rgba.Stride,
		Width:  rgba.Rect.Dx(),
		Height: rgba.Rect.Dy(),
		Order:  RGBA,
	}
}

// toRGBA converts an image.Image to an image.RGBA
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Copy(out, image.Point{}, img, b, draw.Src, nil)
	return out
}

// nrgba hands the analysis pixels over to an *image.NRGBA. The buffer must
// not be used afterwards.
func (b *Buffer) nrgba() *image.NRGBA {
	img := &image.NRGBA{Pix: b.Pix, Stride: b.Stride, Rect: image.Rect(0, 0, b.Width, b.Height)}
	b.Pix = nil
	return img
}
