package smartcrop

import (
	"image"
	"image/color"
)

var (
	gray = color.RGBA{128, 128, 128, 255}
	red  = color.RGBA{255, 0, 0, 255}
)

func createSolidImage(width, height int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// createBlobImage returns a gray image with a solid red rectangle at blob.
func createBlobImage(width, height int, blob image.Rectangle) *image.RGBA {
	img := createSolidImage(width, height, gray)
	for y := blob.Min.Y; y < blob.Max.Y; y++ {
		for x := blob.Min.X; x < blob.Max.X; x++ {
			img.SetRGBA(x, y, red)
		}
	}
	return img
}

func newTestAnalyzer(c Config) Analyzer {
	return NewAnalyzer(c, nil)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func imageRect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rect(x0, y0, x1, y1)
}
