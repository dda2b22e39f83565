package stitch

import (
	"image"

	"github.com/slidetools/szi2svs/pkg/dzi"
)

// Canvas is the stitched full-resolution raster: packed RGB, 3 bytes per
// pixel, row-major, zero (black) where no tile was pasted.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
}

// NewCanvas allocates a black canvas of exactly width x height.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Pix:    make([]byte, width*height*3),
		Width:  width,
		Height: height,
	}
}

// Paste copies img into the canvas with its top-left corner at
// (xoff, yoff). Pixels falling outside the canvas are clipped silently;
// the canvas never grows.
func (c *Canvas) Paste(img *dzi.Image, xoff, yoff int) {
	for y := 0; y < img.Height; y++ {
		yd := y + yoff
		if yd < 0 || yd >= c.Height {
			continue
		}
		for x := 0; x < img.Width; x++ {
			xd := x + xoff
			if xd < 0 || xd >= c.Width {
				continue
			}
			srcIdx := (y*img.Width + x) * 3
			dstIdx := (yd*c.Width + xd) * 3
			c.Pix[dstIdx] = img.Pix[srcIdx]
			c.Pix[dstIdx+1] = img.Pix[srcIdx+1]
			c.Pix[dstIdx+2] = img.Pix[srcIdx+2]
		}
	}
}

// RGBA renders the canvas as a fully opaque stdlib image, the shape the
// PNG encoder wants on the way into libvips.
func (c *Canvas) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i := 0; i < c.Width*c.Height; i++ {
		img.Pix[i*4] = c.Pix[i*3]
		img.Pix[i*4+1] = c.Pix[i*3+1]
		img.Pix[i*4+2] = c.Pix[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}
