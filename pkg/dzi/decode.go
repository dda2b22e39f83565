package dzi

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/tiff"
)

// Image is a decoded tile as a packed RGB buffer, 3 bytes per pixel,
// row-major.
type Image struct {
	Pix    []byte
	Width  int
	Height int
}

var (
	pngMagic    = []byte{0x89, 0x50, 0x4E, 0x47}
	jpegMagic   = []byte{0xFF, 0xD8}
	tiffMagicLE = []byte{0x49, 0x49, 0x2A, 0x00}
	tiffMagicBE = []byte{0x4D, 0x4D, 0x00, 0x2A}
)

// Decode detects the tile format from its magic bytes and decodes it to
// RGB. Grayscale expands to three equal channels; alpha is dropped.
func Decode(data []byte) (*Image, error) {
	var (
		img image.Image
		err error
	)
	switch {
	case len(data) >= 4 && bytes.Equal(data[:4], pngMagic):
		img, err = png.Decode(bytes.NewReader(data))
	case len(data) >= 2 && bytes.Equal(data[:2], jpegMagic):
		img, err = jpeg.Decode(bytes.NewReader(data))
	case len(data) >= 4 && (bytes.Equal(data[:4], tiffMagicLE) || bytes.Equal(data[:4], tiffMagicBE)):
		img, err = tiff.Decode(bytes.NewReader(data))
	default:
		return nil, &FormatError{Msg: "unrecognized image format"}
	}
	if err != nil {
		return nil, &FormatError{Msg: fmt.Sprintf("decode: %v", err)}
	}
	return fromImage(img), nil
}

func fromImage(img image.Image) *Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf := make([]byte, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			idx := (y*width + x) * 3
			buf[idx] = byte(r >> 8)
			buf[idx+1] = byte(g >> 8)
			buf[idx+2] = byte(b >> 8)
		}
	}
	return &Image{Pix: buf, Width: width, Height: height}
}
