package stitch

import (
	"testing"

	"github.com/slidetools/szi2svs/pkg/dzi"
)

func rgbImage(w, h int, r, g, b byte) *dzi.Image {
	pix := make([]byte, w*h*3)
	for i := 0; i < w*h; i++ {
		pix[i*3] = r
		pix[i*3+1] = g
		pix[i*3+2] = b
	}
	return &dzi.Image{Pix: pix, Width: w, Height: h}
}

func TestNewCanvasIsBlack(t *testing.T) {
	c := NewCanvas(3, 2)
	if len(c.Pix) != 3*2*3 {
		t.Fatalf("got %d bytes, want %d", len(c.Pix), 3*2*3)
	}
	for i, b := range c.Pix {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestPasteExactPlacement(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Paste(rgbImage(2, 2, 9, 8, 7), 4, 6)

	r, g, b := pixel(c, 4, 6)
	if r != 9 || g != 8 || b != 7 {
		t.Errorf("pixel (4,6) = (%d,%d,%d), want (9,8,7)", r, g, b)
	}
	if r, _, _ := pixel(c, 3, 6); r != 0 {
		t.Error("pixel left of the paste target was written")
	}
	if r, _, _ := pixel(c, 4, 5); r != 0 {
		t.Error("pixel above the paste target was written")
	}
}

func TestPasteClipsOutsideCanvas(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Paste(rgbImage(4, 4, 1, 2, 3), 2, 2)

	if r, _, _ := pixel(c, 3, 3); r != 1 {
		t.Error("in-bounds part of the overhanging tile was not pasted")
	}
	if c.Width != 4 || c.Height != 4 || len(c.Pix) != 4*4*3 {
		t.Error("canvas size changed while clipping")
	}
}

func TestPasteFullyOutsideCanvasIsNoop(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Paste(rgbImage(2, 2, 5, 5, 5), 10, 10)

	for i, b := range c.Pix {
		if b != 0 {
			t.Fatalf("byte %d = %d after fully out-of-bounds paste, want 0", i, b)
		}
	}
}

func TestCanvasRGBAIsOpaque(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Pix = []byte{1, 2, 3, 4, 5, 6}

	img := c.RGBA()
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("bounds = %v, want 2x1", img.Bounds())
	}
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("RGBA byte %d = %d, want %d", i, img.Pix[i], b)
		}
	}
}
