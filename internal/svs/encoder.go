// Package svs writes rasters as the pyramidal tiled TIFF profile slide
// viewers expect, through libvips.
package svs

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"sync"

	"github.com/davidbyttow/govips/v2/vips"

	"github.com/slidetools/szi2svs/internal/stitch"
)

// EncodeError means libvips could not load the source raster or the
// pyramid could not be written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

var startVips sync.Once

func startup() {
	startVips.Do(func() {
		vips.LoggingSettings(nil, vips.LogLevelError)
		vips.Startup(nil)
	})
}

// profile is the fixed output configuration: a JPEG-compressed pyramid of
// 256x256 internal tiles at quality 85. It matches the structural profile
// the target viewer ecosystem expects and is deliberately not
// configurable.
func profile() *vips.TiffExportParams {
	p := vips.NewTiffExportParams()
	p.Compression = vips.TiffCompressionJpeg
	p.Quality = 85
	p.Tile = true
	p.TileWidth = 256
	p.TileHeight = 256
	p.Pyramid = true
	return p
}

// EncodeCanvas writes the stitched canvas to path as a pyramidal TIFF.
// The canvas goes into libvips as a PNG buffer; it is fully opaque, so
// the pyramid stays 3-band.
func EncodeCanvas(c *stitch.Canvas, path string) error {
	startup()

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.RGBA()); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	img, err := vips.NewImageFromBuffer(buf.Bytes())
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	defer img.Close()

	return export(img, path)
}

// EncodeFile converts a plain single-resolution raster straight to the
// pyramidal profile. There is no tile structure involved; libvips reads
// whatever format the file is in.
func EncodeFile(in, out string) error {
	startup()

	img, err := vips.NewImageFromFile(in)
	if err != nil {
		return &EncodeError{Path: in, Err: err}
	}
	defer img.Close()

	return export(img, out)
}

func export(img *vips.ImageRef, path string) error {
	// JPEG compression inside the TIFF cannot carry an alpha band.
	if img.HasAlpha() {
		if err := img.Flatten(&vips.Color{}); err != nil {
			return &EncodeError{Path: path, Err: err}
		}
	}
	out, _, err := img.ExportTiff(profile())
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
