// Package stitch reconstructs the full-resolution slide raster from the
// deepest zoom level of a located SZI tile tree.
package stitch

import (
	"fmt"
	"io"
	"strings"

	"github.com/slidetools/szi2svs/internal/szi"
	"github.com/slidetools/szi2svs/pkg/dzi"
)

// Stitcher handles the main stitching logic.
type Stitcher struct {
	progress io.Writer
}

// NewStitcher creates a new stitcher. Progress lines go to progress; pass
// nil to discard them.
func NewStitcher(progress io.Writer) *Stitcher {
	if progress == nil {
		progress = io.Discard
	}
	return &Stitcher{progress: progress}
}

// Stitch parses the descriptor, selects the deepest zoom level present and
// pastes every tile found there into a canvas of exactly the declared
// dimensions. Grid gaps stay black; tiles reaching past the canvas edge
// are clipped. The canvas is the caller's to hand to the encoder.
func (s *Stitcher) Stitch(layout *szi.Layout) (*Canvas, error) {
	raw, ok := layout.Files.Get(layout.Descriptor)
	if !ok {
		return nil, &szi.LayoutError{Msg: fmt.Sprintf("descriptor %s missing from archive", layout.Descriptor)}
	}
	desc, err := dzi.ParseDescriptor(raw)
	if err != nil {
		return nil, fmt.Errorf("descriptor %s: %w", layout.Descriptor, err)
	}
	fmt.Fprintf(s.progress, "==Image Size: %dx%d\n", desc.Width, desc.Height)

	level, err := fullResLevel(layout)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(s.progress, "==Full Resolution Level: %d\n", level)

	levelRoot := fmt.Sprintf("%s%d/", layout.TileRoot, level)
	tiles := make(map[dzi.TileCoord]string)
	var sample string
	entries := 0
	for _, p := range layout.Files.Paths() {
		if !strings.HasPrefix(p, levelRoot) {
			continue
		}
		entries++
		coord, ok := dzi.ParseTileName(p)
		if !ok {
			// Non-tile metadata files may coexist in the level directory.
			continue
		}
		if sample == "" {
			sample = p
		}
		tiles[coord] = p
	}
	if entries == 0 {
		return nil, &szi.LayoutError{Msg: fmt.Sprintf("no entries under %s", levelRoot)}
	}
	if len(tiles) == 0 {
		return nil, &szi.LayoutError{Msg: fmt.Sprintf("no tiles under %s", levelRoot)}
	}

	// One tile fixes the grid pitch for the whole level.
	sampleData, _ := layout.Files.Get(sample)
	sampleImg, err := dzi.Decode(sampleData)
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", sample, err)
	}
	tileW, tileH := sampleImg.Width, sampleImg.Height
	fmt.Fprintf(s.progress, "==Tile Size: %dx%d\n", tileW, tileH)

	cols := (desc.Width + tileW - 1) / tileW
	rows := (desc.Height + tileH - 1) / tileH
	fmt.Fprintf(s.progress, "==Grid: %dx%d\n", cols, rows)

	maxCol, maxRow := 0, 0
	for coord := range tiles {
		if coord.Col > maxCol {
			maxCol = coord.Col
		}
		if coord.Row > maxRow {
			maxRow = coord.Row
		}
	}

	canvas := NewCanvas(desc.Width, desc.Height)

	placed := 0
	for coord, p := range tiles {
		data, _ := layout.Files.Get(p)
		img, err := dzi.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", p, err)
		}
		if err := checkTileSize(p, coord, img, tileW, tileH, maxCol, maxRow); err != nil {
			return nil, err
		}
		canvas.Paste(img, coord.Col*tileW, coord.Row*tileH)
		placed++
		fmt.Fprintf(s.progress, "%d/%d: %s\n", placed, len(tiles), p)
	}

	return canvas, nil
}

// fullResLevel finds the maximum integer level directory under the tile
// root. Higher numbers mean higher resolution in Deep Zoom trees.
func fullResLevel(layout *szi.Layout) (int, error) {
	best := -1
	for _, p := range layout.Files.Paths() {
		if level, ok := dzi.ParseLevel(layout.TileRoot, p); ok && level > best {
			best = level
		}
	}
	if best < 0 {
		return 0, &szi.LayoutError{Msg: fmt.Sprintf("no zoom level directories under %s", layout.TileRoot)}
	}
	return best, nil
}

// checkTileSize rejects tile sets that do not share the sample's grid
// pitch. Tiles in the last column or row may be smaller (Deep Zoom emits
// partial edge tiles); anything else would be silently misplaced.
func checkTileSize(p string, coord dzi.TileCoord, img *dzi.Image, tileW, tileH, maxCol, maxRow int) error {
	if img.Width > tileW || img.Height > tileH {
		return &dzi.FormatError{Msg: fmt.Sprintf("tile %s is %dx%d, larger than the %dx%d grid pitch",
			p, img.Width, img.Height, tileW, tileH)}
	}
	if img.Width < tileW && coord.Col != maxCol {
		return &dzi.FormatError{Msg: fmt.Sprintf("tile %s is %d wide in a %d-pitch interior column",
			p, img.Width, tileW)}
	}
	if img.Height < tileH && coord.Row != maxRow {
		return &dzi.FormatError{Msg: fmt.Sprintf("tile %s is %d tall in a %d-pitch interior row",
			p, img.Height, tileH)}
	}
	return nil
}
