// Package convert wires the pipeline stages behind each CLI conversion
// path. Every stage failure is fatal for the run; no partial output is
// written because the encoder runs last.
package convert

import (
	"fmt"
	"io"
	"sort"

	"github.com/slidetools/szi2svs/internal/stitch"
	"github.com/slidetools/szi2svs/internal/svs"
	"github.com/slidetools/szi2svs/internal/szi"
	"github.com/slidetools/szi2svs/pkg/dzi"
)

// SZIToSVS runs the full pipeline: load the archive into memory, locate
// the slide substructure, stitch the deepest zoom level, encode the
// pyramid.
func SZIToSVS(in, out string, progress io.Writer) error {
	if progress == nil {
		progress = io.Discard
	}

	archive, err := szi.ReadArchive(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "==Archive: %s (%d entries)\n", in, archive.Len())

	layout, err := szi.Locate(archive)
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "==Descriptor: %s\n", layout.Descriptor)
	fmt.Fprintf(progress, "==Tile Root: %s\n", layout.TileRoot)

	canvas, err := stitch.NewStitcher(progress).Stitch(layout)
	if err != nil {
		return err
	}

	if err := svs.EncodeCanvas(canvas, out); err != nil {
		return err
	}
	fmt.Fprintf(progress, "==Output: %s\n", out)
	return nil
}

// ImageToSVS converts a plain raster with no locator or stitcher stage.
func ImageToSVS(in, out string, progress io.Writer) error {
	if progress == nil {
		progress = io.Discard
	}

	if err := svs.EncodeFile(in, out); err != nil {
		return err
	}
	fmt.Fprintf(progress, "==Output: %s\n", out)
	return nil
}

// Inspect reports what a conversion of the archive would work with,
// without decoding tiles or writing anything.
func Inspect(in string, w io.Writer) error {
	archive, err := szi.ReadArchive(in)
	if err != nil {
		return err
	}
	layout, err := szi.Locate(archive)
	if err != nil {
		return err
	}
	raw, _ := layout.Files.Get(layout.Descriptor)
	desc, err := dzi.ParseDescriptor(raw)
	if err != nil {
		return fmt.Errorf("descriptor %s: %w", layout.Descriptor, err)
	}

	counts := make(map[int]int)
	for _, p := range layout.Files.Paths() {
		level, ok := dzi.ParseLevel(layout.TileRoot, p)
		if !ok {
			continue
		}
		if _, isTile := dzi.ParseTileName(p); isTile {
			counts[level]++
		}
	}
	if len(counts) == 0 {
		return &szi.LayoutError{Msg: fmt.Sprintf("no zoom level directories under %s", layout.TileRoot)}
	}
	levels := make([]int, 0, len(counts))
	for level := range counts {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	fmt.Fprintf(w, "Descriptor: %s\n", layout.Descriptor)
	fmt.Fprintf(w, "Dimensions: %dx%d\n", desc.Width, desc.Height)
	fmt.Fprintf(w, "Tile Root:  %s\n", layout.TileRoot)
	fmt.Fprintf(w, "Levels:\n")
	for _, level := range levels {
		fmt.Fprintf(w, "  %d: %d tiles\n", level, counts[level])
	}
	fmt.Fprintf(w, "Full Resolution Level: %d\n", levels[len(levels)-1])
	return nil
}
