// Package dzi parses the Deep Zoom descriptor and tile naming scheme and
// decodes tile images into raw RGB buffers.
package dzi

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
)

// FormatError means a descriptor or tile was present but malformed.
type FormatError struct {
	Msg string
}

func (e *FormatError) Error() string { return "dzi format: " + e.Msg }

// Descriptor carries the full-resolution pixel dimensions of the slide.
type Descriptor struct {
	Width  int
	Height int
}

var dimensionsRe = regexp.MustCompile(`Width="(\d+)"\s+Height="(\d+)"`)

// ParseDescriptor extracts the Width/Height attribute pair from the
// descriptor text. The pair may sit anywhere in the text; both values
// must be positive.
func ParseDescriptor(text []byte) (Descriptor, error) {
	m := dimensionsRe.FindSubmatch(text)
	if m == nil {
		return Descriptor{}, &FormatError{Msg: `descriptor has no Width="..." Height="..." pair`}
	}
	w, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return Descriptor{}, &FormatError{Msg: fmt.Sprintf("width %q out of range", m[1])}
	}
	h, err := strconv.Atoi(string(m[2]))
	if err != nil {
		return Descriptor{}, &FormatError{Msg: fmt.Sprintf("height %q out of range", m[2])}
	}
	if w <= 0 || h <= 0 {
		return Descriptor{}, &FormatError{Msg: fmt.Sprintf("dimensions %dx%d not positive", w, h)}
	}
	return Descriptor{Width: w, Height: h}, nil
}

// TileCoord locates a tile on the level grid.
type TileCoord struct {
	Col int
	Row int
}

// ParseTileName reads the <col>_<row>.<ext> suffix of a tile filename:
// the two integers preceding the extension. Names without that suffix are
// not tiles and report false; callers skip them.
func ParseTileName(name string) (TileCoord, bool) {
	base := path.Base(name)
	ext := path.Ext(base)
	if ext == "" || ext == base {
		return TileCoord{}, false
	}
	stem := strings.TrimSuffix(base, ext)

	sep := strings.LastIndexByte(stem, '_')
	if sep < 0 {
		return TileCoord{}, false
	}
	row, ok := parseDigits(stem[sep+1:])
	if !ok {
		return TileCoord{}, false
	}
	rest := stem[:sep]
	col, ok := parseDigits(rest[strings.LastIndexByte(rest, '_')+1:])
	if !ok {
		return TileCoord{}, false
	}
	return TileCoord{Col: col, Row: row}, true
}

// ParseLevel reports the zoom level of an entry laid out as
// <root><level>/<rest>.
func ParseLevel(root, p string) (int, bool) {
	if !strings.HasPrefix(p, root) {
		return 0, false
	}
	rest := p[len(root):]
	slash := strings.IndexByte(rest, '/')
	if slash <= 0 || slash == len(rest)-1 {
		return 0, false
	}
	return parseDigits(rest[:slash])
}

// parseDigits parses a non-empty all-digit string. Unlike strconv.Atoi it
// rejects signs, so negative coordinates never sneak in.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
