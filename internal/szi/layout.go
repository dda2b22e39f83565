package szi

import (
	"fmt"
	"strings"
)

const (
	// ScanRoot is the top-level folder every SZI archive must carry.
	ScanRoot = "scan/"

	// tileMarker ends the name of the Deep Zoom tile directory.
	tileMarker = "_files/"

	descriptorExt = ".dzi"
)

// LayoutError means the archive is readable but the substructure an SZI
// slide must have is missing or ambiguous.
type LayoutError struct {
	Msg string
}

func (e *LayoutError) Error() string { return "szi layout: " + e.Msg }

// Layout points at the pieces of an SZI archive the stitcher needs.
type Layout struct {
	TileRoot   string
	Descriptor string
	Files      *Archive
}

// Locate filters the archive to the scan root and finds the descriptor
// file and the tile directory. Exactly one descriptor must exist; two
// would make the choice depend on archive enumeration order.
func Locate(a *Archive) (*Layout, error) {
	var scan []Entry
	for _, p := range a.Paths() {
		if strings.HasPrefix(p, ScanRoot) {
			b, _ := a.Get(p)
			scan = append(scan, Entry{Path: p, Data: b})
		}
	}
	if len(scan) == 0 {
		return nil, &LayoutError{Msg: fmt.Sprintf("no entries under %q", ScanRoot)}
	}
	files := FromEntries(scan)

	var descriptor string
	for _, p := range files.Paths() {
		if !strings.HasSuffix(p, descriptorExt) {
			continue
		}
		if descriptor != "" {
			return nil, &LayoutError{Msg: fmt.Sprintf("multiple descriptors: %s and %s", descriptor, p)}
		}
		descriptor = p
	}
	if descriptor == "" {
		return nil, &LayoutError{Msg: "descriptor not found"}
	}

	var tileRoot string
	for _, p := range files.Paths() {
		if i := strings.Index(p, tileMarker); i >= 0 {
			tileRoot = p[:i+len(tileMarker)]
			break
		}
	}
	if tileRoot == "" {
		return nil, &LayoutError{Msg: fmt.Sprintf("no %q tile directory found", tileMarker)}
	}

	return &Layout{TileRoot: tileRoot, Descriptor: descriptor, Files: files}, nil
}
