// Package szi reads SZI slide archives: zip containers holding a Deep Zoom
// tile set under a scan/ root.
package szi

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// ArchiveError means the source container could not be opened or read.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// Entry is one (path, content) pair from an archive.
type Entry struct {
	Path string
	Data []byte
}

// Archive is an in-memory table of every file in the source container,
// keyed by relative path. Enumeration order matches the container.
type Archive struct {
	paths []string
	data  map[string][]byte
}

// FromEntries builds an Archive from already-extracted entries, preserving
// their order. A duplicate path keeps its first position but the later
// content wins.
func FromEntries(entries []Entry) *Archive {
	a := &Archive{data: make(map[string][]byte, len(entries))}
	for _, e := range entries {
		if _, ok := a.data[e.Path]; !ok {
			a.paths = append(a.paths, e.Path)
		}
		a.data[e.Path] = e.Data
	}
	return a
}

// Paths returns every entry path in archive order.
func (a *Archive) Paths() []string { return a.paths }

// Get returns the content stored for path.
func (a *Archive) Get(path string) ([]byte, bool) {
	b, ok := a.data[path]
	return b, ok
}

// Len returns the number of entries.
func (a *Archive) Len() int { return len(a.paths) }

// ReadArchive materializes the whole zip container in memory. Slide tile
// sets are bounded in aggregate size, so nothing is streamed; one load
// buys simple random access for every later stage.
func ReadArchive(path string) (*Archive, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ArchiveError{Path: path, Err: err}
	}
	defer r.Close()

	entries := make([]Entry, 0, len(r.File))
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, "/") {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, &ArchiveError{Path: path, Err: fmt.Errorf("open %s: %w", f.Name, err)}
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, &ArchiveError{Path: path, Err: fmt.Errorf("read %s: %w", f.Name, err)}
		}
		entries = append(entries, Entry{Path: f.Name, Data: b})
	}
	return FromEntries(entries), nil
}
