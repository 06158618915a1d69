// Package assets serves emoji images by asset file name.
//
// A Store maps names such as "emoji_u1f600.png" to PNG bytes. NewFS reads
// them from a directory tree, NewFontStore renders them from the color
// bitmaps of an emoji font and Chain tries several stores in order. A
// Loader adapts a Store to the image addresses produced by the scan
// pipeline.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/gogpu/emojidom/emoji"
)

// ErrNotFound is returned for a name with no asset.
var ErrNotFound = errors.New("assets: not found")

// Store returns the PNG bytes of an asset.
type Store interface {
	Open(name string) ([]byte, error)
}

// FS is a Store backed by a file system.
type FS struct {
	fsys fs.FS
	dir  string
}

// NewFS returns a store reading names from the root of fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys, dir: "."}
}

// NewFSDir returns a store reading names from dir inside fsys.
func NewFSDir(fsys fs.FS, dir string) *FS {
	return &FS{fsys: fsys, dir: dir}
}

// Open implements Store. Names that are not asset file names are never
// looked up.
func (s *FS) Open(name string) ([]byte, error) {
	if !emoji.ValidAssetName(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	data, err := fs.ReadFile(s.fsys, path.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}

// Chain tries each store in order and returns the first asset found.
type Chain []Store

// Open implements Store.
func (c Chain) Open(name string) ([]byte, error) {
	for _, s := range c {
		data, err := s.Open(name)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}
