//go:build linux

package trash

import (
	"context"
	"path/filepath"

	"github.com/adrg/xdg"
)

// freedesktop trash keeps deleted payloads and their metadata in sibling
// subdirectories; both are counted and both are cleared.
var trashSubdirs = []string{"files", "info"}

type xdgStore struct {
	root string
}

// NewStore returns the trash store for this platform.
func NewStore() Store {
	return &xdgStore{root: filepath.Join(xdg.DataHome, "Trash")}
}

// newStoreAt is the test seam for pointing the store at a scratch
// directory.
func newStoreAt(root string) Store {
	return &xdgStore{root: root}
}

func (s *xdgStore) Contents(ctx context.Context) (Info, error) {
	// Only files/ holds user-visible items; the .trashinfo metadata under
	// info/ would double the count.
	return measureDir(filepath.Join(s.root, "files"))
}

func (s *xdgStore) Empty(ctx context.Context) error {
	for _, sub := range trashSubdirs {
		if err := clearDir(filepath.Join(s.root, sub)); err != nil {
			return err
		}
	}
	return nil
}
