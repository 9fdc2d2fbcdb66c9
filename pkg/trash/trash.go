// Package trash reports on and empties the platform trash store. Like
// pkg/volume, the platform implementation is chosen with build tags.
package trash

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
)

// Info is the trash store's contents at the moment of the query.
type Info struct {
	Items int
	Size  int64
}

// Store reads and empties the trash.
type Store interface {
	// Contents counts trashed items and sums their sizes. A trash
	// directory that does not exist yet reads as empty, not as an error.
	Contents(ctx context.Context) (Info, error)

	// Empty removes everything in the trash.
	Empty(ctx context.Context) error
}

// measureDir walks dir counting files and directories and summing regular
// file sizes. A missing dir contributes nothing.
func measureDir(dir string) (Info, error) {
	var info Info

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path == dir {
				return filepath.SkipAll
			}
			return err
		}
		if path == dir {
			return nil
		}

		info.Items++
		if d.Type().IsRegular() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			info.Size += fi.Size()
		}
		return nil
	})
	if err != nil {
		return Info{}, cerr.Wrapf(err, "reading trash at %s", dir)
	}
	return info, nil
}

// clearDir removes every child of dir, leaving dir itself in place. A
// missing dir is already clear.
func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return cerr.Wrapf(err, "listing trash at %s", dir)
	}

	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return cerr.Wrapf(err, "removing %s", entry.Name())
		}
	}
	return nil
}
