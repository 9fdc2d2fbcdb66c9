//go:build darwin

package trash

import (
	"context"
	"os"
	"path/filepath"

	cerr "github.com/cockroachdb/errors"
)

type darwinStore struct {
	root string
}

// NewStore returns the trash store for this platform.
func NewStore() Store {
	home, err := os.UserHomeDir()
	if err != nil {
		// Contents/Empty surface the error; construction stays infallible.
		return &darwinStore{}
	}
	return &darwinStore{root: filepath.Join(home, ".Trash")}
}

func (s *darwinStore) Contents(ctx context.Context) (Info, error) {
	if s.root == "" {
		return Info{}, cerr.New("home directory unavailable")
	}
	return measureDir(s.root)
}

func (s *darwinStore) Empty(ctx context.Context) error {
	if s.root == "" {
		return cerr.New("home directory unavailable")
	}
	return clearDir(s.root)
}
