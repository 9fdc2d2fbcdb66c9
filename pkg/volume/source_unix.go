//go:build !windows

package volume

import (
	"context"
	"os"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

type unixSource struct{}

// NewSource returns the volume source for this platform.
func NewSource() Source {
	return &unixSource{}
}

func (s *unixSource) List(ctx context.Context, all bool, selectors []string) ([]string, error) {
	if len(selectors) == 0 {
		// Single-root filesystems report "/" whether or not --all is set.
		return []string{"/"}, nil
	}

	var volumes []string
	for _, sel := range selectors {
		path := sel
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		if _, err := os.Stat(path); err == nil {
			volumes = append(volumes, path)
		}
	}
	if len(volumes) == 0 {
		return nil, cerr.Newf("no valid volumes specified: %s", strings.Join(selectors, ", "))
	}
	return volumes, nil
}

func (s *unixSource) Usage(ctx context.Context, id string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(id, &st); err != nil {
		return Usage{}, cerr.Wrapf(err, "statfs %s", id)
	}

	// Used counts root-reserved blocks (Bfree); free is what an
	// unprivileged caller can actually allocate (Bavail).
	bsize := int64(st.Bsize)
	total := int64(st.Blocks) * bsize
	used := (int64(st.Blocks) - int64(st.Bfree)) * bsize
	free := int64(st.Bavail) * bsize

	return Usage{Total: total, Used: used, Free: free}, nil
}
