//go:build windows

package volume

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

type windowsSource struct{}

// NewSource returns the volume source for this platform.
func NewSource() Source {
	return &windowsSource{}
}

func (s *windowsSource) List(ctx context.Context, all bool, selectors []string) ([]string, error) {
	// Explicit selectors take precedence over --all, as on Unix.
	if len(selectors) > 0 {
		var volumes []string
		for _, sel := range selectors {
			letter := strings.ToUpper(strings.TrimSuffix(sel, ":"))
			drive := letter + ":"
			if _, err := os.Stat(drive + `\`); err == nil {
				volumes = append(volumes, drive)
			}
		}
		if len(volumes) == 0 {
			return nil, cerr.Newf("no valid volumes specified: %s", strings.Join(selectors, ", "))
		}
		return volumes, nil
	}

	if all {
		mask, err := windows.GetLogicalDrives()
		if err != nil {
			return nil, cerr.Wrap(err, "enumerating logical drives")
		}
		var volumes []string
		for i := 0; i < 26; i++ {
			if mask&(1<<uint(i)) != 0 {
				volumes = append(volumes, string(rune('A'+i))+":")
			}
		}
		return volumes, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, cerr.Wrap(err, "resolving working directory")
	}
	return []string{filepath.VolumeName(cwd)}, nil
}

func (s *windowsSource) Usage(ctx context.Context, id string) (Usage, error) {
	root, err := windows.UTF16PtrFromString(id + `\`)
	if err != nil {
		return Usage{}, cerr.Wrapf(err, "encoding volume path %s", id)
	}

	var freeAvailable, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(root, &freeAvailable, &total, &totalFree); err != nil {
		return Usage{}, cerr.Wrapf(err, "querying free space on %s", id)
	}

	return Usage{
		Total: int64(total),
		Used:  int64(total - totalFree),
		Free:  int64(freeAvailable),
	}, nil
}
