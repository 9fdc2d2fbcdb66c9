//go:build windows

package trash

import (
	"context"
	"path/filepath"
	"syscall"

	cerr "github.com/cockroachdb/errors"
	"golang.org/x/sys/windows"
)

var (
	shell32             = syscall.NewLazyDLL("shell32.dll")
	procEmptyRecycleBin = shell32.NewProc("SHEmptyRecycleBinW")
)

// SHERB_* flags: no confirmation dialog, no progress UI, no sound.
const emptyFlags = 0x1 | 0x2 | 0x4

type recycleBinStore struct{}

// NewStore returns the trash store for this platform.
func NewStore() Store {
	return &recycleBinStore{}
}

func (s *recycleBinStore) Contents(ctx context.Context) (Info, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return Info{}, cerr.Wrap(err, "enumerating logical drives")
	}

	var total Info
	for i := 0; i < 26; i++ {
		if mask&(1<<uint(i)) == 0 {
			continue
		}
		bin := filepath.Join(string(rune('A'+i))+`:\`, "$Recycle.Bin")
		info, err := measureDir(bin)
		if err != nil {
			return Info{}, err
		}
		total.Items += info.Items
		total.Size += info.Size
	}
	return total, nil
}

func (s *recycleBinStore) Empty(ctx context.Context) error {
	// SHEmptyRecycleBinW(NULL, NULL, flags) empties the bin on all drives.
	hr, _, _ := procEmptyRecycleBin.Call(0, 0, uintptr(emptyFlags))
	if hr != 0 {
		return cerr.Newf("SHEmptyRecycleBinW failed: HRESULT 0x%x", hr)
	}
	return nil
}
