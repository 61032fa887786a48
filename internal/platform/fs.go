package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Permission modes for scaffolded entries. The process umask still applies.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)

// WorkingFS returns a filesystem rooted at dir, or at the current working
// directory when dir is empty. Paths handed to it are relative to that root
// and cannot escape it.
func WorkingFS(dir string) (billy.Filesystem, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening %s: not a directory", abs)
	}

	return osfs.New(abs, osfs.WithBoundOS()), nil
}
