// Package fileurl provides small filesystem path helpers.
package fileurl

import (
	"io/fs"
	"os"
	"path/filepath"
)

// IsExist reports whether the path exists.
func IsExist(path string) bool {
	_, err := os.Stat(path)
	return err == nil || os.IsExist(err)
}

// CreatePath creates the parent directory chain of path.
func CreatePath(path string, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, perm)
}
