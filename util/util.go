package util

import (
	"os"
)

// DirMode is the default FileMode used when creating directories.
const DirMode = 0775

// DirExists checks whether some directory exists.
func DirExists(dir string) bool {
	stat, err := os.Stat(dir)
	return err == nil && stat.IsDir()
}

// Exists checks whether anything (file, directory, symlink target) exists at `p`.
func Exists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}
