package bundler

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const filePerm os.FileMode = 0o644

// WriteFileAtomic writes data to a temporary file next to path and renames it
// into place, keeping the mode of an existing file. On failure the temporary file is removed and any existing file
// at path is left untouched.
func WriteFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := afero.TempFile(fs, dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	cleanup := func(err error) error {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}

	if _, err := tmp.Write(data); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}
	mode := filePerm
	if info, err := fs.Stat(path); err == nil && info.Mode().IsRegular() {
		mode = info.Mode().Perm()
	}
	if err := fs.Chmod(tmpPath, mode); err != nil {
		_ = fs.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return &WriteError{Path: path, Err: err}
	}

	return nil
}
