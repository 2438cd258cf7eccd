package emitter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/uikit-tools/scaff/internal/errors"
)

// checkAbsent fails with DestinationExistsError when dest is present.
func checkAbsent(dest string) error {
	_, err := os.Lstat(dest)
	switch {
	case err == nil:
		return &oerrors.DestinationExistsError{Path: dest}
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return &oerrors.FilesystemWriteError{Op: "stat", Path: dest, Err: err}
	}
}

// writeNew creates dest with content. The content is staged in a temp file
// next to dest and linked into place, so dest either appears complete or
// not at all. Directories created on the way are removed again on failure.
func writeNew(dest string, content []byte) (n int, err error) {
	dir := filepath.Dir(dest)

	created, err := mkdirAll(dir)
	if err != nil {
		return 0, &oerrors.FilesystemWriteError{Op: "mkdir", Path: dir, Err: err}
	}
	defer func() {
		if err != nil {
			removeDirs(created)
		}
	}()

	if err := checkAbsent(dest); err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(dest)+".*.tmp")
	if err != nil {
		return 0, &oerrors.FilesystemWriteError{Op: "create", Path: dir, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return 0, &oerrors.FilesystemWriteError{Op: "write", Path: tmpName, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return 0, &oerrors.FilesystemWriteError{Op: "sync", Path: tmpName, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return 0, &oerrors.FilesystemWriteError{Op: "close", Path: tmpName, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return 0, &oerrors.FilesystemWriteError{Op: "chmod", Path: tmpName, Err: err}
	}

	if err := publish(tmpName, dest, content); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return 0, &oerrors.DestinationExistsError{Path: dest}
		}
		return 0, &oerrors.FilesystemWriteError{Op: "link", Path: dest, Err: err}
	}

	return len(content), nil
}

// publish moves the staged file to dest without ever replacing an existing
// file. Hard links give that guarantee atomically; filesystems without
// them fall back to an exclusive create.
func publish(tmpName, dest string, content []byte) error {
	err := os.Link(tmpName, dest)
	if err == nil || errors.Is(err, fs.ErrExist) {
		return err
	}

	f, ferr := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if ferr != nil {
		if errors.Is(ferr, fs.ErrExist) {
			return ferr
		}
		return fmt.Errorf("%w (exclusive create: %v)", err, ferr)
	}
	if _, werr := f.Write(content); werr != nil {
		f.Close()
		os.Remove(dest)
		return werr
	}
	if cerr := f.Close(); cerr != nil {
		os.Remove(dest)
		return cerr
	}
	return nil
}

// mkdirAll creates dir and any missing parents, returning the directories
// it created from the outermost inwards.
func mkdirAll(dir string) ([]string, error) {
	var missing []string
	for d := dir; ; {
		info, err := os.Stat(d)
		if err == nil {
			if !info.IsDir() {
				return nil, fmt.Errorf("%s is not a directory", d)
			}
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		missing = append(missing, d)

		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}

	created := make([]string, 0, len(missing))
	for i := len(missing) - 1; i >= 0; i-- {
		if err := os.Mkdir(missing[i], 0o755); err != nil {
			if errors.Is(err, fs.ErrExist) {
				continue
			}
			removeDirs(created)
			return nil, err
		}
		created = append(created, missing[i])
	}
	return created, nil
}

// removeDirs removes dirs innermost first. Directories that are no longer
// empty are left alone.
func removeDirs(dirs []string) {
	for i := len(dirs) - 1; i >= 0; i-- {
		_ = os.Remove(dirs[i])
	}
}
