package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
)

// Thin synchronous wrappers over filesystem mutation primitives. The state
// engine sequences and validates their use; none of these retry or roll
// back. A failure partway through a recursive copy or delete leaves the
// filesystem in whatever partial state the traversal reached.

// Exists reports whether path refers to anything at all, without following
// symlinks.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// CreateFile creates an empty file, failing if the path already exists.
func CreateFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return wrapErr("create", path, err)
	}
	return wrapErr("create", path, f.Close())
}

// CreateDir creates a single directory, failing if the path already exists.
func CreateDir(path string) error {
	return wrapErr("mkdir", path, os.Mkdir(path, 0o755))
}

// Rename moves oldPath to newPath within the same directory tree, refusing
// to clobber an existing target.
func Rename(oldPath, newPath string) error {
	if Exists(newPath) {
		return &OpError{Op: "rename", Path: newPath, Kind: ErrExists, Err: iofs.ErrExist}
	}
	return wrapErr("rename", oldPath, os.Rename(oldPath, newPath))
}

// Delete removes path. Directories are removed recursively; there is no
// trash and no undo.
func Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return wrapErr("delete", path, err)
	}
	if info.IsDir() {
		return wrapErr("delete", path, os.RemoveAll(path))
	}
	return wrapErr("delete", path, os.Remove(path))
}

// Move relocates src to dst with platform rename semantics. Moving across
// filesystems fails rather than degrading to copy+delete.
func Move(src, dst string) error {
	return wrapErr("move", src, os.Rename(src, dst))
}

// CopyFile duplicates a regular file, preserving its permission bits.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return wrapErr("copy", src, err)
	}

	in, err := os.Open(src)
	if err != nil {
		return wrapErr("copy", src, err)
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return wrapErr("copy", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return wrapErr("copy", dst, err)
	}
	return wrapErr("copy", dst, out.Close())
}

// CopyDir duplicates a directory tree in pre-order, aborting on the first
// failure. Existing files at the destination are overwritten (recursive
// merge by overwrite).
func CopyDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return wrapErr("copy", dst, err)
	}

	dirents, err := os.ReadDir(src)
	if err != nil {
		return wrapErr("copy", src, err)
	}

	for _, de := range dirents {
		srcPath := filepath.Join(src, de.Name())
		dstPath := filepath.Join(dst, de.Name())

		if de.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}
