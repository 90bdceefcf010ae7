package fileops

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// CopyFile copies a regular file, creating the destination's parent
// directories as needed. Mode and modification time are preserved where the
// platform supports it.
func CopyFile(ctx context.Context, req Request) (string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Source file does not exist: %s", req.Path)
		}
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", wrongKindf("Source is not a file: %s", req.Path)
	}

	if err := os.MkdirAll(filepath.Dir(req.Destination), 0o755); err != nil {
		return "", err
	}
	if err := copyFileContents(req.Path, req.Destination, info); err != nil {
		return "", err
	}
	return fmt.Sprintf("File copied from %s to %s", req.Path, req.Destination), nil
}

// CopyDirectory copies a full directory subtree. The destination must not
// exist; there is no merge or overwrite.
func CopyDirectory(ctx context.Context, req Request) (string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Source directory does not exist: %s", req.Path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", wrongKindf("Source is not a directory: %s", req.Path)
	}
	if _, err := os.Stat(req.Destination); err == nil {
		return "", alreadyExistsf("Destination already exists: %s", req.Destination)
	}

	if err := copyTree(req.Path, req.Destination); err != nil {
		return "", err
	}
	return fmt.Sprintf("Directory copied from %s to %s", req.Path, req.Destination), nil
}

// MoveFile moves a file, creating the destination's parent directories as
// needed. Cross-device moves succeed via a copy+delete fallback.
func MoveFile(ctx context.Context, req Request) (string, error) {
	if _, err := os.Stat(req.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Source file does not exist: %s", req.Path)
		}
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(req.Destination), 0o755); err != nil {
		return "", err
	}
	if err := movePath(req.Path, req.Destination); err != nil {
		return "", err
	}
	return fmt.Sprintf("File moved from %s to %s", req.Path, req.Destination), nil
}

// MoveDirectory moves a directory, with the same cross-device guarantee as
// MoveFile.
func MoveDirectory(ctx context.Context, req Request) (string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Source directory does not exist: %s", req.Path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", wrongKindf("Source is not a directory: %s", req.Path)
	}

	if err := movePath(req.Path, req.Destination); err != nil {
		return "", err
	}
	return fmt.Sprintf("Directory moved from %s to %s", req.Path, req.Destination), nil
}

// DeleteFile removes a single regular file.
func DeleteFile(ctx context.Context, req Request) (string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("File does not exist: %s", req.Path)
		}
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", wrongKindf("Path is not a file: %s", req.Path)
	}

	if err := os.Remove(req.Path); err != nil {
		return "", err
	}
	return fmt.Sprintf("File deleted: %s", req.Path), nil
}

// movePath renames src to dst. Rename fails across file-system devices, so
// any rename failure falls back to copy followed by delete.
func movePath(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		if err := copyTree(src, dst); err != nil {
			return err
		}
		return os.RemoveAll(src)
	}
	if err := copyFileContents(src, dst, info); err != nil {
		return err
	}
	return os.Remove(src)
}

// copyTree replicates a directory subtree, preserving permissions and
// symlink targets.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			mode := fs.FileMode(0o755)
			if info, err := d.Info(); err == nil {
				mode = info.Mode().Perm()
			}
			return os.MkdirAll(target, mode)
		}
		if d.Type()&fs.ModeSymlink != 0 {
			link, err := os.Readlink(p)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		return copyFileContents(p, target, info)
	})
}

// copyFileContents copies one regular file and restores the source's mode
// and modification time on the copy. Timestamp restoration is best effort.
func copyFileContents(src, dst string, info os.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	os.Chtimes(dst, time.Now(), info.ModTime())
	return nil
}
