package fileops

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sys/unix"
)

// GetFileInfo reports kind, size, timestamps, permission bits, ownership,
// and for regular files the detected MIME type and the current process's
// read/write/execute access.
func GetFileInfo(ctx context.Context, req Request) (string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Path does not exist: %s", req.Path)
		}
		return "", err
	}

	kind := "File"
	if info.IsDir() {
		kind = "Directory"
	}

	created, accessed := info.ModTime(), info.ModTime()
	var uid, gid uint32
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		created = time.Unix(stat.Ctim.Sec, stat.Ctim.Nsec)
		accessed = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
		uid, gid = stat.Uid, stat.Gid
	}

	lines := []string{
		fmt.Sprintf("Path: %s", req.Path),
		fmt.Sprintf("Type: %s", kind),
		fmt.Sprintf("Size: %d bytes", info.Size()),
		fmt.Sprintf("Created: %s", created.Format(time.RFC3339)),
		fmt.Sprintf("Modified: %s", info.ModTime().Format(time.RFC3339)),
		fmt.Sprintf("Accessed: %s", accessed.Format(time.RFC3339)),
		fmt.Sprintf("Permissions: %03o", info.Mode().Perm()),
		fmt.Sprintf("Owner UID: %d", uid),
		fmt.Sprintf("Group GID: %d", gid),
	}

	if info.Mode().IsRegular() {
		if mtype, err := mimetype.DetectFile(req.Path); err == nil {
			lines = append(lines, fmt.Sprintf("MIME type: %s", mtype.String()))
		}
		lines = append(lines,
			fmt.Sprintf("Is executable: %t", unix.Access(req.Path, unix.X_OK) == nil),
			fmt.Sprintf("Is readable: %t", unix.Access(req.Path, unix.R_OK) == nil),
			fmt.Sprintf("Is writable: %t", unix.Access(req.Path, unix.W_OK) == nil),
		)
	}

	return strings.Join(lines, "\n"), nil
}

// ChangePermissions applies an octal mode string such as "755" to a path.
func ChangePermissions(ctx context.Context, req Request) (string, error) {
	if _, err := os.Stat(req.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Path does not exist: %s", req.Path)
		}
		return "", err
	}

	mode, err := strconv.ParseUint(req.Permissions, 8, 32)
	if err != nil {
		return "", invalidFormatf("Invalid permissions format: %s. Use octal format like '755'", req.Permissions)
	}

	if err := os.Chmod(req.Path, os.FileMode(mode)); err != nil {
		return "", err
	}
	return fmt.Sprintf("Permissions changed to %s for %s", req.Permissions, req.Path), nil
}

// GetFileSize reports the size of a regular file scaled to the largest unit
// under which the value stays below 1024.
func GetFileSize(ctx context.Context, req Request) (string, error) {
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

	return fmt.Sprintf("File size: %s", formatSize(info.Size())), nil
}

// GetDirectorySize recursively sums the sizes of all regular files in a
// subtree and counts files and subdirectories.
func GetDirectorySize(ctx context.Context, req Request) (string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Directory does not exist: %s", req.Path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", wrongKindf("Path is not a directory: %s", req.Path)
	}

	// fastwalk invokes the callback from multiple goroutines.
	var totalSize, fileCount, dirCount atomic.Int64

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, req.Path, func(p string, d os.DirEntry, err error) error {
		if err != nil || p == req.Path {
			return nil
		}
		if d.IsDir() {
			dirCount.Add(1)
			return nil
		}
		entryInfo, err := d.Info()
		if err != nil || !entryInfo.Mode().IsRegular() {
			return nil
		}
		totalSize.Add(entryInfo.Size())
		fileCount.Add(1)
		return nil
	})
	if err != nil {
		return "", err
	}

	total := totalSize.Load()
	lines := []string{
		fmt.Sprintf("Directory: %s", req.Path),
		fmt.Sprintf("Total size: %s (%s bytes)", formatSize(total), humanize.Comma(total)),
		fmt.Sprintf("Files: %s", humanize.Comma(fileCount.Load())),
		fmt.Sprintf("Subdirectories: %s", humanize.Comma(dirCount.Load())),
	}
	return strings.Join(lines, "\n"), nil
}
