package fileops

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// ListDirectory enumerates the children of a directory, or the full subtree
// when Recursive is set. Entries whose name starts with "." are skipped
// unless ShowHidden is set; the filter applies to the entry's own name, so
// visible files inside hidden directories still appear in recursive
// listings. Output lines are sorted lexicographically.
func ListDirectory(ctx context.Context, req Request) (string, error) {
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

	var lines []string
	if req.Recursive {
		lines, err = listRecursive(req.Path, req.ShowHidden)
	} else {
		lines, err = listImmediate(req.Path, req.ShowHidden)
	}
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", permissionDeniedf("Permission denied accessing directory: %s", req.Path)
		}
		return "", err
	}

	sort.Strings(lines)

	var b strings.Builder
	fmt.Fprintf(&b, "Contents of %s:\n", req.Path)
	fmt.Fprintf(&b, "%-10s %10s Name\n", "Type", "Size")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	b.WriteString(strings.Join(lines, "\n"))
	return b.String(), nil
}

func listImmediate(dir string, showHidden bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !showHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		lines = append(lines, entryLine(entry, entry.Name()))
	}
	return lines, nil
}

func listRecursive(dir string, showHidden bool) ([]string, error) {
	var mu sync.Mutex
	var lines []string

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return err
			}
			return nil
		}
		if p == dir {
			return nil
		}
		if !showHidden && strings.HasPrefix(d.Name(), ".") {
			return nil
		}

		relPath, err := filepath.Rel(dir, p)
		if err != nil {
			return nil
		}
		line := entryLine(d, relPath)

		mu.Lock()
		lines = append(lines, line)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// entryLine formats one listing row: kind, size (or "-" for directories),
// and the name or relative path.
func entryLine(d os.DirEntry, name string) string {
	kind := "file"
	size := "-"
	if d.IsDir() {
		kind = "directory"
	} else if info, err := d.Info(); err == nil {
		size = strconv.FormatInt(info.Size(), 10)
	}
	return fmt.Sprintf("%-10s %10s %s", kind, size, name)
}

// CreateDirectory creates a directory. It fails if the target already
// exists; with Recursive set it also creates missing ancestors.
func CreateDirectory(ctx context.Context, req Request) (string, error) {
	if _, err := os.Stat(req.Path); err == nil {
		return "", alreadyExistsf("Directory already exists: %s", req.Path)
	}

	var err error
	if req.Recursive {
		err = os.MkdirAll(req.Path, 0o755)
	} else {
		err = os.Mkdir(req.Path, 0o755)
	}
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Directory created: %s", req.Path), nil
}

// DeleteDirectory removes a directory. Without Recursive it only succeeds
// on an empty directory; with Recursive it removes the whole subtree.
func DeleteDirectory(ctx context.Context, req Request) (string, error) {
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

	if req.Recursive {
		if err := os.RemoveAll(req.Path); err != nil {
			return "", err
		}
		return fmt.Sprintf("Directory and contents deleted: %s", req.Path), nil
	}

	if err := os.Remove(req.Path); err != nil {
		return "", err
	}
	return fmt.Sprintf("Empty directory deleted: %s", req.Path), nil
}
