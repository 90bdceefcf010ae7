package fileops

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FindFiles matches entries under a directory against a glob-style pattern
// such as "*.py". With Recursive set the pattern applies at every depth;
// otherwise only immediate children are considered. An empty match set is a
// success with an explanatory message, not a failure.
func FindFiles(ctx context.Context, req Request) (string, error) {
	info, err := os.Stat(req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", notFoundf("Path does not exist: %s", req.Path)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", wrongKindf("Path is not a directory: %s", req.Path)
	}

	pattern := req.Pattern
	if req.Recursive {
		pattern = "**/" + pattern
	}

	matches, err := doublestar.Glob(os.DirFS(req.Path), pattern)
	if err != nil {
		return "", err
	}
	sort.Strings(matches)

	if len(matches) == 0 {
		return fmt.Sprintf("No files found matching pattern '%s' in %s", req.Pattern, req.Path), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Files matching '%s' in %s:\n", req.Pattern, req.Path)
	for _, match := range matches {
		kind := "file"
		if fi, err := os.Stat(filepath.Join(req.Path, match)); err == nil && fi.IsDir() {
			kind = "directory"
		}
		fmt.Fprintf(&b, "%-10s %s\n", kind, filepath.FromSlash(match))
	}
	return b.String(), nil
}
