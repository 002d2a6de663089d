// Package cleanup removes generator boilerplate from a freshly scaffolded
// project: emptying asset directories, pruning components, overwriting the root
// component, and dropping stylesheet imports from the entry script.
package cleanup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// EmptyDir removes every entry under dir, leaving dir itself in place.
// It returns false without error when dir does not exist.
func EmptyDir(dir string) (bool, error) {
	return PruneExcept(dir)
}

// PruneExcept removes every entry of dir whose name is not listed in keep.
// Files and subdirectories are removed alike. It returns false without error
// when dir does not exist.
func PruneExcept(dir string, keep ...string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", dir, err)
	}

	kept := make(map[string]bool, len(keep))
	for _, name := range keep {
		kept[name] = true
	}

	for _, e := range entries {
		if kept[e.Name()] {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(path); err != nil {
			return true, fmt.Errorf("removing %s: %w", path, err)
		}
	}
	return true, nil
}

// WriteFile replaces the file at path with content, creating parent
// directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// DropLines removes every line of the file at path that contains needle and
// returns how many were removed. All other lines keep their order and line
// endings. A missing file is reported with an error wrapping fs.ErrNotExist.
func DropLines(path, needle string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}

	filtered, removed := FilterLines(string(data), needle)
	if removed == 0 {
		return 0, nil
	}

	if err := os.WriteFile(path, []byte(filtered), info.Mode().Perm()); err != nil {
		return 0, fmt.Errorf("writing %s: %w", path, err)
	}
	return removed, nil
}

// FilterLines drops lines of content that contain needle.
func FilterLines(content, needle string) (string, int) {
	if needle == "" {
		return content, 0
	}

	// A CRLF line keeps its \r, so CRLF files survive intact.
	lines := strings.Split(content, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.Contains(line, needle) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n"), len(lines) - len(kept)
}
