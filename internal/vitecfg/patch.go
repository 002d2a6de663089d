package vitecfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultAnchor is the token the server block is inserted after.
const DefaultAnchor = "export default defineConfig({"

// DefaultCandidates lists config file names in lookup order.
var DefaultCandidates = []string{
	"vite.config.js",
	"vite.config.ts",
	"vite.config.mjs",
	"vite.config.mts",
}

// ErrAnchorNotFound is returned when a config without a server block also
// lacks the insertion anchor.
var ErrAnchorNotFound = errors.New("insertion anchor not found")

// Change describes what PatchServerPort did.
type Change int

const (
	Unchanged Change = iota
	Inserted
	Replaced
)

func (c Change) String() string {
	switch c {
	case Inserted:
		return "inserted"
	case Replaced:
		return "replaced"
	default:
		return "unchanged"
	}
}

const serverKey = "server:"

var serverBlock = regexp.MustCompile(`server:\s*\{[^}]*\}`)

// PatchServerPort returns content with its server block set to port.
func PatchServerPort(content string, port int, anchor string) (string, Change, error) {
	if anchor == "" {
		anchor = DefaultAnchor
	}

	if !strings.Contains(content, serverKey) {
		idx := strings.Index(content, anchor)
		if idx < 0 {
			return content, Unchanged, fmt.Errorf("%w: %q", ErrAnchorNotFound, anchor)
		}
		at := idx + len(anchor)
		return content[:at] + insertedBlock(port) + content[at:], Inserted, nil
	}

	loc := serverBlock.FindStringIndex(content)
	if loc == nil {
		// "server:" appears but not followed by a brace block, e.g. in a comment.
		return content, Unchanged, fmt.Errorf("found %q without a brace-delimited block", serverKey)
	}
	return content[:loc[0]] + replacedBlock(port) + content[loc[1]:], Replaced, nil
}

func insertedBlock(port int) string {
	return fmt.Sprintf("\n  server: {\n    port: %d,\n    open: true,\n  },", port)
}

func replacedBlock(port int) string {
	return fmt.Sprintf("server: {\n    port: %d,\n    open: true,\n  }", port)
}

// FindConfig returns the first candidate present in dir.
func FindConfig(dir string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// PatchFile rewrites the config file at path in place.
func PatchFile(path string, port int, anchor string) (Change, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Unchanged, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Unchanged, fmt.Errorf("reading %s: %w", path, err)
	}

	patched, change, err := PatchServerPort(string(data), port, anchor)
	if err != nil {
		return Unchanged, fmt.Errorf("patching %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return Unchanged, fmt.Errorf("writing %s: %w", path, err)
	}
	return change, nil
}
