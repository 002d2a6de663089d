// Package project inspects a generated frontend project.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tidwall/jsonc"
)

// PackageJSON holds the package.json fields the report cares about.
type PackageJSON struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Scripts map[string]string `json:"scripts"`
}

// ReadPackageJSON parses dir/package.json. Comments and trailing commas are
// tolerated.
func ReadPackageJSON(dir string) (*PackageJSON, error) {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg PackageJSON
	if err := json.Unmarshal(jsonc.ToJSON(data), &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}

// HasScript reports whether the package defines script name.
func (p *PackageJSON) HasScript(name string) bool {
	_, ok := p.Scripts[name]
	return ok
}

// ScriptNames returns the defined script names, sorted.
func (p *PackageJSON) ScriptNames() []string {
	names := make([]string, 0, len(p.Scripts))
	for name := range p.Scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
