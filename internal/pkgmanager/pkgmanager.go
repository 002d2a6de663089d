// Package pkgmanager enumerates the package managers a project can be
// installed with.
package pkgmanager

import (
	"fmt"
	"strings"
)

// Manager is a supported package manager binary name.
type Manager string

// Supported package managers, in menu order.
const (
	NPM  Manager = "npm"
	PNPM Manager = "pnpm"
	Yarn Manager = "yarn"
)

// All returns the supported managers in menu order.
func All() []Manager {
	return []Manager{NPM, PNPM, Yarn}
}

// Names returns the menu labels for All().
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, m := range all {
		names[i] = string(m)
	}
	return names
}

// Parse converts s into a Manager. Matching is case-insensitive.
func Parse(s string) (Manager, error) {
	m := Manager(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("unsupported package manager %q: choose one of %s", s, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Valid reports whether m is one of the supported managers.
func (m Manager) Valid() bool {
	for _, known := range All() {
		if m == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer.
func (m Manager) String() string { return string(m) }

// InstallArgs returns the arguments that install a project's dependencies.
func (m Manager) InstallArgs() []string {
	return []string{"install"}
}

// RunScriptCommand returns the shell command a user types to run a package script.
func (m Manager) RunScriptCommand(script string) string {
	return fmt.Sprintf("%s run %s", m, script)
}
