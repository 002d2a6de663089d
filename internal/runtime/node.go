package runtime

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeConstraint is the Node.js range create-vue supports.
const MinNodeConstraint = ">=18.3.0"

// NodeStatus is the outcome of a Node.js version check.
type NodeStatus struct {
	Version    string
	Constraint string
	Satisfied  bool
}

// versionFunc returns the raw `node --version` output. Tests replace it.
var versionFunc = func(ctx context.Context) (string, error) {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return "", fmt.Errorf("node runtime requires Node.js: %w", err)
	}
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, nodeBin, "--version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return out.String(), nil
}

// CheckNode reports whether the installed Node.js satisfies constraint.
func CheckNode(ctx context.Context, constraint string) (*NodeStatus, error) {
	raw, err := versionFunc(ctx)
	if err != nil {
		return nil, err
	}
	return evaluateNodeVersion(raw, constraint)
}

func evaluateNodeVersion(raw, constraint string) (*NodeStatus, error) {
	version := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parsing node version %q: %w", raw, err)
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return &NodeStatus{
		Version:    v.String(),
		Constraint: constraint,
		Satisfied:  c.Check(v),
	}, nil
}

// ToolStatus records whether a binary is on PATH.
type ToolStatus struct {
	Name  string
	Path  string
	Found bool
}

// LookTools resolves each name on PATH.
func LookTools(names ...string) []ToolStatus {
	statuses := make([]ToolStatus, 0, len(names))
	for _, name := range names {
		path, err := exec.LookPath(name)
		statuses = append(statuses, ToolStatus{Name: name, Path: path, Found: err == nil})
	}
	return statuses
}
