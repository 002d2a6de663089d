// Package runtime runs the external tools a scaffold depends on: the project
// generator, the package manager, and node itself. Runner is the seam tests
// replace to observe or fail individual invocations.
package runtime
