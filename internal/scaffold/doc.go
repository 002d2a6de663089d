// Package scaffold runs the project creation flow: generator, config patch,
// dependency install, and boilerplate cleanup, strictly in that order. A
// failing generator or install stops the flow before any later step runs.
package scaffold
