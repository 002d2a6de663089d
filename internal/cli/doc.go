// Package cli defines the Cobra command tree for the init-vue CLI. The root
// command scaffolds a project; the remaining files each register one
// subcommand. Commands only handle flags, prompts, and output formatting and
// delegate the work to internal packages.
package cli
