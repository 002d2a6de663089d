// Package preset loads and validates scaffold recipes. A recipe names the
// generator command, the config file to patch, and the boilerplate to remove.
// The built-in "vue" recipe is embedded; users may supply their own YAML file.
package preset
