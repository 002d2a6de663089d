// Package vitecfg edits the dev-server block of a Vite config file.
//
// The edit is textual: it looks for a "server:" key and either inserts a new
// block after the defineConfig opening or rewrites the first brace-delimited
// block that follows the key. Config files with nested objects inside the
// server block are not handled.
package vitecfg
