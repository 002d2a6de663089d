// Package platform holds OS-specific console setup. On Windows the console
// code page is switched to UTF-8 so generator output renders correctly; on
// other systems the functions are no-ops.
package platform
