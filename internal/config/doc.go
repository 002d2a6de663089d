// Package config manages user-level settings stored at ~/.init-vue/config.yaml.
// It provides functions to load, read, and write keys such as the default
// dev-server port and package manager used when flags and prompts leave them unset.
package config
