package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/initvue/init-vue/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized keys.
const (
	KeyPort           = "defaults.port"
	KeyPackageManager = "defaults.package_manager"
	KeyPreset         = "defaults.preset"
)

// DefaultPort is the dev-server port used when nothing else is configured.
const DefaultPort = 3000

// Defaults holds the resolved default answers.
type Defaults struct {
	Port           int
	PackageManager string
	Preset         string
}

// Dir returns the path to the config directory (~/.init-vue/).
// INIT_VUE_HOME overrides the location.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.init-vue/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(envKeyReplacer)
	viper.AutomaticEnv()

	viper.SetDefault(KeyPort, DefaultPort)
	viper.SetDefault(KeyPackageManager, "")
	viper.SetDefault(KeyPreset, "")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Resolved returns the default answers after file and environment overlays.
func Resolved() Defaults {
	port := viper.GetInt(KeyPort)
	if port <= 0 {
		port = DefaultPort
	}
	return Defaults{
		Port:           port,
		PackageManager: viper.GetString(KeyPackageManager),
		Preset:         viper.GetString(KeyPreset),
	}
}

// Keys lists the keys understood by `config get/set`.
func Keys() []string {
	keys := []string{KeyPort, KeyPackageManager, KeyPreset}
	sort.Strings(keys)
	return keys
}

// IsKnownKey reports whether key is one of Keys().
func IsKnownKey(key string) bool {
	for _, k := range Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
