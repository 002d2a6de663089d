package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/initvue/init-vue/internal/config"
	"github.com/initvue/init-vue/internal/pkgmanager"
	"github.com/initvue/init-vue/internal/prompt"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage default answers",
	Long: `Read and write defaults stored at ~/.init-vue/config.yaml.

Keys: ` + strings.Join(config.Keys(), ", "),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnownKey(args[0]) {
			return fmt.Errorf("unknown config key %q: known keys are %s", args[0], strings.Join(config.Keys(), ", "))
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyPort:
		p, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port %q: must be an integer", value)
		}
		return prompt.ValidatePort(p)
	case config.KeyPackageManager:
		if value == "" {
			return nil
		}
		_, err := pkgmanager.Parse(value)
		return err
	case config.KeyPreset:
		return nil
	default:
		return fmt.Errorf("unknown config key %q: known keys are %s", key, strings.Join(config.Keys(), ", "))
	}
}
