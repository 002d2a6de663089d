package cli

import (
	"fmt"
	"os"

	"github.com/initvue/init-vue/internal/preset"
	"github.com/spf13/cobra"
)

func init() {
	presetCmd.AddCommand(presetShowCmd)
	presetCmd.AddCommand(presetValidateCmd)
	rootCmd.AddCommand(presetCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Inspect and validate scaffold presets",
	Long: `A preset describes the generator command, the config file to patch, and the
boilerplate removed after install. Copy the built-in one with
'init-vue preset show > my.yaml', edit it, and pass it with --preset my.yaml.`,
}

var presetShowCmd = &cobra.Command{
	Use:   "show [name|file]",
	Short: "Print a built-in or file preset as resolved YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := ""
		if len(args) == 1 {
			ref = args[0]
		}
		p, err := preset.Resolve(ref)
		if err != nil {
			return err
		}
		data, err := p.Marshal()
		if err != nil {
			return fmt.Errorf("encoding preset: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var presetValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a preset file against the preset schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading preset: %w", err)
		}
		result, err := preset.Validate(data)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if result.Valid {
			fmt.Fprintf(w, "[ OK ] %s is valid\n", args[0])
			return nil
		}
		fmt.Fprintf(w, "[FAIL] %s is invalid:\n", args[0])
		for _, issue := range result.Issues {
			fmt.Fprintf(w, "  - %s\n", issue)
		}
		return fmt.Errorf("%d validation issue(s)", len(result.Issues))
	},
}
