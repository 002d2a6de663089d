package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/initvue/init-vue/internal/branding"
	"github.com/spf13/cobra"
)

// buildInfo is the version payload printed by `version --json`.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var versionFormat struct {
	short bool
	json  bool
}

func init() {
	versionCmd.Flags().BoolVar(&versionFormat.short, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionFormat.json, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := buildInfo{Version: buildVersion, Commit: buildCommit, Date: buildDate}
		return writeVersion(cmd.OutOrStdout(), info, versionFormat.short, versionFormat.json)
	},
}

func writeVersion(w io.Writer, info buildInfo, short, asJSON bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		_, err := fmt.Fprintf(w, "%s %s (commit %s, built %s)\n", branding.CLIName(), info.Version, info.Commit, info.Date)
		return err
	}
}
