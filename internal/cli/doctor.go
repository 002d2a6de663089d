package cli

import (
	"fmt"
	"io"

	"github.com/initvue/init-vue/internal/config"
	"github.com/initvue/init-vue/internal/pkgmanager"
	"github.com/initvue/init-vue/internal/runtime"
	"github.com/spf13/cobra"
)

var doctorConstraint string

func init() {
	doctorCmd.Flags().StringVar(&doctorConstraint, "node", runtime.MinNodeConstraint, "Required Node.js version range")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that Node.js and the package managers are available",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		ok := runRuntimeCheck(cmd, w)
		runToolsCheck(w)
		runConfigCheck(w)
		if !ok {
			return fmt.Errorf("node.js check failed")
		}
		return nil
	},
}

func runRuntimeCheck(cmd *cobra.Command, w io.Writer) bool {
	fmt.Fprintln(w, "Runtime check:")
	st, err := runtime.CheckNode(cmd.Context(), doctorConstraint)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return false
	}
	if !st.Satisfied {
		fmt.Fprintf(w, "  [FAIL] node %s does not satisfy %s\n", st.Version, st.Constraint)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] node %s (%s)\n", st.Version, st.Constraint)
	return true
}

func runToolsCheck(w io.Writer) {
	fmt.Fprintln(w, "Tools check:")
	names := append([]string{"npx"}, pkgmanager.Names()...)
	for _, st := range runtime.LookTools(names...) {
		if !st.Found {
			fmt.Fprintf(w, "  [MISS] %s not found\n", st.Name)
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s found at %s\n", st.Name, st.Path)
	}
}

func runConfigCheck(w io.Writer) {
	fmt.Fprintln(w, "Config check:")
	d := config.Resolved()
	fmt.Fprintf(w, "  [INFO] %s\n", config.FilePath())
	fmt.Fprintf(w, "  [INFO] default port %d\n", d.Port)
	if d.PackageManager == "" {
		fmt.Fprintln(w, "  [INFO] no default package manager (asked interactively)")
		return
	}
	if _, err := pkgmanager.Parse(d.PackageManager); err != nil {
		fmt.Fprintf(w, "  [WARN] %v\n", err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] default package manager %s\n", d.PackageManager)
}
