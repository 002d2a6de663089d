package scaffold

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	commandStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

// Report writes the completion message with next-step instructions.
func Report(w io.Writer, res *Result, port int) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Project initialized!"))
	fmt.Fprintln(w)

	step := 1
	if res.Installed {
		fmt.Fprintf(w, "%d. Project created at %s and dependencies installed.\n", step, res.ProjectDir)
	} else {
		fmt.Fprintf(w, "%d. Project created at %s (dependencies not installed).\n", step, res.ProjectDir)
	}
	step++

	if res.ConfigPath != "" {
		fmt.Fprintf(w, "%d. Dev server port set to %d.\n", step, port)
	} else {
		fmt.Fprintf(w, "%d. Dev server port %d could not be configured; set it manually.\n", step, port)
	}
	step++

	fmt.Fprintf(w, "%d. Start the dev server with:\n\n", step)
	fmt.Fprintf(w, "   cd %s\n", res.ProjectDir)
	fmt.Fprintf(w, "   %s\n", commandStyle.Render(res.DevCommand))
	if len(res.Scripts) > 0 {
		fmt.Fprintf(w, "\n   Available scripts: %s\n", strings.Join(res.Scripts, ", "))
	}

	if len(res.Warnings) > 0 {
		fmt.Fprintln(w, "\nWarnings:")
		for _, warning := range res.Warnings {
			fmt.Fprintf(w, "  - %s\n", warning)
		}
	}

	fmt.Fprintln(w, "\nHappy hacking!")
}
