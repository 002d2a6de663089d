package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/initvue/init-vue/internal/config"
	"github.com/initvue/init-vue/internal/pkgmanager"
	"github.com/initvue/init-vue/internal/platform"
	"github.com/initvue/init-vue/internal/port"
	"github.com/initvue/init-vue/internal/preset"
	"github.com/initvue/init-vue/internal/progress"
	"github.com/initvue/init-vue/internal/prompt"
	"github.com/initvue/init-vue/internal/runtime"
	"github.com/initvue/init-vue/internal/scaffold"
	"github.com/spf13/cobra"
)

// createFlags holds the flags shared by the root and create commands.
type createFlags struct {
	packageManager string
	port           int
	preset         string
	skipInstall    bool
	yes            bool
}

var createOpts createFlags

func init() {
	addCreateFlags(createCmd)
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create [project-name]",
	Short: "Scaffold a new Vue project",
	Long: `Scaffold a new Vue project.

Questions not answered by flags are asked interactively.

Examples:
  init-vue create my-app
  init-vue create my-app --package-manager pnpm --port 8080
  init-vue create my-app --yes --skip-install`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreate,
}

func addCreateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&createOpts.packageManager, "package-manager", "m", "", "Package manager: npm, pnpm, or yarn")
	cmd.Flags().IntVarP(&createOpts.port, "port", "p", 0, "Dev server port (default from config, else 3000)")
	cmd.Flags().StringVar(&createOpts.preset, "preset", "", "Built-in preset name or path to a preset YAML file")
	cmd.Flags().BoolVar(&createOpts.skipInstall, "skip-install", false, "Do not install dependencies")
	cmd.Flags().BoolVarP(&createOpts.yes, "yes", "y", false, "Accept defaults instead of prompting")
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := newLogger(cmd)
	defaults := config.Resolved()

	// Prompts and child processes share one buffer so piped answers meant
	// for the generator are not swallowed by the prompt reader.
	in := bufio.NewReader(cmd.InOrStdin())
	answers, err := collectAnswers(in, cmd, args, defaults)
	if err != nil {
		return err
	}

	presetRef := createOpts.preset
	if presetRef == "" {
		presetRef = defaults.Preset
	}
	p, err := preset.Resolve(presetRef)
	if err != nil {
		return fmt.Errorf("loading preset: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	runner := &runtime.ExecRunner{
		Stdout: cmd.OutOrStdout(),
		Stderr: cmd.ErrOrStderr(),
		Stdin:  in,
	}

	if _, err := platform.EnsureUTF8Console(ctx, runner, cwd); err != nil {
		log.Warn().Err(err).Msg("could not switch the console to UTF-8")
	}
	if st, err := runtime.CheckNode(ctx, runtime.MinNodeConstraint); err != nil {
		log.Warn().Err(err).Msg("could not determine the Node.js version")
	} else if !st.Satisfied {
		log.Warn().Str("version", st.Version).Str("required", st.Constraint).Msg("Node.js version is not supported by the generator")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Creating project %s...\n", answers.ProjectName)

	res, err := scaffold.Run(ctx, scaffold.Options{
		WorkDir:     cwd,
		Answers:     *answers,
		Preset:      p,
		Runner:      runner,
		Log:         log,
		Progress:    progress.NewBar(cmd.ErrOrStderr()),
		Ports:       port.NewScanner(),
		SkipInstall: createOpts.skipInstall,
	})
	if err != nil {
		return err
	}

	scaffold.Report(cmd.OutOrStdout(), res, answers.Port)
	return nil
}

// collectAnswers merges flags, config defaults, and interactive answers.
func collectAnswers(in io.Reader, cmd *cobra.Command, args []string, defaults config.Defaults) (*prompt.Answers, error) {
	var given prompt.Answers
	if len(args) == 1 {
		given.ProjectName = args[0]
	}
	if createOpts.packageManager != "" {
		pm, err := pkgmanager.Parse(createOpts.packageManager)
		if err != nil {
			return nil, err
		}
		given.PackageManager = pm
	}
	given.Port = createOpts.port

	if createOpts.yes {
		return acceptDefaults(given, defaults)
	}
	return prompt.Collect(in, cmd.ErrOrStderr(), given, defaults.Port)
}

func acceptDefaults(a prompt.Answers, defaults config.Defaults) (*prompt.Answers, error) {
	if a.ProjectName == "" {
		return nil, fmt.Errorf("--yes requires a project name argument")
	}
	if err := prompt.ValidateName(a.ProjectName); err != nil {
		return nil, err
	}
	if a.PackageManager == "" {
		a.PackageManager = pkgmanager.NPM
		if defaults.PackageManager != "" {
			pm, err := pkgmanager.Parse(defaults.PackageManager)
			if err != nil {
				return nil, fmt.Errorf("config %s: %w", config.KeyPackageManager, err)
			}
			a.PackageManager = pm
		}
	}
	if a.Port == 0 {
		a.Port = defaults.Port
	}
	if err := prompt.ValidatePort(a.Port); err != nil {
		return nil, err
	}
	return &a, nil
}
