package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/initvue/init-vue/internal/cleanup"
	"github.com/initvue/init-vue/internal/preset"
	"github.com/initvue/init-vue/internal/progress"
	"github.com/initvue/init-vue/internal/project"
	"github.com/initvue/init-vue/internal/prompt"
	"github.com/initvue/init-vue/internal/runtime"
	"github.com/initvue/init-vue/internal/vitecfg"
	"github.com/rs/zerolog"
)

// ErrProjectExists is returned when the target directory is already populated.
var ErrProjectExists = errors.New("project directory already exists and is not empty")

// ErrUnsafePath is returned when a preset cleanup path does not name an entry
// strictly inside the project directory.
var ErrUnsafePath = errors.New("cleanup path must stay inside the project directory")

// taskCount is the number of progress ticks: generate, configure, install, clean.
const taskCount = 4

// PortChecker reports whether a port is free and finds a free one nearby.
type PortChecker interface {
	IsPortAvailable(port int) bool
	FindAvailablePort(start, end int) (int, error)
}

// portSearchSpan bounds the search for an alternative dev-server port.
const portSearchSpan = 100

// Options configures a scaffold run.
type Options struct {
	// WorkDir is the parent directory the project is created in.
	WorkDir string
	Answers prompt.Answers
	Preset  *preset.Preset
	Runner  runtime.Runner
	Log     zerolog.Logger
	// Progress defaults to a no-op reporter.
	Progress progress.Reporter
	// Ports, when set, is consulted to warn about a busy dev-server port.
	Ports       PortChecker
	SkipInstall bool
}

// Result holds the outcome of a scaffold run.
type Result struct {
	ProjectDir   string
	ConfigPath   string
	ConfigChange vitecfg.Change
	Installed    bool
	// Cleaned lists the project-relative paths touched by cleanup.
	Cleaned    []string
	Warnings   []string
	DevCommand string
	// Scripts lists package.json scripts when the dev script is missing.
	Scripts []string
}

type run struct {
	opts   Options
	log    zerolog.Logger
	result *Result
}

// Run executes the scaffold flow.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Preset == nil {
		return nil, fmt.Errorf("no preset given")
	}
	if opts.Runner == nil {
		return nil, fmt.Errorf("no command runner given")
	}
	if opts.Progress == nil {
		opts.Progress = progress.Nop{}
	}
	if err := prompt.ValidateName(opts.Answers.ProjectName); err != nil {
		return nil, err
	}
	if err := prompt.ValidatePort(opts.Answers.Port); err != nil {
		return nil, err
	}
	if !opts.Answers.PackageManager.Valid() {
		return nil, fmt.Errorf("unsupported package manager %q", opts.Answers.PackageManager)
	}

	if err := checkCleanupPaths(opts.Preset.Cleanup); err != nil {
		return nil, err
	}

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	projectDir := filepath.Join(workDir, opts.Answers.ProjectName)
	if err := ensureVacant(projectDir); err != nil {
		return nil, err
	}

	r := &run{
		opts: opts,
		log:  opts.Log.With().Str("project", opts.Answers.ProjectName).Logger(),
		result: &Result{
			ProjectDir: projectDir,
		},
	}

	opts.Progress.Start(taskCount)
	defer opts.Progress.Stop()

	if err := r.generate(ctx, workDir); err != nil {
		return nil, fmt.Errorf("project initialization failed: %w", err)
	}
	opts.Progress.Advance("project created")

	r.configure()
	opts.Progress.Advance("port configured")

	if err := r.install(ctx); err != nil {
		return nil, fmt.Errorf("dependency install failed: %w", err)
	}
	opts.Progress.Advance("dependencies installed")

	if err := r.clean(); err != nil {
		return nil, fmt.Errorf("cleaning boilerplate: %w", err)
	}
	opts.Progress.Advance("boilerplate removed")

	r.describeDevCommand()
	return r.result, nil
}

func ensureVacant(dir string) error {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s", ErrProjectExists, dir)
	}
	return nil
}

// projectPath joins rel onto projectDir. rel must be relative, must not
// climb out, and must not resolve to projectDir itself.
func projectPath(projectDir, rel string) (string, error) {
	if !filepath.IsLocal(rel) || filepath.Clean(rel) == "." {
		return "", fmt.Errorf("%w: %q", ErrUnsafePath, rel)
	}
	return filepath.Join(projectDir, rel), nil
}

func checkCleanupPaths(c preset.Cleanup) error {
	paths := append([]string(nil), c.Empty...)
	if c.Prune != nil {
		paths = append(paths, c.Prune.Dir)
	}
	if c.RootComponent != nil {
		paths = append(paths, c.RootComponent.Path)
	}
	if c.EntryScript != nil {
		paths = append(paths, c.EntryScript.Path)
	}
	for _, rel := range paths {
		if _, err := projectPath(".", rel); err != nil {
			return err
		}
	}
	return nil
}

func (r *run) warn(msg string, err error) {
	ev := r.log.Warn()
	if err != nil {
		ev = ev.Err(err)
		msg = fmt.Sprintf("%s: %v", msg, err)
	}
	ev.Msg(msg)
	r.result.Warnings = append(r.result.Warnings, msg)
}

func (r *run) generate(ctx context.Context, workDir string) error {
	p := r.opts.Preset
	args, err := p.GeneratorArgs(preset.TemplateData{
		ProjectName:    r.opts.Answers.ProjectName,
		PackageManager: r.opts.Answers.PackageManager.String(),
		Port:           r.opts.Answers.Port,
	})
	if err != nil {
		return err
	}

	r.log.Info().Str("command", runtime.FormatCommand(p.Generator.Command, args...)).Msg("creating project")
	if err := r.opts.Runner.Run(ctx, workDir, p.Generator.Command, args...); err != nil {
		return err
	}

	if info, err := os.Stat(r.result.ProjectDir); err != nil || !info.IsDir() {
		return fmt.Errorf("generator did not create %s", r.result.ProjectDir)
	}
	return nil
}

// configure patches the dev-server port. Problems are warnings, never fatal.
func (r *run) configure() {
	port := r.opts.Answers.Port
	if r.opts.Ports != nil && !r.opts.Ports.IsPortAvailable(port) {
		r.warn(r.busyPortMessage(port), nil)
	}

	cfg := r.opts.Preset.Config
	path, ok := vitecfg.FindConfig(r.result.ProjectDir, cfg.Candidates)
	if !ok {
		r.warn("build config file not found, port not configured", nil)
		return
	}

	change, err := vitecfg.PatchFile(path, port, cfg.Anchor)
	if err != nil {
		r.warn("could not set the dev server port", err)
		return
	}
	r.result.ConfigPath = path
	r.result.ConfigChange = change
	r.log.Info().Str("file", filepath.Base(path)).Int("port", port).Str("change", change.String()).Msg("configured dev server port")
}

func (r *run) busyPortMessage(port int) string {
	msg := fmt.Sprintf("port %d is currently in use; the dev server may pick another one", port)
	end := min(port+portSearchSpan, 65535)
	if port >= end {
		return msg
	}
	free, err := r.opts.Ports.FindAvailablePort(port+1, end)
	if err != nil {
		return msg
	}
	return fmt.Sprintf("%s (port %d is free)", msg, free)
}

func (r *run) install(ctx context.Context) error {
	if r.opts.SkipInstall {
		r.log.Info().Msg("skipping dependency install")
		return nil
	}
	pm := r.opts.Answers.PackageManager
	r.log.Info().Str("package_manager", pm.String()).Msg("installing dependencies")
	if err := r.opts.Runner.Run(ctx, r.result.ProjectDir, pm.String(), pm.InstallArgs()...); err != nil {
		return err
	}
	r.result.Installed = true
	return nil
}

func (r *run) clean() error {
	c := r.opts.Preset.Cleanup
	dir := r.result.ProjectDir

	for _, rel := range c.Empty {
		path, err := projectPath(dir, rel)
		if err != nil {
			return err
		}
		existed, err := cleanup.EmptyDir(path)
		if err != nil {
			return err
		}
		if existed {
			r.touched(rel, "emptied directory")
		}
	}

	if c.Prune != nil {
		path, err := projectPath(dir, c.Prune.Dir)
		if err != nil {
			return err
		}
		existed, err := cleanup.PruneExcept(path, c.Prune.Keep...)
		if err != nil {
			return err
		}
		if existed {
			r.touched(c.Prune.Dir, "pruned directory")
		}
	}

	if c.RootComponent != nil {
		path, err := projectPath(dir, c.RootComponent.Path)
		if err != nil {
			return err
		}
		if err := cleanup.WriteFile(path, c.RootComponent.Content); err != nil {
			return err
		}
		r.touched(c.RootComponent.Path, "reset root component")
	}

	if c.EntryScript != nil {
		path, err := projectPath(dir, c.EntryScript.Path)
		if err != nil {
			return err
		}
		removed, err := cleanup.DropLines(path, c.EntryScript.DropImport)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			r.warn(fmt.Sprintf("entry script %s not found", c.EntryScript.Path), nil)
		case err != nil:
			return err
		case removed > 0:
			r.touched(c.EntryScript.Path, "removed stylesheet import")
		}
	}
	return nil
}

func (r *run) touched(rel, what string) {
	r.result.Cleaned = append(r.result.Cleaned, rel)
	r.log.Debug().Str("path", rel).Msg(what)
}

// describeDevCommand picks the start command shown in the report.
func (r *run) describeDevCommand() {
	script := r.opts.Preset.DevScript
	if script == "" {
		script = "dev"
	}
	r.result.DevCommand = r.opts.Answers.PackageManager.RunScriptCommand(script)

	pkg, err := project.ReadPackageJSON(r.result.ProjectDir)
	if err != nil {
		r.log.Debug().Err(err).Msg("package.json not readable")
		return
	}
	if !pkg.HasScript(script) {
		r.result.Scripts = pkg.ScriptNames()
		r.warn(fmt.Sprintf("package.json has no %q script", script), nil)
	}
}
