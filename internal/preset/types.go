package preset

// Preset is a scaffold recipe.
type Preset struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Generator   Generator `yaml:"generator"`
	Config      Config    `yaml:"config,omitempty"`
	Cleanup     Cleanup   `yaml:"cleanup,omitempty"`
	DevScript   string    `yaml:"dev_script,omitempty"`
}

// Generator is the external command that creates the project tree. Args are
// Go templates rendered with TemplateData.
type Generator struct {
	Command string   `yaml:"command"`
	Args    []string `yaml:"args,omitempty"`
}

// Config locates the build-tool config file and its insertion anchor.
type Config struct {
	Candidates []string `yaml:"candidates,omitempty"`
	Anchor     string   `yaml:"anchor,omitempty"`
}

// Cleanup lists the boilerplate removed after install. Paths are relative to
// the project directory.
type Cleanup struct {
	Empty         []string       `yaml:"empty,omitempty"`
	Prune         *Prune         `yaml:"prune,omitempty"`
	RootComponent *RootComponent `yaml:"root_component,omitempty"`
	EntryScript   *EntryScript   `yaml:"entry_script,omitempty"`
}

// Prune removes every entry of Dir except Keep.
type Prune struct {
	Dir  string   `yaml:"dir"`
	Keep []string `yaml:"keep,omitempty"`
}

// RootComponent is overwritten with Content.
type RootComponent struct {
	Path    string `yaml:"path"`
	Content string `yaml:"content"`
}

// EntryScript has every line containing DropImport removed.
type EntryScript struct {
	Path       string `yaml:"path"`
	DropImport string `yaml:"drop_import"`
}

// TemplateData is the data generator arguments are rendered with.
type TemplateData struct {
	ProjectName    string
	PackageManager string
	Port           int
}
