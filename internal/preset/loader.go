package preset

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"
)

// DefaultName is the built-in preset used when none is configured.
const DefaultName = "vue"

//go:embed presets/*.yaml
var builtinFS embed.FS

// Builtin returns the raw YAML of a built-in preset.
func Builtin(name string) ([]byte, error) {
	data, err := builtinFS.ReadFile("presets/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("built-in preset %q not found: %w", name, err)
	}
	return data, nil
}

// Default returns the parsed built-in "vue" preset.
func Default() (*Preset, error) {
	data, err := Builtin(DefaultName)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Resolve loads ref as a built-in name when it has no path separators or
// extension, and as a file otherwise. An empty ref yields the default preset.
func Resolve(ref string) (*Preset, error) {
	if ref == "" {
		return Default()
	}
	if !strings.ContainsAny(ref, `/\`) && filepath.Ext(ref) == "" {
		data, err := Builtin(ref)
		if err != nil {
			return nil, err
		}
		return Parse(data)
	}
	return Load(ref)
}

// Load reads, validates, and parses a preset file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", path, err)
	}
	return p, nil
}

// Parse validates data against the schema and decodes it.
func Parse(data []byte) (*Preset, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		msgs := make([]string, len(result.Issues))
		for i, issue := range result.Issues {
			msgs[i] = issue.String()
		}
		return nil, fmt.Errorf("invalid preset:\n  %s", strings.Join(msgs, "\n  "))
	}

	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing preset: %w", err)
	}
	return &p, nil
}

// GeneratorArgs renders the generator arguments with data.
func (p *Preset) GeneratorArgs(data TemplateData) ([]string, error) {
	args := make([]string, 0, len(p.Generator.Args))
	for i, a := range p.Generator.Args {
		tmpl, err := template.New(fmt.Sprintf("arg%d", i)).Option("missingkey=error").Parse(a)
		if err != nil {
			return nil, fmt.Errorf("parsing generator arg %q: %w", a, err)
		}
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering generator arg %q: %w", a, err)
		}
		args = append(args, buf.String())
	}
	return args, nil
}

// Marshal returns p as YAML.
func (p *Preset) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
