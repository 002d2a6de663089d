package preset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/preset.schema.json
var schemaBytes []byte

var printer = message.NewPrinter(language.English)

// presetSchema compiles the embedded schema on first use.
var presetSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
	if err != nil {
		return nil, fmt.Errorf("unmarshaling schema JSON: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("preset.schema.json", doc); err != nil {
		return nil, fmt.Errorf("adding schema resource: %w", err)
	}
	sch, err := c.Compile("preset.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}
	return sch, nil
})

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/generator/command")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Validate validates raw YAML bytes against the preset JSON schema.
// The error return is for parse or schema compilation failures.
// Validation issues are returned in the ValidationResult.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := presetSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if raw == nil {
		return &ValidationResult{Issues: []ValidationIssue{{Message: "preset is empty"}}}, nil
	}

	// Round-trip through JSON so numbers arrive as json.Number.
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return &ValidationResult{Valid: true}, nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	return &ValidationResult{
		Valid:  false,
		Issues: leafIssues(validationErr),
	}, nil
}

// leafIssues flattens ve into its leaf errors, skipping $ref wrappers and
// repeats.
func leafIssues(ve *jsonschema.ValidationError) []ValidationIssue {
	var out []ValidationIssue
	seen := make(map[ValidationIssue]bool)

	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		for _, cause := range e.Causes {
			walk(cause)
		}
		if len(e.Causes) > 0 || e.ErrorKind == nil {
			return
		}
		kw := e.ErrorKind.KeywordPath()
		if len(kw) == 0 || kw[len(kw)-1] == "$ref" {
			return
		}
		issue := ValidationIssue{
			Path:    instancePath(e.InstanceLocation),
			Message: e.ErrorKind.LocalizedString(printer),
			Keyword: kw[len(kw)-1],
		}
		if !seen[issue] {
			seen[issue] = true
			out = append(out, issue)
		}
	}
	walk(ve)

	if len(out) == 0 {
		return []ValidationIssue{{Message: ve.Error()}}
	}
	return out
}

func instancePath(loc []string) string {
	if len(loc) == 0 {
		return ""
	}
	return "/" + strings.Join(loc, "/")
}
