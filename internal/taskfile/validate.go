package taskfile

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var embeddedSchema string

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath overrides the embedded schema when set.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// Validate validates the store against the task-store schema.
// When the configured override schema cannot be used, validation falls back
// to the embedded schema, and to minimal structural checks as a last
// resort. Duplicate ids are reported as warnings in every mode since the
// store tolerates them (lookup takes the first match).
func (f *File) Validate(opts ValidationOptions) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	f.warnDuplicateIDs(result)

	schema, warnings := compileSchema(opts.SchemaPath)
	result.Warnings = append(result.Warnings, warnings...)
	if schema == nil {
		f.validateMinimal(result)
		return result
	}

	result.UsedSchema = true
	if err := validateAgainstSchema(f, schema); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}

	return result
}

// compileSchema compiles the override schema when a path is given, falling
// back to the embedded schema. A nil schema means neither could be used.
func compileSchema(overridePath string) (*jsonschema.Schema, []string) {
	var warnings []string

	if overridePath != "" {
		absPath, err := filepath.Abs(overridePath)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("invalid schema path: %v", err))
		} else if _, err := os.Stat(absPath); err != nil {
			warnings = append(warnings, fmt.Sprintf("schema file not usable: %v", err))
		} else {
			compiler := jsonschema.NewCompiler()
			compiler.AssertFormat = true
			schema, err := compiler.Compile(absPath)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("invalid schema file: %v", err))
			} else {
				return schema, warnings
			}
		}
		warnings = append(warnings, "falling back to embedded schema")
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("tasks.schema.json", strings.NewReader(embeddedSchema)); err != nil {
		warnings = append(warnings, fmt.Sprintf("embedded schema unavailable: %v", err))
		return nil, warnings
	}
	schema, err := compiler.Compile("tasks.schema.json")
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("embedded schema unavailable: %v", err))
		return nil, warnings
	}
	return schema, warnings
}

// validateAgainstSchema round-trips the store through JSON so the schema
// sees the document shape, not Go types.
func validateAgainstSchema(f *File, schema *jsonschema.Schema) error {
	fileData, err := json.Marshal(f)
	if err != nil {
		return &ValidationError{Err: fmt.Errorf("marshal store for validation: %w", err)}
	}

	var fileObj interface{}
	if err := json.Unmarshal(fileData, &fileObj); err != nil {
		return &ValidationError{Err: fmt.Errorf("unmarshal store for validation: %w", err)}
	}

	return schema.Validate(fileObj)
}

// validateMinimal performs minimal structural checks without JSON Schema.
func (f *File) validateMinimal(result *ValidationResult) {
	if f.Tasks == nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Path: "tasks",
			Err:  fmt.Errorf("missing required field"),
		})
		return
	}

	for i, task := range f.Tasks {
		if task.Title == "" {
			result.Valid = false
			result.Errors = append(result.Errors, &ValidationError{
				Path: fmt.Sprintf("tasks[%d].title", i),
				Err:  fmt.Errorf("missing required field"),
			})
		}
	}
}

// warnDuplicateIDs records a warning for every id that appears more than once.
func (f *File) warnDuplicateIDs(result *ValidationResult) {
	seen := make(map[int]int)
	for _, t := range f.Tasks {
		seen[t.ID]++
	}
	for i, t := range f.Tasks {
		if seen[t.ID] > 1 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("tasks[%d]: duplicate id %d (lookup returns the first match)", i, t.ID))
			seen[t.ID] = 0 // warn once per id, at its first occurrence
		}
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	if err == nil {
		return
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}

	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath converts a JSON Pointer (RFC 6901) to a dot-notation
// path, e.g. "/tasks/0/title" becomes "tasks[0].title".
func jsonPointerToPath(ptr string) string {
	if ptr == "" {
		return ""
	}
	if strings.HasPrefix(ptr, "#") {
		ptr = strings.TrimPrefix(ptr, "#")
	}
	if strings.HasPrefix(ptr, "/") {
		ptr = ptr[1:]
	}
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}
