// Where: internal/branding/file.go
// What: Theme overrides file loading and schema validation.
// Why: Let operators version their branding instead of retyping it.
package branding

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/theme.schema.json
var themeSchema []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// LoadThemeFile reads a YAML (or JSON) theme overrides file, validates it
// against the embedded schema, and merges it over the stock descriptor.
// Fields absent from the file keep their defaults.
func LoadThemeFile(path string) (Theme, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("read theme file: %w", err)
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return Theme{}, fmt.Errorf("convert yaml to json: %w", err)
	}

	sch, err := loadSchema()
	if err != nil {
		return Theme{}, err
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return Theme{}, fmt.Errorf("unmarshal json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return Theme{}, fmt.Errorf("theme file %s: %w", path, err)
	}

	theme := DefaultTheme()
	if err := json.Unmarshal(jsonData, &theme); err != nil {
		return Theme{}, fmt.Errorf("decode theme file: %w", err)
	}
	return theme, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("theme.schema.json", bytes.NewReader(themeSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("theme.schema.json")
	})
	return compiledSchema, schemaErr
}
