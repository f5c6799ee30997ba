// Package schemaio reads fakeskema schemas and reference tables from JSON or
// YAML. Field order is preserved and duplicate keys are rejected; node types
// and options are not validated here, the interpreter reports those.
//
// Schema files use this layout:
//
//	user:
//	  type: object
//	  properties:
//	    - fieldName: id
//	      type: numeric-string
//	      options: {min: 1, max: 99999}
//	    - fieldName: role
//	      type: enum
//	      options: "#ref.roles"
//	      isNullable: true
//	      nullablePercentage: 0.2
package schemaio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	fakeskema "github.com/reoring/fakeskema"
)

// Format selects the input syntax.
type Format int

const (
	FormatAuto Format = iota // Sniff: '{' or '[' means JSON, anything else YAML.
	FormatJSON
	FormatYAML
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// ReadSchema decodes a schema from r.
func ReadSchema(r io.Reader, f Format) (fakeskema.Schema, error) {
	root, err := decode(r, f)
	if err != nil {
		return nil, err
	}
	return toSchema(root)
}

// ReadReferences decodes a reference table from r. Empty input yields an
// empty table.
func ReadReferences(r io.Reader, f Format) (fakeskema.References, error) {
	root, err := decode(r, f)
	if err != nil {
		return nil, err
	}
	return toReferences(root)
}

// LoadSchema reads a schema file.
func LoadSchema(path string) (fakeskema.Schema, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schemaio: open schema: %w", err)
	}
	defer fh.Close()
	s, err := ReadSchema(fh, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadReferences reads a reference file. An empty path yields an empty table.
func LoadReferences(path string) (fakeskema.References, error) {
	if path == "" {
		return fakeskema.References{}, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schemaio: open references: %w", err)
	}
	defer fh.Close()
	refs, err := ReadReferences(fh, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return refs, nil
}

func decode(r io.Reader, f Format) (any, error) {
	if f == FormatAuto {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("schemaio: read: %w", err)
		}
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 {
			return nil, nil
		}
		if trimmed[0] == '{' || trimmed[0] == '[' {
			f = FormatJSON
		} else {
			f = FormatYAML
		}
		r = bytes.NewReader(data)
	}
	switch f {
	case FormatJSON:
		return newJSONReader(r).readDocument()
	case FormatYAML:
		return newYAMLReader(r).readDocument()
	}
	return nil, fmt.Errorf("schemaio: unknown format %d", f)
}
