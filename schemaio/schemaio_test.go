package schemaio_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	fakeskema "github.com/reoring/fakeskema"
	"github.com/reoring/fakeskema/schemaio"
)

const userJSON = `{
  "zeta": {"type": "text", "options": {"min": 5, "max": 5}},
  "user": {
    "type": "object",
    "properties": [
      {"fieldName": "id", "type": "numeric-string", "options": {"min": 7, "max": 7}},
      {"fieldName": "role", "type": "enum", "options": "#ref.roles"},
      {"fieldName": "tags", "type": "array", "options": {"min": 2, "max": 2, "schema": {"type": "enum", "options": ["t"]}}}
    ]
  },
  "alpha": {"type": "boolean", "isNullable": true, "nullablePercentage": 1}
}`

const userYAML = `
zeta:
  type: text
  options: {min: 5, max: 5}
user:
  type: object
  properties:
    - fieldName: id
      type: numeric-string
      options: {min: 7, max: 7}
    - fieldName: role
      type: enum
      options: "#ref.roles"
    - fieldName: tags
      type: array
      options:
        min: 2
        max: 2
        schema: {type: enum, options: [t]}
alpha:
  type: boolean
  isNullable: true
  nullablePercentage: 1
`

func TestReadSchema_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := schemaio.ReadSchema(strings.NewReader(userJSON), schemaio.FormatJSON)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	fromYAML, err := schemaio.ReadSchema(strings.NewReader(userYAML), schemaio.FormatYAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !reflect.DeepEqual(fromJSON, fromYAML) {
		t.Fatalf("schemas differ:\njson=%#v\nyaml=%#v", fromJSON, fromYAML)
	}

	wantOrder := []string{"zeta", "user", "alpha"}
	for i, f := range fromJSON {
		if f.Name != wantOrder[i] {
			t.Fatalf("field %d = %q, want %q", i, f.Name, wantOrder[i])
		}
	}
	user := fromJSON[1].Node
	obj, ok := user.Options.(fakeskema.ObjectOptions)
	if !ok || len(obj.Properties) != 3 {
		t.Fatalf("user options = %#v", user.Options)
	}
	if obj.Properties[1].Node.Options.(fakeskema.EnumOptions).Values != "#ref.roles" {
		t.Fatalf("enum ref not kept: %#v", obj.Properties[1].Node.Options)
	}
	arr := obj.Properties[2].Node.Options.(fakeskema.ArrayOptions)
	if arr.Element == nil || arr.Element.Type != fakeskema.KindEnum {
		t.Fatalf("array element = %#v", arr.Element)
	}
	alpha := fromJSON[2].Node
	if !alpha.Nullable || alpha.NullablePercentage == nil || *alpha.NullablePercentage != 1 {
		t.Fatalf("alpha nullability = %v %v", alpha.Nullable, alpha.NullablePercentage)
	}
}

func TestReadSchema_AutoDetect(t *testing.T) {
	for name, src := range map[string]string{"json": userJSON, "yaml": userYAML} {
		s, err := schemaio.ReadSchema(strings.NewReader(src), schemaio.FormatAuto)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(s) != 3 {
			t.Fatalf("%s: got %d fields", name, len(s))
		}
	}
}

func TestReadSchema_GeneratesDocument(t *testing.T) {
	s, err := schemaio.ReadSchema(strings.NewReader(userYAML), schemaio.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	refs, err := schemaio.ReadReferences(strings.NewReader(`{"roles": ["admin"]}`), schemaio.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := fakeskema.Generate(s, 0, refs, fakeskema.WithSeed(1))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	out, err := doc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	if !strings.HasPrefix(got, `{"zeta":"`) || !strings.HasSuffix(got, `,"alpha":null}`) {
		t.Fatalf("unexpected document %s", got)
	}
	if !strings.Contains(got, `"user":{"id":"7","role":"admin","tags":["t","t"]}`) {
		t.Fatalf("unexpected user %s", got)
	}
}

func TestReadSchema_FormatString(t *testing.T) {
	src := `{"test": {"type": "format-string", "options": {"string": "{}_{}", "properties": [
		{"type": "enum", "options": ["apple"]},
		{"type": "enum", "options": ["pear"]}
	]}}}`
	s, err := schemaio.ReadSchema(strings.NewReader(src), schemaio.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := fakeskema.Generate(s, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := doc.Get("test"); v != "apple_pear" {
		t.Fatalf("test = %v", v)
	}
}

func TestReadSchema_FormatStringRejectsObjectArg(t *testing.T) {
	src := `{"test": {"type": "format-string", "options": {"string": "{}_{}", "properties": [
		{"type": "object", "options": {"properties": [{"fieldName": "test1", "type": "text"}]}},
		{"type": "enum", "options": ["pear"]}
	]}}}`
	s, err := schemaio.ReadSchema(strings.NewReader(src), schemaio.FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	_, err = fakeskema.Generate(s, 0, nil)
	if !errors.Is(err, fakeskema.ErrUnsupportedFormatArg) {
		t.Fatalf("want unsupported format arg, got %v", err)
	}
}

func TestReadSchema_NumberReferences(t *testing.T) {
	s, err := schemaio.ReadSchema(strings.NewReader(`
n:
  type: number
  options: {min: "#ref.low", max: "#ref.high"}
`), schemaio.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	refs, err := schemaio.ReadReferences(strings.NewReader("low: 42\nhigh: 42\n"), schemaio.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := fakeskema.Generate(s, 0, refs)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := doc.Get("n"); v != int64(42) {
		t.Fatalf("n = %#v", v)
	}
}

func TestReadSchema_FileExtension(t *testing.T) {
	s, err := schemaio.ReadSchema(strings.NewReader(`{"test": {"type": "file", "options": {"extension": "mp4"}}}`), schemaio.FormatAuto)
	if err != nil {
		t.Fatal(err)
	}
	doc, err := fakeskema.Generate(s, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := doc.Get("test")
	if str, ok := v.(string); !ok || !strings.HasSuffix(str, ".mp4") {
		t.Fatalf("test = %#v", v)
	}
}

func TestReadSchema_UnknownTypeIsLazy(t *testing.T) {
	s, err := schemaio.ReadSchema(strings.NewReader(`{"x": {"type": "hologram"}}`), schemaio.FormatJSON)
	if err != nil {
		t.Fatalf("load should not validate types: %v", err)
	}
	_, err = fakeskema.Generate(s, 0, nil)
	if !fakeskema.HasCode(err, fakeskema.CodeInvalidType) {
		t.Fatalf("want invalid_type, got %v", err)
	}
}

func TestReadSchema_DuplicateKeys(t *testing.T) {
	cases := map[string]struct {
		src string
		f   schemaio.Format
	}{
		"json":       {`{"a": {"type": "text"}, "a": {"type": "url"}}`, schemaio.FormatJSON},
		"yaml":       {"a: {type: text}\na: {type: url}\n", schemaio.FormatYAML},
		"field list": {`{"o": {"type": "object", "properties": [{"fieldName": "k", "type": "url"}, {"fieldName": "k", "type": "url"}]}}`, schemaio.FormatJSON},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := schemaio.ReadSchema(strings.NewReader(tc.src), tc.f)
			var dup *schemaio.DuplicateKeyError
			if !errors.As(err, &dup) {
				t.Fatalf("want DuplicateKeyError, got %v", err)
			}
		})
	}

	_, err := schemaio.ReadSchema(strings.NewReader("a: {type: text}\na: {type: url}\n"), schemaio.FormatYAML)
	var dup *schemaio.DuplicateKeyError
	if errors.As(err, &dup) && (dup.Line != 2 || dup.FirstLine != 1) {
		t.Fatalf("positions = %+v", dup)
	}
}

func TestReadSchema_StructuralErrors(t *testing.T) {
	cases := map[string]string{
		"root list":      `[]`,
		"node scalar":    `{"a": 3}`,
		"type number":    `{"a": {"type": 3}}`,
		"nullable text":  `{"a": {"type": "url", "isNullable": "yes"}}`,
		"pct string":     `{"a": {"type": "url", "nullablePercentage": "half"}}`,
		"no field name":  `{"o": {"type": "object", "properties": [{"type": "url"}]}}`,
		"trailing":       `{"a": {"type": "url"}} {}`,
		"truncated":      `{"a": {"type": "url"`,
		"parts not list": `{"d": {"type": "delimited-string", "options": {"arrayOfOptions": "x"}}}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := schemaio.ReadSchema(strings.NewReader(src), schemaio.FormatJSON); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestReadReferences_Empty(t *testing.T) {
	refs, err := schemaio.ReadReferences(strings.NewReader(""), schemaio.FormatYAML)
	if err != nil || len(refs) != 0 {
		t.Fatalf("refs=%v err=%v", refs, err)
	}
	refs, err = schemaio.LoadReferences("")
	if err != nil || refs == nil {
		t.Fatalf("refs=%v err=%v", refs, err)
	}
}

func TestLoadSchema_ByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schema.yml")
	if err := os.WriteFile(path, []byte(userYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := schemaio.LoadSchema(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 3 {
		t.Fatalf("got %d fields", len(s))
	}
	if _, err := schemaio.LoadSchema(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if got := schemaio.FormatFromPath("x.JSON"); got != schemaio.FormatJSON {
		t.Fatalf("FormatFromPath = %v", got)
	}
}
