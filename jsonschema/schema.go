package jsonschema

// Schema is a minimal JSON Schema representation describing generated
// documents. Keep this struct small and extend incrementally.
type Schema struct {
	// Core
	Schema string `json:"$schema,omitempty"`
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
	Enum   []any  `json:"enum,omitempty"`

	// String
	MinLength *int   `json:"minLength,omitempty"`
	MaxLength *int   `json:"maxLength,omitempty"`
	Pattern   string `json:"pattern,omitempty"`

	// Number
	Minimum *int64 `json:"minimum,omitempty"`
	Maximum *int64 `json:"maximum,omitempty"`

	// Object
	Properties           map[string]*Schema `json:"properties,omitempty"`
	Required             []string           `json:"required,omitempty"`
	AdditionalProperties any                `json:"additionalProperties,omitempty"`

	// Array
	Items    *Schema `json:"items,omitempty"`
	MinItems *int    `json:"minItems,omitempty"`
	MaxItems *int    `json:"maxItems,omitempty"`

	// Union
	OneOf []*Schema `json:"oneOf,omitempty"`
}

// Draft is the dialect URI set on root schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

// Null is the schema of a JSON null.
func Null() *Schema { return &Schema{Type: "null"} }

// OrNull wraps s so that null is also accepted.
func OrNull(s *Schema) *Schema { return &Schema{OneOf: []*Schema{s, Null()}} }
