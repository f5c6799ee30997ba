package fakeskema_test

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"

	fakeskema "github.com/reoring/fakeskema"
	g "github.com/reoring/fakeskema/dsl"
)

func TestJSONSchema_Projection(t *testing.T) {
	s := g.Schema().
		Field("id", g.NumericString(1, 10)).
		Field("role", g.EnumRef("roles")).Nullable(0.3).
		Field("tags", g.Array(g.Text(2, 4), 1, 3)).
		Field("avatar", g.File("png")).
		Field("meta", g.Object().Field("ok", g.Bool()).MustBuild()).
		MustBuildSchema()

	sch, err := s.JSONSchema(0, fakeskema.References{"roles": []any{"admin", "user"}})
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	if sch.Type != "object" || len(sch.Required) != 5 || sch.Required[0] != "id" {
		t.Fatalf("unexpected root: %+v", sch)
	}
	role := sch.Properties["role"]
	if len(role.OneOf) != 2 || len(role.OneOf[0].Enum) != 2 || role.OneOf[1].Type != "null" {
		t.Fatalf("role should be enum or null: %+v", role)
	}
	tags := sch.Properties["tags"]
	if tags.Type != "array" || *tags.MinItems != 1 || *tags.MaxItems != 3 || *tags.Items.MaxLength != 4 {
		t.Fatalf("unexpected tags: %+v", tags)
	}
	if p := sch.Properties["avatar"].Pattern; p != `\.png$` {
		t.Fatalf("unexpected file pattern %q", p)
	}
	if _, err := json.Marshal(sch); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}

func TestJSONSchema_NullableUsesDefault(t *testing.T) {
	s := fakeskema.Schema{field("b", g.Nullable(g.Bool()))}
	sch, err := s.JSONSchema(0, nil)
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	if sch.Properties["b"].Type != "boolean" {
		t.Fatalf("default 0 can never yield null: %+v", sch.Properties["b"])
	}
	sch, err = s.JSONSchema(0.5, nil)
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	if len(sch.Properties["b"].OneOf) != 2 {
		t.Fatalf("expected nullable projection: %+v", sch.Properties["b"])
	}
}

func TestJSONSchema_Errors(t *testing.T) {
	obj := g.Object().Field("a", g.Bool()).MustBuild()
	cases := []struct {
		name string
		node fakeskema.Node
		want error
		path string
	}{
		{"bogus type", fakeskema.Node{Type: "bogus"}, fakeskema.ErrInvalidType, "/t"},
		{"missing enum ref", g.EnumRef("nope"), fakeskema.ErrReferenceKeyInvalid, "/t"},
		{"empty enum", g.Enum(), fakeskema.ErrInvalidOptions, "/t"},
		{"format object arg", g.Format("{}_{}", obj, g.Enum("pear")), fakeskema.ErrUnsupportedFormatArg, "/t/0"},
		{"format array arg", g.Format("{}", g.Array(g.Bool(), 1, 1)), fakeskema.ErrUnsupportedFormatArg, "/t/0"},
		{"format placeholder mismatch", g.Format("{}", g.Bool(), g.Bool()), fakeskema.ErrInvalidOptions, "/t"},
		{"format arg bad type", g.Format("{}", fakeskema.Node{Type: "bogus"}), fakeskema.ErrInvalidType, "/t/0"},
		{"delimited missing ref", g.Delimited("-", []any{"a"}, g.Ref("nope")), fakeskema.ErrReferenceKeyInvalid, "/t"},
		{"array max below min", g.Array(g.Bool(), 3, 1), fakeskema.ErrInvalidOptions, "/t"},
		{"array negative min", g.Array(g.Bool(), -1, nil), fakeskema.ErrInvalidOptions, "/t"},
		{"bad timestamp", g.Timestamp("yesterday", nil), fakeskema.ErrInvalidOptions, "/t"},
		{"numeric-string missing ref", g.NumericString(g.Ref("nope"), nil), fakeskema.ErrReferenceKeyInvalid, "/t"},
		{"file extension not string", g.File(3), fakeskema.ErrInvalidOptions, "/t"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := fakeskema.Schema{field("t", tc.node)}
			_, genErr := fakeskema.Generate(s, 0, nil)
			_, projErr := s.JSONSchema(0, nil)
			for label, err := range map[string]error{"generate": genErr, "project": projErr} {
				if !errors.Is(err, tc.want) {
					t.Fatalf("%s: expected %v, got %v", label, tc.want, err)
				}
				iss, _ := fakeskema.AsIssues(err)
				if len(iss) == 0 || iss[0].Path != tc.path {
					t.Fatalf("%s: unexpected issues %v", label, iss)
				}
			}
		})
	}
}

func TestJSONSchema_FormatAndDelimitedResolve(t *testing.T) {
	s := fakeskema.Schema{
		field("f", g.Format("{}-{}", g.EnumRef("fruit"), g.Nullable(g.Bool()))),
		field("d", g.Delimited("_", g.Ref("fruit"), []any{"x"})),
	}
	sch, err := s.JSONSchema(0, fakeskema.References{"fruit": []any{"apple"}})
	if err != nil {
		t.Fatalf("json schema: %v", err)
	}
	if sch.Properties["f"].Type != "string" || sch.Properties["d"].Type != "string" {
		t.Fatalf("unexpected projection: %+v %+v", sch.Properties["f"], sch.Properties["d"])
	}
}
