package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/reoring/fakeskema/schemaio"
)

func jsonSchemaCmd(env envConfig, args []string) {
	fs := flag.NewFlagSet("jsonschema", flag.ExitOnError)
	var schemaPath, refsPath, out string
	var nullable float64
	fs.StringVar(&schemaPath, "schema", env.Schema, "schema file (.json, .yaml)")
	fs.StringVar(&refsPath, "refs", env.References, "reference table file")
	fs.Float64Var(&nullable, "nullable", env.Nullable, "default nullable percentage in [0,1]")
	fs.StringVar(&out, "o", "", "output filename (default stdout)")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	var w io.Writer = os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			fatalf("creating output: %v", err)
		}
		defer f.Close()
		w = f
	}
	if err := writeJSONSchema(w, schemaPath, refsPath, nullable); err != nil {
		fatalf("jsonschema: %v", err)
	}
}

func writeJSONSchema(w io.Writer, schemaPath, refsPath string, nullable float64) error {
	schema, err := schemaio.LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	refs, err := schemaio.LoadReferences(refsPath)
	if err != nil {
		return err
	}
	js, err := schema.JSONSchema(nullable, refs)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(js, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
