// Package sink writes generated documents to a destination: a JSON-lines
// stream, a YAML document stream, or a Redis list.
package sink

import (
	"context"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	fakeskema "github.com/reoring/fakeskema"
)

// Writer receives documents one at a time. Close flushes buffered output; it
// does not close the underlying io.Writer or client.
type Writer interface {
	Write(ctx context.Context, doc *fakeskema.Document) error
	Close() error
}

// ErrClosed is returned by Write after Close.
var ErrClosed = errors.New("sink: writer closed")

// JSONLines writes one compact JSON object per line.
type JSONLines struct {
	enc    *json.Encoder
	closed bool
}

// NewJSONLines returns a JSON-lines writer over w.
func NewJSONLines(w io.Writer) *JSONLines {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONLines{enc: enc}
}

func (s *JSONLines) Write(ctx context.Context, doc *fakeskema.Document) error {
	if s.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.enc.Encode(doc); err != nil {
		return fmt.Errorf("sink: encode json: %w", err)
	}
	return nil
}

func (s *JSONLines) Close() error {
	s.closed = true
	return nil
}

// YAMLStream writes documents as a multi-document YAML stream separated by
// "---".
type YAMLStream struct {
	enc    *yaml.Encoder
	closed bool
}

// NewYAMLStream returns a YAML stream writer over w.
func NewYAMLStream(w io.Writer) *YAMLStream {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &YAMLStream{enc: enc}
}

func (s *YAMLStream) Write(ctx context.Context, doc *fakeskema.Document) error {
	if s.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.enc.Encode(doc); err != nil {
		return fmt.Errorf("sink: encode yaml: %w", err)
	}
	return nil
}

func (s *YAMLStream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.enc.Close()
}
