package schemaio

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

// jsonReader builds ordered values from the go-json token stream.
type jsonReader struct {
	dec *j.Decoder
}

func newJSONReader(r io.Reader) *jsonReader {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonReader{dec: dec}
}

// readDocument reads exactly one JSON value. Empty input decodes to nil.
func (jr *jsonReader) readDocument() (any, error) {
	tok, err := jr.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("schemaio: json: %w", err)
	}
	v, err := jr.fromToken(tok)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("schemaio: json: %w", err)
	}
	if _, err := jr.dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("schemaio: trailing data after JSON value")
	}
	return v, nil
}

func (jr *jsonReader) value() (any, error) {
	tok, err := jr.dec.Token()
	if err != nil {
		return nil, err
	}
	return jr.fromToken(tok)
}

func (jr *jsonReader) fromToken(tok any) (any, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			return jr.object()
		case '[':
			return jr.array()
		}
		return nil, fmt.Errorf("schemaio: unexpected delimiter %q", rune(v))
	case string, bool, nil:
		return v, nil
	case j.Number:
		return number(string(v))
	case float64:
		return v, nil
	}
	return nil, fmt.Errorf("schemaio: unexpected JSON token %T", tok)
}

func (jr *jsonReader) object() (any, error) {
	o := newObject(4)
	for jr.dec.More() {
		tok, err := jr.dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("schemaio: object key must be a string, got %T", tok)
		}
		if _, dup := o.get(key); dup {
			return nil, &DuplicateKeyError{Key: key}
		}
		v, err := jr.value()
		if err != nil {
			return nil, err
		}
		o.set(key, v)
	}
	// consume '}'
	if _, err := jr.dec.Token(); err != nil {
		return nil, err
	}
	return o, nil
}

func (jr *jsonReader) array() (any, error) {
	arr := []any{}
	for jr.dec.More() {
		v, err := jr.value()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
	// consume ']'
	if _, err := jr.dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// number keeps integers as int64 and everything else as float64.
func number(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("schemaio: invalid number %q: %w", s, err)
	}
	return f, nil
}
