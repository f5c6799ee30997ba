package schemaio

import (
	"fmt"

	fakeskema "github.com/reoring/fakeskema"
)

// Keys of the schema file format.
const (
	keyType               = "type"
	keyIsNullable         = "isNullable"
	keyNullablePercentage = "nullablePercentage"
	keyOptions            = "options"
	keyProperties         = "properties"
	keyFieldName          = "fieldName"
	keySchema             = "schema"
	keyMin                = "min"
	keyMax                = "max"
	keyDelimiter          = "delimiter"
	keyArrayOfOptions     = "arrayOfOptions"
	keyDateFrom           = "dateFrom"
	keyDateTo             = "dateTo"
	keyExtension          = "extension"
	keyString             = "string"
)

// toSchema converts a decoded root mapping (field name -> node) into a Schema.
// Only the structure is checked; unknown types are kept for the walk to reject.
func toSchema(root any) (fakeskema.Schema, error) {
	o, ok := root.(*object)
	if !ok {
		return nil, fmt.Errorf("schemaio: schema root must be a mapping, got %s", describe(root))
	}
	out := make(fakeskema.Schema, 0, len(o.keys))
	for _, name := range o.keys {
		n, err := toNode(o.values[name], "/"+name)
		if err != nil {
			return nil, err
		}
		out = append(out, fakeskema.Field{Name: name, Node: n})
	}
	return out, nil
}

func toNode(raw any, path string) (fakeskema.Node, error) {
	o, ok := raw.(*object)
	if !ok {
		return fakeskema.Node{}, fmt.Errorf("schemaio: %s: node must be a mapping, got %s", path, describe(raw))
	}
	var n fakeskema.Node
	if v, ok := o.get(keyType); ok {
		s, isStr := v.(string)
		if !isStr {
			return n, fmt.Errorf("schemaio: %s: type must be a string, got %s", path, describe(v))
		}
		n.Type = fakeskema.Kind(s)
	}
	if v, ok := o.get(keyIsNullable); ok && v != nil {
		b, isBool := v.(bool)
		if !isBool {
			return n, fmt.Errorf("schemaio: %s: isNullable must be a boolean, got %s", path, describe(v))
		}
		n.Nullable = b
	}
	if v, ok := o.get(keyNullablePercentage); ok && v != nil {
		f, isNum := toFloat(v)
		if !isNum {
			return n, fmt.Errorf("schemaio: %s: nullablePercentage must be a number, got %s", path, describe(v))
		}
		n.NullablePercentage = &f
	}
	opts, err := toOptions(n.Type, o, path)
	if err != nil {
		return n, err
	}
	n.Options = opts
	return n, nil
}

func toOptions(kind fakeskema.Kind, node *object, path string) (fakeskema.Options, error) {
	raw, _ := node.get(keyOptions)
	opts, _ := raw.(*object)
	get := func(k string) any {
		if opts == nil {
			return nil
		}
		v, _ := opts.get(k)
		return plain(v)
	}

	switch kind {
	case fakeskema.KindObject:
		props, ok := node.get(keyProperties)
		if !ok && opts != nil {
			props, ok = opts.get(keyProperties)
		}
		if !ok {
			return nil, nil
		}
		fields, err := toFields(props, path)
		if err != nil {
			return nil, err
		}
		return fakeskema.ObjectOptions{Properties: fields}, nil
	case fakeskema.KindArray:
		if opts == nil {
			return nil, nil
		}
		out := fakeskema.ArrayOptions{Min: get(keyMin), Max: get(keyMax)}
		if elem, ok := opts.get(keySchema); ok && elem != nil {
			en, err := toNode(elem, path+"/"+keySchema)
			if err != nil {
				return nil, err
			}
			out.Element = &en
		}
		return out, nil
	case fakeskema.KindDelimitedString:
		if opts == nil {
			return nil, nil
		}
		out := fakeskema.DelimitedOptions{}
		if d, ok := get(keyDelimiter).(string); ok {
			out.Delimiter = d
		}
		switch parts := get(keyArrayOfOptions).(type) {
		case []any:
			out.Parts = parts
		case nil:
		default:
			return nil, fmt.Errorf("schemaio: %s: arrayOfOptions must be a list, got %s", path, describe(parts))
		}
		return out, nil
	case fakeskema.KindEnum:
		if raw == nil {
			return nil, nil
		}
		return fakeskema.EnumOptions{Values: plain(raw)}, nil
	case fakeskema.KindISOTimestamp:
		return fakeskema.TimestampOptions{From: get(keyDateFrom), To: get(keyDateTo)}, nil
	case fakeskema.KindText, fakeskema.KindNumericString, fakeskema.KindNumber:
		return fakeskema.BoundsOptions{Min: get(keyMin), Max: get(keyMax)}, nil
	case fakeskema.KindFile:
		return fakeskema.FileOptions{Extension: get(keyExtension)}, nil
	case fakeskema.KindFormatString:
		if opts == nil {
			return nil, nil
		}
		out := fakeskema.FormatOptions{}
		if s, ok := get(keyString).(string); ok {
			out.Format = s
		}
		if args, ok := opts.get(keyProperties); ok && args != nil {
			list, isList := args.([]any)
			if !isList {
				return nil, fmt.Errorf("schemaio: %s: format-string properties must be a list, got %s", path, describe(args))
			}
			for i, a := range list {
				an, err := toNode(a, fmt.Sprintf("%s/%s/%d", path, keyProperties, i))
				if err != nil {
					return nil, err
				}
				out.Args = append(out.Args, an)
			}
		}
		return out, nil
	}
	return nil, nil
}

// toFields accepts the list form ([{fieldName, type, ...}]) or a mapping
// (name -> node).
func toFields(raw any, path string) ([]fakeskema.Field, error) {
	switch t := raw.(type) {
	case nil:
		return nil, nil
	case *object:
		out := make([]fakeskema.Field, 0, len(t.keys))
		for _, name := range t.keys {
			n, err := toNode(t.values[name], path+"/"+name)
			if err != nil {
				return nil, err
			}
			out = append(out, fakeskema.Field{Name: name, Node: n})
		}
		return out, nil
	case []any:
		out := make([]fakeskema.Field, 0, len(t))
		seen := make(map[string]struct{}, len(t))
		for i, item := range t {
			o, ok := item.(*object)
			if !ok {
				return nil, fmt.Errorf("schemaio: %s/%d: property must be a mapping, got %s", path, i, describe(item))
			}
			fv, _ := o.get(keyFieldName)
			name, ok := fv.(string)
			if !ok || name == "" {
				return nil, fmt.Errorf("schemaio: %s/%d: fieldName is required", path, i)
			}
			if _, dup := seen[name]; dup {
				return nil, &DuplicateKeyError{Key: name}
			}
			seen[name] = struct{}{}
			n, err := toNode(o, path+"/"+name)
			if err != nil {
				return nil, err
			}
			out = append(out, fakeskema.Field{Name: name, Node: n})
		}
		return out, nil
	}
	return nil, fmt.Errorf("schemaio: %s: properties must be a list or a mapping, got %s", path, describe(raw))
}

// toReferences converts a decoded root mapping into References.
func toReferences(root any) (fakeskema.References, error) {
	if root == nil {
		return fakeskema.References{}, nil
	}
	o, ok := root.(*object)
	if !ok {
		return nil, fmt.Errorf("schemaio: references root must be a mapping, got %s", describe(root))
	}
	out := make(fakeskema.References, len(o.keys))
	for _, k := range o.keys {
		out[k] = plain(o.values[k])
	}
	return out, nil
}

func toFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case int64:
		return float64(t), true
	case float64:
		return t, true
	}
	return 0, false
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case *object:
		return "mapping"
	case []any:
		return "list"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
