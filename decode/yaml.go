package decode

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/attr-format/attr"
)

// FromYAML decodes a YAML mapping into a record, preserving key order.
// Scalar types follow the YAML parser's typing: integers become Int,
// other numbers Float. YAML null has no attribute type and fails the
// decode, as do non-string keys.
func FromYAML(d []byte) (attr.Record, error) {
	var ms yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(d, &ms, yaml.UseOrderedMap()); err != nil {
		return nil, &UnmarshalError{Message: "invalid yaml", Err: err}
	}
	return fromMapSlice(ms)
}

func fromMapSlice(ms yaml.MapSlice) (attr.Record, error) {
	rec := make(attr.Record, 0, len(ms))
	for _, item := range ms {
		key, ok := item.Key.(string)
		if !ok {
			return nil, &UnmarshalError{
				Message: fmt.Sprintf("non-string key %v (%T)", item.Key, item.Key),
			}
		}
		v, err := fromYAMLValue(item.Value)
		if err != nil {
			return nil, prefixPath(key, err)
		}
		rec = append(rec, attr.Attr{Key: key, Value: v})
	}
	return rec, nil
}

func fromYAMLValue(v any) (attr.Value, error) {
	switch x := v.(type) {
	case string:
		return attr.FromString(x), nil
	case bool:
		return attr.FromBool(x), nil
	case int:
		return attr.FromInt(int64(x)), nil
	case int64:
		return attr.FromInt(x), nil
	case uint64:
		return attr.FromInt(int64(x)), nil
	case float64:
		return attr.FromFloat(x), nil
	case yaml.MapSlice:
		rec, err := fromMapSlice(x)
		if err != nil {
			return attr.Value{}, err
		}
		return attr.FromRecord(rec), nil
	case []any:
		vals := make([]attr.Value, len(x))
		for i, e := range x {
			ev, err := fromYAMLValue(e)
			if err != nil {
				return attr.Value{}, prefixPath(fmt.Sprintf("[%d]", i), err)
			}
			vals[i] = ev
		}
		return attr.FromList(vals), nil
	case nil:
		return attr.Value{}, &TypeError{Expected: "non-null value", Actual: "Null"}
	default:
		return attr.Value{}, &UnmarshalError{
			Message: fmt.Sprintf("unsupported yaml value %v (%T)", v, v),
		}
	}
}
