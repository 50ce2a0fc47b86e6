package decode

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"slices"

	"github.com/attr-format/attr"
)

// RecordFunc decodes a raw JSON object into a record. Nested is
// parameterized by one so that record decoders compose arbitrarily.
type RecordFunc func(raw jsontext.Value) (attr.Record, error)

// String decodes a JSON string into a String attribute.
func String(name string, raw jsontext.Value) (attr.Attr, error) {
	if k := kindOf(raw); k != '"' {
		return attr.Attr{}, &TypeError{FieldPath: name, Expected: attr.StringType.String(), Actual: kindName(k)}
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return attr.Attr{}, &UnmarshalError{FieldPath: name, Message: "invalid string", Err: err}
	}
	return attr.Attr{Key: name, Value: attr.FromString(s)}, nil
}

// Int decodes a JSON number without a fractional part into an Int
// attribute. Fractional numbers are a type mismatch, not a rounding
// opportunity.
func Int(name string, raw jsontext.Value) (attr.Attr, error) {
	if k := kindOf(raw); k != '0' {
		return attr.Attr{}, &TypeError{FieldPath: name, Expected: attr.IntType.String(), Actual: kindName(k)}
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return attr.Attr{}, &TypeError{FieldPath: name, Expected: attr.IntType.String(), Actual: "Float"}
	}
	return attr.Attr{Key: name, Value: attr.FromInt(n)}, nil
}

// Float decodes a JSON number into a Float attribute. Integral numbers
// conform; 24 decodes as Float 24 under this decoder.
func Float(name string, raw jsontext.Value) (attr.Attr, error) {
	if k := kindOf(raw); k != '0' {
		return attr.Attr{}, &TypeError{FieldPath: name, Expected: attr.FloatType.String(), Actual: kindName(k)}
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return attr.Attr{}, &UnmarshalError{FieldPath: name, Message: "invalid number", Err: err}
	}
	return attr.Attr{Key: name, Value: attr.FromFloat(f)}, nil
}

// Bool decodes a JSON boolean into a Bool attribute.
func Bool(name string, raw jsontext.Value) (attr.Attr, error) {
	k := kindOf(raw)
	if k != 't' && k != 'f' {
		return attr.Attr{}, &TypeError{FieldPath: name, Expected: attr.BoolType.String(), Actual: kindName(k)}
	}
	return attr.Attr{Key: name, Value: attr.FromBool(k == 't')}, nil
}

// Nested decodes a JSON object into a Record attribute using the given
// sub-decoder. Errors from the sub-decoder are reported under name.
func Nested(name string, raw jsontext.Value, sub RecordFunc) (attr.Attr, error) {
	if k := kindOf(raw); k != '{' {
		return attr.Attr{}, &TypeError{FieldPath: name, Expected: attr.RecordType.String(), Actual: kindName(k)}
	}
	rec, err := sub(raw)
	if err != nil {
		return attr.Attr{}, prefixPath(name, err)
	}
	return attr.Attr{Key: name, Value: attr.FromRecord(rec)}, nil
}

// StringList decodes a JSON array of strings into a List attribute.
func StringList(name string, raw jsontext.Value) (attr.Attr, error) {
	return listOf(name, raw, String)
}

// IntList decodes a JSON array of integers into a List attribute.
func IntList(name string, raw jsontext.Value) (attr.Attr, error) {
	return listOf(name, raw, Int)
}

// FloatList decodes a JSON array of numbers into a List attribute.
func FloatList(name string, raw jsontext.Value) (attr.Attr, error) {
	return listOf(name, raw, Float)
}

// BoolList decodes a JSON array of booleans into a List attribute.
func BoolList(name string, raw jsontext.Value) (attr.Attr, error) {
	return listOf(name, raw, Bool)
}

func listOf(name string, raw jsontext.Value, elem func(string, jsontext.Value) (attr.Attr, error)) (attr.Attr, error) {
	if k := kindOf(raw); k != '[' {
		return attr.Attr{}, &TypeError{FieldPath: name, Expected: attr.ListType.String(), Actual: kindName(k)}
	}
	var elems []jsontext.Value
	if err := json.Unmarshal(raw, &elems); err != nil {
		return attr.Attr{}, &UnmarshalError{FieldPath: name, Message: "invalid array", Err: err}
	}
	vals := make([]attr.Value, len(elems))
	for i, e := range elems {
		a, err := elem(fmt.Sprintf("[%d]", i), e)
		if err != nil {
			return attr.Attr{}, prefixPath(name, err)
		}
		vals[i] = a.Value
	}
	return attr.Attr{Key: name, Value: attr.FromList(vals)}, nil
}

// Field is one (name, raw value) pair of a JSON object, in declared
// order.
type Field struct {
	Name string
	Raw  jsontext.Value
}

// Fields splits a JSON object into its fields, preserving declared
// order, so that callers can apply per-field decoders and assemble the
// resulting attributes themselves.
func Fields(raw jsontext.Value) ([]Field, error) {
	if k := kindOf(raw); k != '{' {
		return nil, &TypeError{Expected: attr.RecordType.String(), Actual: kindName(k)}
	}
	dec := jsontext.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.ReadToken(); err != nil {
		return nil, &UnmarshalError{Message: "invalid object", Err: err}
	}
	var fields []Field
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return nil, &UnmarshalError{Message: "invalid object", Err: err}
		}
		name := tok.String()
		val, err := dec.ReadValue()
		if err != nil {
			return nil, &UnmarshalError{FieldPath: name, Message: "invalid value", Err: err}
		}
		fields = append(fields, Field{Name: name, Raw: slices.Clone(val)})
	}
	return fields, nil
}

// kindOf classifies a raw JSON value by its first non-space byte,
// normalizing digits and the minus sign to the number kind '0'.
func kindOf(raw jsontext.Value) jsontext.Kind {
	raw = bytes.TrimLeft(raw, " \t\r\n")
	if len(raw) == 0 {
		return 0
	}
	switch c := raw[0]; c {
	case '"', '{', '[', 't', 'f', 'n':
		return jsontext.Kind(c)
	case '-':
		return '0'
	default:
		if c >= '0' && c <= '9' {
			return '0'
		}
		return 0
	}
}

func kindName(k jsontext.Kind) string {
	switch k {
	case '"':
		return "String"
	case '0':
		return "Number"
	case 't', 'f':
		return "Bool"
	case '{':
		return "Record"
	case '[':
		return "List"
	case 'n':
		return "Null"
	default:
		return "<invalid>"
	}
}
