package decode

import (
	"bytes"
	"encoding/json/jsontext"
	"encoding/json/v2"
	"fmt"
	"strconv"

	"github.com/attr-format/attr"
)

// Infer decodes a JSON object into a record, deriving each attribute's
// type from the JSON value itself: numbers that parse as integers
// become Int, all other numbers Float, arrays become lists of inferred
// values, and nested objects recurse. JSON null has no attribute type
// and fails the decode.
func Infer(raw jsontext.Value) (attr.Record, error) {
	fields, err := Fields(raw)
	if err != nil {
		return nil, err
	}
	rec := make(attr.Record, 0, len(fields))
	for _, f := range fields {
		v, err := InferValue(f.Raw)
		if err != nil {
			return nil, prefixPath(f.Name, err)
		}
		rec = append(rec, attr.Attr{Key: f.Name, Value: v})
	}
	return rec, nil
}

// InferValue decodes a single JSON value with inferred typing.
func InferValue(raw jsontext.Value) (attr.Value, error) {
	switch k := kindOf(raw); k {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return attr.Value{}, &UnmarshalError{Message: "invalid string", Err: err}
		}
		return attr.FromString(s), nil
	case '0':
		text := string(bytes.TrimSpace(raw))
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return attr.FromInt(n), nil
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return attr.Value{}, &UnmarshalError{Message: "invalid number", Err: err}
		}
		return attr.FromFloat(f), nil
	case 't', 'f':
		return attr.FromBool(k == 't'), nil
	case '{':
		rec, err := Infer(raw)
		if err != nil {
			return attr.Value{}, err
		}
		return attr.FromRecord(rec), nil
	case '[':
		var elems []jsontext.Value
		if err := json.Unmarshal(raw, &elems); err != nil {
			return attr.Value{}, &UnmarshalError{Message: "invalid array", Err: err}
		}
		vals := make([]attr.Value, len(elems))
		for i, e := range elems {
			v, err := InferValue(e)
			if err != nil {
				return attr.Value{}, prefixPath(fmt.Sprintf("[%d]", i), err)
			}
			vals[i] = v
		}
		return attr.FromList(vals), nil
	case 'n':
		return attr.Value{}, &TypeError{Expected: "non-null value", Actual: "Null"}
	default:
		return attr.Value{}, &UnmarshalError{Message: "invalid JSON value"}
	}
}

// InferSlice decodes a JSON array of objects into records, one per
// element.
func InferSlice(raw jsontext.Value) ([]attr.Record, error) {
	if k := kindOf(raw); k != '[' {
		return nil, &TypeError{Expected: "array of records", Actual: kindName(k)}
	}
	var elems []jsontext.Value
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, &UnmarshalError{Message: "invalid array", Err: err}
	}
	recs := make([]attr.Record, len(elems))
	for i, e := range elems {
		rec, err := Infer(e)
		if err != nil {
			return nil, prefixPath(fmt.Sprintf("[%d]", i), err)
		}
		recs[i] = rec
	}
	return recs, nil
}
