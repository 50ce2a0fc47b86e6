package encode

import (
	"bytes"
	"encoding/json/jsontext"
	"fmt"

	"github.com/attr-format/attr"
)

// JSON encodes a record as a JSON object, preserving attribute order.
func JSON(rec attr.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := writeRecord(enc, rec); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// JSONSlice encodes records as a JSON array of objects.
func JSONSlice(recs []attr.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if err := writeRecord(enc, rec); err != nil {
			return nil, err
		}
	}
	if err := enc.WriteToken(jsontext.EndArray); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func writeRecord(enc *jsontext.Encoder, rec attr.Record) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}
	for i := range rec {
		if err := enc.WriteToken(jsontext.String(rec[i].Key)); err != nil {
			return err
		}
		if err := writeValue(enc, rec[i].Value); err != nil {
			return err
		}
	}
	return enc.WriteToken(jsontext.EndObject)
}

func writeValue(enc *jsontext.Encoder, v attr.Value) error {
	switch v.Type {
	case attr.StringType:
		return enc.WriteToken(jsontext.String(v.Str))
	case attr.IntType:
		return enc.WriteToken(jsontext.Int(v.Int))
	case attr.FloatType:
		return enc.WriteToken(jsontext.Float(v.Float))
	case attr.BoolType:
		return enc.WriteToken(jsontext.Bool(v.Bool))
	case attr.RecordType:
		return writeRecord(enc, v.Record)
	case attr.ListType:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, e := range v.List {
			if err := writeValue(enc, e); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	default:
		return fmt.Errorf("cannot encode value of type %s", v.Type)
	}
}
