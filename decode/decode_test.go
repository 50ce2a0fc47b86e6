package decode

import (
	"encoding/json/jsontext"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/attr-format/attr"
)

const userJSON = `{
	"id": 1,
	"name": "Ahmad",
	"age": 24,
	"height": 1.72,
	"active": true,
	"tags": ["admin", "dev"],
	"address": {
		"street": "Oak",
		"city": "Montreal",
		"country": "CA"
	}
}`

// decodeUser composes the per-type decoders the way a consumer would:
// each field decoded independently, attributes assembled in declared
// order.
func decodeUser(raw jsontext.Value) (attr.Record, error) {
	fields, err := Fields(raw)
	if err != nil {
		return nil, err
	}
	var rec attr.Record
	for _, f := range fields {
		var a attr.Attr
		switch f.Name {
		case "id", "age":
			a, err = Int(f.Name, f.Raw)
		case "height":
			a, err = Float(f.Name, f.Raw)
		case "active":
			a, err = Bool(f.Name, f.Raw)
		case "tags":
			a, err = StringList(f.Name, f.Raw)
		case "address":
			a, err = Nested(f.Name, f.Raw, Infer)
		default:
			a, err = String(f.Name, f.Raw)
		}
		if err != nil {
			return nil, err
		}
		rec = append(rec, a)
	}
	return rec, nil
}

func TestDecodeUser(t *testing.T) {
	rec, err := decodeUser(jsontext.Value(userJSON))
	if err != nil {
		t.Fatal(err)
	}
	want := attr.Record{
		{Key: "id", Value: attr.FromInt(1)},
		{Key: "name", Value: attr.FromString("Ahmad")},
		{Key: "age", Value: attr.FromInt(24)},
		{Key: "height", Value: attr.FromFloat(1.72)},
		{Key: "active", Value: attr.FromBool(true)},
		{Key: "tags", Value: attr.FromList([]attr.Value{
			attr.FromString("admin"),
			attr.FromString("dev"),
		})},
		{Key: "address", Value: attr.FromRecord(attr.Record{
			{Key: "street", Value: attr.FromString("Oak")},
			{Key: "city", Value: attr.FromString("Montreal")},
			{Key: "country", Value: attr.FromString("CA")},
		})},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
	if a := rec.Get("age"); a.Value.Type != attr.IntType {
		t.Errorf("age decoded as %s, want Int", a.Value.Type)
	}
}

func TestScalarDecoders(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string, jsontext.Value) (attr.Attr, error)
		raw  string
		want attr.Value
	}{
		{"string", String, `"hi"`, attr.FromString("hi")},
		{"int", Int, `42`, attr.FromInt(42)},
		{"negative int", Int, `-7`, attr.FromInt(-7)},
		{"float", Float, `1.5`, attr.FromFloat(1.5)},
		{"float from integral", Float, `24`, attr.FromFloat(24)},
		{"bool true", Bool, `true`, attr.FromBool(true)},
		{"bool false", Bool, `false`, attr.FromBool(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.fn("f", jsontext.Value(tt.raw))
			if err != nil {
				t.Fatal(err)
			}
			if a.Key != "f" {
				t.Errorf("key = %q, want %q", a.Key, "f")
			}
			if !a.Value.Equal(tt.want) {
				t.Errorf("value = %v, want %v", a.Value, tt.want)
			}
		})
	}
}

func TestTypeMismatch(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(string, jsontext.Value) (attr.Attr, error)
		raw      string
		expected string
	}{
		{"string from number", String, `5`, "String"},
		{"int from string", Int, `"5"`, "Int"},
		{"int from fraction", Int, `24.5`, "Int"},
		{"int from null", Int, `null`, "Int"},
		{"float from bool", Float, `true`, "Float"},
		{"bool from string", Bool, `"true"`, "Bool"},
		{"list from object", StringList, `{}`, "List"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn("f", jsontext.Value(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var te *TypeError
			if !errors.As(err, &te) {
				t.Fatalf("error %T, want *TypeError", err)
			}
			if te.Expected != tt.expected {
				t.Errorf("expected type %q, want %q", te.Expected, tt.expected)
			}
			if te.FieldPath != "f" {
				t.Errorf("field path %q, want %q", te.FieldPath, "f")
			}
		})
	}
}

func TestListElementFailure(t *testing.T) {
	_, err := IntList("nums", jsontext.Value(`[1, "two", 3]`))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "nums[1]") {
		t.Errorf("error %q should name the offending element path", err)
	}
}

func TestNestedErrorPath(t *testing.T) {
	sub := func(raw jsontext.Value) (attr.Record, error) {
		fields, err := Fields(raw)
		if err != nil {
			return nil, err
		}
		var rec attr.Record
		for _, f := range fields {
			a, err := String(f.Name, f.Raw)
			if err != nil {
				return nil, err
			}
			rec = append(rec, a)
		}
		return rec, nil
	}
	_, err := Nested("address", jsontext.Value(`{"city": 5}`), sub)
	if err == nil {
		t.Fatal("expected error")
	}
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("error %T, want *TypeError", err)
	}
	if te.FieldPath != "address.city" {
		t.Errorf("field path %q, want %q", te.FieldPath, "address.city")
	}
}

func TestFieldsOrder(t *testing.T) {
	fields, err := Fields(jsontext.Value(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if len(fields) != len(want) {
		t.Fatalf("got %d fields, want %d", len(fields), len(want))
	}
	for i, f := range fields {
		if f.Name != want[i] {
			t.Errorf("field %d = %q, want %q", i, f.Name, want[i])
		}
	}
}

func TestInfer(t *testing.T) {
	rec, err := Infer(jsontext.Value(`{"n": 3, "f": 3.5, "s": "x", "b": false, "l": [1, 2]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := attr.Record{
		{Key: "n", Value: attr.FromInt(3)},
		{Key: "f", Value: attr.FromFloat(3.5)},
		{Key: "s", Value: attr.FromString("x")},
		{Key: "b", Value: attr.FromBool(false)},
		{Key: "l", Value: attr.FromList([]attr.Value{attr.FromInt(1), attr.FromInt(2)})},
	}
	if diff := cmp.Diff(want, rec); diff != "" {
		t.Errorf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestInferRejectsNull(t *testing.T) {
	_, err := Infer(jsontext.Value(`{"x": null}`))
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestInferSlice(t *testing.T) {
	recs, err := InferSlice(jsontext.Value(`[{"id": 1}, {"id": 2}]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[1].Get("id").Value.Int != 2 {
		t.Errorf("second record id = %v", recs[1].Get("id").Value)
	}
}
