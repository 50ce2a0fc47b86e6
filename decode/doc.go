// Package decode builds attr records from JSON text.
//
// The package provides one decoder per attribute type (String, Int,
// Float, Bool, the corresponding list decoders, and Nested for record
// values). Each takes an attribute name and a raw JSON value and either
// produces an attr.Attr tagged with the declared type or fails with a
// structured error carrying the field path and the expected type. A
// decoder never defaults on mismatch: Int rejects fractional numbers,
// and a single non-conforming element fails a whole list.
//
// Decoders are composable building blocks, not a whole-object decoder:
// callers split an object into ordered fields with Fields and apply the
// decoder each field requires, assembling the resulting attributes in
// declared order. Infer is the schema-less alternative, deriving each
// attribute's type from the JSON value itself.
package decode
