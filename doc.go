// Package attr provides typed, ordered attribute records for
// loosely-structured, JSON-derived data.
//
// # Overview
//
// A Record is an ordered sequence of Attr pairs (key plus typed Value).
// Values form a closed tagged union: string, int, float, bool, nested
// record, or list of values. Records preserve insertion order through
// decoding and are never mutated by any operation in this package.
//
// # Addressing
//
// Attributes are addressed by dotted path, descending through nested
// record values:
//
//	city := attr.GetByPath("address.city", rec)
//
// A path that does not resolve (missing key, or descending into a
// non-record value) is a miss, not an error: GetByPath returns nil.
// Keys containing "." cannot be addressed by path; no escaping scheme
// is provided.
//
// # Rendering
//
// Every value renders to a display string via Render. Rendering is
// lossy: record and list values render as their elements joined by
// single spaces, with keys dropped, and distinct values can render
// identically (Int 5 and String "5" both render "5"). SortedBy and
// FilteredBy compare these rendered strings, not the typed values.
package attr
