// Package encode renders attr records as text.
//
// JSON produces the canonical ordered JSON form of a record, the exact
// inverse of package decode. Encode produces a human-oriented display
// form with indentation and optional per-type coloring.
package encode
