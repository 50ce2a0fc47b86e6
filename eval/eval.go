// Package eval filters records with compiled expressions.
//
// Expressions use expr-lang syntax and see each record as a map
// environment: top-level attribute keys become variables, nested
// records become nested maps. This complements the substring filter in
// the attr package when a typed predicate is needed, e.g.
//
//	kept, err := eval.FilterExpr(`age > 21 && address.city == "Montreal"`, recs)
package eval

import (
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/attr-format/attr"
)

// ToAny converts a value to the native Go representation the expression
// runtime operates on. Record attribute order is not observable from
// expressions, so records become plain maps; duplicate keys keep the
// first occurrence, matching path lookup.
func ToAny(v attr.Value) any {
	switch v.Type {
	case attr.StringType:
		return v.Str
	case attr.IntType:
		return v.Int
	case attr.FloatType:
		return v.Float
	case attr.BoolType:
		return v.Bool
	case attr.RecordType:
		return Env(v.Record)
	case attr.ListType:
		res := make([]any, len(v.List))
		for i, e := range v.List {
			res[i] = ToAny(e)
		}
		return res
	}
	return nil
}

// Env builds the expression environment for one record.
func Env(rec attr.Record) map[string]any {
	res := make(map[string]any, len(rec))
	for i := range rec {
		if _, ok := res[rec[i].Key]; ok {
			continue
		}
		res[rec[i].Key] = ToAny(rec[i].Value)
	}
	return res
}

// FilterExpr compiles src once and keeps the records for which it
// evaluates to true. The expression must produce a boolean; referencing
// an attribute a given record lacks is a runtime error for that record,
// not a silent non-match.
func FilterExpr(src string, recs []attr.Record) ([]attr.Record, error) {
	prg, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", src, err)
	}
	res := make([]attr.Record, 0, len(recs))
	for _, rec := range recs {
		out, err := expr.Run(prg, Env(rec))
		if err != nil {
			return nil, fmt.Errorf("evaluating %q: %w", src, err)
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("expression %q returned %T, want bool", src, out)
		}
		if keep {
			res = append(res, rec)
		}
	}
	return res, nil
}
