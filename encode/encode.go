package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/attr-format/attr"
)

type EncState struct {
	depth, indent int

	colors *Colors
}

type EncodeOption func(*EncState)

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// Encode writes a record in display form: one "key: value" line per
// attribute, nested records indented, lists bracketed inline.
func Encode(rec attr.Record, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		colors: NoColors(),
	}
	for _, opt := range opts {
		opt(es)
	}
	return encodeRecord(rec, w, es)
}

func encodeRecord(rec attr.Record, w io.Writer, es *EncState) error {
	pad := strings.Repeat(" ", es.depth*es.indent)
	for i := range rec {
		key := es.colors.Field(rec[i].Key)
		if _, err := fmt.Fprintf(w, "%s%s:", pad, key); err != nil {
			return err
		}
		if rec[i].Value.Type == attr.RecordType {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			sub := *es
			sub.depth++
			if err := encodeRecord(rec[i].Value.Record, w, &sub); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, " %s\n", encodeLeaf(rec[i].Value, es)); err != nil {
			return err
		}
	}
	return nil
}

func encodeLeaf(v attr.Value, es *EncState) string {
	if v.Type == attr.ListType {
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = encodeLeaf(e, es)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return es.colors.Value(v.Type, v.Render())
}
