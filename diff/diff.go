// Package diff computes structural differences between records and
// applies JSON patches to them.
package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/attr-format/attr"
)

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

// Edit is one attribute-level difference between two records, addressed
// by dotted path. For string replacements Text carries a compact inline
// rendering of the change with insertions marked [+...] and deletions
// marked [-...].
type Edit struct {
	Op   Op
	Path string
	From *attr.Value
	To   *attr.Value
	Text string
}

// Records diffs two records attribute by attribute, recursing into
// nested record values. Attributes are matched by key with first-match
// semantics, the same rule path lookup uses; reordering two attributes
// therefore reports no edit.
func Records(from, to attr.Record) []Edit {
	return diffRecords("", from, to, nil)
}

func diffRecords(prefix string, from, to attr.Record, edits []Edit) []Edit {
	seen := map[string]bool{}
	for i := range from {
		key := from[i].Key
		if seen[key] {
			continue
		}
		seen[key] = true
		path := joinPath(prefix, key)
		fv := from[i].Value
		ta := to.Get(key)
		if ta == nil {
			v := fv.Clone()
			edits = append(edits, Edit{Op: OpRemove, Path: path, From: &v})
			continue
		}
		tv := ta.Value
		if fv.Equal(tv) {
			continue
		}
		if fv.Type == attr.RecordType && tv.Type == attr.RecordType {
			edits = diffRecords(path, fv.Record, tv.Record, edits)
			continue
		}
		e := Edit{Op: OpReplace, Path: path}
		f, t := fv.Clone(), tv.Clone()
		e.From, e.To = &f, &t
		if fv.Type == attr.StringType && tv.Type == attr.StringType {
			e.Text = inlineString(fv.Str, tv.Str)
		}
		edits = append(edits, e)
	}
	for i := range to {
		key := to[i].Key
		if seen[key] {
			continue
		}
		seen[key] = true
		v := to[i].Value.Clone()
		edits = append(edits, Edit{Op: OpAdd, Path: joinPath(prefix, key), To: &v})
	}
	return edits
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func inlineString(from, to string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString("[+" + d.Text + "]")
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
