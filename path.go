package attr

import "strings"

// GetByPath resolves a dotted path against a record, descending into
// nested record values segment by segment.
//
// The returned attribute is that of the final segment, carrying the
// leaf's own key: resolving "address.city" yields the "city" attribute,
// not one keyed by the full path. Resolution misses — an empty path, a
// missing key, or a path that descends into a non-record value — return
// nil rather than an error.
//
// Duplicate keys resolve to the first occurrence in record order.
func GetByPath(path string, rec Record) *Attr {
	if path == "" {
		return nil
	}
	segs := strings.Split(path, ".")
	cur := rec
	for i, seg := range segs {
		a := cur.Get(seg)
		if a == nil {
			return nil
		}
		if i == len(segs)-1 {
			return a
		}
		if a.Value.Type != RecordType {
			return nil
		}
		cur = a.Value.Record
	}
	return nil
}
