package attr

import "strings"

// FilteredBy keeps the records where at least one of the dotted paths
// in keys renders to a string containing query, case-insensitively.
// Paths that do not resolve render as the empty string and cannot
// match a non-empty query; an empty keys slice matches nothing. The
// result preserves input order and shares the kept records.
func FilteredBy(keys []string, query string, recs []Record) []Record {
	q := strings.ToLower(query)
	res := make([]Record, 0, len(recs))
	for _, rec := range recs {
		for _, key := range keys {
			if strings.Contains(strings.ToLower(renderPath(key, rec)), q) {
				res = append(res, rec)
				break
			}
		}
	}
	return res
}
