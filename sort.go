package attr

import (
	"slices"
	"strings"
)

// Order selects the sort direction for SortedBy.
//
// Only the exact token "asc" sorts ascending; every other value,
// including misspellings of "descending", sorts descending. Callers
// should stick to the Ascending and Descending constants.
type Order string

const (
	Ascending  Order = "asc"
	Descending Order = "dsc"
)

// SortedBy returns the records stably sorted by the rendering of the
// attribute at the given dotted path. Records where the path does not
// resolve render as the empty string and therefore sort together,
// keeping their relative input order. The input slice is not modified;
// no record's own attribute order changes.
func SortedBy(key string, order Order, recs []Record) []Record {
	res := slices.Clone(recs)
	slices.SortStableFunc(res, func(a, b Record) int {
		c := strings.Compare(renderPath(key, a), renderPath(key, b))
		if order != Ascending {
			return -c
		}
		return c
	})
	return res
}
