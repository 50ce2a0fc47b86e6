package attr

import (
	"strconv"
	"strings"
)

// Render converts any value to its display string. Rendering is total
// and recursive: record and list values render as their elements joined
// by single spaces, in order, with record keys dropped. This string is
// the comparison substrate for SortedBy and FilteredBy.
func (v Value) Render() string {
	switch v.Type {
	case StringType:
		return v.Str
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case RecordType:
		parts := make([]string, len(v.Record))
		for i := range v.Record {
			parts[i] = v.Record[i].Value.Render()
		}
		return strings.Join(parts, " ")
	case ListType:
		parts := make([]string, len(v.List))
		for i := range v.List {
			parts[i] = v.List[i].Render()
		}
		return strings.Join(parts, " ")
	}
	return ""
}

// RenderAttr renders an attribute's value. A nil attribute yields
// ("", false), distinguishing a lookup miss from a value that renders
// to the empty string.
func RenderAttr(a *Attr) (string, bool) {
	if a == nil {
		return "", false
	}
	return a.Value.Render(), true
}

// renderPath resolves a path and renders the result, defaulting to the
// empty string on a miss.
func renderPath(path string, rec Record) string {
	s, _ := RenderAttr(GetByPath(path, rec))
	return s
}
