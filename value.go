package attr

// Value is one typed value in a record. The Type field selects which
// payload field is meaningful; the others hold their zero value.
type Value struct {
	Type Type

	Str    string
	Int    int64
	Float  float64
	Bool   bool
	Record Record
	List   []Value
}

// Attr is a single key/value pair within a Record. Keys are expected to
// be non-empty and, for dotted-path addressing, free of ".".
type Attr struct {
	Key   string
	Value Value
}

// Record is an ordered sequence of attributes. Key uniqueness is
// expected but not enforced; lookup returns the first match.
type Record []Attr

func FromString(v string) Value {
	return Value{Type: StringType, Str: v}
}

func FromInt(v int64) Value {
	return Value{Type: IntType, Int: v}
}

func FromFloat(v float64) Value {
	return Value{Type: FloatType, Float: v}
}

func FromBool(v bool) Value {
	return Value{Type: BoolType, Bool: v}
}

func FromRecord(rec Record) Value {
	return Value{Type: RecordType, Record: rec}
}

func FromList(vs []Value) Value {
	return Value{Type: ListType, List: vs}
}

// Get returns the first attribute with the given key, or nil. The
// returned pointer aliases the record and must be treated as read-only.
func (rec Record) Get(key string) *Attr {
	for i := range rec {
		if rec[i].Key == key {
			return &rec[i]
		}
	}
	return nil
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	switch v.Type {
	case RecordType:
		v.Record = v.Record.Clone()
	case ListType:
		list := make([]Value, len(v.List))
		for i := range v.List {
			list[i] = v.List[i].Clone()
		}
		v.List = list
	}
	return v
}

// Clone returns a deep copy of the record.
func (rec Record) Clone() Record {
	if rec == nil {
		return nil
	}
	res := make(Record, len(rec))
	for i := range rec {
		res[i] = Attr{Key: rec[i].Key, Value: rec[i].Value.Clone()}
	}
	return res
}

// Equal reports whether two values have the same type and payload.
// Record values are equal only if their attributes match pairwise in
// order; attribute order is significant.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	switch v.Type {
	case StringType:
		return v.Str == o.Str
	case IntType:
		return v.Int == o.Int
	case FloatType:
		return v.Float == o.Float
	case BoolType:
		return v.Bool == o.Bool
	case RecordType:
		return v.Record.Equal(o.Record)
	case ListType:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(o.List[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Equal reports whether two records have the same attributes in the
// same order.
func (rec Record) Equal(o Record) bool {
	if len(rec) != len(o) {
		return false
	}
	for i := range rec {
		if rec[i].Key != o[i].Key || !rec[i].Value.Equal(o[i].Value) {
			return false
		}
	}
	return true
}
