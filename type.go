package attr

import "fmt"

type Type int

const (
	StringType Type = iota
	IntType
	FloatType
	BoolType
	RecordType
	ListType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType: "String",
		IntType:    "Int",
		FloatType:  "Float",
		BoolType:   "Bool",
		RecordType: "Record",
		ListType:   "List",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String": StringType,
		"Int":    IntType,
		"Float":  FloatType,
		"Bool":   BoolType,
		"Record": RecordType,
		"List":   ListType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		IntType,
		FloatType,
		BoolType,
		RecordType,
		ListType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case RecordType, ListType:
		return false
	default:
		return true
	}
}
