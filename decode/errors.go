package decode

import "fmt"

// TypeError reports a JSON value that does not conform to the decoder's
// declared type.
type TypeError struct {
	FieldPath string // field path (e.g. "user.address.city")
	Expected  string
	Actual    string
}

func (e *TypeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("type error at %s: expected %s, got %s",
			e.FieldPath, e.Expected, e.Actual)
	}
	return fmt.Sprintf("type error: expected %s, got %s", e.Expected, e.Actual)
}

// UnmarshalError wraps a lower-level JSON decoding failure with the
// field path at which it occurred.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("unmarshal error: %s", e.Message)
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

// prefixPath rewrites the field path of a nested decode error so that
// errors bubbling out of sub-decoders name the full path from the root.
func prefixPath(name string, err error) error {
	switch e := err.(type) {
	case *TypeError:
		return &TypeError{
			FieldPath: joinPath(name, e.FieldPath),
			Expected:  e.Expected,
			Actual:    e.Actual,
		}
	case *UnmarshalError:
		return &UnmarshalError{
			FieldPath: joinPath(name, e.FieldPath),
			Message:   e.Message,
			Err:       e.Err,
		}
	default:
		return &UnmarshalError{FieldPath: name, Message: err.Error(), Err: err}
	}
}

func joinPath(name, rest string) string {
	if rest == "" {
		return name
	}
	if rest[0] == '[' {
		return name + rest
	}
	return name + "." + rest
}
