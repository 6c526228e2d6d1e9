package api

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cast"
)

// CastError reports a request field whose JSON value cannot be converted to
// the field's type, such as an object given as a title. It is a server
// error, like any other failure to build a storable task.
type CastError struct {
	Kind  string
	Value string
	Err   error
}

func (e *CastError) Error() string {
	return fmt.Sprintf("cast to %s failed for value %s", e.Kind, e.Value)
}

func (e *CastError) Unwrap() error {
	return e.Err
}

// Text is a string field that also accepts JSON numbers and booleans,
// converting them to their text form. Values that are false in a boolean
// sense (false, 0, null) decode to "", so a title given as 0 counts as
// missing.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case bool:
		if !v {
			*t = ""
			return nil
		}
	case float64:
		if v == 0 {
			*t = ""
			return nil
		}
	}

	s, err := cast.ToStringE(raw)
	if err != nil {
		return &CastError{Kind: "string", Value: string(data), Err: err}
	}
	*t = Text(s)
	return nil
}

// Flag is a boolean field that also accepts the usual spellings of a
// boolean: "true"/"false", 1/0, "1"/"0" and "yes"/"no". null decodes to
// false.
type Flag bool

// UnmarshalJSON implements json.Unmarshaler.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw {
	case nil, false, float64(0), "false", "0", "no":
		*f = false
	case true, float64(1), "true", "1", "yes":
		*f = true
	default:
		return &CastError{Kind: "boolean", Value: string(data)}
	}
	return nil
}
