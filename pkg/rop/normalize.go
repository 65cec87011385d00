package rop

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnspecified marks a failure that was built without an error value.
var ErrUnspecified = errors.New("unspecified failure")

// RaisedError wraps a non-error, non-string panic payload. The raw payload
// stays reachable through Value even when the message is a fallback.
type RaisedError struct {
	value any
	msg   string
}

func (e *RaisedError) Error() string {
	return e.msg
}

func (e *RaisedError) Value() any {
	return e.value
}

// Normalize coerces an arbitrary raised value into an error. An error passes
// through unchanged, a string becomes the error message, and anything else is
// wrapped into a RaisedError with a best-effort serialized message.
// Normalize never panics.
func Normalize(v any) error {
	switch e := v.(type) {
	case nil:
		return ErrUnspecified
	case error:
		if IsNil(e) {
			return ErrUnspecified
		}
		return e
	case string:
		return errors.New(e)
	default:
		return &RaisedError{value: v, msg: serialize(v)}
	}
}

func serialize(v any) (msg string) {
	defer func() {
		if r := recover(); r != nil {
			msg = fmt.Sprintf("%v", v)
		}
	}()

	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
