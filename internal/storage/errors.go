package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCorruptDocument means the stored document is not a JSON object.
var ErrCorruptDocument = errors.New("corrupt document")

// FieldError names a top-level document field that failed to parse.
type FieldError struct {
	Field string
	Err   error
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e FieldError) Unwrap() error { return e.Err }

// LoadError collects the malformed fields of a document. Every other field
// was loaded normally.
type LoadError struct {
	Fields []FieldError
}

func (e *LoadError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("load document: %d malformed field(s): %s", len(e.Fields), strings.Join(parts, "; "))
}

// Has reports whether field failed to parse.
func (e *LoadError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
