package colour

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidColour is returned by the low-level conversions when a value
	// is not a 3- or 6-digit hex colour.
	ErrInvalidColour = errors.New("invalid colour")

	// ErrInvalidArgument is matched by every *InvalidArgumentError.
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldError names a single rejected input.
type FieldError struct {
	Name  string
	Value string
}

// InvalidArgumentError reports the inputs a public entry point refused.
// All failing inputs are collected into one error so callers see every
// problem at once.
type InvalidArgumentError struct {
	Op     string
	Reason string
	Fields []FieldError
}

func (e *InvalidArgumentError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s %q", f.Name, f.Value)
	}

	msg := e.Op + ": " + e.Reason
	if len(parts) > 0 {
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	return msg
}

// Is reports whether target is ErrInvalidArgument.
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
