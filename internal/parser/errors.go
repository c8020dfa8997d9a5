package parser

import (
	"errors"
	"fmt"
)

// ErrMalformedField matches every timestamp parse failure via errors.Is.
var ErrMalformedField = errors.New("malformed timestamp field")

// Kind classifies a parse failure.
type Kind int

const (
	KindMalformedField Kind = iota // a field is not a non-negative base-10 integer
	KindTooManyFields              // more than hours:minutes:seconds
)

func (k Kind) String() string {
	switch k {
	case KindMalformedField:
		return "malformed field"
	case KindTooManyFields:
		return "too many fields"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type ParseError struct {
	Input string
	Field string // hours, minutes, seconds, milliseconds or "" when not field specific
	Value string
	Kind  Kind
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("Can't parse timestamp %q: %s", e.Input, e.Kind)
	}
	if e.Err != nil {
		return fmt.Sprintf("Can't parse timestamp %q, error in %s %q: %v", e.Input, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("Can't parse timestamp %q, error in %s %q", e.Input, e.Field, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is makes every ParseError match ErrMalformedField regardless of kind.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedField
}
